package components

import "github.com/yohamta/donburi"

// SceneData is the singleton holding the canvas size and the tree anchor
type SceneData struct {
	Width    float64
	Height   float64
	TreeBase float64 // y of the bottom foliage layer
	Frame    int     // frames advanced since the scene started
}

var Scene = donburi.NewComponentType[SceneData]()
