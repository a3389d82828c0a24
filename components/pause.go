package components

import "github.com/yohamta/donburi"

// PauseData stores whether the animation is frozen
type PauseData struct {
	IsPaused bool
}

var Pause = donburi.NewComponentType[PauseData]()
