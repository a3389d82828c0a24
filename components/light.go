package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// LightData is a blinking tree light. Timer counts frames in the current
// visibility state and stays below FlashInterval between updates.
type LightData struct {
	X, Y          float64
	Color         color.RGBA
	Visible       bool
	Timer         int
	FlashInterval int
}

var Light = donburi.NewComponentType[LightData]()
