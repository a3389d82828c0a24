package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// MessageData is the pulsing greeting. Alpha and GlowRadius each bounce
// between their configured bounds; the directions are +1 or -1.
type MessageData struct {
	X, Y  float64
	Text  string
	Size  float64
	Color color.RGBA

	Alpha         float64
	FadeDirection float64
	GlowRadius    float64
	GlowDirection float64
}

var Message = donburi.NewComponentType[MessageData]()
