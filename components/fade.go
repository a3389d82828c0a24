package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FadeData drives the intro overlay from opaque to clear
type FadeData struct {
	Tween *gween.Tween
	Alpha float32 // 0..1 overlay opacity
	Done  bool
}

var Fade = donburi.NewComponentType[FadeData]()
