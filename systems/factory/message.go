package factory

import (
	"image/color"

	"github.com/automoto/xmas-tree/archetypes"
	"github.com/automoto/xmas-tree/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateMessage creates the pulsing greeting. It starts fully transparent with
// both oscillators moving up; the first update snaps them onto their lower bounds.
func CreateMessage(ecs *ecs.ECS, x, y float64, text string, size float64, c color.RGBA) *donburi.Entry {
	entry := archetypes.Message.Spawn(ecs)

	components.Message.SetValue(entry, components.MessageData{
		X:             x,
		Y:             y,
		Text:          text,
		Size:          size,
		Color:         c,
		Alpha:         0,
		FadeDirection: 1,
		GlowRadius:    0,
		GlowDirection: 1,
	})

	return entry
}
