package systems

import (
	"github.com/automoto/xmas-tree/components"
	cfg "github.com/automoto/xmas-tree/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFade advances the intro fade by one tick
func UpdateFade(ecs *ecs.ECS) {
	fade := GetOrCreateFade(ecs)
	if fade.Done {
		return
	}
	fade.Alpha, fade.Done = fade.Tween.Update(1 / float32(cfg.C.TPS))
}

// DrawFade covers the scene with the fade color at the current opacity
func DrawFade(ecs *ecs.ECS, screen *ebiten.Image) {
	fade := GetOrCreateFade(ecs)
	if fade.Done || fade.Alpha <= 0 {
		return
	}

	c := withAlpha(cfg.Fade.Color, uint8(fade.Alpha*0xff))
	bounds := screen.Bounds()
	vector.FillRect(screen, 0, 0, float32(bounds.Dx()), float32(bounds.Dy()), c, false)
}

// GetOrCreateFade returns the singleton Fade component, starting the tween if needed
func GetOrCreateFade(ecs *ecs.ECS) *components.FadeData {
	if _, ok := components.Fade.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Fade))
		components.Fade.SetValue(ent, components.FadeData{
			Tween: gween.New(1, 0, cfg.Fade.Duration, ease.OutQuad),
			Alpha: 1,
		})
	}

	ent, _ := components.Fade.First(ecs.World)
	return components.Fade.Get(ent)
}
