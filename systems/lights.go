package systems

import (
	"github.com/automoto/xmas-tree/components"
	cfg "github.com/automoto/xmas-tree/config"
	"github.com/automoto/xmas-tree/shared/gamemath"
	"github.com/automoto/xmas-tree/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLights advances every light's blink timer one frame
func UpdateLights(ecs *ecs.ECS) {
	r := GetOrCreateRandom(ecs)

	components.Light.Each(ecs.World, func(e *donburi.Entry) {
		AdvanceLight(components.Light.Get(e), r)
	})
}

// AdvanceLight counts one frame. When the timer reaches the dwell interval the
// light toggles, the timer restarts and a new interval is drawn. Each light
// runs on its own clock. Returns true when the light toggled.
func AdvanceLight(l *components.LightData, r gamemath.Source) bool {
	l.Timer++
	if l.Timer < l.FlashInterval {
		return false
	}

	l.Visible = !l.Visible
	l.Timer = 0
	l.FlashInterval = factory.RandomFlashInterval(r)
	return true
}

// DrawLights renders visible lights as a translucent bulb with a halo ring
func DrawLights(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Light.Each(ecs.World, func(e *donburi.Entry) {
		l := components.Light.Get(e)
		if !l.Visible {
			return
		}

		x, y := float32(l.X), float32(l.Y)

		vector.FillCircle(screen, x, y, cfg.Light.Diameter/2, withAlpha(l.Color, cfg.Light.FillAlpha), true)
		vector.StrokeCircle(screen, x, y, cfg.Light.HaloDiameter/2, cfg.Light.HaloStroke,
			withAlpha(l.Color, cfg.Light.HaloAlpha), true)
	})
}
