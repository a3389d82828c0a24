package systems

import (
	"github.com/automoto/xmas-tree/components"
	cfg "github.com/automoto/xmas-tree/config"
	"github.com/automoto/xmas-tree/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBackground drifts every star and moon down one frame
func UpdateBackground(ecs *ecs.ECS) {
	scene := GetScene(ecs)
	r := GetOrCreateRandom(ecs)

	components.Background.Each(ecs.World, func(e *donburi.Entry) {
		AdvanceBackground(components.Background.Get(e), r, scene.Width, scene.Height)
	})
}

// AdvanceBackground moves the element down by Speed and wraps it to the top
// edge at a new random x once it passes the bottom.
func AdvanceBackground(b *components.BackgroundData, r gamemath.Source, width, height float64) {
	b.Y += b.Speed
	if b.Y > height {
		b.Y = 0
		b.X = gamemath.Range(r, 0, width)
	}
}

// DrawBackground renders stars as five-point stars and moons as crescents
func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Background.Each(ecs.World, func(e *donburi.Entry) {
		b := components.Background.Get(e)
		alpha := uint8(b.Alpha)

		switch b.Kind {
		case components.BackgroundStar:
			fillStar(screen, b.X, b.Y, b.Size/2, b.Size, 5, withAlpha(cfg.Background.StarColor, alpha))
		case components.BackgroundMoon:
			vector.FillCircle(screen, float32(b.X), float32(b.Y), float32(b.Size),
				withAlpha(cfg.Background.MoonColor, alpha), true)

			// Bite out the crescent with the sky color
			vector.FillCircle(screen,
				float32(b.X+b.Size/3), float32(b.Y-b.Size/3),
				float32(b.Size), cfg.Scene.BackgroundColor, true)
		}
	})
}
