package systems

import (
	"math"

	"github.com/automoto/xmas-tree/components"
	cfg "github.com/automoto/xmas-tree/config"
	"github.com/automoto/xmas-tree/shared/gamemath"
	"github.com/automoto/xmas-tree/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSnow advances every snowflake one frame
func UpdateSnow(ecs *ecs.ECS) {
	scene := GetScene(ecs)
	r := GetOrCreateRandom(ecs)

	components.Snowflake.Each(ecs.World, func(e *donburi.Entry) {
		AdvanceSnowflake(components.Snowflake.Get(e), r, scene.Width, scene.Height)
	})
}

// AdvanceSnowflake falls by Speed and sways sideways. Once below the bottom
// edge the flake is redrawn from scratch and re-enters exactly at the top.
func AdvanceSnowflake(s *components.SnowflakeData, r gamemath.Source, width, height float64) {
	s.Y += s.Speed
	s.X += math.Sin(s.Angle) * cfg.Snow.SwayAmplitude
	s.Angle += s.AngularSpeed

	if s.Y > height {
		*s = factory.RandomSnowflake(r, width, height)
		s.Y = 0
	}
}

// DrawSnow renders snowflakes as white discs
func DrawSnow(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Snowflake.Each(ecs.World, func(e *donburi.Entry) {
		s := components.Snowflake.Get(e)
		vector.FillCircle(screen, float32(s.X), float32(s.Y), float32(s.Size/2), cfg.Snow.Color, true)
	})
}
