package factory

import (
	"github.com/automoto/xmas-tree/archetypes"
	"github.com/automoto/xmas-tree/components"
	cfg "github.com/automoto/xmas-tree/config"
	"github.com/automoto/xmas-tree/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var backgroundKinds = []components.BackgroundKind{
	components.BackgroundStar,
	components.BackgroundMoon,
}

// CreateBackground creates a sky element at (x, y). Size, alpha and speed are
// drawn here once and survive every wrap.
func CreateBackground(ecs *ecs.ECS, r gamemath.Source, x, y float64, kind components.BackgroundKind) *donburi.Entry {
	entry := archetypes.Background.Spawn(ecs)
	components.Background.SetValue(entry, components.BackgroundData{
		X:     x,
		Y:     y,
		Kind:  kind,
		Size:  gamemath.Range(r, cfg.Background.SizeMin, cfg.Background.SizeMax),
		Alpha: gamemath.Range(r, cfg.Background.AlphaMin, cfg.Background.AlphaMax),
		Speed: gamemath.Range(r, cfg.Background.SpeedMin, cfg.Background.SpeedMax),
	})
	return entry
}

// CreateRandomBackground places a star or moon in the upper half of the sky
func CreateRandomBackground(ecs *ecs.ECS, r gamemath.Source, width, height float64) *donburi.Entry {
	x := gamemath.Range(r, 0, width)
	y := gamemath.Range(r, 0, height/2)
	return CreateBackground(ecs, r, x, y, gamemath.Pick(r, backgroundKinds))
}
