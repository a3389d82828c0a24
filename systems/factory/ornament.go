package factory

import (
	"image/color"

	"github.com/automoto/xmas-tree/archetypes"
	"github.com/automoto/xmas-tree/components"
	cfg "github.com/automoto/xmas-tree/config"
	"github.com/automoto/xmas-tree/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateOrnament(ecs *ecs.ECS, x, y float64, c color.RGBA, size float64, shape components.OrnamentShape) *donburi.Entry {
	entry := archetypes.Ornament.Spawn(ecs)
	components.Ornament.SetValue(entry, components.OrnamentData{
		X:     x,
		Y:     y,
		Color: c,
		Size:  size,
		Shape: shape,
	})
	return entry
}

// CreateOrnamentAt hangs a randomly styled ornament at (x, y)
func CreateOrnamentAt(ecs *ecs.ECS, r gamemath.Source, x, y float64) *donburi.Entry {
	c := gamemath.Pick(r, cfg.Palette)
	size := gamemath.Range(r, cfg.Ornament.SizeMin, cfg.Ornament.SizeMax)
	return CreateOrnament(ecs, x, y, c, size, RandomShape(r))
}

// CreateRandomOrnament hangs an ornament inside the tree, inset from its edges
func CreateRandomOrnament(ecs *ecs.ECS, r gamemath.Source, scene *components.SceneData) *donburi.Entry {
	center := scene.Width / 2
	halfTree := cfg.Tree.Width / 2

	x := gamemath.Range(r, center-halfTree+cfg.Ornament.Inset, center+halfTree-cfg.Ornament.Inset)
	y := gamemath.Range(r,
		scene.TreeBase-cfg.Tree.Height+cfg.Ornament.VerticalInset,
		scene.TreeBase-cfg.Ornament.VerticalInset,
	)
	return CreateOrnamentAt(ecs, r, x, y)
}

// RandomShape picks circle, star or heart from one uniform draw
func RandomShape(r gamemath.Source) components.OrnamentShape {
	u := r.Float64()
	switch {
	case u < cfg.Ornament.CircleThreshold:
		return components.ShapeCircle
	case u < cfg.Ornament.StarThreshold:
		return components.ShapeStar
	default:
		return components.ShapeHeart
	}
}
