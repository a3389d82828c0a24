package systems

import (
	"log"

	"github.com/automoto/xmas-tree/components"
	"github.com/automoto/xmas-tree/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateOrnaments hangs one ornament for every click that lands on the tree.
// Clicks elsewhere are ignored. Runs while paused.
func UpdateOrnaments(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	if len(input.Clicks) == 0 {
		return
	}

	treeEntry, ok := components.Tree.First(ecs.World)
	if !ok {
		return
	}
	region := components.Tree.Get(treeEntry).Region
	r := GetOrCreateRandom(ecs)
	debug := GetOrCreateSettings(ecs).Debug

	for _, click := range input.Clicks {
		if !InRegion(region, click.X, click.Y) {
			continue
		}
		entry := factory.CreateOrnamentAt(ecs, r, click.X, click.Y)
		if debug {
			o := components.Ornament.Get(entry)
			log.Printf("Hung %s ornament at (%.0f, %.0f), %d on the tree", o.Shape, o.X, o.Y, CountOrnaments(ecs))
		}
	}
	input.Clicks = input.Clicks[:0]
}

// InRegion reports whether (x, y) lies strictly inside the object's rectangle.
// Points on the edge are outside.
func InRegion(obj *resolv.Object, x, y float64) bool {
	return x > obj.X && x < obj.X+obj.W &&
		y > obj.Y && y < obj.Y+obj.H
}

// CountOrnaments returns how many ornaments hang on the tree
func CountOrnaments(ecs *ecs.ECS) int {
	count := 0
	components.Ornament.Each(ecs.World, func(*donburi.Entry) {
		count++
	})
	return count
}

// DrawOrnaments renders each ornament in its shape
func DrawOrnaments(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Ornament.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Ornament.Get(e)

		switch o.Shape {
		case components.ShapeCircle:
			vector.FillCircle(screen, float32(o.X), float32(o.Y), float32(o.Size/2), o.Color, true)
		case components.ShapeStar:
			fillStar(screen, o.X, o.Y, o.Size/2, o.Size, 5, o.Color)
		case components.ShapeHeart:
			fillHeart(screen, o.X, o.Y, o.Size, o.Color)
		}
	})
}
