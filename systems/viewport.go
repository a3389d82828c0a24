package systems

import (
	"log"

	"github.com/automoto/xmas-tree/components"
	cfg "github.com/automoto/xmas-tree/config"
	"github.com/automoto/xmas-tree/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Resize applies a new canvas size: the tree re-anchors to the bottom edge,
// its hit region follows, and the greeting moves above the tree top.
// Snowflakes, lights, ornaments and sky elements keep their positions.
func Resize(ecs *ecs.ECS, width, height float64) {
	scene := GetScene(ecs)
	if scene.Width == width && scene.Height == height {
		return
	}

	scene.Width = width
	scene.Height = height
	scene.TreeBase = height - cfg.Scene.TreeBaseOffset

	if treeEntry, ok := components.Tree.First(ecs.World); ok {
		region := components.Tree.Get(treeEntry).Region
		region.X, region.Y = factory.TreeRegionOrigin(scene)
		region.Update()
	}

	components.Message.Each(ecs.World, func(e *donburi.Entry) {
		msg := components.Message.Get(e)
		msg.X = width / 2
		msg.Y = scene.TreeBase - cfg.Tree.Height - cfg.Message.ResizeOffsetAboveTree
	})

	if GetOrCreateSettings(ecs).Debug {
		log.Printf("Resized canvas to %.0fx%.0f, tree base at %.0f", width, height, scene.TreeBase)
	}
}
