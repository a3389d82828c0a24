package factory

import (
	"github.com/automoto/xmas-tree/archetypes"
	"github.com/automoto/xmas-tree/components"
	cfg "github.com/automoto/xmas-tree/config"
	"github.com/automoto/xmas-tree/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateTree creates the tree entity and registers its region in the space
func CreateTree(ecs *ecs.ECS, scene *components.SceneData) *donburi.Entry {
	tree := archetypes.Tree.Spawn(ecs)

	x, y := TreeRegionOrigin(scene)
	obj := resolv.NewObject(x, y, cfg.Tree.Width, cfg.Tree.Height, tags.ResolvTree)
	obj.Data = tree

	// Add to space if it exists
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	components.Tree.SetValue(tree, components.TreeData{Region: obj})
	return tree
}

// TreeRegionOrigin returns the top-left corner of the tree's bounding rectangle
func TreeRegionOrigin(scene *components.SceneData) (float64, float64) {
	return scene.Width/2 - cfg.Tree.Width/2, scene.TreeBase - cfg.Tree.Height
}
