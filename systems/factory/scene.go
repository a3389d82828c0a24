package factory

import (
	"github.com/automoto/xmas-tree/archetypes"
	"github.com/automoto/xmas-tree/components"
	cfg "github.com/automoto/xmas-tree/config"
	"github.com/automoto/xmas-tree/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateScene creates the canvas singleton for a width x height viewport
func CreateScene(ecs *ecs.ECS, width, height float64) *donburi.Entry {
	scene := archetypes.Scene.Spawn(ecs)
	components.Scene.SetValue(scene, components.SceneData{
		Width:    width,
		Height:   height,
		TreeBase: height - cfg.Scene.TreeBaseOffset,
	})
	return scene
}

// PopulateScene creates every entity of the initial scene: snowflakes, lights,
// ornaments, background elements and the greeting, in that order.
func PopulateScene(ecs *ecs.ECS, r gamemath.Source, scene *components.SceneData) {
	for i := 0; i < cfg.Snow.Count; i++ {
		CreateSnowflake(ecs, r, scene.Width, scene.Height)
	}

	for i := 0; i < cfg.Light.Count; i++ {
		CreateRandomLight(ecs, r, scene)
	}

	for i := 0; i < cfg.Ornament.Count; i++ {
		CreateRandomOrnament(ecs, r, scene)
	}

	for i := 0; i < cfg.Background.Count; i++ {
		CreateRandomBackground(ecs, r, scene.Width, scene.Height)
	}

	CreateMessage(ecs,
		scene.Width/2,
		scene.TreeBase-cfg.Tree.Height-cfg.Message.OffsetAboveTree,
		cfg.Message.Text,
		cfg.Message.Size,
		cfg.Message.Color,
	)
}
