package systems

import (
	"testing"

	"github.com/automoto/xmas-tree/components"
	cfg "github.com/automoto/xmas-tree/config"
	"github.com/automoto/xmas-tree/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newTestWorld builds an empty 800x600 scene with its tree region but no
// snow, lights, ornaments or sky elements.
func newTestWorld(t *testing.T) *ecs.ECS {
	t.Helper()

	e := ecs.NewECS(donburi.NewWorld())
	SeedRandom(e, 42)
	sceneEntry := factory.CreateScene(e, 800, 600)
	factory.CreateSpace(e, 4096, 4096, 64, 64)
	factory.CreateTree(e, components.Scene.Get(sceneEntry))
	return e
}

func pressAction(e *ecs.ECS, id cfg.ActionID) {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current[id] = true
}

func releaseAll(e *ecs.ECS) {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	for i := range input.Current {
		input.Current[i] = false
	}
}
