package systems

import (
	"github.com/automoto/xmas-tree/components"
	"github.com/yohamta/donburi/ecs"
)

// GetScene returns the canvas singleton. The scene always creates it before
// any system runs.
func GetScene(ecs *ecs.ECS) *components.SceneData {
	entry, ok := components.Scene.First(ecs.World)
	if !ok {
		panic("scene entity not created")
	}
	return components.Scene.Get(entry)
}

// UpdateFrame counts advanced frames
func UpdateFrame(ecs *ecs.ECS) {
	GetScene(ecs).Frame++
}
