package archetypes

import (
	"github.com/automoto/xmas-tree/components"
	cfg "github.com/automoto/xmas-tree/config"
	"github.com/automoto/xmas-tree/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Snowflake = newArchetype(
		tags.Snowflake,
		components.Snowflake,
	)
	Light = newArchetype(
		tags.Light,
		components.Light,
	)
	Ornament = newArchetype(
		tags.Ornament,
		components.Ornament,
	)
	Background = newArchetype(
		tags.Background,
		components.Background,
	)
	Message = newArchetype(
		tags.Message,
		components.Message,
	)
	Tree = newArchetype(
		tags.Tree,
		components.Tree,
	)
	Scene = newArchetype(
		components.Scene,
	)
	Space = newArchetype(
		components.Space,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
