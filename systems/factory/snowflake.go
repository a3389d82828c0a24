package factory

import (
	"math"

	"github.com/automoto/xmas-tree/archetypes"
	"github.com/automoto/xmas-tree/components"
	cfg "github.com/automoto/xmas-tree/config"
	"github.com/automoto/xmas-tree/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSnowflake spawns a snowflake somewhere above the viewport
func CreateSnowflake(ecs *ecs.ECS, r gamemath.Source, width, height float64) *donburi.Entry {
	entry := archetypes.Snowflake.Spawn(ecs)
	components.Snowflake.SetValue(entry, RandomSnowflake(r, width, height))
	return entry
}

// RandomSnowflake draws a fresh snowflake: x across the width, y in the
// viewport-high band above the top edge.
func RandomSnowflake(r gamemath.Source, width, height float64) components.SnowflakeData {
	return components.SnowflakeData{
		X:            gamemath.Range(r, 0, width),
		Y:            gamemath.Range(r, -height, 0),
		Speed:        gamemath.Range(r, cfg.Snow.SpeedMin, cfg.Snow.SpeedMax),
		Size:         gamemath.Range(r, cfg.Snow.SizeMin, cfg.Snow.SizeMax),
		Angle:        gamemath.Range(r, 0, 2*math.Pi),
		AngularSpeed: gamemath.Range(r, -cfg.Snow.AngularSpeedMax, cfg.Snow.AngularSpeedMax),
	}
}
