package components

import "github.com/yohamta/donburi"

// SnowflakeData is one falling snowflake. Angle accumulates without wrapping.
type SnowflakeData struct {
	X, Y         float64
	Speed        float64 // pixels per frame
	Size         float64 // diameter
	Angle        float64 // sway phase
	AngularSpeed float64
}

var Snowflake = donburi.NewComponentType[SnowflakeData]()
