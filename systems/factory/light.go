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

// CreateLight creates a visible light with an explicit timer and dwell interval
func CreateLight(ecs *ecs.ECS, x, y float64, c color.RGBA, timer, flashInterval int) *donburi.Entry {
	entry := archetypes.Light.Spawn(ecs)
	components.Light.SetValue(entry, components.LightData{
		X:             x,
		Y:             y,
		Color:         c,
		Visible:       true,
		Timer:         timer,
		FlashInterval: flashInterval,
	})
	return entry
}

// CreateRandomLight places a light inside the tree's bounding box with a
// palette color and a random phase so lights twinkle out of step.
func CreateRandomLight(ecs *ecs.ECS, r gamemath.Source, scene *components.SceneData) *donburi.Entry {
	center := scene.Width / 2
	halfTree := cfg.Tree.Width / 2

	x := gamemath.Range(r, center-halfTree+cfg.Light.Inset, center+halfTree-cfg.Light.Inset)
	y := gamemath.Range(r, scene.TreeBase-cfg.Tree.Height, scene.TreeBase)
	c := gamemath.Pick(r, cfg.Palette)

	return CreateLight(ecs, x, y, c,
		gamemath.IntRange(r, 0, cfg.Light.TimerMax),
		RandomFlashInterval(r),
	)
}

// RandomFlashInterval draws a dwell time in [IntervalMin, IntervalMax) frames
func RandomFlashInterval(r gamemath.Source) int {
	return gamemath.IntRange(r, cfg.Light.IntervalMin, cfg.Light.IntervalMax)
}
