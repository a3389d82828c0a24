package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/xmas-tree/components"
	"github.com/automoto/xmas-tree/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

// DrawDebug outlines the hit regions and prints entity counts
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)

		for _, obj := range space.Objects() {
			// Determine color based on tags
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvTree) {
				c = color.RGBA{255, 0, 255, 255} // Magenta
			}

			x, y := float32(obj.X), float32(obj.Y)
			w, h := float32(obj.W), float32(obj.H)

			// Draw outline
			vector.FillRect(screen, x, y, w, 1, c, false)     // Top
			vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
			vector.FillRect(screen, x, y, 1, h, c, false)     // Left
			vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
		}
	}

	scene := GetScene(ecs)
	visible := 0
	components.Light.Each(ecs.World, func(e *donburi.Entry) {
		if components.Light.Get(e).Visible {
			visible++
		}
	})

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
		"TPS %.1f  FPS %.1f  frame %d\ncanvas %.0fx%.0f  tree base %.0f\nsnow %d  lights %d/%d lit  ornaments %d  sky %d",
		ebiten.ActualTPS(), ebiten.ActualFPS(), scene.Frame,
		scene.Width, scene.Height, scene.TreeBase,
		countTagged(ecs, tags.Snowflake), visible, countTagged(ecs, tags.Light),
		CountOrnaments(ecs), countTagged(ecs, tags.Background),
	), 8, 8)
}

func countTagged(ecs *ecs.ECS, tag donburi.IComponentType) int {
	return donburi.NewQuery(filter.Contains(tag)).Count(ecs.World)
}
