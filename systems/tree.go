package systems

import (
	cfg "github.com/automoto/xmas-tree/config"
	"github.com/automoto/xmas-tree/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawSky clears the canvas to the night sky
func DrawSky(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Scene.BackgroundColor)
}

// DrawTree renders the trunk, the stacked foliage layers and the top star.
func DrawTree(ecs *ecs.ECS, screen *ebiten.Image) {
	scene := GetScene(ecs)
	center := scene.Width / 2
	base := scene.TreeBase

	vector.FillRect(screen,
		float32(center-cfg.Tree.TrunkWidth/2), float32(base),
		float32(cfg.Tree.TrunkWidth), float32(cfg.Tree.TrunkHeight),
		cfg.Tree.TrunkColor, false)

	for i := 0; i < cfg.Tree.Layers; i++ {
		apex, left, right := gamemath.TreeLayer(center, base,
			cfg.Tree.Width, cfg.Tree.Height, cfg.Tree.TaperRatio, cfg.Tree.Layers, i)
		fillTriangle(screen, apex.X, apex.Y, left.X, left.Y, right.X, right.Y, cfg.Tree.FoliageColor)
	}

	fillStar(screen,
		center, base-cfg.Tree.Height-cfg.Tree.StarOffset,
		cfg.Tree.StarRadius1, cfg.Tree.StarRadius2, cfg.Tree.StarPoints,
		cfg.Tree.StarColor)
}

// DrawRibbon renders the cross-shaped ribbon and its knot below the tree
func DrawRibbon(ecs *ecs.ECS, screen *ebiten.Image) {
	scene := GetScene(ecs)
	center := float32(scene.Width / 2)
	base := float32(scene.TreeBase)

	vector.FillRect(screen, center-75, base+30, 150, 15, cfg.Ribbon.Color, false)
	vector.FillRect(screen, center-7.5, base+30, 15, 45, cfg.Ribbon.Color, false)
	vector.FillCircle(screen, center, base+37.5, 10, cfg.Ribbon.KnotColor, true)
}
