package systems

import (
	cfg "github.com/automoto/xmas-tree/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawGifts renders the two wrapped boxes flanking the trunk
func DrawGifts(ecs *ecs.ECS, screen *ebiten.Image) {
	scene := GetScene(ecs)
	center := scene.Width / 2
	base := scene.TreeBase
	box := cfg.Gift.BoxSize

	// Boxes
	vector.FillRect(screen, float32(center-2*box), float32(base+80), float32(box), float32(box), cfg.Gift.BoxColor, false)
	vector.FillRect(screen, float32(center+box), float32(base+80), float32(box), float32(box), cfg.Gift.BoxColor, false)

	// Bows
	fillTriangle(screen,
		center-1.5*box, base+80,
		center-box, base+50,
		center-box/2, base+80,
		cfg.Gift.BowColor)
	fillTriangle(screen,
		center+1.5*box, base+80,
		center+box, base+50,
		center+box/2, base+80,
		cfg.Gift.BowColor)

	// Bow centers
	vector.FillCircle(screen, float32(center-1.5*box), float32(base+80), 7.5, cfg.Gift.CenterColor, true)
	vector.FillCircle(screen, float32(center+1.5*box), float32(base+80), 7.5, cfg.Gift.CenterColor, true)
}
