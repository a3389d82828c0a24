package scenes

import (
	"sync"

	"github.com/automoto/xmas-tree/components"
	cfg "github.com/automoto/xmas-tree/config"
	"github.com/automoto/xmas-tree/systems"
	"github.com/automoto/xmas-tree/systems/factory"
	"github.com/automoto/xmas-tree/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// The hit-region space must cover any canvas the window can grow to.
const (
	spaceSize     = 4096
	spaceCellSize = 64
)

// TreeScene is the animated Christmas tree
type TreeScene struct {
	ecs    *ecs.ECS
	helpUI *ui.HelpUI
	once   sync.Once

	width, height float64
}

// NewTreeScene creates the scene for an initial canvas size
func NewTreeScene(width, height int) *TreeScene {
	return &TreeScene{width: float64(width), height: float64(height)}
}

func (ts *TreeScene) Update() error {
	ts.once.Do(ts.configure)
	ts.ecs.Update()

	settings := systems.GetOrCreateSettings(ts.ecs)
	if settings.ShowHelp {
		ts.helpUI.Update(systems.CountOrnaments(ts.ecs))
	}
	if settings.QuitRequested {
		return ebiten.Termination
	}
	return nil
}

func (ts *TreeScene) Draw(screen *ebiten.Image) {
	if ts.ecs == nil {
		screen.Fill(cfg.Scene.BackgroundColor)
		return
	}
	ts.ecs.Draw(screen)

	if systems.GetOrCreateSettings(ts.ecs).ShowHelp {
		ts.helpUI.Draw(screen)
	}
}

// Resize is called whenever the outside canvas size changes
func (ts *TreeScene) Resize(width, height int) {
	ts.width, ts.height = float64(width), float64(height)
	if ts.ecs != nil {
		systems.Resize(ts.ecs, ts.width, ts.height)
	}
}

func (ts *TreeScene) configure() {
	ts.ecs = NewTreeWorld(ts.width, ts.height, cfg.C.Seed)
	ts.helpUI = ui.NewHelpUI()
}

// NewTreeWorld builds the populated world with every system and renderer
// registered. Renderers run back to front: sky, stars and moons, snow, tree,
// lights, ornaments, ribbon, gifts, greeting, then the overlays.
func NewTreeWorld(width, height float64, seed int64) *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())

	r := systems.SeedRandom(e, seed)
	sceneEntry := factory.CreateScene(e, width, height)
	scene := components.Scene.Get(sceneEntry)

	factory.CreateSpace(e, spaceSize, spaceSize, spaceCellSize, spaceCellSize)
	factory.CreateTree(e, scene)
	factory.PopulateScene(e, r, scene)

	// Systems that always run
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateSettings)
	e.AddSystem(systems.UpdatePause)

	// Animation systems freeze while paused
	e.AddSystem(systems.WithPauseCheck(systems.UpdateBackground))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateSnow))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateLights))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateMessage))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateFrame))

	// Decorating works while paused
	e.AddSystem(systems.UpdateOrnaments)
	e.AddSystem(systems.UpdateFade)

	// Add renderers
	e.AddRenderer(cfg.Default, systems.DrawSky)
	e.AddRenderer(cfg.Default, systems.DrawBackground)
	e.AddRenderer(cfg.Default, systems.DrawSnow)
	e.AddRenderer(cfg.Default, systems.DrawTree)
	e.AddRenderer(cfg.Default, systems.DrawLights)
	e.AddRenderer(cfg.Default, systems.DrawOrnaments)
	e.AddRenderer(cfg.Default, systems.DrawRibbon)
	e.AddRenderer(cfg.Default, systems.DrawGifts)
	e.AddRenderer(cfg.Default, systems.DrawMessage)
	e.AddRenderer(cfg.Default, systems.DrawDebug)
	e.AddRenderer(cfg.Default, systems.DrawPause)
	e.AddRenderer(cfg.Default, systems.DrawFade)

	return e
}
