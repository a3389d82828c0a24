package main

import (
	"flag"
	"log"

	"github.com/automoto/xmas-tree/config"
	"github.com/automoto/xmas-tree/fonts"
	"github.com/automoto/xmas-tree/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
	Resize(width, height int)
}

type Game struct {
	width, height int
	scene         Scene
}

func NewGame() *Game {
	return &Game{
		width:  config.C.Width,
		height: config.C.Height,
		scene:  scenes.NewTreeScene(config.C.Width, config.C.Height),
	}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout follows the window: the canvas is always the outside size.
func (g *Game) Layout(width, height int) (int, int) {
	if width > 0 && height > 0 && (width != g.width || height != g.height) {
		g.width, g.height = width, height
		g.scene.Resize(width, height)
	}
	return g.width, g.height
}

func main() {
	configPath := flag.String("config", "xmas.yaml", "optional YAML file overriding scene defaults")
	seed := flag.Int64("seed", 0, "random seed (0 = seed from the clock)")
	message := flag.String("message", "", "greeting text")
	fontPath := flag.String("font", "", "TTF file for the greeting, e.g. a CJK font")
	debug := flag.Bool("debug", false, "start with the debug overlay visible")
	flag.Parse()

	if err := config.LoadOverrides(*configPath); err != nil {
		log.Printf("Warning: Could not load scene config: %v", err)
	}

	// Flags win over the config file
	if *seed != 0 {
		config.C.Seed = *seed
	}
	if *message != "" {
		config.Message.Text = *message
	}
	if *fontPath != "" {
		config.Message.FontPath = *fontPath
	}
	if *debug {
		config.Debug.Overlay = true
	}

	if err := fonts.LoadDefaults(config.Message.Size); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}
	if config.Message.FontPath != "" {
		if err := fonts.LoadFontFile(fonts.Greeting, config.Message.FontPath, config.Message.Size); err != nil {
			log.Printf("Warning: Could not load greeting font, using the bundled one: %v", err)
		}
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
