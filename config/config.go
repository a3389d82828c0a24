package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the single render layer; renderers are drawn in registration order.
const Default ecs.LayerID = 0

type Config struct {
	Width  int
	Height int
	TPS    int
	Title  string
	Seed   int64 // 0 = seed from the clock
}

// SceneConfig contains canvas-level layout values
type SceneConfig struct {
	BackgroundColor color.RGBA
	TreeBaseOffset  float64 // distance from the bottom edge to the tree base
}

// TreeConfig contains the static tree geometry
type TreeConfig struct {
	Width      float64
	Height     float64
	Layers     int
	TaperRatio float64 // fraction of the width removed across all layers

	TrunkWidth  float64
	TrunkHeight float64

	FoliageColor color.RGBA
	TrunkColor   color.RGBA

	// Top star
	StarOffset  float64 // distance above the tree apex
	StarRadius1 float64
	StarRadius2 float64
	StarPoints  int
	StarColor   color.RGBA
}

// SnowConfig contains snowflake spawn ranges
type SnowConfig struct {
	Count           int
	SpeedMin        float64
	SpeedMax        float64
	SizeMin         float64
	SizeMax         float64
	AngularSpeedMax float64 // angular speed is drawn from [-max, max)
	SwayAmplitude   float64
	Color           color.RGBA
}

// LightConfig contains blinking light values
type LightConfig struct {
	Count        int
	Inset        float64 // horizontal inset from the tree edges
	TimerMax     int     // initial timer is drawn from [0, TimerMax)
	IntervalMin  int
	IntervalMax  int
	Diameter     float32
	HaloDiameter float32
	HaloStroke   float32
	FillAlpha    uint8
	HaloAlpha    uint8
}

// OrnamentConfig contains ornament spawn values
type OrnamentConfig struct {
	Count           int
	Inset           float64 // horizontal inset from the tree edges
	VerticalInset   float64
	SizeMin         float64
	SizeMax         float64
	CircleThreshold float64 // u < CircleThreshold => circle
	StarThreshold   float64 // u < StarThreshold => star, else heart
}

// BackgroundConfig contains drifting star/moon values
type BackgroundConfig struct {
	Count     int
	SizeMin   float64
	SizeMax   float64
	AlphaMin  float64
	AlphaMax  float64
	SpeedMin  float64
	SpeedMax  float64
	StarColor color.RGBA
	MoonColor color.RGBA
}

// MessageConfig contains the pulsing greeting values
type MessageConfig struct {
	Text  string
	Size  float64
	Color color.RGBA

	AlphaMin  float64
	AlphaMax  float64
	AlphaStep float64

	GlowMin  float64
	GlowMax  float64
	GlowStep float64

	OffsetAboveTree       float64 // initial distance above the tree top
	ResizeOffsetAboveTree float64 // distance above the tree top after a resize
	OutlineWidth          float64

	FontPath string // optional TTF; empty uses the bundled Go font
}

// RibbonConfig contains the ribbon under the tree
type RibbonConfig struct {
	Color     color.RGBA
	KnotColor color.RGBA
}

// GiftConfig contains the two gift boxes
type GiftConfig struct {
	BoxColor    color.RGBA
	BowColor    color.RGBA
	CenterColor color.RGBA
	BoxSize     float64
}

// FadeConfig contains the intro fade values
type FadeConfig struct {
	Duration float32 // seconds
	Color    color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay  bool // Start with the debug overlay visible
	ShowHelp bool // Start with the help panel visible
}

var C *Config
var Scene SceneConfig
var Tree TreeConfig
var Snow SnowConfig
var Light LightConfig
var Ornament OrnamentConfig
var Background BackgroundConfig
var Message MessageConfig
var Ribbon RibbonConfig
var Gift GiftConfig
var Fade FadeConfig
var Debug DebugConfig

// Palette is shared by lights and ornaments
var Palette []color.RGBA

// Shared RGBA color constants
var (
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red        = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Yellow     = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Gold       = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	SkyBlue    = color.RGBA{R: 0, G: 191, B: 255, A: 255}
	HotPink    = color.RGBA{R: 255, G: 105, B: 180, A: 255}
	Green      = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Orange     = color.RGBA{R: 255, G: 165, B: 0, A: 255}
	BlueViolet = color.RGBA{R: 138, G: 43, B: 226, A: 255}
	Night      = color.RGBA{R: 10, G: 10, B: 30, A: 255}
	Black      = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

func init() {
	C = &Config{
		Width:  800,
		Height: 600,
		TPS:    60,
		Title:  "Merry Christmas",
	}

	Palette = []color.RGBA{Red, Yellow, SkyBlue, White, HotPink, Green, Orange, BlueViolet}

	Scene = SceneConfig{
		BackgroundColor: Night,
		TreeBaseOffset:  100,
	}

	Tree = TreeConfig{
		Width:      400,
		Height:     500,
		Layers:     10,
		TaperRatio: 0.9,

		TrunkWidth:  50,
		TrunkHeight: 80,

		FoliageColor: color.RGBA{R: 34, G: 139, B: 34, A: 255},
		TrunkColor:   color.RGBA{R: 101, G: 67, B: 33, A: 255},

		StarOffset:  40,
		StarRadius1: 30,
		StarRadius2: 15,
		StarPoints:  5,
		StarColor:   Gold,
	}

	Snow = SnowConfig{
		Count:           200,
		SpeedMin:        1,
		SpeedMax:        4,
		SizeMin:         2,
		SizeMax:         6,
		AngularSpeedMax: 0.02,
		SwayAmplitude:   0.5,
		Color:           White,
	}

	Light = LightConfig{
		Count:        50,
		Inset:        20,
		TimerMax:     60,
		IntervalMin:  30,
		IntervalMax:  90,
		Diameter:     10,
		HaloDiameter: 20,
		HaloStroke:   2,
		FillAlpha:    200, // semi-transparent bulb
		HaloAlpha:    100,
	}

	Ornament = OrnamentConfig{
		Count:           30,
		Inset:           30,
		VerticalInset:   20,
		SizeMin:         8,
		SizeMax:         14,
		CircleThreshold: 0.33,
		StarThreshold:   0.66,
	}

	Background = BackgroundConfig{
		Count:     50,
		SizeMin:   5,
		SizeMax:   15,
		AlphaMin:  100,
		AlphaMax:  255,
		SpeedMin:  0.5,
		SpeedMax:  2,
		StarColor: White,
		MoonColor: color.RGBA{R: 255, G: 255, B: 224, A: 255},
	}

	Message = MessageConfig{
		Text:  "Merry Christmas",
		Size:  48,
		Color: Gold,

		AlphaMin:  150,
		AlphaMax:  255,
		AlphaStep: 2,

		GlowMin:  5,
		GlowMax:  15,
		GlowStep: 0.5,

		OffsetAboveTree:       100,
		ResizeOffsetAboveTree: 60,
		OutlineWidth:          2,
	}

	Ribbon = RibbonConfig{
		Color:     Red,
		KnotColor: Gold,
	}

	Gift = GiftConfig{
		BoxColor:    color.RGBA{R: 178, G: 34, B: 34, A: 255},
		BowColor:    Yellow,
		CenterColor: Gold,
		BoxSize:     75,
	}

	Fade = FadeConfig{
		Duration: 1.5,
		Color:    Black,
	}
}
