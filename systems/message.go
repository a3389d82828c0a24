package systems

import (
	"image"
	"image/color"
	"math"

	"github.com/automoto/xmas-tree/components"
	cfg "github.com/automoto/xmas-tree/config"
	"github.com/automoto/xmas-tree/fonts"
	"github.com/automoto/xmas-tree/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// Cached font face for message rendering (lazy initialized)
var messageFontFace font.Face

// glowRings is how many concentric outlines approximate the blur
const glowRings = 3

// UpdateMessage steps the greeting's fade and glow pulses one frame
func UpdateMessage(ecs *ecs.ECS) {
	components.Message.Each(ecs.World, func(e *donburi.Entry) {
		AdvanceMessage(components.Message.Get(e))
	})
}

// AdvanceMessage steps alpha and glow radius independently. Each bounces
// between its bounds, clamping to the bound and reversing when it passes it.
func AdvanceMessage(m *components.MessageData) {
	m.Alpha, m.FadeDirection = gamemath.Bounce(m.Alpha, m.FadeDirection,
		cfg.Message.AlphaStep, cfg.Message.AlphaMin, cfg.Message.AlphaMax)
	m.GlowRadius, m.GlowDirection = gamemath.Bounce(m.GlowRadius, m.GlowDirection,
		cfg.Message.GlowStep, cfg.Message.GlowMin, cfg.Message.GlowMax)
}

// DrawMessage renders the greeting centered on its position with a soft glow
// and a dark outline, both following the current alpha.
func DrawMessage(ecs *ecs.ECS, screen *ebiten.Image) {
	// Lazy initialize cached font face
	if messageFontFace == nil {
		messageFontFace = fonts.Greeting.Get()
	}

	components.Message.Each(ecs.World, func(e *donburi.Entry) {
		m := components.Message.Get(e)
		if m.Text == "" {
			return
		}

		bounds := text.BoundString(messageFontFace, m.Text) //nolint:staticcheck // TODO: migrate to text/v2
		x, y := centeredOrigin(bounds, m.X, m.Y)
		alpha := uint8(math.Round(m.Alpha))

		// Glow: faint copies on rings out to the glow radius
		glow := withAlpha(m.Color, uint8(float64(alpha)*0.12))
		for ring := 1; ring <= glowRings; ring++ {
			radius := m.GlowRadius * float64(ring) / glowRings
			drawTextRing(screen, m.Text, x, y, radius, glow)
		}

		// Outline
		outline := color.NRGBA{A: alpha}
		drawTextRing(screen, m.Text, x, y, cfg.Message.OutlineWidth, outline)

		text.Draw(screen, m.Text, messageFontFace, x, y, withAlpha(m.Color, alpha)) //nolint:staticcheck // TODO: migrate to text/v2
	})
}

// centeredOrigin returns the dot position that centers bounds on (cx, cy)
func centeredOrigin(bounds image.Rectangle, cx, cy float64) (int, int) {
	x := cx - float64(bounds.Min.X+bounds.Max.X)/2
	y := cy - float64(bounds.Min.Y+bounds.Max.Y)/2
	return int(math.Round(x)), int(math.Round(y))
}

// drawTextRing draws the text eight times around (x, y) at the given radius
func drawTextRing(screen *ebiten.Image, s string, x, y int, radius float64, c color.Color) {
	if radius <= 0 {
		return
	}
	for i := 0; i < 8; i++ {
		a := float64(i) * math.Pi / 4
		dx := int(math.Round(math.Cos(a) * radius))
		dy := int(math.Round(math.Sin(a) * radius))
		text.Draw(screen, s, messageFontFace, x+dx, y+dy, c) //nolint:staticcheck // TODO: migrate to text/v2
	}
}
