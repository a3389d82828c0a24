package systems

import (
	"math/rand"
	"testing"

	"github.com/automoto/xmas-tree/components"
)

func TestAdvanceBackground_Drifts(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	b := components.BackgroundData{X: 120, Y: 40, Kind: components.BackgroundStar, Size: 8, Alpha: 180, Speed: 1.5}

	AdvanceBackground(&b, r, 800, 600)

	if b.Y != 41.5 || b.X != 120 {
		t.Errorf("position = (%v, %v), want (120, 41.5)", b.X, b.Y)
	}
}

func TestAdvanceBackground_WrapsKeepingLook(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	b := components.BackgroundData{X: 120, Y: 599, Kind: components.BackgroundMoon, Size: 12, Alpha: 200, Speed: 2}

	AdvanceBackground(&b, r, 800, 600)

	if b.Y != 0 {
		t.Errorf("wrapped Y = %v, want 0", b.Y)
	}
	if b.X < 0 || b.X >= 800 {
		t.Errorf("wrapped X = %v outside [0, 800)", b.X)
	}
	if b.Size != 12 || b.Alpha != 200 || b.Speed != 2 || b.Kind != components.BackgroundMoon {
		t.Errorf("wrap must keep kind, size, alpha and speed: %+v", b)
	}
}

func TestBackgroundKindString(t *testing.T) {
	if components.BackgroundStar.String() != "star" || components.BackgroundMoon.String() != "moon" {
		t.Errorf("unexpected names %q %q", components.BackgroundStar, components.BackgroundMoon)
	}
}
