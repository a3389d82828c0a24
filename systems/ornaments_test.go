package systems

import (
	"testing"

	"github.com/automoto/xmas-tree/components"
	cfg "github.com/automoto/xmas-tree/config"
	"github.com/yohamta/donburi"
)

func TestUpdateOrnaments_ClickInsideTree(t *testing.T) {
	e := newTestWorld(t)

	// 800x600: tree region spans x in (200, 600), y in (0, 500)
	QueueClick(e, 400, 300)
	UpdateOrnaments(e)

	if got := CountOrnaments(e); got != 1 {
		t.Fatalf("expected 1 ornament, got %d", got)
	}

	entry, _ := components.Ornament.First(e.World)
	o := components.Ornament.Get(entry)
	if o.X != 400 || o.Y != 300 {
		t.Errorf("ornament at (%v, %v), want (400, 300)", o.X, o.Y)
	}
	if o.Size < cfg.Ornament.SizeMin || o.Size >= cfg.Ornament.SizeMax {
		t.Errorf("size %v outside [%v, %v)", o.Size, cfg.Ornament.SizeMin, cfg.Ornament.SizeMax)
	}

	inPalette := false
	for _, c := range cfg.Palette {
		if c == o.Color {
			inPalette = true
		}
	}
	if !inPalette {
		t.Errorf("color %v not in palette", o.Color)
	}

	if clicks := getOrCreateInput(e).Clicks; len(clicks) != 0 {
		t.Errorf("clicks should be consumed, got %d", len(clicks))
	}
}

func TestUpdateOrnaments_ClickOutsideIgnored(t *testing.T) {
	e := newTestWorld(t)

	QueueClick(e, 50, 50)   // sky
	QueueClick(e, 400, 550) // below the tree base
	UpdateOrnaments(e)

	if got := CountOrnaments(e); got != 0 {
		t.Errorf("expected no ornaments, got %d", got)
	}
}

func TestUpdateOrnaments_EdgesAreOutside(t *testing.T) {
	e := newTestWorld(t)

	QueueClick(e, 200, 300) // left edge
	QueueClick(e, 600, 300) // right edge
	QueueClick(e, 400, 0)   // top edge
	QueueClick(e, 400, 500) // tree base
	UpdateOrnaments(e)

	if got := CountOrnaments(e); got != 0 {
		t.Errorf("edge clicks must be ignored, got %d ornaments", got)
	}

	QueueClick(e, 200.5, 499.5)
	UpdateOrnaments(e)
	if got := CountOrnaments(e); got != 1 {
		t.Errorf("click just inside the corner should hang one ornament, got %d", got)
	}
}

func TestUpdateOrnaments_WhilePaused(t *testing.T) {
	e := newTestWorld(t)
	GetOrCreatePause(e).IsPaused = true

	QueueClick(e, 400, 300)
	QueueClick(e, 450, 250)
	UpdateOrnaments(e)

	if got := CountOrnaments(e); got != 2 {
		t.Errorf("expected 2 ornaments while paused, got %d", got)
	}
}

func TestUpdateOrnaments_FollowsResize(t *testing.T) {
	e := newTestWorld(t)
	Resize(e, 1200, 900)

	// New region: x in (400, 800), y in (300, 800)
	QueueClick(e, 300, 300)
	UpdateOrnaments(e)
	if got := CountOrnaments(e); got != 0 {
		t.Fatalf("click in the old region should miss after resize, got %d", got)
	}

	QueueClick(e, 600, 700)
	UpdateOrnaments(e)
	if got := CountOrnaments(e); got != 1 {
		t.Errorf("click in the new region should hit, got %d", got)
	}
}

func TestCountOrnaments(t *testing.T) {
	e := newTestWorld(t)
	for i := 0; i < 3; i++ {
		QueueClick(e, 400, float64(100+i*50))
	}
	UpdateOrnaments(e)

	count := 0
	components.Ornament.Each(e.World, func(*donburi.Entry) { count++ })
	if got := CountOrnaments(e); got != count || got != 3 {
		t.Errorf("CountOrnaments = %d, want 3", got)
	}
}
