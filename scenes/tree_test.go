package scenes

import (
	"testing"

	"github.com/automoto/xmas-tree/components"
	cfg "github.com/automoto/xmas-tree/config"
	"github.com/automoto/xmas-tree/systems"
	"github.com/automoto/xmas-tree/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

func TestNewTreeWorld(t *testing.T) {
	e := NewTreeWorld(800, 600, 42)

	count := func(c donburi.IComponentType) int {
		return donburi.NewQuery(filter.Contains(c)).Count(e.World)
	}
	if got := count(tags.Snowflake); got != cfg.Snow.Count {
		t.Errorf("snowflakes = %d, want %d", got, cfg.Snow.Count)
	}
	if got := count(tags.Light); got != cfg.Light.Count {
		t.Errorf("lights = %d, want %d", got, cfg.Light.Count)
	}
	if got := systems.CountOrnaments(e); got != cfg.Ornament.Count {
		t.Errorf("ornaments = %d, want %d", got, cfg.Ornament.Count)
	}
	if got := count(tags.Background); got != cfg.Background.Count {
		t.Errorf("background = %d, want %d", got, cfg.Background.Count)
	}
	if got := count(tags.Tree); got != 1 {
		t.Errorf("trees = %d, want 1", got)
	}

	scene := systems.GetScene(e)
	if scene.Width != 800 || scene.Height != 600 || scene.TreeBase != 500 {
		t.Errorf("scene = %+v", *scene)
	}
}

func TestNewTreeWorld_SameSeedSameScene(t *testing.T) {
	a := NewTreeWorld(800, 600, 2024)
	b := NewTreeWorld(800, 600, 2024)

	var xa, xb []float64
	components.Snowflake.Each(a.World, func(e *donburi.Entry) {
		xa = append(xa, components.Snowflake.Get(e).X)
	})
	components.Snowflake.Each(b.World, func(e *donburi.Entry) {
		xb = append(xb, components.Snowflake.Get(e).X)
	})

	if len(xa) != len(xb) {
		t.Fatalf("different snowflake counts %d vs %d", len(xa), len(xb))
	}
	for i := range xa {
		if xa[i] != xb[i] {
			t.Fatalf("snowflake %d differs: %v vs %v", i, xa[i], xb[i])
		}
	}
}

func TestTreeScene_ResizeBeforeFirstUpdate(t *testing.T) {
	ts := NewTreeScene(800, 600)
	ts.Resize(1024, 768)

	if ts.width != 1024 || ts.height != 768 {
		t.Errorf("pending size = %vx%v, want 1024x768", ts.width, ts.height)
	}
}
