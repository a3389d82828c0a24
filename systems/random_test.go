package systems

import (
	"testing"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestSeedRandom_Deterministic(t *testing.T) {
	a := SeedRandom(ecs.NewECS(donburi.NewWorld()), 99)
	b := SeedRandom(ecs.NewECS(donburi.NewWorld()), 99)

	for i := 0; i < 10; i++ {
		if x, y := a.Float64(), b.Float64(); x != y {
			t.Fatalf("draw %d differs: %v vs %v", i, x, y)
		}
	}
}

func TestGetOrCreateRandom_ReusesSource(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	r := SeedRandom(e, 7)

	if GetOrCreateRandom(e) != r {
		t.Error("expected the seeded source to be returned")
	}
}

func TestGetOrCreateRandom_CreatesWhenMissing(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	if GetOrCreateRandom(e) == nil {
		t.Fatal("expected a clock-seeded source")
	}
}
