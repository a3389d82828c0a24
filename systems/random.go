package systems

import (
	"math/rand"
	"time"

	"github.com/automoto/xmas-tree/components"
	"github.com/yohamta/donburi/ecs"
)

// SeedRandom installs the scene's random source. A zero seed uses the clock.
func SeedRandom(ecs *ecs.ECS, seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r := rand.New(rand.NewSource(seed))

	entry, ok := components.Random.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Random))
	}
	components.Random.SetValue(entry, components.RandomData{Rand: r})
	return r
}

// GetOrCreateRandom returns the singleton random source, seeding from the clock if needed
func GetOrCreateRandom(ecs *ecs.ECS) *rand.Rand {
	if entry, ok := components.Random.First(ecs.World); ok {
		if rd := components.Random.Get(entry); rd.Rand != nil {
			return rd.Rand
		}
	}
	return SeedRandom(ecs, 0)
}
