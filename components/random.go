package components

import (
	"math/rand"

	"github.com/yohamta/donburi"
)

// RandomData is the singleton random source shared by every system
type RandomData struct {
	Rand *rand.Rand
}

var Random = donburi.NewComponentType[RandomData]()
