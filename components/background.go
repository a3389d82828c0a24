package components

import "github.com/yohamta/donburi"

// BackgroundKind is the shape of a drifting sky element
type BackgroundKind int

const (
	BackgroundStar BackgroundKind = iota
	BackgroundMoon
)

func (k BackgroundKind) String() string {
	switch k {
	case BackgroundMoon:
		return "moon"
	default:
		return "star"
	}
}

// BackgroundData is a star or moon drifting down the sky.
// Only X and Y change when it wraps.
type BackgroundData struct {
	X, Y  float64
	Kind  BackgroundKind
	Size  float64
	Alpha float64
	Speed float64
}

var Background = donburi.NewComponentType[BackgroundData]()
