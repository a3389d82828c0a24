package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// OrnamentShape selects how an ornament is drawn
type OrnamentShape int

const (
	ShapeCircle OrnamentShape = iota
	ShapeStar
	ShapeHeart
)

func (s OrnamentShape) String() string {
	switch s {
	case ShapeStar:
		return "star"
	case ShapeHeart:
		return "heart"
	default:
		return "circle"
	}
}

// OrnamentData is a decoration hung on the tree. It never changes after creation.
type OrnamentData struct {
	X, Y  float64
	Color color.RGBA
	Size  float64
	Shape OrnamentShape
}

var Ornament = donburi.NewComponentType[OrnamentData]()
