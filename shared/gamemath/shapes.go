package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// CubicSegment is one cubic bezier segment continuing from the previous end point.
type CubicSegment struct {
	C1, C2, End dmath.Vec2
}

// StarVertices returns the 2*points outline of a star centered at (x, y).
// Even vertices lie on radius1, odd vertices on radius2 offset by half a step.
func StarVertices(x, y, radius1, radius2 float64, points int) []dmath.Vec2 {
	if points <= 0 {
		return nil
	}
	step := 2 * math.Pi / float64(points)
	half := step / 2

	verts := make([]dmath.Vec2, 0, points*2)
	for i := 0; i < points; i++ {
		a := float64(i) * step
		verts = append(verts,
			dmath.NewVec2(x+math.Cos(a)*radius1, y+math.Sin(a)*radius1),
			dmath.NewVec2(x+math.Cos(a+half)*radius2, y+math.Sin(a+half)*radius2),
		)
	}
	return verts
}

// HeartSegments returns the closed heart outline starting and ending at (x, y).
// The lobes extend size to either side and the tip sits 2*size below the start.
func HeartSegments(x, y, size float64) []CubicSegment {
	return []CubicSegment{
		{
			C1:  dmath.NewVec2(x, y-size/2),
			C2:  dmath.NewVec2(x-size, y-size/2),
			End: dmath.NewVec2(x-size, y),
		},
		{
			C1:  dmath.NewVec2(x-size, y+size/1.5),
			C2:  dmath.NewVec2(x, y+size*1.5),
			End: dmath.NewVec2(x, y+size*2),
		},
		{
			C1:  dmath.NewVec2(x, y+size*1.5),
			C2:  dmath.NewVec2(x+size, y+size/1.5),
			End: dmath.NewVec2(x+size, y),
		},
		{
			C1:  dmath.NewVec2(x+size, y-size/2),
			C2:  dmath.NewVec2(x, y-size/2),
			End: dmath.NewVec2(x, y),
		},
	}
}

// TreeLayer returns the apex and base corners of foliage layer i (0 = bottom).
// Each layer is height/layers tall and loses taper*width/layers of width per step.
func TreeLayer(centerX, base, width, height, taper float64, layers, i int) (apex, left, right dmath.Vec2) {
	layerWidth := width - float64(i)*(width*taper)/float64(layers)
	layerHeight := height / float64(layers)
	y1 := base - float64(i)*layerHeight
	y2 := y1 - layerHeight

	apex = dmath.NewVec2(centerX, y2)
	left = dmath.NewVec2(centerX-layerWidth/2, y1)
	right = dmath.NewVec2(centerX+layerWidth/2, y1)
	return apex, left, right
}
