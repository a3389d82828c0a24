package systems

import (
	"image"
	"image/color"

	"github.com/automoto/xmas-tree/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	// whiteSubImage is the 1x1 source texture for filled paths
	whiteSubImage *ebiten.Image

	pathVertices []ebiten.Vertex
	pathIndices  []uint16
	pathOp       = &ebiten.DrawTrianglesOptions{FillRule: ebiten.FillRuleNonZero, AntiAlias: true}
)

func getWhiteSubImage() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// fillPath fills a closed path with a solid color
func fillPath(screen *ebiten.Image, path *vector.Path, c color.Color) {
	pathVertices, pathIndices = path.AppendVerticesAndIndicesForFilling(pathVertices[:0], pathIndices[:0]) //nolint:staticcheck // TODO: migrate to vector.FillPath

	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	r := float32(n.R) / 0xff
	g := float32(n.G) / 0xff
	b := float32(n.B) / 0xff
	a := float32(n.A) / 0xff
	for i := range pathVertices {
		pathVertices[i].SrcX = 1
		pathVertices[i].SrcY = 1
		pathVertices[i].ColorR = r
		pathVertices[i].ColorG = g
		pathVertices[i].ColorB = b
		pathVertices[i].ColorA = a
	}

	screen.DrawTriangles(pathVertices, pathIndices, getWhiteSubImage(), pathOp)
}

func fillTriangle(screen *ebiten.Image, x1, y1, x2, y2, x3, y3 float64, c color.Color) {
	var path vector.Path
	path.MoveTo(float32(x1), float32(y1))
	path.LineTo(float32(x2), float32(y2))
	path.LineTo(float32(x3), float32(y3))
	path.Close()
	fillPath(screen, &path, c)
}

// fillStar draws a star whose tips alternate between radius1 and radius2
func fillStar(screen *ebiten.Image, x, y, radius1, radius2 float64, points int, c color.Color) {
	verts := gamemath.StarVertices(x, y, radius1, radius2, points)
	if len(verts) == 0 {
		return
	}

	var path vector.Path
	path.MoveTo(float32(verts[0].X), float32(verts[0].Y))
	for _, v := range verts[1:] {
		path.LineTo(float32(v.X), float32(v.Y))
	}
	path.Close()
	fillPath(screen, &path, c)
}

// fillHeart draws a heart hanging from (x, y)
func fillHeart(screen *ebiten.Image, x, y, size float64, c color.Color) {
	var path vector.Path
	path.MoveTo(float32(x), float32(y))
	for _, seg := range gamemath.HeartSegments(x, y, size) {
		path.CubicTo(
			float32(seg.C1.X), float32(seg.C1.Y),
			float32(seg.C2.X), float32(seg.C2.Y),
			float32(seg.End.X), float32(seg.End.Y),
		)
	}
	path.Close()
	fillPath(screen, &path, c)
}

// withAlpha returns c with its alpha replaced, as a straight-alpha color
func withAlpha(c color.RGBA, a uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: a}
}
