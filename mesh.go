package sunstroke

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// whitePixel is a shared 1x1 white image used to draw solid-color triangles.
// Lazily initialized; the package is single-threaded like the game loop.
var whitePixel *ebiten.Image

// WhitePixel returns the shared 1x1 white image to pass to DrawTriangles
// alongside the vertices from StrokeMesh and ShapeMesh.
func WhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}

// buildFan fan-triangulates a closed polygon and bakes the color into the
// vertices. UVs sit at the center of the white pixel. For N points the mesh
// has N vertices and 3*(N-2) indices; fewer than 3 points yields an empty
// mesh.
func buildFan(points []Vec2, col Color) ([]ebiten.Vertex, []uint16) {
	n := len(points)
	if n < 3 {
		return nil, nil
	}
	verts := make([]ebiten.Vertex, n)
	inds := make([]uint16, (n-2)*3)
	for i, p := range points {
		verts[i] = ebiten.Vertex{
			DstX: float32(p.X), DstY: float32(p.Y),
			SrcX: 0.5, SrcY: 0.5,
			ColorR: float32(col.R),
			ColorG: float32(col.G),
			ColorB: float32(col.B),
			ColorA: float32(col.A),
		}
	}
	for i := 0; i < n-2; i++ {
		inds[i*3+0] = 0
		inds[i*3+1] = uint16(i + 1)
		inds[i*3+2] = uint16(i + 2)
	}
	return verts, inds
}

// StrokeMesh returns vertices and indices for one stroke's hit-area polygon,
// colored by its CurrentColor. Unpainted strokes render in the blank canvas
// tone.
func StrokeMesh(s *Stroke) ([]ebiten.Vertex, []uint16) {
	return buildFan(s.Outline(), s.CurrentColor.Color())
}

// ShapeMesh returns vertices and indices for one reference shape, colored by
// its fixed pigment.
func ShapeMesh(sh ReferenceShape) ([]ebiten.Vertex, []uint16) {
	return buildFan(sh.Flatten(), sh.Color.Color())
}
