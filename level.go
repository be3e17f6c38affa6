package sunstroke

import (
	"math"

	"github.com/google/uuid"
)

// ellipseSegments is the subdivision count for flattened circles and ellipses.
const ellipseSegments = 32

// pathSegments is the subdivision count per curved path edge.
const pathSegments = 12

// Stroke is a single paintable brush-shaped region. Strokes are append-only
// once a level is generated: CurrentColor is the only field a consumer may
// mutate. ID, Brush, TargetColor, and ZIndex are fixed for the level's
// lifetime.
type Stroke struct {
	ID           string
	Brush        Brush
	TargetColor  Pigment
	CurrentColor Pigment
	ZIndex       int

	outline []Vec2
	aabb    Rect
	mid     Vec2
}

// newStroke builds a stroke with a fresh unique id and caches the geometry
// derived from the brush.
func newStroke(b Brush, target Pigment, z int) *Stroke {
	return &Stroke{
		ID:          uuid.NewString(),
		Brush:       b,
		TargetColor: target,
		ZIndex:      z,
		outline:     b.Outline(),
		aabb:        b.AABB(),
		mid:         b.Midpoint(),
	}
}

// Outline returns the stroke's closed hit-area polygon, used both for fill
// rendering and for point hit testing. The returned slice MUST NOT be
// mutated by the caller.
func (s *Stroke) Outline() []Vec2 {
	return s.outline
}

// AABB returns the stroke's cached bounding box.
func (s *Stroke) AABB() Rect {
	return s.aabb
}

// Midpoint returns the stroke's cached centerline midpoint.
func (s *Stroke) Midpoint() Vec2 {
	return s.mid
}

// Contains reports whether the point (x, y) lies inside the stroke's hit
// area. The bounding box is checked first as a cheap early out.
func (s *Stroke) Contains(x, y float64) bool {
	if !s.aabb.Contains(x, y) {
		return false
	}
	return pointInPolygon(s.outline, x, y)
}

// ShapeKind identifies the geometry variant of a ReferenceShape.
type ShapeKind uint8

const (
	ShapeRect    ShapeKind = iota // axis-aligned rectangle
	ShapeCircle                   // RadiusX == RadiusY
	ShapeEllipse                  // independent radii, optional rotation
	ShapePath                     // compound path of line/quad segments
)

// PathSegment is one edge of a compound path: a straight line to To, or a
// quadratic curve through Ctrl when Quad is true.
type PathSegment struct {
	To   Vec2
	Ctrl Vec2
	Quad bool
}

// ReferenceShape is a background "reality" primitive: the solid answer-key
// geometry the paintable strokes approximate. Immutable once generated and
// never interacted with.
type ReferenceShape struct {
	Kind ShapeKind

	// ShapeRect
	Rect Rect

	// ShapeCircle and ShapeEllipse
	Center   Vec2
	RadiusX  float64
	RadiusY  float64
	Rotation float64 // ellipse long-axis rotation in radians

	// ShapePath
	Start    Vec2
	Segments []PathSegment

	Color  Pigment
	ZIndex int
}

// Flatten returns the shape's outline as a closed polygon, subdividing
// curved edges. Used for rendering and area checks; reference shapes are
// never hit-tested.
func (sh ReferenceShape) Flatten() []Vec2 {
	switch sh.Kind {
	case ShapeRect:
		return []Vec2{
			{X: sh.Rect.X, Y: sh.Rect.Y},
			{X: sh.Rect.X + sh.Rect.Width, Y: sh.Rect.Y},
			{X: sh.Rect.X + sh.Rect.Width, Y: sh.Rect.Y + sh.Rect.Height},
			{X: sh.Rect.X, Y: sh.Rect.Y + sh.Rect.Height},
		}
	case ShapeCircle, ShapeEllipse:
		pts := make([]Vec2, ellipseSegments)
		cr := math.Cos(sh.Rotation)
		sr := math.Sin(sh.Rotation)
		for i := range pts {
			a := float64(i) / ellipseSegments * 2 * math.Pi
			x := math.Cos(a) * sh.RadiusX
			y := math.Sin(a) * sh.RadiusY
			pts[i] = Vec2{
				X: sh.Center.X + x*cr - y*sr,
				Y: sh.Center.Y + x*sr + y*cr,
			}
		}
		return pts
	case ShapePath:
		pts := make([]Vec2, 0, 1+len(sh.Segments)*pathSegments)
		pts = append(pts, sh.Start)
		cur := sh.Start
		for _, seg := range sh.Segments {
			if seg.Quad {
				for i := 1; i <= pathSegments; i++ {
					t := float64(i) / pathSegments
					pts = append(pts, quadBezier(cur, seg.Ctrl, seg.To, t))
				}
			} else {
				pts = append(pts, seg.To)
			}
			cur = seg.To
		}
		return pts
	}
	return nil
}

// LevelData is the generator's sole output: the background reference shapes
// (the reality layer) and the paintable strokes, each in ascending draw
// order. A level is built whole per Generate call and discarded whole on
// regeneration; the generator keeps no reference to it afterwards.
type LevelData struct {
	Strokes []*Stroke
	Shapes  []ReferenceShape
}

// StrokeAt returns the topmost stroke containing (x, y), or nil. Strokes are
// stored in ascending z-order, so the scan runs back to front.
func (l *LevelData) StrokeAt(x, y float64) *Stroke {
	for i := len(l.Strokes) - 1; i >= 0; i-- {
		if l.Strokes[i].Contains(x, y) {
			return l.Strokes[i]
		}
	}
	return nil
}
