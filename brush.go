package sunstroke

import "math"

// brushSegments is the number of subdivisions used to flatten each curved
// edge of a brush outline.
const brushSegments = 8

// Brush defines a single curved, tapered brush mark by its centerline: an
// anchor point, a chord length, an orientation angle, a perpendicular
// thickness, and a curvature bowing the centerline sideways. The enclosing
// outline is the curved centerline from start to end, a thickness step, and
// the curved return edge back to the offset start — a painterly blob rather
// than a straight rectangle.
type Brush struct {
	Anchor    Vec2    // centerline start point
	Length    float64 // centerline chord length
	Angle     float64 // orientation in radians (0 points right, Y-down)
	Thickness float64 // perpendicular width of the mark
	Curve     float64 // sideways bow of the centerline at its midpoint
}

// centerline returns the start point, quadratic control point, and end point
// of the brush's spine. The control point sits at the chord midpoint, pushed
// along the left perpendicular by Curve.
func (b Brush) centerline() (start, ctrl, end Vec2) {
	dx := math.Cos(b.Angle)
	dy := math.Sin(b.Angle)
	start = b.Anchor
	end = Vec2{X: start.X + dx*b.Length, Y: start.Y + dy*b.Length}
	ctrl = Vec2{
		X: (start.X+end.X)/2 - dy*b.Curve,
		Y: (start.Y+end.Y)/2 + dx*b.Curve,
	}
	return start, ctrl, end
}

// offsetLine returns the three centerline points displaced across the brush's
// thickness (along the right perpendicular of the chord).
func (b Brush) offsetLine() (start, ctrl, end Vec2) {
	s, c, e := b.centerline()
	dx := math.Cos(b.Angle)
	dy := math.Sin(b.Angle)
	ox := dy * b.Thickness
	oy := -dx * b.Thickness
	return Vec2{X: s.X + ox, Y: s.Y + oy},
		Vec2{X: c.X + ox, Y: c.Y + oy},
		Vec2{X: e.X + ox, Y: e.Y + oy}
}

// AABB returns the brush's axis-aligned bounding box, computed analytically
// from its six defining points (two endpoints, their thickness offsets, and
// the control point plus its offset). A quadratic curve never leaves the
// convex hull of its control points, so the box encloses the full outline
// without any rasterization.
func (b Brush) AABB() Rect {
	s, c, e := b.centerline()
	os, oc, oe := b.offsetLine()
	minX, minY := s.X, s.Y
	maxX, maxY := s.X, s.Y
	for _, p := range [...]Vec2{c, e, os, oc, oe} {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Midpoint returns the centerline midpoint, the reference point for
// minimum-spacing checks between same-pigment strokes.
func (b Brush) Midpoint() Vec2 {
	s, c, e := b.centerline()
	return quadBezier(s, c, e, 0.5)
}

// Outline returns the brush mark's closed outline polygon: the flattened
// centerline curve out, then the flattened offset curve back. For N segments
// per edge the polygon has 2*(N+1) points.
func (b Brush) Outline() []Vec2 {
	s, c, e := b.centerline()
	os, oc, oe := b.offsetLine()
	pts := make([]Vec2, 0, 2*(brushSegments+1))
	for i := 0; i <= brushSegments; i++ {
		t := float64(i) / brushSegments
		pts = append(pts, quadBezier(s, c, e, t))
	}
	for i := brushSegments; i >= 0; i-- {
		t := float64(i) / brushSegments
		pts = append(pts, quadBezier(os, oc, oe, t))
	}
	return pts
}
