package sunstroke

import "math"

// Vec2 is a 2D point or direction. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Area returns the rectangle's area.
func (r Rect) Area() float64 {
	return r.Width * r.Height
}

// Intersection returns the overlapping region of r and other, or the zero
// Rect if they do not overlap.
func (r Rect) Intersection(other Rect) Rect {
	x1 := math.Max(r.X, other.X)
	y1 := math.Max(r.Y, other.Y)
	x2 := math.Min(r.X+r.Width, other.X+other.Width)
	y2 := math.Min(r.Y+r.Height, other.Y+other.Height)
	if x2 <= x1 || y2 <= y1 {
		return Rect{}
	}
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// OverlapOverMin returns the intersection area of a and b divided by the
// smaller rectangle's area (intersection-over-min, not IoU). Degenerate
// rectangles yield 0.
func OverlapOverMin(a, b Rect) float64 {
	minArea := math.Min(a.Area(), b.Area())
	if minArea <= 0 {
		return 0
	}
	return a.Intersection(b).Area() / minArea
}

// quadBezier evaluates a quadratic Bézier with endpoints a, b and control
// point c at parameter t in [0, 1].
func quadBezier(a, c, b Vec2, t float64) Vec2 {
	u := 1 - t
	return Vec2{
		X: u*u*a.X + 2*u*t*c.X + t*t*b.X,
		Y: u*u*a.Y + 2*u*t*c.Y + t*t*b.Y,
	}
}

// quadBezierTangent returns the (unnormalized) tangent of the quadratic
// Bézier a-c-b at parameter t.
func quadBezierTangent(a, c, b Vec2, t float64) Vec2 {
	return Vec2{
		X: 2*(1-t)*(c.X-a.X) + 2*t*(b.X-c.X),
		Y: 2*(1-t)*(c.Y-a.Y) + 2*t*(b.Y-c.Y),
	}
}

// distance returns the Euclidean distance between a and b.
func distance(a, b Vec2) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// perpendicular returns the unit left-perpendicular of the segment from a to b.
func perpendicular(a, b Vec2) (float64, float64) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	ln := math.Sqrt(dx*dx + dy*dy)
	if ln < 1e-10 {
		return 0, -1
	}
	return -dy / ln, dx / ln
}

// clamp limits v to the range [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// pointInPolygon reports whether (x, y) lies inside the closed polygon using
// the even-odd crossing rule.
func pointInPolygon(pts []Vec2, x, y float64) bool {
	inside := false
	n := len(pts)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := pts[i], pts[j]
		if (pi.Y > y) != (pj.Y > y) &&
			x < (pj.X-pi.X)*(y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			inside = !inside
		}
	}
	return inside
}
