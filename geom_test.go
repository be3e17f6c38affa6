package sunstroke

import (
	"math"
	"testing"
)

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}
	if !r.Contains(10, 20) {
		t.Error("top-left corner should be inside")
	}
	if !r.Contains(40, 60) {
		t.Error("bottom-right corner should be inside")
	}
	if !r.Contains(25, 40) {
		t.Error("interior point should be inside")
	}
	if r.Contains(9.99, 40) {
		t.Error("point left of rect should be outside")
	}
	if r.Contains(25, 60.01) {
		t.Error("point below rect should be outside")
	}
}

func TestRectIntersects(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	if !a.Intersects(Rect{X: 5, Y: 5, Width: 10, Height: 10}) {
		t.Error("overlapping rects should intersect")
	}
	if !a.Intersects(Rect{X: 10, Y: 0, Width: 10, Height: 10}) {
		t.Error("edge-adjacent rects should intersect")
	}
	if a.Intersects(Rect{X: 10.01, Y: 0, Width: 10, Height: 10}) {
		t.Error("separated rects should not intersect")
	}
}

func TestRectIntersection(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	b := Rect{X: 5, Y: 5, Width: 10, Height: 10}
	got := a.Intersection(b)
	want := Rect{X: 5, Y: 5, Width: 5, Height: 5}
	if got != want {
		t.Errorf("intersection = %+v, want %+v", got, want)
	}

	if a.Intersection(Rect{X: 20, Y: 20, Width: 5, Height: 5}) != (Rect{}) {
		t.Error("disjoint rects should intersect in the zero rect")
	}
}

func TestOverlapOverMinHalf(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	b := Rect{X: 5, Y: 0, Width: 10, Height: 10}
	if got := OverlapOverMin(a, b); !approxEqual(got, 0.5, 1e-12) {
		t.Errorf("overlap = %f, want 0.5", got)
	}
}

func TestOverlapOverMinUsesSmallerArea(t *testing.T) {
	// Small box fully inside a large one: ratio is 1 relative to the small
	// box, not the IoU value.
	a := Rect{X: 0, Y: 0, Width: 100, Height: 100}
	b := Rect{X: 10, Y: 10, Width: 5, Height: 5}
	if got := OverlapOverMin(a, b); !approxEqual(got, 1, 1e-12) {
		t.Errorf("overlap = %f, want 1", got)
	}
}

func TestOverlapOverMinDisjoint(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	b := Rect{X: 50, Y: 50, Width: 10, Height: 10}
	if got := OverlapOverMin(a, b); got != 0 {
		t.Errorf("overlap = %f, want 0", got)
	}
}

func TestOverlapOverMinDegenerate(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 0, Height: 10}
	b := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	if got := OverlapOverMin(a, b); got != 0 {
		t.Errorf("overlap with degenerate rect = %f, want 0", got)
	}
}

func TestQuadBezierEndpoints(t *testing.T) {
	a := Vec2{X: 0, Y: 0}
	c := Vec2{X: 5, Y: 10}
	b := Vec2{X: 10, Y: 0}
	if got := quadBezier(a, c, b, 0); got != a {
		t.Errorf("t=0 gives %+v, want start", got)
	}
	if got := quadBezier(a, c, b, 1); got != b {
		t.Errorf("t=1 gives %+v, want end", got)
	}
	mid := quadBezier(a, c, b, 0.5)
	if !approxEqual(mid.X, 5, 1e-12) || !approxEqual(mid.Y, 5, 1e-12) {
		t.Errorf("t=0.5 gives %+v, want (5,5)", mid)
	}
}

func TestQuadBezierTangent(t *testing.T) {
	a := Vec2{X: 0, Y: 0}
	c := Vec2{X: 5, Y: 10}
	b := Vec2{X: 10, Y: 0}
	got := quadBezierTangent(a, c, b, 0)
	if !approxEqual(got.X, 10, 1e-12) || !approxEqual(got.Y, 20, 1e-12) {
		t.Errorf("tangent at t=0 = %+v, want (10,20)", got)
	}
}

func TestPerpendicularUnit(t *testing.T) {
	nx, ny := perpendicular(Vec2{X: 0, Y: 0}, Vec2{X: 10, Y: 0})
	if !approxEqual(nx, 0, 1e-12) || !approxEqual(ny, 1, 1e-12) {
		t.Errorf("left perpendicular of +X segment = (%f,%f), want (0,1)", nx, ny)
	}

	// Degenerate segment falls back to (0, -1).
	nx, ny = perpendicular(Vec2{}, Vec2{})
	if nx != 0 || ny != -1 {
		t.Errorf("degenerate perpendicular = (%f,%f), want (0,-1)", nx, ny)
	}
}

func TestPointInPolygonSquare(t *testing.T) {
	sq := []Vec2{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	if !pointInPolygon(sq, 5, 5) {
		t.Error("center should be inside")
	}
	if pointInPolygon(sq, 15, 5) {
		t.Error("point right of square should be outside")
	}
	if pointInPolygon(sq, 5, -1) {
		t.Error("point above square should be outside")
	}
}

func TestClamp(t *testing.T) {
	if clamp(5, 0, 10) != 5 {
		t.Error("in-range value should pass through")
	}
	if clamp(-1, 0, 10) != 0 {
		t.Error("low value should clamp to lo")
	}
	if clamp(11, 0, 10) != 10 {
		t.Error("high value should clamp to hi")
	}
}

func TestDistance(t *testing.T) {
	if got := distance(Vec2{X: 0, Y: 0}, Vec2{X: 3, Y: 4}); !approxEqual(got, 5, 1e-12) {
		t.Errorf("distance = %f, want 5", got)
	}
}
