package sunstroke

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Scene proportions, as fractions of the canvas size.
const (
	horizonFrac = 0.65 // sky above, table below

	vaseMouthFrac = 0.60  // vase mouth height
	vaseBaseFrac  = 0.82  // vase base height
	vaseHalfFrac  = 0.055 // vase half-width scale (of canvas width)
)

// flowerSpec fixes one flower's head position and size. Positions are canvas
// fractions; the radius is a fraction of the canvas width.
type flowerSpec struct {
	cx, cy float64
	r      float64
}

// The three flowers: left-large, top-right-medium, center-right-small.
var flowers = [3]flowerSpec{
	{cx: 0.30, cy: 0.28, r: 0.13},
	{cx: 0.68, cy: 0.18, r: 0.10},
	{cx: 0.58, cy: 0.38, r: 0.075},
}

// petalsPerFlower is the number of petals around each flower head.
const petalsPerFlower = 6

// RegionSpec describes one semantic region of the scene: its reference
// shapes (the answer-key geometry) and how its stroke population is sampled.
//
// Scatter regions keep drawing fresh random candidates until Count strokes
// are accepted or Attempts candidates have been tried; under-filling is an
// accepted outcome. Slotted regions (Scatter false) try exactly Count
// primary candidates, each retried a few times at a jittered offset before
// that one stroke is given up.
type RegionSpec struct {
	Name   string
	Color  Pigment
	Shapes []ReferenceShape // ZIndex assigned by the generator

	Scatter  bool
	Count    int
	Attempts int
	Spacing  float64

	// Candidate draws the primary brush for the given slot. Scatter regions
	// ignore the slot.
	Candidate func(rng *rand.Rand, slot int) Brush
}

// Regions returns the scene's region table for the given canvas size, in
// generation order: sky, table, vase, then stem, petals, and center for each
// flower. The placement loop is generic over this table; the visual design
// of the scene lives entirely in the data it returns.
func Regions(width, height float64, tun Tuning) []RegionSpec {
	regions := make([]RegionSpec, 0, 3+3*len(flowers))
	regions = append(regions,
		skyRegion(width, height, tun),
		tableRegion(width, height, tun),
		vaseRegion(width, height, tun),
	)
	mouth := Vec2{X: width / 2, Y: height * vaseMouthFrac}
	for i, f := range flowers {
		regions = append(regions,
			stemRegion(i, f, width, height, mouth, tun),
			petalsRegion(i, f, width, height, tun),
			centerRegion(i, f, width, height, tun),
		)
	}
	return regions
}

func skyRegion(width, height float64, tun Tuning) RegionSpec {
	return RegionSpec{
		Name:  "sky",
		Color: PigmentSky,
		Shapes: []ReferenceShape{{
			Kind:  ShapeRect,
			Rect:  Rect{X: 0, Y: 0, Width: width, Height: height * horizonFrac},
			Color: PigmentSky,
		}},
		Scatter:  true,
		Count:    tun.SkyCount,
		Attempts: tun.SkyAttempts,
		Spacing:  tun.SkySpacing,
		Candidate: func(rng *rand.Rand, _ int) Brush {
			return Brush{
				Anchor: Vec2{
					X: rng.Float64() * width,
					Y: rng.Float64() * height * horizonFrac,
				},
				Length:    28 + rng.Float64()*18,
				Angle:     (rng.Float64() - 0.5) * 0.3, // near-horizontal
				Thickness: 7 + rng.Float64()*4,
				Curve:     (rng.Float64() - 0.5) * 10,
			}
		},
	}
}

func tableRegion(width, height float64, tun Tuning) RegionSpec {
	top := height * horizonFrac
	return RegionSpec{
		Name:  "table",
		Color: PigmentWood,
		Shapes: []ReferenceShape{{
			Kind:  ShapeRect,
			Rect:  Rect{X: 0, Y: top, Width: width, Height: height - top},
			Color: PigmentWood,
		}},
		Scatter:  true,
		Count:    tun.TableCount,
		Attempts: tun.TableAttempts,
		Spacing:  tun.TableSpacing,
		Candidate: func(rng *rand.Rand, _ int) Brush {
			return Brush{
				Anchor: Vec2{
					X: rng.Float64() * width,
					Y: top + rng.Float64()*(height-top),
				},
				Length:    30 + rng.Float64()*20,
				Angle:     (rng.Float64() - 0.5) * 0.24,
				Thickness: 8 + rng.Float64()*4,
				Curve:     (rng.Float64() - 0.5) * 8,
			}
		},
	}
}

// vaseHalfWidth returns the vase silhouette's half-width at relative height
// t (0 = mouth, 1 = base). The sine profile bulges through the body and
// narrows at the neck and foot.
func vaseHalfWidth(width, t float64) float64 {
	return width * vaseHalfFrac * (0.55 + 0.85*math.Sin(math.Pi*t))
}

func vaseRegion(width, height float64, tun Tuning) RegionSpec {
	cx := width / 2
	y0 := height * vaseMouthFrac
	y1 := height * vaseBaseFrac
	return RegionSpec{
		Name:     "vase",
		Color:    PigmentVase,
		Shapes:   []ReferenceShape{vaseSilhouette(width, height)},
		Scatter:  true,
		Count:    tun.VaseCount,
		Attempts: tun.VaseAttempts,
		Spacing:  tun.VaseSpacing,
		Candidate: func(rng *rand.Rand, _ int) Brush {
			t := rng.Float64()
			hw := vaseHalfWidth(width, t)
			return Brush{
				Anchor: Vec2{
					X: cx + (rng.Float64()*2-1)*hw*0.7,
					Y: y0 + (y1-y0)*t,
				},
				Length:    height * 0.05 * (0.8 + rng.Float64()*0.4),
				Angle:     math.Pi/2 + (rng.Float64()-0.5)*0.24, // near-vertical
				Thickness: math.Max(3, hw*0.38),                 // taper with the profile
				Curve:     (rng.Float64() - 0.5) * 6,
			}
		},
	}
}

// vaseSilhouette builds the vase's compound curved path: down the left side
// through the body bulge, across the base, and back up the right side.
func vaseSilhouette(width, height float64) ReferenceShape {
	cx := width / 2
	y0 := height * vaseMouthFrac
	y1 := height * vaseBaseFrac
	at := func(t float64) (float64, float64) {
		return vaseHalfWidth(width, t), y0 + (y1-y0)*t
	}
	hw0, _ := at(0)
	hwQ, yQ := at(0.25)
	hwM, yM := at(0.5)
	hw3Q, y3Q := at(0.75)
	hw1, _ := at(1)
	return ReferenceShape{
		Kind:  ShapePath,
		Start: Vec2{X: cx - hw0, Y: y0},
		Segments: []PathSegment{
			{To: Vec2{X: cx - hwM, Y: yM}, Ctrl: Vec2{X: cx - hwQ*1.35, Y: yQ}, Quad: true},
			{To: Vec2{X: cx - hw1, Y: y1}, Ctrl: Vec2{X: cx - hw3Q*1.2, Y: y3Q}, Quad: true},
			{To: Vec2{X: cx + hw1, Y: y1}},
			{To: Vec2{X: cx + hwM, Y: yM}, Ctrl: Vec2{X: cx + hw3Q*1.2, Y: y3Q}, Quad: true},
			{To: Vec2{X: cx + hw0, Y: y0}, Ctrl: Vec2{X: cx + hwQ*1.35, Y: yQ}, Quad: true},
		},
		Color: PigmentVase,
	}
}

func stemRegion(idx int, f flowerSpec, width, height float64, mouth Vec2, tun Tuning) RegionSpec {
	head := Vec2{X: f.cx * width, Y: f.cy * height}
	// Bow the stem away from the vase centerline.
	ctrl := Vec2{
		X: (head.X+mouth.X)/2 + (head.X-mouth.X)*0.4,
		Y: (head.Y + mouth.Y) / 2,
	}
	half := math.Max(2, width*0.008)
	return RegionSpec{
		Name:    fmt.Sprintf("stem-%d", idx+1),
		Color:   PigmentStem,
		Shapes:  []ReferenceShape{stemRibbon(head, ctrl, mouth, half)},
		Count:   tun.StemCount,
		Spacing: tun.StemSpacing,
		Candidate: func(rng *rand.Rand, slot int) Brush {
			// Sample along the stem path, one slot per stroke, with a small
			// random slide so strokes do not land on a perfect grid.
			t := (float64(slot) + 0.2 + rng.Float64()*0.6) / float64(tun.StemCount)
			p := quadBezier(head, ctrl, mouth, t)
			tan := quadBezierTangent(head, ctrl, mouth, t)
			return Brush{
				Anchor:    p,
				Length:    14 + rng.Float64()*8,
				Angle:     math.Atan2(tan.Y, tan.X),
				Thickness: 4 + rng.Float64()*2,
				Curve:     (rng.Float64() - 0.5) * 4,
			}
		},
	}
}

// stemRibbon offsets the stem's quadratic spine sideways into a thin closed
// ribbon path so the reference stem has area, not just a line.
func stemRibbon(from, ctrl, to Vec2, half float64) ReferenceShape {
	nx, ny := perpendicular(from, to)
	off := func(p Vec2) Vec2 {
		return Vec2{X: p.X + nx*2*half, Y: p.Y + ny*2*half}
	}
	return ReferenceShape{
		Kind:  ShapePath,
		Start: from,
		Segments: []PathSegment{
			{To: to, Ctrl: ctrl, Quad: true},
			{To: off(to)},
			{To: off(from), Ctrl: off(ctrl), Quad: true},
		},
		Color: PigmentStem,
	}
}

func petalsRegion(idx int, f flowerSpec, width, height float64, tun Tuning) RegionSpec {
	head := Vec2{X: f.cx * width, Y: f.cy * height}
	r := f.r * width
	base := 0.3 * float64(idx) // vary petal phase per flower
	shapes := make([]ReferenceShape, petalsPerFlower)
	for i := range shapes {
		ang := base + float64(i)*2*math.Pi/petalsPerFlower
		shapes[i] = ReferenceShape{
			Kind: ShapeEllipse,
			Center: Vec2{
				X: head.X + math.Cos(ang)*r*0.62,
				Y: head.Y + math.Sin(ang)*r*0.62,
			},
			RadiusX:  r * 0.42,
			RadiusY:  r * 0.19,
			Rotation: ang,
			Color:    PigmentPetal,
		}
	}
	return RegionSpec{
		Name:    fmt.Sprintf("petals-%d", idx+1),
		Color:   PigmentPetal,
		Shapes:  shapes,
		Count:   petalsPerFlower,
		Spacing: tun.PetalSpacing,
		Candidate: func(rng *rand.Rand, slot int) Brush {
			ang := base + float64(slot)*2*math.Pi/petalsPerFlower
			return Brush{
				Anchor: Vec2{
					X: head.X + math.Cos(ang)*r*0.30,
					Y: head.Y + math.Sin(ang)*r*0.30,
				},
				Length:    r * 0.85,
				Angle:     ang,
				Thickness: r * 0.34,
				Curve:     (rng.Float64() - 0.5) * r * 0.2,
			}
		},
	}
}

func centerRegion(idx int, f flowerSpec, width, height float64, tun Tuning) RegionSpec {
	head := Vec2{X: f.cx * width, Y: f.cy * height}
	r := f.r * width
	return RegionSpec{
		Name:  fmt.Sprintf("center-%d", idx+1),
		Color: PigmentWood,
		Shapes: []ReferenceShape{{
			Kind:    ShapeCircle,
			Center:  head,
			RadiusX: r * 0.34,
			RadiusY: r * 0.34,
			Color:   PigmentWood,
		}},
		Scatter:  true,
		Count:    tun.CenterCount,
		Attempts: tun.CenterAttempts,
		Spacing:  tun.CenterSpacing,
		Candidate: func(rng *rand.Rand, _ int) Brush {
			a := rng.Float64() * 2 * math.Pi
			d := rng.Float64() * r * 0.26
			return Brush{
				Anchor: Vec2{
					X: head.X + math.Cos(a)*d,
					Y: head.Y + math.Sin(a)*d,
				},
				Length:    5 + rng.Float64()*3,
				Angle:     rng.Float64() * 2 * math.Pi,
				Thickness: 4 + rng.Float64()*2,
				Curve:     (rng.Float64() - 0.5) * 3,
			}
		},
	}
}
