package sunstroke

import "math/rand/v2"

// Generator lays out coloring levels. The zero value is usable; NewGenerator
// fills in the default tuning explicitly.
type Generator struct {
	// Rand is the random source for stroke placement. Nil means each
	// Generate call seeds a fresh source, making output non-reproducible;
	// inject a seeded source for stable fixtures.
	Rand *rand.Rand
	// Tuning holds the placement constants. The zero value falls back to
	// DefaultTuning.
	Tuning Tuning
}

// NewGenerator returns a generator with default tuning and ambient seeding.
func NewGenerator() *Generator {
	return &Generator{Tuning: DefaultTuning()}
}

// Generate lays out a fresh level for the given canvas size and hands it to
// the caller; the generator keeps no reference to it. Placement never fails:
// every constraint violation is resolved by discarding the candidate stroke,
// and a region ending up below its target count only lowers visual density.
// width and height must be positive and finite.
func (g *Generator) Generate(width, height float64) *LevelData {
	tun := g.Tuning
	if tun == (Tuning{}) {
		tun = DefaultTuning()
	}
	rng := g.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	p := newPlacement(width, height, tun)
	for _, reg := range Regions(width, height, tun) {
		for _, sh := range reg.Shapes {
			sh.ZIndex = len(p.level.Shapes)
			p.level.Shapes = append(p.level.Shapes, sh)
		}
		if reg.Scatter {
			placed := 0
			for attempt := 0; attempt < reg.Attempts && placed < reg.Count; attempt++ {
				if p.place(reg.Candidate(rng, placed), reg.Color, reg.Spacing) {
					placed++
				}
			}
			continue
		}
		for slot := 0; slot < reg.Count; slot++ {
			b := reg.Candidate(rng, slot)
			if p.place(b, reg.Color, reg.Spacing) {
				continue
			}
			for try := 0; try < tun.JitterTries; try++ {
				j := b
				j.Anchor.X += (rng.Float64()*2 - 1) * tun.JitterRadius
				j.Anchor.Y += (rng.Float64()*2 - 1) * tun.JitterRadius
				if p.place(j, reg.Color, reg.Spacing) {
					break
				}
			}
		}
	}
	return p.level
}

// placement is the call-local state of one Generate run: the level being
// built plus the per-pigment box and midpoint accumulators the rejection
// checks consult. A fresh placement is created per call and discarded with
// it; nothing is shared between invocations.
type placement struct {
	width, height float64
	tun           Tuning
	level         *LevelData
	boxes         map[Pigment][]Rect
	mids          map[Pigment][]Vec2
}

func newPlacement(width, height float64, tun Tuning) *placement {
	return &placement{
		width:  width,
		height: height,
		tun:    tun,
		level:  &LevelData{},
		boxes:  make(map[Pigment][]Rect),
		mids:   make(map[Pigment][]Vec2),
	}
}

// place runs the full rejection pipeline on one candidate brush:
// canvas-bounds check on the analytic AABB, midpoint spacing against
// accepted same-pigment strokes, then pairwise box overlap against the same
// set. On acceptance the stroke gets the next z-index and a fresh id, and
// its box and midpoint join the accumulators. Cross-pigment overlap is
// allowed by design (petals cross stems).
func (p *placement) place(b Brush, color Pigment, spacing float64) bool {
	if spacing <= 0 {
		spacing = p.tun.MinSpacing
	}
	box := b.AABB()
	m := p.tun.CanvasMargin
	if box.X < -m || box.Y < -m ||
		box.X+box.Width > p.width+m || box.Y+box.Height > p.height+m {
		return false
	}
	mid := b.Midpoint()
	for _, other := range p.mids[color] {
		if distance(mid, other) < spacing {
			return false
		}
	}
	for _, other := range p.boxes[color] {
		if OverlapOverMin(box, other) > p.tun.MaxOverlap {
			return false
		}
	}
	s := newStroke(b, color, len(p.level.Strokes))
	p.level.Strokes = append(p.level.Strokes, s)
	p.boxes[color] = append(p.boxes[color], box)
	p.mids[color] = append(p.mids[color], mid)
	return true
}
