package sunstroke

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestRegionsTableLayout(t *testing.T) {
	regions := Regions(360, 640, DefaultTuning())
	wantNames := []string{
		"sky", "table", "vase",
		"stem-1", "petals-1", "center-1",
		"stem-2", "petals-2", "center-2",
		"stem-3", "petals-3", "center-3",
	}
	if len(regions) != len(wantNames) {
		t.Fatalf("regions = %d, want %d", len(regions), len(wantNames))
	}
	for i, want := range wantNames {
		if regions[i].Name != want {
			t.Errorf("region %d = %q, want %q", i, regions[i].Name, want)
		}
		if regions[i].Candidate == nil {
			t.Errorf("region %q has no candidate sampler", regions[i].Name)
		}
	}

	scatter := map[string]bool{"sky": true, "table": true, "vase": true,
		"center-1": true, "center-2": true, "center-3": true}
	for _, reg := range regions {
		if reg.Scatter != scatter[reg.Name] {
			t.Errorf("region %q scatter = %v, want %v", reg.Name, reg.Scatter, scatter[reg.Name])
		}
		if reg.Scatter && reg.Attempts < reg.Count {
			t.Errorf("region %q attempt budget %d below target %d",
				reg.Name, reg.Attempts, reg.Count)
		}
	}
}

func TestRegionsShapeTotal(t *testing.T) {
	regions := Regions(360, 640, DefaultTuning())
	total := 0
	for _, reg := range regions {
		total += len(reg.Shapes)
	}
	if total != 27 {
		t.Errorf("total reference shapes = %d, want 27", total)
	}
}

func TestSkyTableSplitAtHorizon(t *testing.T) {
	regions := Regions(360, 640, DefaultTuning())
	sky := regions[0].Shapes[0]
	table := regions[1].Shapes[0]
	if !approxEqual(sky.Rect.Height, 640*0.65, 1e-9) {
		t.Errorf("sky height = %f, want 65%% of canvas", sky.Rect.Height)
	}
	if !approxEqual(table.Rect.Y, 640*0.65, 1e-9) {
		t.Errorf("table top = %f, want the horizon", table.Rect.Y)
	}
	if !approxEqual(table.Rect.Y+table.Rect.Height, 640, 1e-9) {
		t.Error("table should reach the canvas bottom")
	}
}

func TestVaseHalfWidthProfile(t *testing.T) {
	const w = 360.0
	mouth := vaseHalfWidth(w, 0)
	body := vaseHalfWidth(w, 0.5)
	base := vaseHalfWidth(w, 1)
	if body <= mouth {
		t.Error("vase body should bulge wider than the mouth")
	}
	if !approxEqual(mouth, base, 1e-9) {
		t.Error("mouth and base widths should match (sine profile)")
	}
}

func TestVaseSilhouetteSymmetric(t *testing.T) {
	sh := vaseSilhouette(360, 640)
	pts := sh.Flatten()
	minX, maxX := pts[0].X, pts[0].X
	for _, p := range pts {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
	}
	if !approxEqual(180-minX, maxX-180, 1e-6) {
		t.Errorf("silhouette not symmetric about the canvas center: min %f max %f", minX, maxX)
	}
}

func TestPetalShapesRing(t *testing.T) {
	regions := Regions(360, 640, DefaultTuning())
	petals := regions[4] // petals-1
	if len(petals.Shapes) != petalsPerFlower {
		t.Fatalf("petal shapes = %d, want %d", len(petals.Shapes), petalsPerFlower)
	}
	head := Vec2{X: flowers[0].cx * 360, Y: flowers[0].cy * 640}
	r := flowers[0].r * 360
	for i, sh := range petals.Shapes {
		if sh.Kind != ShapeEllipse {
			t.Errorf("petal %d kind = %v, want ellipse", i, sh.Kind)
		}
		if d := distance(sh.Center, head); !approxEqual(d, r*0.62, 1e-9) {
			t.Errorf("petal %d center %f from head, want %f", i, d, r*0.62)
		}
	}
}

func TestRegionCandidatesMatchRegionColor(t *testing.T) {
	rng := rand.New(rand.NewPCG(20, 21))
	want := map[string]Pigment{
		"sky": PigmentSky, "table": PigmentWood, "vase": PigmentVase,
		"stem-1": PigmentStem, "petals-1": PigmentPetal, "center-1": PigmentWood,
	}
	for _, reg := range Regions(360, 640, DefaultTuning()) {
		if p, ok := want[reg.Name]; ok && reg.Color != p {
			t.Errorf("region %q color = %v, want %v", reg.Name, reg.Color, p)
		}
		// Samplers must yield sane brushes.
		b := reg.Candidate(rng, 0)
		if b.Length <= 0 || b.Thickness <= 0 {
			t.Errorf("region %q candidate has degenerate geometry: %+v", reg.Name, b)
		}
	}
}

func TestStemCandidatesFollowPath(t *testing.T) {
	tun := DefaultTuning()
	regions := Regions(360, 640, tun)
	stem := regions[3] // stem-1
	rng := rand.New(rand.NewPCG(30, 31))
	head := Vec2{X: flowers[0].cx * 360, Y: flowers[0].cy * 640}
	mouth := Vec2{X: 180, Y: 640 * vaseMouthFrac}
	span := distance(head, mouth)
	for slot := 0; slot < tun.StemCount; slot++ {
		b := stem.Candidate(rng, slot)
		// Anchors stay near the head-to-mouth corridor: never further from
		// both endpoints than the full span.
		if distance(b.Anchor, head) > span && distance(b.Anchor, mouth) > span {
			t.Errorf("slot %d anchor %+v strays from the stem corridor", slot, b.Anchor)
		}
	}
}
