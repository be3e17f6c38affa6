package sunstroke

import (
	"bytes"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Tuning holds the empirically tuned placement constants. The defaults
// reproduce the original scene; none of the thresholds are derived, so they
// are kept as configuration rather than code and can be overridden per field
// from a TOML file via LoadTuning.
type Tuning struct {
	// CanvasMargin is how far a stroke's bounding box may overhang the
	// canvas before the candidate is rejected.
	CanvasMargin float64
	// MaxOverlap is the largest allowed intersection of two same-pigment
	// bounding boxes, as a fraction of the smaller box's area.
	MaxOverlap float64
	// MinSpacing is the default same-pigment midpoint distance, used when a
	// region does not set its own.
	MinSpacing float64
	// JitterTries is how many times a slotted stroke (petal, stem) is
	// retried at a jittered offset after its primary position is rejected.
	JitterTries int
	// JitterRadius is the maximum offset applied per jitter retry.
	JitterRadius float64

	// Per-region midpoint spacing. Broad fills keep strokes far apart;
	// petal and center marks pack tighter.
	SkySpacing    float64
	TableSpacing  float64
	VaseSpacing   float64
	StemSpacing   float64
	PetalSpacing  float64
	CenterSpacing float64

	// Per-region target stroke counts, with attempt budgets for the
	// scatter-filled regions.
	SkyCount       int
	SkyAttempts    int
	TableCount     int
	TableAttempts  int
	VaseCount      int
	VaseAttempts   int
	StemCount      int
	CenterCount    int
	CenterAttempts int
}

// DefaultTuning returns the stock placement constants.
func DefaultTuning() Tuning {
	return Tuning{
		CanvasMargin: 5,
		MaxOverlap:   0.30,
		MinSpacing:   15,
		JitterTries:  3,
		JitterRadius: 9,

		SkySpacing:    26,
		TableSpacing:  24,
		VaseSpacing:   12,
		StemSpacing:   10,
		PetalSpacing:  8,
		CenterSpacing: 5,

		SkyCount:       70,
		SkyAttempts:    280,
		TableCount:     42,
		TableAttempts:  170,
		VaseCount:      26,
		VaseAttempts:   120,
		StemCount:      9,
		CenterCount:    12,
		CenterAttempts: 48,
	}
}

// LoadTuning reads a TOML overlay on top of the defaults. Fields absent from
// the file keep their default values.
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return DefaultTuning(), fmt.Errorf("read tuning file: %w", err)
	}
	return t, nil
}

// Save writes the full tuning to a TOML file.
func (t Tuning) Save(path string) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(t); err != nil {
		return fmt.Errorf("encode tuning: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write tuning file: %w", err)
	}
	return nil
}
