package sunstroke

// PaintResult classifies the outcome of one paint action.
type PaintResult uint8

const (
	PaintMiss    PaintResult = iota // no stroke under the point
	PaintCorrect                    // stroke now carries its target pigment
	PaintWrong                      // stroke painted with a different pigment
)

// PaintSession tracks player progress over one generated level. It mutates
// only CurrentColor on the level's strokes; level geometry, ids, target
// colors, and z-order stay untouched.
type PaintSession struct {
	Level *LevelData
	Meter *MadnessMeter // optional; soothed on newly correct paints

	correct int
}

// NewPaintSession starts a session over the given level. meter may be nil.
func NewPaintSession(level *LevelData, meter *MadnessMeter) *PaintSession {
	return &PaintSession{Level: level, Meter: meter}
}

// Paint applies the pigment to the topmost stroke under (x, y). Repainting
// an already-correct stroke with its target pigment reports PaintCorrect but
// grants no additional relief.
func (s *PaintSession) Paint(x, y float64, p Pigment) PaintResult {
	st := s.Level.StrokeAt(x, y)
	if st == nil {
		return PaintMiss
	}
	wasCorrect := st.CurrentColor == st.TargetColor
	st.CurrentColor = p
	if p == st.TargetColor {
		if !wasCorrect {
			s.correct++
			if s.Meter != nil {
				s.Meter.Soothe()
			}
		}
		return PaintCorrect
	}
	if wasCorrect {
		s.correct--
	}
	return PaintWrong
}

// Progress returns the fraction of strokes carrying their target pigment.
func (s *PaintSession) Progress() float64 {
	if len(s.Level.Strokes) == 0 {
		return 0
	}
	return float64(s.correct) / float64(len(s.Level.Strokes))
}

// Complete reports whether every stroke carries its target pigment.
func (s *PaintSession) Complete() bool {
	return s.correct == len(s.Level.Strokes)
}
