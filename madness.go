package sunstroke

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// sootheTweenDuration is how long the displayed value eases after a relief drop.
const sootheTweenDuration = 0.35

// MadnessMeter is the numeric pressure meter behind the lose condition: it
// rises steadily over time and drops by a fixed relief amount for every
// correctly painted stroke. The raw value moves in steps on relief; a tween
// eases the displayed value toward it so renderers get a smooth bar.
type MadnessMeter struct {
	Limit  float64 // losing threshold
	Rise   float64 // increase per second
	Relief float64 // decrease per correct paint action

	value   float64
	display float64
	tween   *gween.Tween
}

// NewMadnessMeter returns a meter with the stock pacing: limit 100, rising
// 2.5 per second, relieved 6 per correct stroke.
func NewMadnessMeter() *MadnessMeter {
	return &MadnessMeter{Limit: 100, Rise: 2.5, Relief: 6}
}

// Update advances the meter by dt seconds: the value rises, and the
// displayed value either follows directly or continues an active ease.
func (m *MadnessMeter) Update(dt float32) {
	m.value = clamp(m.value+m.Rise*float64(dt), 0, m.Limit)
	if m.tween != nil {
		v, done := m.tween.Update(dt)
		m.display = float64(v)
		if done {
			m.tween = nil
		}
		return
	}
	m.display = m.value
}

// Soothe applies the relief drop for one correct paint action and starts
// easing the displayed value down to the new level.
func (m *MadnessMeter) Soothe() {
	m.value = clamp(m.value-m.Relief, 0, m.Limit)
	m.tween = gween.New(float32(m.display), float32(m.value), sootheTweenDuration, ease.OutQuad)
}

// Value returns the true meter value.
func (m *MadnessMeter) Value() float64 {
	return m.value
}

// Display returns the smoothed value for rendering.
func (m *MadnessMeter) Display() float64 {
	return m.display
}

// Lost reports whether the meter has reached its limit.
func (m *MadnessMeter) Lost() bool {
	return m.value >= m.Limit
}
