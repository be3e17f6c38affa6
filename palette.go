package sunstroke

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// NRGBA converts to an 8-bit non-premultiplied color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp(c.R, 0, 1)*255 + 0.5),
		G: uint8(clamp(c.G, 0, 1)*255 + 0.5),
		B: uint8(clamp(c.B, 0, 1)*255 + 0.5),
		A: uint8(clamp(c.A, 0, 1)*255 + 0.5),
	}
}

// Pigment identifies one entry of the fixed five-color paint palette.
// PigmentNone is the unpainted state, not a selectable paint.
type Pigment uint8

const (
	PigmentNone  Pigment = iota // unpainted canvas
	PigmentSky                  // pale blue: sky
	PigmentWood                 // warm brown: table and flower centers
	PigmentVase                 // deep teal: vase
	PigmentStem                 // leaf green: stems
	PigmentPetal                // golden yellow: petals
)

// PaletteSize is the number of selectable pigments.
const PaletteSize = 5

// Palette returns the five selectable pigments in display order.
func Palette() [PaletteSize]Pigment {
	return [PaletteSize]Pigment{PigmentSky, PigmentWood, PigmentVase, PigmentStem, PigmentPetal}
}

var pigmentColors = [PigmentPetal + 1]Color{
	PigmentNone:  {R: 0.93, G: 0.91, B: 0.86, A: 1},
	PigmentSky:   {R: 0.55, G: 0.73, B: 0.89, A: 1},
	PigmentWood:  {R: 0.45, G: 0.31, B: 0.18, A: 1},
	PigmentVase:  {R: 0.23, G: 0.45, B: 0.50, A: 1},
	PigmentStem:  {R: 0.33, G: 0.55, B: 0.25, A: 1},
	PigmentPetal: {R: 0.95, G: 0.76, B: 0.18, A: 1},
}

// Color returns the pigment's display color. PigmentNone is the pale tone of
// the blank canvas.
func (p Pigment) Color() Color {
	if int(p) >= len(pigmentColors) {
		return pigmentColors[PigmentNone]
	}
	return pigmentColors[p]
}

// String returns the pigment's name.
func (p Pigment) String() string {
	switch p {
	case PigmentNone:
		return "none"
	case PigmentSky:
		return "sky"
	case PigmentWood:
		return "wood"
	case PigmentVase:
		return "vase"
	case PigmentStem:
		return "stem"
	case PigmentPetal:
		return "petal"
	default:
		return "unknown"
	}
}
