package viz

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	DefaultHueMin     = 0.75
	DefaultHueMax     = 0.85
	DefaultHueDivisor = 200.0
)

// Hue drifts with the cosine of the camera angle and snaps back to Min
// whenever it leaves [Min, Max].
type Hue struct {
	Value   float64
	Min     float64
	Max     float64
	Divisor float64
}

func NewHue() *Hue {
	return &Hue{Value: DefaultHueMin, Min: DefaultHueMin, Max: DefaultHueMax, Divisor: DefaultHueDivisor}
}

// Advance applies one frame of drift for angle and returns the new hue.
func (h *Hue) Advance(angle float64) float64 {
	h.Value += math.Cos(angle) / h.Divisor
	if h.Value > h.Max || h.Value < h.Min {
		h.Value = h.Min
	}
	return h.Value
}

// Color returns the fully saturated, full value color for the current hue.
func (h *Hue) Color() color.RGBA {
	return HSVToRGB(h.Value, 1, 1)
}

// HSVToRGB converts h, s, v in [0, 1] to 8-bit RGB, rounding each channel
// to the nearest integer. Hue wraps, so h == 1 is red like h == 0.
func HSVToRGB(h, s, v float64) color.RGBA {
	h -= math.Floor(h)
	r, g, b := colorful.Hsv(h*360, s, v).RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// HexColor formats c as #rrggbb.
func HexColor(c color.RGBA) string {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}.Hex()
}
