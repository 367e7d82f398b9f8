package tuple

import "math"

// Epsilon is the tolerance used by the approximate comparisons in this package.
const Epsilon = 0.00001

// Color is a linear RGB sample. Channels are nominally in [0, 1] but may
// exceed that range while light is accumulated.
type Color struct {
	R float64
	G float64
	B float64
}

var (
	Black = Color{}
	White = Color{R: 1, G: 1, B: 1}
)

func (c Color) Add(o Color) Color {
	return Color{
		R: c.R + o.R,
		G: c.G + o.G,
		B: c.B + o.B,
	}
}

func (c Color) Sub(o Color) Color {
	return Color{
		R: c.R - o.R,
		G: c.G - o.G,
		B: c.B - o.B,
	}
}

func (c Color) Scale(s float64) Color {
	return Color{
		R: c.R * s,
		G: c.G * s,
		B: c.B * s,
	}
}

// Mul returns the hadamard (component-wise) product of two colors.
func (c Color) Mul(o Color) Color {
	return Color{
		R: c.R * o.R,
		G: c.G * o.G,
		B: c.B * o.B,
	}
}

// Equal reports whether every channel of c is within Epsilon of o.
func (c Color) Equal(o Color) bool {
	return approx(c.R, o.R) && approx(c.G, o.G) && approx(c.B, o.B)
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}
