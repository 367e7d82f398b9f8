package tuple_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tigleym/ray-tracer/tuple"
)

func TestPointVectorArithmetic(t *testing.T) {
	p := tuple.NewPoint(3, -2, 5)
	v := tuple.NewVector(-2, 3, 1)
	assert.Equal(t, tuple.NewPoint(1, 1, 6), p.Add(v), "point + vector is a point")

	p1 := tuple.NewPoint(3, 2, 1)
	p2 := tuple.NewPoint(5, 6, 7)
	assert.Equal(t, tuple.NewVector(-2, -4, -6), p1.Sub(p2), "point - point is a vector")

	assert.Equal(t, tuple.NewPoint(-2, -4, -6), p1.SubVector(tuple.NewVector(5, 6, 7)))

	v1 := tuple.NewVector(3, 2, 1)
	v2 := tuple.NewVector(5, 6, 7)
	assert.Equal(t, tuple.NewVector(8, 8, 8), v1.Add(v2))
	assert.Equal(t, tuple.NewVector(-2, -4, -6), v1.Sub(v2))
	assert.Equal(t, tuple.NewVector(-1, 2, -3), tuple.Vector{}.Sub(tuple.NewVector(1, -2, 3)))

	assert.Equal(t, tuple.NewPoint(-1, 2, -3), tuple.NewPoint(1, -2, 3).Neg())
	assert.Equal(t, tuple.NewVector(-1, 2, -3), tuple.NewVector(1, -2, 3).Neg())
}

func TestVectorScaling(t *testing.T) {
	v := tuple.NewVector(1, -2, 3)
	assert.Equal(t, tuple.NewVector(3.5, -7, 10.5), v.Scale(3.5))
	assert.Equal(t, tuple.NewVector(0.5, -1, 1.5), v.Scale(0.5))
	assert.Equal(t, tuple.NewVector(0.5, -1, 1.5), v.Div(2))
}

func TestVectorMagnitude(t *testing.T) {
	cases := []struct {
		name string
		v    tuple.Vector
		want float64
	}{
		{"UnitX", tuple.NewVector(1, 0, 0), 1},
		{"UnitY", tuple.NewVector(0, 1, 0), 1},
		{"UnitZ", tuple.NewVector(0, 0, 1), 1},
		{"Positive", tuple.NewVector(1, 2, 3), math.Sqrt(14)},
		{"Negative", tuple.NewVector(-1, -2, -3), math.Sqrt(14)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, tc.v.Magnitude(), tuple.Epsilon)
		})
	}
}

func TestVectorNormalize(t *testing.T) {
	assert.Equal(t, tuple.NewVector(1, 0, 0), tuple.NewVector(4, 0, 0).Normalize())

	v := tuple.NewVector(1, 2, 3)
	m := v.Magnitude()
	n := v.Normalize()
	require.True(t, n.Equal(tuple.NewVector(1/m, 2/m, 3/m)))
	assert.InDelta(t, 1.0, n.Magnitude(), tuple.Epsilon)

	assert.Equal(t, tuple.Vector{}, tuple.Vector{}.Normalize(), "zero vector stays zero")
}

func TestDotCross(t *testing.T) {
	a := tuple.NewVector(1, 2, 3)
	b := tuple.NewVector(2, 3, 4)
	assert.Equal(t, 20.0, a.Dot(b))
	assert.Equal(t, tuple.NewVector(-1, 2, -1), a.Cross(b))
	assert.Equal(t, tuple.NewVector(1, -2, 1), b.Cross(a))
}

func TestColorOperations(t *testing.T) {
	c1 := tuple.Color{R: 0.9, G: 0.6, B: 0.75}
	c2 := tuple.Color{R: 0.7, G: 0.1, B: 0.25}

	assert.True(t, c1.Add(c2).Equal(tuple.Color{R: 1.6, G: 0.7, B: 1.0}), "add")
	assert.True(t, c1.Sub(c2).Equal(tuple.Color{R: 0.2, G: 0.5, B: 0.5}), "sub")
	assert.True(t, tuple.Color{R: 0.2, G: 0.3, B: 0.4}.Scale(2).Equal(tuple.Color{R: 0.4, G: 0.6, B: 0.8}), "scale")

	h := tuple.Color{R: 1, G: 0.2, B: 0.4}.Mul(tuple.Color{R: 0.9, G: 1, B: 0.1})
	assert.True(t, h.Equal(tuple.Color{R: 0.9, G: 0.2, B: 0.04}), "hadamard product")

	assert.False(t, c1.Equal(c2))
}
