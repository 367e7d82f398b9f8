// Package tuple holds the value types the renderer computes with: points,
// vectors and linear colors. All operations take and return values.
package tuple

import "math"

// Point is a position in space.
type Point struct {
	X float64
	Y float64
	Z float64
}

// Vector is a direction with magnitude.
type Vector struct {
	X float64
	Y float64
	Z float64
}

func NewPoint(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

func NewVector(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// Add moves p along v.
func (p Point) Add(v Vector) Point {
	return Point{
		X: p.X + v.X,
		Y: p.Y + v.Y,
		Z: p.Z + v.Z,
	}
}

// Sub returns the vector pointing from o to p.
func (p Point) Sub(o Point) Vector {
	return Vector{
		X: p.X - o.X,
		Y: p.Y - o.Y,
		Z: p.Z - o.Z,
	}
}

// SubVector moves p against v.
func (p Point) SubVector(v Vector) Point {
	return Point{
		X: p.X - v.X,
		Y: p.Y - v.Y,
		Z: p.Z - v.Z,
	}
}

func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y, Z: -p.Z}
}

func (p Point) Equal(o Point) bool {
	return approx(p.X, o.X) && approx(p.Y, o.Y) && approx(p.Z, o.Z)
}

func (v Vector) Add(o Vector) Vector {
	return Vector{
		X: v.X + o.X,
		Y: v.Y + o.Y,
		Z: v.Z + o.Z,
	}
}

func (v Vector) Sub(o Vector) Vector {
	return Vector{
		X: v.X - o.X,
		Y: v.Y - o.Y,
		Z: v.Z - o.Z,
	}
}

func (v Vector) Neg() Vector {
	return Vector{X: -v.X, Y: -v.Y, Z: -v.Z}
}

func (v Vector) Scale(s float64) Vector {
	return Vector{
		X: v.X * s,
		Y: v.Y * s,
		Z: v.Z * s,
	}
}

func (v Vector) Div(s float64) Vector {
	return Vector{
		X: v.X / s,
		Y: v.Y / s,
		Z: v.Z / s,
	}
}

func (v Vector) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns the unit vector with the direction of v. The zero vector
// is returned unchanged.
func (v Vector) Normalize() Vector {
	m := v.Magnitude()
	if m == 0 {
		return v
	}
	return v.Div(m)
}

func (v Vector) Dot(o Vector) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vector) Cross(o Vector) Vector {
	return Vector{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

func (v Vector) Equal(o Vector) bool {
	return approx(v.X, o.X) && approx(v.Y, o.Y) && approx(v.Z, o.Z)
}
