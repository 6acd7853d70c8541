package geometry

import (
	"fmt"
	"math"
)

// Epsilon is the tolerance used by Eq for float64 comparisons.
const (
	Epsilon = 1e-9
)

// Vector represents a 2D vector or point in cartesian space.
// It is a plain value: copy it freely, there is no identity attached to it.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NewVector creates a new Vector.
func NewVector(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// NewVectorPolar creates a Vector from polar coordinates (r·cosθ, r·sinθ).
// theta is in radians. No rounding toward zero is applied.
func NewVectorPolar(radius, theta float64) Vector {
	return Vector{X: radius * math.Cos(theta), Y: radius * math.Sin(theta)}
}

// FromAngle returns the unit vector pointing at theta radians.
func FromAngle(theta float64) Vector {
	return Vector{X: math.Cos(theta), Y: math.Sin(theta)}
}

// String implements the fmt.Stringer interface.
func (v Vector) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", v.X, v.Y)
}

// ---------------------------------------------------------------------
// Arithmetic Operations
// Value receivers, new values returned. Division by zero is not trapped:
// it yields IEEE infinities or NaN like any other float64 operation.
// ---------------------------------------------------------------------

// Add adds two vectors component-wise.
func (v Vector) Add(other Vector) Vector {
	return Vector{v.X + other.X, v.Y + other.Y}
}

// Sub subtracts the other vector from v component-wise.
func (v Vector) Sub(other Vector) Vector {
	return Vector{v.X - other.X, v.Y - other.Y}
}

// MulVec multiplies two vectors component-wise.
func (v Vector) MulVec(other Vector) Vector {
	return Vector{v.X * other.X, v.Y * other.Y}
}

// DivVec divides v by other component-wise.
func (v Vector) DivVec(other Vector) Vector {
	return Vector{v.X / other.X, v.Y / other.Y}
}

// Mul scales the vector by a scalar value.
func (v Vector) Mul(scalar float64) Vector {
	return Vector{v.X * scalar, v.Y * scalar}
}

// Div scales the vector by 1/scalar.
func (v Vector) Div(scalar float64) Vector {
	return Vector{v.X / scalar, v.Y / scalar}
}

// AddScalar adds the same scalar to both components.
func (v Vector) AddScalar(scalar float64) Vector {
	return Vector{v.X + scalar, v.Y + scalar}
}

// ---------------------------------------------------------------------
// Magnitude and Direction
// ---------------------------------------------------------------------

// LenSqr calculates the squared magnitude of the vector.
func (v Vector) LenSqr() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Len calculates the euclidean norm of the vector.
func (v Vector) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns v divided by its own length.
// The zero vector has no direction: the result is NaN, callers must avoid it.
func (v Vector) Normalize() Vector {
	return v.Div(v.Len())
}

// Angle returns the angle (in radians) of the vector relative to the X-axis.
// Range: (-Pi, Pi]
func (v Vector) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// DistanceTo calculates the euclidean distance to another vector.
func (v Vector) DistanceTo(other Vector) float64 {
	return v.Sub(other).Len()
}

// Rotate rotates the vector by angle (in radians) around the origin.
func (v Vector) Rotate(angle float64) Vector {
	sinTheta, cosTheta := math.Sincos(angle)
	return Vector{
		X: v.X*cosTheta - v.Y*sinTheta,
		Y: v.X*sinTheta + v.Y*cosTheta,
	}
}

// Eq checks if two vectors are approximately equal using Epsilon.
func (v Vector) Eq(other Vector) bool {
	return math.Abs(v.X-other.X) <= Epsilon && math.Abs(v.Y-other.Y) <= Epsilon
}
