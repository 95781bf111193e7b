package core

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
)

var (
	// ErrDivisionByZero is returned when a vector is divided by a zero scalar or component
	ErrDivisionByZero = errors.New("division by zero")
	// ErrDegenerateVector is returned when normalizing a vector with zero or non-finite length
	ErrDegenerateVector = errors.New("degenerate vector")
)

// Vec3 represents a 3D vector, point or RGB color
type Vec3 struct {
	X, Y, Z float32
}

var (
	// Zero is the vector (0, 0, 0)
	Zero = Vec3{0, 0, 0}
	// One is the vector (1, 1, 1)
	One = Vec3{1, 1, 1}
)

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Multiply returns the vector scaled by a scalar
func (v Vec3) Multiply(scalar float32) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// MultiplyVec returns component-wise multiplication of two vectors
func (v Vec3) MultiplyVec(other Vec3) Vec3 {
	return Vec3{
		X: v.X * other.X,
		Y: v.Y * other.Y,
		Z: v.Z * other.Z,
	}
}

// Divide returns the vector divided by a scalar
func (v Vec3) Divide(scalar float32) (Vec3, error) {
	if scalar == 0 {
		return Zero, ErrDivisionByZero
	}
	return Vec3{v.X / scalar, v.Y / scalar, v.Z / scalar}, nil
}

// DivideVec returns component-wise division of two vectors
func (v Vec3) DivideVec(other Vec3) (Vec3, error) {
	if other.X == 0 || other.Y == 0 || other.Z == 0 {
		return Zero, ErrDivisionByZero
	}
	return Vec3{v.X / other.X, v.Y / other.Y, v.Z / other.Z}, nil
}

// Length returns the magnitude of the vector
func (v Vec3) Length() float32 {
	return math32.Sqrt(v.LengthSquared())
}

// LengthSquared returns the squared magnitude of the vector
func (v Vec3) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Normalize returns a unit vector in the same direction.
// Zero-length and non-finite vectors have no direction and return ErrDegenerateVector.
func (v Vec3) Normalize() (Vec3, error) {
	length := v.Length()
	if length == 0 || math32.IsInf(length, 0) || math32.IsNaN(length) {
		return Zero, ErrDegenerateVector
	}
	return Vec3{v.X / length, v.Y / length, v.Z / length}, nil
}

// Map applies fn to each component
func (v Vec3) Map(fn func(float32) float32) Vec3 {
	return Vec3{X: fn(v.X), Y: fn(v.Y), Z: fn(v.Z)}
}

// Negate returns the negative of the vector
func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Clamp returns a vector with components clamped to [min, max]
func (v Vec3) Clamp(minVal, maxVal float32) Vec3 {
	return v.Map(func(c float32) float32 {
		return max(minVal, min(maxVal, c))
	})
}

// GammaCorrect applies gamma correction to color values
func (v Vec3) GammaCorrect(gamma float32) Vec3 {
	invGamma := 1.0 / gamma
	return v.Map(func(c float32) float32 {
		return math32.Pow(c, invGamma)
	})
}

// Luminance returns the perceptual luminance of an RGB color
// Uses standard luminance weights: 0.299*R + 0.587*G + 0.114*B
func (v Vec3) Luminance() float32 {
	return 0.299*v.X + 0.587*v.Y + 0.114*v.Z
}

// NearZero reports whether every component is within 1e-8 of zero
func (v Vec3) NearZero() bool {
	const s = 1e-8
	return math32.Abs(v.X) < s && math32.Abs(v.Y) < s && math32.Abs(v.Z) < s
}

// IsFinite reports whether no component is NaN or infinite
func (v Vec3) IsFinite() bool {
	for _, c := range [3]float32{v.X, v.Y, v.Z} {
		if math32.IsNaN(c) || math32.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// Equals returns true if the vectors are exactly equal
func (v Vec3) Equals(other Vec3) bool {
	return v.X == other.X && v.Y == other.Y && v.Z == other.Z
}

// ApproxEquals returns true if every component differs by at most tolerance
func (v Vec3) ApproxEquals(other Vec3, tolerance float32) bool {
	return math32.Abs(v.X-other.X) <= tolerance &&
		math32.Abs(v.Y-other.Y) <= tolerance &&
		math32.Abs(v.Z-other.Z) <= tolerance
}

func (v Vec3) String() string {
	return fmt.Sprintf("Vec3[%g, %g, %g]", v.X, v.Y, v.Z)
}

// MarshalYAML writes the vector as a flow sequence [x, y, z]
func (v Vec3) MarshalYAML() (interface{}, error) {
	return []float32{v.X, v.Y, v.Z}, nil
}

// UnmarshalYAML reads a vector written as [x, y, z]
func (v *Vec3) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var components []float32
	if err := unmarshal(&components); err != nil {
		return err
	}
	if len(components) != 3 {
		return fmt.Errorf("vector needs 3 components, got %d", len(components))
	}
	*v = Vec3{components[0], components[1], components[2]}
	return nil
}
