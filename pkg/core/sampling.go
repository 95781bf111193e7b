package core

import (
	"math/rand"

	"github.com/chewxy/math32"
)

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing
type Sampler interface {
	Get1D() float32 // uniform value in [0, 1)
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// Get1D returns a random float32 in [0, 1)
func (r *RandomSampler) Get1D() float32 {
	return r.random.Float32()
}

// ConstantSampler returns the same value for every draw
type ConstantSampler struct {
	Value float32
}

// NewConstantSampler creates a sampler that always returns value
func NewConstantSampler(value float32) *ConstantSampler {
	return &ConstantSampler{Value: value}
}

// Get1D returns the fixed value
func (c *ConstantSampler) Get1D() float32 {
	return c.Value
}

// SequenceSampler cycles through a fixed list of values
type SequenceSampler struct {
	values []float32
	next   int
}

// NewSequenceSampler creates a sampler returning values in order, wrapping around at the end
func NewSequenceSampler(values ...float32) *SequenceSampler {
	if len(values) == 0 {
		values = []float32{0}
	}
	return &SequenceSampler{values: values}
}

// Get1D returns the next value in the sequence
func (s *SequenceSampler) Get1D() float32 {
	v := s.values[s.next]
	s.next = (s.next + 1) % len(s.values)
	return v
}

// SamplePointInUnitSphere generates a random point inside a unit sphere using spherical coordinates
// This avoids rejection sampling by using the inverse CDF method
func SamplePointInUnitSphere(sampler Sampler) Vec3 {
	// r = ∛(u₁) to account for volume scaling
	// φ = 2π * u₂ (azimuthal angle)
	// cos(θ) = 2 * u₃ - 1 (polar angle, uniform on [-1,1])
	r := math32.Cbrt(sampler.Get1D())
	phi := 2 * math32.Pi * sampler.Get1D()
	cosTheta := 2*sampler.Get1D() - 1
	sinTheta := math32.Sqrt(max(0, 1-cosTheta*cosTheta))

	return NewVec3(
		r*sinTheta*math32.Cos(phi),
		r*sinTheta*math32.Sin(phi),
		r*cosTheta,
	)
}
