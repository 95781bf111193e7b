package material

import (
	"math/rand"
	"testing"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
)

func TestNewMetal_FuzzClamp(t *testing.T) {
	tests := []struct {
		name         string
		inputFuzz    float32
		expectedFuzz float32
	}{
		{"Valid fuzz 0.0", 0.0, 0.0},
		{"Valid fuzz 0.5", 0.5, 0.5},
		{"Valid fuzz 1.0", 1.0, 1.0},
		{"Clamp above 1.0", 1.5, 1.0},
		{"Clamp below 0.0", -0.5, 0.0},
	}

	albedo := core.NewVec3(0.8, 0.8, 0.8)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metal := NewMetal(albedo, tt.inputFuzz)
			if metal.Fuzz != tt.expectedFuzz {
				t.Errorf("Expected fuzz %f, got %f", tt.expectedFuzz, metal.Fuzz)
			}
		})
	}
}

func TestMetal_PerfectReflection(t *testing.T) {
	albedo := core.NewVec3(0.9, 0.9, 0.9)
	metal := NewMetal(albedo, 0.0)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	// Ray hitting surface at 45 degrees, deliberately not unit length
	rayIn := core.NewRay(core.NewVec3(0, 1, 1), core.NewVec3(0, -3, -3))
	hit := geometry.HitRecord{
		Point:  core.NewVec3(0, 0, 0),
		Normal: core.NewVec3(0, 0, 1),
	}

	scatter, didScatter := metal.Scatter(rayIn, hit, sampler)
	if !didScatter {
		t.Fatal("Metal should scatter")
	}

	// Mirror reflection of the unit incoming direction
	expected := mustNormalize(t, core.NewVec3(0, -1, 1))
	if !scatter.Scattered.Direction.ApproxEquals(expected, 1e-6) {
		t.Errorf("Perfect reflection failed: expected %v, got %v", expected, scatter.Scattered.Direction)
	}
	if !scatter.Attenuation.Equals(albedo) {
		t.Errorf("Attenuation should equal albedo: expected %v, got %v", albedo, scatter.Attenuation)
	}
	if !scatter.Scattered.Origin.Equals(hit.Point) {
		t.Errorf("Scattered ray should originate at hit point, got %v", scatter.Scattered.Origin)
	}
}

func TestMetal_BackFacingIsAbsorbed(t *testing.T) {
	// A ray travelling with the normal reflects into the surface
	tests := []struct {
		name      string
		direction core.Vec3
	}{
		{"leaving along normal", core.NewVec3(0, 0, 1)},
		{"leaving at an angle", core.NewVec3(1, 0, 1)},
		{"exact grazing", core.NewVec3(1, 0, 0)},
	}

	hit := geometry.HitRecord{Point: core.Zero, Normal: core.NewVec3(0, 0, 1)}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, fuzz := range []float32{0, 0.3} {
				metal := NewMetal(core.NewVec3(0.8, 0.8, 0.8), fuzz)
				// Zero draws keep the fuzz perturbation at the origin
				if _, didScatter := metal.Scatter(core.NewRay(core.Zero, tt.direction), hit, core.NewConstantSampler(0)); didScatter {
					t.Errorf("fuzz %f: expected absorption", fuzz)
				}
			}
		})
	}
}

func TestMetal_FuzzyReflectionStaysAboveSurface(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.8, 0.8, 0.8), 1.0)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(123)))

	rayIn := core.NewRay(core.NewVec3(-1, 0.1, 0), core.NewVec3(1, -0.1, 0))
	hit := geometry.HitRecord{Point: core.Zero, Normal: core.NewVec3(0, 1, 0)}

	absorbed, scattered := 0, 0
	var first core.Vec3
	varied := false
	for i := 0; i < 1000; i++ {
		scatter, didScatter := metal.Scatter(rayIn, hit, sampler)
		if !didScatter {
			absorbed++
			continue
		}
		if scattered == 0 {
			first = scatter.Scattered.Direction
		} else if !scatter.Scattered.Direction.ApproxEquals(first, 1e-6) {
			varied = true
		}
		scattered++
		if scatter.Scattered.Direction.Dot(hit.Normal) <= 0 {
			t.Fatalf("Scattered direction %v should be above the surface", scatter.Scattered.Direction)
		}
	}

	if absorbed == 0 {
		t.Error("Expected some grazing rays to be absorbed with maximum fuzz")
	}
	if scattered == 0 || !varied {
		t.Error("Expected fuzzy metal to scatter in varying directions")
	}
}

func TestMetal_DegenerateIncomingIsAbsorbed(t *testing.T) {
	metal := NewMetal(core.One, 0)
	hit := geometry.HitRecord{Point: core.Zero, Normal: core.NewVec3(0, 1, 0)}
	if _, didScatter := metal.Scatter(core.NewRay(core.Zero, core.Zero), hit, core.NewConstantSampler(0)); didScatter {
		t.Error("Expected zero-direction ray to be absorbed")
	}
}

func TestReflect(t *testing.T) {
	got := Reflect(core.NewVec3(1, -1, 0), core.NewVec3(0, 1, 0))
	if !got.Equals(core.NewVec3(1, 1, 0)) {
		t.Errorf("Expected (1,1,0), got %v", got)
	}
}
