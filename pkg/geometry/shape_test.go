package geometry

import (
	"math/rand"
	"testing"

	"github.com/chewxy/math32"
	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// MockShape implements Shape for testing
type MockShape struct {
	hitFn func(ray core.Ray, tMin, tMax float32) (HitRecord, bool)
	calls []float32 // tMax seen on each call
}

func (m *MockShape) Hit(ray core.Ray, tMin, tMax float32) (HitRecord, bool) {
	m.calls = append(m.calls, tMax)
	return m.hitFn(ray, tMin, tMax)
}

func TestClosestHit_Empty(t *testing.T) {
	ray := core.NewRay(core.Zero, core.NewVec3(0, 0, -1))
	if _, isHit := ClosestHit(nil, ray, 0.001, math32.MaxFloat32); isHit {
		t.Error("Expected no hit for empty shape list")
	}
}

func TestClosestHit_MissEverything(t *testing.T) {
	shapes := []Shape{
		mustSphere(t, core.NewVec3(0, 5, -1), 0.5, 0),
		mustSphere(t, core.NewVec3(5, 0, -1), 0.5, 1),
	}
	ray := core.NewRay(core.Zero, core.NewVec3(0, 0, -1))
	if hit, isHit := ClosestHit(shapes, ray, 0.001, math32.MaxFloat32); isHit {
		t.Errorf("Expected miss, got hit at t=%f", hit.T)
	}
}

func TestClosestHit_NarrowsUpperBound(t *testing.T) {
	near := &MockShape{hitFn: func(ray core.Ray, tMin, tMax float32) (HitRecord, bool) {
		return HitRecord{T: 2, MaterialID: 1}, 2 < tMax
	}}
	far := &MockShape{hitFn: func(ray core.Ray, tMin, tMax float32) (HitRecord, bool) {
		return HitRecord{T: 5, MaterialID: 2}, 5 < tMax
	}}

	ray := core.NewRay(core.Zero, core.NewVec3(0, 0, -1))
	hit, isHit := ClosestHit([]Shape{near, far}, ray, 0.001, 100)
	if !isHit {
		t.Fatal("Expected hit")
	}
	if hit.MaterialID != 1 {
		t.Errorf("Expected near shape's material 1, got %d", hit.MaterialID)
	}
	if len(far.calls) != 1 || far.calls[0] != 2 {
		t.Errorf("Expected far shape to be queried with tMax=2, got %v", far.calls)
	}
}

func TestClosestHit_OrderIndependent(t *testing.T) {
	shapes := []Shape{
		mustSphere(t, core.NewVec3(0, 0, -1), 0.5, 0),
		mustSphere(t, core.NewVec3(0, 0, -3), 1.0, 1),
		mustSphere(t, core.NewVec3(0.2, 0.1, -1.4), 0.6, 2),
		mustSphere(t, core.NewVec3(0, -100.5, -1), 100, 3),
	}

	rays := []core.Ray{
		core.NewRay(core.Zero, core.NewVec3(0, 0, -1)),
		core.NewRay(core.Zero, core.NewVec3(0.3, 0.05, -1)),
		core.NewRay(core.Zero, core.NewVec3(0, -0.4, -1)),
		core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0.05, 0, -1)),
	}

	random := rand.New(rand.NewSource(42))

	for ri, ray := range rays {
		reference, refHit := ClosestHit(shapes, ray, 0.001, math32.MaxFloat32)

		for p := 0; p < 24; p++ {
			permuted := make([]Shape, len(shapes))
			copy(permuted, shapes)
			random.Shuffle(len(permuted), func(i, j int) {
				permuted[i], permuted[j] = permuted[j], permuted[i]
			})

			hit, isHit := ClosestHit(permuted, ray, 0.001, math32.MaxFloat32)
			if isHit != refHit {
				t.Fatalf("ray %d permutation %d: hit=%t, reference hit=%t", ri, p, isHit, refHit)
			}
			if hit != reference {
				t.Errorf("ray %d permutation %d: got %+v, reference %+v", ri, p, hit, reference)
			}
		}
	}
}

func TestClosestHit_OverlappingSpheres(t *testing.T) {
	// Two overlapping spheres on the same axis; the one whose surface is nearer wins
	a := mustSphere(t, core.NewVec3(0, 0, -2), 1, 0)
	b := mustSphere(t, core.NewVec3(0, 0, -2.5), 1, 1)
	ray := core.NewRay(core.Zero, core.NewVec3(0, 0, -1))

	for _, shapes := range [][]Shape{{a, b}, {b, a}} {
		hit, isHit := ClosestHit(shapes, ray, 0.001, math32.MaxFloat32)
		if !isHit {
			t.Fatal("Expected hit")
		}
		if hit.MaterialID != 0 || math32.Abs(hit.T-1) > 1e-6 {
			t.Errorf("Expected sphere a at t=1, got material %d at t=%f", hit.MaterialID, hit.T)
		}
	}
}
