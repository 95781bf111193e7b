package scene

import (
	"errors"
	"testing"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/material"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

func TestScene_AddSphereRequiresMaterial(t *testing.T) {
	s := NewScene(renderer.DefaultCameraConfig(), renderer.DefaultSamplingConfig(), 10, 10)

	if err := s.AddSphere(core.Zero, 1, 0); !errors.Is(err, ErrUnknownMaterial) {
		t.Errorf("Expected ErrUnknownMaterial on empty table, got %v", err)
	}

	id := s.AddMaterial(material.NewLambertian(core.One))
	if id != 0 {
		t.Errorf("Expected first material id 0, got %d", id)
	}
	if err := s.AddSphere(core.Zero, 1, id); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	if err := s.AddSphere(core.Zero, 1, id+1); !errors.Is(err, ErrUnknownMaterial) {
		t.Errorf("Expected ErrUnknownMaterial for id %d, got %v", id+1, err)
	}
	if err := s.AddSphere(core.Zero, 0, id); !errors.Is(err, geometry.ErrInvalidSphere) {
		t.Errorf("Expected ErrInvalidSphere for zero radius, got %v", err)
	}

	if len(s.Shapes()) != 1 {
		t.Errorf("Expected 1 shape, got %d", len(s.Shapes()))
	}
}

func TestScene_MaterialLookup(t *testing.T) {
	s := NewScene(renderer.DefaultCameraConfig(), renderer.DefaultSamplingConfig(), 10, 10)
	glass := material.NewDielectric(1.5)
	id := s.AddMaterial(glass)

	if got := s.Material(id); got != glass {
		t.Errorf("Expected registered material, got %v", got)
	}
	for _, bad := range []int{-1, 1, 100} {
		if got := s.Material(bad); got != nil {
			t.Errorf("Material(%d): expected nil, got %v", bad, got)
		}
	}
	if len(s.Materials()) != 1 {
		t.Errorf("Expected 1 material, got %d", len(s.Materials()))
	}
}

func TestNewDefaultScene(t *testing.T) {
	s := NewDefaultScene()

	if s.Width != 640 || s.Height != 320 {
		t.Errorf("Expected 640x320, got %dx%d", s.Width, s.Height)
	}
	if s.Sampling != renderer.DefaultSamplingConfig() {
		t.Errorf("Expected default sampling, got %+v", s.Sampling)
	}
	if s.GetPrimitiveCount() != 4 || len(s.Materials()) != 4 {
		t.Fatalf("Expected 4 spheres and 4 materials, got %d and %d", s.GetPrimitiveCount(), len(s.Materials()))
	}

	// Every shape must resolve to a material
	for i, shape := range s.Shapes() {
		sphere := shape.(*geometry.Sphere)
		if s.Material(sphere.MaterialID) == nil {
			t.Errorf("Sphere %d refers to missing material %d", i, sphere.MaterialID)
		}
	}

	if _, ok := s.Material(2).(*material.Dielectric); !ok {
		t.Errorf("Expected third material to be glass, got %T", s.Material(2))
	}
	if _, err := s.NewCamera(); err != nil {
		t.Errorf("Expected valid camera, got %v", err)
	}
}

func TestNewSphereGridScene_Deterministic(t *testing.T) {
	a := NewSphereGridScene(7)
	b := NewSphereGridScene(7)

	if len(a.Shapes()) != 101 {
		t.Fatalf("Expected 100 spheres plus ground, got %d", len(a.Shapes()))
	}
	if len(a.Shapes()) != len(b.Shapes()) || len(a.Materials()) != len(b.Materials()) {
		t.Fatal("Expected identical scenes for the same seed")
	}
	for i := range a.Shapes() {
		sa := a.Shapes()[i].(*geometry.Sphere)
		sb := b.Shapes()[i].(*geometry.Sphere)
		if *sa != *sb {
			t.Errorf("Sphere %d differs: %+v vs %+v", i, sa, sb)
		}
	}
}

func TestOklchToRGB_InRange(t *testing.T) {
	for hue := float32(0); hue < 360; hue += 15 {
		c := oklchToRGB(0.65, 0.25, hue)
		if c.X < 0 || c.X > 1 || c.Y < 0 || c.Y > 1 || c.Z < 0 || c.Z > 1 {
			t.Errorf("hue %v: color %v outside [0,1]", hue, c)
		}
	}

	// Zero chroma is a neutral gray
	gray := oklchToRGB(0.5, 0, 0)
	if !gray.ApproxEquals(core.NewVec3(gray.X, gray.X, gray.X), 1e-4) {
		t.Errorf("Expected neutral gray, got %v", gray)
	}
}
