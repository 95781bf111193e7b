package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/material"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

// ErrUnknownMaterial is returned when a sphere refers to a material the scene does not own
var ErrUnknownMaterial = errors.New("unknown material")

// Scene contains all the elements needed for rendering.
// Shapes refer to materials by index into the scene's material table.
type Scene struct {
	Name     string
	Camera   renderer.CameraConfig
	Sampling renderer.SamplingConfig
	Width    int // Image width
	Height   int // Image height

	shapes    []geometry.Shape
	materials []material.Material
}

// NewScene creates an empty scene with the given camera and image settings
func NewScene(camera renderer.CameraConfig, sampling renderer.SamplingConfig, width, height int) *Scene {
	return &Scene{
		Camera:    camera,
		Sampling:  sampling,
		Width:     width,
		Height:    height,
		shapes:    make([]geometry.Shape, 0),
		materials: make([]material.Material, 0),
	}
}

// AddMaterial registers a material and returns its id
func (s *Scene) AddMaterial(m material.Material) int {
	s.materials = append(s.materials, m)
	return len(s.materials) - 1
}

// AddSphere adds a sphere using a previously registered material
func (s *Scene) AddSphere(center core.Vec3, radius float32, materialID int) error {
	if materialID < 0 || materialID >= len(s.materials) {
		return fmt.Errorf("%w: id %d (scene has %d materials)", ErrUnknownMaterial, materialID, len(s.materials))
	}
	sphere, err := geometry.NewSphere(center, radius, materialID)
	if err != nil {
		return err
	}
	s.shapes = append(s.shapes, sphere)
	return nil
}

// Shapes returns the objects in the scene
func (s *Scene) Shapes() []geometry.Shape {
	return s.shapes
}

// Material returns the material with the given id, or nil if there is none
func (s *Scene) Material(id int) material.Material {
	if id < 0 || id >= len(s.materials) {
		return nil
	}
	return s.materials[id]
}

// Materials returns the material table
func (s *Scene) Materials() []material.Material {
	return s.materials
}

// GetPrimitiveCount returns the number of shapes in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.shapes)
}

// NewCamera builds the scene's camera
func (s *Scene) NewCamera() (*renderer.Camera, error) {
	return renderer.NewCamera(s.Camera)
}

// mustAddSphere is used by the built-in scenes, whose geometry is known to be valid
func (s *Scene) mustAddSphere(center core.Vec3, radius float32, materialID int) {
	if err := s.AddSphere(center, radius, materialID); err != nil {
		panic(err)
	}
}
