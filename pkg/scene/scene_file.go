package scene

import (
	"errors"
	"fmt"
	"os"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/material"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
	"gopkg.in/yaml.v2"
)

// ErrInvalidSceneFile is returned for scene files that parse but describe an unusable scene
var ErrInvalidSceneFile = errors.New("invalid scene file")

// sceneFile is the YAML layout of a scene description
type sceneFile struct {
	Name        string                  `yaml:"name"`
	Description string                  `yaml:"description"`
	Width       int                     `yaml:"width"`
	Height      int                     `yaml:"height"`
	Camera      renderer.CameraConfig   `yaml:"camera"`
	Sampling    renderer.SamplingConfig `yaml:"sampling"`
	Materials   []materialSpec          `yaml:"materials"`
	Spheres     []sphereSpec            `yaml:"spheres"`
}

type materialSpec struct {
	Name            string    `yaml:"name"`
	Type            string    `yaml:"type"` // lambertian, metal or dielectric
	Albedo          core.Vec3 `yaml:"albedo"`
	Fuzz            float32   `yaml:"fuzz"`
	RefractiveIndex float32   `yaml:"refractive_index"`
}

type sphereSpec struct {
	Center   core.Vec3 `yaml:"center"`
	Radius   float32   `yaml:"radius"`
	Material string    `yaml:"material"`
}

// LoadSceneFile reads a YAML scene description from disk
func LoadSceneFile(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}
	s, err := ParseScene(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// ParseScene builds a scene from its YAML description.
// Omitted camera and sampling fields keep their defaults; a missing aspect ratio follows the image size.
func ParseScene(data []byte) (*Scene, error) {
	file := sceneFile{
		Width:    400,
		Height:   200,
		Camera:   renderer.DefaultCameraConfig(),
		Sampling: renderer.DefaultSamplingConfig(),
	}
	file.Camera.AspectRatio = 0

	if err := yaml.UnmarshalStrict(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}

	if file.Width <= 0 || file.Height <= 0 {
		return nil, fmt.Errorf("%w: image size %dx%d", ErrInvalidSceneFile, file.Width, file.Height)
	}
	if file.Camera.AspectRatio == 0 {
		file.Camera.AspectRatio = float32(file.Width) / float32(file.Height)
	}

	s := NewScene(file.Camera, file.Sampling, file.Width, file.Height)
	s.Name = file.Name

	ids := make(map[string]int, len(file.Materials))
	for i, m := range file.Materials {
		if m.Name == "" {
			return nil, fmt.Errorf("%w: material %d has no name", ErrInvalidSceneFile, i)
		}
		if _, exists := ids[m.Name]; exists {
			return nil, fmt.Errorf("%w: duplicate material %q", ErrInvalidSceneFile, m.Name)
		}
		mat, err := m.build()
		if err != nil {
			return nil, err
		}
		ids[m.Name] = s.AddMaterial(mat)
	}

	for i, sp := range file.Spheres {
		id, ok := ids[sp.Material]
		if !ok {
			return nil, fmt.Errorf("sphere %d: %w: %q", i, ErrUnknownMaterial, sp.Material)
		}
		if err := s.AddSphere(sp.Center, sp.Radius, id); err != nil {
			return nil, fmt.Errorf("sphere %d: %w", i, err)
		}
	}

	return s, nil
}

func (m materialSpec) build() (material.Material, error) {
	switch m.Type {
	case "lambertian":
		return material.NewLambertian(m.Albedo), nil
	case "metal":
		return material.NewMetal(m.Albedo, m.Fuzz), nil
	case "dielectric":
		if !(m.RefractiveIndex > 0) {
			return nil, fmt.Errorf("%w: material %q needs a positive refractive_index", ErrInvalidSceneFile, m.Name)
		}
		return material.NewDielectric(m.RefractiveIndex), nil
	default:
		return nil, fmt.Errorf("%w: material %q has unknown type %q", ErrInvalidSceneFile, m.Name, m.Type)
	}
}
