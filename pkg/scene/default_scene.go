package scene

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/material"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

// NewDefaultScene creates the classic four-sphere scene: diffuse, fuzzy metal, glass and a huge ground sphere
func NewDefaultScene() *Scene {
	width, height := 640, 320

	cameraConfig := renderer.CameraConfig{
		LookFrom:    core.NewVec3(0, 0.4, 0.5), // Slightly above and behind the spheres
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        90,
		AspectRatio: float32(width) / float32(height),
	}

	s := NewScene(cameraConfig, renderer.DefaultSamplingConfig(), width, height)
	s.Name = "default"

	diffuseRed := s.AddMaterial(material.NewLambertian(core.NewVec3(0.8, 0.3, 0.3)))
	fuzzyGold := s.AddMaterial(material.NewMetal(core.NewVec3(0.8, 0.6, 0.3), 0.01))
	glass := s.AddMaterial(material.NewDielectric(2.0))
	ground := s.AddMaterial(material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0)))

	s.mustAddSphere(core.NewVec3(-0.3, 0, -1), 0.5, diffuseRed)
	s.mustAddSphere(core.NewVec3(1, 0, -1.3), 0.5, fuzzyGold)
	s.mustAddSphere(core.NewVec3(0.5, 0.8, -1.5), 0.5, glass)
	s.mustAddSphere(core.NewVec3(0, -100.5, -1), 100, ground)

	return s
}

// NewCenterScene creates a single diffuse sphere on a ground sphere, viewed from the origin down -Z.
// With an all-zero sampler its center pixel is fully deterministic.
func NewCenterScene() *Scene {
	s := NewScene(renderer.DefaultCameraConfig(), renderer.DefaultSamplingConfig(), 200, 100)
	s.Name = "center"

	diffuseRed := s.AddMaterial(material.NewLambertian(core.NewVec3(0.8, 0.3, 0.3)))
	ground := s.AddMaterial(material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0)))

	s.mustAddSphere(core.NewVec3(0, 0, -1), 0.5, diffuseRed)
	s.mustAddSphere(core.NewVec3(0, -100.5, -1), 100, ground)

	return s
}
