package integrator

import (
	"errors"
	"fmt"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/material"
)

// World is the read-only scene view the integrator traces against
type World interface {
	Shapes() []geometry.Shape
	// Material returns the material registered under id, or nil if there is none
	Material(id int) material.Material
}

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the radiance carried back along ray
	RayColor(ray core.Ray, world World, sampler core.Sampler) core.Vec3
}

// ErrUnknownIntegrator is returned by New for an unrecognized name
var ErrUnknownIntegrator = errors.New("unknown integrator")

// Integrator names accepted by New
const (
	Recursive = "recursive"
	Iterative = "iterative"
)

// New creates the named path tracing integrator; an empty name selects Recursive
func New(name string, maxDepth int) (Integrator, error) {
	switch name {
	case "", Recursive:
		return NewPathTracingIntegrator(maxDepth), nil
	case Iterative:
		return NewIterativePathTracingIntegrator(maxDepth), nil
	default:
		return nil, fmt.Errorf("%w: %q (want %s or %s)", ErrUnknownIntegrator, name, Recursive, Iterative)
	}
}
