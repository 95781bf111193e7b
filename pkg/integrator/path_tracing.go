package integrator

import (
	"github.com/chewxy/math32"
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/material"
)

// DefaultEpsilon is the minimum hit distance, which keeps scattered rays
// from re-intersecting the surface they start on
const DefaultEpsilon float32 = 0.001

var (
	skyBottom = core.One
	skyTop    = core.NewVec3(0.5, 0.7, 1.0)
)

// PathTracingIntegrator implements unidirectional path tracing with a fixed bounce limit.
// It holds no mutable state, so one instance may serve many goroutines as long as each
// supplies its own sampler.
type PathTracingIntegrator struct {
	MaxDepth int     // Bounces allowed before a path is cut off as black
	Epsilon  float32 // Lower bound of the hit interval
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(maxDepth int) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		MaxDepth: maxDepth,
		Epsilon:  DefaultEpsilon,
	}
}

// RayColor computes the color for a single camera ray
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world World, sampler core.Sampler) core.Vec3 {
	return pt.trace(ray, world, sampler, 0)
}

// trace is the recursive estimator: sky on a miss, black on absorption or when the
// bounce limit is reached, otherwise attenuation times the radiance of the scattered ray
func (pt *PathTracingIntegrator) trace(ray core.Ray, world World, sampler core.Sampler, depth int) core.Vec3 {
	hit, isHit := geometry.ClosestHit(world.Shapes(), ray, pt.Epsilon, math32.Inf(1))
	if !isHit {
		return BackgroundGradient(ray)
	}

	scatter, didScatter := pt.scatter(ray, hit, world, sampler)
	if !didScatter {
		return core.Zero
	}

	if depth >= pt.MaxDepth {
		return core.Zero
	}

	return scatter.Attenuation.MultiplyVec(pt.trace(scatter.Scattered, world, sampler, depth+1))
}

// RayColorIterative computes the same estimate as RayColor with an explicit loop,
// carrying the running attenuation product instead of recursing
func (pt *PathTracingIntegrator) RayColorIterative(ray core.Ray, world World, sampler core.Sampler) core.Vec3 {
	throughput := core.One

	for depth := 0; ; depth++ {
		hit, isHit := geometry.ClosestHit(world.Shapes(), ray, pt.Epsilon, math32.Inf(1))
		if !isHit {
			return throughput.MultiplyVec(BackgroundGradient(ray))
		}

		scatter, didScatter := pt.scatter(ray, hit, world, sampler)
		if !didScatter || depth >= pt.MaxDepth {
			return core.Zero
		}

		throughput = throughput.MultiplyVec(scatter.Attenuation)
		ray = scatter.Scattered
	}
}

// IterativePathTracingIntegrator serves RayColorIterative through the Integrator interface,
// for bounce limits deep enough that recursion would grow the stack
type IterativePathTracingIntegrator struct {
	*PathTracingIntegrator
}

// NewIterativePathTracingIntegrator creates a loop-based path tracing integrator
func NewIterativePathTracingIntegrator(maxDepth int) *IterativePathTracingIntegrator {
	return &IterativePathTracingIntegrator{PathTracingIntegrator: NewPathTracingIntegrator(maxDepth)}
}

// RayColor computes the color for a single camera ray without recursing
func (it *IterativePathTracingIntegrator) RayColor(ray core.Ray, world World, sampler core.Sampler) core.Vec3 {
	return it.RayColorIterative(ray, world, sampler)
}

// scatter looks up the hit material; an unknown material absorbs the ray
func (pt *PathTracingIntegrator) scatter(ray core.Ray, hit geometry.HitRecord, world World, sampler core.Sampler) (material.ScatterResult, bool) {
	mat := world.Material(hit.MaterialID)
	if mat == nil {
		return material.ScatterResult{}, false
	}
	return mat.Scatter(ray, hit, sampler)
}

// BackgroundGradient returns the sky color seen along a ray that escapes the scene:
// white at the bottom blending to sky blue at the top by the normalized Y component.
// A ray without a direction sees nothing.
func BackgroundGradient(r core.Ray) core.Vec3 {
	unitDirection, err := r.Direction.Normalize()
	if err != nil {
		return core.Zero
	}

	// Map y from [-1,1] to [0,1]
	t := 0.5 * (unitDirection.Y + 1.0)

	// Linear interpolation: (1-t)*bottom + t*top
	return skyBottom.Multiply(1.0 - t).Add(skyTop.Multiply(t))
}
