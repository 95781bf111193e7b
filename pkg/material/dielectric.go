package material

import (
	"github.com/chewxy/math32"
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
)

// Dielectric represents a transparent material like glass that can both reflect and refract
type Dielectric struct {
	RefractiveIndex float32 // Index of refraction (e.g., 1.5 for glass)
}

// NewDielectric creates a new dielectric material
func NewDielectric(refractiveIndex float32) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter implements the Material interface for dielectric scattering.
// Glass never absorbs, so attenuation is always One.
func (d *Dielectric) Scatter(rayIn core.Ray, hit geometry.HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	unitDirection, err := rayIn.Direction.Normalize()
	if err != nil {
		return ScatterResult{}, false
	}

	// Hit normals point outward; a positive dot product means the ray is leaving the material
	normal := hit.Normal
	refractionRatio := 1.0 / d.RefractiveIndex
	if unitDirection.Dot(normal) > 0 {
		normal = normal.Negate()
		refractionRatio = d.RefractiveIndex
	}

	cosTheta := min(-unitDirection.Dot(normal), 1.0)

	var direction core.Vec3
	refracted, canRefract := Refract(unitDirection, normal, refractionRatio)
	// Matched indices form no interface, so there is nothing to reflect from
	if !canRefract || (refractionRatio != 1 && Schlick(cosTheta, refractionRatio) > sampler.Get1D()) {
		direction = Reflect(unitDirection, normal)
	} else {
		direction = refracted
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction),
		Attenuation: core.One,
	}, true
}

// Schlick calculates the Fresnel reflectance using Schlick's approximation
func Schlick(cosine, refractionRatio float32) float32 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math32.Pow(1-cosine, 5)
}
