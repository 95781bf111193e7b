package geometry

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// ErrInvalidSphere is returned when sphere parameters cannot describe a surface
var ErrInvalidSphere = errors.New("invalid sphere")

// Sphere represents a sphere shape.
// A negative radius flips the normal inward, which models the inner wall of a hollow shell.
type Sphere struct {
	Center     core.Vec3
	Radius     float32
	MaterialID int
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float32, materialID int) (*Sphere, error) {
	if radius == 0 || math32.IsNaN(radius) || math32.IsInf(radius, 0) {
		return nil, fmt.Errorf("%w: radius %v", ErrInvalidSphere, radius)
	}
	if !center.IsFinite() {
		return nil, fmt.Errorf("%w: center %v", ErrInvalidSphere, center)
	}
	if materialID < 0 {
		return nil, fmt.Errorf("%w: material id %d", ErrInvalidSphere, materialID)
	}
	return &Sphere{
		Center:     center,
		Radius:     radius,
		MaterialID: materialID,
	}, nil
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float32) (HitRecord, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic in half-angle form: a*t² + 2*halfB*t + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant <= 0 {
		return HitRecord{}, false
	}

	sqrtD := math32.Sqrt(discriminant)

	// The smaller root is the front-most surface point
	root := (-halfB - sqrtD) / a
	if !(root > tMin && root < tMax) {
		root = (-halfB + sqrtD) / a
		if !(root > tMin && root < tMax) {
			return HitRecord{}, false
		}
	}

	point := ray.At(root)
	return HitRecord{
		T:          root,
		Point:      point,
		Normal:     point.Subtract(s.Center).Multiply(1 / s.Radius),
		MaterialID: s.MaterialID,
	}, true
}
