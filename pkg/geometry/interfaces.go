package geometry

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// Shape interface for objects that can be hit by rays
type Shape interface {
	// Hit reports the nearest intersection with t strictly inside (tMin, tMax)
	Hit(ray core.Ray, tMin, tMax float32) (HitRecord, bool)
}
