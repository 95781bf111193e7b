package geometry

import "github.com/df07/go-sphere-raytracer/pkg/core"

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	T          float32   // Parameter t along the ray
	Point      core.Vec3 // Point of intersection
	Normal     core.Vec3 // Outward surface normal at intersection
	MaterialID int       // Index into the scene's material table
}

// ClosestHit scans every shape and returns the nearest intersection in (tMin, tMax).
// The upper bound shrinks to each hit found so farther shapes cannot report occluded hits.
func ClosestHit(shapes []Shape, ray core.Ray, tMin, tMax float32) (HitRecord, bool) {
	var closestHit HitRecord
	closestSoFar := tMax
	hitAnything := false

	for _, shape := range shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			hitAnything = true
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, hitAnything
}
