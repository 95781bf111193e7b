package material

import (
	"github.com/chewxy/math32"
	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// Reflect calculates the reflection of v off a surface with normal n: v - 2(v·n)n
func Reflect(v, n core.Vec3) core.Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// Refract bends the unit vector uv through a surface with unit normal n facing against it,
// where etaRatio is the incident index over the transmitted index.
// Returns false on total internal reflection (Snell discriminant ≤ 0).
func Refract(uv, n core.Vec3, etaRatio float32) (core.Vec3, bool) {
	dt := uv.Dot(n)
	discriminant := 1 - etaRatio*etaRatio*(1-dt*dt)
	if discriminant <= 0 {
		return core.Zero, false
	}
	refracted := uv.Subtract(n.Multiply(dt)).Multiply(etaRatio).Subtract(n.Multiply(math32.Sqrt(discriminant)))
	return refracted, true
}
