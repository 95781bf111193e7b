package material

import (
	"testing"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

func mustNormalize(t *testing.T, v core.Vec3) core.Vec3 {
	t.Helper()
	unit, err := v.Normalize()
	if err != nil {
		t.Fatalf("Normalize(%v): %v", v, err)
	}
	return unit
}
