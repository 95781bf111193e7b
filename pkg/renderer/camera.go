package renderer

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// ErrInvalidCamera is returned when a camera configuration cannot produce rays
var ErrInvalidCamera = errors.New("invalid camera")

// CameraConfig contains all camera configuration parameters
type CameraConfig struct {
	LookFrom    core.Vec3 `yaml:"look_from"`    // Camera position
	LookAt      core.Vec3 `yaml:"look_at"`      // Point the camera looks at
	Up          core.Vec3 `yaml:"up"`           // Up direction (usually 0,1,0)
	VFov        float32   `yaml:"vfov"`         // Vertical field of view in degrees
	AspectRatio float32   `yaml:"aspect_ratio"` // Width / height
}

// DefaultCameraConfig returns a camera at the origin looking down -Z with a 90° field of view
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		LookFrom:    core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        90,
		AspectRatio: 2,
	}
}

// Camera generates rays for rendering
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
}

// NewCamera creates a positionable camera
func NewCamera(config CameraConfig) (*Camera, error) {
	if !(config.VFov > 0 && config.VFov < 180) {
		return nil, fmt.Errorf("%w: vertical fov %v must be in (0, 180)", ErrInvalidCamera, config.VFov)
	}
	if !(config.AspectRatio > 0) {
		return nil, fmt.Errorf("%w: aspect ratio %v must be positive", ErrInvalidCamera, config.AspectRatio)
	}

	theta := config.VFov * math32.Pi / 180
	halfHeight := math32.Tan(theta / 2)
	halfWidth := config.AspectRatio * halfHeight

	// Orthonormal basis: w points backwards, u right, v up
	w, err := config.LookFrom.Subtract(config.LookAt).Normalize()
	if err != nil {
		return nil, fmt.Errorf("%w: look_from and look_at coincide", ErrInvalidCamera)
	}
	u, err := config.Up.Cross(w).Normalize()
	if err != nil {
		return nil, fmt.Errorf("%w: up vector is parallel to the view direction", ErrInvalidCamera)
	}
	v := w.Cross(u)

	origin := config.LookFrom
	return &Camera{
		origin:          origin,
		lowerLeftCorner: origin.Subtract(u.Multiply(halfWidth)).Subtract(v.Multiply(halfHeight)).Subtract(w),
		horizontal:      u.Multiply(2 * halfWidth),
		vertical:        v.Multiply(2 * halfHeight),
	}, nil
}

// GetRay generates a ray for screen coordinates (s, t) where 0 <= s,t <= 1.
// The direction is unit length.
func (c *Camera) GetRay(s, t float32) core.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin)

	// The image plane sits one unit in front of the origin, so direction is never zero
	unit, err := direction.Normalize()
	if err != nil {
		unit = direction
	}
	return core.NewRay(c.origin, unit)
}
