package scene

import (
	"math/rand"

	"github.com/chewxy/math32"
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/material"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

// oklchToRGB converts OKLCH color values to RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float32) core.Vec3 {
	hRad := h * math32.Pi / 180.0

	// OKLCH to OKLAB
	a := c * math32.Cos(hRad)
	b := c * math32.Sin(hRad)

	// OKLAB to LMS
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// LMS to linear RGB
	rgb := core.NewVec3(
		+4.0767416621*l_-3.3077115913*m_+0.2309699292*s_,
		-1.2684380046*l_+2.6097574011*m_-0.3413193965*s_,
		-0.0041960863*l_-0.7034186147*m_+1.7076147010*s_,
	)
	return rgb.Clamp(0, 1)
}

// NewSphereGridScene creates a grid of small spheres with randomly chosen materials.
// The same seed always produces the same scene.
func NewSphereGridScene(seed int64) *Scene {
	width, height := 800, 450

	cameraConfig := renderer.CameraConfig{
		LookFrom:    core.NewVec3(4.5, 6, 18),    // Back and above the grid
		LookAt:      core.NewVec3(4.5, 0.8, 4.5), // Center of grid, slightly lower
		Up:          core.NewVec3(0, 1, 0),
		VFov:        40,
		AspectRatio: float32(width) / float32(height),
	}

	samplingConfig := renderer.SamplingConfig{
		SamplesPerPixel: 50,
		MaxDepth:        20,
	}

	s := NewScene(cameraConfig, samplingConfig, width, height)
	s.Name = "sphere-grid"
	random := rand.New(rand.NewSource(seed))

	ground := s.AddMaterial(material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	s.mustAddSphere(core.NewVec3(4.5, -1000, 4.5), 1000, ground)

	glass := s.AddMaterial(material.NewDielectric(1.5))

	gridSize := 10

	// Fit the grid into a 9x9 area regardless of size
	targetArea := float32(9.0)
	spacing := targetArea / float32(gridSize-1)
	sphereRadius := max(0.02, min(0.35, spacing*0.35))

	baseLightness := float32(0.65)
	minChroma := float32(0.05)
	maxChroma := float32(0.25)

	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			x := float32(i)*spacing - targetArea/2 + 4.5
			z := float32(j)*spacing - targetArea/2 + 4.5

			// Jitter within the cell so neighbors never touch
			x += (random.Float32() - 0.5) * (spacing - 2*sphereRadius)
			z += (random.Float32() - 0.5) * (spacing - 2*sphereRadius)
			position := core.NewVec3(x, sphereRadius, z)

			// Hue across X, chroma across Z
			hue := float32(i) / float32(gridSize-1) * 360
			chroma := minChroma + float32(j)/float32(gridSize-1)*(maxChroma-minChroma)
			lightness := baseLightness + 0.1*math32.Sin(float32(i+j)*0.5)
			color := oklchToRGB(lightness, chroma, hue)

			var materialID int
			switch choice := random.Float32(); {
			case choice < 0.6:
				materialID = s.AddMaterial(material.NewLambertian(color))
			case choice < 0.9:
				fuzz := 0.05 + 0.1*float32((i+j)%3)/2
				materialID = s.AddMaterial(material.NewMetal(color, fuzz))
			default:
				materialID = glass
			}

			s.mustAddSphere(position, sphereRadius, materialID)
		}
	}

	return s
}
