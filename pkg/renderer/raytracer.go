package renderer

import (
	"errors"
	"fmt"
	"time"

	"github.com/chewxy/math32"
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/exporter"
	"github.com/df07/go-sphere-raytracer/pkg/integrator"
)

// ErrInvalidSamplingConfig is returned for sampling settings that cannot produce an image
var ErrInvalidSamplingConfig = errors.New("invalid sampling config")

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int `yaml:"samples_per_pixel"` // Number of rays per pixel
	MaxDepth        int `yaml:"max_depth"`         // Maximum ray bounce depth
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 5,
		MaxDepth:        5,
	}
}

// Validate checks that the configuration can render at least one sample per pixel
func (c SamplingConfig) Validate() error {
	if c.SamplesPerPixel < 1 {
		return fmt.Errorf("%w: samples per pixel %d must be at least 1", ErrInvalidSamplingConfig, c.SamplesPerPixel)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("%w: max depth %d must not be negative", ErrInvalidSamplingConfig, c.MaxDepth)
	}
	return nil
}

// Raytracer handles the rendering process
type Raytracer struct {
	world      integrator.World
	camera     *Camera
	width      int
	height     int
	config     SamplingConfig
	integrator integrator.Integrator
	sampler    core.Sampler
	logger     core.Logger
}

// NewRaytracer creates a new raytracer. The sampler drives both pixel jitter and scattering.
func NewRaytracer(world integrator.World, camera *Camera, width, height int, config SamplingConfig, sampler core.Sampler, logger core.Logger) (*Raytracer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: image size %dx%d", ErrInvalidSamplingConfig, width, height)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Raytracer{
		world:      world,
		camera:     camera,
		width:      width,
		height:     height,
		config:     config,
		integrator: integrator.NewPathTracingIntegrator(config.MaxDepth),
		sampler:    sampler,
		logger:     logger,
	}, nil
}

// SetIntegrator replaces the light transport algorithm
func (rt *Raytracer) SetIntegrator(integratorInst integrator.Integrator) {
	rt.integrator = integratorInst
}

// Render traces every pixel, top row first, and hands the result to exp.
// Any exporter error aborts the render.
func (rt *Raytracer) Render(exp exporter.Exporter) (RenderStats, error) {
	start := time.Now()
	stats := RenderStats{}
	var luminanceSum float64

	progressStep := max(1, rt.height/10)

	for j := rt.height - 1; j >= 0; j-- {
		for i := 0; i < rt.width; i++ {
			ps := rt.samplePixel(i, j)
			color := ps.GetColor()

			stats.TotalPixels++
			stats.TotalSamples += ps.SampleCount
			luminanceSum += float64(color.Luminance())

			r, g, b := ColorToRGB8(color)
			if err := exp.PushPixel(r, g, b); err != nil {
				return stats, fmt.Errorf("pixel (%d, %d): %w", i, rt.height-1-j, err)
			}
		}

		row := rt.height - j
		if row%progressStep == 0 || row == rt.height {
			rt.logger.Printf("Rendered %d/%d rows\n", row, rt.height)
		}
	}

	if err := exp.Finish(); err != nil {
		return stats, fmt.Errorf("finishing image: %w", err)
	}

	stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	stats.AverageLuminance = luminanceSum / float64(stats.TotalPixels)
	stats.Elapsed = time.Since(start)
	return stats, nil
}

// samplePixel averages jittered samples for pixel column i, row j counted from the bottom
func (rt *Raytracer) samplePixel(i, j int) PixelStats {
	var ps PixelStats
	for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
		s := (float32(i) + rt.sampler.Get1D()) / float32(rt.width)
		t := (float32(j) + rt.sampler.Get1D()) / float32(rt.height)

		ray := rt.camera.GetRay(s, t)
		ps.AddSample(rt.integrator.RayColor(ray, rt.world, rt.sampler))
	}
	return ps
}

// ColorToRGB8 converts a linear color to 8-bit sRGB-ish values: gamma 2, clamp to [0,1], scale by 255.99
func ColorToRGB8(c core.Vec3) (r, g, b uint8) {
	scaled := c.Map(func(v float32) float32 {
		if !(v > 0) { // also catches NaN
			return 0
		}
		return min(1, math32.Sqrt(v)) * 255.99
	})
	return uint8(scaled.X), uint8(scaled.Y), uint8(scaled.Z)
}
