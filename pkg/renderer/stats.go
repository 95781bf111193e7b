package renderer

import (
	"time"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels      int           // Total number of pixels rendered
	TotalSamples     int           // Total number of samples taken
	AverageSamples   float64       // Average samples per pixel
	AverageLuminance float64       // Mean linear luminance over all pixels
	Elapsed          time.Duration // Wall-clock time of the render
}

// Summary formats the statistics for a log line, with thousands separators
func (s RenderStats) Summary() string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("%d pixels, %d samples (%.1f per pixel), mean luminance %.3f, in %v",
		s.TotalPixels, s.TotalSamples, s.AverageSamples, s.AverageLuminance, s.Elapsed.Round(time.Millisecond))
}

// PixelStats accumulates the samples of a single pixel
type PixelStats struct {
	ColorAccum  core.Vec3 // RGB accumulator for final result
	SampleCount int       // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.SampleCount++
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Zero
	}
	return ps.ColorAccum.Multiply(1.0 / float32(ps.SampleCount))
}
