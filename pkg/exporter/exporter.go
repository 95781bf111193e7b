// Package exporter writes finished pixels to image files.
package exporter

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrPixelCount is returned when Finish is called before every pixel was pushed, or after too many
var ErrPixelCount = errors.New("pixel count mismatch")

// Exporter consumes 8-bit RGB pixels in raster order, top row first.
// Finish is called exactly once after the last pixel.
type Exporter interface {
	PushPixel(r, g, b uint8) error
	Finish() error
}

// Format identifies an output encoding
type Format string

const (
	FormatPPM  Format = "ppm"
	FormatPNG  Format = "png"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
)

// FormatFromPath picks the output format from a file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ppm":
		return FormatPPM, nil
	case ".png":
		return FormatPNG, nil
	case ".bmp":
		return FormatBMP, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	default:
		return "", fmt.Errorf("unsupported output format for %q", path)
	}
}

// ContentType returns the MIME type of the format
func (f Format) ContentType() string {
	switch f {
	case FormatPPM:
		return "image/x-portable-pixmap"
	case FormatPNG:
		return "image/png"
	case FormatBMP:
		return "image/bmp"
	case FormatTIFF:
		return "image/tiff"
	default:
		return "application/octet-stream"
	}
}
