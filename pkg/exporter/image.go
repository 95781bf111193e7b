package exporter

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/nfnt/resize"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ImageExporter buffers pixels into an RGBA image and encodes it on Finish
type ImageExporter struct {
	w      io.Writer
	format Format
	img    *image.RGBA
	pushed int

	thumbnail      io.Writer
	thumbnailWidth uint
}

// NewImageExporter creates an exporter encoding a width x height image as format
func NewImageExporter(w io.Writer, format Format, width, height int) (*ImageExporter, error) {
	switch format {
	case FormatPNG, FormatBMP, FormatTIFF:
	default:
		return nil, fmt.Errorf("image exporter cannot encode %q", format)
	}
	return &ImageExporter{
		w:      w,
		format: format,
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
	}, nil
}

// WithThumbnail additionally writes a downscaled copy of the same format to w
func (e *ImageExporter) WithThumbnail(w io.Writer, width uint) *ImageExporter {
	e.thumbnail = w
	e.thumbnailWidth = width
	return e
}

// PushPixel stores the next pixel in raster order
func (e *ImageExporter) PushPixel(r, g, b uint8) error {
	bounds := e.img.Bounds()
	total := bounds.Dx() * bounds.Dy()
	if e.pushed >= total {
		return fmt.Errorf("%w: more than %d pixels", ErrPixelCount, total)
	}
	x := e.pushed % bounds.Dx()
	y := e.pushed / bounds.Dx()
	e.img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
	e.pushed++
	return nil
}

// Finish encodes the image, and the thumbnail when one was requested
func (e *ImageExporter) Finish() error {
	bounds := e.img.Bounds()
	if e.pushed != bounds.Dx()*bounds.Dy() {
		return fmt.Errorf("%w: got %d of %d pixels", ErrPixelCount, e.pushed, bounds.Dx()*bounds.Dy())
	}
	if err := encode(e.w, e.img, e.format); err != nil {
		return err
	}

	if e.thumbnail != nil && e.thumbnailWidth > 0 {
		// Height 0 preserves the aspect ratio
		thumb := resize.Resize(e.thumbnailWidth, 0, e.img, resize.Lanczos3)
		if err := encode(e.thumbnail, thumb, e.format); err != nil {
			return fmt.Errorf("thumbnail: %w", err)
		}
	}
	return nil
}

func encode(w io.Writer, img image.Image, format Format) error {
	var err error
	switch format {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		err = fmt.Errorf("unsupported format %q", format)
	}
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", format, err)
	}
	return nil
}
