package exporter

import (
	"bufio"
	"fmt"
	"io"
)

// PPMExporter writes the plain-text P3 pixmap format
type PPMExporter struct {
	w             *bufio.Writer
	width, height int
	pushed        int
}

// NewPPMExporter writes the P3 header immediately and streams pixels after it
func NewPPMExporter(w io.Writer, width, height int) (*PPMExporter, error) {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", width, height); err != nil {
		return nil, fmt.Errorf("failed to write PPM header: %w", err)
	}
	return &PPMExporter{w: bw, width: width, height: height}, nil
}

// PushPixel writes one "R G B" line
func (p *PPMExporter) PushPixel(r, g, b uint8) error {
	if p.pushed >= p.width*p.height {
		return fmt.Errorf("%w: more than %d pixels", ErrPixelCount, p.width*p.height)
	}
	if _, err := fmt.Fprintf(p.w, "%d %d %d\n", r, g, b); err != nil {
		return fmt.Errorf("failed to write pixel %d: %w", p.pushed, err)
	}
	p.pushed++
	return nil
}

// Finish flushes buffered output
func (p *PPMExporter) Finish() error {
	if p.pushed != p.width*p.height {
		return fmt.Errorf("%w: got %d of %d pixels", ErrPixelCount, p.pushed, p.width*p.height)
	}
	if err := p.w.Flush(); err != nil {
		return fmt.Errorf("failed to flush PPM output: %w", err)
	}
	return nil
}
