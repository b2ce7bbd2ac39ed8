// Package ppm writes plain-text (P3) pixel-map images.
package ppm

import (
	"bufio"
	"fmt"
	"io"

	"sky-renderer/internal/raster"
)

// Writer is a raster.Sink producing P3 output. Each pixel is written as
// "r g b" followed by a tab; each row ends with a blank line.
// Call Flush once the image is complete.
type Writer struct {
	w *bufio.Writer
}

// NewWriter writes the P3 header for a width×height image and returns a
// Writer ready for pixels.
func NewWriter(w io.Writer, width, height int) (*Writer, error) {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n%d\n", width, height, raster.MaxChannel); err != nil {
		return nil, fmt.Errorf("ppm: write header: %w", err)
	}
	return &Writer{w: bw}, nil
}

func (pw *Writer) WritePixel(p raster.Pixel) error {
	if _, err := fmt.Fprintf(pw.w, "%d %d %d\t", p.R, p.G, p.B); err != nil {
		return fmt.Errorf("ppm: write pixel: %w", err)
	}
	return nil
}

func (pw *Writer) EndRow(int) error {
	if _, err := pw.w.WriteString("\n\n"); err != nil {
		return fmt.Errorf("ppm: end row: %w", err)
	}
	return nil
}

// Flush writes any buffered data to the underlying writer.
func (pw *Writer) Flush() error {
	if err := pw.w.Flush(); err != nil {
		return fmt.Errorf("ppm: flush: %w", err)
	}
	return nil
}

// Encode writes a finished frame buffer as P3.
func Encode(w io.Writer, fb *raster.FrameBuffer) error {
	pw, err := NewWriter(w, fb.Width, fb.Height)
	if err != nil {
		return err
	}
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			if err := pw.WritePixel(fb.At(x, y)); err != nil {
				return err
			}
		}
		if err := pw.EndRow(fb.Height - 1 - y); err != nil {
			return err
		}
	}
	return pw.Flush()
}
