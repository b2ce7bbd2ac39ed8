package raster

import (
	"fmt"
	"iter"
	"math"

	"sky-renderer/internal/camera"
	"sky-renderer/internal/mathutil"
)

// MaxChannel is the channel maximum declared to image writers.
const MaxChannel = 255

// quantizeScale sits just under 256 so that 1.0 lands on 255 instead of
// risking truncation to 254.
const quantizeScale = 255.999

// Pixel is one quantized RGB triple.
type Pixel struct {
	R, G, B int
}

// Sink receives pixels in scan order: rows from the top of the image down,
// columns left to right. EndRow follows every width pixels; remaining is
// the scan row just finished, so it counts down to 0.
type Sink interface {
	WritePixel(p Pixel) error
	EndRow(remaining int) error
}

// Quantize maps a linear channel to floor(c*255.999). No clamping.
func Quantize(c float64) int {
	return int(math.Floor(c * quantizeScale))
}

// QuantizeColor quantizes each channel of c.
func QuantizeColor(c mathutil.Color) Pixel {
	return Pixel{Quantize(c.R()), Quantize(c.G()), Quantize(c.B())}
}

// RenderPixel returns the linear color seen through (u, v) on the viewport.
func RenderPixel(vp camera.Viewport, u, v float64) mathutil.Color {
	return vp.RayFor(u, v).Color()
}

// scanPixel renders the pixel at scan indices (col, row) of a width×height image.
func scanPixel(vp camera.Viewport, col, row, width, height int) Pixel {
	u := float64(col) / float64(width)
	v := float64(row) / float64(height)
	return QuantizeColor(RenderPixel(vp, u, v))
}

func checkSize(width, height int) error {
	if width < 1 || height < 1 {
		return fmt.Errorf("raster: invalid size %dx%d", width, height)
	}
	return nil
}

// Generate renders width×height pixels into sink in scan order.
// The first sink error stops the render and is returned.
func Generate(vp camera.Viewport, width, height int, sink Sink) error {
	if err := checkSize(width, height); err != nil {
		return err
	}

	for row := height - 1; row >= 0; row-- {
		for col := 0; col < width; col++ {
			if err := sink.WritePixel(scanPixel(vp, col, row, width, height)); err != nil {
				return fmt.Errorf("raster: row %d: %w", row, err)
			}
		}
		if err := sink.EndRow(row); err != nil {
			return fmt.Errorf("raster: row %d: %w", row, err)
		}
	}
	return nil
}

// Pixels lazily yields the width*height pixels of the image in scan order.
// An invalid size yields nothing.
func Pixels(vp camera.Viewport, width, height int) iter.Seq[Pixel] {
	return func(yield func(Pixel) bool) {
		if checkSize(width, height) != nil {
			return
		}
		for row := height - 1; row >= 0; row-- {
			for col := 0; col < width; col++ {
				if !yield(scanPixel(vp, col, row, width, height)) {
					return
				}
			}
		}
	}
}

// Rows lazily yields (scan row, pixels) pairs from the top of the image
// down. Each slice is freshly allocated and owned by the caller.
func Rows(vp camera.Viewport, width, height int) iter.Seq2[int, []Pixel] {
	return func(yield func(int, []Pixel) bool) {
		if checkSize(width, height) != nil {
			return
		}
		for row := height - 1; row >= 0; row-- {
			line := make([]Pixel, width)
			for col := range line {
				line[col] = scanPixel(vp, col, row, width, height)
			}
			if !yield(row, line) {
				return
			}
		}
	}
}

type hookSink struct {
	Sink
	onRow func(remaining int)
}

func (h hookSink) EndRow(remaining int) error {
	if err := h.Sink.EndRow(remaining); err != nil {
		return err
	}
	h.onRow(remaining)
	return nil
}

// WithRowHook returns a Sink forwarding to s that also calls onRow after
// every completed row. A nil onRow returns s unchanged.
func WithRowHook(s Sink, onRow func(remaining int)) Sink {
	if onRow == nil {
		return s
	}
	return hookSink{Sink: s, onRow: onRow}
}
