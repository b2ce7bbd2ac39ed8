package raster

import (
	"fmt"
	"image"
)

// FrameBuffer holds a finished image as a flat slice for cache locality.
// Row 0 is the top of the image, i.e. scan row Height-1.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8 // RGBA interleaved, len = W*H*4, alpha always 255
}

// NewFrameBuffer allocates an opaque black buffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	n := w * h
	color := make([]uint8, n*4)
	for i := 3; i < len(color); i += 4 {
		color[i] = 255
	}
	return &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  color,
	}
}

// Set stores p at image coordinates (x, y), clamping channels to [0,255].
func (fb *FrameBuffer) Set(x, y int, p Pixel) {
	i := (y*fb.Width + x) * 4
	fb.Color[i] = clamp255(p.R)
	fb.Color[i+1] = clamp255(p.G)
	fb.Color[i+2] = clamp255(p.B)
}

// At returns the pixel at image coordinates (x, y).
func (fb *FrameBuffer) At(x, y int) Pixel {
	i := (y*fb.Width + x) * 4
	return Pixel{int(fb.Color[i]), int(fb.Color[i+1]), int(fb.Color[i+2])}
}

// ToNRGBA copies the buffer into an image.
func (fb *FrameBuffer) ToNRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	copy(img.Pix, fb.Color)
	return img
}

// Writer returns a Sink that fills fb in scan order.
func (fb *FrameBuffer) Writer() Sink {
	return &frameWriter{fb: fb}
}

type frameWriter struct {
	fb  *FrameBuffer
	pos int
}

func (w *frameWriter) WritePixel(p Pixel) error {
	if w.pos >= w.fb.Width*w.fb.Height {
		return fmt.Errorf("raster: frame buffer full (%dx%d)", w.fb.Width, w.fb.Height)
	}
	w.fb.Set(w.pos%w.fb.Width, w.pos/w.fb.Width, p)
	w.pos++
	return nil
}

func (w *frameWriter) EndRow(int) error {
	return nil
}

func clamp255(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
