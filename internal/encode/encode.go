// Package encode writes rendered frame buffers as image files.
package encode

import (
	"fmt"
	"image"
	"io"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"

	"sky-renderer/internal/ppm"
	"sky-renderer/internal/raster"
)

// Format names an output encoding.
type Format string

const (
	PPM  Format = "ppm"
	WebP Format = "webp"
	TGA  Format = "tga"
	BMP  Format = "bmp"
)

// ParseFormat accepts a format name in any case, with or without a leading dot.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.TrimPrefix(strings.ToLower(s), "."))
	switch f {
	case PPM, WebP, TGA, BMP:
		return f, nil
	}
	return "", fmt.Errorf("encode: unknown format %q", s)
}

// FormatFromPath infers the format from a file extension. Paths without an
// extension (including "-" for stdout) default to PPM.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return PPM, nil
	}
	return ParseFormat(ext)
}

// Options controls post-render adjustments.
type Options struct {
	// Scale enlarges each pixel to a Scale×Scale block. 0 and 1 mean no change.
	Scale int
}

// Resize enlarges img by an integer factor with nearest-neighbour sampling,
// so every source pixel stays a solid block.
func Resize(img *image.NRGBA, scale int) *image.NRGBA {
	if scale <= 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// Write encodes fb to w in the given format.
func Write(w io.Writer, fb *raster.FrameBuffer, format Format, opts Options) error {
	if format == PPM {
		if opts.Scale > 1 {
			return fmt.Errorf("encode: scale %d not supported for ppm", opts.Scale)
		}
		return ppm.Encode(w, fb)
	}

	img := Resize(fb.ToNRGBA(), opts.Scale)

	var err error
	switch format {
	case WebP:
		err = nativewebp.Encode(w, img, nil)
	case TGA:
		err = tga.Encode(w, img)
	case BMP:
		err = bmp.Encode(w, img)
	default:
		return fmt.Errorf("encode: unknown format %q", format)
	}
	if err != nil {
		return fmt.Errorf("encode: %s: %w", format, err)
	}
	return nil
}
