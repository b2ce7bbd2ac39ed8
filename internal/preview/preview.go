// Package preview draws a rendered image in a truecolor terminal.
package preview

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"sky-renderer/internal/raster"
)

// upperHalf fills the top half of a cell; its foreground paints the upper
// pixel and the background the lower one, so each cell shows two rows.
const upperHalf = '▀'

var black = tcell.NewRGBColor(0, 0, 0)

// Fit returns the largest image size, in pixels, that fits a cols×rows cell
// grid at two pixels per cell row while keeping the aspect ratio. Images are
// never enlarged.
func Fit(width, height, cols, rows int) (int, int) {
	f := 1.0
	if sx := float64(cols) / float64(width); sx < f {
		f = sx
	}
	if sy := float64(rows*2) / float64(height); sy < f {
		f = sy
	}
	w := max(1, int(float64(width)*f))
	h := max(1, int(float64(height)*f))
	return w, h
}

func pixelColor(p raster.Pixel) tcell.Color {
	return tcell.NewRGBColor(int32(p.R), int32(p.G), int32(p.B))
}

// Draw clears s and paints fb into its top-left corner, shrinking it by
// nearest-neighbour sampling to fit. It does not call Show.
func Draw(s tcell.Screen, fb *raster.FrameBuffer) {
	s.Clear()

	cols, rows := s.Size()
	if cols < 1 || rows < 1 {
		return
	}
	w, h := Fit(fb.Width, fb.Height, cols, rows)

	sample := func(x, y int) raster.Pixel {
		return fb.At(x*fb.Width/w, y*fb.Height/h)
	}

	for cy := 0; cy*2 < h; cy++ {
		for cx := 0; cx < w; cx++ {
			fg := pixelColor(sample(cx, cy*2))
			bg := black
			if cy*2+1 < h {
				bg = pixelColor(sample(cx, cy*2+1))
			}
			style := tcell.StyleDefault.Foreground(fg).Background(bg)
			s.SetContent(cx, cy, upperHalf, nil, style)
		}
	}
}

// Show takes over the terminal, draws fb and waits for a key press or for
// the screen to close. Resizes redraw.
func Show(fb *raster.FrameBuffer) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("preview: open screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("preview: init screen: %w", err)
	}
	defer s.Fini()

	return run(s, fb)
}

func run(s tcell.Screen, fb *raster.FrameBuffer) error {
	Draw(s, fb)
	s.Show()

	for {
		switch s.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			s.Sync()
			Draw(s, fb)
			s.Show()
		case *tcell.EventKey:
			return nil
		}
	}
}
