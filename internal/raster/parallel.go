package raster

import (
	"sync"

	"sky-renderer/internal/camera"
)

// RenderParallel renders into a new FrameBuffer, spreading scan rows over a
// pool of workers. Every pixel depends only on its own (u, v), so workers
// write disjoint rows without coordination and the result is identical to
// a sequential Generate. workers <= 1 renders sequentially.
//
// onRow, if non-nil, is called once per finished row with the number of rows
// still outstanding (Height-1 down to 0). Calls are serialized.
func RenderParallel(vp camera.Viewport, width, height, workers int, onRow func(remaining int)) (*FrameBuffer, error) {
	if err := checkSize(width, height); err != nil {
		return nil, err
	}

	fb := NewFrameBuffer(width, height)

	if workers <= 1 {
		if err := Generate(vp, width, height, WithRowHook(fb.Writer(), onRow)); err != nil {
			return nil, err
		}
		return fb, nil
	}

	var (
		mu   sync.Mutex
		done int
	)
	finished := func() {
		if onRow == nil {
			return
		}
		mu.Lock()
		done++
		onRow(height - done)
		mu.Unlock()
	}

	// Worker pool
	rowChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for row := range rowChan {
				y := height - 1 - row
				for col := 0; col < width; col++ {
					fb.Set(col, y, scanPixel(vp, col, row, width, height))
				}
				finished()
			}
		}()
	}

	// Send work in scan order
	for row := height - 1; row >= 0; row-- {
		rowChan <- row
	}
	close(rowChan)

	wg.Wait()

	return fb, nil
}
