package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"sky-renderer/internal/camera"
	"sky-renderer/internal/config"
	"sky-renderer/internal/encode"
	"sky-renderer/internal/ppm"
	"sky-renderer/internal/preview"
	"sky-renderer/internal/progress"
	"sky-renderer/internal/raster"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	width := flag.Int("width", 0, "Image width in pixels (default: 200)")
	height := flag.Int("height", 0, "Image height in pixels (default: 100)")
	output := flag.String("output", "", "Output file, or - for stdout (default: out.ppm)")
	format := flag.String("format", "", "ppm, webp, tga or bmp (default: from output extension)")
	workers := flag.Int("workers", 0, "Render rows on this many goroutines (default: 1)")
	scale := flag.Int("scale", 0, "Enlarge each pixel to an NxN block, non-ppm only (default: 1)")
	quiet := flag.Bool("quiet", false, "Suppress per-row progress")
	showPreview := flag.Bool("preview", false, "Show the image in the terminal after rendering")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	if err := cfg.Resolve(config.Flags{
		Output:  *output,
		Format:  *format,
		Width:   *width,
		Height:  *height,
		Workers: *workers,
		Scale:   *scale,
		Quiet:   *quiet,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Keep stdout clean when the image itself goes there
	toStdout := cfg.Output == "-"
	var info io.Writer = os.Stdout
	if toStdout {
		info = os.Stderr
	}

	var rep *progress.Reporter
	if cfg.Quiet {
		rep = progress.New(nil)
	} else {
		rep = progress.New(os.Stderr)
	}

	vp := cfg.CameraViewport()
	outFormat := cfg.OutputFormat()

	fmt.Fprintf(info, "Sky gradient renderer → %s\n", outFormat)
	fmt.Fprintf(info, "Size: %dx%d, Workers: %d\n", cfg.Width, cfg.Height, cfg.Workers)
	fmt.Fprintf(info, "Output: %s\n", cfg.Output)
	fmt.Fprintln(info, "------------------------------------------------------------")

	var out io.Writer = os.Stdout
	if !toStdout {
		if dir := filepath.Dir(cfg.Output); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
				os.Exit(1)
			}
		}
		f, err := os.Create(cfg.Output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
			os.Exit(1)
		}
		out = f
	}

	start := time.Now()

	var fb *raster.FrameBuffer
	var err error
	if outFormat == encode.PPM && cfg.Workers <= 1 && !*showPreview {
		err = streamPPM(out, vp, cfg.Width, cfg.Height, rep)
	} else {
		fb, err = raster.RenderParallel(vp, cfg.Width, cfg.Height, cfg.Workers, rep.Row)
		if err == nil {
			err = encode.Write(out, fb, outFormat, encode.Options{Scale: cfg.Scale})
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering: %v\n", err)
		os.Exit(1)
	}

	if f, ok := out.(*os.File); ok && !toStdout {
		if err := f.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			os.Exit(1)
		}
	}

	elapsed := time.Since(start)
	fmt.Fprintln(info, "------------------------------------------------------------")
	fmt.Fprintf(info, "Done in %.1fs\n", elapsed.Seconds())
	fmt.Fprintf(info, "Rows: %d/%d\n", rep.Rows(), cfg.Height)

	if *showPreview && fb != nil {
		if err := preview.Show(fb); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: preview failed: %v\n", err)
		}
	}
}

// streamPPM writes pixels straight to out as they are computed.
func streamPPM(out io.Writer, vp camera.Viewport, width, height int, rep *progress.Reporter) error {
	pw, err := ppm.NewWriter(out, width, height)
	if err != nil {
		return err
	}
	sink := raster.WithRowHook(pw, rep.Row)
	if err := raster.Generate(vp, width, height, sink); err != nil {
		return err
	}
	return pw.Flush()
}
