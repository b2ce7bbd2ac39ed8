package config

import (
	"encoding/json"
	"fmt"
	"os"

	"sky-renderer/internal/camera"
	"sky-renderer/internal/encode"
)

// Config holds the output target and render settings.
type Config struct {
	// Output
	Output string `json:"output"`
	Format string `json:"format"`
	Scale  int    `json:"scale"`

	// Render settings
	Width   int  `json:"width"`
	Height  int  `json:"height"`
	Workers int  `json:"workers"`
	Quiet   bool `json:"quiet"`

	// Camera. Viewport replaces the default plane when set; AspectViewport
	// instead derives one from Width/Height.
	Viewport       *camera.Viewport `json:"viewport,omitempty"`
	AspectViewport bool             `json:"aspect_viewport"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve applies CLI overrides and fills any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) error {
	// CLI flags override config file
	if flags.Output != "" {
		c.Output = flags.Output
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Scale > 0 {
		c.Scale = flags.Scale
	}
	if flags.Quiet {
		c.Quiet = true
	}

	// Defaults
	if c.Width <= 0 {
		c.Width = 200
	}
	if c.Height <= 0 {
		c.Height = 100
	}
	if c.Output == "" {
		c.Output = "out.ppm"
	}
	if c.Workers <= 0 {
		c.Workers = 1
	}
	if c.Scale <= 0 {
		c.Scale = 1
	}

	if c.Format == "" {
		f, err := encode.FormatFromPath(c.Output)
		if err != nil {
			return fmt.Errorf("config: output %s: %w", c.Output, err)
		}
		c.Format = string(f)
	} else if _, err := encode.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	if c.Viewport != nil {
		if err := c.Viewport.Validate(); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}

	return nil
}

// OutputFormat returns the resolved output format.
func (c *Config) OutputFormat() encode.Format {
	f, _ := encode.ParseFormat(c.Format)
	return f
}

// CameraViewport returns the viewport to render through: the configured one,
// one matching the image aspect ratio, or the default plane.
func (c *Config) CameraViewport() camera.Viewport {
	switch {
	case c.Viewport != nil:
		return *c.Viewport
	case c.AspectViewport:
		return camera.ViewportForAspect(float64(c.Width)/float64(c.Height), 2, 1)
	default:
		return camera.DefaultViewport()
	}
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Output  string
	Format  string
	Width   int
	Height  int
	Workers int
	Scale   int
	Quiet   bool
}
