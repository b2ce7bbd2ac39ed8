package ray

import (
	"math"
	"testing"

	"sky-renderer/internal/mathutil"
)

func TestColorBoundaries(t *testing.T) {
	tests := []struct {
		name string
		dir  mathutil.Vec3
		want mathutil.Color
	}{
		{"straight up", mathutil.V3(0, 1, 0), SkyBlue},
		{"straight down", mathutil.V3(0, -1, 0), White},
		{"scaled up", mathutil.V3(0, 4, 0), SkyBlue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(mathutil.Vec3{}, tt.dir).Color()
			if got != tt.want {
				t.Errorf("Color() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestColorHorizon(t *testing.T) {
	got := New(mathutil.Vec3{}, mathutil.V3(1, 0, -1)).Color()
	want := mathutil.Color{0.75, 0.85, 1.0}
	if !mathutil.NearlyEqual(got, want, 1e-12) {
		t.Errorf("Color() = %v, want %v", got, want)
	}
}

func TestColorIgnoresOrigin(t *testing.T) {
	dir := mathutil.V3(1, 2, 2)
	a := New(mathutil.Vec3{}, dir).Color()
	b := New(mathutil.V3(10, -3, 7), dir).Color()
	if a != b {
		t.Errorf("origin changed color: %v vs %v", a, b)
	}
}

func TestColorZeroDirection(t *testing.T) {
	c := New(mathutil.Vec3{}, mathutil.Vec3{}).Color()
	if !math.IsNaN(c.R()) {
		t.Errorf("zero direction gave %v, want NaN channels", c)
	}
}

func TestAt(t *testing.T) {
	r := New(mathutil.V3(1, 1, 1), mathutil.V3(0, 0, -2))
	if got := r.At(1.5); got != mathutil.V3(1, 1, -2) {
		t.Errorf("At(1.5) = %v", got)
	}
}

func TestHitSphere(t *testing.T) {
	center := mathutil.V3(0, 0, -1)
	tests := []struct {
		name string
		dir  mathutil.Vec3
		want bool
	}{
		{"toward center", mathutil.V3(0, 0, -1), true},
		{"grazing inside", mathutil.V3(0.4, 0, -1), true},
		{"wide miss", mathutil.V3(5, 0, -1), false},
		{"perpendicular", mathutil.V3(0, 1, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HitSphere(center, 0.5, New(mathutil.Vec3{}, tt.dir)); got != tt.want {
				t.Errorf("HitSphere = %v, want %v", got, tt.want)
			}
		})
	}
}
