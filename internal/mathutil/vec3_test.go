package mathutil

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestVec3Examples(t *testing.T) {
	tests := []struct {
		name string
		got  Vec3
		want Vec3
	}{
		{"add", V3(1, 3, -4).Add(V3(2, 2, -2)), V3(3, 5, -6)},
		{"sub", V3(3, 5, -6).Sub(V3(2, 2, -2)), V3(1, 3, -4)},
		{"scale", V3(1, 2, 3).Scale(4), V3(4, 8, 12)},
		{"mul", V3(1, 2, 3).Mul(V3(2, 3, 4)), V3(2, 6, 12)},
		{"div", V3(1, 2, 3).Div(2), V3(0.5, 1, 1.5)},
		{"cross", V3(1, 2, 3).Cross(V3(3, 2, 1)), V3(-4, 8, -4)},
		{"neg", V3(1, -2, 0).Neg(), V3(-1, 2, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestDotAndLen(t *testing.T) {
	if d := V3(1, 2, 3).Dot(V3(3, 2, 1)); d != 10 {
		t.Errorf("dot = %v, want 10", d)
	}
	if l := V3(1, 2, 3).Len(); math.Abs(l-3.7417) > 5e-5 {
		t.Errorf("len = %.6f, want 3.7417", l)
	}
}

var samples = []Vec3{
	{1, 3, -4},
	{2, 2, -2},
	{0.5, -0.25, 8},
	{-3, 0, 1e-3},
	{1e6, -2e5, 3},
}

func TestVec3Properties(t *testing.T) {
	for _, a := range samples {
		for _, b := range samples {
			if a.Add(b) != b.Add(a) {
				t.Errorf("add not commutative for %v, %v", a, b)
			}
			if a.Dot(b) != b.Dot(a) {
				t.Errorf("dot not commutative for %v, %v", a, b)
			}
			if !NearlyEqual(a.Cross(b), b.Cross(a).Neg(), eps) {
				t.Errorf("cross not anti-commutative for %v, %v", a, b)
			}
			for _, s := range []float64{0, -1, 0.3, 7} {
				lhs := a.Add(b).Scale(s)
				rhs := a.Scale(s).Add(b.Scale(s))
				if !NearlyEqual(lhs, rhs, 1e-6) {
					t.Errorf("scale does not distribute: %v vs %v", lhs, rhs)
				}
			}
		}
	}
}

func TestUnitLength(t *testing.T) {
	for _, v := range samples {
		if l := v.Unit().Len(); math.Abs(l-1) > eps {
			t.Errorf("|unit(%v)| = %v", v, l)
		}
	}
}

func TestZeroDivisionFollowsIEEE(t *testing.T) {
	u := Vec3{}.Unit()
	for i, c := range u {
		if !math.IsNaN(c) {
			t.Errorf("component %d = %v, want NaN", i, c)
		}
	}

	d := V3(1, -1, 0).Div(0)
	if !math.IsInf(d[0], 1) || !math.IsInf(d[1], -1) || !math.IsNaN(d[2]) {
		t.Errorf("div by zero = %v, want (+Inf, -Inf, NaN)", d)
	}
}

func TestColorChannels(t *testing.T) {
	c := Color{0.1, 0.2, 0.3}
	if c.R() != c.X() || c.G() != c.Y() || c.B() != c.Z() {
		t.Fatalf("channel accessors disagree with x/y/z")
	}
}

func TestLerpEndpoints(t *testing.T) {
	a, b := V3(1, 1, 1), V3(0.5, 0.7, 1)
	if Lerp(a, b, 0) != a {
		t.Errorf("lerp t=0 = %v", Lerp(a, b, 0))
	}
	if Lerp(a, b, 1) != b {
		t.Errorf("lerp t=1 = %v", Lerp(a, b, 1))
	}
}
