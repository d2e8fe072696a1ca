package lenslab

import (
	"math"
	"testing"
)

func TestVec2_Add(t *testing.T) {
	tests := []struct {
		name   string
		v, w   Vec2
		expect Vec2
	}{
		{"zero+zero", V2(0, 0), V2(0, 0), V2(0, 0)},
		{"positive", V2(1, 2), V2(3, 4), V2(4, 6)},
		{"negative", V2(-1, -2), V2(-3, -4), V2(-4, -6)},
		{"mixed", V2(1, -2), V2(-3, 4), V2(-2, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.v.Add(tt.w)
			if !result.Approx(tt.expect, 1e-10) {
				t.Errorf("%v.Add(%v) = %v, want %v", tt.v, tt.w, result, tt.expect)
			}
		})
	}
}

func TestVec2_SubMul(t *testing.T) {
	if got := V2(5, 7).Sub(V2(2, 3)); !got.Approx(V2(3, 4), 1e-10) {
		t.Errorf("Sub = %v, want (3, 4)", got)
	}
	if got := V2(1, 2).Mul(-2); !got.Approx(V2(-2, -4), 1e-10) {
		t.Errorf("Mul = %v, want (-2, -4)", got)
	}
	if got := V2(4, 6).Div(2); !got.Approx(V2(2, 3), 1e-10) {
		t.Errorf("Div = %v, want (2, 3)", got)
	}
}

func TestVec2_Dot(t *testing.T) {
	tests := []struct {
		name   string
		v, w   Vec2
		expect float64
	}{
		{"orthogonal", V2(1, 0), V2(0, 1), 0},
		{"parallel", V2(1, 0), V2(2, 0), 2},
		{"same", V2(3, 4), V2(3, 4), 25},
		{"opposite", V2(1, 0), V2(-1, 0), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.v.Dot(tt.w)
			if math.Abs(result-tt.expect) > 1e-10 {
				t.Errorf("%v.Dot(%v) = %v, want %v", tt.v, tt.w, result, tt.expect)
			}
		})
	}
}

func TestVec2_Cross(t *testing.T) {
	tests := []struct {
		name   string
		v, w   Vec2
		expect float64
	}{
		{"parallel", V2(1, 0), V2(2, 0), 0},
		{"orthogonal", V2(1, 0), V2(0, 1), 1},
		{"reverse orthogonal", V2(0, 1), V2(1, 0), -1},
		{"general", V2(3, 4), V2(5, 6), 3*6 - 4*5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.v.Cross(tt.w)
			if math.Abs(result-tt.expect) > 1e-10 {
				t.Errorf("%v.Cross(%v) = %v, want %v", tt.v, tt.w, result, tt.expect)
			}
		})
	}
}

func TestVec2_Normalize(t *testing.T) {
	tests := []struct {
		name   string
		v      Vec2
		expect Vec2
	}{
		{"zero", V2(0, 0), V2(0, 0)},
		{"unit x", V2(5, 0), V2(1, 0)},
		{"unit y", V2(0, 3), V2(0, 1)},
		{"diagonal", V2(3, 4), V2(0.6, 0.8)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.v.Normalize()
			if !result.Approx(tt.expect, 1e-10) {
				t.Errorf("%v.Normalize() = %v, want %v", tt.v, result, tt.expect)
			}
			if math.IsNaN(result.X) || math.IsNaN(result.Y) {
				t.Errorf("%v.Normalize() produced NaN", tt.v)
			}
		})
	}
}

func TestVec2_Perp(t *testing.T) {
	v := V2(3, 4)
	p := v.Perp()
	if math.Abs(v.Dot(p)) > 1e-10 {
		t.Errorf("Perp not perpendicular: %v . %v = %v", v, p, v.Dot(p))
	}
	if v.Cross(p) <= 0 {
		t.Errorf("Perp should rotate counter-clockwise, cross = %v", v.Cross(p))
	}
}

func TestVec2_AngleRoundTrip(t *testing.T) {
	for _, angle := range []float64{0, 0.3, math.Pi / 2, 2.5, -1.2, -math.Pi / 4} {
		v := FromAngle(angle)
		if math.Abs(v.Length()-1) > 1e-12 {
			t.Errorf("FromAngle(%v) length = %v, want 1", angle, v.Length())
		}
		if math.Abs(v.Angle()-angle) > 1e-12 {
			t.Errorf("FromAngle(%v).Angle() = %v", angle, v.Angle())
		}
	}
}

func TestVec2_Rotate(t *testing.T) {
	got := V2(1, 0).Rotate(math.Pi / 2)
	if !got.Approx(V2(0, 1), 1e-12) {
		t.Errorf("Rotate(pi/2) = %v, want (0, 1)", got)
	}
	got = V2(2, 1).RotateAround(V2(1, 1), math.Pi)
	if !got.Approx(V2(0, 1), 1e-12) {
		t.Errorf("RotateAround = %v, want (0, 1)", got)
	}
}

func TestVec2_LerpDistance(t *testing.T) {
	a, b := V2(1, 1), V2(4, 5)
	if got := a.Distance(b); math.Abs(got-5) > 1e-12 {
		t.Errorf("Distance = %v, want 5", got)
	}
	if got := a.Lerp(b, 0.5); !got.Approx(V2(2.5, 3), 1e-12) {
		t.Errorf("Lerp(0.5) = %v, want (2.5, 3)", got)
	}
	if got := b.Sub(a).LengthSq(); got != 25 {
		t.Errorf("LengthSq = %v, want 25", got)
	}
}
