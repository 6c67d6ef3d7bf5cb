package embedview

import (
	"math"
	"testing"
)

func TestMatrixApply(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		p    Point
		want Point
	}{
		{"identity", Identity(), Pt(3, 4), Pt(3, 4)},
		{"translate", Translate(10, -5), Pt(1, 2), Pt(11, -3)},
		{"scale", Scale(2, 3), Pt(1, 2), Pt(2, 6)},
		{"scale then translate", Translate(10, 20).Multiply(Scale(2, 2)), Pt(1, 1), Pt(12, 22)},
		{"y flip", Scale(1, -1), Pt(0, 5), Pt(0, -5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.Apply(tt.p)
			if !approxPoint(got, tt.want, 1e-9) {
				t.Errorf("Apply(%+v) = %+v, want %+v", tt.p, got, tt.want)
			}
		})
	}
}

func TestMatrixInvert(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
	}{
		{"identity", Identity()},
		{"translate", Translate(7, -3)},
		{"scale", Scale(2, 0.5)},
		{"view-like", Translate(400, 300).Multiply(Scale(2, -2))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Pt(12.5, -8)
			back := tt.m.Invert().Apply(tt.m.Apply(p))
			if !approxPoint(back, p, 1e-9) {
				t.Errorf("Invert round trip = %+v, want %+v", back, p)
			}
		})
	}
}

func TestMatrixInvertSingular(t *testing.T) {
	// Singular matrices fall back to identity instead of erroring.
	singular := Scale(0, 0)
	if got := singular.Invert(); !got.IsIdentity() {
		t.Errorf("Invert(singular) = %+v, want identity", got)
	}
}

func approxPoint(a, b Point, eps float64) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}
