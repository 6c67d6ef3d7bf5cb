package embedview

import "testing"

func TestPointOps(t *testing.T) {
	tests := []struct {
		name string
		got  Point
		want Point
	}{
		{"add", Pt(1, 2).Add(Pt(3, 4)), Pt(4, 6)},
		{"sub", Pt(1, 2).Sub(Pt(3, 4)), Pt(-2, -2)},
		{"mul", Pt(1, -2).Mul(3), Pt(3, -6)},
		{"div", Pt(4, 6).Div(2), Pt(2, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %+v, want %+v", tt.got, tt.want)
			}
		})
	}
}

func TestPointDistance(t *testing.T) {
	a, b := Pt(0, 0), Pt(3, 4)
	if d := a.Distance(b); d != 5 {
		t.Errorf("Distance = %v, want 5", d)
	}
	if d := a.DistanceSquared(b); d != 25 {
		t.Errorf("DistanceSquared = %v, want 25", d)
	}
}
