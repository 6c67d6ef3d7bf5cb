package embedview

import (
	"reflect"
	"testing"
)

func TestPointSetEmpty(t *testing.T) {
	ps := NewPointSet(nil)
	if ps.Len() != 0 {
		t.Fatalf("Len = %d, want 0", ps.Len())
	}
	if ps.Dims() != 0 {
		t.Errorf("Dims = %d, want 0", ps.Dims())
	}
	if got := ps.DistinctClusters(); got != nil {
		t.Errorf("DistinctClusters = %v, want nil", got)
	}
	if got := ps.MaxAbs(0); got != 0 {
		t.Errorf("MaxAbs = %v, want 0", got)
	}
}

func TestPointSetMaxAbs(t *testing.T) {
	ps := NewPointSet([]Sample{
		{Value: []float64{1, -20}},
		{Value: []float64{-3, 5}},
		{Value: []float64{2, 10}},
	})
	tests := []struct {
		axis int
		want float64
	}{
		{0, 3},
		{1, 20},
		{2, 0},  // out of range
		{-1, 0}, // out of range
	}
	for _, tt := range tests {
		if got := ps.MaxAbs(tt.axis); got != tt.want {
			t.Errorf("MaxAbs(%d) = %v, want %v", tt.axis, got, tt.want)
		}
	}
}

func TestDistinctClusters(t *testing.T) {
	// Ids need not be contiguous or zero-based; rank comes from
	// sorted order.
	ps := NewPointSet([]Sample{
		{Value: []float64{0}, Cluster: 42},
		{Value: []float64{0}, Cluster: 3},
		{Value: []float64{0}, Cluster: 42},
		{Value: []float64{0}, Cluster: 7},
	})
	want := []int{3, 7, 42}
	if got := ps.DistinctClusters(); !reflect.DeepEqual(got, want) {
		t.Errorf("DistinctClusters = %v, want %v", got, want)
	}
}

func TestAxisScale(t *testing.T) {
	tests := []struct {
		name       string
		halfExtent float64
		maxAbs     float64
		want       float64
	}{
		{"normal", 400, 10, 38},
		{"unit max", 300, 1, 285},
		{"zero max is neutral", 400, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := axisScale(tt.halfExtent, tt.maxAbs); got != tt.want {
				t.Errorf("axisScale(%v, %v) = %v, want %v", tt.halfExtent, tt.maxAbs, got, tt.want)
			}
		})
	}
}
