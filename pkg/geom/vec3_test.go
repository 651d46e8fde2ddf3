// pkg/geom/vec3_test.go
package geom

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestLengthAndNormalized(t *testing.T) {
	v := Vec3{X: 3, Y: 0, Z: 4}
	if got := v.Length(); got != 5 {
		t.Errorf("Length = %v, want 5", got)
	}
	n := v.Normalized()
	if !almostEqual(n.Length(), 1) {
		t.Errorf("Normalized length = %v, want 1", n.Length())
	}
	if zero := (Vec3{}).Normalized(); zero != (Vec3{}) {
		t.Errorf("Normalizing the zero vector = %+v, want zero", zero)
	}
}

func TestDistanceXZIgnoresHeight(t *testing.T) {
	a := Vec3{X: 0, Y: 10, Z: 0}
	b := Vec3{X: 3, Y: -5, Z: 4}
	if got := DistanceXZ(a, b); got != 5 {
		t.Errorf("DistanceXZ = %v, want 5", got)
	}
	if got := Distance(a, b); got <= 5 {
		t.Errorf("Full distance = %v, should exceed the ground distance", got)
	}
}

func TestDistanceToSegment(t *testing.T) {
	a := Vec3{X: 0, Z: 0}
	b := Vec3{X: 10, Z: 0}

	tests := []struct {
		name string
		p    Vec3
		want float64
	}{
		{"beside the middle", Vec3{X: 5, Z: 3}, 3},
		{"past the end clamps to b", Vec3{X: 13, Z: 4}, 5},
		{"before the start clamps to a", Vec3{X: -3, Z: -4}, 5},
		{"on the segment", Vec3{X: 7, Z: 0}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DistanceToSegment(tt.p, a, b); !almostEqual(got, tt.want) {
				t.Errorf("DistanceToSegment(%+v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}

	// Degenerate segment falls back to point distance.
	if got := DistanceToSegment(Vec3{X: 3, Z: 4}, a, a); !almostEqual(got, 5) {
		t.Errorf("Degenerate segment distance = %v, want 5", got)
	}
}

func TestLerp(t *testing.T) {
	a := Vec3{X: 0, Z: 0}
	b := Vec3{X: 10, Z: -4}
	if got := Lerp(a, b, 0.5); got != (Vec3{X: 5, Z: -2}) {
		t.Errorf("Lerp midpoint = %+v, want {5 0 -2}", got)
	}
	if got := Lerp(a, b, 0); got != a {
		t.Errorf("Lerp(0) = %+v, want a", got)
	}
	if got := Lerp(a, b, 1); got != b {
		t.Errorf("Lerp(1) = %+v, want b", got)
	}
}
