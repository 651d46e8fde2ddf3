// pkg/grid/level.go
package grid

import "elemental-td/pkg/geom"

// DefaultPath is the fixed lane enemies walk on the standard level:
// an S-curve across the ground plane, entry on the left, exit on the right.
func DefaultPath() []geom.Vec3 {
	return []geom.Vec3{
		{X: -14, Y: 0, Z: -10},
		{X: -6, Y: 0, Z: -10},
		{X: -6, Y: 0, Z: 0},
		{X: 6, Y: 0, Z: 0},
		{X: 6, Y: 0, Z: 10},
		{X: 14, Y: 0, Z: 10},
	}
}

// DefaultLevel builds the standard 28x22 build grid around DefaultPath.
func DefaultLevel() *Grid {
	return New(28, 22, 1.0, DefaultPath(), 0.75)
}
