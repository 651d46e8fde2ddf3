// pkg/geom/vec3.go
package geom

import "math"

// Vec3 is a point or direction in world space. Y is up; gameplay mostly
// happens on the XZ ground plane.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalized returns a unit vector in the direction of v,
// or the zero vector when v has no length.
func (v Vec3) Normalized() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

func Distance(a, b Vec3) float64 {
	return a.Sub(b).Length()
}

// DistanceXZ ignores height, which is what range checks on the ground plane want.
func DistanceXZ(a, b Vec3) float64 {
	dx := a.X - b.X
	dz := a.Z - b.Z
	return math.Sqrt(dx*dx + dz*dz)
}

// Lerp performs linear interpolation between two vectors.
func Lerp(a, b Vec3, t float64) Vec3 {
	return a.Add(b.Sub(a).Scale(t))
}

// DistanceToSegment returns the shortest distance from p to the segment ab,
// measured on the XZ plane.
func DistanceToSegment(p, a, b Vec3) float64 {
	ab := Vec3{X: b.X - a.X, Z: b.Z - a.Z}
	ap := Vec3{X: p.X - a.X, Z: p.Z - a.Z}
	lenSq := ab.X*ab.X + ab.Z*ab.Z
	if lenSq == 0 {
		return DistanceXZ(p, a)
	}
	t := (ap.X*ab.X + ap.Z*ab.Z) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	closest := Vec3{X: a.X + ab.X*t, Z: a.Z + ab.Z*t}
	return DistanceXZ(p, closest)
}
