// internal/component/movement.go
package component

import "elemental-td/pkg/geom"

// Position is the world-space location of an entity.
type Position struct {
	X, Y, Z float64
}

func (p Position) Vec() geom.Vec3 {
	return geom.Vec3{X: p.X, Y: p.Y, Z: p.Z}
}

func (p *Position) Set(v geom.Vec3) {
	p.X, p.Y, p.Z = v.X, v.Y, v.Z
}

// Velocity is the base movement speed in world units per second. Status effects
// modify the effective speed, never this value.
type Velocity struct {
	Speed float64
}

// Path is the ordered waypoint list an enemy walks. CurrentIndex points at the
// waypoint being approached; it only ever advances.
type Path struct {
	Waypoints    []geom.Vec3
	CurrentIndex int
}
