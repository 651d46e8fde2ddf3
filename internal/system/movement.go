// internal/system/movement.go
package system

import (
	"elemental-td/internal/config"
	"elemental-td/internal/entity"
	"elemental-td/internal/event"
	"elemental-td/internal/types"
	"elemental-td/pkg/geom"
)

// MovementSystem walks enemies along their waypoint paths. Position only
// ever advances forward; reaching the final waypoint flips the enemy into
// its terminal ReachedEnd state and notifies listeners exactly once.
type MovementSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewMovementSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

func (s *MovementSystem) Update(deltaTime float64) {
	for id, enemy := range s.ecs.Enemies {
		if enemy.ReachedEnd {
			continue
		}
		pos, hasPos := s.ecs.Positions[id]
		vel, hasVel := s.ecs.Velocities[id]
		path, hasPath := s.ecs.Paths[id]
		if !hasPos || !hasVel || !hasPath {
			continue
		}
		if path.CurrentIndex >= len(path.Waypoints) {
			continue
		}

		speed := EffectiveSpeed(s.ecs, id, vel.Speed)
		remaining := speed * deltaTime

		// An enemy may cross several waypoints in one tick at high speed.
		for remaining >= 0 && path.CurrentIndex < len(path.Waypoints) {
			target := path.Waypoints[path.CurrentIndex]
			toTarget := target.Sub(pos.Vec())
			dist := toTarget.Length()

			if dist <= config.WaypointSnapDistance || dist <= remaining {
				pos.Set(target)
				remaining -= dist
				path.CurrentIndex++
				if path.CurrentIndex >= len(path.Waypoints) {
					enemy.ReachedEnd = true
					s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyReachedEnd, Data: id})
				}
				continue
			}

			step := toTarget.Normalized().Scale(remaining)
			pos.Set(pos.Vec().Add(step))
			break
		}
	}
}

// VelocityVector is the direction the enemy is walking scaled by its
// effective speed. Projectiles use it for lead prediction; a finished or
// pathless enemy yields the zero vector.
func VelocityVector(ecs *entity.ECS, id types.EntityID) geom.Vec3 {
	pos, hasPos := ecs.Positions[id]
	vel, hasVel := ecs.Velocities[id]
	path, hasPath := ecs.Paths[id]
	if !hasPos || !hasVel || !hasPath {
		return geom.Vec3{}
	}
	if path.CurrentIndex >= len(path.Waypoints) {
		return geom.Vec3{}
	}
	dir := path.Waypoints[path.CurrentIndex].Sub(pos.Vec()).Normalized()
	return dir.Scale(EffectiveSpeed(ecs, id, vel.Speed))
}
