// internal/system/movement_test.go
package system

import (
	"testing"

	"elemental-td/internal/component"
	"elemental-td/internal/entity"
	"elemental-td/internal/event"
	"elemental-td/internal/types"
	"elemental-td/pkg/geom"
)

// recorder collects dispatched events for assertions.
type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func spawnTestEnemy(ecs *entity.ECS, waypoints []geom.Vec3, speed float64, health int) types.EntityID {
	id := ecs.NewEntity()
	start := waypoints[0]
	ecs.Positions[id] = &component.Position{X: start.X, Y: start.Y, Z: start.Z}
	ecs.Velocities[id] = &component.Velocity{Speed: speed}
	ecs.Paths[id] = &component.Path{Waypoints: waypoints, CurrentIndex: 1}
	ecs.Healths[id] = &component.Health{Value: health, Max: health}
	ecs.Enemies[id] = &component.Enemy{DefID: "ENEMY_GRUNT", Wave: 1, Bounty: 5}
	return id
}

func TestEnemyWalksWaypointsAndReachesEndOnce(t *testing.T) {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	rec := &recorder{}
	dispatcher.Subscribe(event.EnemyReachedEnd, rec)
	ms := NewMovementSystem(ecs, dispatcher)

	waypoints := []geom.Vec3{
		{X: 0, Z: 0},
		{X: 1, Z: 0},
		{X: 1, Z: 1},
	}
	id := spawnTestEnemy(ecs, waypoints, 1.0, 100)

	lastIndex := ecs.Paths[id].CurrentIndex
	for i := 0; i < 40; i++ {
		ms.Update(0.1)
		if idx := ecs.Paths[id].CurrentIndex; idx < lastIndex {
			t.Fatalf("Waypoint index went backwards: %d -> %d", lastIndex, idx)
		} else {
			lastIndex = idx
		}
	}

	if !ecs.Enemies[id].ReachedEnd {
		t.Fatal("Enemy never reached the end of a 2-unit path in 4 seconds at speed 1")
	}
	if got := rec.count(event.EnemyReachedEnd); got != 1 {
		t.Errorf("EnemyReachedEnd dispatched %d times, want exactly 1", got)
	}

	// Terminal state: further updates change nothing.
	endPos := ecs.Positions[id].Vec()
	ms.Update(0.5)
	if ecs.Positions[id].Vec() != endPos {
		t.Error("Enemy moved after reaching the end")
	}
	if got := rec.count(event.EnemyReachedEnd); got != 1 {
		t.Errorf("ReachedEnd re-dispatched after terminal state: %d events", got)
	}
}

func TestWaypointSnapDistance(t *testing.T) {
	ecs := entity.NewECS()
	ms := NewMovementSystem(ecs, event.NewDispatcher())

	waypoints := []geom.Vec3{
		{X: 0, Z: 0},
		{X: 1, Z: 0},
		{X: 5, Z: 0},
	}
	id := spawnTestEnemy(ecs, waypoints, 1.0, 100)
	// Park the enemy just inside snap distance of the next waypoint.
	ecs.Positions[id].X = 0.95

	ms.Update(0.001)
	pos := ecs.Positions[id]
	if pos.X != 1.0 || pos.Z != 0.0 {
		t.Errorf("Expected snap onto waypoint (1,0), got (%v,%v)", pos.X, pos.Z)
	}
	if ecs.Paths[id].CurrentIndex != 2 {
		t.Errorf("Expected waypoint index 2 after snap, got %d", ecs.Paths[id].CurrentIndex)
	}
}

func TestRootAndSlowAffectMovement(t *testing.T) {
	ecs := entity.NewECS()
	ms := NewMovementSystem(ecs, event.NewDispatcher())

	waypoints := []geom.Vec3{{X: 0, Z: 0}, {X: 10, Z: 0}}
	id := spawnTestEnemy(ecs, waypoints, 2.0, 100)

	ecs.SlowEffects[id] = &component.SlowEffect{Timer: 5, Factor: 0.5}
	ms.Update(1.0)
	if got := ecs.Positions[id].X; got != 1.0 {
		t.Errorf("Slowed enemy moved to x=%v, want 1.0", got)
	}

	ecs.RootEffects[id] = &component.RootEffect{Timer: 5}
	ms.Update(1.0)
	if got := ecs.Positions[id].X; got != 1.0 {
		t.Errorf("Rooted enemy moved to x=%v, want 1.0", got)
	}
}

func TestVelocityVectorPointsAlongPath(t *testing.T) {
	ecs := entity.NewECS()
	waypoints := []geom.Vec3{{X: 0, Z: 0}, {X: 10, Z: 0}}
	id := spawnTestEnemy(ecs, waypoints, 2.0, 100)

	vel := VelocityVector(ecs, id)
	if vel.X != 2.0 || vel.Z != 0 {
		t.Errorf("Velocity vector = %+v, want {2 0 0}", vel)
	}

	// A finished path yields no velocity.
	ecs.Paths[id].CurrentIndex = len(waypoints)
	if vel := VelocityVector(ecs, id); vel.Length() != 0 {
		t.Errorf("Expected zero velocity past the last waypoint, got %+v", vel)
	}
}
