// internal/system/area_attack_test.go
package system

import (
	"testing"

	"elemental-td/internal/defs"
	"elemental-td/internal/entity"
	"elemental-td/internal/event"
)

func TestPulseHitsEveryoneInRange(t *testing.T) {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	rec := &recorder{}
	dispatcher.Subscribe(event.EnemyKilled, rec)
	as := NewAreaAttackSystem(ecs, dispatcher)

	tower := spawnTestTower(ecs, 0, 0, 8, 0.5, 3.0, defs.ElementEarth)
	ecs.Combats[tower].Behavior = defs.BehaviorArea

	a := staticEnemy(ecs, 1.0, 0, 100)
	b := staticEnemy(ecs, 0, 2.5, 8) // dies to one pulse
	c := staticEnemy(ecs, 5.0, 0, 100)

	killed := as.Pulse(tower)
	if len(killed) != 1 || killed[0] != b {
		t.Errorf("Pulse killed %v, want exactly [%d]", killed, b)
	}
	if got := ecs.Healths[a].Value; got != 92 {
		t.Errorf("In-range enemy health = %d, want 92", got)
	}
	if got := ecs.Healths[c].Value; got != 100 {
		t.Errorf("Out-of-range enemy took damage: health %d", got)
	}
	if rec.count(event.EnemyKilled) != 1 {
		t.Errorf("EnemyKilled dispatched %d times, want 1", rec.count(event.EnemyKilled))
	}

	// FireRate 0.5 means a two-second gate.
	if got := ecs.Combats[tower].FireCooldown; got != 2.0 {
		t.Errorf("Cooldown after pulse = %v, want 2.0", got)
	}
}

func TestPulseHoldsFireOnEmptyField(t *testing.T) {
	ecs := entity.NewECS()
	as := NewAreaAttackSystem(ecs, event.NewDispatcher())

	tower := spawnTestTower(ecs, 0, 0, 8, 0.5, 3.0, defs.ElementEarth)
	ecs.Combats[tower].Behavior = defs.BehaviorArea
	staticEnemy(ecs, 10, 0, 100)

	if killed := as.Pulse(tower); killed != nil {
		t.Errorf("Empty pulse returned %v", killed)
	}
	// The gate stays open for the moment an enemy walks in.
	if got := ecs.Combats[tower].FireCooldown; got != 0 {
		t.Errorf("Empty pulse consumed the cooldown: %v", got)
	}
}
