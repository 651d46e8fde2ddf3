// internal/system/wave_test.go
package system

import (
	"testing"

	"elemental-td/internal/defs"
	"elemental-td/internal/entity"
	"elemental-td/internal/event"
	"elemental-td/internal/utils"
	"elemental-td/pkg/geom"
)

func newTestWaveSystem() (*entity.ECS, *event.Dispatcher, *WaveSystem) {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	path := []geom.Vec3{{X: 0, Z: 0}, {X: 10, Z: 0}}
	ws := NewWaveSystem(ecs, path, dispatcher, utils.NewPRNGService(1))
	return ecs, dispatcher, ws
}

func TestWaveSpawnsScaledEnemies(t *testing.T) {
	ecs, _, ws := newTestWaveSystem()

	ws.StartWave(5)
	// Wave 5 is six brutes on a one-second interval.
	for i := 0; i < 6; i++ {
		ws.Update(1.0)
	}

	if got := len(ecs.Enemies); got != 6 {
		t.Fatalf("Spawned %d enemies, want 6", got)
	}
	brute := defs.EnemyLibrary["ENEMY_BRUTE"]
	wantHealth := defs.ScaledHealth(brute, 5)
	wantSpeed := defs.ScaledSpeed(brute, 5)
	for id, enemy := range ecs.Enemies {
		if enemy.Wave != 5 {
			t.Errorf("Enemy wave tag = %d, want 5", enemy.Wave)
		}
		if got := ecs.Healths[id].Value; got != wantHealth {
			t.Errorf("Enemy health = %d, want %d", got, wantHealth)
		}
		if got := ecs.Velocities[id].Speed; got != wantSpeed {
			t.Errorf("Enemy speed = %v, want %v", got, wantSpeed)
		}
		if ecs.Paths[id].CurrentIndex != 1 {
			t.Errorf("Fresh spawn walks toward waypoint %d, want 1", ecs.Paths[id].CurrentIndex)
		}
	}
	if got := ws.ActiveEnemies(); got != 6 {
		t.Errorf("ActiveEnemies = %d, want 6", got)
	}
	if got := ecs.Progression.LiveEnemies; got != 6 {
		t.Errorf("Progression.LiveEnemies = %d, want 6", got)
	}
}

func TestWaveEndsWhenFieldClears(t *testing.T) {
	ecs, dispatcher, ws := newTestWaveSystem()
	rec := &recorder{}
	dispatcher.Subscribe(event.WaveEnded, rec)

	ws.StartWave(10)
	ws.Update(1.0) // spawns the single boss

	ws.Update(1.0)
	if rec.count(event.WaveEnded) != 0 {
		t.Fatal("WaveEnded dispatched while the boss was still alive")
	}

	for id := range ecs.Enemies {
		KillEnemy(ecs, dispatcher, id)
	}

	ws.Update(1.0)
	if got := rec.count(event.WaveEnded); got != 1 {
		t.Fatalf("WaveEnded dispatched %d times, want 1", got)
	}

	// Idle updates never re-announce a finished wave.
	ws.Update(1.0)
	if got := rec.count(event.WaveEnded); got != 1 {
		t.Errorf("WaveEnded re-dispatched on an idle field: %d events", got)
	}
}

func TestEliteCarriesElement(t *testing.T) {
	ecs, _, ws := newTestWaveSystem()

	ws.StartWave(4) // ten grunts, no innate element
	for i := 0; i < 10; i++ {
		ws.Update(1.0)
	}

	elites := 0
	for _, enemy := range ecs.Enemies {
		if enemy.Element != defs.ElementNone {
			elites++
		}
	}
	// Every 4th spawn of an unaligned enemy is an elite: spawns 4 and 8.
	if elites != 2 {
		t.Errorf("Wave of 10 grunts produced %d elites, want 2", elites)
	}
}
