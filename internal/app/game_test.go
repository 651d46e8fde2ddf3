// internal/app/game_test.go
package app

import (
	"testing"

	"elemental-td/pkg/geom"
	"elemental-td/pkg/grid"
)

// TestUnguardedWaveLeaksThrough runs the real loop with no towers: the whole
// first wave crosses the field, costs five base health, and the next wave
// starts on its own.
func TestUnguardedWaveLeaksThrough(t *testing.T) {
	// A straight 10-unit path through the middle of a small map. Wave 1 is
	// five grunts at speed 1; at half-second ticks the last one is off the
	// field by t=15 and wave 2 is walking by t=25.
	path := []geom.Vec3{{X: -5, Z: 0}, {X: 5, Z: 0}}
	g := NewGame(grid.New(10, 10, 1.0, path, 0.75), 1)

	for i := 0; i < 50; i++ {
		g.Update(0.5)
		if g.ECS.Progression.LiveEnemies < 0 {
			t.Fatal("LiveEnemies went negative")
		}
		if g.ECS.Progression.LiveEnemies != len(g.ECS.Enemies) {
			t.Fatalf("LiveEnemies = %d but store holds %d enemies",
				g.ECS.Progression.LiveEnemies, len(g.ECS.Enemies))
		}
	}

	prog := g.ECS.Progression
	if prog.BaseHealth != 15 {
		t.Errorf("Base health after 5 leaks = %d, want 15", prog.BaseHealth)
	}
	if prog.Money != 100 {
		t.Errorf("Leaked enemies paid a bounty: money %d, want 100", prog.Money)
	}
	if prog.Wave != 2 {
		t.Errorf("Wave = %d, want 2 (auto-advance after the field cleared)", prog.Wave)
	}
	if len(g.ECS.Enemies) == 0 {
		t.Error("Wave 2 spawned nothing")
	}
	if g.Over() {
		t.Error("Game ended with base health remaining")
	}
}

// TestPausedGameIsInert freezes the loop and checks nothing moves.
func TestPausedGameIsInert(t *testing.T) {
	path := []geom.Vec3{{X: -5, Z: 0}, {X: 5, Z: 0}}
	g := NewGame(grid.New(10, 10, 1.0, path, 0.75), 1)

	g.SetPaused(true)
	for i := 0; i < 10; i++ {
		g.Update(0.5)
	}
	if g.ECS.GameTime != 0 {
		t.Errorf("Paused game advanced the clock to %v", g.ECS.GameTime)
	}
	if len(g.ECS.Enemies) != 0 {
		t.Errorf("Paused game spawned %d enemies", len(g.ECS.Enemies))
	}

	g.SetPaused(false)
	g.Update(0.5)
	if g.ECS.GameTime != 0.5 {
		t.Errorf("Resumed game clock = %v, want 0.5", g.ECS.GameTime)
	}
}

// TestSpeedMultiplierScalesTime checks the speed toggle scales simulation
// time, not wall time.
func TestSpeedMultiplierScalesTime(t *testing.T) {
	path := []geom.Vec3{{X: -5, Z: 0}, {X: 5, Z: 0}}
	g := NewGame(grid.New(10, 10, 1.0, path, 0.75), 1)

	g.SetGameSpeed(4.0)
	g.Update(0.5)
	if g.ECS.GameTime != 2.0 {
		t.Errorf("GameTime at 4x after one half-second tick = %v, want 2.0", g.ECS.GameTime)
	}
}
