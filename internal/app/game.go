// internal/app/game.go
package app

import (
	"elemental-td/internal/config"
	"elemental-td/internal/entity"
	"elemental-td/internal/event"
	"elemental-td/internal/system"
	"elemental-td/internal/types"
	"elemental-td/internal/utils"
	"elemental-td/pkg/grid"
)

// Game owns the entity collections and runs the simulation. One Update call
// is one tick; systems run in a fixed order (enemies, towers, projectiles,
// progression bookkeeping) on a single logical thread, so nothing here
// locks.
type Game struct {
	Grid *grid.Grid
	ECS  *entity.ECS

	MovementSystem     *system.MovementSystem
	CombatSystem       *system.CombatSystem
	AreaAttackSystem   *system.AreaAttackSystem
	ProjectileSystem   *system.ProjectileSystem
	StatusEffectSystem *system.StatusEffectSystem
	WaveSystem         *system.WaveSystem
	EventDispatcher    *event.Dispatcher
	Rng                *utils.PRNGService

	gameSpeed float64
	waveTimer float64
	paused    bool
	over      bool
}

// NewGame wires the systems around a level grid. Seed 0 randomizes.
func NewGame(g *grid.Grid, seed int64) *Game {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(seed)

	game := &Game{
		Grid:            g,
		ECS:             ecs,
		EventDispatcher: dispatcher,
		Rng:             rng,
		gameSpeed:       1.0,
	}
	game.MovementSystem = system.NewMovementSystem(ecs, dispatcher)
	game.CombatSystem = system.NewCombatSystem(ecs)
	game.AreaAttackSystem = system.NewAreaAttackSystem(ecs, dispatcher)
	game.ProjectileSystem = system.NewProjectileSystem(ecs, dispatcher)
	game.StatusEffectSystem = system.NewStatusEffectSystem(ecs, dispatcher)
	game.WaveSystem = system.NewWaveSystem(ecs, g.Path(), dispatcher, rng)

	listener := &gameEventListener{game: game}
	dispatcher.Subscribe(event.EnemyKilled, listener)
	dispatcher.Subscribe(event.EnemyReachedEnd, listener)
	dispatcher.Subscribe(event.WaveEnded, listener)

	game.checkUnlockThresholds()
	game.WaveSystem.StartWave(1)

	return game
}

// Update advances the simulation by deltaTime seconds of real time, scaled
// by the speed setting. The tick order is fixed: enemies move, status
// effects tick, towers fire, projectiles fly, then spawn/progression
// bookkeeping runs.
func (g *Game) Update(deltaTime float64) {
	if g.paused || g.over {
		return
	}
	dt := deltaTime * g.gameSpeed
	g.ECS.GameTime += dt

	g.MovementSystem.Update(dt)
	g.StatusEffectSystem.Update(dt)
	g.CombatSystem.Update(dt)
	g.AreaAttackSystem.Update(dt)
	g.ProjectileSystem.Update(dt)
	g.WaveSystem.Update(dt)
	g.reapFinishedEnemies()

	g.waveTimer += dt
	if g.waveTimer >= config.WaveDuration {
		g.AdvanceWave()
	}
}

// reapFinishedEnemies removes walkers that crossed the exit this tick.
// Their projectiles find the dangling target on their own next update.
func (g *Game) reapFinishedEnemies() {
	var done []types.EntityID
	for id, enemy := range g.ECS.Enemies {
		if enemy.ReachedEnd {
			done = append(done, id)
		}
	}
	for _, id := range done {
		g.ECS.RemoveEntity(id)
	}
}

func (g *Game) SetPaused(p bool) { g.paused = p }
func (g *Game) Paused() bool     { return g.paused }
func (g *Game) Over() bool       { return g.over }

// SetGameSpeed clamps the speed multiplier to the supported steps.
func (g *Game) SetGameSpeed(speed float64) {
	if speed < 1.0 {
		speed = 1.0
	} else if speed > 4.0 {
		speed = 4.0
	}
	g.gameSpeed = speed
}

func (g *Game) GameSpeed() float64 { return g.gameSpeed }

type gameEventListener struct {
	game *Game
}

func (l *gameEventListener) OnEvent(e event.Event) {
	prog := l.game.ECS.Progression
	switch e.Type {
	case event.EnemyKilled:
		data, ok := e.Data.(event.EnemyKilledData)
		if !ok {
			return
		}
		prog.Money += data.Bounty + data.LeechBonus
		prog.Score += config.KillScore
		if prog.LiveEnemies > 0 {
			prog.LiveEnemies--
		}
	case event.EnemyReachedEnd:
		prog.BaseHealth -= config.DamagePerLeak
		if prog.BaseHealth <= 0 {
			prog.BaseHealth = 0
			l.game.over = true
		}
		if prog.LiveEnemies > 0 {
			prog.LiveEnemies--
		}
	case event.WaveEnded:
		l.game.AdvanceWave()
	}
}
