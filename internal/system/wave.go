// internal/system/wave.go
package system

import (
	"log"

	"elemental-td/internal/component"
	"elemental-td/internal/config"
	"elemental-td/internal/defs"
	"elemental-td/internal/entity"
	"elemental-td/internal/event"
	"elemental-td/internal/utils"
	"elemental-td/pkg/geom"
)

// WaveSystem spawns the current wave's enemies with wave-scaled stats and
// reports when the field is clear. Enemy health and speed grow linearly
// with the wave number; every few spawns an elite carries a random defender
// element.
type WaveSystem struct {
	ecs             *entity.ECS
	path            []geom.Vec3
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
	activeEnemies   int
	waveDone        bool
}

func NewWaveSystem(ecs *entity.ECS, path []geom.Vec3, eventDispatcher *event.Dispatcher, rng *utils.PRNGService) *WaveSystem {
	ws := &WaveSystem{
		ecs:             ecs,
		path:            path,
		eventDispatcher: eventDispatcher,
		rng:             rng,
	}
	eventDispatcher.Subscribe(event.EnemyKilled, ws)
	eventDispatcher.Subscribe(event.EnemyReachedEnd, ws)
	return ws
}

func (s *WaveSystem) Update(deltaTime float64) {
	wave := s.ecs.Wave
	if wave == nil {
		return
	}
	if wave.EnemiesToSpawn > 0 {
		wave.SpawnTimer += deltaTime
		if wave.SpawnTimer >= wave.SpawnInterval {
			s.spawnEnemy(wave)
			wave.EnemiesToSpawn--
			wave.SpawnTimer = 0
		}
	} else if s.activeEnemies == 0 && !s.waveDone {
		s.waveDone = true
		s.eventDispatcher.Dispatch(event.Event{Type: event.WaveEnded, Data: wave.Number})
	}
}

// StartWave installs wave number n as the current wave.
func (s *WaveSystem) StartWave(n int) {
	pattern := defs.PatternFor(n)
	s.ecs.Wave = &component.Wave{
		Number:         n,
		EnemyID:        pattern.EnemyID,
		EnemiesToSpawn: pattern.Count,
		SpawnInterval:  pattern.SpawnInterval.Seconds(),
		Path:           s.path,
	}
	s.waveDone = false
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: n})
}

// ActiveEnemies is the count of spawned enemies still on the field.
func (s *WaveSystem) ActiveEnemies() int {
	return s.activeEnemies
}

func (s *WaveSystem) spawnEnemy(wave *component.Wave) {
	def, ok := defs.EnemyLibrary[wave.EnemyID]
	if !ok {
		log.Printf("wave %d: enemy definition not found for ID %s", wave.Number, wave.EnemyID)
		return
	}

	health := defs.ScaledHealth(def, wave.Number)
	speed := defs.ScaledSpeed(def, wave.Number)

	element := def.Element
	wave.Spawned++
	if element == defs.ElementNone && wave.Spawned%config.EliteSpawnEvery == 0 {
		element = defs.AllElements[s.rng.Intn(len(defs.AllElements))]
	}

	id := s.ecs.NewEntity()
	start := wave.Path[0]
	s.ecs.Positions[id] = &component.Position{X: start.X, Y: start.Y, Z: start.Z}
	s.ecs.Velocities[id] = &component.Velocity{Speed: speed}
	s.ecs.Paths[id] = &component.Path{Waypoints: wave.Path, CurrentIndex: 1}
	s.ecs.Healths[id] = &component.Health{Value: health, Max: health}
	s.ecs.Enemies[id] = &component.Enemy{
		DefID:   wave.EnemyID,
		Wave:    wave.Number,
		Element: element,
		Bounty:  def.Bounty,
	}
	enemyColor := config.EnemyColor
	if el, ok := defs.ElementLibrary[element]; ok {
		enemyColor = el.Color
	}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:     enemyColor,
		Radius:    float32(config.EnemyRadius * def.Visuals.RadiusFactor),
		HasStroke: element != defs.ElementNone,
	}
	s.activeEnemies++
	if s.ecs.Progression != nil {
		s.ecs.Progression.LiveEnemies++
	}
}

func (s *WaveSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled, event.EnemyReachedEnd:
		if s.activeEnemies > 0 {
			s.activeEnemies--
		}
	}
}
