// internal/entity/ecs.go
package entity

import (
	"elemental-td/internal/component"
	"elemental-td/internal/config"
	"elemental-td/internal/types"
)

// ECS holds every live entity's components in per-type stores plus the two
// singletons (current wave, progression). The game loop is the only writer;
// systems iterate the stores directly.
type ECS struct {
	GameTime float64
	NextID   types.EntityID

	Positions    map[types.EntityID]*component.Position
	Velocities   map[types.EntityID]*component.Velocity
	Paths        map[types.EntityID]*component.Path
	Healths      map[types.EntityID]*component.Health
	Renderables  map[types.EntityID]*component.Renderable
	Towers       map[types.EntityID]*component.Tower
	Enemies      map[types.EntityID]*component.Enemy
	Projectiles  map[types.EntityID]*component.Projectile
	Combats      map[types.EntityID]*component.Combat
	SlowEffects  map[types.EntityID]*component.SlowEffect
	RootEffects  map[types.EntityID]*component.RootEffect
	BurnEffects  map[types.EntityID]*component.BurnEffect
	DecayEffects map[types.EntityID]*component.DecayEffect

	Wave        *component.Wave
	Progression *component.Progression
}

func NewECS() *ECS {
	return &ECS{
		NextID:       1,
		Positions:    make(map[types.EntityID]*component.Position),
		Velocities:   make(map[types.EntityID]*component.Velocity),
		Paths:        make(map[types.EntityID]*component.Path),
		Healths:      make(map[types.EntityID]*component.Health),
		Renderables:  make(map[types.EntityID]*component.Renderable),
		Towers:       make(map[types.EntityID]*component.Tower),
		Enemies:      make(map[types.EntityID]*component.Enemy),
		Projectiles:  make(map[types.EntityID]*component.Projectile),
		Combats:      make(map[types.EntityID]*component.Combat),
		SlowEffects:  make(map[types.EntityID]*component.SlowEffect),
		RootEffects:  make(map[types.EntityID]*component.RootEffect),
		BurnEffects:  make(map[types.EntityID]*component.BurnEffect),
		DecayEffects: make(map[types.EntityID]*component.DecayEffect),
		Wave:         nil,
		Progression:  component.NewProgression(config.StartingMoney, config.BaseHealth),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity drops the entity from every store. Safe to call for ids that
// are already gone.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Paths, id)
	delete(ecs.Healths, id)
	delete(ecs.Renderables, id)
	delete(ecs.Towers, id)
	delete(ecs.Enemies, id)
	delete(ecs.Projectiles, id)
	delete(ecs.Combats, id)
	delete(ecs.SlowEffects, id)
	delete(ecs.RootEffects, id)
	delete(ecs.BurnEffects, id)
	delete(ecs.DecayEffects, id)
}

// EnemyAlive reports whether the entity is an enemy that can still be hit:
// present, not past the exit, and with health left.
func (ecs *ECS) EnemyAlive(id types.EntityID) bool {
	enemy, ok := ecs.Enemies[id]
	if !ok || enemy.ReachedEnd {
		return false
	}
	health, ok := ecs.Healths[id]
	return ok && health.Value > 0
}
