// internal/system/status_effect.go
package system

import (
	"elemental-td/internal/config"
	"elemental-td/internal/entity"
	"elemental-td/internal/event"
	"elemental-td/internal/types"
)

// StatusEffectSystem expires movement effects and ticks damage-over-time
// effects. DoT ticks run on their own fixed cadence, independent of the
// hits that applied or refreshed them, so damage is deterministic given
// elapsed simulation time.
type StatusEffectSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewStatusEffectSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *StatusEffectSystem {
	return &StatusEffectSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

func (s *StatusEffectSystem) Update(deltaTime float64) {
	for id, effect := range s.ecs.SlowEffects {
		effect.Timer -= deltaTime
		if effect.Timer <= 0 {
			delete(s.ecs.SlowEffects, id)
		}
	}

	for id, effect := range s.ecs.RootEffects {
		effect.Timer -= deltaTime
		if effect.Timer <= 0 {
			delete(s.ecs.RootEffects, id)
		}
	}

	var killed []types.EntityID

	for id, effect := range s.ecs.BurnEffects {
		effect.Timer -= deltaTime
		if effect.Timer <= 0 {
			delete(s.ecs.BurnEffects, id)
			continue
		}
		effect.TickTimer -= deltaTime
		if effect.TickTimer <= 0 {
			effect.TickTimer += config.StatusTickInterval
			if ApplyRawDamage(s.ecs, id, effect.DamagePerTick) {
				killed = append(killed, id)
			}
		}
	}

	for id, effect := range s.ecs.DecayEffects {
		effect.Timer -= deltaTime
		if effect.Timer <= 0 {
			delete(s.ecs.DecayEffects, id)
			continue
		}
		effect.TickTimer -= deltaTime
		if effect.TickTimer <= 0 {
			effect.TickTimer += config.StatusTickInterval
			if ApplyRawDamage(s.ecs, id, effect.DamagePerTick) {
				killed = append(killed, id)
			}
		}
	}

	for _, id := range killed {
		KillEnemy(s.ecs, s.eventDispatcher, id)
	}
}
