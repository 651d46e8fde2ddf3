// internal/system/utils.go
package system

import (
	"elemental-td/internal/component"
	"elemental-td/internal/config"
	"elemental-td/internal/defs"
	"elemental-td/internal/entity"
	"elemental-td/internal/event"
	"elemental-td/internal/types"
)

// ApplyDamage deals elemental damage to an entity and reports whether it
// died. The attacker element is run through the multiplier table against
// the defender's element; Light's pierce effect refuses to go below the
// unmodified base. The caller owns the death transition.
func ApplyDamage(ecs *entity.ECS, entityID types.EntityID, damage int, attacker defs.ElementType) bool {
	health, hasHealth := ecs.Healths[entityID]
	if !hasHealth || health.Value <= 0 {
		return false
	}

	finalDamage := damage
	if enemy, isEnemy := ecs.Enemies[entityID]; isEnemy {
		finalDamage = defs.ElementalDamage(damage, attacker, enemy.Element)
		if def, ok := defs.ElementLibrary[attacker]; ok && def.Effect == defs.EffectPierce && finalDamage < damage {
			finalDamage = damage
		}
	}

	if finalDamage < 0 {
		finalDamage = 0
	}
	health.Value -= finalDamage
	if health.Value <= 0 {
		health.Value = 0
		return true
	}
	return false
}

// ApplyRawDamage bypasses the elemental table; used by damage-over-time
// ticks so a burn never re-applies the multiplier of the hit that set it.
func ApplyRawDamage(ecs *entity.ECS, entityID types.EntityID, damage int) bool {
	health, hasHealth := ecs.Healths[entityID]
	if !hasHealth || health.Value <= 0 {
		return false
	}
	health.Value -= damage
	if health.Value <= 0 {
		health.Value = 0
		return true
	}
	return false
}

// ApplyStatusEffect attaches the attacker element's status effect to the
// target. Re-application refreshes the duration but leaves a running DoT
// tick timer alone, so ticks stay on their own cadence.
func ApplyStatusEffect(ecs *entity.ECS, targetID types.EntityID, attacker defs.ElementType) {
	def, ok := defs.ElementLibrary[attacker]
	if !ok {
		return
	}
	switch def.Effect {
	case defs.EffectSlow:
		if effect, exists := ecs.SlowEffects[targetID]; exists {
			effect.Timer = config.SlowDuration
		} else {
			ecs.SlowEffects[targetID] = &component.SlowEffect{Timer: config.SlowDuration, Factor: config.SlowFactor}
		}
	case defs.EffectRoot:
		if effect, exists := ecs.RootEffects[targetID]; exists {
			effect.Timer = config.RootDuration
		} else {
			ecs.RootEffects[targetID] = &component.RootEffect{Timer: config.RootDuration}
		}
	case defs.EffectBurn:
		if effect, exists := ecs.BurnEffects[targetID]; exists {
			effect.Timer = config.BurnDuration
		} else {
			ecs.BurnEffects[targetID] = &component.BurnEffect{
				Timer:         config.BurnDuration,
				TickTimer:     config.StatusTickInterval,
				DamagePerTick: config.BurnDamagePerTick,
			}
		}
	case defs.EffectDecay:
		if effect, exists := ecs.DecayEffects[targetID]; exists {
			effect.Timer = config.DecayDuration
		} else {
			ecs.DecayEffects[targetID] = &component.DecayEffect{
				Timer:         config.DecayDuration,
				TickTimer:     config.StatusTickInterval,
				DamagePerTick: config.DecayDamagePerTick,
				LeechBonus:    config.DecayLeechBonus,
			}
		}
	}
	// Pierce and splash modify the hit itself and carry no timed component.
}

// KillEnemy removes a dead enemy and notifies listeners. The leech bonus is
// paid only when the enemy died while decaying.
func KillEnemy(ecs *entity.ECS, dispatcher *event.Dispatcher, id types.EntityID) {
	enemy, ok := ecs.Enemies[id]
	if !ok {
		return
	}
	leech := 0
	if decay, decaying := ecs.DecayEffects[id]; decaying {
		leech = decay.LeechBonus
	}
	data := event.EnemyKilledData{
		ID:         id,
		Bounty:     enemy.Bounty,
		LeechBonus: leech,
		Element:    enemy.Element,
	}
	ecs.RemoveEntity(id)
	dispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: data})
}

// EffectiveSpeed is the enemy's base speed with active movement effects
// applied. Root wins over slow.
func EffectiveSpeed(ecs *entity.ECS, id types.EntityID, base float64) float64 {
	if _, rooted := ecs.RootEffects[id]; rooted {
		return 0
	}
	if slow, slowed := ecs.SlowEffects[id]; slowed {
		return base * slow.Factor
	}
	return base
}
