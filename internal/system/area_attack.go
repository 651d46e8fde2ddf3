// internal/system/area_attack.go
package system

import (
	"elemental-td/internal/defs"
	"elemental-td/internal/entity"
	"elemental-td/internal/event"
	"elemental-td/internal/types"
	"elemental-td/pkg/geom"
)

// AreaAttackSystem drives pulse towers: no projectiles, no target
// selection. When the gate opens and at least one enemy stands in range,
// every enemy in range takes a hit at once.
type AreaAttackSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewAreaAttackSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *AreaAttackSystem {
	return &AreaAttackSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

func (s *AreaAttackSystem) Update(deltaTime float64) {
	for id, combat := range s.ecs.Combats {
		if combat.Behavior != defs.BehaviorArea {
			continue
		}
		if _, isTower := s.ecs.Towers[id]; !isTower {
			continue
		}

		if combat.FireCooldown > 0 {
			combat.FireCooldown -= deltaTime
			continue
		}

		s.Pulse(id)
	}
}

// Pulse damages every live enemy within range of the tower and returns the
// ids of those that died. Enemies are collected before any damage is dealt
// so removal never skips an entry mid-iteration. The cooldown resets only
// when something was actually in range.
func (s *AreaAttackSystem) Pulse(towerID types.EntityID) []types.EntityID {
	combat, ok := s.ecs.Combats[towerID]
	if !ok || !combat.CanShoot() {
		return nil
	}
	tower, ok := s.ecs.Towers[towerID]
	if !ok {
		return nil
	}
	towerPos, ok := s.ecs.Positions[towerID]
	if !ok {
		return nil
	}

	var inRange []types.EntityID
	for enemyID := range s.ecs.Enemies {
		if !s.ecs.EnemyAlive(enemyID) {
			continue
		}
		enemyPos, hasPos := s.ecs.Positions[enemyID]
		if !hasPos {
			continue
		}
		if geom.DistanceXZ(towerPos.Vec(), enemyPos.Vec()) <= combat.Range {
			inRange = append(inRange, enemyID)
		}
	}
	if len(inRange) == 0 {
		return nil
	}

	var killed []types.EntityID
	for _, enemyID := range inRange {
		died := ApplyDamage(s.ecs, enemyID, combat.Damage, tower.Element)
		ApplyStatusEffect(s.ecs, enemyID, tower.Element)
		if died {
			killed = append(killed, enemyID)
		}
	}
	for _, enemyID := range killed {
		KillEnemy(s.ecs, s.eventDispatcher, enemyID)
	}

	combat.ResetCooldown()
	return killed
}
