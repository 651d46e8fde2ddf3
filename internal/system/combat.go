// internal/system/combat.go
package system

import (
	"image/color"
	"math"

	"elemental-td/internal/component"
	"elemental-td/internal/config"
	"elemental-td/internal/defs"
	"elemental-td/internal/entity"
	"elemental-td/internal/types"
)

// CombatSystem drives single-target towers: tick the fire-rate gate, pick
// the closest live enemy in range and launch a homing projectile at it.
// Firing while the gate is closed or with nothing in range is a silent
// no-op.
type CombatSystem struct {
	ecs *entity.ECS
}

func NewCombatSystem(ecs *entity.ECS) *CombatSystem {
	return &CombatSystem{ecs: ecs}
}

func (s *CombatSystem) Update(deltaTime float64) {
	for id, combat := range s.ecs.Combats {
		if combat.Behavior != defs.BehaviorProjectile {
			continue
		}
		if _, isTower := s.ecs.Towers[id]; !isTower {
			continue
		}

		if combat.FireCooldown > 0 {
			combat.FireCooldown -= deltaTime
			continue
		}

		targetID := s.FindTarget(id, combat.Range)
		if targetID == 0 {
			continue
		}

		s.Shoot(id, targetID)
	}
}

// FindTarget returns the closest alive enemy within range of the tower, or
// 0 when none qualifies. The first enemy found at the minimal distance wins
// ties.
func (s *CombatSystem) FindTarget(towerID types.EntityID, rangeRadius float64) types.EntityID {
	towerPos, ok := s.ecs.Positions[towerID]
	if !ok {
		return 0
	}

	var nearest types.EntityID
	minDistance := math.MaxFloat64
	for enemyID := range s.ecs.Enemies {
		if !s.ecs.EnemyAlive(enemyID) {
			continue
		}
		enemyPos, hasPos := s.ecs.Positions[enemyID]
		if !hasPos {
			continue
		}
		dx := enemyPos.X - towerPos.X
		dz := enemyPos.Z - towerPos.Z
		distance := math.Sqrt(dx*dx + dz*dz)
		if distance <= rangeRadius && distance < minDistance {
			minDistance = distance
			nearest = enemyID
		}
	}
	return nearest
}

// Shoot spawns a projectile from the tower's weapon tip at the target and
// resets the cooldown. Does nothing when the gate is still closed.
func (s *CombatSystem) Shoot(towerID, targetID types.EntityID) bool {
	combat, ok := s.ecs.Combats[towerID]
	if !ok || !combat.CanShoot() {
		return false
	}
	tower, ok := s.ecs.Towers[towerID]
	if !ok {
		return false
	}
	towerPos, ok := s.ecs.Positions[towerID]
	if !ok {
		return false
	}

	// Earth's effect is carried by the hit itself: shots gain a splash
	// radius. A definition with a larger built-in radius keeps it.
	splash := combat.SplashRadius
	if def, ok := defs.ElementLibrary[tower.Element]; ok && def.Effect == defs.EffectSplash && splash < config.EarthSplashRadius {
		splash = config.EarthSplashRadius
	}

	projID := s.ecs.NewEntity()
	s.ecs.Positions[projID] = &component.Position{
		X: towerPos.X,
		Y: towerPos.Y + config.MuzzleHeight,
		Z: towerPos.Z,
	}
	s.ecs.Projectiles[projID] = &component.Projectile{
		TargetID:     targetID,
		Speed:        config.ProjectileSpeed,
		Damage:       combat.Damage,
		Element:      tower.Element,
		SplashRadius: splash,
		MaxRange:     config.ProjectileMaxRange,
	}
	s.ecs.Renderables[projID] = &component.Renderable{
		Color:  projectileColor(tower.Element),
		Radius: config.ProjectileRadius,
	}

	combat.ResetCooldown()
	return true
}

func projectileColor(el defs.ElementType) color.RGBA {
	if def, ok := defs.ElementLibrary[el]; ok {
		return def.Color
	}
	return config.ProjectileColor
}
