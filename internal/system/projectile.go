// internal/system/projectile.go
package system

import (
	"elemental-td/internal/component"
	"elemental-td/internal/config"
	"elemental-td/internal/entity"
	"elemental-td/internal/event"
	"elemental-td/internal/types"
	"elemental-td/pkg/geom"
)

// ProjectileSystem moves shots toward their targets and resolves impacts.
// Homing is recomputed every tick with a linear lead: the aim point is the
// target's position plus its velocity times the time the projectile needs
// to cover the current distance. A static or dying target degrades to
// direct pursuit; a missing target expires the projectile.
type ProjectileSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewProjectileSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	// Collect removals after the sweep; mutating the store mid-iteration
	// would skip entries.
	var expired []types.EntityID

	for id, proj := range s.ecs.Projectiles {
		pos, hasPos := s.ecs.Positions[id]
		if !hasPos {
			expired = append(expired, id)
			continue
		}

		// A dead or despawned target never registers a hit; the projectile
		// self-expires instead of chasing a ghost.
		if !s.ecs.EnemyAlive(proj.TargetID) {
			expired = append(expired, id)
			continue
		}
		targetPos := s.ecs.Positions[proj.TargetID]
		if targetPos == nil {
			expired = append(expired, id)
			continue
		}

		aim := s.aimPoint(pos.Vec(), targetPos.Vec(), proj.TargetID, proj.Speed)
		dir := aim.Sub(pos.Vec()).Normalized()
		step := proj.Speed * deltaTime
		pos.Set(pos.Vec().Add(dir.Scale(step)))
		proj.Traveled += step

		if geom.Distance(pos.Vec(), targetPos.Vec()) < config.ProjectileHitRadius {
			s.resolveHit(id, proj, pos.Vec())
			expired = append(expired, id)
			continue
		}

		if proj.Traveled > proj.MaxRange {
			expired = append(expired, id)
		}
	}

	for _, id := range expired {
		s.ecs.RemoveEntity(id)
	}
}

// aimPoint predicts where the target will be when the projectile arrives.
func (s *ProjectileSystem) aimPoint(from, targetPos geom.Vec3, targetID types.EntityID, speed float64) geom.Vec3 {
	vel := VelocityVector(s.ecs, targetID)
	if vel.Length() == 0 || speed <= 0 {
		return targetPos
	}
	timeToReach := geom.Distance(from, targetPos) / speed
	return targetPos.Add(vel.Scale(timeToReach))
}

// resolveHit damages the primary target, splashes neighbors when the shot
// carries a splash radius, and applies the element's status effect. The
// primary target is never damaged a second time by its own splash.
func (s *ProjectileSystem) resolveHit(projID types.EntityID, proj *component.Projectile, impact geom.Vec3) {
	var killed []types.EntityID

	died := ApplyDamage(s.ecs, proj.TargetID, proj.Damage, proj.Element)
	ApplyStatusEffect(s.ecs, proj.TargetID, proj.Element)
	if died {
		killed = append(killed, proj.TargetID)
	}

	if proj.SplashRadius > 0 {
		for enemyID := range s.ecs.Enemies {
			if enemyID == proj.TargetID {
				continue
			}
			if !s.ecs.EnemyAlive(enemyID) {
				continue
			}
			enemyPos, hasPos := s.ecs.Positions[enemyID]
			if !hasPos {
				continue
			}
			if geom.DistanceXZ(impact, enemyPos.Vec()) <= proj.SplashRadius {
				if ApplyDamage(s.ecs, enemyID, proj.Damage, proj.Element) {
					killed = append(killed, enemyID)
				}
			}
		}
	}

	for _, enemyID := range killed {
		KillEnemy(s.ecs, s.eventDispatcher, enemyID)
	}
}
