// internal/app/snapshot.go
package app

import (
	"image/color"

	"elemental-td/internal/defs"
	"elemental-td/internal/types"
	"elemental-td/pkg/geom"
)

// EntitySnapshot is a read-only view of one entity for the rendering layer.
type EntitySnapshot struct {
	ID             types.EntityID
	Position       geom.Vec3
	Color          color.RGBA
	Radius         float32
	HasStroke      bool
	HealthFraction float64 // 1.0 for entities without health
}

// HUDSnapshot carries the progression counters the UI shows.
type HUDSnapshot struct {
	Money            int
	Score            int
	Wave             int
	BaseHealth       int
	LiveEnemies      int
	PendingSelection bool
	Unlocked         []defs.ElementType
}

// SnapshotEnemies returns draw data for every live enemy.
func (g *Game) SnapshotEnemies() []EntitySnapshot {
	out := make([]EntitySnapshot, 0, len(g.ECS.Enemies))
	for id := range g.ECS.Enemies {
		snap, ok := g.snapshotEntity(id)
		if !ok {
			continue
		}
		if h, hasHealth := g.ECS.Healths[id]; hasHealth {
			snap.HealthFraction = h.Fraction()
		}
		out = append(out, snap)
	}
	return out
}

// SnapshotTowers returns draw data for every placed tower.
func (g *Game) SnapshotTowers() []EntitySnapshot {
	out := make([]EntitySnapshot, 0, len(g.ECS.Towers))
	for id := range g.ECS.Towers {
		if snap, ok := g.snapshotEntity(id); ok {
			snap.HealthFraction = 1.0
			out = append(out, snap)
		}
	}
	return out
}

// SnapshotProjectiles returns draw data for every shot in flight.
func (g *Game) SnapshotProjectiles() []EntitySnapshot {
	out := make([]EntitySnapshot, 0, len(g.ECS.Projectiles))
	for id := range g.ECS.Projectiles {
		if snap, ok := g.snapshotEntity(id); ok {
			snap.HealthFraction = 1.0
			out = append(out, snap)
		}
	}
	return out
}

func (g *Game) snapshotEntity(id types.EntityID) (EntitySnapshot, bool) {
	pos, hasPos := g.ECS.Positions[id]
	r, hasRender := g.ECS.Renderables[id]
	if !hasPos || !hasRender {
		return EntitySnapshot{}, false
	}
	return EntitySnapshot{
		ID:             id,
		Position:       pos.Vec(),
		Color:          r.Color,
		Radius:         r.Radius,
		HasStroke:      r.HasStroke,
		HealthFraction: 1.0,
	}, true
}

// SnapshotHUD returns the current progression counters.
func (g *Game) SnapshotHUD() HUDSnapshot {
	prog := g.ECS.Progression
	unlocked := make([]defs.ElementType, 0, len(prog.Unlocked))
	for _, el := range defs.AllElements {
		if prog.Unlocked[el] {
			unlocked = append(unlocked, el)
		}
	}
	return HUDSnapshot{
		Money:            prog.Money,
		Score:            prog.Score,
		Wave:             prog.Wave,
		BaseHealth:       prog.BaseHealth,
		LiveEnemies:      prog.LiveEnemies,
		PendingSelection: prog.PendingSelection,
		Unlocked:         unlocked,
	}
}
