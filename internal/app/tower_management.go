// internal/app/tower_management.go
package app

import (
	"elemental-td/internal/component"
	"elemental-td/internal/defs"
	"elemental-td/internal/event"
	"elemental-td/internal/types"
	"elemental-td/pkg/grid"
)

// PlaceTower buys and places a tower on a grid cell. The optional element
// overrides the definition's primary element; it must belong to the
// definition's element set. Placement is all-or-nothing: a failed check
// leaves money and grid untouched.
func (g *Game) PlaceTower(cell grid.Cell, defID string, element defs.ElementType) (types.EntityID, error) {
	def, ok := defs.TowerLibrary[defID]
	if !ok {
		return 0, ErrUnknownTower
	}
	if !defs.IsAvailable(def, g.ECS.Progression.Unlocked) {
		return 0, ErrTowerLocked
	}
	if !g.Grid.CanPlace(cell) {
		return 0, ErrInvalidPlacement
	}
	if element != defs.ElementNone && !def.HasElement(element) {
		return 0, ErrUnknownElement
	}
	if !g.SpendMoney(def.Cost) {
		return 0, ErrInsufficientFunds
	}

	if element == defs.ElementNone {
		element = def.PrimaryElement()
	}

	id := g.createTowerEntity(cell, def, element)
	g.Grid.Occupy(cell)
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: id})
	return id, nil
}

func (g *Game) createTowerEntity(cell grid.Cell, def defs.TowerDefinition, element defs.ElementType) types.EntityID {
	id := g.ECS.NewEntity()
	center := g.Grid.CellCenter(cell)
	g.ECS.Positions[id] = &component.Position{X: center.X, Y: 0, Z: center.Z}
	g.ECS.Towers[id] = &component.Tower{
		DefID:   def.ID,
		Level:   1,
		Element: element,
		Cell:    cell,
	}
	g.ECS.Combats[id] = &component.Combat{
		Damage:       def.Combat.Damage,
		FireRate:     def.Combat.FireRate,
		Range:        def.Combat.Range,
		SplashRadius: def.Combat.SplashRadius,
		Behavior:     def.Combat.Behavior,
	}
	g.ECS.Renderables[id] = &component.Renderable{
		Color:     def.Visuals.Color,
		Radius:    float32(def.Visuals.RadiusFactor),
		HasStroke: def.Visuals.StrokeWidth > 0,
	}
	return id
}

// recomputeStats refreshes the cached combat stats from (definition, level).
// Derived stats are never stored independently of the level.
func (g *Game) recomputeStats(id types.EntityID) {
	tower, ok := g.ECS.Towers[id]
	if !ok {
		return
	}
	def, ok := defs.TowerLibrary[tower.DefID]
	if !ok {
		return
	}
	combat, ok := g.ECS.Combats[id]
	if !ok {
		return
	}
	combat.Damage = defs.UpgradedDamage(def, tower.Level)
	combat.FireRate = defs.UpgradedFireRate(def, tower.Level)
	combat.Range = def.Combat.Range
	combat.SplashRadius = def.Combat.SplashRadius
	combat.Behavior = def.Combat.Behavior
}

// UpgradeTower raises the tower one level, paying the curve's cost.
func (g *Game) UpgradeTower(id types.EntityID) error {
	tower, ok := g.ECS.Towers[id]
	if !ok {
		return ErrUnknownTower
	}
	def, ok := defs.TowerLibrary[tower.DefID]
	if !ok {
		return ErrUnknownTower
	}
	cost, upgradeable := defs.UpgradeCost(def, tower.Level)
	if !upgradeable {
		return ErrMaxLevel
	}
	if !g.SpendMoney(cost) {
		return ErrInsufficientFunds
	}
	tower.Level++
	g.recomputeStats(id)
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerUpgraded, Data: id})
	return nil
}

// UpgradeTowerElement swaps the tower's damage element in place. The tower
// keeps its position, level and type. Unknown elements are a no-op failure.
func (g *Game) UpgradeTowerElement(id types.EntityID, el defs.ElementType) bool {
	tower, ok := g.ECS.Towers[id]
	if !ok {
		return false
	}
	if _, known := defs.ElementLibrary[el]; !known {
		return false
	}
	tower.Element = el
	if def, ok := defs.ElementLibrary[el]; ok {
		if r, hasRender := g.ECS.Renderables[id]; hasRender {
			r.Color = def.Color
		}
	}
	return true
}

// UpgradeOptions lists the higher-tier definitions this tower can become,
// given the player's unlocked elements.
func (g *Game) UpgradeOptions(id types.EntityID) []defs.TowerDefinition {
	tower, ok := g.ECS.Towers[id]
	if !ok {
		return nil
	}
	def, ok := defs.TowerLibrary[tower.DefID]
	if !ok {
		return nil
	}
	return defs.UpgradeOptions(def, g.ECS.Progression.Unlocked)
}

// UpgradeTowerDefinition replaces the tower's definition with a valid
// higher-tier target from UpgradeOptions, paying the target's cost. The
// entity, cell and level are preserved; stats are recomputed from the new
// definition at the current level.
func (g *Game) UpgradeTowerDefinition(id types.EntityID, targetDefID string) error {
	tower, ok := g.ECS.Towers[id]
	if !ok {
		return ErrUnknownTower
	}
	target, ok := defs.TowerLibrary[targetDefID]
	if !ok {
		return ErrUnknownTower
	}

	valid := false
	for _, opt := range g.UpgradeOptions(id) {
		if opt.ID == targetDefID {
			valid = true
			break
		}
	}
	if !valid {
		return ErrInvalidUpgrade
	}
	if !g.SpendMoney(target.Cost) {
		return ErrInsufficientFunds
	}

	tower.DefID = target.ID
	tower.Element = target.PrimaryElement()
	g.recomputeStats(id)
	if r, hasRender := g.ECS.Renderables[id]; hasRender {
		r.Color = target.Visuals.Color
	}
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerUpgraded, Data: id})
	return nil
}

// SellTower removes the tower and refunds 70% of everything invested in it.
// Projectiles do not care; only enemies are ever targeted.
func (g *Game) SellTower(id types.EntityID) (int, bool) {
	tower, ok := g.ECS.Towers[id]
	if !ok {
		return 0, false
	}
	def, ok := defs.TowerLibrary[tower.DefID]
	if !ok {
		return 0, false
	}
	refund := defs.RefundAmount(def, tower.Level)
	g.Grid.Release(tower.Cell)
	g.ECS.RemoveEntity(id)
	g.AddMoney(refund)
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerRemoved, Data: id})
	return refund, true
}

// TowerAt finds the tower occupying a cell, 0 when the cell is empty.
func (g *Game) TowerAt(cell grid.Cell) types.EntityID {
	for id, tower := range g.ECS.Towers {
		if tower.Cell == cell {
			return id
		}
	}
	return 0
}
