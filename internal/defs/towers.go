// internal/defs/towers.go
package defs

import (
	"image/color"
)

// CombatStats contains parameters related to a tower's combat abilities.
// Range and SplashRadius never change with level; damage and fire rate grow
// per the upgrade curve.
type CombatStats struct {
	Damage       int                `json:"damage"`
	FireRate     float64            `json:"fire_rate"` // shots per second
	Range        float64            `json:"range"`     // world units
	SplashRadius float64            `json:"splash_radius,omitempty"`
	Behavior     AttackBehaviorType `json:"behavior"`
}

// UpgradeCurve describes level progression for a tower type. Level 1 is the
// as-placed state; CostMultipliers[level-1] prices the upgrade from that level.
type UpgradeCurve struct {
	DamageMultiplier   float64   `json:"damage_multiplier"`
	FireRateMultiplier float64   `json:"fire_rate_multiplier"`
	CostMultipliers    []float64 `json:"cost_multipliers"`
	MaxLevel           int       `json:"max_level"`
}

// Visuals contains parameters for rendering a tower.
type Visuals struct {
	Color        color.RGBA `json:"color"`
	RadiusFactor float64    `json:"radius_factor"`
	StrokeWidth  float64    `json:"stroke_width"`
}

// TowerDefinition holds all the static data for a specific type of tower.
type TowerDefinition struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Cost     int           `json:"cost"`
	Elements []ElementType `json:"elements,omitempty"`
	Combat   CombatStats   `json:"combat"`
	Upgrades UpgradeCurve  `json:"upgrades"`
	Visuals  Visuals       `json:"visuals"`
}

// Tier is the number of distinct elements the tower requires.
// The basic tower is tier 0; elemental towers are tier 1 to 3.
func (d TowerDefinition) Tier() int {
	return len(d.Elements)
}

// PrimaryElement is the element a freshly placed tower deals damage with.
func (d TowerDefinition) PrimaryElement() ElementType {
	if len(d.Elements) == 0 {
		return ElementNone
	}
	return d.Elements[0]
}

// HasElement reports whether el is part of the tower's element set.
func (d TowerDefinition) HasElement(el ElementType) bool {
	for _, e := range d.Elements {
		if e == el {
			return true
		}
	}
	return false
}

// TowerLibrary is the catalog of all tower definitions, keyed by ID.
// Populated with the built-in catalog at init; LoadTowerDefinitions can
// replace it from a JSON file.
var TowerLibrary map[string]TowerDefinition

func init() {
	TowerLibrary = make(map[string]TowerDefinition)
	for _, def := range defaultTowers() {
		TowerLibrary[def.ID] = def
	}
}

func defaultTowers() []TowerDefinition {
	stdCurve := UpgradeCurve{
		DamageMultiplier:   1.5,
		FireRateMultiplier: 1.1,
		CostMultipliers:    []float64{1.0, 1.8, 3.2},
		MaxLevel:           4,
	}
	return []TowerDefinition{
		{
			ID: "TOWER_BASIC", Name: "Basic Tower", Cost: 20,
			Combat:   CombatStats{Damage: 10, FireRate: 1.0, Range: 4.0, Behavior: BehaviorProjectile},
			Upgrades: stdCurve,
			Visuals:  Visuals{Color: color.RGBA{180, 180, 180, 255}, RadiusFactor: 0.3, StrokeWidth: 2},
		},
		{
			ID: "TOWER_FIRE", Name: "Fire Tower", Cost: 40, Elements: []ElementType{ElementFire},
			Combat:   CombatStats{Damage: 14, FireRate: 1.2, Range: 4.0, Behavior: BehaviorProjectile},
			Upgrades: stdCurve,
			Visuals:  Visuals{Color: ElementLibrary[ElementFire].Color, RadiusFactor: 0.3, StrokeWidth: 2},
		},
		{
			ID: "TOWER_WATER", Name: "Water Tower", Cost: 40, Elements: []ElementType{ElementWater},
			Combat:   CombatStats{Damage: 10, FireRate: 1.5, Range: 4.5, Behavior: BehaviorProjectile},
			Upgrades: stdCurve,
			Visuals:  Visuals{Color: ElementLibrary[ElementWater].Color, RadiusFactor: 0.3, StrokeWidth: 2},
		},
		{
			ID: "TOWER_NATURE", Name: "Nature Tower", Cost: 40, Elements: []ElementType{ElementNature},
			Combat:   CombatStats{Damage: 12, FireRate: 1.0, Range: 5.0, Behavior: BehaviorProjectile},
			Upgrades: stdCurve,
			Visuals:  Visuals{Color: ElementLibrary[ElementNature].Color, RadiusFactor: 0.3, StrokeWidth: 2},
		},
		{
			ID: "TOWER_LIGHT", Name: "Light Tower", Cost: 45, Elements: []ElementType{ElementLight},
			Combat:   CombatStats{Damage: 16, FireRate: 0.8, Range: 5.5, Behavior: BehaviorProjectile},
			Upgrades: stdCurve,
			Visuals:  Visuals{Color: ElementLibrary[ElementLight].Color, RadiusFactor: 0.3, StrokeWidth: 2},
		},
		{
			ID: "TOWER_DARKNESS", Name: "Darkness Tower", Cost: 45, Elements: []ElementType{ElementDarkness},
			Combat:   CombatStats{Damage: 13, FireRate: 1.1, Range: 4.0, Behavior: BehaviorProjectile},
			Upgrades: stdCurve,
			Visuals:  Visuals{Color: ElementLibrary[ElementDarkness].Color, RadiusFactor: 0.3, StrokeWidth: 2},
		},
		{
			ID: "TOWER_QUAKE", Name: "Quake Tower", Cost: 50, Elements: []ElementType{ElementEarth},
			Combat:   CombatStats{Damage: 8, FireRate: 0.6, Range: 3.0, Behavior: BehaviorArea},
			Upgrades: stdCurve,
			Visuals:  Visuals{Color: ElementLibrary[ElementEarth].Color, RadiusFactor: 0.35, StrokeWidth: 2},
		},
		{
			ID: "TOWER_STEAM", Name: "Steam Tower", Cost: 90,
			Elements: []ElementType{ElementFire, ElementWater},
			Combat:   CombatStats{Damage: 22, FireRate: 1.4, Range: 4.5, Behavior: BehaviorProjectile},
			Upgrades: stdCurve,
			Visuals:  Visuals{Color: color.RGBA{200, 220, 240, 255}, RadiusFactor: 0.32, StrokeWidth: 2},
		},
		{
			ID: "TOWER_MAGMA", Name: "Magma Tower", Cost: 95,
			Elements: []ElementType{ElementFire, ElementEarth},
			Combat:   CombatStats{Damage: 26, FireRate: 0.9, Range: 4.0, SplashRadius: 1.5, Behavior: BehaviorProjectile},
			Upgrades: stdCurve,
			Visuals:  Visuals{Color: color.RGBA{230, 90, 30, 255}, RadiusFactor: 0.32, StrokeWidth: 2},
		},
		{
			ID: "TOWER_SWAMP", Name: "Swamp Tower", Cost: 90,
			Elements: []ElementType{ElementWater, ElementNature},
			Combat:   CombatStats{Damage: 18, FireRate: 1.2, Range: 5.0, Behavior: BehaviorProjectile},
			Upgrades: stdCurve,
			Visuals:  Visuals{Color: color.RGBA{60, 140, 100, 255}, RadiusFactor: 0.32, StrokeWidth: 2},
		},
		{
			ID: "TOWER_ECLIPSE", Name: "Eclipse Tower", Cost: 110,
			Elements: []ElementType{ElementLight, ElementDarkness},
			Combat:   CombatStats{Damage: 14, FireRate: 0.7, Range: 3.5, Behavior: BehaviorArea},
			Upgrades: stdCurve,
			Visuals:  Visuals{Color: color.RGBA{150, 130, 200, 255}, RadiusFactor: 0.35, StrokeWidth: 2},
		},
		{
			ID: "TOWER_VOLCANO", Name: "Volcano Tower", Cost: 180,
			Elements: []ElementType{ElementFire, ElementEarth, ElementNature},
			Combat:   CombatStats{Damage: 40, FireRate: 1.0, Range: 4.5, SplashRadius: 2.0, Behavior: BehaviorProjectile},
			Upgrades: stdCurve,
			Visuals:  Visuals{Color: color.RGBA{255, 60, 0, 255}, RadiusFactor: 0.35, StrokeWidth: 3},
		},
		{
			ID: "TOWER_TEMPEST", Name: "Tempest Tower", Cost: 175,
			Elements: []ElementType{ElementFire, ElementWater, ElementNature},
			Combat:   CombatStats{Damage: 34, FireRate: 1.6, Range: 5.0, Behavior: BehaviorProjectile},
			Upgrades: stdCurve,
			Visuals:  Visuals{Color: color.RGBA{120, 200, 255, 255}, RadiusFactor: 0.35, StrokeWidth: 3},
		},
		{
			ID: "TOWER_TWILIGHT", Name: "Twilight Tower", Cost: 190,
			Elements: []ElementType{ElementLight, ElementDarkness, ElementEarth},
			Combat:   CombatStats{Damage: 24, FireRate: 0.8, Range: 4.0, Behavior: BehaviorArea},
			Upgrades: stdCurve,
			Visuals:  Visuals{Color: color.RGBA{90, 70, 140, 255}, RadiusFactor: 0.38, StrokeWidth: 3},
		},
	}
}
