// internal/defs/elements.go
package defs

import (
	"image/color"
	"math"
)

// ElementType identifies one of the six damage elements.
// The empty string means "no element" (plain physical damage).
type ElementType string

const (
	ElementNone     ElementType = ""
	ElementFire     ElementType = "FIRE"
	ElementWater    ElementType = "WATER"
	ElementNature   ElementType = "NATURE"
	ElementLight    ElementType = "LIGHT"
	ElementDarkness ElementType = "DARKNESS"
	ElementEarth    ElementType = "EARTH"
)

// EffectType is the status effect an elemental hit applies.
type EffectType string

const (
	EffectBurn   EffectType = "BURN"   // damage over time
	EffectSlow   EffectType = "SLOW"   // movement speed multiplier
	EffectRoot   EffectType = "ROOT"   // full stop
	EffectPierce EffectType = "PIERCE" // resistances below 1.0 are ignored
	EffectDecay  EffectType = "DECAY"  // damage over time, kills pay a leech bonus
	EffectSplash EffectType = "SPLASH" // projectiles gain a splash radius
)

// ElementDefinition holds the static data for one element.
type ElementDefinition struct {
	ID     ElementType `json:"id"`
	Name   string      `json:"name"`
	Color  color.RGBA  `json:"color"`
	Effect EffectType  `json:"effect"`
}

// ElementLibrary maps every element to its definition.
var ElementLibrary = map[ElementType]ElementDefinition{
	ElementFire:     {ID: ElementFire, Name: "Fire", Color: color.RGBA{255, 80, 40, 255}, Effect: EffectBurn},
	ElementWater:    {ID: ElementWater, Name: "Water", Color: color.RGBA{60, 140, 255, 255}, Effect: EffectSlow},
	ElementNature:   {ID: ElementNature, Name: "Nature", Color: color.RGBA{70, 200, 80, 255}, Effect: EffectRoot},
	ElementLight:    {ID: ElementLight, Name: "Light", Color: color.RGBA{255, 250, 190, 255}, Effect: EffectPierce},
	ElementDarkness: {ID: ElementDarkness, Name: "Darkness", Color: color.RGBA{120, 60, 180, 255}, Effect: EffectDecay},
	ElementEarth:    {ID: ElementEarth, Name: "Earth", Color: color.RGBA{170, 130, 70, 255}, Effect: EffectSplash},
}

// AllElements lists the elements in a fixed order for deterministic iteration.
var AllElements = []ElementType{
	ElementFire, ElementWater, ElementNature,
	ElementLight, ElementDarkness, ElementEarth,
}

// damageMultipliers is the asymmetric attacker -> defender table. Pairs with
// no entry use a multiplier of 1.0. The values are fixed data, not derived.
var damageMultipliers = map[ElementType]map[ElementType]float64{
	ElementFire: {
		ElementNature: 1.5,
		ElementWater:  0.5,
		ElementEarth:  0.75,
	},
	ElementWater: {
		ElementFire:   1.5,
		ElementNature: 0.75,
		ElementEarth:  1.25,
	},
	ElementNature: {
		ElementWater: 1.5,
		ElementEarth: 1.25,
		ElementFire:  0.5,
	},
	ElementLight: {
		ElementDarkness: 2.0,
		ElementLight:    0.5,
	},
	ElementDarkness: {
		ElementLight:    2.0,
		ElementDarkness: 0.5,
	},
	ElementEarth: {
		ElementFire:  1.25,
		ElementWater: 0.75,
	},
}

// Multiplier looks up the attacker->defender damage factor.
// Returns 1.0 when either side has no element or the pair is not listed.
func Multiplier(attacker, defender ElementType) float64 {
	if attacker == ElementNone || defender == ElementNone {
		return 1.0
	}
	row, ok := damageMultipliers[attacker]
	if !ok {
		return 1.0
	}
	m, ok := row[defender]
	if !ok {
		return 1.0
	}
	return m
}

// ElementalDamage applies the elemental multiplier to a base damage value.
// Pure function: base is returned unchanged when either element is absent.
func ElementalDamage(base int, attacker, defender ElementType) int {
	m := Multiplier(attacker, defender)
	if m == 1.0 {
		return base
	}
	return int(math.Floor(float64(base) * m))
}
