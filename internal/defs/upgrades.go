// internal/defs/upgrades.go
package defs

import (
	"math"
	"sort"
)

// UpgradeCost prices the level upgrade from the given level. The second
// return is false when the tower is already at its maximum level.
func UpgradeCost(def TowerDefinition, level int) (int, bool) {
	if level >= def.Upgrades.MaxLevel || level < 1 {
		return 0, false
	}
	if level-1 >= len(def.Upgrades.CostMultipliers) {
		return 0, false
	}
	return int(math.Floor(float64(def.Cost) * def.Upgrades.CostMultipliers[level-1])), true
}

// UpgradedDamage is the tower's damage at the given level:
// floor(base * damageMultiplier^(level-1)).
func UpgradedDamage(def TowerDefinition, level int) int {
	return int(math.Floor(float64(def.Combat.Damage) * math.Pow(def.Upgrades.DamageMultiplier, float64(level-1))))
}

// UpgradedFireRate is the tower's fire rate at the given level, rounded to
// two decimals. Range and splash radius do not scale with level.
func UpgradedFireRate(def TowerDefinition, level int) float64 {
	rate := def.Combat.FireRate * math.Pow(def.Upgrades.FireRateMultiplier, float64(level-1))
	return math.Round(rate*100) / 100
}

// TotalInvestment is the base cost plus every upgrade bought to reach level.
func TotalInvestment(def TowerDefinition, level int) int {
	total := def.Cost
	for l := 1; l < level; l++ {
		cost, ok := UpgradeCost(def, l)
		if !ok {
			break
		}
		total += cost
	}
	return total
}

// RefundAmount is what selling the tower pays back: 70% of the investment,
// floored.
func RefundAmount(def TowerDefinition, level int) int {
	return int(math.Floor(float64(TotalInvestment(def, level)) * 0.7))
}

// isStrictSuperset reports whether target's element set strictly contains
// current's.
func isStrictSuperset(target, current TowerDefinition) bool {
	if len(target.Elements) <= len(current.Elements) {
		return false
	}
	for _, e := range current.Elements {
		if !target.HasElement(e) {
			return false
		}
	}
	return true
}

// allUnlocked reports whether every element the definition requires has been
// unlocked by the player.
func allUnlocked(def TowerDefinition, unlocked map[ElementType]bool) bool {
	for _, e := range def.Elements {
		if !unlocked[e] {
			return false
		}
	}
	return true
}

// UpgradeOptions enumerates the definitions a tower can be upgraded into:
// strictly higher tier, element set a strict superset of the current one,
// and every required element unlocked. Results are sorted by ID so callers
// see a stable order.
func UpgradeOptions(current TowerDefinition, unlocked map[ElementType]bool) []TowerDefinition {
	var options []TowerDefinition
	for _, def := range TowerLibrary {
		if def.Tier() <= current.Tier() {
			continue
		}
		if !isStrictSuperset(def, current) {
			continue
		}
		if !allUnlocked(def, unlocked) {
			continue
		}
		options = append(options, def)
	}
	sort.Slice(options, func(i, j int) bool { return options[i].ID < options[j].ID })
	return options
}

// minElementsForTier is the number of unlocked elements required before a
// tower of the given tier shows up in the shop at all.
func minElementsForTier(tier int) int {
	switch {
	case tier >= 3:
		return 3
	case tier == 2:
		return 2
	default:
		return 0
	}
}

// IsAvailable reports whether the tower can currently be bought: all of its
// elements are unlocked and the player has enough elements unlocked for its
// tier.
func IsAvailable(def TowerDefinition, unlocked map[ElementType]bool) bool {
	if !allUnlocked(def, unlocked) {
		return false
	}
	count := 0
	for _, ok := range unlocked {
		if ok {
			count++
		}
	}
	return count >= minElementsForTier(def.Tier())
}

// AvailableTowers lists every purchasable definition for the unlocked set,
// sorted by cost then ID.
func AvailableTowers(unlocked map[ElementType]bool) []TowerDefinition {
	var defs []TowerDefinition
	for _, def := range TowerLibrary {
		if IsAvailable(def, unlocked) {
			defs = append(defs, def)
		}
	}
	sort.Slice(defs, func(i, j int) bool {
		if defs[i].Cost != defs[j].Cost {
			return defs[i].Cost < defs[j].Cost
		}
		return defs[i].ID < defs[j].ID
	})
	return defs
}
