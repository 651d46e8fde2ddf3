// internal/defs/enemies.go
package defs

import "math"

// EnemyDefinition holds all the static data for a specific type of enemy.
// Health and Speed are wave-1 values; later waves scale them.
type EnemyDefinition struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	Health  int         `json:"health"`
	Speed   float64     `json:"speed"`
	Bounty  int         `json:"bounty"`
	Element ElementType `json:"element,omitempty"`
	Visuals Visuals     `json:"visuals"`
}

// EnemyLibrary is the catalog of all enemy definitions, keyed by ID.
var EnemyLibrary map[string]EnemyDefinition

func init() {
	EnemyLibrary = make(map[string]EnemyDefinition)
	for _, def := range defaultEnemies() {
		EnemyLibrary[def.ID] = def
	}
}

func defaultEnemies() []EnemyDefinition {
	return []EnemyDefinition{
		{ID: "ENEMY_GRUNT", Name: "Grunt", Health: 100, Speed: 1.0, Bounty: 5,
			Visuals: Visuals{RadiusFactor: 1.0}},
		{ID: "ENEMY_RUNNER", Name: "Runner", Health: 60, Speed: 1.6, Bounty: 6,
			Visuals: Visuals{RadiusFactor: 0.8}},
		{ID: "ENEMY_BRUTE", Name: "Brute", Health: 220, Speed: 0.7, Bounty: 10,
			Visuals: Visuals{RadiusFactor: 1.3}},
		{ID: "ENEMY_BOSS", Name: "Boss", Health: 800, Speed: 0.6, Bounty: 50,
			Visuals: Visuals{RadiusFactor: 1.8}},
	}
}

// ScaledHealth is the enemy's max health at the given wave:
// base * (1 + 0.2*(wave-1)).
func ScaledHealth(def EnemyDefinition, wave int) int {
	return int(math.Floor(float64(def.Health) * (1.0 + 0.2*float64(wave-1))))
}

// ScaledSpeed is the enemy's speed at the given wave:
// base * (1 + 0.1*(wave-1)).
func ScaledSpeed(def EnemyDefinition, wave int) float64 {
	return def.Speed * (1.0 + 0.1*float64(wave-1))
}
