// internal/defs/waves.go
package defs

import "time"

// WaveDefinition describes the composition of one enemy wave.
type WaveDefinition struct {
	EnemyID       string        // identifier from the enemy library
	Count         int           // how many enemies spawn
	SpawnInterval time.Duration // delay between spawns
}

// WavePatterns defines the scripted wave sequence, keyed by wave number.
// Waves past the table repeat the late band with continued stat scaling.
var WavePatterns = map[int]WaveDefinition{
	1:  {EnemyID: "ENEMY_GRUNT", Count: 5, SpawnInterval: time.Millisecond * 900},
	2:  {EnemyID: "ENEMY_GRUNT", Count: 7, SpawnInterval: time.Millisecond * 800},
	3:  {EnemyID: "ENEMY_RUNNER", Count: 8, SpawnInterval: time.Millisecond * 600},
	4:  {EnemyID: "ENEMY_GRUNT", Count: 10, SpawnInterval: time.Millisecond * 700},
	5:  {EnemyID: "ENEMY_BRUTE", Count: 6, SpawnInterval: time.Second},
	6:  {EnemyID: "ENEMY_RUNNER", Count: 12, SpawnInterval: time.Millisecond * 500},
	7:  {EnemyID: "ENEMY_GRUNT", Count: 15, SpawnInterval: time.Millisecond * 500},
	8:  {EnemyID: "ENEMY_BRUTE", Count: 8, SpawnInterval: time.Millisecond * 900},
	9:  {EnemyID: "ENEMY_RUNNER", Count: 18, SpawnInterval: time.Millisecond * 400},
	10: {EnemyID: "ENEMY_BOSS", Count: 1, SpawnInterval: time.Second},
}

// PatternFor resolves the wave definition for any wave number. Waves beyond
// the scripted table loop through waves 6..10.
func PatternFor(wave int) WaveDefinition {
	if def, ok := WavePatterns[wave]; ok {
		return def
	}
	repeating := ((wave - 6) % 5) + 6
	if def, ok := WavePatterns[repeating]; ok {
		return def
	}
	return WavePatterns[1]
}
