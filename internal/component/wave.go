// internal/component/wave.go
package component

import "elemental-td/pkg/geom"

// Wave is the wave currently in progress.
type Wave struct {
	Number         int
	EnemyID        string
	EnemiesToSpawn int
	Spawned        int // total spawned this wave, drives elite selection
	SpawnTimer     float64
	SpawnInterval  float64
	Path           []geom.Vec3
}
