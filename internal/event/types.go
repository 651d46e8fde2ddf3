// internal/event/types.go
package event

import (
	"elemental-td/internal/defs"
	"elemental-td/internal/types"
)

const (
	EnemyKilled          EventType = "EnemyKilled"          // payload: EnemyKilledData
	EnemyReachedEnd      EventType = "EnemyReachedEnd"      // payload: types.EntityID
	WaveStarted          EventType = "WaveStarted"          // payload: wave number (int)
	WaveEnded            EventType = "WaveEnded"            // payload: wave number (int)
	TowerPlaced          EventType = "TowerPlaced"          // payload: types.EntityID
	TowerUpgraded        EventType = "TowerUpgraded"        // payload: types.EntityID
	TowerRemoved         EventType = "TowerRemoved"         // payload: types.EntityID
	ElementChoiceOffered EventType = "ElementChoiceOffered" // payload: nil
	ElementUnlocked      EventType = "ElementUnlocked"      // payload: defs.ElementType
)

// EnemyKilledData describes a kill for the progression listener.
type EnemyKilledData struct {
	ID         types.EntityID
	Bounty     int
	LeechBonus int
	Element    defs.ElementType
}
