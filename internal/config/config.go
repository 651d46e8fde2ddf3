// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	MaxDeltaTime = 0.06
	WorldScale   = 28.0 // pixels per world unit when projecting XZ to the screen

	BaseHealth    = 20
	DamagePerLeak = 1
	StartingMoney = 100

	EnemyRadius = 0.35

	WaypointSnapDistance = 0.1
	ProjectileHitRadius  = 0.3
	ProjectileSpeed      = 8.0
	ProjectileMaxRange   = 30.0
	ProjectileRadius     = 0.12
	MuzzleHeight         = 1.2

	StatusTickInterval = 1.0
	EarthSplashRadius  = 1.0
	SlowDuration       = 2.0
	SlowFactor         = 0.5
	RootDuration       = 1.0
	BurnDuration       = 3.0
	BurnDamagePerTick  = 5
	DecayDuration      = 4.0
	DecayDamagePerTick = 3
	DecayLeechBonus    = 2

	KillScore = 10

	// A wave also advances on this timer even if stragglers are still
	// walking; clearing the field early advances immediately.
	WaveDuration = 45.0

	// Every EliteSpawnEvery-th enemy in a wave spawns with a random element.
	EliteSpawnEvery = 4
)

// ElementUnlockWaves lists the wave numbers at which the player is offered
// a new element. One element per threshold, chosen by the player.
var ElementUnlockWaves = []int{1, 4, 8, 12, 16, 20}

var (
	BackgroundColor  = color.RGBA{20, 20, 30, 255}
	PathColor        = color.RGBA{70, 100, 120, 220}
	GridColor        = color.RGBA{40, 45, 60, 255}
	EntryColor       = color.RGBA{0, 255, 0, 255}
	ExitColor        = color.RGBA{255, 0, 0, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	TextDarkColor    = color.RGBA{20, 20, 30, 255}
	EnemyColor       = color.RGBA{200, 200, 200, 255}
	TowerStrokeColor = color.RGBA{255, 255, 255, 255}
	ProjectileColor  = color.RGBA{255, 255, 160, 255}
	HealthBackColor  = color.RGBA{60, 20, 20, 255}
	HealthFrontColor = color.RGBA{60, 220, 60, 255}
	ToastColor       = color.RGBA{255, 215, 0, 255}
)
