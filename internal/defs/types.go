// internal/defs/types.go
package defs

// AttackBehaviorType selects how a tower resolves its shots.
type AttackBehaviorType string

const (
	// BehaviorProjectile towers pick the closest enemy in range and fire
	// a homing projectile at it.
	BehaviorProjectile AttackBehaviorType = "PROJECTILE"
	// BehaviorArea towers pulse, damaging every enemy in range at once.
	BehaviorArea AttackBehaviorType = "AREA"
)
