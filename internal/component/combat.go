// internal/component/combat.go
package component

import "elemental-td/internal/defs"

// Health holds current and maximum hit points. Value never goes below zero and
// never recovers; an entity at zero is dead and gets removed by its system.
type Health struct {
	Value int
	Max   int
}

// Fraction is the remaining health share for display, in [0,1].
func (h Health) Fraction() float64 {
	if h.Max <= 0 {
		return 0
	}
	f := float64(h.Value) / float64(h.Max)
	if f < 0 {
		return 0
	}
	return f
}

// Combat caches the derived attack stats for a tower. Damage and FireRate are a pure
// function of (definition, level) and are recomputed on every upgrade; they
// are cached here so the hot loop does not touch the curve math.
type Combat struct {
	Damage       int
	FireRate     float64 // shots per second
	FireCooldown float64 // seconds until the next shot is allowed
	Range        float64
	SplashRadius float64
	Behavior     defs.AttackBehaviorType
}

// CanShoot reports whether the fire-rate gate is open.
func (c *Combat) CanShoot() bool {
	return c.FireCooldown <= 0
}

// ResetCooldown closes the gate for one full fire period.
func (c *Combat) ResetCooldown() {
	c.FireCooldown = 1.0 / c.FireRate
}
