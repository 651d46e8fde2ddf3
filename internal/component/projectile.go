// internal/component/projectile.go
package component

import (
	"elemental-td/internal/defs"
	"elemental-td/internal/types"
)

// Projectile is a homing shot in flight. TargetID is a weak reference: the
// target may die or despawn first, in which case the projectile self-expires
// on its next update instead of registering a hit.
type Projectile struct {
	TargetID     types.EntityID
	Speed        float64
	Damage       int
	Element      defs.ElementType
	SplashRadius float64
	Traveled     float64
	MaxRange     float64
}
