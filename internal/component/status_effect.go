// internal/component/status_effect.go
package component

// SlowEffect indicates that an entity is slowed.
type SlowEffect struct {
	Timer  float64 // time left on the effect
	Factor float64 // speed multiplier, e.g. 0.5 for 50% slow
}

// RootEffect pins an entity in place until the timer runs out.
type RootEffect struct {
	Timer float64
}

// BurnEffect deals periodic fire damage. TickTimer counts down to the next
// tick independently of further hits.
type BurnEffect struct {
	Timer         float64
	TickTimer     float64
	DamagePerTick int
}

// DecayEffect deals periodic darkness damage; kills while decaying pay a
// small leech bonus on top of the bounty.
type DecayEffect struct {
	Timer         float64
	TickTimer     float64
	DamagePerTick int
	LeechBonus    int
}
