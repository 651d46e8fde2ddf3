// internal/app/progression.go
package app

import (
	"errors"

	"elemental-td/internal/config"
	"elemental-td/internal/defs"
	"elemental-td/internal/event"
)

// Boundary errors. Every failure in this layer is recovered locally by the
// caller; nothing here panics or unwinds across entity boundaries.
var (
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrInvalidPlacement   = errors.New("invalid placement")
	ErrMaxLevel           = errors.New("tower is at maximum level")
	ErrUnknownElement     = errors.New("unknown element")
	ErrUnknownTower       = errors.New("unknown tower")
	ErrInvalidUpgrade     = errors.New("invalid upgrade target")
	ErrNoPendingSelection = errors.New("no element selection pending")
	ErrAlreadyUnlocked    = errors.New("element already unlocked")
	ErrTowerLocked        = errors.New("tower not yet available")
)

// AddMoney credits the player unconditionally.
func (g *Game) AddMoney(amount int) {
	g.ECS.Progression.Money += amount
}

// SpendMoney debits the player. Fails without mutation when the amount
// exceeds the balance.
func (g *Game) SpendMoney(amount int) bool {
	prog := g.ECS.Progression
	if amount > prog.Money {
		return false
	}
	prog.Money -= amount
	return true
}

// AddScore credits score unconditionally.
func (g *Game) AddScore(amount int) {
	g.ECS.Progression.Score += amount
}

// AdvanceWave moves to the next wave, checking element-unlock thresholds
// on the way. Also serves as the manual/debug wave trigger.
func (g *Game) AdvanceWave() {
	prog := g.ECS.Progression
	prog.Wave++
	g.waveTimer = 0
	g.checkUnlockThresholds()
	g.WaveSystem.StartWave(prog.Wave)
}

// checkUnlockThresholds flags a pending element selection when the current
// wave has crossed the next unlock threshold. The flag stays up until the
// player picks; crossing further thresholds while it is up queues nothing
// extra beyond the table's remaining entries.
func (g *Game) checkUnlockThresholds() {
	prog := g.ECS.Progression
	for prog.NextThreshold < len(config.ElementUnlockWaves) &&
		prog.Wave >= config.ElementUnlockWaves[prog.NextThreshold] {
		if prog.PendingSelection {
			break
		}
		prog.PendingSelection = true
		prog.NextThreshold++
		g.EventDispatcher.Dispatch(event.Event{Type: event.ElementChoiceOffered})
	}
}

// ChooseElement consumes the pending selection, growing the unlocked set by
// exactly one member. Picking an already-unlocked or unknown element fails
// and keeps the selection pending.
func (g *Game) ChooseElement(el defs.ElementType) error {
	prog := g.ECS.Progression
	if !prog.PendingSelection {
		return ErrNoPendingSelection
	}
	if _, known := defs.ElementLibrary[el]; !known {
		return ErrUnknownElement
	}
	if prog.Unlocked[el] {
		return ErrAlreadyUnlocked
	}
	prog.Unlocked[el] = true
	prog.PendingSelection = false
	g.EventDispatcher.Dispatch(event.Event{Type: event.ElementUnlocked, Data: el})
	// A threshold crossed while the previous choice was pending takes
	// effect now.
	g.checkUnlockThresholds()
	return nil
}

// AvailableTowers lists the definitions the player can currently buy, based
// on the unlocked element set and per-tier minimums.
func (g *Game) AvailableTowers() []defs.TowerDefinition {
	return defs.AvailableTowers(g.ECS.Progression.Unlocked)
}
