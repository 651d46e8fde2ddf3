// internal/component/progression.go
package component

import "elemental-td/internal/defs"

// Progression is the player-facing session state: economy, score, wave
// counter, base health and the element unlock machinery. Lives on the ECS
// as a singleton.
type Progression struct {
	Money       int
	Score       int
	Wave        int
	BaseHealth  int
	LiveEnemies int

	// Unlocked only ever grows; one element is added per consumed selection.
	Unlocked map[defs.ElementType]bool
	// PendingSelection gates the "pick an element" prompt. Set when a wave
	// threshold is crossed, cleared by exactly one ChooseElement call.
	PendingSelection bool
	// NextThreshold indexes into the unlock wave table.
	NextThreshold int
}

func NewProgression(startingMoney, baseHealth int) *Progression {
	return &Progression{
		Money:      startingMoney,
		Wave:       1,
		BaseHealth: baseHealth,
		Unlocked:   make(map[defs.ElementType]bool),
	}
}

// UnlockedCount is the number of elements the player has picked so far.
func (p *Progression) UnlockedCount() int {
	n := 0
	for _, ok := range p.Unlocked {
		if ok {
			n++
		}
	}
	return n
}
