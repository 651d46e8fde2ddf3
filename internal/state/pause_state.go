// internal/state/pause_state.go
package state

import (
	"elemental-td/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PauseState freezes the game underneath and waits for resume.
type PauseState struct {
	sm   *StateMachine
	prev *GameState
}

func NewPauseState(sm *StateMachine, prev *GameState) *PauseState {
	return &PauseState{sm: sm, prev: prev}
}

func (p *PauseState) Enter() {
	p.prev.game.SetPaused(true)
}

func (p *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		p.sm.SetState(p.prev)
	}
}

func (p *PauseState) Draw(screen *ebiten.Image) {
	p.prev.Draw(screen)
	ebitenutil.DebugPrintAt(screen, "PAUSED - press SPACE to resume",
		config.ScreenWidth/2-100, config.ScreenHeight/2)
}

func (p *PauseState) Exit() {
	p.prev.game.SetPaused(false)
}
