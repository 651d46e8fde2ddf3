// internal/state/menu_state.go
package state

import (
	"elemental-td/internal/config"
	"elemental-td/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font/basicfont"
)

// MenuState is the title screen.
type MenuState struct {
	sm          *StateMachine
	startButton *ui.Button
}

func NewMenuState(sm *StateMachine) *MenuState {
	return &MenuState{
		sm: sm,
		startButton: ui.NewButton(
			config.ScreenWidth/2-80, config.ScreenHeight/2, 160, 40,
			"Start", basicfont.Face7x13),
	}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.sm.SetState(NewGameState(m.sm))
		return
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if m.startButton.Contains(ebiten.CursorPosition()) {
			m.sm.SetState(NewGameState(m.sm))
		}
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	ebitenutil.DebugPrintAt(screen, "ELEMENTAL TOWER DEFENSE",
		config.ScreenWidth/2-90, config.ScreenHeight/2-60)
	m.startButton.Draw(screen)
}

func (m *MenuState) Exit() {}
