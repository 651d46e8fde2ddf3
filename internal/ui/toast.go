// internal/ui/toast.go
package ui

import (
	"elemental-td/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// Toast shows a transient message, used for element-unlock notifications.
type Toast struct {
	Font    font.Face
	message string
	timer   float64
}

func NewToast(face font.Face) *Toast {
	return &Toast{Font: face}
}

func (t *Toast) Show(message string, seconds float64) {
	t.message = message
	t.timer = seconds
}

func (t *Toast) Update(deltaTime float64) {
	if t.timer > 0 {
		t.timer -= deltaTime
	}
}

func (t *Toast) Draw(screen *ebiten.Image) {
	if t.timer <= 0 {
		return
	}
	bounds := text.BoundString(t.Font, t.message)
	x := (config.ScreenWidth - bounds.Dx()) / 2
	text.Draw(screen, t.message, t.Font, x, 100, config.ToastColor)
}
