// internal/ui/hud.go
package ui

import (
	"fmt"

	"elemental-td/internal/app"
	"elemental-td/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// HUD draws the progression counters along the top of the screen.
type HUD struct {
	Font font.Face
}

func NewHUD(face font.Face) *HUD {
	return &HUD{Font: face}
}

func (h *HUD) Draw(screen *ebiten.Image, snap app.HUDSnapshot, speed float64, paused bool) {
	line := fmt.Sprintf("Wave %d   $%d   Score %d   Base %d   Enemies %d   x%.0f",
		snap.Wave, snap.Money, snap.Score, snap.BaseHealth, snap.LiveEnemies, speed)
	if paused {
		line += "   PAUSED"
	}
	text.Draw(screen, line, h.Font, 16, 24, config.TextLightColor)

	if len(snap.Unlocked) > 0 {
		elems := "Elements:"
		for _, el := range snap.Unlocked {
			elems += " " + string(el)
		}
		text.Draw(screen, elems, h.Font, 16, 44, config.TextLightColor)
	}
	if snap.PendingSelection {
		text.Draw(screen, "Choose an element! (keys 1-6: FIRE WATER NATURE LIGHT DARKNESS EARTH)",
			h.Font, 16, 64, config.ToastColor)
	}
}
