// internal/ui/button.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"elemental-td/internal/config"
)

// Button is a clickable rectangle with a label.
type Button struct {
	X, Y, W, H float32
	Text       string
	TextColor  color.RGBA
	BgColor    color.RGBA
	HoverColor color.RGBA
	Font       font.Face
}

func NewButton(x, y, w, h float32, label string, face font.Face) *Button {
	return &Button{
		X: x, Y: y, W: w, H: h,
		Text:       label,
		TextColor:  config.TextDarkColor,
		BgColor:    color.RGBA{200, 200, 200, 255},
		HoverColor: color.RGBA{160, 160, 160, 255},
		Font:       face,
	}
}

func (b *Button) Contains(mx, my int) bool {
	fx, fy := float32(mx), float32(my)
	return fx >= b.X && fx <= b.X+b.W && fy >= b.Y && fy <= b.Y+b.H
}

func (b *Button) Draw(screen *ebiten.Image) {
	mx, my := ebiten.CursorPosition()
	bg := b.BgColor
	if b.Contains(mx, my) {
		bg = b.HoverColor
	}
	vector.DrawFilledRect(screen, b.X, b.Y, b.W, b.H, bg, true)

	bounds := text.BoundString(b.Font, b.Text)
	tx := int(b.X) + (int(b.W)-bounds.Dx())/2
	ty := int(b.Y) + (int(b.H)+bounds.Dy())/2
	text.Draw(screen, b.Text, b.Font, tx, ty, b.TextColor)
}
