// internal/state/game_state.go
package state

import (
	"fmt"

	"elemental-td/internal/app"
	"elemental-td/internal/config"
	"elemental-td/internal/defs"
	"elemental-td/internal/event"
	"elemental-td/internal/ui"
	"elemental-td/pkg/geom"
	"elemental-td/pkg/grid"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// GameState runs one session: it forwards input to the game core and draws
// the core's snapshots. All gameplay rules live in internal/app and below.
type GameState struct {
	sm   *StateMachine
	game *app.Game

	hud           *ui.HUD
	toast         *ui.Toast
	selectedTower int
}

func NewGameState(sm *StateMachine) *GameState {
	gameLogic := app.NewGame(grid.DefaultLevel(), 0)
	face := basicfont.Face7x13

	gs := &GameState{
		sm:    sm,
		game:  gameLogic,
		hud:   ui.NewHUD(face),
		toast: ui.NewToast(face),
	}
	gameLogic.EventDispatcher.Subscribe(event.ElementUnlocked, gs)
	return gs
}

func (g *GameState) Enter() {}

func (g *GameState) OnEvent(e event.Event) {
	if e.Type == event.ElementUnlocked {
		if el, ok := e.Data.(defs.ElementType); ok {
			g.toast.Show(fmt.Sprintf("%s unlocked!", defs.ElementLibrary[el].Name), 3.0)
		}
	}
}

func (g *GameState) Update(deltaTime float64) {
	g.handleInput()
	g.game.Update(deltaTime)
	g.toast.Update(deltaTime)
}

func (g *GameState) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		switch g.game.GameSpeed() {
		case 1.0:
			g.game.SetGameSpeed(2.0)
		case 2.0:
			g.game.SetGameSpeed(4.0)
		default:
			g.game.SetGameSpeed(1.0)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.game.AdvanceWave()
	}

	if g.game.ECS.Progression.PendingSelection {
		for i, el := range defs.AllElements {
			if inpututil.IsKeyJustPressed(ebiten.Key1 + ebiten.Key(i)) {
				if err := g.game.ChooseElement(el); err != nil {
					g.toast.Show(err.Error(), 2.0)
				}
			}
		}
	} else {
		shop := g.game.AvailableTowers()
		for i := 0; i < len(shop) && i < 9; i++ {
			if inpututil.IsKeyJustPressed(ebiten.Key1 + ebiten.Key(i)) {
				g.selectedTower = i
			}
		}
	}

	cell := g.cellUnderCursor()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		shop := g.game.AvailableTowers()
		if g.selectedTower < len(shop) {
			if _, err := g.game.PlaceTower(cell, shop[g.selectedTower].ID, defs.ElementNone); err != nil {
				g.toast.Show(err.Error(), 2.0)
			}
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		if id := g.game.TowerAt(cell); id != 0 {
			g.game.SellTower(id)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyU) {
		if id := g.game.TowerAt(cell); id != 0 {
			if err := g.game.UpgradeTower(id); err != nil {
				g.toast.Show(err.Error(), 2.0)
			}
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		if id := g.game.TowerAt(cell); id != 0 {
			if options := g.game.UpgradeOptions(id); len(options) > 0 {
				if err := g.game.UpgradeTowerDefinition(id, options[0].ID); err != nil {
					g.toast.Show(err.Error(), 2.0)
				}
			}
		}
	}
}

func (g *GameState) cellUnderCursor() grid.Cell {
	mx, my := ebiten.CursorPosition()
	world := geom.Vec3{
		X: (float64(mx) - config.ScreenWidth/2) / config.WorldScale,
		Z: (float64(my) - config.ScreenHeight/2) / config.WorldScale,
	}
	return g.game.Grid.CellAt(world)
}

func project(p geom.Vec3) (float32, float32) {
	return float32(config.ScreenWidth/2 + p.X*config.WorldScale),
		float32(config.ScreenHeight/2 + p.Z*config.WorldScale)
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	g.drawGrid(screen)

	// Path.
	path := g.game.Grid.Path()
	for i := 0; i+1 < len(path); i++ {
		x1, y1 := project(path[i])
		x2, y2 := project(path[i+1])
		vector.StrokeLine(screen, x1, y1, x2, y2, 8, config.PathColor, true)
	}
	if len(path) > 0 {
		ex, ey := project(path[0])
		vector.DrawFilledCircle(screen, ex, ey, 6, config.EntryColor, true)
		xx, xy := project(path[len(path)-1])
		vector.DrawFilledCircle(screen, xx, xy, 6, config.ExitColor, true)
	}

	for _, snap := range g.game.SnapshotTowers() {
		x, y := project(snap.Position)
		r := snap.Radius * config.WorldScale
		vector.DrawFilledCircle(screen, x, y, r, snap.Color, true)
		if snap.HasStroke {
			vector.StrokeCircle(screen, x, y, r, 1.5, config.TowerStrokeColor, true)
		}
	}

	for _, snap := range g.game.SnapshotEnemies() {
		x, y := project(snap.Position)
		r := snap.Radius * config.WorldScale
		vector.DrawFilledCircle(screen, x, y, r, snap.Color, true)
		// Health bar.
		w := r * 2
		vector.DrawFilledRect(screen, x-r, y-r-6, w, 3, config.HealthBackColor, false)
		vector.DrawFilledRect(screen, x-r, y-r-6, w*float32(snap.HealthFraction), 3, config.HealthFrontColor, false)
	}

	for _, snap := range g.game.SnapshotProjectiles() {
		x, y := project(snap.Position)
		vector.DrawFilledCircle(screen, x, y, snap.Radius*config.WorldScale, snap.Color, true)
	}

	g.hud.Draw(screen, g.game.SnapshotHUD(), g.game.GameSpeed(), g.game.Paused())
	g.drawShop(screen)
	g.toast.Draw(screen)

	if g.game.Over() {
		ebitenutil.DebugPrintAt(screen, "GAME OVER", config.ScreenWidth/2-30, config.ScreenHeight/2)
	}
}

func (g *GameState) drawGrid(screen *ebiten.Image) {
	gr := g.game.Grid
	halfW := float64(gr.Cols) * gr.CellSize / 2
	halfH := float64(gr.Rows) * gr.CellSize / 2
	for c := 0; c <= gr.Cols; c++ {
		x := float64(c)*gr.CellSize - halfW
		x1, y1 := project(geom.Vec3{X: x, Z: -halfH})
		x2, y2 := project(geom.Vec3{X: x, Z: halfH})
		vector.StrokeLine(screen, x1, y1, x2, y2, 1, config.GridColor, false)
	}
	for r := 0; r <= gr.Rows; r++ {
		z := float64(r)*gr.CellSize - halfH
		x1, y1 := project(geom.Vec3{X: -halfW, Z: z})
		x2, y2 := project(geom.Vec3{X: halfW, Z: z})
		vector.StrokeLine(screen, x1, y1, x2, y2, 1, config.GridColor, false)
	}
}

func (g *GameState) drawShop(screen *ebiten.Image) {
	shop := g.game.AvailableTowers()
	y := config.ScreenHeight - 24*len(shop) - 8
	for i, def := range shop {
		marker := "  "
		if i == g.selectedTower {
			marker = "> "
		}
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("%s%d. %s ($%d)", marker, i+1, def.Name, def.Cost), 16, y+24*i)
	}
}

func (g *GameState) Exit() {}
