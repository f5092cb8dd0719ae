package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// drawMainMenu renders the title screen
func (ui *UISystem) drawMainMenu(screen *ebiten.Image) {
	w := ui.game.config.GetScreenWidth()
	h := ui.game.config.GetScreenHeight()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), color.RGBA{10, 10, 25, 255}, false)

	panelW, panelH := 360, 260
	px, py := (w-panelW)/2, (h-panelH)/2
	vector.DrawFilledRect(screen, float32(px), float32(py), float32(panelW), float32(panelH), color.RGBA{20, 20, 40, 230}, false)
	vector.StrokeRect(screen, float32(px), float32(py), float32(panelW), float32(panelH), 2, color.RGBA{100, 100, 160, 255}, false)

	lines := []string{
		ui.game.config.Display.WindowTitle,
		"",
		"Enter - Enter the arena",
		"Esc   - Quit",
		"",
		"Controls:",
		"WASD: Move  Shift: Sprint  Space: Jump",
		"Arrows / mouse: Turn",
		"1 / Left click: Cast  2 / Right click: Next spell",
		"F3: Performance",
	}
	if ui.game.lastRun != nil {
		lines = append(lines, "",
			fmt.Sprintf("Last run: %d points, wave %d", ui.game.lastRun.Score, ui.game.lastRun.HighestWave),
			fmt.Sprintf("Best: %d", ui.game.bestScore))
	}
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, px+16, py+14+i*lineHeight)
	}
}

// drawShop renders the upgrade listing
func (ui *UISystem) drawShop(screen *ebiten.Image) {
	w := ui.game.config.GetScreenWidth()
	h := ui.game.config.GetScreenHeight()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), color.RGBA{0, 0, 0, 180}, false)

	p := ui.game.director.Player
	offers := ui.game.shop.Offers(p)

	panelW := 440
	panelH := 110 + len(offers)*24
	px, py := (w-panelW)/2, (h-panelH)/2
	vector.DrawFilledRect(screen, float32(px), float32(py), float32(panelW), float32(panelH), color.RGBA{30, 25, 15, 240}, false)
	vector.StrokeRect(screen, float32(px), float32(py), float32(panelW), float32(panelH), 2, color.RGBA{255, 215, 0, 255}, false)

	lv := p.Levels()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SHOP   Gold: %d   Robes %d  Armor %d", p.Gold, lv.Spell, lv.Armor), px+16, py+12)

	startY := py + 40
	for i, offer := range offers {
		y := startY + i*24
		if i == ui.game.shopSelection {
			vector.DrawFilledRect(screen, float32(px+10), float32(y-4), float32(panelW-20), 22, color.RGBA{60, 120, 180, 200}, false)
		}
		mark := " "
		if !offer.Affordable {
			mark = "x"
		}
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s %-28s %5d", mark, offer.Name, offer.Cost), px+20, y)
	}

	footer := startY + len(offers)*24 + 8
	if ui.game.shopStatus != "" {
		ebitenutil.DebugPrintAt(screen, ui.game.shopStatus, px+16, footer)
	}
	ebitenutil.DebugPrintAt(screen, "Up/Down select  Enter buy  Esc continue", px+16, footer+lineHeight)
}
