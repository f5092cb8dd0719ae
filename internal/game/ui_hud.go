package game

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"spellarena/internal/arena"
	"spellarena/internal/spells"
)

const lineHeight = 16

// UISystem draws everything on top of the 3D view.
type UISystem struct {
	game *ArenaGame
}

func NewUISystem(game *ArenaGame) *UISystem {
	return &UISystem{game: game}
}

func (ui *UISystem) Draw(screen *ebiten.Image) {
	switch ui.game.screen {
	case ScreenMenu:
		ui.drawMainMenu(screen)
	case ScreenShop:
		ui.drawShop(screen)
	case ScreenArena:
		ui.drawGameplayUI(screen)
		ui.drawPhaseOverlay(screen)
	}
	if ui.game.showFPS {
		ui.drawFPSCounter(screen)
	}
}

// drawGameplayUI draws core gameplay UI elements
func (ui *UISystem) drawGameplayUI(screen *ebiten.Image) {
	ui.drawPlayerBars(screen)
	ui.drawStatus(screen)
	ui.drawBossBars(screen)
	ui.drawCrosshair(screen)
	ui.drawCombatMessages(screen)

	d := ui.game.director
	p := d.Player
	ui.game.minimap.Draw(screen, d.Grid(), ui.game.palette, p.X, p.Y, p.Angle, d.Drawables())
}

func drawBar(screen *ebiten.Image, x, y, w, h float32, fraction float64, bg, fill color.RGBA, label string) {
	fraction = math.Max(0, math.Min(1, fraction))
	vector.DrawFilledRect(screen, x, y, w, h, bg, false)
	vector.DrawFilledRect(screen, x, y, w*float32(fraction), h, fill, false)
	vector.StrokeRect(screen, x, y, w, h, 2, color.White, false)
	ebitenutil.DebugPrintAt(screen, label, int(x)+6, int(y)+int(h)/2-8)
}

// healthColor goes green, yellow, red as health drops.
func healthColor(fraction float64) color.RGBA {
	switch {
	case fraction > 0.6:
		return color.RGBA{0, 200, 0, 255}
	case fraction > 0.3:
		return color.RGBA{220, 200, 0, 255}
	default:
		return color.RGBA{220, 0, 0, 255}
	}
}

func (ui *UISystem) drawPlayerBars(screen *ebiten.Image) {
	p := ui.game.director.Player
	hp := p.Health / p.MaxHealth()
	mp := p.Mana / p.MaxMana()

	drawBar(screen, 10, 10, 200, 25, hp, color.RGBA{139, 0, 0, 255}, healthColor(hp),
		fmt.Sprintf("Health: %d/%d", int(p.Health), int(p.MaxHealth())))
	drawBar(screen, 10, 45, 200, 25, mp, color.RGBA{0, 0, 50, 255}, color.RGBA{0, 0, 255, 255},
		fmt.Sprintf("Mana: %d/%d", int(p.Mana), int(p.MaxMana())))
}

func (ui *UISystem) drawStatus(screen *ebiten.Image) {
	d := ui.game.director
	p := d.Player

	spell := p.CurrentSpell()
	if def, ok := d.Casting().Book().Get(spells.SpellType(spell)); ok {
		spell = fmt.Sprintf("%s (%d mana)", def.Name, int(def.Cost))
	}

	lines := []string{
		fmt.Sprintf("Wave %d", d.Wave()),
		fmt.Sprintf("Score: %d  Gold: %d", p.Score, p.Gold),
		fmt.Sprintf("Enemies: %d  Bosses: %d", len(d.Enemies()), len(d.Bosses())),
		"Spell: " + spell,
	}
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, 10, 80+i*lineHeight)
	}

	h := ui.game.config.GetScreenHeight()
	ebitenutil.DebugPrintAt(screen, "WASD move  Arrows/mouse turn  1/LMB cast  2/RMB spell  Space jump  Esc menu", 10, h-20)
}

// drawBossBars shows one bar per real boss across the top centre.
func (ui *UISystem) drawBossBars(screen *ebiten.Image) {
	w := float32(ui.game.config.GetScreenWidth())
	y := float32(10)
	for _, b := range ui.game.director.Bosses() {
		if !b.IsReal || !b.IsAlive() {
			continue
		}
		label := b.Name
		if b.Raging {
			label += " (ENRAGED)"
		}
		drawBar(screen, w/2-150, y, 300, 18, b.HealthFraction(), color.RGBA{60, 0, 0, 255}, b.DisplayColor(), label)
		y += 24
	}
}

func (ui *UISystem) drawCrosshair(screen *ebiten.Image) {
	cx := float32(ui.game.config.GetScreenWidth()) / 2
	cy := float32(ui.game.config.GetScreenHeight()) / 2
	vector.StrokeLine(screen, cx-8, cy, cx+8, cy, 1, color.White, false)
	vector.StrokeLine(screen, cx, cy-8, cx, cy+8, 1, color.White, false)
}

func (ui *UISystem) drawCombatMessages(screen *ebiten.Image) {
	h := ui.game.config.GetScreenHeight()
	messages := ui.game.GetCombatMessages()
	for i, msg := range messages {
		ebitenutil.DebugPrintAt(screen, msg, 10, h-40-(len(messages)-i)*lineHeight)
	}
}

// drawPhaseOverlay draws the countdowns and prompts of the wave phases.
func (ui *UISystem) drawPhaseOverlay(screen *ebiten.Image) {
	d := ui.game.director
	cfg := ui.game.config.Waves
	elapsed := d.PhaseElapsed().Seconds()

	switch d.Phase() {
	case arena.PhaseInterWaveDelay:
		left := math.Max(0, float64(cfg.InterWaveDelayMs)/1000-elapsed)
		ui.drawCenteredBox(screen, []string{
			fmt.Sprintf("Wave %d cleared", d.Wave()),
			fmt.Sprintf("Next wave in %.0fs", math.Ceil(left)),
		}, color.RGBA{100, 160, 100, 255})
	case arena.PhaseShopPrompt:
		left := math.Max(0, float64(cfg.ShopPromptTimeoutMs)/1000-elapsed)
		ui.drawCenteredBox(screen, []string{
			"BOSS DEFEATED!",
			fmt.Sprintf("Wave %d complete", d.Wave()),
			"",
			"Visit the shop for upgrades?",
			"Y - Open shop",
			"N - Continue fighting",
			"",
			fmt.Sprintf("Auto-continue in %.0fs", math.Ceil(left)),
		}, color.RGBA{255, 215, 0, 255})
	case arena.PhaseGameOver:
		p := d.Player
		ui.drawCenteredBox(screen, []string{
			"YOU HAVE FALLEN",
			fmt.Sprintf("Score: %d", p.Score),
			fmt.Sprintf("Highest wave: %d", p.HighestWave),
			"",
			"Press any key",
		}, color.RGBA{200, 0, 0, 255})
	}
}

func (ui *UISystem) drawCenteredBox(screen *ebiten.Image, lines []string, border color.RGBA) {
	sw, sh := ui.game.config.GetScreenWidth(), ui.game.config.GetScreenHeight()
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}
	padding := 16
	w := maxLen*7 + padding*2
	h := len(lines)*lineHeight + padding*2
	x, y := (sw-w)/2, (sh-h)/2

	vector.DrawFilledRect(screen, 0, 0, float32(sw), float32(sh), color.RGBA{0, 0, 0, 100}, false)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), color.RGBA{40, 40, 40, 230}, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 3, border, false)
	for i, line := range lines {
		lx := x + (w-len(line)*7)/2
		ebitenutil.DebugPrintAt(screen, line, lx, y+padding+i*lineHeight)
	}
}

// drawFPSCounter draws the FPS counter in the top-right corner
func (ui *UISystem) drawFPSCounter(screen *ebiten.Image) {
	m := ui.game.threading.PerformanceMonitor.GetCurrentMetrics()
	lines := []string{
		fmt.Sprintf("FPS: %.1f", ebiten.ActualFPS()),
		fmt.Sprintf("TPS: %.1f", ebiten.ActualTPS()),
		fmt.Sprintf("Raycast: %s", m.LastRaycast),
		fmt.Sprintf("Entities: %s", m.LastEntityUpdate),
	}
	x := ui.game.config.GetScreenWidth() - 180
	y := 140
	vector.DrawFilledRect(screen, float32(x), float32(y), 170, float32(len(lines)*lineHeight+12), color.RGBA{0, 0, 0, 120}, false)
	ebitenutil.DebugPrintAt(screen, strings.Join(lines, "\n"), x+6, y+6)
}
