package termview

import (
	"io"
	"log"
	"math/rand"
	"os"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spellarena/internal/arena"
	"spellarena/internal/character"
	"spellarena/internal/clock"
	"spellarena/internal/config"
	"spellarena/internal/raycast"
	"spellarena/internal/render"
	"spellarena/internal/world"
)

func newTestTerminal(t *testing.T) (*Terminal, *clock.Manual) {
	t.Helper()
	log.SetOutput(io.Discard)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	cfg := config.Default()
	grid := world.NewArenaGrid(cfg)
	clk := clock.NewManual()
	director := arena.NewWaveDirector(cfg, grid, character.NewPlayer(cfg.Player), clk, rand.New(rand.NewSource(3)), nil)
	composer := render.NewComposer(raycast.NewCaster(grid, raycast.SettingsFromConfig(cfg), nil), cfg.Graphics.ViewBobFactor)
	return New(nil, cfg, director, composer, clk), clk
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestRowSpan(t *testing.T) {
	tests := []struct {
		name        string
		top, height float64
		scale       float64
		rows        int
		start, end  int
	}{
		{"inside", 150, 300, 0.05, 30, 7, 23},
		{"clamped", -100, 800, 0.05, 30, 0, 30},
		{"empty", 300, 0, 0.05, 30, 15, 15},
		{"below screen", 700, 100, 0.05, 30, 35, 35},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := rowSpan(tt.top, tt.height, tt.scale, tt.rows)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
		})
	}
}

func TestColumnFor(t *testing.T) {
	assert.Equal(t, 0, columnFor(0, 80, 400))
	assert.Equal(t, 200, columnFor(40, 80, 400))
	assert.Equal(t, 395, columnFor(79, 80, 400))
	assert.Equal(t, 0, columnFor(5, 0, 400))
}

func TestShadeRune(t *testing.T) {
	assert.Equal(t, '█', shadeRune(1))
	assert.Equal(t, '▒', shadeRune(0.4))
	assert.Equal(t, '░', shadeRune(0))
	assert.Equal(t, '█', shadeRune(1.5))
}

func TestHandleEvent_MenuStartsRunAndQuits(t *testing.T) {
	term, _ := newTestTerminal(t)

	assert.True(t, term.HandleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)))
	assert.Equal(t, modeArena, term.mode)
	assert.Equal(t, arena.PhaseActive, term.director.Phase())
	assert.Equal(t, []string{"Wave 1 begins"}, term.messages)

	assert.True(t, term.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.Equal(t, modeMenu, term.mode)
	assert.False(t, term.HandleEvent(runeKey('q')))
	assert.False(t, term.HandleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone)))
}

func TestInput_HeldKeysExpire(t *testing.T) {
	term, clk := newTestTerminal(t)
	term.mode = modeArena

	term.HandleEvent(runeKey('W'))
	term.HandleEvent(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	term.HandleEvent(runeKey('f'))

	in := term.Input()
	assert.True(t, in.Forward)
	assert.True(t, in.Sprint)
	assert.True(t, in.TurnLeft)
	assert.True(t, in.Cast)

	clk.Advance(50 * time.Millisecond)
	in = term.Input()
	assert.True(t, in.Forward)
	assert.False(t, in.Cast, "casts fire once per press")

	clk.Advance(holdDuration)
	assert.Equal(t, character.Input{}, term.Input())
	assert.Empty(t, term.held)
}

func TestShopPromptKeys(t *testing.T) {
	term, clk := newTestTerminal(t)
	term.HandleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))

	d := term.director
	for d.Phase() != arena.PhaseShopPrompt {
		for _, e := range d.Enemies() {
			e.Kill()
		}
		for _, b := range d.Bosses() {
			b.Kill()
		}
		clk.Advance(3 * time.Second)
		term.Step()
		require.LessOrEqual(t, d.Wave(), 5)
	}
	assert.Contains(t, term.messages, "Boss defeated! Visit the shop? (y/n)")

	term.HandleEvent(runeKey('y'))
	require.Equal(t, modeShop, term.mode)

	d.Player.Gold = 1000
	term.HandleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	assert.Equal(t, "Bought Apprentice Robes", term.shopStatus)
	assert.Equal(t, 600, d.Player.Gold)

	term.HandleEvent(runeKey('n'))
	assert.Equal(t, modeArena, term.mode)
	assert.Equal(t, 6, d.Wave())
}

func TestGameOverReturnsToMenu(t *testing.T) {
	term, clk := newTestTerminal(t)
	term.HandleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))

	term.director.Player.Health = 0
	clk.Advance(16 * time.Millisecond)
	term.Step()
	require.Equal(t, arena.PhaseGameOver, term.director.Phase())

	clk.Advance(5 * time.Second)
	term.Step()
	assert.Equal(t, modeMenu, term.mode)
}
