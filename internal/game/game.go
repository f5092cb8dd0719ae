// Package game is the windowed front end: it maps ebiten input onto the
// arena, reacts to session signals and draws the composed frame plus HUD.
package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"spellarena/internal/arena"
	"spellarena/internal/config"
	"spellarena/internal/event"
	"spellarena/internal/game/keytracker"
	"spellarena/internal/graphics"
	"spellarena/internal/render"
	"spellarena/internal/threading"
)

// Screen is the top-level view currently shown.
type Screen int

const (
	ScreenMenu Screen = iota
	ScreenArena
	ScreenShop
)

const messageFrames = 180

type combatMessage struct {
	text string
	ttl  int
}

// ArenaGame implements ebiten.Game on top of a WaveDirector.
type ArenaGame struct {
	config    *config.Config
	director  *arena.WaveDirector
	shop      *arena.Shop
	composer  *render.Composer
	drawer    *graphics.FrameDrawer
	palette   graphics.Palette
	minimap   graphics.Minimap
	threading *threading.ThreadingComponents

	gameLoop *GameLoop
	keys     *keytracker.Tracker

	screen Screen

	combatMessages []combatMessage
	maxMessages    int

	shopSelection int
	shopStatus    string

	showFPS   bool
	bestScore int
	lastRun   *arena.GameOverInfo
}

var trackedKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3,
	ebiten.KeyY, ebiten.KeyN,
	ebiten.KeyUp, ebiten.KeyDown,
	ebiten.KeyEnter, ebiten.KeySpace, ebiten.KeyEscape,
	ebiten.KeyF3,
}

// NewArenaGame wires the front end. The run starts from the menu.
func NewArenaGame(cfg *config.Config, director *arena.WaveDirector, composer *render.Composer, tc *threading.ThreadingComponents, spriteDir string) *ArenaGame {
	palette := graphics.NewPalette(cfg.Graphics)
	g := &ArenaGame{
		config:      cfg,
		director:    director,
		shop:        arena.NewShop(cfg),
		composer:    composer,
		drawer:      graphics.NewFrameDrawer(palette, graphics.NewSpriteManager(spriteDir)),
		palette:     palette,
		minimap:     graphics.Minimap{X: float32(cfg.GetScreenWidth() - 130), Y: 10, Scale: 6},
		threading:   tc,
		keys:        keytracker.New(trackedKeys...),
		screen:      ScreenMenu,
		maxMessages: 4,
	}

	director.SetMonitor(tc.PerformanceMonitor)
	composer.SetMonitor(tc.PerformanceMonitor)
	director.Events().Subscribe(g.handleEvent,
		event.WaveStarted, event.BossSpawned, event.EntityKilled,
		event.ShopPrompt, event.GameOver, event.ReturnToMenu)

	g.gameLoop = NewGameLoop(g)
	return g
}

func (g *ArenaGame) Update() error {
	return g.gameLoop.Update()
}

func (g *ArenaGame) Draw(screen *ebiten.Image) {
	g.gameLoop.Draw(screen)
}

func (g *ArenaGame) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.config.GetScreenWidth(), g.config.GetScreenHeight()
}

// StartRun begins a fresh arena run from wave 1.
func (g *ArenaGame) StartRun() {
	g.combatMessages = g.combatMessages[:0]
	g.director.InitializeArena()
	g.screen = ScreenArena
}

// OpenShop switches to the shop listing while the prompt is up.
func (g *ArenaGame) OpenShop() {
	if g.director.Phase() != arena.PhaseShopPrompt {
		return
	}
	g.shopSelection = 0
	g.shopStatus = ""
	g.screen = ScreenShop
}

// LeaveShop resumes the arena at the next wave.
func (g *ArenaGame) LeaveShop() {
	g.director.ContinueFromShop()
	g.screen = ScreenArena
}

// BuySelected purchases the highlighted shop offer.
func (g *ArenaGame) BuySelected() {
	offers := g.shop.Offers(g.director.Player)
	if len(offers) == 0 {
		return
	}
	if g.shopSelection >= len(offers) {
		g.shopSelection = len(offers) - 1
	}
	offer := offers[g.shopSelection]
	if err := g.shop.Buy(g.director.Player, offer.Key); err != nil {
		g.shopStatus = fmt.Sprintf("Cannot buy %s: %v", offer.Name, err)
		return
	}
	g.shopStatus = fmt.Sprintf("Bought %s", offer.Name)
}

func (g *ArenaGame) handleEvent(e event.Event) {
	switch e.Type {
	case event.WaveStarted:
		if info, ok := e.Data.(arena.WaveInfo); ok && info.Boss {
			g.AddCombatMessage(fmt.Sprintf("Wave %d: a boss approaches!", e.Wave))
		} else {
			g.AddCombatMessage(fmt.Sprintf("Wave %d begins", e.Wave))
		}
	case event.BossSpawned:
		if name, ok := e.Data.(string); ok {
			g.AddCombatMessage(fmt.Sprintf("%s has entered the arena", name))
		}
	case event.EntityKilled:
		kill, ok := e.Data.(arena.KillInfo)
		if !ok {
			return
		}
		if kill.Score > 0 {
			g.AddCombatMessage(fmt.Sprintf("%s slain (+%d gold)", kill.Name, kill.Score))
		} else {
			g.AddCombatMessage(fmt.Sprintf("%s fades away", kill.Name))
		}
	case event.ShopPrompt:
		g.AddCombatMessage("Boss defeated!")
	case event.GameOver:
		if info, ok := e.Data.(arena.GameOverInfo); ok {
			g.lastRun = &info
			if info.Score > g.bestScore {
				g.bestScore = info.Score
			}
		}
	case event.ReturnToMenu:
		g.screen = ScreenMenu
	}
}

// AddCombatMessage adds a combat message to the message queue
func (g *ArenaGame) AddCombatMessage(message string) {
	g.combatMessages = append(g.combatMessages, combatMessage{text: message, ttl: messageFrames})
	if len(g.combatMessages) > g.maxMessages {
		g.combatMessages = g.combatMessages[len(g.combatMessages)-g.maxMessages:]
	}
}

// GetCombatMessages returns the live messages, oldest first.
func (g *ArenaGame) GetCombatMessages() []string {
	out := make([]string, len(g.combatMessages))
	for i, m := range g.combatMessages {
		out[i] = m.text
	}
	return out
}

func (g *ArenaGame) tickMessages() {
	live := g.combatMessages[:0]
	for _, m := range g.combatMessages {
		m.ttl--
		if m.ttl > 0 {
			live = append(live, m)
		}
	}
	g.combatMessages = live
}

func (g *ArenaGame) Screen() Screen {
	return g.screen
}
