package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"spellarena/internal/arena"
)

// GameLoop manages the main game update and render cycle
type GameLoop struct {
	game         *ArenaGame
	inputHandler *InputHandler
	ui           *UISystem
}

// NewGameLoop creates a new game loop manager
func NewGameLoop(game *ArenaGame) *GameLoop {
	return &GameLoop{
		game:         game,
		inputHandler: NewInputHandler(game),
		ui:           NewUISystem(game),
	}
}

// Update handles all game logic updates for one frame
func (gl *GameLoop) Update() error {
	frameTimer := gl.game.threading.PerformanceMonitor.StartFrame()
	defer frameTimer.EndFrame()

	gl.game.keys.Update()
	if gl.game.keys.IsKeyJustPressed(ebiten.KeyF3) {
		gl.game.showFPS = !gl.game.showFPS
	}

	switch gl.game.screen {
	case ScreenMenu:
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
		return gl.inputHandler.HandleMenuInput()
	case ScreenShop:
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
		gl.inputHandler.HandleShopInput()
	case ScreenArena:
		gl.updateArena()
	}
	return nil
}

// updateArena feeds one frame of input to the director. The director keeps
// ticking during the prompt and game over so its timeouts fire.
func (gl *GameLoop) updateArena() {
	g := gl.game
	g.tickMessages()

	if g.director.Phase() == arena.PhaseActive || g.director.Phase() == arena.PhaseInterWaveDelay {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	}

	if !gl.inputHandler.HandleArenaKeys() {
		return
	}
	g.director.Update(gl.inputHandler.ReadArenaInput())
}

// Draw handles all rendering for one frame
func (gl *GameLoop) Draw(screen *ebiten.Image) {
	g := gl.game
	if g.screen != ScreenMenu {
		frame := g.composer.Compose(g.director.View(), g.director.Drawables())
		g.drawer.Draw(screen, &frame)
	}
	gl.ui.Draw(screen)
}
