package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"spellarena/internal/arena"
	"spellarena/internal/character"
	"spellarena/internal/mathutil"
)

// InputHandler handles all user input for the game
type InputHandler struct {
	game        *ArenaGame
	lastCursorX int
	cursorReady bool
}

// NewInputHandler creates a new input handler
func NewInputHandler(game *ArenaGame) *InputHandler {
	return &InputHandler{game: game}
}

// HandleMenuInput starts a run or quits.
func (ih *InputHandler) HandleMenuInput() error {
	keys := ih.game.keys
	if keys.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if keys.IsKeyJustPressed(ebiten.KeyEnter) || keys.IsKeyJustPressed(ebiten.KeySpace) {
		ih.cursorReady = false
		ih.game.StartRun()
	}
	return nil
}

// HandleArenaKeys processes the prompt and screen keys. It returns false when
// the frame was spent switching screens.
func (ih *InputHandler) HandleArenaKeys() bool {
	g := ih.game
	keys := g.keys

	switch g.director.Phase() {
	case arena.PhaseShopPrompt:
		if keys.IsKeyJustPressed(ebiten.KeyY) {
			g.OpenShop()
			return false
		}
		if keys.IsKeyJustPressed(ebiten.KeyN) {
			g.director.DeclineShop()
			return false
		}
	case arena.PhaseGameOver:
		if keys.AnyJustPressed() {
			g.screen = ScreenMenu
			return false
		}
	default:
		if keys.IsKeyJustPressed(ebiten.KeyEscape) {
			g.screen = ScreenMenu
			return false
		}
	}
	return true
}

// ReadArenaInput samples movement, mouse look and spell keys.
func (ih *InputHandler) ReadArenaInput() character.Input {
	var in character.Input
	if !ih.game.director.Phase().Simulating() {
		ih.cursorReady = false
		return in
	}

	in.Forward = ebiten.IsKeyPressed(ebiten.KeyW)
	in.Backward = ebiten.IsKeyPressed(ebiten.KeyS)
	in.StrafeLeft = ebiten.IsKeyPressed(ebiten.KeyA)
	in.StrafeRight = ebiten.IsKeyPressed(ebiten.KeyD)
	in.TurnLeft = ebiten.IsKeyPressed(ebiten.KeyLeft)
	in.TurnRight = ebiten.IsKeyPressed(ebiten.KeyRight)
	in.Sprint = ebiten.IsKeyPressed(ebiten.KeyShiftLeft)
	in.Jump = ebiten.IsKeyPressed(ebiten.KeySpace)

	x, _ := ebiten.CursorPosition()
	if ih.cursorReady {
		in.MouseDX = float64(x - ih.lastCursorX)
	}
	ih.lastCursorX, ih.cursorReady = x, true

	keys := ih.game.keys
	in.Cast = keys.IsKeyJustPressed(ebiten.Key1) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	in.CycleSpell = keys.IsKeyJustPressed(ebiten.Key2) || keys.IsKeyJustPressed(ebiten.Key3) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
	return in
}

// HandleShopInput moves the selection, buys and leaves the shop.
func (ih *InputHandler) HandleShopInput() {
	g := ih.game
	keys := g.keys
	count := len(g.shop.Offers(g.director.Player))

	switch {
	case keys.IsKeyJustPressed(ebiten.KeyEscape) || keys.IsKeyJustPressed(ebiten.KeyN):
		ih.cursorReady = false
		g.LeaveShop()
	case keys.IsKeyJustPressed(ebiten.KeyUp):
		g.shopSelection = mathutil.IntMax(0, g.shopSelection-1)
	case keys.IsKeyJustPressed(ebiten.KeyDown):
		g.shopSelection = mathutil.IntClamp(g.shopSelection+1, 0, mathutil.IntMax(0, count-1))
	case keys.IsKeyJustPressed(ebiten.KeyEnter) || keys.IsKeyJustPressed(ebiten.KeySpace):
		g.BuySelected()
	}
}
