// Package termview plays the arena inside a terminal using tcell.
package termview

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"spellarena/internal/arena"
	"spellarena/internal/character"
	"spellarena/internal/clock"
	"spellarena/internal/config"
	"spellarena/internal/event"
	"spellarena/internal/graphics"
	"spellarena/internal/render"
)

const (
	tickInterval = 16 * time.Millisecond
	// Terminals report key presses but not releases, so a press counts as
	// held until the autorepeat stops refreshing it.
	holdDuration = 150 * time.Millisecond
	maxMessages  = 3
)

type mode int

const (
	modeMenu mode = iota
	modeArena
	modeShop
)

// Terminal drives a WaveDirector from terminal input and draws its frames as
// character cells.
type Terminal struct {
	screen   tcell.Screen
	director *arena.WaveDirector
	composer *render.Composer
	shop     *arena.Shop
	palette  graphics.Palette
	clock    clock.Clock

	mode          mode
	held          map[string]time.Time
	pulses        map[string]bool
	messages      []string
	shopSelection int
	shopStatus    string
}

// New wires a terminal front end. The screen is initialised by the caller or
// by Run.
func New(screen tcell.Screen, cfg *config.Config, director *arena.WaveDirector, composer *render.Composer, clk clock.Clock) *Terminal {
	t := &Terminal{
		screen:   screen,
		director: director,
		composer: composer,
		shop:     arena.NewShop(cfg),
		palette:  graphics.NewPalette(cfg.Graphics),
		clock:    clk,
		held:     make(map[string]time.Time),
		pulses:   make(map[string]bool),
	}
	director.Events().Subscribe(t.handleEvent,
		event.WaveStarted, event.EntityKilled, event.ShopPrompt, event.GameOver, event.ReturnToMenu)
	return t
}

// Run takes over the terminal until the player quits.
func (t *Terminal) Run() error {
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("failed to init terminal: %w", err)
	}
	defer t.screen.Fini()

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !t.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			t.Step()
			t.Draw()
		}
	}
}

// HandleEvent applies one terminal event. It returns false when the player
// asked to quit.
func (t *Terminal) HandleEvent(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		if _, resize := ev.(*tcell.EventResize); resize {
			t.screen.Sync()
		}
		return true
	}
	if key.Key() == tcell.KeyCtrlC {
		return false
	}

	switch t.mode {
	case modeMenu:
		switch {
		case key.Key() == tcell.KeyEscape || key.Rune() == 'q':
			return false
		case key.Key() == tcell.KeyEnter || key.Rune() == ' ':
			t.messages = t.messages[:0]
			t.director.InitializeArena()
			t.mode = modeArena
		}
	case modeShop:
		t.handleShopKey(key)
	case modeArena:
		t.handleArenaKey(key)
	}
	return true
}

func (t *Terminal) handleArenaKey(key *tcell.EventKey) {
	switch t.director.Phase() {
	case arena.PhaseShopPrompt:
		switch key.Rune() {
		case 'y', 'Y':
			t.shopSelection, t.shopStatus = 0, ""
			t.mode = modeShop
		case 'n', 'N':
			t.director.DeclineShop()
		}
		return
	case arena.PhaseGameOver:
		t.mode = modeMenu
		return
	}

	if key.Key() == tcell.KeyEscape {
		t.mode = modeMenu
		return
	}
	name := keyName(key)
	switch name {
	case "1", "f":
		t.pulses["cast"] = true
	case "2", "3", "q":
		t.pulses["cycle"] = true
	case "":
	default:
		t.held[name] = t.clock.Now()
	}
}

func (t *Terminal) handleShopKey(key *tcell.EventKey) {
	offers := t.shop.Offers(t.director.Player)
	switch {
	case key.Key() == tcell.KeyEscape || key.Rune() == 'n':
		t.director.ContinueFromShop()
		t.mode = modeArena
	case key.Key() == tcell.KeyUp:
		if t.shopSelection > 0 {
			t.shopSelection--
		}
	case key.Key() == tcell.KeyDown:
		if t.shopSelection < len(offers)-1 {
			t.shopSelection++
		}
	case key.Key() == tcell.KeyEnter:
		if t.shopSelection >= len(offers) {
			return
		}
		offer := offers[t.shopSelection]
		if err := t.shop.Buy(t.director.Player, offer.Key); err != nil {
			t.shopStatus = fmt.Sprintf("Cannot buy %s: %v", offer.Name, err)
			return
		}
		t.shopStatus = fmt.Sprintf("Bought %s", offer.Name)
		if n := len(t.shop.Offers(t.director.Player)); t.shopSelection >= n && n > 0 {
			t.shopSelection = n - 1
		}
	}
}

// keyName normalises a key event to the name used by the held set. Upper
// case letters carry shift, which is how terminals report sprinting.
func keyName(key *tcell.EventKey) string {
	switch key.Key() {
	case tcell.KeyUp:
		return "w"
	case tcell.KeyDown:
		return "s"
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyRune:
		switch r := key.Rune(); r {
		case ' ':
			return "space"
		case 'W', 'A', 'S', 'D':
			return "shift+" + string(r+'a'-'A')
		default:
			return string(r)
		}
	}
	return ""
}

// Input builds the frame's input from the keys still considered held and the
// one-shot pulses, then clears the pulses.
func (t *Terminal) Input() character.Input {
	now := t.clock.Now()
	held := func(names ...string) bool {
		for _, n := range names {
			if at, ok := t.held[n]; ok && now.Sub(at) < holdDuration {
				return true
			}
		}
		return false
	}

	in := character.Input{
		Forward:     held("w", "shift+w"),
		Backward:    held("s", "shift+s"),
		StrafeLeft:  held("a", "shift+a"),
		StrafeRight: held("d", "shift+d"),
		TurnLeft:    held("left"),
		TurnRight:   held("right"),
		Sprint:      held("shift+w", "shift+a", "shift+s", "shift+d"),
		Jump:        held("space"),
		Cast:        t.pulses["cast"],
		CycleSpell:  t.pulses["cycle"],
	}

	for k := range t.pulses {
		delete(t.pulses, k)
	}
	for k, at := range t.held {
		if now.Sub(at) >= holdDuration {
			delete(t.held, k)
		}
	}
	return in
}

// Step advances the arena one tick while a run is on screen.
func (t *Terminal) Step() {
	if t.mode != modeArena {
		return
	}
	t.director.Update(t.Input())
}

func (t *Terminal) handleEvent(e event.Event) {
	switch e.Type {
	case event.WaveStarted:
		t.addMessage(fmt.Sprintf("Wave %d begins", e.Wave))
	case event.EntityKilled:
		if kill, ok := e.Data.(arena.KillInfo); ok && kill.Score > 0 {
			t.addMessage(fmt.Sprintf("%s slain (+%d)", kill.Name, kill.Score))
		}
	case event.ShopPrompt:
		t.addMessage("Boss defeated! Visit the shop? (y/n)")
	case event.GameOver:
		t.addMessage("You have fallen. Press any key.")
	case event.ReturnToMenu:
		t.mode = modeMenu
	}
}

func (t *Terminal) addMessage(msg string) {
	t.messages = append(t.messages, msg)
	if len(t.messages) > maxMessages {
		t.messages = t.messages[len(t.messages)-maxMessages:]
	}
}
