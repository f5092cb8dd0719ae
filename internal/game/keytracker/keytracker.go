// Package keytracker reports key presses that started this frame.
package keytracker

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Tracker snapshots a fixed set of keys once per frame.
type Tracker struct {
	keys    []ebiten.Key
	prev    map[ebiten.Key]bool
	curr    map[ebiten.Key]bool
	pressed func(ebiten.Key) bool
}

// New tracks keys against ebiten's live keyboard state.
func New(keys ...ebiten.Key) *Tracker {
	return NewWithSource(ebiten.IsKeyPressed, keys...)
}

// NewWithSource tracks keys using pressed as the keyboard state.
func NewWithSource(pressed func(ebiten.Key) bool, keys ...ebiten.Key) *Tracker {
	return &Tracker{
		keys:    keys,
		prev:    make(map[ebiten.Key]bool, len(keys)),
		curr:    make(map[ebiten.Key]bool, len(keys)),
		pressed: pressed,
	}
}

// Update takes this frame's snapshot. Call it once per frame before any query.
func (t *Tracker) Update() {
	t.prev, t.curr = t.curr, t.prev
	for _, k := range t.keys {
		t.curr[k] = t.pressed(k)
	}
}

// IsKeyJustPressed returns true if the key was not pressed last frame but is pressed this frame.
func (t *Tracker) IsKeyJustPressed(key ebiten.Key) bool {
	return t.curr[key] && !t.prev[key]
}

// AnyJustPressed reports whether any tracked key went down this frame.
func (t *Tracker) AnyJustPressed() bool {
	for _, k := range t.keys {
		if t.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
