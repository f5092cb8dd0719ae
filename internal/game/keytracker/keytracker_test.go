package keytracker

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestTracker(t *testing.T) {
	down := map[ebiten.Key]bool{}
	tr := NewWithSource(func(k ebiten.Key) bool { return down[k] }, ebiten.KeyY, ebiten.KeyN)

	tr.Update()
	if tr.AnyJustPressed() {
		t.Fatal("nothing pressed yet")
	}

	down[ebiten.KeyY] = true
	tr.Update()
	if !tr.IsKeyJustPressed(ebiten.KeyY) {
		t.Error("Y should be just pressed")
	}
	if tr.IsKeyJustPressed(ebiten.KeyN) {
		t.Error("N is not pressed")
	}

	// Held keys only fire once.
	tr.Update()
	if tr.IsKeyJustPressed(ebiten.KeyY) {
		t.Error("held Y should not fire again")
	}

	down[ebiten.KeyY] = false
	tr.Update()
	down[ebiten.KeyY] = true
	tr.Update()
	if !tr.IsKeyJustPressed(ebiten.KeyY) {
		t.Error("Y should fire after release")
	}

	// Untracked keys never report.
	down[ebiten.KeyZ] = true
	tr.Update()
	if tr.IsKeyJustPressed(ebiten.KeyZ) {
		t.Error("Z is not tracked")
	}
}
