package arena

import (
	"io"
	"log"
	"math/rand"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spellarena/internal/character"
	"spellarena/internal/clock"
	"spellarena/internal/config"
	"spellarena/internal/monster"
	"spellarena/internal/world"
)

func newAutopilot(t *testing.T, seed int64) (*Autopilot, *WaveDirector, *clock.Manual) {
	t.Helper()
	log.SetOutput(io.Discard)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	cfg := config.Default()
	clk := clock.NewManual()
	d := NewWaveDirector(cfg, world.NewArenaGrid(cfg), character.NewPlayer(cfg.Player), clk, rand.New(rand.NewSource(seed)), nil)
	d.InitializeArena()
	return NewAutopilot(d, NewShop(cfg)), d, clk
}

// place leaves a single skeleton at (x, y).
func place(d *WaveDirector, x, y float64) *monster.Enemy {
	e := monster.NewEnemy(99, monster.Skeleton, d.cfg, x, y, 1, 1)
	d.enemies = []*monster.Enemy{e}
	return e
}

func TestAutopilot_Input(t *testing.T) {
	a, d, _ := newAutopilot(t, 1)

	t.Run("lined up at range", func(t *testing.T) {
		place(d, 672+200, 672)
		in := a.Input()
		assert.True(t, in.Cast)
		assert.Equal(t, "fireball", in.SelectSpell)
		assert.False(t, in.TurnLeft || in.TurnRight)
		assert.False(t, in.Forward || in.Backward)
	})

	t.Run("target to the side", func(t *testing.T) {
		place(d, 672, 672+200)
		in := a.Input()
		assert.True(t, in.TurnRight)
		assert.False(t, in.Cast)

		place(d, 672, 672-200)
		in = a.Input()
		assert.True(t, in.TurnLeft)
	})

	t.Run("keeps distance", func(t *testing.T) {
		place(d, 672+80, 672)
		assert.True(t, a.Input().Backward)
		place(d, 672+300, 672)
		assert.True(t, a.Input().Forward)
	})

	t.Run("heals when hurt", func(t *testing.T) {
		place(d, 672+200, 672)
		d.Player.LearnSpell("heal")
		d.Player.Health = 10
		in := a.Input()
		assert.Equal(t, "heal", in.SelectSpell)
		assert.True(t, in.Cast)
	})

	t.Run("idle with nothing to fight", func(t *testing.T) {
		d.enemies = nil
		assert.Equal(t, character.Input{}, a.Input())
	})
}

func TestAutopilot_ShopsAndContinues(t *testing.T) {
	a, d, _ := newAutopilot(t, 1)
	d.wave = 4
	d.advanceWave(d.clock.Now())
	d.enemies = nil
	d.Bosses()[0].Kill()
	d.Update(character.Input{})
	require.Equal(t, PhaseShopPrompt, d.Phase())

	d.Player.Gold = 1000
	a.Step()

	assert.Equal(t, 6, d.Wave())
	assert.Equal(t, PhaseActive, d.Phase())
	assert.Equal(t, 2, d.Player.Levels().Spell)
	assert.True(t, d.Player.KnowsSpell("lightning"))
	assert.Less(t, d.Player.Gold, 200)
}

func TestAutopilot_ScoresKills(t *testing.T) {
	a, d, clk := newAutopilot(t, 3)
	for i := 0; i < 30*60 && d.Kills() == 0; i++ {
		clk.Advance(frame)
		a.Step()
	}
	assert.Positive(t, d.Kills())
}
