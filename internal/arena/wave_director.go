package arena

import (
	"context"
	"log"
	"math/rand"
	"time"

	"spellarena/internal/character"
	"spellarena/internal/clock"
	"spellarena/internal/collision"
	"spellarena/internal/config"
	"spellarena/internal/event"
	"spellarena/internal/monster"
	"spellarena/internal/raycast"
	"spellarena/internal/render"
	"spellarena/internal/spells"
	"spellarena/internal/threading/monitoring"
	"spellarena/internal/world"
)

// maxFrameStep caps dt so a stalled frame cannot teleport entities.
const maxFrameStep = 0.1

// WaveDirector owns the arena run: the player's opponents, projectiles, the
// wave counter and the phase machine.
type WaveDirector struct {
	cfg       *config.Config
	grid      *world.Grid
	collision *collision.CollisionSystem
	casting   *spells.CastingSystem
	clock     clock.Clock
	rng       *rand.Rand
	events    *event.Bus
	monitor   *monitoring.PerformanceMonitor

	Player *character.Player

	enemies     []*monster.Enemy
	bosses      []*monster.Boss
	projectiles []*spells.Projectile
	pending     []pendingSpawn

	wave         int
	preserveWave bool
	phase        Phase
	phaseStarted time.Time
	lastUpdate   time.Time
	bossDefeated bool
	returnedMenu bool
	nextID       int
	kills        int
}

// NewWaveDirector wires a director to its map and player. A nil bus gets a
// private one.
func NewWaveDirector(cfg *config.Config, grid *world.Grid, player *character.Player, clk clock.Clock, rng *rand.Rand, events *event.Bus) *WaveDirector {
	if events == nil {
		events = event.NewBus()
	}
	return &WaveDirector{
		cfg:       cfg,
		grid:      grid,
		collision: collision.NewCollisionSystem(grid),
		casting:   spells.NewCastingSystem(cfg),
		clock:     clk,
		rng:       rng,
		events:    events,
		Player:    player,
		wave:      1,
	}
}

// SetMonitor attaches a performance monitor for entity timing and counters.
func (d *WaveDirector) SetMonitor(pm *monitoring.PerformanceMonitor) {
	d.monitor = pm
}

// InitializeArena resets the run: player refilled at the centre, entities
// cleared and the current wave started. The wave resets to 1 unless the call
// comes from ContinueFromShop.
func (d *WaveDirector) InitializeArena() {
	now := d.clock.Now()
	cx, cy := d.Center()
	d.Player.ResetForArena(cx, cy, 0)

	if !d.preserveWave {
		d.wave = 1
	}
	d.enemies = nil
	d.bosses = nil
	d.projectiles = nil
	d.pending = nil
	d.nextID = 0
	d.kills = 0
	d.returnedMenu = false
	d.lastUpdate = now

	d.startWave(now)
}

// ContinueFromShop resumes after the player went shopping: next wave, fresh
// arena, wave number kept.
func (d *WaveDirector) ContinueFromShop() {
	if d.phase != PhaseShopPrompt {
		return
	}
	d.wave++
	d.preserveWave = true
	d.InitializeArena()
	d.preserveWave = false
}

// DeclineShop starts the next wave in place. It is also what the prompt
// timeout does.
func (d *WaveDirector) DeclineShop() {
	if d.phase != PhaseShopPrompt {
		return
	}
	d.advanceWave(d.clock.Now())
}

// Update runs one frame in a fixed order: player, entities, projectiles,
// sweep, completion check, phase timers.
func (d *WaveDirector) Update(in character.Input) {
	now := d.clock.Now()
	dt := now.Sub(d.lastUpdate).Seconds()
	if dt < 0 {
		dt = 0
	} else if dt > maxFrameStep {
		dt = maxFrameStep
	}
	d.lastUpdate = now

	switch d.phase {
	case PhaseGameOver:
		if !d.returnedMenu && now.Sub(d.phaseStarted) >= config.Millis(d.cfg.Waves.GameOverTimeoutMs) {
			d.returnedMenu = true
			d.dispatch(event.ReturnToMenu, nil)
		}
		return
	case PhaseShopPrompt:
		if now.Sub(d.phaseStarted) >= config.Millis(d.cfg.Waves.ShopPromptTimeoutMs) {
			log.Printf("[arena] shop prompt timed out, continuing")
			d.DeclineShop()
		}
		return
	}

	d.updatePlayer(in, dt)
	if d.playerFell(now) {
		return
	}

	if d.monitor != nil {
		d.monitor.ProfiledFunction("entity_update", func() { d.updateEntities(now, dt) })
	} else {
		d.updateEntities(now, dt)
	}
	if d.playerFell(now) {
		return
	}
	d.mergePending()

	d.updateProjectiles(dt)
	if d.playerFell(now) {
		return
	}

	d.sweep()
	d.CheckWaveCompletion()

	if d.phase == PhaseInterWaveDelay && now.Sub(d.phaseStarted) >= config.Millis(d.cfg.Waves.InterWaveDelayMs) {
		d.advanceWave(now)
	}

	if d.monitor != nil {
		d.monitor.UpdateGameMetrics(len(d.enemies), len(d.bosses), len(d.projectiles)+len(d.HostileProjectiles()))
	}
}

func (d *WaveDirector) updatePlayer(in character.Input, dt float64) {
	p := d.Player
	if in.CycleSpell {
		p.CycleSpell()
	}
	if in.SelectSpell != "" {
		p.SelectSpell(in.SelectSpell)
	}
	p.Move(in, dt, d.collision)
	if in.Jump {
		p.Jump()
	}
	p.Update(dt)

	if in.Cast {
		if res, ok := d.casting.Cast(spells.SpellType(p.CurrentSpell()), p); ok && res.Projectile != nil {
			d.projectiles = append(d.projectiles, res.Projectile)
		}
	}
}

func (d *WaveDirector) updateEntities(now time.Time, dt float64) {
	tick := &monster.Tick{
		Now:     now,
		DT:      dt,
		Target:  d.Player,
		Terrain: d.grid,
		RNG:     d.rng,
	}
	for _, e := range d.enemies {
		if !tick.Target.IsAlive() {
			return
		}
		e.Update(tick)
	}
	for _, b := range d.bosses {
		if !tick.Target.IsAlive() {
			return
		}
		b.Update(tick)
	}
}

// playerFell ends the run once the player is dead. Kills landed earlier in
// the tick are still credited; spawns queued this tick are dropped.
func (d *WaveDirector) playerFell(now time.Time) bool {
	if d.Player.IsAlive() {
		return false
	}
	d.pending = nil
	d.sweep()
	d.enterGameOver(now)
	return true
}

// CheckWaveCompletion moves an Active wave with nothing left alive through
// Completing into the delay or the shop prompt. Calling it again is a no-op.
func (d *WaveDirector) CheckWaveCompletion() {
	if d.phase != PhaseActive || len(d.enemies) > 0 || len(d.bosses) > 0 || len(d.pending) > 0 {
		return
	}
	now := d.clock.Now()
	d.setPhase(PhaseCompleting, now)
	d.dispatch(event.WaveCleared, nil)

	if d.IsBossWave() && d.bossDefeated {
		log.Printf("[arena] boss wave %d cleared, offering the shop", d.wave)
		d.setPhase(PhaseShopPrompt, now)
		d.dispatch(event.ShopPrompt, nil)
		return
	}
	log.Printf("[arena] wave %d cleared", d.wave)
	d.setPhase(PhaseInterWaveDelay, now)
}

func (d *WaveDirector) advanceWave(now time.Time) {
	d.wave++
	d.startWave(now)
}

func (d *WaveDirector) startWave(now time.Time) {
	d.bossDefeated = false
	d.Player.RecordWave(d.wave)
	d.setPhase(PhaseActive, now)

	if d.IsBossWave() {
		d.spawnBossWave(now)
	} else {
		d.spawnRegularWave()
	}
	d.dispatch(event.WaveStarted, WaveInfo{Boss: d.IsBossWave(), Enemies: len(d.enemies) + len(d.bosses)})
	log.Printf("[arena] wave %d started with %d enemies", d.wave, len(d.enemies)+len(d.bosses))
}

func (d *WaveDirector) enterGameOver(now time.Time) {
	d.setPhase(PhaseGameOver, now)
	log.Printf("[arena] player fell on wave %d with score %d", d.wave, d.Player.Score)
	d.dispatch(event.GameOver, GameOverInfo{Score: d.Player.Score, HighestWave: d.Player.HighestWave})
}

func (d *WaveDirector) setPhase(p Phase, now time.Time) {
	d.phase = p
	d.phaseStarted = now
}

func (d *WaveDirector) dispatch(t event.EventType, data interface{}) {
	if err := d.events.Publish(context.Background(), event.Event{Type: t, Wave: d.wave, Data: data}); err != nil {
		log.Printf("[arena] publish %s: %v", t, err)
	}
}

func (d *WaveDirector) allocID() int {
	d.nextID++
	return d.nextID
}

func (d *WaveDirector) Wave() int {
	return d.wave
}

func (d *WaveDirector) Phase() Phase {
	return d.phase
}

// IsBossWave reports whether the current wave is a boss wave.
func (d *WaveDirector) IsBossWave() bool {
	every := d.cfg.Waves.BossEvery
	return every > 0 && d.wave%every == 0
}

// PhaseElapsed is the time spent in the current phase.
func (d *WaveDirector) PhaseElapsed() time.Duration {
	return d.clock.Now().Sub(d.phaseStarted)
}

func (d *WaveDirector) Enemies() []*monster.Enemy {
	return d.enemies
}

func (d *WaveDirector) Bosses() []*monster.Boss {
	return d.bosses
}

// Projectiles are the player's live spells.
func (d *WaveDirector) Projectiles() []*spells.Projectile {
	return d.projectiles
}

// HostileProjectiles collects every live projectile fired at the player.
func (d *WaveDirector) HostileProjectiles() []*spells.Projectile {
	var out []*spells.Projectile
	for _, e := range d.enemies {
		out = append(out, e.Projectiles...)
	}
	for _, b := range d.bosses {
		out = append(out, b.Projectiles...)
	}
	return out
}

func (d *WaveDirector) Grid() *world.Grid {
	return d.grid
}

func (d *WaveDirector) Events() *event.Bus {
	return d.events
}

func (d *WaveDirector) Casting() *spells.CastingSystem {
	return d.casting
}

// Kills counts entities swept this run.
func (d *WaveDirector) Kills() int {
	return d.kills
}

// Center is the arena centre in world coordinates.
func (d *WaveDirector) Center() (float64, float64) {
	return d.grid.TileCenter(d.cfg.Arena.CenterX, d.cfg.Arena.CenterY)
}

// View is the camera at the player's eyes.
func (d *WaveDirector) View() raycast.View {
	p := d.Player
	return raycast.View{X: p.X, Y: p.Y, Angle: p.Angle, Z: p.Z}
}

// Drawables lists everything a frame may show: living enemies and bosses,
// the player's spells and every hostile projectile.
func (d *WaveDirector) Drawables() []render.Drawable {
	out := make([]render.Drawable, 0, len(d.enemies)+len(d.bosses)+len(d.projectiles))
	for _, e := range d.enemies {
		if e.IsAlive() {
			out = append(out, e)
		}
	}
	for _, b := range d.bosses {
		if b.IsAlive() {
			out = append(out, b)
		}
	}
	for _, p := range d.projectiles {
		out = append(out, p)
	}
	for _, p := range d.HostileProjectiles() {
		out = append(out, p)
	}
	return out
}
