package arena

import (
	"log"
	"math"
	"time"

	"spellarena/internal/event"
	"spellarena/internal/mathutil"
	"spellarena/internal/monster"
)

// pendingSpawn is a spawn requested during the update pass. decoyOf is set
// for decoy requests.
type pendingSpawn struct {
	kind    monster.EnemyKind
	x, y    float64
	decoyOf *monster.Boss
}

var _ monster.SpawnRequester = (*WaveDirector)(nil)

// SpawnMinion queues a minion. It joins the arena after the current update pass.
func (d *WaveDirector) SpawnMinion(kind monster.EnemyKind, x, y float64) {
	d.pending = append(d.pending, pendingSpawn{kind: kind, x: x, y: y})
}

// SpawnDecoy queues a decoy of original.
func (d *WaveDirector) SpawnDecoy(original *monster.Boss, x, y float64) {
	d.pending = append(d.pending, pendingSpawn{x: x, y: y, decoyOf: original})
}

func (d *WaveDirector) mergePending() {
	if len(d.pending) == 0 {
		return
	}
	now := d.clock.Now()
	for _, req := range d.pending {
		x, y := req.x, req.y
		if !d.grid.IsWalkableAt(x, y) {
			x, y = d.spawnPosition()
		}

		if req.decoyOf != nil {
			decoy := monster.NewDecoy(d.allocID(), req.decoyOf, x, y, now)
			req.decoyOf.DecoyID = decoy.ID
			d.bosses = append(d.bosses, decoy)
			continue
		}
		d.enemies = append(d.enemies, monster.NewEnemy(d.allocID(), req.kind, d.cfg, x, y, 1, 1))
	}
	d.pending = d.pending[:0]
}

// enemyCount is base + floor((wave-1)/2).
func (d *WaveDirector) enemyCount() int {
	return d.cfg.Waves.BaseEnemies + (d.wave-1)/2
}

// enemyPool returns the kinds unlocked at the current wave.
func (d *WaveDirector) enemyPool() []string {
	w := d.cfg.Waves
	size := 1
	for _, threshold := range w.TierThresholds {
		if d.wave >= threshold {
			size++
		}
	}
	return w.TierOrder[:mathutil.IntMin(size, len(w.TierOrder))]
}

func (d *WaveDirector) spawnRegularWave() {
	w := d.cfg.Waves
	healthMul := 1 + float64(d.wave-1)*w.HealthScalePerWave
	damageMul := 1 + float64(d.wave-1)*w.DamageScalePerWave
	pool := d.enemyPool()

	for i := 0; i < d.enemyCount(); i++ {
		kind := monster.EnemyKind(pool[d.rng.Intn(len(pool))])
		x, y := d.spawnPosition()
		d.enemies = append(d.enemies, monster.NewEnemy(d.allocID(), kind, d.cfg, x, y, healthMul, damageMul))
	}
}

// bossFor picks the roster entry and scale for a boss wave.
func (d *WaveDirector) bossFor(wave int) (monster.BossKind, float64) {
	w := d.cfg.Waves
	idx := (wave/w.BossEvery - 1) % len(w.BossRoster)
	mul := 1 + float64((wave-w.BossEvery)/w.BossEvery)*w.BossScalePerCycle
	return monster.BossKind(w.BossRoster[idx]), mul
}

func (d *WaveDirector) spawnBossWave(now time.Time) {
	kind, mul := d.bossFor(d.wave)
	x, y := d.spawnPosition()
	boss := monster.NewBoss(d.allocID(), kind, d.cfg, x, y, mul, now, d)
	d.bosses = append(d.bosses, boss)

	log.Printf("[arena] boss wave %d: %s (x%.1f)", d.wave, boss.Name, mul)
	d.dispatch(event.BossSpawned, boss.Name)
}

// spawnPosition samples the annulus around the centre, rejecting blocked
// tiles and points too close to the player.
func (d *WaveDirector) spawnPosition() (float64, float64) {
	w := d.cfg.Waves
	cx, cy := d.Center()
	outer := w.SpawnRadius * d.grid.TileSize()
	inner := outer * w.SpawnInnerFraction
	px, py := d.Player.Position()

	for i := 0; i < w.SpawnRetries; i++ {
		angle := d.rng.Float64() * 2 * math.Pi
		dist := inner + d.rng.Float64()*(outer-inner)
		x := cx + math.Cos(angle)*dist
		y := cy + math.Sin(angle)*dist
		if d.grid.IsWalkableAt(x, y) && math.Hypot(x-px, y-py) > w.SafetyDistance {
			return x, y
		}
	}
	return d.fallbackPosition()
}

// fallbackPosition uses the configured offset from the centre, or the nearest
// walkable tile to it found by scanning square rings outward.
func (d *WaveDirector) fallbackPosition() (float64, float64) {
	cx, cy := d.Center()
	x, y := cx+d.cfg.Waves.FallbackOffsetX, cy+d.cfg.Waves.FallbackOffsetY
	log.Printf("[arena] spawn retries exhausted, using fallback (%.0f, %.0f)", x, y)
	if d.grid.IsWalkableAt(x, y) {
		return x, y
	}

	tx, ty := d.grid.WorldToTile(x, y)
	maxRing := mathutil.IntMax(d.grid.Width(), d.grid.Height())
	for r := 1; r <= maxRing; r++ {
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				if mathutil.IntAbs(dx) != r && mathutil.IntAbs(dy) != r {
					continue
				}
				if d.grid.IsWalkable(tx+dx, ty+dy) {
					return d.grid.TileCenter(tx+dx, ty+dy)
				}
			}
		}
	}
	return cx, cy
}
