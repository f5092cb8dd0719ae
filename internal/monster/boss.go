package monster

import (
	"image/color"
	"log"
	"math"
	"time"

	"spellarena/internal/character"
	"spellarena/internal/config"
	"spellarena/internal/mathutil"
)

//go:generate mockgen -destination=mock/mock_spawn_requester.go -package=monstermock spellarena/internal/monster SpawnRequester

// SpawnRequester is the narrow capability a boss uses to add entities to the
// arena. Requests are queued by the owner and merged after the update pass.
type SpawnRequester interface {
	SpawnMinion(kind EnemyKind, x, y float64)
	SpawnDecoy(original *Boss, x, y float64)
}

// Boss is a scripted enemy with one special ability. Decoys are bosses with
// IsReal false; DecoyID and OriginalID link the pair by entity ID.
type Boss struct {
	Enemy
	BossKind   BossKind
	Special    Special
	Resistance float64
	IsReal     bool
	DecoyID    int
	OriginalID int
	Raging     bool

	spawner         SpawnRequester
	lastTick        time.Time
	lastSpecial     time.Time
	specialCooldown time.Duration
	rageEnds        time.Time
	preRageSpeed    float64
	preRageDamage   float64

	summonKind   EnemyKind
	summonCount  int
	regenAmount  float64
	openingKind  EnemyKind
	openingCount int
	spawnsDecoy  bool
	openingDone  bool
}

func bossStats(cfg *config.Config, kind BossKind) *config.BossConfig {
	if bc, ok := cfg.Bosses[string(kind)]; ok && bc != nil {
		return bc
	}
	return &config.BossConfig{Name: string(kind), Health: 1, Size: 30, AttackRange: 60, Color: "white"}
}

// NewBoss creates a boss with health and damage multiplied by mul. The special
// ability timer starts at now.
func NewBoss(id int, kind BossKind, cfg *config.Config, x, y, mul float64, now time.Time, spawner SpawnRequester) *Boss {
	bc := bossStats(cfg, kind)
	health := bc.Health * mul

	b := &Boss{
		Enemy: Enemy{
			Transform:   character.Transform{X: x, Y: y},
			ID:          id,
			Name:        bc.Name,
			Health:      health,
			MaxHealth:   health,
			Speed:       bc.Speed,
			Damage:      bc.Damage * mul,
			Size:        bc.Size,
			AttackRange: bc.AttackRange,
			ScoreValue:  bc.Score,
			Ranged:      bc.Ranged,
			color:       config.ColorByName(bc.Color),
			alive:       true,
			cooldown:    config.Millis(cfg.Combat.BossAttackCooldownMs),
			combat:      cfg.Combat,
			volley:      mathutil.IntMax(1, bc.Projectiles),
			spread:      bc.Spread,
		},
		BossKind:        kind,
		Special:         specialFromConfig(bc.Special),
		Resistance:      cfg.Combat.BossResistance,
		IsReal:          true,
		spawner:         spawner,
		lastTick:        now,
		lastSpecial:     now,
		specialCooldown: config.Millis(bc.SpecialCooldownMs),
		summonKind:      EnemyKind(bc.SummonKind),
		summonCount:     bc.SummonCount,
		regenAmount:     bc.RegenAmount,
		openingKind:     EnemyKind(bc.OpeningKind),
		openingCount:    bc.OpeningCount,
		spawnsDecoy:     bc.Decoy,
	}
	return b
}

// NewDecoy copies the original's look and attacks into a one-hit boss that
// scores nothing and has no special.
func NewDecoy(id int, original *Boss, x, y float64, now time.Time) *Boss {
	d := &Boss{
		Enemy:       original.Enemy,
		BossKind:    original.BossKind,
		Special:     SpecialNone,
		IsReal:      false,
		OriginalID:  original.ID,
		spawner:     original.spawner,
		lastTick:    now,
		lastSpecial: now,
		openingDone: true,
	}
	d.ID = id
	d.X, d.Y = x, y
	d.Health, d.MaxHealth = 1, 1
	d.ScoreValue = 0
	d.Projectiles = nil
	d.lastAttack = time.Time{}
	if original.Raging {
		d.Speed, d.Damage = original.preRageSpeed, original.preRageDamage
	}
	return d
}

// Update runs specials and then the shared seek / attack / flee step.
func (b *Boss) Update(t *Tick) {
	if !b.alive {
		return
	}
	b.lastTick = t.Now
	b.expireRage(t.Now)

	if !b.openingDone {
		b.openingDone = true
		b.spawnOpening(t)
	}

	if b.Special != SpecialNone && t.Now.Sub(b.lastSpecial) >= b.specialCooldown {
		b.lastSpecial = t.Now
		b.useSpecial(t)
	}

	b.engage(t)
}

func (b *Boss) spawnOpening(t *Tick) {
	if !b.IsReal || b.spawner == nil {
		return
	}
	if b.openingKind != "" {
		for i := 0; i < b.openingCount; i++ {
			x, y := b.minionPosition(t)
			b.spawner.SpawnMinion(b.openingKind, x, y)
		}
	}
	if b.spawnsDecoy {
		x, y := b.minionPosition(t)
		b.spawner.SpawnDecoy(b, x, y)
		log.Printf("[boss] %s conjured a decoy", b.Name)
	}
}

func (b *Boss) useSpecial(t *Tick) {
	switch b.Special {
	case SpecialSummon:
		if b.spawner == nil || b.summonKind == "" {
			return
		}
		for i := 0; i < b.summonCount; i++ {
			x, y := b.minionPosition(t)
			b.spawner.SpawnMinion(b.summonKind, x, y)
		}
		log.Printf("[boss] %s summoned %d %s", b.Name, b.summonCount, b.summonKind)
	case SpecialRage:
		b.enrage(t.Now)
	case SpecialRegenerate:
		if b.Health < b.MaxHealth {
			b.Health = math.Min(b.MaxHealth, b.Health+b.regenAmount)
			log.Printf("[boss] %s regenerated to %.0f/%.0f", b.Name, b.Health, b.MaxHealth)
		}
	}
}

// minionPosition picks a point 60-120 units from the boss, clamped into the map.
func (b *Boss) minionPosition(t *Tick) (float64, float64) {
	angle := t.RNG.Float64() * 2 * math.Pi
	lo, hi := b.combat.MinionOffsetMin, b.combat.MinionOffsetMax
	dist := lo + t.RNG.Float64()*(hi-lo)

	w, h := t.Terrain.WorldBounds()
	x := mathutil.Clamp(b.X+math.Cos(angle)*dist, 0, math.Max(0, w-1))
	y := mathutil.Clamp(b.Y+math.Sin(angle)*dist, 0, math.Max(0, h-1))
	return x, y
}

// enrage is a no-op while a rage is already running.
func (b *Boss) enrage(now time.Time) {
	if b.Raging {
		return
	}
	b.Raging = true
	b.rageEnds = now.Add(config.Millis(b.combat.RageDurationMs))
	b.preRageSpeed, b.preRageDamage = b.Speed, b.Damage
	b.Speed *= b.combat.RageSpeedMultiplier
	b.Damage *= b.combat.RageDamageMultiplier
	log.Printf("[boss] %s is enraged", b.Name)
}

func (b *Boss) expireRage(now time.Time) {
	if b.Raging && !now.Before(b.rageEnds) {
		b.Raging = false
		b.Speed, b.Damage = b.preRageSpeed, b.preRageDamage
	}
}

// TakeDamage applies resistance for real bosses. Decoys die on any hit.
// A rage boss dropping under the health threshold enrages immediately.
func (b *Boss) TakeDamage(amount float64) bool {
	if !b.alive || amount <= 0 {
		return false
	}
	if !b.IsReal {
		return b.Kill()
	}

	killed := b.Enemy.TakeDamage(amount * (1 - b.Resistance))
	if !killed && b.Special == SpecialRage && b.Health < b.MaxHealth*b.combat.RageHealthThreshold {
		b.enrage(b.lastTick)
	}
	return killed
}

func (b *Boss) IsBoss() bool {
	return true
}

func (b *Boss) SpriteKey() string {
	return string(b.BossKind)
}

// DisplayColor tints raging bosses red and washes decoys out.
func (b *Boss) DisplayColor() color.RGBA {
	c := b.color
	switch {
	case !b.IsReal:
		return blend(c, color.RGBA{R: 255, G: 255, B: 255, A: 255}, 0.5)
	case b.Raging:
		return blend(c, color.RGBA{R: 255, A: 255}, 0.5)
	default:
		return c
	}
}

func blend(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x)*(1-t) + float64(y)*t)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 255}
}
