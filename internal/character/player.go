package character

import (
	"math"

	"spellarena/internal/config"
	"spellarena/internal/mathutil"
)

// Input is one frame of player intent, already decoupled from the device.
type Input struct {
	Forward     bool
	Backward    bool
	StrafeLeft  bool
	StrafeRight bool
	TurnLeft    bool
	TurnRight   bool
	Sprint      bool
	Jump        bool
	MouseDX     float64
	Cast        bool
	CycleSpell  bool
	SelectSpell string
}

// Mover resolves a desired displacement against the map.
type Mover interface {
	Slide(x, y, dx, dy, buffer float64) (float64, float64)
}

// Transform is the position, facing and vertical offset shared by every mobile entity.
type Transform struct {
	X, Y  float64
	Angle float64 // [0, 2π)
	Z     float64
}

// Position returns the world position.
func (t *Transform) Position() (float64, float64) {
	return t.X, t.Y
}

// Facing returns the view angle.
func (t *Transform) Facing() float64 {
	return t.Angle
}

// Levels are the shop upgrade tiers, each in [1, max].
type Levels struct {
	Weapon int
	Armor  int
	Spell  int
}

// Player is the arena combatant. It is created once per session and reset
// between arena runs.
type Player struct {
	Transform

	Health      float64
	Mana        float64
	Gold        int
	Score       int
	HighestWave int

	cfg          config.PlayerConfig
	levels       Levels
	knownSpells  []string
	currentSpell int
	verticalVel  float64
}

// NewPlayer creates a level 1 player with full health and mana.
func NewPlayer(cfg config.PlayerConfig) *Player {
	p := &Player{
		cfg:    cfg,
		levels: Levels{Weapon: 1, Armor: 1, Spell: 1},
		Gold:   cfg.StartGold,
	}
	for _, spell := range cfg.StartingSpells {
		p.LearnSpell(spell)
	}
	p.Health = p.MaxHealth()
	p.Mana = p.MaxMana()
	return p
}

func (p *Player) maxLevel() int {
	return mathutil.IntMax(1, p.cfg.MaxUpgradeLevel)
}

func (p *Player) Levels() Levels {
	return p.levels
}

func (p *Player) MaxHealth() float64 {
	return p.cfg.BaseHealth + float64(p.levels.Armor-1)*p.cfg.HealthPerArmorLevel
}

func (p *Player) MaxMana() float64 {
	return p.cfg.BaseMana + float64(p.levels.Spell-1)*p.cfg.ManaPerSpellLevel
}

// DamageMultiplier scales spell damage and healing.
func (p *Player) DamageMultiplier() float64 {
	return 1 + float64(p.levels.Spell-1)*p.cfg.DamagePerSpellLevel
}

// ArmorReduction is the fraction of incoming damage absorbed.
func (p *Player) ArmorReduction() float64 {
	return mathutil.Clamp(float64(p.levels.Armor-1)*p.cfg.ReductionPerArmorLevel, 0, 1)
}

func (p *Player) WeaponDamage() float64 {
	return p.cfg.BaseWeaponDamage + float64(p.levels.Weapon-1)*p.cfg.WeaponDamagePerLevel
}

// SetWeaponLevel clamps the level into range.
func (p *Player) SetWeaponLevel(level int) {
	p.levels.Weapon = mathutil.IntClamp(level, 1, p.maxLevel())
}

// SetArmorLevel clamps the level into range and refills health to the new maximum.
func (p *Player) SetArmorLevel(level int) {
	p.levels.Armor = mathutil.IntClamp(level, 1, p.maxLevel())
	p.Health = p.MaxHealth()
}

// SetSpellLevel clamps the level into range and refills mana to the new maximum.
func (p *Player) SetSpellLevel(level int) {
	p.levels.Spell = mathutil.IntClamp(level, 1, p.maxLevel())
	p.Mana = p.MaxMana()
}

// TakeDamage applies armor and returns the damage actually taken.
func (p *Player) TakeDamage(amount float64) float64 {
	if amount <= 0 {
		return 0
	}
	taken := math.Min(amount*(1-p.ArmorReduction()), p.Health)
	p.Health -= taken
	return taken
}

// Heal restores health up to the maximum.
func (p *Player) Heal(amount float64) {
	if amount <= 0 {
		return
	}
	p.Health = math.Min(p.Health+amount, p.MaxHealth())
}

// RestoreMana restores mana up to the maximum.
func (p *Player) RestoreMana(amount float64) {
	if amount <= 0 {
		return
	}
	p.Mana = math.Min(p.Mana+amount, p.MaxMana())
}

// SpendMana deducts mana if enough is available.
func (p *Player) SpendMana(amount float64) bool {
	if p.Mana < amount {
		return false
	}
	p.Mana -= amount
	return true
}

// SpendGold deducts gold if enough is available.
func (p *Player) SpendGold(amount int) bool {
	if amount < 0 || p.Gold < amount {
		return false
	}
	p.Gold -= amount
	return true
}

func (p *Player) AddGold(amount int) {
	if amount > 0 {
		p.Gold += amount
	}
}

func (p *Player) AddScore(amount int) {
	if amount > 0 {
		p.Score += amount
	}
}

// RecordWave keeps the best wave reached.
func (p *Player) RecordWave(wave int) {
	p.HighestWave = mathutil.IntMax(p.HighestWave, wave)
}

func (p *Player) IsAlive() bool {
	return p.Health > 0
}

func (p *Player) KnowsSpell(key string) bool {
	for _, s := range p.knownSpells {
		if s == key {
			return true
		}
	}
	return false
}

// LearnSpell adds a spell once; learning a known spell is a no-op.
func (p *Player) LearnSpell(key string) {
	if key == "" || p.KnowsSpell(key) {
		return
	}
	p.knownSpells = append(p.knownSpells, key)
}

// KnownSpells returns the spells in the order they were learned.
func (p *Player) KnownSpells() []string {
	return append([]string(nil), p.knownSpells...)
}

// CurrentSpell returns the selected spell key, or "" when none are known.
func (p *Player) CurrentSpell() string {
	if len(p.knownSpells) == 0 {
		return ""
	}
	return p.knownSpells[p.currentSpell%len(p.knownSpells)]
}

func (p *Player) CycleSpell() {
	if len(p.knownSpells) > 0 {
		p.currentSpell = (p.currentSpell + 1) % len(p.knownSpells)
	}
}

// SelectSpell switches to a known spell.
func (p *Player) SelectSpell(key string) bool {
	for i, s := range p.knownSpells {
		if s == key {
			p.currentSpell = i
			return true
		}
	}
	return false
}

// ResetForArena refills health and mana and places the player for a new run.
func (p *Player) ResetForArena(x, y, angle float64) {
	p.Health = p.MaxHealth()
	p.Mana = p.MaxMana()
	p.X, p.Y = x, y
	p.Angle = mathutil.NormalizeAngle(angle)
	p.Z = 0
	p.verticalVel = 0
}

// Move applies rotation and collision-checked movement for one frame.
func (p *Player) Move(in Input, dt float64, mover Mover) {
	turn := in.MouseDX * p.cfg.MouseSensitivity
	if in.TurnLeft {
		turn -= p.cfg.RotationSpeed * dt
	}
	if in.TurnRight {
		turn += p.cfg.RotationSpeed * dt
	}
	p.Angle = mathutil.NormalizeAngle(p.Angle + turn)

	var forward, strafe float64
	if in.Forward {
		forward++
	}
	if in.Backward {
		forward--
	}
	if in.StrafeRight {
		strafe++
	}
	if in.StrafeLeft {
		strafe--
	}
	if forward == 0 && strafe == 0 {
		return
	}

	speed := p.cfg.MoveSpeed * dt
	if in.Sprint {
		speed *= p.cfg.SprintMultiplier
	}

	cosA, sinA := math.Cos(p.Angle), math.Sin(p.Angle)
	dx := (cosA*forward - sinA*strafe) * speed
	dy := (sinA*forward + cosA*strafe) * speed
	p.X, p.Y = mover.Slide(p.X, p.Y, dx, dy, p.cfg.CollisionBuffer)
}

// Jump starts a jump when grounded.
func (p *Player) Jump() {
	if p.Z == 0 && p.verticalVel == 0 {
		p.verticalVel = p.cfg.JumpPower
	}
}

// IsAirborne reports whether a jump is in progress.
func (p *Player) IsAirborne() bool {
	return p.Z > 0 || p.verticalVel != 0
}

// Update regenerates mana and advances the jump arc.
func (p *Player) Update(dt float64) {
	p.RestoreMana(p.cfg.ManaRegen * dt)

	if p.verticalVel != 0 || p.Z > 0 {
		p.Z += p.verticalVel * dt
		p.verticalVel -= p.cfg.Gravity * dt
		if p.Z <= 0 {
			p.Z = 0
			p.verticalVel = 0
		}
	}
}
