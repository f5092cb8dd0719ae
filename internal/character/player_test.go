package character

import (
	"math"
	"testing"

	"spellarena/internal/collision"
	"spellarena/internal/config"
	"spellarena/internal/world"
)

func newTestPlayer() *Player {
	return NewPlayer(config.Default().Player)
}

func newRoom(t *testing.T) *collision.CollisionSystem {
	t.Helper()
	rows := make([][]int, 5)
	for y := range rows {
		rows[y] = make([]int, 5)
		for x := range rows[y] {
			if x == 0 || y == 0 || x == 4 || y == 4 {
				rows[y][x] = 1
			}
		}
	}
	grid, err := world.NewGridFromRows(rows, 64)
	if err != nil {
		t.Fatalf("NewGridFromRows: %v", err)
	}
	return collision.NewCollisionSystem(grid)
}

func TestNewPlayer(t *testing.T) {
	p := newTestPlayer()
	if p.Health != 100 || p.Mana != 100 {
		t.Errorf("expected full 100/100, got %.0f/%.0f", p.Health, p.Mana)
	}
	if got := p.CurrentSpell(); got != "fireball" {
		t.Errorf("expected fireball selected, got %q", got)
	}
	if p.Levels() != (Levels{Weapon: 1, Armor: 1, Spell: 1}) {
		t.Errorf("unexpected starting levels %+v", p.Levels())
	}
}

func TestDerivedStats(t *testing.T) {
	p := newTestPlayer()
	p.SetArmorLevel(3)
	p.SetSpellLevel(5)
	p.SetWeaponLevel(2)

	if p.MaxHealth() != 140 {
		t.Errorf("MaxHealth = %v, want 140", p.MaxHealth())
	}
	if p.Health != 140 {
		t.Errorf("armor upgrade should refill health, got %v", p.Health)
	}
	if p.MaxMana() != 160 || p.Mana != 160 {
		t.Errorf("mana = %v/%v, want 160/160", p.Mana, p.MaxMana())
	}
	if p.DamageMultiplier() != 2 {
		t.Errorf("DamageMultiplier = %v, want 2", p.DamageMultiplier())
	}
	if math.Abs(p.ArmorReduction()-0.2) > 1e-9 {
		t.Errorf("ArmorReduction = %v, want 0.2", p.ArmorReduction())
	}
	if p.WeaponDamage() != 45 {
		t.Errorf("WeaponDamage = %v, want 45", p.WeaponDamage())
	}

	p.SetSpellLevel(9)
	if p.Levels().Spell != 5 {
		t.Errorf("spell level should clamp to 5, got %d", p.Levels().Spell)
	}
	p.SetWeaponLevel(0)
	if p.Levels().Weapon != 1 {
		t.Errorf("weapon level should clamp to 1, got %d", p.Levels().Weapon)
	}
}

func TestTakeDamage(t *testing.T) {
	tests := []struct {
		name   string
		armor  int
		amount float64
		want   float64
	}{
		{"no armor", 1, 15, 15},
		{"armor 3", 3, 50, 40},
		{"negative", 1, -10, 0},
		{"overkill clamps", 1, 500, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPlayer()
			p.SetArmorLevel(tt.armor)
			before := p.Health
			got := p.TakeDamage(tt.amount)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("TakeDamage(%v) = %v, want %v", tt.amount, got, tt.want)
			}
			if math.Abs(before-p.Health-tt.want) > 1e-9 {
				t.Errorf("health dropped by %v, want %v", before-p.Health, tt.want)
			}
			if p.Health < 0 {
				t.Errorf("health went negative: %v", p.Health)
			}
		})
	}
}

func TestHealAndManaClamp(t *testing.T) {
	p := newTestPlayer()
	p.TakeDamage(30)
	p.Heal(100)
	if p.Health != p.MaxHealth() {
		t.Errorf("heal should clamp to max, got %v", p.Health)
	}

	if !p.SpendMana(90) {
		t.Fatal("expected SpendMana(90) to succeed")
	}
	if p.SpendMana(20) {
		t.Error("SpendMana should fail with 10 mana left")
	}
	p.RestoreMana(500)
	if p.Mana != p.MaxMana() {
		t.Errorf("mana should clamp to max, got %v", p.Mana)
	}
}

func TestGold(t *testing.T) {
	p := newTestPlayer()
	p.AddGold(100)
	if p.SpendGold(150) {
		t.Error("should not spend more gold than held")
	}
	if !p.SpendGold(60) || p.Gold != 40 {
		t.Errorf("expected 40 gold after spending, got %d", p.Gold)
	}
	if p.SpendGold(-5) {
		t.Error("negative spend must be rejected")
	}
	p.AddGold(-10)
	if p.Gold != 40 {
		t.Errorf("negative AddGold changed gold to %d", p.Gold)
	}
}

func TestSpellSelection(t *testing.T) {
	p := newTestPlayer()
	p.LearnSpell("ice")
	p.LearnSpell("ice")
	if got := len(p.KnownSpells()); got != 2 {
		t.Fatalf("expected 2 known spells, got %d", got)
	}

	p.CycleSpell()
	if p.CurrentSpell() != "ice" {
		t.Errorf("cycle should select ice, got %q", p.CurrentSpell())
	}
	p.CycleSpell()
	if p.CurrentSpell() != "fireball" {
		t.Errorf("cycle should wrap to fireball, got %q", p.CurrentSpell())
	}
	if p.SelectSpell("heal") {
		t.Error("selecting an unknown spell should fail")
	}
	if !p.SelectSpell("ice") || p.CurrentSpell() != "ice" {
		t.Error("selecting a known spell should succeed")
	}
}

func TestResetForArena(t *testing.T) {
	p := newTestPlayer()
	p.TakeDamage(70)
	p.SpendMana(80)
	p.Jump()
	p.ResetForArena(640, 640, -math.Pi/2)

	if p.Health != p.MaxHealth() || p.Mana != p.MaxMana() {
		t.Error("reset should refill health and mana")
	}
	if p.X != 640 || p.Y != 640 {
		t.Errorf("position = (%v,%v), want (640,640)", p.X, p.Y)
	}
	if math.Abs(p.Angle-3*math.Pi/2) > 1e-9 {
		t.Errorf("angle not normalized: %v", p.Angle)
	}
	if p.IsAirborne() {
		t.Error("reset should land the player")
	}
}

func TestUpdate_ManaRegenAndJump(t *testing.T) {
	p := newTestPlayer()
	p.SpendMana(50)
	p.Update(0.5)
	if p.Mana != 60 {
		t.Errorf("expected 10 mana regenerated, got %v", p.Mana)
	}

	p.Jump()
	p.Update(0.1)
	if p.Z <= 0 {
		t.Fatal("player should be airborne after a jump")
	}
	for i := 0; i < 200 && p.IsAirborne(); i++ {
		p.Update(1.0 / 60)
	}
	if p.IsAirborne() || p.Z != 0 {
		t.Errorf("player should land, z=%v", p.Z)
	}
}

func TestMove(t *testing.T) {
	cs := newRoom(t)

	t.Run("forward along facing", func(t *testing.T) {
		p := newTestPlayer()
		p.ResetForArena(160, 160, 0)
		p.Move(Input{Forward: true}, 0.1, cs)
		if math.Abs(p.X-172) > 1e-9 || math.Abs(p.Y-160) > 1e-9 {
			t.Errorf("position = (%v,%v), want (172,160)", p.X, p.Y)
		}
	})

	t.Run("sprint", func(t *testing.T) {
		p := newTestPlayer()
		p.ResetForArena(160, 160, 0)
		p.Move(Input{Forward: true, Sprint: true}, 0.1, cs)
		if math.Abs(p.X-178) > 1e-9 {
			t.Errorf("sprint X = %v, want 178", p.X)
		}
	})

	t.Run("strafe right is +y when facing +x", func(t *testing.T) {
		p := newTestPlayer()
		p.ResetForArena(160, 160, 0)
		p.Move(Input{StrafeRight: true}, 0.1, cs)
		if math.Abs(p.Y-172) > 1e-9 {
			t.Errorf("strafe Y = %v, want 172", p.Y)
		}
	})

	t.Run("wall blocks", func(t *testing.T) {
		p := newTestPlayer()
		p.ResetForArena(72, 160, math.Pi)
		p.Move(Input{Forward: true}, 0.1, cs)
		if p.X != 72 {
			t.Errorf("player walked into wall, X = %v", p.X)
		}
	})

	t.Run("turning", func(t *testing.T) {
		p := newTestPlayer()
		p.ResetForArena(160, 160, 0)
		p.Move(Input{TurnRight: true}, 0.5, cs)
		if math.Abs(p.Angle-1.5) > 1e-9 {
			t.Errorf("angle = %v, want 1.5", p.Angle)
		}
		p.Move(Input{MouseDX: -1000}, 0.1, cs)
		if math.Abs(p.Angle-(2*math.Pi-1.5)) > 1e-9 {
			t.Errorf("mouse look angle = %v", p.Angle)
		}
	})
}
