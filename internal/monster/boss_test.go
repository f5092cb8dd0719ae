package monster_test

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"spellarena/internal/character"
	"spellarena/internal/clock"
	"spellarena/internal/config"
	"spellarena/internal/monster"
	monstermock "spellarena/internal/monster/mock"
	"spellarena/internal/world"
)

const center = 672.0

type BossTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	spawner *monstermock.MockSpawnRequester
	cfg     *config.Config
	grid    *world.Grid
	clock   *clock.Manual
	player  *character.Player
	rng     *rand.Rand
}

func (s *BossTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.spawner = monstermock.NewMockSpawnRequester(s.ctrl)
	s.cfg = config.Default()
	s.grid = world.NewArenaGrid(s.cfg)
	s.clock = clock.NewManual()
	s.player = character.NewPlayer(s.cfg.Player)
	s.player.ResetForArena(center, center, 0)
	s.rng = rand.New(rand.NewSource(7))
}

func (s *BossTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *BossTestSuite) tick() *monster.Tick {
	return &monster.Tick{
		Now:     s.clock.Now(),
		DT:      1.0 / 60,
		Target:  s.player,
		Terrain: s.grid,
		RNG:     s.rng,
	}
}

func (s *BossTestSuite) newBoss(kind monster.BossKind, x, y float64) *monster.Boss {
	return monster.NewBoss(1, kind, s.cfg, x, y, 1, s.clock.Now(), s.spawner)
}

// expectInBounds checks a minion request lands 60-120 units from the boss.
func (s *BossTestSuite) expectInBounds(bx, by float64) func(monster.EnemyKind, float64, float64) {
	return func(_ monster.EnemyKind, x, y float64) {
		d := math.Hypot(x-bx, y-by)
		s.GreaterOrEqual(d, 60.0-1e-9)
		s.LessOrEqual(d, 120.0+1e-9)
		s.GreaterOrEqual(x, 0.0)
		s.GreaterOrEqual(y, 0.0)
	}
}

func (s *BossTestSuite) TestNecromancerSummonsOnCooldown() {
	boss := s.newBoss(monster.Necromancer, center, center-250)

	// No summons until the cooldown has elapsed since spawn.
	boss.Update(s.tick())
	s.clock.Advance(1999 * time.Millisecond)
	boss.Update(s.tick())

	s.spawner.EXPECT().
		SpawnMinion(monster.Skeleton, gomock.Any(), gomock.Any()).
		Do(s.expectInBounds(boss.X, boss.Y)).
		Times(2)
	s.clock.Advance(time.Millisecond)
	boss.Update(s.tick())
}

func (s *BossTestSuite) TestSummonStopsWhenBossDies() {
	boss := s.newBoss(monster.Necromancer, center, center-250)
	boss.Kill()

	s.clock.Advance(10 * time.Second)
	boss.Update(s.tick())
	s.False(boss.IsAlive())
}

func (s *BossTestSuite) TestResistance() {
	boss := s.newBoss(monster.Necromancer, center, center-250)

	s.False(boss.TakeDamage(100))
	s.InDelta(215.0, boss.Health, 1e-9)
	s.False(boss.TakeDamage(0))
	s.InDelta(215.0, boss.Health, 1e-9)
}

func (s *BossTestSuite) TestScaledBoss() {
	boss := monster.NewBoss(3, monster.DemonLord, s.cfg, center, center, 1.5, s.clock.Now(), s.spawner)

	s.InDelta(1800.0, boss.MaxHealth, 1e-9)
	s.InDelta(127.5, boss.Damage, 1e-9)
	s.Equal(450, boss.ScoreValue)
	s.True(boss.IsBoss())
	s.True(boss.IsReal)
}

func (s *BossTestSuite) TestDemonLordFiresSpread() {
	boss := s.newBoss(monster.DemonLord, center+150, center)

	boss.Update(s.tick())

	s.Require().Len(boss.Projectiles, 3)
	s.InDelta(math.Pi-0.3, boss.Projectiles[0].Angle, 1e-9)
	s.InDelta(math.Pi, boss.Projectiles[1].Angle, 1e-9)
	s.InDelta(math.Pi+0.3, boss.Projectiles[2].Angle, 1e-9)
	s.Equal(s.player.MaxHealth(), s.player.Health)

	// Still on cooldown.
	s.clock.Advance(time.Second)
	boss.Update(s.tick())
	s.Len(boss.Projectiles, 3)
}

func (s *BossTestSuite) TestOrcChieftainOpeningAndRageThreshold() {
	boss := s.newBoss(monster.OrcChieftain, center, center-250)

	s.spawner.EXPECT().SpawnMinion(monster.Orc, gomock.Any(), gomock.Any()).Times(3)
	boss.Update(s.tick())
	boss.Update(s.tick())

	s.False(boss.Raging)
	// 400 after resistance leaves 100 of 500, under the 30% threshold.
	s.False(boss.TakeDamage(400 / 0.85))
	s.True(boss.Raging)
	s.InDelta(90.0, boss.Speed, 1e-9)
	s.InDelta(26.0, boss.Damage, 1e-9)

	// A second crossing while raging does not stack.
	boss.TakeDamage(10)
	s.InDelta(90.0, boss.Speed, 1e-9)

	s.clock.Advance(5 * time.Second)
	boss.Update(s.tick())
	s.False(boss.Raging)
	s.InDelta(60.0, boss.Speed, 1e-9)
	s.InDelta(20.0, boss.Damage, 1e-9)
}

func (s *BossTestSuite) TestOrcChieftainPeriodicRage() {
	boss := s.newBoss(monster.OrcChieftain, center, center-250)
	s.spawner.EXPECT().SpawnMinion(monster.Orc, gomock.Any(), gomock.Any()).Times(3)

	boss.Update(s.tick())
	s.False(boss.Raging)

	s.clock.Advance(8 * time.Second)
	boss.Update(s.tick())
	s.True(boss.Raging)
}

func (s *BossTestSuite) TestAncientTrollOpeningDecoyAndRegen() {
	boss := s.newBoss(monster.AncientTroll, center, center-250)

	s.spawner.EXPECT().SpawnMinion(monster.Troll, gomock.Any(), gomock.Any()).Times(4)
	s.spawner.EXPECT().SpawnDecoy(boss, gomock.Any(), gomock.Any()).Times(1)
	boss.Update(s.tick())
	boss.Update(s.tick())

	boss.TakeDamage(100 / 0.85)
	s.InDelta(500.0, boss.Health, 1e-9)

	s.clock.Advance(8 * time.Second)
	boss.Update(s.tick())
	s.InDelta(540.0, boss.Health, 1e-9)

	s.clock.Advance(8 * time.Second)
	boss.Update(s.tick())
	s.clock.Advance(8 * time.Second)
	boss.Update(s.tick())
	s.InDelta(600.0, boss.Health, 1e-9, "regeneration caps at max health")
}

func (s *BossTestSuite) TestDecoy() {
	boss := s.newBoss(monster.AncientTroll, center, center-250)
	decoy := monster.NewDecoy(2, boss, center+100, center-250, s.clock.Now())

	s.False(decoy.IsReal)
	s.Equal(boss.ID, decoy.OriginalID)
	s.Equal(0, decoy.ScoreValue)
	s.Equal(1.0, decoy.MaxHealth)
	s.Equal(monster.SpecialNone, decoy.Special)
	s.NotEqual(boss.DisplayColor(), decoy.DisplayColor())

	// Decoys never spawn openings or use specials.
	s.clock.Advance(30 * time.Second)
	decoy.Update(s.tick())

	s.False(decoy.TakeDamage(0))
	s.True(decoy.TakeDamage(0.01))
	s.False(decoy.IsAlive())
	s.False(decoy.TakeDamage(50))
}

func TestBossSuite(t *testing.T) {
	suite.Run(t, new(BossTestSuite))
}
