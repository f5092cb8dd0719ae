package config

import "math"

// Default returns the built-in configuration. config.yaml at the repository
// root carries the same values and is layered on top of these.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			ScreenWidth:  800,
			ScreenHeight: 600,
			WindowTitle:  "Spell Arena",
			TPS:          60,
		},
		World: WorldConfig{
			TileSize:  64,
			MapWidth:  20,
			MapHeight: 20,
		},
		Arena: ArenaConfig{
			CenterX: 10,
			CenterY: 10,
			Radius:  8,
			Pillars: true,
			PillarOffsets: [][2]int{
				{-3, -3}, {3, -3}, {-3, 3}, {3, 3},
				{0, -5}, {0, 5}, {-5, 0}, {5, 0},
			},
		},
		Town: TownConfig{
			Rows: [][]int{
				{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
				{1, 3, 3, 0, 2, 2, 0, 6, 6, 0, 2, 2, 0, 4, 1},
				{1, 3, 3, 0, 2, 2, 0, 6, 6, 0, 2, 2, 0, 4, 1},
				{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
				{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
				{1, 2, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 2, 1},
				{1, 2, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 2, 1},
				{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
				{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
				{1, 5, 5, 0, 2, 2, 0, 0, 0, 0, 2, 2, 0, 2, 1},
				{1, 5, 5, 0, 2, 2, 0, 0, 0, 0, 2, 2, 0, 2, 1},
				{1, 1, 1, 1, 1, 1, 0, 0, 0, 1, 1, 1, 1, 1, 1},
			},
		},
		Camera: CameraConfig{
			FieldOfView: math.Pi / 3,
			MaxDepth:    20,
			StepSize:    4,
		},
		Graphics: GraphicsConfig{
			WallHeightScale:   21000,
			BrightnessMin:     0.12,
			SpriteScale:       1000,
			BossSpriteScale:   1200,
			MinSpriteSize:     4,
			MinBossSpriteSize: 8,
			BossHeightFactor:  1.5,
			ViewBobFactor:     0.3,
			CeilingColor:      "midnightblue",
			FloorColor:        "darkslategray",
			WallColor:         "gray",
			PillarColor:       "saddlebrown",
			ShopColor:         "goldenrod",
		},
		Player: PlayerConfig{
			BaseHealth:             100,
			BaseMana:               100,
			ManaRegen:              20,
			MoveSpeed:              120,
			SprintMultiplier:       1.5,
			RotationSpeed:          3.0,
			MouseSensitivity:       0.003,
			CollisionBuffer:        8,
			Gravity:                800,
			JumpPower:              250,
			StartingSpells:         []string{"fireball"},
			MaxUpgradeLevel:        5,
			HealthPerArmorLevel:    20,
			ManaPerSpellLevel:      15,
			DamagePerSpellLevel:    0.25,
			ReductionPerArmorLevel: 0.1,
			BaseWeaponDamage:       30,
			WeaponDamagePerLevel:   15,
		},
		Combat: CombatConfig{
			EnemyAttackCooldownMs:   2000,
			BossAttackCooldownMs:    1500,
			FleeDistance:            100,
			FleeSpeedFactor:         0.7,
			HostileProjectileSpeed:  250,
			HostileProjectileSize:   6,
			HostileProjectileRadius: 25,
			HostileProjectileColor:  "magenta",
			BossResistance:          0.15,
			MinionOffsetMin:         60,
			MinionOffsetMax:         120,
			RageHealthThreshold:     0.3,
			RageDurationMs:          5000,
			RageSpeedMultiplier:     1.5,
			RageDamageMultiplier:    1.3,
		},
		Spells: map[string]*SpellConfig{
			"fireball":  {Name: "Fireball", Cost: 20, Speed: 300, Damage: 60, Size: 8, Color: "orangered"},
			"lightning": {Name: "Lightning Bolt", Cost: 15, Speed: 500, Damage: 40, Size: 6, Color: "yellow"},
			"ice":       {Name: "Ice Shard", Cost: 25, Speed: 250, Damage: 80, Size: 10, Color: "lightblue"},
			"heal":      {Name: "Healing Light", Cost: 30, Heal: 20, Instant: true, Color: "lime"},
		},
		Enemies: map[string]*EnemyConfig{
			"skeleton": {Name: "Skeleton", Health: 75, Speed: 40, Damage: 15, Size: 15, Score: 50, AttackRange: 45, Color: "ivory"},
			"orc":      {Name: "Orc", Health: 120, Speed: 35, Damage: 25, Size: 18, Score: 75, AttackRange: 45, Color: "olivedrab"},
			"troll":    {Name: "Troll", Health: 200, Speed: 25, Damage: 40, Size: 25, Score: 150, AttackRange: 45, Color: "sienna"},
			"demon":    {Name: "Demon", Health: 150, Speed: 50, Damage: 30, Size: 20, Score: 200, AttackRange: 45, Color: "crimson"},
		},
		Bosses: map[string]*BossConfig{
			"necromancer": {
				Name: "Necromancer", Health: 300, Speed: 30, Damage: 40, Size: 35, Score: 150,
				AttackRange: 150, Ranged: true, Projectiles: 1, Color: "purple",
				Special: "summon", SpecialCooldownMs: 2000, SummonKind: "skeleton", SummonCount: 2,
			},
			"orc_chieftain": {
				Name: "Orc Chieftain", Health: 500, Speed: 60, Damage: 20, Size: 40, Score: 200,
				AttackRange: 60, Color: "darkgreen",
				Special: "rage", SpecialCooldownMs: 8000,
				OpeningKind: "orc", OpeningCount: 3,
			},
			"ancient_troll": {
				Name: "Ancient Troll", Health: 600, Speed: 25, Damage: 80, Size: 50, Score: 300,
				AttackRange: 70, Color: "saddlebrown",
				Special: "regenerate", SpecialCooldownMs: 8000, RegenAmount: 40,
				OpeningKind: "troll", OpeningCount: 4, Decoy: true,
			},
			"demon_lord": {
				Name: "Demon Lord", Health: 1200, Speed: 70, Damage: 85, Size: 45, Score: 450,
				AttackRange: 200, Ranged: true, Projectiles: 3, Spread: 0.3, Color: "darkred",
				Special: "summon", SpecialCooldownMs: 5000, SummonKind: "demon", SummonCount: 3,
			},
		},
		Waves: WaveConfig{
			BaseEnemies:         4,
			HealthScalePerWave:  0.3,
			DamageScalePerWave:  0.2,
			TierOrder:           []string{"skeleton", "orc", "troll", "demon"},
			TierThresholds:      []int{4, 7, 11},
			BossEvery:           5,
			BossRoster:          []string{"necromancer", "orc_chieftain", "ancient_troll", "demon_lord"},
			BossScalePerCycle:   0.5,
			SpawnRadius:         7,
			SpawnInnerFraction:  0.7,
			SpawnRetries:        50,
			SafetyDistance:      100,
			FallbackOffsetX:     200,
			FallbackOffsetY:     0,
			InterWaveDelayMs:    3000,
			ShopPromptTimeoutMs: 10000,
			GameOverTimeoutMs:   5000,
		},
		Shop: ShopConfig{
			RobeCosts:   []int{400, 800, 1300, 2000},
			ArmorCosts:  []int{350, 700, 1100, 1700},
			SpellPrices: map[string]int{"lightning": 200, "ice": 300, "heal": 500},
			Potions: []PotionConfig{
				{Name: "Minor Healing Potion", Cost: 50, Heal: 30},
				{Name: "Healing Potion", Cost: 90, Heal: 60},
				{Name: "Greater Healing Potion", Cost: 150, Heal: 100},
				{Name: "Minor Mana Potion", Cost: 60, Mana: 40},
				{Name: "Mana Potion", Cost: 110, Mana: 80},
				{Name: "Full Restore", Cost: 300, Heal: 999, Mana: 999},
			},
			Names: ShopNamesConfig{
				Robes: []string{"Apprentice Robes", "Journeyman Robes", "Expert Robes", "Master Robes"},
				Armor: []string{"Leather Armor", "Chain Mail", "Plate Armor", "Enchanted Armor"},
			},
		},
		Threading: ThreadingConfig{
			ParallelRaycast: true,
		},
	}
}
