package config

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"time"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// Config holds all game configuration values
type Config struct {
	Display   DisplayConfig           `yaml:"display"`
	World     WorldConfig             `yaml:"world"`
	Arena     ArenaConfig             `yaml:"arena"`
	Town      TownConfig              `yaml:"town"`
	Camera    CameraConfig            `yaml:"camera"`
	Graphics  GraphicsConfig          `yaml:"graphics"`
	Player    PlayerConfig            `yaml:"player"`
	Combat    CombatConfig            `yaml:"combat"`
	Spells    map[string]*SpellConfig `yaml:"spells"`
	Enemies   map[string]*EnemyConfig `yaml:"enemies"`
	Bosses    map[string]*BossConfig  `yaml:"bosses"`
	Waves     WaveConfig              `yaml:"waves"`
	Shop      ShopConfig              `yaml:"shop"`
	Threading ThreadingConfig         `yaml:"threading"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	WindowTitle  string `yaml:"window_title"`
	TPS          int    `yaml:"tps"`
}

type WorldConfig struct {
	TileSize  int `yaml:"tile_size"`
	MapWidth  int `yaml:"map_width"`
	MapHeight int `yaml:"map_height"`
}

// ArenaConfig describes the carved circular arena. Center and radius are in tiles.
type ArenaConfig struct {
	CenterX       int      `yaml:"center_x"`
	CenterY       int      `yaml:"center_y"`
	Radius        float64  `yaml:"radius"`
	Pillars       bool     `yaml:"pillars"`
	PillarOffsets [][2]int `yaml:"pillar_offsets"`
	MapFile       string   `yaml:"map_file"`
}

// TownConfig is the town variant of the map: integer rows, 0 walkable.
type TownConfig struct {
	Rows [][]int `yaml:"rows"`
}

type CameraConfig struct {
	FieldOfView float64 `yaml:"field_of_view"` // radians
	MaxDepth    float64 `yaml:"max_depth"`     // tiles
	StepSize    float64 `yaml:"step_size"`     // world units per march step
	Rays        int     `yaml:"rays"`          // 0 means one ray per two screen columns
}

type GraphicsConfig struct {
	WallHeightScale   float64 `yaml:"wall_height_scale"`
	BrightnessMin     float64 `yaml:"brightness_min"`
	SpriteScale       float64 `yaml:"sprite_scale"`
	BossSpriteScale   float64 `yaml:"boss_sprite_scale"`
	MinSpriteSize     float64 `yaml:"min_sprite_size"`
	MinBossSpriteSize float64 `yaml:"min_boss_sprite_size"`
	BossHeightFactor  float64 `yaml:"boss_height_factor"`
	ViewBobFactor     float64 `yaml:"view_bob_factor"`
	CeilingColor      string  `yaml:"ceiling_color"`
	FloorColor        string  `yaml:"floor_color"`
	WallColor         string  `yaml:"wall_color"`
	PillarColor       string  `yaml:"pillar_color"`
	ShopColor         string  `yaml:"shop_color"`
}

type PlayerConfig struct {
	BaseHealth             float64  `yaml:"base_health"`
	BaseMana               float64  `yaml:"base_mana"`
	ManaRegen              float64  `yaml:"mana_regen"` // per second
	MoveSpeed              float64  `yaml:"move_speed"`
	SprintMultiplier       float64  `yaml:"sprint_multiplier"`
	RotationSpeed          float64  `yaml:"rotation_speed"`
	MouseSensitivity       float64  `yaml:"mouse_sensitivity"`
	CollisionBuffer        float64  `yaml:"collision_buffer"`
	Gravity                float64  `yaml:"gravity"`
	JumpPower              float64  `yaml:"jump_power"`
	StartGold              int      `yaml:"start_gold"`
	StartingSpells         []string `yaml:"starting_spells"`
	MaxUpgradeLevel        int      `yaml:"max_upgrade_level"`
	HealthPerArmorLevel    float64  `yaml:"health_per_armor_level"`
	ManaPerSpellLevel      float64  `yaml:"mana_per_spell_level"`
	DamagePerSpellLevel    float64  `yaml:"damage_per_spell_level"`
	ReductionPerArmorLevel float64  `yaml:"reduction_per_armor_level"`
	BaseWeaponDamage       float64  `yaml:"base_weapon_damage"`
	WeaponDamagePerLevel   float64  `yaml:"weapon_damage_per_level"`
}

// CombatConfig holds the tuning shared by every hostile entity.
type CombatConfig struct {
	EnemyAttackCooldownMs   int     `yaml:"enemy_attack_cooldown_ms"`
	BossAttackCooldownMs    int     `yaml:"boss_attack_cooldown_ms"`
	FleeDistance            float64 `yaml:"flee_distance"`
	FleeSpeedFactor         float64 `yaml:"flee_speed_factor"`
	HostileProjectileSpeed  float64 `yaml:"hostile_projectile_speed"`
	HostileProjectileSize   float64 `yaml:"hostile_projectile_size"`
	HostileProjectileRadius float64 `yaml:"hostile_projectile_radius"`
	HostileProjectileColor  string  `yaml:"hostile_projectile_color"`
	BossResistance          float64 `yaml:"boss_resistance"`
	MinionOffsetMin         float64 `yaml:"minion_offset_min"`
	MinionOffsetMax         float64 `yaml:"minion_offset_max"`
	RageHealthThreshold     float64 `yaml:"rage_health_threshold"`
	RageDurationMs          int     `yaml:"rage_duration_ms"`
	RageSpeedMultiplier     float64 `yaml:"rage_speed_multiplier"`
	RageDamageMultiplier    float64 `yaml:"rage_damage_multiplier"`
}

type SpellConfig struct {
	Name    string  `yaml:"name"`
	Cost    float64 `yaml:"cost"`
	Speed   float64 `yaml:"speed"`
	Damage  float64 `yaml:"damage"`
	Size    float64 `yaml:"size"`
	Heal    float64 `yaml:"heal"`
	Instant bool    `yaml:"instant"`
	Color   string  `yaml:"color"`
}

type EnemyConfig struct {
	Name        string  `yaml:"name"`
	Health      float64 `yaml:"health"`
	Speed       float64 `yaml:"speed"`
	Damage      float64 `yaml:"damage"`
	Size        float64 `yaml:"size"`
	Score       int     `yaml:"score"`
	AttackRange float64 `yaml:"attack_range"`
	Ranged      bool    `yaml:"ranged"`
	Color       string  `yaml:"color"`
}

type BossConfig struct {
	Name              string  `yaml:"name"`
	Health            float64 `yaml:"health"`
	Speed             float64 `yaml:"speed"`
	Damage            float64 `yaml:"damage"`
	Size              float64 `yaml:"size"`
	Score             int     `yaml:"score"`
	AttackRange       float64 `yaml:"attack_range"`
	Ranged            bool    `yaml:"ranged"`
	Projectiles       int     `yaml:"projectiles"`
	Spread            float64 `yaml:"spread"`
	Color             string  `yaml:"color"`
	Special           string  `yaml:"special"` // summon, rage, regenerate or none
	SpecialCooldownMs int     `yaml:"special_cooldown_ms"`
	SummonKind        string  `yaml:"summon_kind"`
	SummonCount       int     `yaml:"summon_count"`
	RegenAmount       float64 `yaml:"regen_amount"`
	OpeningKind       string  `yaml:"opening_kind"`
	OpeningCount      int     `yaml:"opening_count"`
	Decoy             bool    `yaml:"decoy"`
}

type WaveConfig struct {
	BaseEnemies         int      `yaml:"base_enemies"`
	HealthScalePerWave  float64  `yaml:"health_scale_per_wave"`
	DamageScalePerWave  float64  `yaml:"damage_scale_per_wave"`
	TierOrder           []string `yaml:"tier_order"`
	TierThresholds      []int    `yaml:"tier_thresholds"`
	BossEvery           int      `yaml:"boss_every"`
	BossRoster          []string `yaml:"boss_roster"`
	BossScalePerCycle   float64  `yaml:"boss_scale_per_cycle"`
	SpawnRadius         float64  `yaml:"spawn_radius"` // tiles
	SpawnInnerFraction  float64  `yaml:"spawn_inner_fraction"`
	SpawnRetries        int      `yaml:"spawn_retries"`
	SafetyDistance      float64  `yaml:"safety_distance"`
	FallbackOffsetX     float64  `yaml:"fallback_offset_x"`
	FallbackOffsetY     float64  `yaml:"fallback_offset_y"`
	InterWaveDelayMs    int      `yaml:"inter_wave_delay_ms"`
	ShopPromptTimeoutMs int      `yaml:"shop_prompt_timeout_ms"`
	GameOverTimeoutMs   int      `yaml:"game_over_timeout_ms"`
}

type ShopConfig struct {
	RobeCosts   []int           `yaml:"robe_costs"`  // spell level 2..5
	ArmorCosts  []int           `yaml:"armor_costs"` // armor level 2..5
	SpellPrices map[string]int  `yaml:"spell_prices"`
	Potions     []PotionConfig  `yaml:"potions"`
	Names       ShopNamesConfig `yaml:"names"`
}

type PotionConfig struct {
	Name string  `yaml:"name"`
	Cost int     `yaml:"cost"`
	Heal float64 `yaml:"heal"`
	Mana float64 `yaml:"mana"`
}

type ShopNamesConfig struct {
	Robes []string `yaml:"robes"`
	Armor []string `yaml:"armor"`
}

type ThreadingConfig struct {
	Workers         int  `yaml:"workers"` // 0 means runtime.NumCPU
	ParallelRaycast bool `yaml:"parallel_raycast"`
}

// LoadConfig reads a YAML file on top of the built-in defaults and validates the result.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", filename, err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", filename, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", filename, err)
	}

	return config, nil
}

func MustLoadConfig(filename string) *Config {
	config, err := LoadConfig(filename)
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}
	return config
}

// Validate checks the cross references between the stat tables.
func (c *Config) Validate() error {
	if c.World.TileSize <= 0 {
		return fmt.Errorf("world.tile_size must be positive, got %d", c.World.TileSize)
	}
	if c.World.MapWidth <= 0 || c.World.MapHeight <= 0 {
		return fmt.Errorf("world map size must be positive, got %dx%d", c.World.MapWidth, c.World.MapHeight)
	}
	if c.Camera.FieldOfView <= 0 || c.Camera.FieldOfView >= math.Pi {
		return fmt.Errorf("camera.field_of_view must be in (0, pi), got %f", c.Camera.FieldOfView)
	}
	if c.Camera.StepSize <= 0 {
		return fmt.Errorf("camera.step_size must be positive")
	}
	if len(c.Waves.TierOrder) == 0 {
		return fmt.Errorf("waves.tier_order is empty")
	}
	if len(c.Waves.TierThresholds) != len(c.Waves.TierOrder)-1 {
		return fmt.Errorf("waves.tier_thresholds needs %d entries, got %d",
			len(c.Waves.TierOrder)-1, len(c.Waves.TierThresholds))
	}
	for _, key := range c.Waves.TierOrder {
		if _, ok := c.Enemies[key]; !ok {
			return fmt.Errorf("waves.tier_order references unknown enemy %q", key)
		}
	}
	if len(c.Waves.BossRoster) == 0 {
		return fmt.Errorf("waves.boss_roster is empty")
	}
	if c.Waves.BossEvery <= 0 {
		return fmt.Errorf("waves.boss_every must be positive")
	}
	for _, key := range c.Waves.BossRoster {
		boss, ok := c.Bosses[key]
		if !ok {
			return fmt.Errorf("waves.boss_roster references unknown boss %q", key)
		}
		if boss.SummonKind != "" {
			if _, ok := c.Enemies[boss.SummonKind]; !ok {
				return fmt.Errorf("boss %q summons unknown enemy %q", key, boss.SummonKind)
			}
		}
		if boss.OpeningKind != "" {
			if _, ok := c.Enemies[boss.OpeningKind]; !ok {
				return fmt.Errorf("boss %q opens with unknown enemy %q", key, boss.OpeningKind)
			}
		}
	}
	for _, key := range c.Player.StartingSpells {
		if _, ok := c.Spells[key]; !ok {
			return fmt.Errorf("player.starting_spells references unknown spell %q", key)
		}
	}
	return nil
}

func (c *Config) GetScreenWidth() int {
	return c.Display.ScreenWidth
}

func (c *Config) GetScreenHeight() int {
	return c.Display.ScreenHeight
}

func (c *Config) GetTileSize() float64 {
	return float64(c.World.TileSize)
}

func (c *Config) GetCameraFOV() float64 {
	return c.Camera.FieldOfView
}

// GetViewDistance returns the maximum ray depth in world units.
func (c *Config) GetViewDistance() float64 {
	return c.Camera.MaxDepth * c.GetTileSize()
}

// GetNumRays returns the configured ray count, defaulting to one ray per two columns.
func (c *Config) GetNumRays() int {
	if c.Camera.Rays > 0 {
		return c.Camera.Rays
	}
	return c.Display.ScreenWidth / 2
}

// GetSpellConfig returns the spell entry, or a harmless zero-damage fallback.
func (c *Config) GetSpellConfig(key string) *SpellConfig {
	if spell, ok := c.Spells[key]; ok {
		return spell
	}
	return &SpellConfig{Name: key, Speed: 300, Size: 8, Color: "white"}
}

// Millis converts a millisecond config value to a duration.
func Millis(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

// ColorByName resolves an SVG colour name, falling back to white for unknown names.
func ColorByName(name string) color.RGBA {
	if c, ok := colornames.Map[name]; ok {
		return c
	}
	return colornames.White
}
