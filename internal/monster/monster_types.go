package monster

// EnemyKind is the config key of a regular enemy.
type EnemyKind string

const (
	Skeleton EnemyKind = "skeleton"
	Orc      EnemyKind = "orc"
	Troll    EnemyKind = "troll"
	Demon    EnemyKind = "demon"
)

// BossKind is the config key of a boss.
type BossKind string

const (
	Necromancer  BossKind = "necromancer"
	OrcChieftain BossKind = "orc_chieftain"
	AncientTroll BossKind = "ancient_troll"
	DemonLord    BossKind = "demon_lord"
)

type AIState int

const (
	StateSeeking AIState = iota
	StateAttacking
	StateFleeing
)

func (s AIState) String() string {
	switch s {
	case StateSeeking:
		return "seeking"
	case StateAttacking:
		return "attacking"
	case StateFleeing:
		return "fleeing"
	default:
		return "unknown"
	}
}

// Special is a boss's periodic ability.
type Special string

const (
	SpecialNone       Special = ""
	SpecialSummon     Special = "summon"
	SpecialRage       Special = "rage"
	SpecialRegenerate Special = "regenerate"
)

func specialFromConfig(name string) Special {
	switch Special(name) {
	case SpecialSummon, SpecialRage, SpecialRegenerate:
		return Special(name)
	default:
		return SpecialNone
	}
}
