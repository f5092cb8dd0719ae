package arena

// Phase is the wave state machine position.
type Phase int

const (
	PhaseActive Phase = iota
	PhaseCompleting
	PhaseInterWaveDelay
	PhaseShopPrompt
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseActive:
		return "active"
	case PhaseCompleting:
		return "completing"
	case PhaseInterWaveDelay:
		return "inter_wave_delay"
	case PhaseShopPrompt:
		return "shop_prompt"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Simulating reports whether entities and projectiles advance in this phase.
func (p Phase) Simulating() bool {
	return p == PhaseActive || p == PhaseInterWaveDelay
}

// WaveInfo is the payload of WaveStarted.
type WaveInfo struct {
	Boss    bool
	Enemies int
}

// KillInfo is the payload of EntityKilled.
type KillInfo struct {
	ID    int
	Name  string
	Score int
	Boss  bool
}

// GameOverInfo is the payload of GameOver.
type GameOverInfo struct {
	Score       int
	HighestWave int
}
