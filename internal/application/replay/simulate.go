package replay

import (
	"math/rand"

	"github.com/younwookim/invaderers/internal/application/system"
	"github.com/younwookim/invaderers/internal/infrastructure/config"
)

// Result summarizes a headless playback
type Result struct {
	Frames    int
	Score     int
	Time      int
	Lives     int
	BossLives int
	GameOver  bool
	Victory   bool
}

// Outcome names how the run ended
func (r Result) Outcome() string {
	switch {
	case r.Victory:
		return "victory"
	case r.GameOver:
		return "defeat"
	default:
		return "unfinished"
	}
}

// Simulate feeds every recorded frame into a fresh invasion seeded from the
// replay. Playback stops early once the game is over.
func Simulate(cfg *config.GameConfig, data ReplayData) Result {
	replayer := NewReplayer(data)
	game := system.NewInvasion(cfg, rand.New(rand.NewSource(replayer.Seed())))

	for !game.GameOver() {
		input, ok := replayer.GetInput()
		if !ok {
			break
		}
		game.Step(input)
	}

	return Result{
		Frames:    replayer.CurrentFrame(),
		Score:     game.Score(),
		Time:      game.Timer(),
		Lives:     game.Lives(),
		BossLives: game.BossLives(),
		GameOver:  game.GameOver(),
		Victory:   game.Victory(),
	}
}
