package system

import (
	"math/rand"

	"github.com/younwookim/invaderers/internal/domain/entity"
	"github.com/younwookim/invaderers/internal/infrastructure/config"
)

// Invasion owns the sprite array and every counter of a single game.
// It advances one fixed frame per Step call.
type Invasion struct {
	config  *config.GameConfig
	layout  entity.Layout
	sprites []entity.Sprite
	rng     *rand.Rand

	missilesDisabled int
	bombsDisabled    int

	lives     int
	bossLives int
	score     int
	timer     int
	frame     int
	refresher int

	invaderVelocity float32
	bossVelocity    float32
	bossExists      bool
	gameOver        bool
	victory         bool

	// Event callbacks
	OnSound    func(id entity.SoundID)
	OnGameOver func(victory bool)
}

// NewInvasion creates a game with the arena loaded and all counters reset
func NewInvasion(cfg *config.GameConfig, rng *rand.Rand) *Invasion {
	layout, sprites := LoadArena(cfg)
	return &Invasion{
		config:          cfg,
		layout:          layout,
		sprites:         sprites,
		rng:             rng,
		bombsDisabled:   cfg.Bombs.InitialCooldown,
		lives:           cfg.Ship.Lives,
		bossLives:       cfg.Boss.Lives,
		invaderVelocity: cfg.Invaders.Velocity,
		bossVelocity:    cfg.Boss.Velocity,
	}
}

// Step runs one frame: the simulation, then the clock phase.
// Once the game is over only the frame counter moves.
func (g *Invasion) Step(input InputState) {
	g.frame++
	if g.gameOver {
		return
	}

	g.simulate(input)
	g.advanceClock()
}

func (g *Invasion) simulate(input InputState) {
	g.moveShip(input)
	g.animateShip()

	g.fireMissiles(input.Fire)
	g.fireBombs()
	g.fireBoss()

	g.moveMissiles()
	g.moveBombs(g.layout.FirstBomb)
	g.moveBombs(g.layout.FirstBossBomb)

	g.shipCollide()
	g.bossCollide()
	g.collider()
	g.invadersCollide()

	g.moveInvaders(0, g.invaderVelocity)
	g.moveBoss(g.bossVelocity, 0)
}

// advanceClock drives the frame-count schedules: the survival timer,
// invaderer refresh waves and the single boss spawn.
func (g *Invasion) advanceClock() {
	if g.gameOver {
		return
	}

	clock := g.config.Clock
	if g.frame%clock.Interval == clock.Phase {
		g.timer++
	}

	inv := g.config.Invaders
	if g.frame%inv.RefreshInterval == inv.RefreshPhase {
		g.refreshInvaders()
	}

	boss := g.config.Boss
	if g.frame%boss.SpawnInterval == boss.SpawnPhase && !g.bossExists {
		g.spawnBoss()
	}

	if g.bossLives <= 0 {
		g.endGame(true)
	}
}

func (g *Invasion) endGame(victory bool) {
	if g.gameOver {
		return
	}
	g.gameOver = true
	g.victory = victory
	g.sprites[g.layout.GameOver].Translate(-entity.OffscreenX, 0)

	if g.OnGameOver != nil {
		g.OnGameOver(victory)
	}
}

func (g *Invasion) play(id entity.SoundID) {
	if g.OnSound != nil {
		g.OnSound(id)
	}
}

func (g *Invasion) onHitInvaderer() {
	g.play(entity.SoundBang)
	g.score++
}

func (g *Invasion) onHitShip() {
	g.play(entity.SoundBang)

	g.lives--
	if g.lives <= 0 {
		g.endGame(false)
	}
}

func (g *Invasion) sprite(idx int) *entity.Sprite {
	return &g.sprites[idx]
}

// Sprites returns the sprite array in draw order. Callers must not modify it.
func (g *Invasion) Sprites() []entity.Sprite { return g.sprites }

// Layout returns the slot layout of the sprite array
func (g *Invasion) Layout() entity.Layout { return g.layout }

func (g *Invasion) Score() int       { return g.score }
func (g *Invasion) Timer() int       { return g.timer }
func (g *Invasion) Frame() int       { return g.frame }
func (g *Invasion) Lives() int       { return g.lives }
func (g *Invasion) BossLives() int   { return g.bossLives }
func (g *Invasion) BossExists() bool { return g.bossExists }
func (g *Invasion) GameOver() bool   { return g.gameOver }

// Victory reports whether the game ended with the boss destroyed
func (g *Invasion) Victory() bool { return g.victory }
