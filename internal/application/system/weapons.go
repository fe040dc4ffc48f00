package system

import "github.com/younwookim/invaderers/internal/domain/entity"

// fireMissiles launches one missile per fire press while the cooldown is clear
func (g *Invasion) fireMissiles(fire bool) {
	if g.missilesDisabled > 0 {
		g.missilesDisabled--
		return
	}
	if !fire {
		return
	}

	cfg := g.config.Missiles
	ship := g.sprite(g.layout.Ship)
	if g.launch(g.layout.FirstMissile, g.layout.NumMissiles, ship, cfg.LaunchOffsetY) {
		g.missilesDisabled = cfg.Cooldown
	}
}

// fireBombs picks a random invaderer slot and drops a bomb if it lines up with the ship
func (g *Invasion) fireBombs() {
	if g.bombsDisabled > 0 {
		g.bombsDisabled--
		return
	}

	j := g.rng.Intn(g.layout.NumInvaderers)
	g.dropBomb(g.sprite(g.layout.Invaderer(j)), g.layout.FirstBomb, g.config.Bombs.InvadererMargin)
}

// fireBoss drops a bomb from the boss on its own pool.
// The cooldown is shared with fireBombs and ticked by both.
func (g *Invasion) fireBoss() {
	if g.bombsDisabled > 0 {
		g.bombsDisabled--
		return
	}

	g.dropBomb(g.sprite(g.layout.Boss), g.layout.FirstBossBomb, g.config.Bombs.BossMargin)
}

func (g *Invasion) dropBomb(shooter *entity.Sprite, first int, margin float32) {
	if !shooter.Enabled() || !shooter.IsAbove(g.sprite(g.layout.Ship), margin) {
		return
	}

	cfg := g.config.Bombs
	if g.launch(first, g.layout.NumBombs, shooter, cfg.DropOffsetY) {
		g.bombsDisabled = cfg.Cooldown
	}
}

// launch enables the first free projectile of a pool next to the shooter
func (g *Invasion) launch(first, count int, shooter *entity.Sprite, offsetY float32) bool {
	for i := 0; i < count; i++ {
		p := g.sprite(first + i)
		if p.Enabled() {
			continue
		}
		p.SetRelative(shooter, 0, offsetY)
		p.SetEnabled(true)
		g.play(entity.SoundWhoosh)
		return true
	}
	return false
}

// moveMissiles advances missiles upward. A missile is spent on the first
// invaderer it touches, then on the boss, then on the top wall.
func (g *Invasion) moveMissiles() {
	speed := g.config.Missiles.Speed
	boss := g.sprite(g.layout.Boss)
	top := g.sprite(g.layout.Border(entity.BorderTop))

	for i := 0; i < g.layout.NumMissiles; i++ {
		missile := g.sprite(g.layout.Missile(i))
		if !missile.Enabled() {
			continue
		}
		missile.Translate(0, speed)

		if inv := g.hitInvaderer(missile); inv != nil {
			inv.Retire()
			missile.Retire()
			g.onHitInvaderer()
			continue
		}

		if boss.Enabled() && missile.CollidesWith(boss) {
			g.bossLives--
			missile.Retire()
			g.onHitInvaderer()
			continue
		}

		if missile.CollidesWith(top) {
			missile.Retire()
		}
	}
}

func (g *Invasion) hitInvaderer(missile *entity.Sprite) *entity.Sprite {
	for j := 0; j < g.layout.NumInvaderers; j++ {
		inv := g.sprite(g.layout.Invaderer(j))
		if inv.Enabled() && missile.CollidesWith(inv) {
			return inv
		}
	}
	return nil
}

// moveBombs advances one bomb pool downward. A bomb hitting the ship costs
// a life and holds the bomb cooldown; the floor just retires it.
func (g *Invasion) moveBombs(first int) {
	cfg := g.config.Bombs
	ship := g.sprite(g.layout.Ship)
	floor := g.sprite(g.layout.Border(entity.BorderBottom))

	for i := 0; i < g.layout.NumBombs; i++ {
		bomb := g.sprite(first + i)
		if !bomb.Enabled() {
			continue
		}
		bomb.Translate(0, -cfg.Speed)

		if bomb.CollidesWith(ship) {
			bomb.Retire()
			g.bombsDisabled = cfg.HitCooldown
			g.onHitShip()
			continue
		}

		if bomb.CollidesWith(floor) {
			bomb.Retire()
		}
	}
}
