package system

import "github.com/younwookim/invaderers/internal/domain/entity"

func (g *Invasion) moveInvaders(dx, dy float32) {
	for i := 0; i < g.layout.NumInvaderers; i++ {
		inv := g.sprite(g.layout.Invaderer(i))
		if inv.Enabled() {
			inv.Translate(dx, dy)
		}
	}
}

func (g *Invasion) moveBoss(dx, dy float32) {
	boss := g.sprite(g.layout.Boss)
	if boss.Enabled() {
		boss.Translate(dx, dy)
	}
}

// bossCollide bounces the boss off the side walls
func (g *Invasion) bossCollide() {
	boss := g.sprite(g.layout.Boss)
	if !boss.Enabled() {
		return
	}

	for _, side := range [...]int{entity.BorderLeft, entity.BorderRight} {
		if boss.CollidesWith(g.sprite(g.layout.Border(side))) {
			g.bossVelocity = -g.bossVelocity
			g.moveBoss(g.bossVelocity, 0)
		}
	}
}

// collider retires every invaderer overlapping the most recently refreshed slot
func (g *Invasion) collider() {
	fresh := g.sprite(g.layout.Invaderer(g.refresher))
	for i := 0; i < g.layout.NumInvaderers; i++ {
		if i == g.refresher {
			continue
		}
		inv := g.sprite(g.layout.Invaderer(i))
		if inv.Enabled() && inv.CollidesWith(fresh) {
			inv.Retire()
		}
	}
}

// invadersCollide retires invaderers that reached the floor
func (g *Invasion) invadersCollide() {
	floor := g.sprite(g.layout.Border(entity.BorderBottom))
	for i := 0; i < g.layout.NumInvaderers; i++ {
		inv := g.sprite(g.layout.Invaderer(i))
		if inv.Enabled() && inv.CollidesWith(floor) {
			inv.Retire()
		}
	}
}

// refreshInvaders re-spawns one wave of invaderers round-robin over the pool.
// Each fresh invaderer displaces whatever it overlaps.
func (g *Invasion) refreshInvaders() {
	cfg := g.config.Invaders
	y := cfg.SpawnY
	if g.bossExists {
		y = cfg.SpawnYWithBoss
	}

	for k := 0; k < cfg.WaveSize; k++ {
		g.refresher = (g.refresher + 1) % g.layout.NumInvaderers
		x := cfg.SpawnMinX + g.rng.Float32()*(cfg.SpawnMaxX-cfg.SpawnMinX)
		g.sprite(g.layout.Invaderer(g.refresher)).Init(entity.TextureInvaderer, x, y,
			cfg.Size.HalfWidth, cfg.Size.HalfHeight, 1, 1)
		g.collider()
	}
}

func (g *Invasion) spawnBoss() {
	cfg := g.config.Boss
	g.sprite(g.layout.Boss).Init(entity.TextureInvaderer, cfg.Spawn.X, cfg.Spawn.Y,
		cfg.Size.HalfWidth, cfg.Size.HalfHeight, 1, 1)
	g.bossExists = true
}
