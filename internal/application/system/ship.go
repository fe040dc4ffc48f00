package system

import "github.com/younwookim/invaderers/internal/domain/entity"

// moveShip steps the ship one speed unit per held direction. Left wins over
// right and up over down. A step into a wall is undone.
func (g *Invasion) moveShip(input InputState) {
	speed := g.config.Ship.Speed

	switch {
	case input.Left:
		g.stepShip(-speed, 0, entity.BorderLeft)
	case input.Right:
		g.stepShip(speed, 0, entity.BorderRight)
	}

	switch {
	case input.Up:
		g.stepShip(0, speed, entity.BorderTop)
	case input.Down:
		g.stepShip(0, -speed, entity.BorderBottom)
	}
}

func (g *Invasion) stepShip(dx, dy float32, wall int) {
	ship := g.sprite(g.layout.Ship)
	ship.Translate(dx, dy)
	if ship.CollidesWith(g.sprite(g.layout.Border(wall))) {
		ship.Translate(-dx, -dy)
	}
}

// animateShip cycles the ship through its sprite sheet
func (g *Invasion) animateShip() {
	rate := g.config.Ship.AnimationRate
	if rate <= 0 {
		return
	}
	g.sprite(g.layout.Ship).SetFrame(g.frame / rate)
}

// shipCollide costs a life for every invaderer touching the ship.
// The invaderer is retired so a single contact is counted once.
func (g *Invasion) shipCollide() {
	ship := g.sprite(g.layout.Ship)
	for i := 0; i < g.layout.NumInvaderers; i++ {
		inv := g.sprite(g.layout.Invaderer(i))
		if inv.Enabled() && inv.CollidesWith(ship) {
			inv.Retire()
			g.onHitShip()
		}
	}
}
