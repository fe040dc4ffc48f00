package entity

// Border slots, relative to Layout.FirstBorder
const (
	BorderBottom = iota
	BorderTop
	BorderLeft
	BorderRight
	NumBorders
)

// Layout maps roles onto indices of the sprite array.
//
// Order: ship, boss, invaderers, missiles, bombs, boss bombs, borders, game over banner.
type Layout struct {
	NumInvaderers int
	NumMissiles   int
	NumBombs      int

	Ship           int
	Boss           int
	FirstInvaderer int
	FirstMissile   int
	FirstBomb      int
	FirstBossBomb  int
	FirstBorder    int
	GameOver       int
	NumSprites     int
}

// NewLayout computes slot indices for the given pool sizes
func NewLayout(numInvaderers, numMissiles, numBombs int) Layout {
	l := Layout{
		NumInvaderers: numInvaderers,
		NumMissiles:   numMissiles,
		NumBombs:      numBombs,
		Ship:          0,
		Boss:          1,
	}
	l.FirstInvaderer = l.Boss + 1
	l.FirstMissile = l.FirstInvaderer + numInvaderers
	l.FirstBomb = l.FirstMissile + numMissiles
	l.FirstBossBomb = l.FirstBomb + numBombs
	l.FirstBorder = l.FirstBossBomb + numBombs
	l.GameOver = l.FirstBorder + NumBorders
	l.NumSprites = l.GameOver + 1
	return l
}

// Invaderer returns the slot of the i-th invaderer
func (l Layout) Invaderer(i int) int { return l.FirstInvaderer + i }

// Missile returns the slot of the i-th missile
func (l Layout) Missile(i int) int { return l.FirstMissile + i }

// Bomb returns the slot of the i-th invaderer bomb
func (l Layout) Bomb(i int) int { return l.FirstBomb + i }

// BossBomb returns the slot of the i-th boss bomb
func (l Layout) BossBomb(i int) int { return l.FirstBossBomb + i }

// Border returns the slot of a border (BorderBottom..BorderRight)
func (l Layout) Border(side int) int { return l.FirstBorder + side }
