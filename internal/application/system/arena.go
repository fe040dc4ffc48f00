package system

import (
	"github.com/younwookim/invaderers/internal/domain/entity"
	"github.com/younwookim/invaderers/internal/infrastructure/config"
)

// LoadArena builds the sprite array for a fresh game.
//
// The ship and the four walls start enabled. Every pooled sprite (invaderers,
// boss, missiles, bombs) starts disabled with its final geometry, parked off-screen.
func LoadArena(cfg *config.GameConfig) (entity.Layout, []entity.Sprite) {
	layout := entity.NewLayout(cfg.Invaders.Count(), cfg.Missiles.Count, cfg.Bombs.Count)

	sprites := make([]entity.Sprite, layout.NumSprites)
	for i := range sprites {
		sprites[i] = entity.NewSprite()
	}

	ship := cfg.Ship
	sprites[layout.Ship].Init(entity.TextureShip, ship.Spawn.X, ship.Spawn.Y,
		ship.Size.HalfWidth, ship.Size.HalfHeight, ship.FramesX, ship.FramesY)

	banner := cfg.Arena.Banner
	sprites[layout.GameOver].Init(entity.TextureGameOver, entity.OffscreenX, 0,
		banner.HalfWidth, banner.HalfHeight, 1, 1)

	ext := cfg.Arena.HalfExtent
	thick := cfg.Arena.Thickness
	walls := [entity.NumBorders]struct{ x, y, w, h float32 }{
		entity.BorderBottom: {0, -ext, ext, thick},
		entity.BorderTop:    {0, ext, ext, thick},
		entity.BorderLeft:   {-ext, 0, thick, ext},
		entity.BorderRight:  {ext, 0, thick, ext},
	}
	for side, w := range walls {
		sprites[layout.Border(side)].Init(entity.TextureBorder, w.x, w.y, w.w, w.h, 1, 1)
	}

	park := func(idx int, tex entity.TextureID, size config.Extent) {
		sprites[idx].Init(tex, entity.OffscreenX, 0, size.HalfWidth, size.HalfHeight, 1, 1)
		sprites[idx].SetEnabled(false)
	}

	park(layout.Boss, entity.TextureInvaderer, cfg.Boss.Size)
	for i := 0; i < layout.NumInvaderers; i++ {
		park(layout.Invaderer(i), entity.TextureInvaderer, cfg.Invaders.Size)
	}
	for i := 0; i < layout.NumMissiles; i++ {
		park(layout.Missile(i), entity.TextureMissile, cfg.Missiles.Size)
	}
	for i := 0; i < layout.NumBombs; i++ {
		park(layout.Bomb(i), entity.TextureBomb, cfg.Bombs.Size)
		park(layout.BossBomb(i), entity.TextureBomb, cfg.Bombs.Size)
	}

	return layout, sprites
}
