package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when a config value is out of range
var ErrInvalidConfig = errors.New("invalid config")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...)
}

// Validate checks the values the simulation divides by or indexes with
func (c *GameConfig) Validate() error {
	switch {
	case c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0:
		return invalid("display size must be positive, got %dx%d", c.Display.ScreenWidth, c.Display.ScreenHeight)
	case c.Display.Framerate <= 0:
		return invalid("display.framerate must be positive, got %d", c.Display.Framerate)
	case c.Camera.Distance <= 0:
		return invalid("camera.distance must be positive, got %v", c.Camera.Distance)
	case c.Camera.FovDeg <= 0 || c.Camera.FovDeg >= 180:
		return invalid("camera.fovDeg must be in (0, 180), got %v", c.Camera.FovDeg)
	case c.Clock.Interval <= 0:
		return invalid("clock.interval must be positive, got %d", c.Clock.Interval)
	case c.Arena.HalfExtent <= 0:
		return invalid("arena.halfExtent must be positive, got %v", c.Arena.HalfExtent)
	case c.Ship.Lives <= 0:
		return invalid("ship.lives must be positive, got %d", c.Ship.Lives)
	case c.Missiles.Count <= 0:
		return invalid("missiles.count must be positive, got %d", c.Missiles.Count)
	case c.Bombs.Count <= 0:
		return invalid("bombs.count must be positive, got %d", c.Bombs.Count)
	case c.Invaders.WaveSize <= 0 || c.Invaders.Waves <= 0:
		return invalid("invaders.waveSize and invaders.waves must be positive, got %d and %d",
			c.Invaders.WaveSize, c.Invaders.Waves)
	case c.Invaders.RefreshInterval <= 0:
		return invalid("invaders.refreshInterval must be positive, got %d", c.Invaders.RefreshInterval)
	case c.Invaders.SpawnMaxX < c.Invaders.SpawnMinX:
		return invalid("invaders.spawnMaxX %v is below spawnMinX %v", c.Invaders.SpawnMaxX, c.Invaders.SpawnMinX)
	case c.Boss.Lives <= 0:
		return invalid("boss.lives must be positive, got %d", c.Boss.Lives)
	case c.Boss.SpawnInterval <= 0:
		return invalid("boss.spawnInterval must be positive, got %d", c.Boss.SpawnInterval)
	case c.Audio.Sources <= 0:
		return invalid("audio.sources must be positive, got %d", c.Audio.Sources)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return invalid("audio.volume must be in [0, 1], got %v", c.Audio.Volume)
	}

	if c.Audio.Enabled && c.Audio.SampleRate <= 0 {
		return invalid("audio.sampleRate must be positive, got %d", c.Audio.SampleRate)
	}

	return nil
}
