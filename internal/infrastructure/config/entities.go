package config

// Extent is a sprite's half width and half height in world units
type Extent struct {
	HalfWidth  float32 `json:"halfWidth" yaml:"halfWidth"`
	HalfHeight float32 `json:"halfHeight" yaml:"halfHeight"`
}

// Point is a world position
type Point struct {
	X float32 `json:"x" yaml:"x"`
	Y float32 `json:"y" yaml:"y"`
}

type ShipConfig struct {
	Spawn   Point   `json:"spawn" yaml:"spawn"`
	Size    Extent  `json:"size" yaml:"size"`
	Speed   float32 `json:"speed" yaml:"speed"`
	Lives   int     `json:"lives" yaml:"lives"`
	FramesX int     `json:"framesX" yaml:"framesX"`
	FramesY int     `json:"framesY" yaml:"framesY"`
	// Frames between thrust animation steps, 0 = no animation
	AnimationRate int `json:"animationRate" yaml:"animationRate"`
}

type MissileConfig struct {
	Count         int     `json:"count" yaml:"count"`
	Size          Extent  `json:"size" yaml:"size"`
	Speed         float32 `json:"speed" yaml:"speed"`
	Cooldown      int     `json:"cooldown" yaml:"cooldown"`
	LaunchOffsetY float32 `json:"launchOffsetY" yaml:"launchOffsetY"`
}

type BombConfig struct {
	Count           int     `json:"count" yaml:"count"`
	Size            Extent  `json:"size" yaml:"size"`
	Speed           float32 `json:"speed" yaml:"speed"`
	InitialCooldown int     `json:"initialCooldown" yaml:"initialCooldown"`
	Cooldown        int     `json:"cooldown" yaml:"cooldown"`
	HitCooldown     int     `json:"hitCooldown" yaml:"hitCooldown"`
	DropOffsetY     float32 `json:"dropOffsetY" yaml:"dropOffsetY"`
	// Column widening used when deciding whether a shooter lines up with the ship
	InvadererMargin float32 `json:"invadererMargin" yaml:"invadererMargin"`
	BossMargin      float32 `json:"bossMargin" yaml:"bossMargin"`
}

type InvaderConfig struct {
	WaveSize        int     `json:"waveSize" yaml:"waveSize"`
	Waves           int     `json:"waves" yaml:"waves"`
	Size            Extent  `json:"size" yaml:"size"`
	Velocity        float32 `json:"velocity" yaml:"velocity"`
	SpawnMinX       float32 `json:"spawnMinX" yaml:"spawnMinX"`
	SpawnMaxX       float32 `json:"spawnMaxX" yaml:"spawnMaxX"`
	SpawnY          float32 `json:"spawnY" yaml:"spawnY"`
	SpawnYWithBoss  float32 `json:"spawnYWithBoss" yaml:"spawnYWithBoss"`
	RefreshInterval int     `json:"refreshInterval" yaml:"refreshInterval"`
	RefreshPhase    int     `json:"refreshPhase" yaml:"refreshPhase"`
}

// Count returns the size of the invaderer pool
func (c InvaderConfig) Count() int {
	return c.WaveSize * c.Waves
}

type BossConfig struct {
	Spawn         Point   `json:"spawn" yaml:"spawn"`
	Size          Extent  `json:"size" yaml:"size"`
	Lives         int     `json:"lives" yaml:"lives"`
	Velocity      float32 `json:"velocity" yaml:"velocity"`
	SpawnInterval int     `json:"spawnInterval" yaml:"spawnInterval"`
	SpawnPhase    int     `json:"spawnPhase" yaml:"spawnPhase"`
}

// ArenaConfig describes the four walls around the play field
// and the banner shown when the game ends.
type ArenaConfig struct {
	HalfExtent float32 `json:"halfExtent" yaml:"halfExtent"`
	Thickness  float32 `json:"thickness" yaml:"thickness"`
	Banner     Extent  `json:"banner" yaml:"banner"`
}
