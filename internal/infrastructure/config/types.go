package config

// GameConfig is the root config for game.json
type GameConfig struct {
	Display  DisplayConfig            `json:"display" yaml:"display"`
	Camera   CameraConfig             `json:"camera" yaml:"camera"`
	Clock    ClockConfig              `json:"clock" yaml:"clock"`
	Arena    ArenaConfig              `json:"arena" yaml:"arena"`
	Ship     ShipConfig               `json:"ship" yaml:"ship"`
	Missiles MissileConfig            `json:"missiles" yaml:"missiles"`
	Bombs    BombConfig               `json:"bombs" yaml:"bombs"`
	Invaders InvaderConfig            `json:"invaders" yaml:"invaders"`
	Boss     BossConfig               `json:"boss" yaml:"boss"`
	HUD      HUDConfig                `json:"hud" yaml:"hud"`
	Audio    AudioConfig              `json:"audio" yaml:"audio"`
	Textures map[string]TextureConfig `json:"textures" yaml:"textures"`
}

type DisplayConfig struct {
	Title        string `json:"title" yaml:"title"`
	ScreenWidth  int    `json:"screenWidth" yaml:"screenWidth"`
	ScreenHeight int    `json:"screenHeight" yaml:"screenHeight"`
	Scale        int    `json:"scale" yaml:"scale"`
	Framerate    int    `json:"framerate" yaml:"framerate"`
}

// CameraConfig places the camera on +Z looking at the arena
type CameraConfig struct {
	Distance float32 `json:"distance" yaml:"distance"`
	FovDeg   float32 `json:"fovDeg" yaml:"fovDeg"`
	Near     float32 `json:"near" yaml:"near"`
	Far      float32 `json:"far" yaml:"far"`
}

// ClockConfig drives the HUD timer: it ticks when frame % Interval == Phase
type ClockConfig struct {
	Interval int `json:"interval" yaml:"interval"`
	Phase    int `json:"phase" yaml:"phase"`
}

// HUDConfig positions text in world units
type HUDConfig struct {
	X          float32 `json:"x" yaml:"x"`
	Y          float32 `json:"y" yaml:"y"`
	LineHeight float32 `json:"lineHeight" yaml:"lineHeight"`
	Scale      float64 `json:"scale" yaml:"scale"`
}

type AudioConfig struct {
	Enabled    bool              `json:"enabled" yaml:"enabled"`
	Sources    int               `json:"sources" yaml:"sources"`
	SampleRate int               `json:"sampleRate" yaml:"sampleRate"`
	Volume     float64           `json:"volume" yaml:"volume"`
	Sounds     map[string]string `json:"sounds" yaml:"sounds"`
}

// TextureConfig names where a texture comes from.
//
// Source is one of "#rrggbb", a color name, "builtin:<name>", or an asset path.
// When an asset path is missing and Fallback is set, Fallback is used instead.
type TextureConfig struct {
	Source   string `json:"source" yaml:"source"`
	Fallback string `json:"fallback,omitempty" yaml:"fallback,omitempty"`
}
