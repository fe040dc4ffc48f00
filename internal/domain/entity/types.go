package entity

// TextureID identifies a texture in the render atlas
type TextureID int

const (
	// TextureNone marks a gameplay-only sprite that is never drawn
	TextureNone TextureID = iota
	TextureShip
	TextureInvaderer
	TextureMissile
	TextureBomb
	TextureBorder
	TextureGameOver
	textureCount
)

// TextureCount is the number of texture slots, TextureNone included
const TextureCount = int(textureCount)

var textureNames = [...]string{
	TextureNone:      "none",
	TextureShip:      "ship",
	TextureInvaderer: "invaderer",
	TextureMissile:   "missile",
	TextureBomb:      "bomb",
	TextureBorder:    "border",
	TextureGameOver:  "gameover",
}

// String returns the config key of the texture
func (t TextureID) String() string {
	if t < 0 || int(t) >= len(textureNames) {
		return "unknown"
	}
	return textureNames[t]
}

// TextureByName looks up a texture by its config key
func TextureByName(name string) (TextureID, bool) {
	for i, n := range textureNames {
		if n == name && TextureID(i) != TextureNone {
			return TextureID(i), true
		}
	}
	return TextureNone, false
}

// SoundID identifies a sound effect
type SoundID int

const (
	SoundWhoosh SoundID = iota // missile or bomb launch
	SoundBang                  // something got hit
	soundCount
)

// SoundCount is the number of sound effects
const SoundCount = int(soundCount)

// String returns the config key of the sound
func (s SoundID) String() string {
	switch s {
	case SoundWhoosh:
		return "whoosh"
	case SoundBang:
		return "bang"
	default:
		return "unknown"
	}
}
