package entity

import (
	"github.com/go-gl/mathgl/mgl32"
)

// OffscreenX is how far a retired sprite is pushed along x
const OffscreenX = 20

// UVRect is a normalized texture rectangle. V grows upward.
type UVRect struct {
	Left, Right, Up, Bottom float32
}

// Sprite is a textured quad centred on its model-to-world translation.
// Collision uses the half extents as an axis-aligned box.
type Sprite struct {
	modelToWorld mgl32.Mat4

	halfWidth  float32
	halfHeight float32

	texture TextureID
	enabled bool

	frameNumber  int
	totalFramesX int
	totalFramesY int
	textureW     float32
	textureH     float32
	frameW       float32
	frameH       float32
}

// NewSprite returns a disabled, untextured sprite at the origin
func NewSprite() Sprite {
	return Sprite{
		modelToWorld: mgl32.Ident4(),
		totalFramesX: 1,
		totalFramesY: 1,
	}
}

// Init places the sprite at (x, y) and enables it.
// w and h are half extents; the sheet is split into numFramesX by numFramesY frames.
func (s *Sprite) Init(texture TextureID, x, y, w, h float32, numFramesX, numFramesY int) {
	if numFramesX < 1 {
		numFramesX = 1
	}
	if numFramesY < 1 {
		numFramesY = 1
	}

	s.modelToWorld = mgl32.Translate3D(x, y, 0)
	s.halfWidth = w
	s.halfHeight = h
	s.texture = texture
	s.enabled = true
	s.frameNumber = 0
	s.totalFramesX = numFramesX
	s.totalFramesY = numFramesY
	s.textureW = w
	s.textureH = h
	s.frameW = s.textureW / float32(numFramesX)
	s.frameH = s.textureH / float32(numFramesY)
}

// CalculateFrame returns the texture rectangle of the current frame.
// Frames are numbered left to right, top row first.
func (s *Sprite) CalculateFrame() UVRect {
	if s.textureW == 0 || s.textureH == 0 {
		return UVRect{Left: 0, Right: 1, Up: 1, Bottom: 0}
	}

	left := float32(s.frameNumber%s.totalFramesX) * s.frameW
	right := left + s.frameW
	up := s.textureH - float32(s.frameNumber/s.totalFramesX)*s.frameH
	bottom := up - s.frameH

	return UVRect{
		Left:   left / s.textureW,
		Right:  right / s.textureW,
		Up:     up / s.textureH,
		Bottom: bottom / s.textureH,
	}
}

// Translate moves the sprite in its own frame
func (s *Sprite) Translate(x, y float32) {
	s.modelToWorld = s.modelToWorld.Mul4(mgl32.Translate3D(x, y, 0))
}

// SetRelative positions the sprite at an offset from another sprite
func (s *Sprite) SetRelative(rhs *Sprite, x, y float32) {
	s.modelToWorld = rhs.modelToWorld
	s.Translate(x, y)
}

// CollidesWith reports whether the two boxes overlap.
// Touching edges do not count.
func (s *Sprite) CollidesWith(rhs *Sprite) bool {
	dx := rhs.modelToWorld.At(0, 3) - s.modelToWorld.At(0, 3)
	dy := rhs.modelToWorld.At(1, 3) - s.modelToWorld.At(1, 3)

	return abs32(dx) < s.halfWidth+rhs.halfWidth &&
		abs32(dy) < s.halfHeight+rhs.halfHeight
}

// IsAbove reports whether rhs lies within this sprite's column, widened by margin.
// Only horizontal alignment and a non-zero vertical gap are checked.
func (s *Sprite) IsAbove(rhs *Sprite, margin float32) bool {
	dx := rhs.modelToWorld.At(0, 3) - s.modelToWorld.At(0, 3)
	dy := rhs.modelToWorld.At(1, 3) - s.modelToWorld.At(1, 3)

	return abs32(dx) < s.halfWidth+margin && abs32(dy) > 0
}

// Enabled reports whether the sprite takes part in gameplay
func (s *Sprite) Enabled() bool {
	return s.enabled
}

// SetEnabled toggles the sprite
func (s *Sprite) SetEnabled(enabled bool) {
	s.enabled = enabled
}

// Retire disables the sprite and moves it off-screen
func (s *Sprite) Retire() {
	s.enabled = false
	s.Translate(OffscreenX, 0)
}

// Position returns the world translation
func (s *Sprite) Position() (x, y float32) {
	return s.modelToWorld.At(0, 3), s.modelToWorld.At(1, 3)
}

// ModelToWorld returns the model transform
func (s *Sprite) ModelToWorld() mgl32.Mat4 {
	return s.modelToWorld
}

// HalfSize returns the half extents
func (s *Sprite) HalfSize() (w, h float32) {
	return s.halfWidth, s.halfHeight
}

// Texture returns the texture id
func (s *Sprite) Texture() TextureID {
	return s.texture
}

// FrameCount returns the number of frames in the sprite sheet
func (s *Sprite) FrameCount() int {
	return s.totalFramesX * s.totalFramesY
}

// Frame returns the current frame number
func (s *Sprite) Frame() int {
	return s.frameNumber
}

// SetFrame selects a frame, wrapping around the sheet
func (s *Sprite) SetFrame(n int) {
	count := s.FrameCount()
	if count <= 0 {
		s.frameNumber = 0
		return
	}
	n %= count
	if n < 0 {
		n += count
	}
	s.frameNumber = n
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
