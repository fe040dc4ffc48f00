package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSprite_Disabled(t *testing.T) {
	s := NewSprite()

	assert.False(t, s.Enabled())
	assert.Equal(t, TextureNone, s.Texture())
	x, y := s.Position()
	assert.Equal(t, float32(0), x)
	assert.Equal(t, float32(0), y)
	assert.Equal(t, 1, s.FrameCount())
}

func TestSprite_Init(t *testing.T) {
	s := NewSprite()
	s.Init(TextureShip, 0, -2.75, 0.5, 0.5, 2, 2)

	assert.True(t, s.Enabled())
	assert.Equal(t, TextureShip, s.Texture())
	x, y := s.Position()
	assert.Equal(t, float32(0), x)
	assert.Equal(t, float32(-2.75), y)
	hw, hh := s.HalfSize()
	assert.Equal(t, float32(0.5), hw)
	assert.Equal(t, float32(0.5), hh)
	assert.Equal(t, 4, s.FrameCount())
	assert.Equal(t, 0, s.Frame())
}

func TestSprite_Init_ResetsFrame(t *testing.T) {
	s := NewSprite()
	s.Init(TextureShip, 0, 0, 0.5, 0.5, 2, 2)
	s.SetFrame(3)

	s.Init(TextureShip, 1, 1, 0.5, 0.5, 2, 2)
	assert.Equal(t, 0, s.Frame())
}

func TestSprite_CalculateFrame(t *testing.T) {
	tests := []struct {
		name  string
		frame int
		want  UVRect
	}{
		{"frame 0 top-left", 0, UVRect{Left: 0, Right: 0.5, Up: 1, Bottom: 0.5}},
		{"frame 1 top-right", 1, UVRect{Left: 0.5, Right: 1, Up: 1, Bottom: 0.5}},
		{"frame 2 bottom-left", 2, UVRect{Left: 0, Right: 0.5, Up: 0.5, Bottom: 0}},
		{"frame 3 bottom-right", 3, UVRect{Left: 0.5, Right: 1, Up: 0.5, Bottom: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSprite()
			s.Init(TextureShip, 0, 0, 0.5, 0.5, 2, 2)
			s.SetFrame(tt.frame)

			uv := s.CalculateFrame()
			assert.InDelta(t, tt.want.Left, uv.Left, 1e-6)
			assert.InDelta(t, tt.want.Right, uv.Right, 1e-6)
			assert.InDelta(t, tt.want.Up, uv.Up, 1e-6)
			assert.InDelta(t, tt.want.Bottom, uv.Bottom, 1e-6)
		})
	}
}

func TestSprite_CalculateFrame_SingleFrame(t *testing.T) {
	s := NewSprite()
	s.Init(TextureMissile, 0, 0, 0.0625, 0.25, 1, 1)

	assert.Equal(t, UVRect{Left: 0, Right: 1, Up: 1, Bottom: 0}, s.CalculateFrame())
}

func TestSprite_CalculateFrame_Uninitialized(t *testing.T) {
	s := NewSprite()
	assert.Equal(t, UVRect{Left: 0, Right: 1, Up: 1, Bottom: 0}, s.CalculateFrame())
}

func TestSprite_SetFrame_Wraps(t *testing.T) {
	s := NewSprite()
	s.Init(TextureShip, 0, 0, 0.5, 0.5, 2, 2)

	s.SetFrame(5)
	assert.Equal(t, 1, s.Frame())

	s.SetFrame(-1)
	assert.Equal(t, 3, s.Frame())
}

func TestSprite_Translate(t *testing.T) {
	s := NewSprite()
	s.Init(TextureShip, 1, 2, 0.5, 0.5, 1, 1)

	s.Translate(0.25, -0.5)
	x, y := s.Position()
	assert.InDelta(t, 1.25, x, 1e-6)
	assert.InDelta(t, 1.5, y, 1e-6)
}

func TestSprite_SetRelative(t *testing.T) {
	ship := NewSprite()
	ship.Init(TextureShip, 1.5, -2.75, 0.5, 0.5, 1, 1)

	missile := NewSprite()
	missile.Init(TextureMissile, OffscreenX, 0, 0.0625, 0.25, 1, 1)

	missile.SetRelative(&ship, 0, 0.5)
	x, y := missile.Position()
	assert.InDelta(t, 1.5, x, 1e-6)
	assert.InDelta(t, -2.25, y, 1e-6)

	// The source sprite is untouched
	sx, sy := ship.Position()
	assert.InDelta(t, 1.5, sx, 1e-6)
	assert.InDelta(t, -2.75, sy, 1e-6)
}

func TestSprite_CollidesWith(t *testing.T) {
	tests := []struct {
		name   string
		ax, ay float32
		bx, by float32
		want   bool
	}{
		{"same position", 0, 0, 0, 0, true},
		{"overlapping", 0, 0, 0.9, 0.9, true},
		{"touching edge is not a collision", 0, 0, 1, 0, false},
		{"apart horizontally", 0, 0, 2, 0, false},
		{"apart vertically", 0, 0, 0, -1.5, false},
		{"overlap x only", 0, 0, 0.5, 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewSprite()
			a.Init(TextureInvaderer, tt.ax, tt.ay, 0.5, 0.5, 1, 1)
			b := NewSprite()
			b.Init(TextureInvaderer, tt.bx, tt.by, 0.5, 0.5, 1, 1)

			assert.Equal(t, tt.want, a.CollidesWith(&b))
			assert.Equal(t, tt.want, b.CollidesWith(&a), "collision is symmetric")
		})
	}
}

func TestSprite_CollidesWith_Border(t *testing.T) {
	border := NewSprite()
	border.Init(TextureBorder, -6, 0, 0.2, 6, 1, 1)

	ship := NewSprite()
	ship.Init(TextureShip, -5.4, -2.75, 0.5, 0.5, 1, 1)
	assert.True(t, ship.CollidesWith(&border))

	ship.Init(TextureShip, -5.25, -2.75, 0.5, 0.5, 1, 1)
	assert.False(t, ship.CollidesWith(&border))
}

func TestSprite_IsAbove(t *testing.T) {
	invaderer := NewSprite()
	invaderer.Init(TextureInvaderer, 0, 4, 0.5, 0.5, 1, 1)

	ship := NewSprite()
	ship.Init(TextureShip, 0.7, -2.75, 0.5, 0.5, 1, 1)
	assert.True(t, invaderer.IsAbove(&ship, 0.3))

	ship.Init(TextureShip, 0.9, -2.75, 0.5, 0.5, 1, 1)
	assert.False(t, invaderer.IsAbove(&ship, 0.3))

	// Same height never counts
	ship.Init(TextureShip, 0, 4, 0.5, 0.5, 1, 1)
	assert.False(t, invaderer.IsAbove(&ship, 0.3))

	// Vertical direction is not checked
	ship.Init(TextureShip, 0, 5, 0.5, 0.5, 1, 1)
	assert.True(t, invaderer.IsAbove(&ship, 0.3))
}

func TestSprite_Retire(t *testing.T) {
	s := NewSprite()
	s.Init(TextureBomb, 1, 1, 0.0625, 0.25, 1, 1)

	s.Retire()
	assert.False(t, s.Enabled())
	x, y := s.Position()
	assert.InDelta(t, 21, x, 1e-6)
	assert.InDelta(t, 1, y, 1e-6)
}

func BenchmarkSprite_CollidesWith(b *testing.B) {
	l := NewLayout(12, 5, 6)
	sprites := make([]Sprite, l.NumSprites)
	for i := range sprites {
		sprites[i] = NewSprite()
		sprites[i].Init(TextureInvaderer, float32(i%6)-3, float32(i/6)-3, 0.5, 0.5, 1, 1)
	}

	b.ResetTimer()
	hits := 0
	for n := 0; n < b.N; n++ {
		for i := l.FirstMissile; i < l.FirstBomb; i++ {
			for j := l.FirstInvaderer; j < l.FirstMissile; j++ {
				if sprites[i].CollidesWith(&sprites[j]) {
					hits++
				}
			}
		}
	}
	_ = hits
}
