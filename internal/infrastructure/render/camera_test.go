package render

import (
	"image"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/younwookim/invaderers/internal/domain/entity"
	"github.com/younwookim/invaderers/internal/infrastructure/config"
)

func createTestCamera() *Camera {
	cfg := config.CameraConfig{Distance: 6.5, FovDeg: 90, Near: 0.1, Far: 1000}
	return NewCamera(cfg, 480, 480)
}

func TestCamera_ProjectWorld(t *testing.T) {
	cam := createTestCamera()

	tests := []struct {
		name   string
		x, y   float32
		sx, sy float64
	}{
		{"origin is screen centre", 0, 0, 240, 240},
		{"up is screen up", 0, 3.25, 240, 120},
		{"right is screen right", 3.25, 0, 360, 240},
		{"arena corner", -6.5, -6.5, 0, 480},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sx, sy := cam.ProjectWorld(tt.x, tt.y)
			assert.InDelta(t, tt.sx, sx, 1e-2)
			assert.InDelta(t, tt.sy, sy, 1e-2)
		})
	}
}

func TestCamera_ProjectModel(t *testing.T) {
	cam := createTestCamera()
	m := mgl32.Translate3D(1, 1, 0)

	sx, sy := cam.Project(m, 2.25, 2.25)
	wx, wy := cam.ProjectWorld(3.25, 3.25)

	assert.InDelta(t, wx, sx, 1e-3)
	assert.InDelta(t, wy, sy, 1e-3)
}

func TestScreenRect(t *testing.T) {
	cam := createTestCamera()
	ship := entity.NewSprite()
	ship.Init(entity.TextureShip, 0, -2.75, 0.5, 0.5, 2, 2)

	x, y, w, h := ScreenRect(cam, &ship)

	// 1 world unit spans 480 / 13 pixels
	assert.InDelta(t, 36.923, w, 1e-2)
	assert.InDelta(t, 36.923, h, 1e-2)
	assert.InDelta(t, 221.538, x, 1e-2)
	assert.InDelta(t, 323.077, y, 1e-2)
}

func TestSourceRect(t *testing.T) {
	bounds := image.Rect(0, 0, 32, 32)

	sheet := entity.NewSprite()
	sheet.Init(entity.TextureShip, 0, 0, 0.5, 0.5, 2, 2)

	tests := []struct {
		frame int
		want  image.Rectangle
	}{
		{0, image.Rect(0, 0, 16, 16)},
		{1, image.Rect(16, 0, 32, 16)},
		{2, image.Rect(0, 16, 16, 32)},
		{3, image.Rect(16, 16, 32, 32)},
	}

	for _, tt := range tests {
		sheet.SetFrame(tt.frame)
		assert.Equal(t, tt.want, SourceRect(sheet.CalculateFrame(), bounds), "frame %d", tt.frame)
	}
}

func TestSourceRect_FullTexture(t *testing.T) {
	uv := entity.UVRect{Left: 0, Right: 1, Up: 1, Bottom: 0}

	assert.Equal(t, image.Rect(4, 4, 12, 12), SourceRect(uv, image.Rect(4, 4, 12, 12)))
}
