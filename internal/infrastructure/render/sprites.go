package render

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/invaderers/internal/domain/entity"
)

// TextureSource looks up the image bound to a texture id.
// A nil image means the texture is not loaded and the sprite is skipped.
type TextureSource interface {
	Image(id entity.TextureID) *ebiten.Image
}

// SpriteRenderer draws enabled sprites as textured quads
type SpriteRenderer struct {
	camera   *Camera
	textures TextureSource
}

// NewSpriteRenderer creates a new sprite renderer
func NewSpriteRenderer(camera *Camera, textures TextureSource) *SpriteRenderer {
	return &SpriteRenderer{camera: camera, textures: textures}
}

// Draw renders the sprites in array order
func (r *SpriteRenderer) Draw(screen *ebiten.Image, sprites []entity.Sprite) {
	for i := range sprites {
		r.drawSprite(screen, &sprites[i])
	}
}

func (r *SpriteRenderer) drawSprite(screen *ebiten.Image, s *entity.Sprite) {
	if !s.Enabled() || s.Texture() == entity.TextureNone {
		return
	}
	tex := r.textures.Image(s.Texture())
	if tex == nil {
		return
	}

	src := SourceRect(s.CalculateFrame(), tex.Bounds())
	if src.Empty() {
		return
	}
	x, y, w, h := ScreenRect(r.camera, s)
	if w <= 0 || h <= 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(src.Dx()), h/float64(src.Dy()))
	op.GeoM.Translate(x, y)
	screen.DrawImage(tex.SubImage(src).(*ebiten.Image), op)
}

// ScreenRect projects the sprite's quad and returns its top-left corner and size in pixels
func ScreenRect(camera *Camera, s *entity.Sprite) (x, y, w, h float64) {
	hw, hh := s.HalfSize()
	m := s.ModelToWorld()
	x0, y0 := camera.Project(m, -hw, -hh)
	x1, y1 := camera.Project(m, hw, hh)
	return math.Min(x0, x1), math.Min(y0, y1), math.Abs(x1 - x0), math.Abs(y1 - y0)
}

// SourceRect converts a normalised frame rectangle (v up) into pixel bounds of the texture
func SourceRect(uv entity.UVRect, bounds image.Rectangle) image.Rectangle {
	w := float64(bounds.Dx())
	h := float64(bounds.Dy())
	return image.Rect(
		bounds.Min.X+int(math.Round(float64(uv.Left)*w)),
		bounds.Min.Y+int(math.Round((1-float64(uv.Up))*h)),
		bounds.Min.X+int(math.Round(float64(uv.Right)*w)),
		bounds.Min.Y+int(math.Round((1-float64(uv.Bottom))*h)),
	)
}
