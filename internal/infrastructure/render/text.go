package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// TextRenderer draws HUD strings with the 7x13 bitmap face
type TextRenderer struct {
	camera *Camera
	face   text.Face
	scale  float64
}

// NewTextRenderer creates a text renderer. scale multiplies the glyph size.
func NewTextRenderer(camera *Camera, scale float64) *TextRenderer {
	if scale <= 0 {
		scale = 1
	}
	return &TextRenderer{
		camera: camera,
		face:   text.NewGoXFace(basicfont.Face7x13),
		scale:  scale,
	}
}

// DrawWorld draws s with its top-left corner at a world position
func (r *TextRenderer) DrawWorld(screen *ebiten.Image, s string, x, y float32, clr color.Color) {
	sx, sy := r.camera.ProjectWorld(x, y)
	r.draw(screen, s, sx, sy, text.AlignStart, clr)
}

// DrawCentered draws s horizontally centred on a screen position
func (r *TextRenderer) DrawCentered(screen *ebiten.Image, s string, sx, sy float64, clr color.Color) {
	r.draw(screen, s, sx, sy, text.AlignCenter, clr)
}

// LineHeight returns the pixel height of one scaled line
func (r *TextRenderer) LineHeight() float64 {
	m := r.face.Metrics()
	return (m.HAscent + m.HDescent + m.HLineGap) * r.scale
}

func (r *TextRenderer) draw(screen *ebiten.Image, s string, sx, sy float64, align text.Align, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(r.scale, r.scale)
	op.GeoM.Translate(sx, sy)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = align
	text.Draw(screen, s, r.face, op)
}
