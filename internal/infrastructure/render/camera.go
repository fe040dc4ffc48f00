// Package render draws the sprite array and HUD text onto an ebiten screen.
package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/younwookim/invaderers/internal/infrastructure/config"
)

// Camera looks down the -z axis at the arena plane from a fixed distance.
type Camera struct {
	worldToCamera mgl32.Mat4
	projection    mgl32.Mat4
	width         int
	height        int
}

// NewCamera creates a perspective camera for a width x height viewport
func NewCamera(cfg config.CameraConfig, width, height int) *Camera {
	aspect := float32(width) / float32(height)
	return &Camera{
		worldToCamera: mgl32.Translate3D(0, 0, -cfg.Distance),
		projection:    mgl32.Perspective(mgl32.DegToRad(cfg.FovDeg), aspect, cfg.Near, cfg.Far),
		width:         width,
		height:        height,
	}
}

// Project maps a point in model space to screen pixels, y pointing down
func (c *Camera) Project(modelToWorld mgl32.Mat4, x, y float32) (sx, sy float64) {
	modelView := c.worldToCamera.Mul4(modelToWorld)
	win := mgl32.Project(mgl32.Vec3{x, y, 0}, modelView, c.projection, 0, 0, c.width, c.height)
	return float64(win.X()), float64(c.height) - float64(win.Y())
}

// ProjectWorld maps a world position to screen pixels
func (c *Camera) ProjectWorld(x, y float32) (sx, sy float64) {
	return c.Project(mgl32.Ident4(), x, y)
}
