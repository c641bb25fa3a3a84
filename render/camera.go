package render

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/rayphysics/common"
)

// Camera maps y-up world units onto y-down screen pixels.
type Camera struct {
	// Center is the world point drawn at the middle of the screen.
	Center cp.Vector
	// Zoom is pixels per world unit.
	Zoom          float64
	Width, Height float64
	// Smoothness in [0,1); 0 snaps to the target every frame.
	Smoothness float64
}

func NewCamera(width, height float64) *Camera {
	return &Camera{
		Zoom:       common.PixelsPerUnit,
		Width:      width,
		Height:     height,
		Smoothness: 0.85,
	}
}

func (c *Camera) ToScreen(v cp.Vector) cp.Vector {
	if c == nil {
		return v
	}
	return cp.Vector{
		X: (v.X-c.Center.X)*c.Zoom + c.Width/2,
		Y: c.Height/2 - (v.Y-c.Center.Y)*c.Zoom,
	}
}

func (c *Camera) ToWorld(p cp.Vector) cp.Vector {
	if c == nil || c.Zoom == 0 {
		return p
	}
	return cp.Vector{
		X: (p.X-c.Width/2)/c.Zoom + c.Center.X,
		Y: (c.Height/2-p.Y)/c.Zoom + c.Center.Y,
	}
}

// Follow moves the camera towards target, keeping it inside bounds when the
// bounds are larger than the view.
func (c *Camera) Follow(target cp.Vector, bounds cp.BB) {
	if c == nil {
		return
	}
	t := 1 - common.Clamp01(c.Smoothness)
	c.Center = cp.Vector{
		X: common.Lerp(c.Center.X, target.X, t),
		Y: common.Lerp(c.Center.Y, target.Y, t),
	}
	if c.Zoom <= 0 {
		return
	}
	hw := c.Width / 2 / c.Zoom
	hh := c.Height / 2 / c.Zoom
	if bounds.R-bounds.L > 2*hw {
		c.Center.X = common.Clamp(c.Center.X, bounds.L+hw, bounds.R-hw)
	}
	if bounds.T-bounds.B > 2*hh {
		c.Center.Y = common.Clamp(c.Center.Y, bounds.B+hh, bounds.T-hh)
	}
}
