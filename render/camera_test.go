package render

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCameraRoundTrip(t *testing.T) {
	cam := NewCamera(640, 360)
	cam.Center = cp.Vector{X: 3, Y: 2}

	cases := []struct {
		name   string
		world  cp.Vector
		screen cp.Vector
	}{
		{"center", cp.Vector{X: 3, Y: 2}, cp.Vector{X: 320, Y: 180}},
		{"up_is_screen_up", cp.Vector{X: 3, Y: 3}, cp.Vector{X: 320, Y: 180 - cam.Zoom}},
		{"right", cp.Vector{X: 4, Y: 2}, cp.Vector{X: 320 + cam.Zoom, Y: 180}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := cam.ToScreen(c.world)
			if !near(got.X, c.screen.X) || !near(got.Y, c.screen.Y) {
				t.Fatalf("expected %v, got %v", c.screen, got)
			}
			back := cam.ToWorld(got)
			if !near(back.X, c.world.X) || !near(back.Y, c.world.Y) {
				t.Fatalf("round trip: expected %v, got %v", c.world, back)
			}
		})
	}
}

func TestCameraFollowClampsToBounds(t *testing.T) {
	cam := NewCamera(320, 320)
	cam.Zoom = 32
	cam.Smoothness = 0
	bounds := cp.BB{L: 0, B: 0, R: 40, T: 40}

	cam.Follow(cp.Vector{X: 1, Y: 1}, bounds)
	if !near(cam.Center.X, 5) || !near(cam.Center.Y, 5) {
		t.Fatalf("expected clamp to (5, 5), got %v", cam.Center)
	}

	// a level smaller than the view is not clamped
	cam.Follow(cp.Vector{X: 1, Y: 1}, cp.BB{L: 0, B: 0, R: 4, T: 4})
	if !near(cam.Center.X, 1) || !near(cam.Center.Y, 1) {
		t.Fatalf("expected (1, 1), got %v", cam.Center)
	}
}

func TestCameraFollowSmooths(t *testing.T) {
	cam := NewCamera(320, 320)
	cam.Smoothness = 0.5
	cam.Follow(cp.Vector{X: 2, Y: 0}, cp.BB{})
	if !near(cam.Center.X, 1) {
		t.Fatalf("expected halfway, got %v", cam.Center)
	}
}

func TestFColorToRGBA(t *testing.T) {
	got := fcolorToRGBA(cp.FColor{R: 1, G: 0, B: 2, A: -1})
	if got.R != 255 || got.G != 0 || got.B != 255 || got.A != 0 {
		t.Fatalf("unexpected color %v", got)
	}
}
