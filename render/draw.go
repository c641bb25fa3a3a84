package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/rayphysics/physics"
	"github.com/milk9111/rayphysics/world"
	"golang.org/x/image/colornames"
)

var (
	HitColor  color.Color = colornames.Red
	MissColor color.Color = colornames.Limegreen
	FeetColor color.Color = colornames.Yellow
)

// DrawSpace renders the static shapes of a space.
func DrawSpace(screen *ebiten.Image, space *world.Space, cam *Camera) {
	if screen == nil || space == nil || space.CP() == nil {
		return
	}
	cp.DrawSpace(space.CP(), &spaceDrawer{screen: screen, cam: cam})
}

// DrawTraces draws the rays of the last resolver step. A ray that hit is
// drawn up to the hit in HitColor, a miss at full length in MissColor.
func DrawTraces(screen *ebiten.Image, traces []physics.RayTrace, cam *Camera) {
	if screen == nil {
		return
	}
	for _, tr := range traces {
		c := MissColor
		if tr.Hit.Hit {
			c = HitColor
		}
		a := cam.ToScreen(tr.Origin)
		b := cam.ToScreen(tr.End())
		ebitenutil.DrawLine(screen, a.X, a.Y, b.X, b.Y, c)
	}
}

// DrawActor outlines the engine collider and marks the feet line the floor
// rays start from.
func DrawActor(screen *ebiten.Image, a *physics.Actor, body color.Color, cam *Camera) {
	if screen == nil || a == nil {
		return
	}
	bb := a.Bounds()
	corners := []cp.Vector{
		cam.ToScreen(cp.Vector{X: bb.L, Y: bb.B}),
		cam.ToScreen(cp.Vector{X: bb.R, Y: bb.B}),
		cam.ToScreen(cp.Vector{X: bb.R, Y: bb.T}),
		cam.ToScreen(cp.Vector{X: bb.L, Y: bb.T}),
	}
	for i := range corners {
		p, q := corners[i], corners[(i+1)%len(corners)]
		ebitenutil.DrawLine(screen, p.X, p.Y, q.X, q.Y, body)
	}

	half := a.Config().FeetWidth / 2
	l := cam.ToScreen(a.Position.Add(cp.Vector{X: -half, Y: physics.SkinWidth}))
	r := cam.ToScreen(a.Position.Add(cp.Vector{X: half, Y: physics.SkinWidth}))
	ebitenutil.DrawLine(screen, l.X, l.Y, r.X, r.Y, FeetColor)
}

// DrawInfo prints the collision flags in the top left corner.
func DrawInfo(screen *ebiten.Image, a *physics.Actor, info physics.CollisionInfo, frames int) {
	if screen == nil || a == nil {
		return
	}
	msg := fmt.Sprintf("%s\nFPS %.0f TPS %.0f", InfoText(a, info, frames), ebiten.ActualFPS(), ebiten.ActualTPS())
	ebitenutil.DebugPrintAt(screen, msg, 8, 8)
}

// InfoText is the actor state shown by DrawInfo.
func InfoText(a *physics.Actor, info physics.CollisionInfo, frames int) string {
	if a == nil {
		return ""
	}
	return fmt.Sprintf("frame %d pos (%.2f, %.2f) vel (%.2f, %.2f)\n%s",
		frames, a.Position.X, a.Position.Y, a.Velocity.X, a.Velocity.Y, info)
}
