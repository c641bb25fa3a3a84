package physics

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/rayphysics/common"
)

// Resolver corrects an actor's per-step displacement against the geometry
// reachable through its probe. It holds no per-actor state; one Resolver may
// serve many actors as long as each step runs to completion.
type Resolver struct {
	Probe CollisionProbe
}

func NewResolver(prober Prober, tracer Tracer) *Resolver {
	return &Resolver{Probe: CollisionProbe{Prober: prober, Tracer: tracer}}
}

// step carries the state of one ResolveStep call.
type step struct {
	probe CollisionProbe
	actor *Actor
	cfg   Config
	info  CollisionInfo
	dt    float64
}

// ResolveStep returns the displacement a may move this step and the contacts
// found on the way. It suppresses the actor's rotation and may zero
// a.Velocity.Y, but does not move the actor.
func (r *Resolver) ResolveStep(a *Actor, d cp.Vector, dt float64) (cp.Vector, CollisionInfo) {
	var info CollisionInfo
	info.Reset()
	if r == nil || a == nil {
		return d, info
	}

	a.Rotation = 0
	s := &step{probe: r.Probe, actor: a, cfg: a.cfg, info: info, dt: dt}

	if d.Y > 0 {
		s.vertical(&d, false)
	} else {
		s.vertical(&d, true)
	}

	s.horizontal(&d, true)
	s.horizontal(&d, false)

	if s.info.Below {
		along := s.info.GroundNormal.Mult(d.X)
		d = cp.Vector{X: 0, Y: d.Y}.Add(along)
	}

	return d, s.info
}

// feet is the ray origin at the center of the actor's feet, one skin above
// the bottom.
func (s *step) feet() cp.Vector {
	return s.actor.Position.Add(s.actor.Up().Mult(SkinWidth))
}

// land records a floor hit with normal n. Walkable ground clamps d.Y to the
// hit distance less one skin and stops vertical velocity; steep ground only
// marks sliding.
func (s *step) land(d *cp.Vector, n cp.Vector, dist float64) {
	s.info.GroundNormal = cp.Vector{X: n.Y, Y: -n.X}
	if common.AngleDeg(worldUp, n) > s.cfg.MaxSlopeAngle {
		s.info.Sliding = true
	}
	if !s.info.Sliding {
		d.Y = common.Clamp(d.Y, -(dist - SkinWidth), dist-SkinWidth)
		s.actor.Velocity.Y = 0
	}
	s.info.Below = true
}

// groundCheck casts a single ray down from the center of the feet.
func (s *step) groundCheck(d *cp.Vector, length float64) bool {
	hit := s.probe.Ray(s.feet(), s.actor.Up().Neg(), length, s.cfg.Mask)
	if !hit.Hit {
		return false
	}
	s.land(d, hit.Normal, hit.Distance)
	return true
}

func slopeHeight(angleDeg, offset float64) float64 {
	return math.Abs(math.Tan(angleDeg*common.Deg2Rad) * offset)
}
