package physics

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/rayphysics/common"
)

// horizontal resolves one side against d.X. Side rays start at the feet edge
// and span the probe height; they must cross the part of the body that sticks
// out past the feet before they can report a wall.
func (s *step) horizontal(d *cp.Vector, left bool) {
	a := s.actor
	up := a.Up()
	side := a.Right()
	if left {
		side = side.Neg()
	}

	overhang := (s.cfg.BodyWidth - s.cfg.FeetWidth) / 2
	start := a.Position.Add(up.Mult(SkinWidth)).Add(side.Mult(s.cfg.FeetWidth/2 - SkinWidth))
	rayLength := overhang + 2*SkinWidth
	if (left && d.X < 0) || (!left && d.X > 0) {
		rayLength += math.Abs(d.X)
	}
	spread := up.Mult(a.ProbeHeight() - SkinWidth*2)

	hits := s.probe.Cast(start, side, spread, s.cfg.HorizontalRayCount, rayLength, s.cfg.Mask)
	for i, hit := range hits {
		if !hit.Hit {
			continue
		}
		if hit.Distance == 0 && i == 0 {
			continue
		}

		angle := common.AngleDeg(up, hit.Normal)
		if angle < s.cfg.MaxSlopeAngle {
			continue
		}

		limit := wallLimit(hit.Distance, standoff(overhang, angle, s.cfg.MaxSlopeAngle), s.dt*s.cfg.FixSpeed)
		if left {
			d.X = common.Clamp(d.X, -limit, math.MaxFloat64)
			s.info.Left = true
		} else {
			d.X = common.Clamp(d.X, -math.MaxFloat64, limit)
			s.info.Right = true
		}
	}
}

// standoff is the distance from the feet edge ray origin the actor keeps to a
// wall. A vertical wall keeps the whole overhang away; a wall just past the
// walkable limit lets the body overlap it down to the skin.
func standoff(overhang, angle, maxSlope float64) float64 {
	pct := common.Clamp01((angle - maxSlope) / (90 - maxSlope))
	return overhang + SkinWidth - common.Lerp(overhang, 0, pct)
}

// wallLimit is the largest displacement towards a wall at dist. Outside the
// standoff the limit is exact; inside it the actor is eased back out at rate
// instead of snapped.
func wallLimit(dist, standoff, rate float64) float64 {
	if dist >= standoff {
		return dist - standoff
	}
	return common.LerpClamped(0, dist-standoff, rate)
}
