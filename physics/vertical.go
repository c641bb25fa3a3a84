package physics

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/rayphysics/common"
)

// vertical resolves the floor (bottom) or the ceiling against d.
func (s *step) vertical(d *cp.Vector, bottom bool) {
	a := s.actor
	up := a.Up()
	right := a.Right()

	start := a.Position.Add(right.Mult(s.cfg.FeetWidth/2 - SkinWidth))
	if bottom {
		start = start.Add(up.Mult(SkinWidth))
	} else {
		start = start.Add(up.Mult(a.ProbeHeight() - SkinWidth))
	}

	rayLength := 2 * SkinWidth
	if (bottom && d.Y <= 0) || (!bottom && d.Y > 0) {
		rayLength += math.Abs(d.Y)
	}

	if bottom && s.groundCheck(d, rayLength) {
		return
	}

	if bottom {
		s.floorSweep(d, start, rayLength)
		if !s.info.Below {
			s.groundCheck(d, rayLength)
		}
		return
	}
	s.ceilingSweep(d, start, rayLength)
}

// floorSweep casts one ray per feet sample from right to left. Each ray is
// raised by the height the steepest walkable slope could reach at its offset
// from the center, so ramps are found before the actor sinks into them.
func (s *step) floorSweep(d *cp.Vector, start cp.Vector, rayLength float64) {
	a := s.actor
	up := a.Up()
	down := up.Neg()
	count := s.cfg.VerticalRayCount
	spacing := (s.cfg.FeetWidth - SkinWidth*2) / float64(count-1)
	center := s.feet()
	maxSlope := s.cfg.MaxSlopeAngle

	for i := 0; i < count; i++ {
		origin := start.Sub(a.Right().Mult(spacing * float64(i)))
		side := origin.Sub(center).Dot(a.Right())
		offset := math.Abs(side)
		allowance := slopeHeight(maxSlope, offset)
		origin = origin.Add(up.Mult(allowance))

		hit := s.probe.Ray(origin, down, rayLength+allowance*2, s.cfg.Mask)
		if !hit.Hit || hit.Distance == 0 {
			continue
		}

		// A sloped hit under one edge is ignored when the center already
		// stands on walkable ground.
		if !common.Approximately(0, hit.Normal.X) {
			centerHit := s.probe.Ray(center, down, allowance+SkinWidth, s.cfg.Mask)
			if centerHit.Hit && common.AngleDeg(centerHit.Normal, worldUp) < maxSlope {
				continue
			}
		}

		angle := common.AngleDeg(worldUp, hit.Normal)
		dist := hit.Distance - allowance - SkinWidth
		if angle < maxSlope {
			current := slopeHeight(angle, offset)
			if groundBelowCenter(hit.Normal, side) {
				dist -= current
			} else {
				dist += current
			}
		}
		if dist < allowance-2*SkinWidth && angle > maxSlope {
			continue
		}
		if dist > math.Abs(d.Y) {
			continue
		}

		d.Y = common.Clamp(d.Y, -dist, math.MaxFloat64)
		s.land(d, hit.Normal, dist)
	}
}

// groundBelowCenter reports whether a slope with normal n lies lower under a
// feet ray at signed offset side (positive to the right) than under the
// center of the feet.
func groundBelowCenter(n cp.Vector, side float64) bool {
	return (n.X > 0 && side > 0) || (n.X < 0 && side < 0)
}

// ceilingSweep clamps upward motion to the nearest overhead hit.
func (s *step) ceilingSweep(d *cp.Vector, start cp.Vector, rayLength float64) {
	a := s.actor
	count := s.cfg.VerticalRayCount
	spread := a.Right().Mult(-(s.cfg.FeetWidth - SkinWidth*2))

	for _, hit := range s.probe.Cast(start, a.Up(), spread, count, rayLength, s.cfg.Mask) {
		if !hit.Hit || hit.Distance == 0 {
			continue
		}
		dist := hit.Distance - SkinWidth
		if dist > math.Abs(d.Y) {
			continue
		}
		d.Y = common.Clamp(d.Y, -math.MaxFloat64, dist)
		s.info.Above = true
	}
}
