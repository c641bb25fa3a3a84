package physics

import (
	"math"

	"github.com/jakecoffman/cp"
)

type segment struct {
	a, b  cp.Vector
	layer uint
}

// segmentWorld answers rays analytically against line segments.
type segmentWorld struct {
	segments []segment
}

func (w *segmentWorld) add(a, b cp.Vector) *segmentWorld {
	w.segments = append(w.segments, segment{a: a, b: b, layer: 1})
	return w
}

func (w *segmentWorld) Raycast(origin, dir cp.Vector, length float64, mask uint) RayHit {
	best := RayHit{}
	for _, s := range w.segments {
		if s.layer&mask == 0 {
			continue
		}
		e := s.b.Sub(s.a)
		denom := dir.Cross(e)
		if math.Abs(denom) < 1e-12 {
			continue
		}
		ao := s.a.Sub(origin)
		t := ao.Cross(e) / denom
		u := ao.Cross(dir) / denom
		if t < 0 || t > length || u < 0 || u > 1 {
			continue
		}
		if best.Hit && t >= best.Distance {
			continue
		}
		n := cp.Vector{X: -e.Y, Y: e.X}.Normalize()
		if n.Dot(dir) > 0 {
			n = n.Neg()
		}
		best = RayHit{Hit: true, Distance: t, Normal: n, Point: origin.Add(dir.Mult(t))}
	}
	return best
}

func flatFloor() *segmentWorld {
	return (&segmentWorld{}).add(cp.Vector{X: -20, Y: 0}, cp.Vector{X: 20, Y: 0})
}

// slopeThrough returns a single slope through the origin rising to the right
// at deg degrees (negative deg rises to the left).
func slopeThrough(deg float64) *segmentWorld {
	k := math.Tan(deg * math.Pi / 180)
	return (&segmentWorld{}).add(cp.Vector{X: -20, Y: -20 * k}, cp.Vector{X: 20, Y: 20 * k})
}

func testConfig() Config {
	return Config{
		Mask:               1,
		HorizontalRayCount: 3,
		VerticalRayCount:   3,
		MaxSlopeAngle:      45,
		FeetWidth:          0.5,
		BodyWidth:          0.8,
		FixSpeed:           1,
		ColliderHeight:     1,
		Scale:              Scale{X: 1, Y: 1},
	}
}

func mustActor(cfg Config, pos cp.Vector) *Actor {
	a, err := NewActor(cfg, pos)
	if err != nil {
		panic(err)
	}
	return a
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
