package physics

import "github.com/jakecoffman/cp"

// RayHit is the result of a single ray query. Distance is measured from the
// ray origin along its direction.
type RayHit struct {
	Hit      bool
	Distance float64
	Normal   cp.Vector
	Point    cp.Vector
}

// Prober answers ray queries against solid geometry. dir is a unit vector;
// mask selects which collision layers may block the ray.
type Prober interface {
	Raycast(origin, dir cp.Vector, length float64, mask uint) RayHit
}

type ProberFunc func(origin, dir cp.Vector, length float64, mask uint) RayHit

func (f ProberFunc) Raycast(origin, dir cp.Vector, length float64, mask uint) RayHit {
	return f(origin, dir, length, mask)
}

// RayTrace records one query for visualization.
type RayTrace struct {
	Origin cp.Vector
	Dir    cp.Vector
	Length float64
	Hit    RayHit
}

// End is where the ray stopped: the hit point or the full length.
func (t RayTrace) End() cp.Vector {
	if t.Hit.Hit {
		return t.Origin.Add(t.Dir.Mult(t.Hit.Distance))
	}
	return t.Origin.Add(t.Dir.Mult(t.Length))
}

// Tracer observes every ray the probe issues.
type Tracer interface {
	TraceRay(RayTrace)
}

type TraceFunc func(RayTrace)

func (f TraceFunc) TraceRay(t RayTrace) {
	f(t)
}

// TraceLog collects traces for one step; Reset it before each step.
type TraceLog struct {
	traces []RayTrace
}

func (l *TraceLog) TraceRay(t RayTrace) {
	if l == nil {
		return
	}
	l.traces = append(l.traces, t)
}

func (l *TraceLog) Reset() {
	if l == nil {
		return
	}
	l.traces = l.traces[:0]
}

func (l *TraceLog) Traces() []RayTrace {
	if l == nil {
		return nil
	}
	return l.traces
}

// CollisionProbe casts rays through a Prober. A nil Prober never hits.
type CollisionProbe struct {
	Prober Prober
	Tracer Tracer
}

// Ray casts a single ray.
func (p CollisionProbe) Ray(origin, dir cp.Vector, length float64, mask uint) RayHit {
	var hit RayHit
	if p.Prober != nil && length > 0 {
		hit = p.Prober.Raycast(origin, dir, length, mask)
	}
	if p.Tracer != nil {
		p.Tracer.TraceRay(RayTrace{Origin: origin, Dir: dir, Length: length, Hit: hit})
	}
	return hit
}

// Cast samples count parallel rays along dir. The first ray starts at base,
// each following one is offset by spread/(count-1), so the last starts at
// base+spread. Zero-distance hits are returned as-is.
func (p CollisionProbe) Cast(base, dir, spread cp.Vector, count int, length float64, mask uint) []RayHit {
	if count < MinRayCount {
		return nil
	}
	step := spread.Mult(1 / float64(count-1))
	hits := make([]RayHit, count)
	for i := 0; i < count; i++ {
		hits[i] = p.Ray(base.Add(step.Mult(float64(i))), dir, length, mask)
	}
	return hits
}
