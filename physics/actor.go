package physics

import (
	"github.com/jakecoffman/cp"
)

var (
	worldUp    = cp.Vector{X: 0, Y: 1}
	worldRight = cp.Vector{X: 1, Y: 0}
)

// colliderOffsetPerDegree lifts the engine collider off the ground a little
// for every degree of walkable slope so its corners do not snag on ramps.
const colliderOffsetPerDegree = 0.00025

// Collider is the engine-side box of an actor. Position is the bottom center
// of the box before Offset is applied.
type Collider struct {
	Size   cp.Vector
	Offset cp.Vector
}

// Actor is the moving body resolved by the Resolver. Position is the bottom
// center of the actor (its feet).
type Actor struct {
	Position cp.Vector
	Rotation float64
	Velocity cp.Vector
	Collider Collider

	cfg Config
	// colliderHeight is captured at creation and used for every probe, even
	// after the engine collider has been resized.
	colliderHeight float64
	layoutApplied  bool
	// settled height and slope offset of the last layout pass
	settledHeight float64
	slopeOffset   float64
}

// NewActor is the first phase of setup. It rejects invalid configuration so
// the resolver never sees it.
func NewActor(cfg Config, position cp.Vector) (*Actor, error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Actor{
		Position: position,
		Collider: Collider{
			Size:   cp.Vector{X: cfg.BodyWidth, Y: cfg.ColliderHeight},
			Offset: cp.Vector{X: 0, Y: cfg.ColliderHeight / 2},
		},
		cfg:            cfg,
		colliderHeight: cfg.ColliderHeight,
	}, nil
}

func (a *Actor) Config() Config {
	if a == nil {
		return Config{}
	}
	return a.cfg
}

// SetConfig swaps the tuning values of a live actor. The probe height keeps
// its value from creation unless the collider height itself changed. Once
// the layout is ready, a new slope limit or vertical scale resizes the
// collider again.
func (a *Actor) SetConfig(cfg Config) error {
	if a == nil {
		return nil
	}
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.ColliderHeight != a.cfg.ColliderHeight {
		a.colliderHeight = cfg.ColliderHeight
	}
	relayout := cfg.MaxSlopeAngle != a.cfg.MaxSlopeAngle || cfg.Scale.Y != a.cfg.Scale.Y
	a.cfg = cfg
	if a.layoutApplied && relayout {
		a.applySlopeOffset()
	}
	return nil
}

// Up is always world up; rotation is suppressed every step.
func (a *Actor) Up() cp.Vector {
	return worldUp
}

func (a *Actor) Right() cp.Vector {
	return worldRight
}

// ProbeHeight is the scaled collider height the side and ceiling rays use.
func (a *Actor) ProbeHeight() float64 {
	if a == nil {
		return 0
	}
	return a.colliderHeight * a.cfg.Scale.Y
}

// LayoutReady reports whether the collider slope offset has been applied.
func (a *Actor) LayoutReady() bool {
	return a != nil && a.layoutApplied
}

// OnLayoutReady is the second phase of setup. It shrinks the collider by an
// amount proportional to the max slope angle and raises it by half of that,
// starting from the settled height. Only the first call has an effect.
func (a *Actor) OnLayoutReady(height float64) {
	if a == nil || a.layoutApplied {
		return
	}
	a.layoutApplied = true
	a.settledHeight = height
	a.applySlopeOffset()
}

// applySlopeOffset resizes the collider from the settled height for the
// current slope limit, undoing the previously applied offset.
func (a *Actor) applySlopeOffset() {
	offset := a.cfg.MaxSlopeAngle * colliderOffsetPerDegree / a.cfg.Scale.Y
	a.Collider.Size.Y = a.settledHeight - offset
	a.Collider.Offset.Y += (offset - a.slopeOffset) / 2
	a.slopeOffset = offset
}

// Bounds returns the world-space box of the engine collider.
func (a *Actor) Bounds() cp.BB {
	if a == nil {
		return cp.BB{}
	}
	scale := a.cfg.Scale
	c := a.Position.Add(cp.Vector{X: a.Collider.Offset.X * scale.X, Y: a.Collider.Offset.Y * scale.Y})
	hw := a.Collider.Size.X * scale.X / 2
	hh := a.Collider.Size.Y * scale.Y / 2
	return cp.BB{L: c.X - hw, B: c.Y - hh, R: c.X + hw, T: c.Y + hh}
}
