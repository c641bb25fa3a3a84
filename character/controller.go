package character

import (
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/rayphysics/physics"
)

// Input is what the input layer hands the controller every tick.
type Input struct {
	// MoveX is -1 for left, 0 for none, +1 for right; analog values in between.
	MoveX float64
	// Jump is true while the jump button is held.
	Jump bool
}

type Settings struct {
	MoveSpeed float64 `yaml:"move_speed" toml:"move_speed"`
	JumpSpeed float64 `yaml:"jump_speed" toml:"jump_speed"`
	// Gravity is the vertical acceleration; negative pulls down.
	Gravity   float64 `yaml:"gravity" toml:"gravity"`
	FixedStep float64 `yaml:"fixed_step" toml:"fixed_step"`
}

func DefaultSettings() Settings {
	return Settings{
		MoveSpeed: 4,
		JumpSpeed: 10,
		Gravity:   -9.81,
		FixedStep: 1.0 / 50.0,
	}
}

// WithDefaults fills zero fields.
func (s Settings) WithDefaults() Settings {
	def := DefaultSettings()
	if s.MoveSpeed == 0 {
		s.MoveSpeed = def.MoveSpeed
	}
	if s.JumpSpeed == 0 {
		s.JumpSpeed = def.JumpSpeed
	}
	if s.Gravity == 0 {
		s.Gravity = def.Gravity
	}
	if s.FixedStep <= 0 {
		s.FixedStep = def.FixedStep
	}
	return s
}

// Controller owns one actor and drives it through the resolver once per
// fixed tick.
type Controller struct {
	Actor    *physics.Actor
	Resolver *physics.Resolver
	Settings Settings

	// Info is the collision snapshot of the last step.
	Info physics.CollisionInfo

	wasSliding bool
}

func NewController(actor *physics.Actor, resolver *physics.Resolver, settings Settings) *Controller {
	c := &Controller{
		Actor:    actor,
		Resolver: resolver,
		Settings: settings.WithDefaults(),
	}
	c.Info.Reset()
	return c
}

// Step advances the actor by one tick of dt seconds and returns the
// displacement that was applied.
func (c *Controller) Step(in Input, dt float64) cp.Vector {
	if c == nil || c.Actor == nil || c.Resolver == nil {
		return cp.Vector{}
	}
	a := c.Actor

	a.Velocity.X = in.MoveX * c.Settings.MoveSpeed
	a.Velocity.Y += c.Settings.Gravity * dt
	if in.Jump {
		a.Velocity.Y = c.Settings.JumpSpeed
	}

	d, info := c.Resolver.ResolveStep(a, a.Velocity.Mult(dt), dt)
	c.Info = info
	if info.Sliding && !c.wasSliding {
		log.Printf("character: sliding down slope at (%.3f, %.3f)", a.Position.X, a.Position.Y)
	}
	c.wasSliding = info.Sliding

	a.Position = a.Position.Add(d)
	return d
}

// Grounded reports whether the last step stood on walkable ground.
func (c *Controller) Grounded() bool {
	return c != nil && c.Info.Grounded()
}
