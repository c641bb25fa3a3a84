package physics

import (
	"errors"
	"fmt"

	"github.com/jakecoffman/cp"
)

// SkinWidth is the gap kept between the actor and any surface.
const SkinWidth = 0.025

const (
	MinRayCount = 2
	MaxRayCount = 15
)

var (
	ErrRayCount   = errors.New("physics: ray count out of range")
	ErrSize       = errors.New("physics: invalid actor size")
	ErrFeetWidth  = errors.New("physics: feet wider than body")
	ErrSlopeAngle = errors.New("physics: max slope angle out of range")
	ErrScale      = errors.New("physics: invalid scale")
)

// Config is the setup-time surface of an actor. It is loaded from prefab
// files, so every field carries yaml and toml tags.
type Config struct {
	Mask               uint    `yaml:"mask" toml:"mask"`
	HorizontalRayCount int     `yaml:"horizontal_ray_count" toml:"horizontal_ray_count"`
	VerticalRayCount   int     `yaml:"vertical_ray_count" toml:"vertical_ray_count"`
	MaxSlopeAngle      float64 `yaml:"max_slope_angle" toml:"max_slope_angle"`
	FeetWidth          float64 `yaml:"feet_width" toml:"feet_width"`
	BodyWidth          float64 `yaml:"body_width" toml:"body_width"`
	FixSpeed           float64 `yaml:"fix_speed" toml:"fix_speed"`
	ColliderHeight     float64 `yaml:"collider_height" toml:"collider_height"`
	Scale              Scale   `yaml:"scale" toml:"scale"`
}

type Scale struct {
	X float64 `yaml:"x" toml:"x"`
	Y float64 `yaml:"y" toml:"y"`
}

func (s Scale) Vector() cp.Vector {
	return cp.Vector{X: s.X, Y: s.Y}
}

// DefaultConfig is a unit-height actor with the usual tuning values.
func DefaultConfig() Config {
	return Config{
		Mask:               ^uint(0),
		HorizontalRayCount: 2,
		VerticalRayCount:   2,
		MaxSlopeAngle:      45,
		FeetWidth:          0.5,
		BodyWidth:          0.8,
		FixSpeed:           1,
		ColliderHeight:     1,
		Scale:              Scale{X: 1, Y: 1},
	}
}

// WithDefaults fills zero fields from DefaultConfig.
func (c Config) WithDefaults() Config {
	def := DefaultConfig()
	if c.Mask == 0 {
		c.Mask = def.Mask
	}
	if c.HorizontalRayCount == 0 {
		c.HorizontalRayCount = def.HorizontalRayCount
	}
	if c.VerticalRayCount == 0 {
		c.VerticalRayCount = def.VerticalRayCount
	}
	if c.MaxSlopeAngle == 0 {
		c.MaxSlopeAngle = def.MaxSlopeAngle
	}
	if c.FixSpeed == 0 {
		c.FixSpeed = def.FixSpeed
	}
	if c.Scale.X == 0 {
		c.Scale.X = def.Scale.X
	}
	if c.Scale.Y == 0 {
		c.Scale.Y = def.Scale.Y
	}
	return c
}

// Validate rejects configurations the resolver cannot work with. Ray counts
// below two would divide by zero when spacing the rays.
func (c Config) Validate() error {
	if c.HorizontalRayCount < MinRayCount || c.HorizontalRayCount > MaxRayCount {
		return fmt.Errorf("physics: horizontal ray count %d: %w", c.HorizontalRayCount, ErrRayCount)
	}
	if c.VerticalRayCount < MinRayCount || c.VerticalRayCount > MaxRayCount {
		return fmt.Errorf("physics: vertical ray count %d: %w", c.VerticalRayCount, ErrRayCount)
	}
	if c.FeetWidth <= 2*SkinWidth || c.BodyWidth <= 0 || c.ColliderHeight <= 2*SkinWidth {
		return fmt.Errorf("physics: feet %.3f body %.3f height %.3f: %w", c.FeetWidth, c.BodyWidth, c.ColliderHeight, ErrSize)
	}
	if c.FeetWidth > c.BodyWidth {
		return fmt.Errorf("physics: feet %.3f body %.3f: %w", c.FeetWidth, c.BodyWidth, ErrFeetWidth)
	}
	if c.MaxSlopeAngle <= 0 || c.MaxSlopeAngle >= 90 {
		return fmt.Errorf("physics: %.2f degrees: %w", c.MaxSlopeAngle, ErrSlopeAngle)
	}
	if c.Scale.X <= 0 || c.Scale.Y <= 0 {
		return fmt.Errorf("physics: scale %vx%v: %w", c.Scale.X, c.Scale.Y, ErrScale)
	}
	if c.FixSpeed < 0 {
		return fmt.Errorf("physics: fix speed %.3f: %w", c.FixSpeed, ErrSize)
	}
	return nil
}
