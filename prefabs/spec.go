package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/rayphysics/character"
	"github.com/milk9111/rayphysics/physics"
	"gopkg.in/yaml.v3"
)

var ErrUnknownFormat = errors.New("prefabs: unknown spec format")

// ActorSpec is the prefab of a playable actor.
type ActorSpec struct {
	Name     string             `yaml:"name" toml:"name"`
	Physics  physics.Config     `yaml:"physics" toml:"physics"`
	Movement character.Settings `yaml:"movement" toml:"movement"`
	Spawn    *SpawnSpec         `yaml:"spawn" toml:"spawn"`
	Color    *YAMLColor         `yaml:"color" toml:"color"`
	// Script optionally names a tengo input script that drives the actor
	// instead of the keyboard.
	Script string `yaml:"script" toml:"script"`
}

// SpawnSpec overrides the level's spawn point, in world units.
type SpawnSpec struct {
	X float64 `yaml:"x" toml:"x"`
	Y float64 `yaml:"y" toml:"y"`
}

func (s *SpawnSpec) Vector() (cp.Vector, bool) {
	if s == nil {
		return cp.Vector{}, false
	}
	return cp.Vector{X: s.X, Y: s.Y}, true
}

// LoadSpec decodes a prefab file as YAML or TOML depending on its extension.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &spec); err != nil {
			return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), &spec); err != nil {
			return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
		}
	default:
		return zero, fmt.Errorf("prefabs: %s: %w", filename, ErrUnknownFormat)
	}

	return spec, nil
}

// LoadActorSpec loads an actor prefab, fills unset values with defaults and
// validates the physics configuration.
func LoadActorSpec(filename string) (*ActorSpec, error) {
	spec, err := LoadSpec[ActorSpec](filename)
	if err != nil {
		return nil, err
	}
	spec.Physics = spec.Physics.WithDefaults()
	spec.Movement = spec.Movement.WithDefaults()
	if err := spec.Physics.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", filename, err)
	}
	return &spec, nil
}

// YAMLColor is a "#rrggbb" or "#rrggbbaa" color in a prefab file.
type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	return c.parse(value.Value)
}

// UnmarshalText lets TOML decode the same hex strings.
func (c *YAMLColor) UnmarshalText(text []byte) error {
	return c.parse(string(text))
}

func (c *YAMLColor) parse(value string) error {
	s := strings.TrimPrefix(value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// ColorOr returns the prefab color or fallback when none was set.
func (c *YAMLColor) ColorOr(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}
