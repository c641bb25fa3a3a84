package inputscript

import (
	"errors"
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/rayphysics/character"
	"github.com/milk9111/rayphysics/common"
	"github.com/milk9111/rayphysics/prefabs"
)

var ErrNoInputFunc = errors.New("inputscript: script does not define input")

// dispatch runs after the user script on every Next call.
const dispatch = `
__out := is_callable(input) ? input(__tick) : undefined
`

// Script produces controller input from a tengo function `input(tick)` that
// returns a map like {move: 1.0, jump: false}.
type Script struct {
	Name     string
	compiled *tengo.Compiled
}

// Load compiles a script from prefabs/scripts.
func Load(name string) (*Script, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("inputscript: load %s: %w", name, err)
	}
	s, err := Compile(name, src)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func Compile(name string, src []byte) (*Script, error) {
	full := string(src) + "\n" + dispatch
	script := tengo.NewScript([]byte(full))
	_ = script.Add("__tick", 0)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("inputscript: compile %s: %w", name, err)
	}
	// globals are only populated once the script has run
	if err := compiled.Run(); err != nil {
		return nil, fmt.Errorf("inputscript: run %s: %w", name, err)
	}
	if _, ok := compiled.Get("input").Object().(*tengo.CompiledFunction); !ok {
		return nil, fmt.Errorf("inputscript: %s: %w", name, ErrNoInputFunc)
	}
	return &Script{Name: name, compiled: compiled}, nil
}

// Next evaluates the script for tick. Missing keys read as no input; move is
// clamped to [-1, 1].
func (s *Script) Next(tick int) (character.Input, error) {
	var in character.Input
	if s == nil || s.compiled == nil {
		return in, nil
	}
	if err := s.compiled.Set("__tick", tick); err != nil {
		return in, err
	}
	if err := s.compiled.Run(); err != nil {
		return in, fmt.Errorf("inputscript: %s tick %d: %w", s.Name, tick, err)
	}

	out := s.compiled.Get("__out")
	if out == nil || out.IsUndefined() {
		return in, nil
	}
	values := out.Map()
	if values == nil {
		return in, fmt.Errorf("inputscript: %s tick %d: input returned %s, want map", s.Name, tick, out.ValueType())
	}

	in.MoveX = common.Clamp(asFloat(values["move"]), -1, 1)
	if jump, ok := values["jump"].(bool); ok {
		in.Jump = jump
	}
	return in, nil
}

func asFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	case int:
		return float64(n)
	}
	return 0
}
