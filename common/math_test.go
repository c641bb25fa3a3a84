package common

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

func TestAngleDeg(t *testing.T) {
	cases := []struct {
		name string
		a, b cp.Vector
		want float64
	}{
		{"same", cp.Vector{X: 0, Y: 1}, cp.Vector{X: 0, Y: 1}, 0},
		{"perpendicular", cp.Vector{X: 0, Y: 1}, cp.Vector{X: -1, Y: 0}, 90},
		{"opposite", cp.Vector{X: 0, Y: 1}, cp.Vector{X: 0, Y: -3}, 180},
		{"thirty", cp.Vector{X: 0, Y: 1}, cp.Vector{X: -0.5, Y: math.Sqrt(3) / 2}, 30},
		{"zero_length", cp.Vector{}, cp.Vector{X: 1, Y: 0}, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := AngleDeg(c.a, c.b); math.Abs(got-c.want) > 1e-9 {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 1); got != 1 {
		t.Fatalf("expected 1, got %v", got)
	}
	if got := Clamp(-5, 0, 1); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
	// min is checked first when the bounds are inverted
	if got := Clamp(0, 0.5, -0.5); got != 0.5 {
		t.Fatalf("expected 0.5, got %v", got)
	}
	if got := LerpClamped(0, 10, 2); got != 10 {
		t.Fatalf("expected 10, got %v", got)
	}
	if got := Lerp(0, 10, 2); got != 20 {
		t.Fatalf("expected 20, got %v", got)
	}
}

func TestApproximately(t *testing.T) {
	if !Approximately(0, 1e-9) {
		t.Fatalf("expected tiny value to approximate zero")
	}
	if Approximately(0, 0.01) {
		t.Fatalf("did not expect 0.01 to approximate zero")
	}
}
