package main

import (
	"testing"

	"github.com/milk9111/rayphysics/scene"
)

func TestRunIdleSettles(t *testing.T) {
	s, err := scene.Load("", "", "idle.tengo")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	report, err := run(s, 100, false)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(report.Steps) != 100 {
		t.Fatalf("expected 100 steps, got %d", len(report.Steps))
	}
	if report.Script != "idle.tengo" {
		t.Fatalf("expected the idle script, got %q", report.Script)
	}
	last := report.Steps[len(report.Steps)-1]
	if !last.Below {
		t.Fatalf("expected to end on the ground, got %+v", last)
	}
	if report.GroundedTicks == 0 || report.GroundedTicks == 100 {
		t.Fatalf("expected a fall then a landing, grounded %d", report.GroundedTicks)
	}
	if s.Actor().LayoutReady() != true {
		t.Fatalf("expected the collider fixup to have run")
	}
}
