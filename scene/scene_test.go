package scene

import (
	"testing"

	"github.com/milk9111/rayphysics/character"
	"github.com/milk9111/rayphysics/physics"
)

func TestLoadDefaults(t *testing.T) {
	s, err := Load("", "", "")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Script != nil {
		t.Fatalf("expected keyboard input for the default actor")
	}
	if s.Space.Shapes() == 0 {
		t.Fatalf("expected level geometry")
	}
	if got := s.Deferred.Pending(); got != 2 {
		t.Fatalf("expected 2 pending fixups, got %d", got)
	}
}

func TestFrameRunsFixups(t *testing.T) {
	s, err := Load("", "", "")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	a := s.Actor()
	height := a.Collider.Size.Y

	// the contact fixup lands this frame, the collider fixup sees it next frame
	s.Frame()
	if a.LayoutReady() {
		t.Fatalf("collider fixup ran before the contact fixup")
	}
	s.Frame()
	if !a.LayoutReady() {
		t.Fatalf("expected the collider fixup to have run")
	}
	if a.Collider.Size.Y >= height {
		t.Fatalf("expected a smaller collider, got %v from %v", a.Collider.Size.Y, height)
	}
	if s.Deferred.Pending() != 0 {
		t.Fatalf("expected no pending tasks")
	}
	// probes keep the height from creation
	if a.ProbeHeight() != height {
		t.Fatalf("expected probe height %v, got %v", height, a.ProbeHeight())
	}
}

func TestActorSettlesOnFloor(t *testing.T) {
	s, err := Load("", "", "")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	dt := s.Controller.Settings.FixedStep
	for i := 0; i < 200; i++ {
		if _, err := s.Step(character.Input{}, dt); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
	if !s.Controller.Grounded() {
		t.Fatalf("expected grounded after falling, got %s", s.Controller.Info)
	}
	if y := s.Actor().Position.Y; y < 1-physics.SkinWidth || y > 1+physics.SkinWidth {
		t.Fatalf("expected to rest on the floor at 1, got %v", y)
	}
	if len(s.Trace.Traces()) == 0 {
		t.Fatalf("expected traces from the last step")
	}
	if s.Tick() != 200 {
		t.Fatalf("expected 200 ticks, got %d", s.Tick())
	}
}

func TestScriptedActorWalksRight(t *testing.T) {
	s, err := Load("", "", "walk_right.tengo")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	start := s.Actor().Position.X
	dt := s.Controller.Settings.FixedStep
	for i := 0; i < 50; i++ {
		// keyboard input is ignored while a script drives the actor
		if _, err := s.Step(character.Input{MoveX: -1}, dt); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
	if s.Actor().Position.X <= start {
		t.Fatalf("expected to move right from %v, got %v", start, s.Actor().Position.X)
	}
}

func TestReloadActor(t *testing.T) {
	s, err := Load("", "", "")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	s.Controller.Settings.MoveSpeed = 99
	if err := s.ReloadActor(); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if s.Controller.Settings.MoveSpeed != 4 {
		t.Fatalf("expected move speed from the prefab, got %v", s.Controller.Settings.MoveSpeed)
	}
	if err := s.ReloadScript(); err != nil {
		t.Fatalf("reload without script: %v", err)
	}
}

func TestLoadMissingActor(t *testing.T) {
	if _, err := Load("", "missing.yaml", ""); err == nil {
		t.Fatalf("expected error for a missing actor")
	}
}
