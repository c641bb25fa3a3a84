package scene

import (
	"fmt"
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/rayphysics/character"
	"github.com/milk9111/rayphysics/inputscript"
	"github.com/milk9111/rayphysics/levels"
	"github.com/milk9111/rayphysics/physics"
	"github.com/milk9111/rayphysics/prefabs"
	"github.com/milk9111/rayphysics/world"
)

// Scene is one level with one controlled actor, shared by the demo and the
// headless simulator.
type Scene struct {
	Level      *world.Level
	Space      *world.Space
	Spec       *prefabs.ActorSpec
	ActorName  string
	Controller *character.Controller
	Trace      *physics.TraceLog
	Deferred   *physics.Deferred
	// Script drives the actor when set; otherwise input comes from outside.
	Script *inputscript.Script

	tick int
}

// Load builds a scene from a level and an actor prefab. An empty script name
// falls back to the one named by the prefab, if any.
func Load(levelName, actorName, scriptName string) (*Scene, error) {
	lvl, err := levels.Load(levelName)
	if err != nil {
		return nil, err
	}
	if actorName == "" {
		actorName = prefabs.DefaultActor
	}
	spec, err := prefabs.LoadActorSpec(actorName)
	if err != nil {
		return nil, err
	}
	return New(lvl, spec, actorName, scriptName)
}

func New(lvl *world.Level, spec *prefabs.ActorSpec, actorName, scriptName string) (*Scene, error) {
	if lvl == nil || spec == nil {
		return nil, fmt.Errorf("scene: nil level or actor")
	}

	spawn, ok := spec.Spawn.Vector()
	if !ok {
		spawn = lvl.SpawnPosition()
	}
	actor, err := physics.NewActor(spec.Physics, spawn)
	if err != nil {
		return nil, fmt.Errorf("scene: actor %s: %w", actorName, err)
	}

	space := world.BuildSpace(lvl)
	trace := &physics.TraceLog{}
	s := &Scene{
		Level:      lvl,
		Space:      space,
		Spec:       spec,
		ActorName:  actorName,
		Controller: character.NewController(actor, physics.NewResolver(space, trace), spec.Movement),
		Trace:      trace,
		Deferred:   &physics.Deferred{},
	}

	// The collider fixup waits for the contact fixup to resize the engine
	// box, then applies the slope offset on top of it.
	s.Deferred.Schedule(physics.NewColliderFixup(actor))
	s.Deferred.Schedule(physics.TaskFunc(func() bool {
		actor.ApplyContactFixup(physics.DefaultContactOffset)
		return true
	}))

	if scriptName == "" {
		scriptName = spec.Script
	}
	if scriptName != "" {
		script, err := inputscript.Load(scriptName)
		if err != nil {
			return nil, err
		}
		s.Script = script
	}

	log.Printf("scene: %d shapes, actor %s at (%.2f, %.2f)", space.Shapes(), spec.Name, spawn.X, spawn.Y)
	return s, nil
}

func (s *Scene) Actor() *physics.Actor {
	if s == nil || s.Controller == nil {
		return nil
	}
	return s.Controller.Actor
}

// Tick is the number of fixed steps run so far.
func (s *Scene) Tick() int {
	if s == nil {
		return 0
	}
	return s.tick
}

// Step runs one fixed step. When the scene has a script, in is ignored and
// the script's input for the current tick is used.
func (s *Scene) Step(in character.Input, dt float64) (cp.Vector, error) {
	if s == nil || s.Controller == nil {
		return cp.Vector{}, nil
	}
	if s.Script != nil {
		var err error
		in, err = s.Script.Next(s.tick)
		if err != nil {
			return cp.Vector{}, err
		}
	}
	s.Trace.Reset()
	d := s.Controller.Step(in, dt)
	s.tick++
	return d, nil
}

// Frame runs the per-frame deferred work. It must be called from the render
// loop, not between fixed steps.
func (s *Scene) Frame() {
	if s == nil {
		return
	}
	s.Deferred.RunFrame()
}

// ReloadActor re-reads the actor prefab and applies it to the live actor.
func (s *Scene) ReloadActor() error {
	if s == nil {
		return nil
	}
	spec, err := prefabs.LoadActorSpec(s.ActorName)
	if err != nil {
		return err
	}
	if err := s.Actor().SetConfig(spec.Physics); err != nil {
		return err
	}
	s.Spec = spec
	s.Controller.Settings = spec.Movement
	log.Printf("scene: reloaded %s", s.ActorName)
	return nil
}

// ReloadScript recompiles the active input script.
func (s *Scene) ReloadScript() error {
	if s == nil || s.Script == nil {
		return nil
	}
	script, err := inputscript.Load(s.Script.Name)
	if err != nil {
		return err
	}
	s.Script = script
	log.Printf("scene: reloaded script %s", script.Name)
	return nil
}
