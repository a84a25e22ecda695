package entity

import (
	"errors"
	"testing"

	"github.com/milk9111/duojump/control"
	"github.com/milk9111/duojump/ecs"
	"github.com/milk9111/duojump/ecs/component"
	"github.com/milk9111/duojump/prefabs"
)

func TestBuildArena(t *testing.T) {
	spec, err := prefabs.LoadArena(prefabs.DefaultArena)
	if err != nil {
		t.Fatalf("load arena: %v", err)
	}

	w := ecs.NewWorld()
	w.SetPhysicsWorld(ecs.NewPhysicsWorld(PhysicsConfig(spec), nil))
	state := control.NewState(control.DefaultBindings(), Tuning(spec))

	arena, err := BuildArena(w, spec, state)
	if err != nil {
		t.Fatalf("build arena: %v", err)
	}
	if len(arena.Players) != 2 || len(arena.Platforms) != 3 {
		t.Fatalf("unexpected arena %+v", arena)
	}

	for i, e := range arena.Players {
		p, ok := ecs.Get(w, e, component.PlayerComponent)
		if !ok || p.Index != i {
			t.Fatalf("player %d: expected index %d, got %+v", i, i, p)
		}
		body, ok := ecs.Get(w, e, component.PhysicsBodyComponent)
		if !ok || body.Body == nil || body.Static {
			t.Fatalf("player %d: expected a dynamic body", i)
		}
		if body.Body.Position().X != spec.Players[i].X {
			t.Fatalf("player %d: body not placed at spawn", i)
		}
	}
	for _, e := range arena.Platforms {
		body, ok := ecs.Get(w, e, component.PhysicsBodyComponent)
		if !ok || !body.Static || body.Shape == nil {
			t.Fatalf("platform %v: expected a static shape", e)
		}
	}

	if state.Facing(1) != control.FacingLeft {
		t.Fatalf("player 2 should start facing left")
	}
}

func TestBuildArenaNeedsPhysics(t *testing.T) {
	spec, err := prefabs.LoadArena(prefabs.DefaultArena)
	if err != nil {
		t.Fatalf("load arena: %v", err)
	}
	_, err = BuildArena(ecs.NewWorld(), spec, control.NewState(control.DefaultBindings(), Tuning(spec)))
	if !errors.Is(err, ErrNoPhysicsWorld) {
		t.Fatalf("expected ErrNoPhysicsWorld, got %v", err)
	}
}

func TestTuningDefaults(t *testing.T) {
	spec := &prefabs.ArenaSpec{Tuning: prefabs.TuningSpec{MoveSpeed: 5}}
	got := Tuning(spec)
	want := control.DefaultTuning()
	want.MoveSpeed = 5
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestApplyConstants(t *testing.T) {
	spec, err := prefabs.LoadArena(prefabs.DefaultArena)
	if err != nil {
		t.Fatalf("load arena: %v", err)
	}
	w := ecs.NewWorld()
	w.SetPhysicsWorld(ecs.NewPhysicsWorld(PhysicsConfig(spec), nil))
	state := control.NewState(control.DefaultBindings(), Tuning(spec))
	if _, err := BuildArena(w, spec, state); err != nil {
		t.Fatalf("build arena: %v", err)
	}

	reloaded := *spec
	reloaded.Tuning.MoveSpeed = 5
	reloaded.Physics.Gravity = 0.5
	ApplyConstants(w, &reloaded, state)

	if got := state.Tuning().MoveSpeed; got != 5 {
		t.Fatalf("expected move speed 5, got %v", got)
	}
	if got := state.Tuning().JumpForce; got != control.DefaultTuning().JumpForce {
		t.Fatalf("expected jump force kept, got %v", got)
	}
	if got := w.PhysicsWorld().Space().Gravity().Y; got != 0.5 {
		t.Fatalf("expected gravity 0.5, got %v", got)
	}
}
