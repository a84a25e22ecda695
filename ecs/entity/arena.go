package entity

import (
	"github.com/milk9111/duojump/control"
	"github.com/milk9111/duojump/ecs"
	"github.com/milk9111/duojump/prefabs"
)

// Arena lists the entities built from an arena prefab. Players are ordered
// by player index.
type Arena struct {
	Players   []ecs.Entity
	Platforms []ecs.Entity
}

// PhysicsConfig converts the prefab's physics block.
func PhysicsConfig(spec *prefabs.ArenaSpec) ecs.PhysicsConfig {
	return ecs.PhysicsConfig{
		Gravity:    spec.Physics.Gravity,
		Damping:    spec.Physics.Damping,
		Iterations: spec.Physics.Iterations,
	}
}

// Tuning converts the prefab's tuning block. Unset fields keep the defaults.
func Tuning(spec *prefabs.ArenaSpec) control.Tuning {
	t := control.DefaultTuning()
	if spec.Tuning.MoveSpeed != 0 {
		t.MoveSpeed = spec.Tuning.MoveSpeed
	}
	if spec.Tuning.JumpForce != 0 {
		t.JumpForce = spec.Tuning.JumpForce
	}
	if spec.Tuning.RestThreshold != 0 {
		t.RestThreshold = spec.Tuning.RestThreshold
	}
	return t
}

// BuildArena creates the platforms and players of spec in w and applies each
// player's initial facing to state. w must already have a physics world.
func BuildArena(w *ecs.World, spec *prefabs.ArenaSpec, state *control.State) (Arena, error) {
	var arena Arena
	for _, ps := range spec.Platforms {
		e, err := NewPlatform(w, ps)
		if err != nil {
			return Arena{}, err
		}
		arena.Platforms = append(arena.Platforms, e)
	}
	for i, ps := range spec.Players {
		e, err := NewPlayer(w, i, ps)
		if err != nil {
			return Arena{}, err
		}
		if ps.Facing != "" {
			state.SetFacing(i, control.Facing(ps.Facing))
		}
		arena.Players = append(arena.Players, e)
	}
	return arena, nil
}

// ApplyConstants re-applies the tuning and physics blocks of spec to a
// running arena. Geometry is left alone.
func ApplyConstants(w *ecs.World, spec *prefabs.ArenaSpec, state *control.State) {
	if spec == nil {
		return
	}
	if state != nil {
		state.SetTuning(Tuning(spec))
	}
	if w != nil {
		w.PhysicsWorld().Configure(PhysicsConfig(spec))
	}
}
