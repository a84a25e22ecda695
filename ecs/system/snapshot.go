package system

import (
	"github.com/milk9111/duojump/control"
	"github.com/milk9111/duojump/ecs"
	"github.com/milk9111/duojump/ecs/component"
	"github.com/samber/lo"
)

// Snapshot builds a read-only view of the players and platforms in w.
// Platforms are described by their top-left corner.
func Snapshot(w *ecs.World, state *control.State) control.GameState {
	players := w.Query(component.PlayerComponent.Kind(), component.TransformComponent.Kind())
	platforms := w.Query(component.PlatformComponent.Kind(), component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind())

	gs := control.GameState{
		Players: lo.FilterMap(players, func(e ecs.Entity, _ int) (control.PlayerState, bool) {
			p, ok := ecs.Get(w, e, component.PlayerComponent)
			if !ok {
				return control.PlayerState{}, false
			}
			tr, _ := ecs.Get(w, e, component.TransformComponent)
			jumps := state.Jumps().Count(p.Index)
			return control.PlayerState{
				ID:        p.Index,
				X:         tr.X,
				Y:         tr.Y,
				Direction: state.Facing(p.Index),
				IsJumping: jumps > 0,
				Jumps:     jumps,
			}, true
		}),
		Platforms: lo.Map(platforms, func(e ecs.Entity, _ int) control.PlatformState {
			tr, _ := ecs.Get(w, e, component.TransformComponent)
			body, _ := ecs.Get(w, e, component.PhysicsBodyComponent)
			return control.PlatformState{
				X:      tr.X - body.Width/2,
				Y:      tr.Y - body.Height/2,
				Width:  body.Width,
				Height: body.Height,
			}
		}),
	}
	return gs
}
