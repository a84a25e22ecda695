package system

import (
	"github.com/milk9111/duojump/ecs"
	"github.com/milk9111/duojump/ecs/component"
)

// PhysicsSystem steps the attached physics world by one tick, queues the
// collisions that began, and copies body positions into transforms.
type PhysicsSystem struct {
	dt float64
}

// NewPhysicsSystem steps by 1.0 per tick, so velocities are in pixels per
// tick.
func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{dt: 1.0}
}

func (p *PhysicsSystem) Update(w *ecs.World) {
	if p == nil || w == nil {
		return
	}
	pw := w.PhysicsWorld()
	if pw == nil {
		return
	}

	for _, evt := range pw.Step(p.dt) {
		w.Events().Push(ecs.Event{Type: ecs.EventCollision, Data: evt})
	}

	p.syncTransforms(w)
}

func (p *PhysicsSystem) syncTransforms(w *ecs.World) {
	for _, e := range w.Query(component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind()) {
		body, ok := ecs.Get(w, e, component.PhysicsBodyComponent)
		if !ok || body.Body == nil || body.Static {
			continue
		}
		pos := body.Body.Position()
		_ = ecs.Add(w, e, component.TransformComponent, component.Transform{X: pos.X, Y: pos.Y})
	}
}
