package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/duojump/control"
	"github.com/milk9111/duojump/ecs"
	"github.com/milk9111/duojump/ecs/component"
	"github.com/sirupsen/logrus"
)

// MovementSystem applies queued key events to the control state and sends
// the resulting velocity commands to the player bodies. Every key-down runs
// the resolver once, and the resolver runs once more before the physics
// step.
type MovementSystem struct {
	state *control.State
	log   logrus.FieldLogger

	bodies []*cp.Body
	vels   []mgl64.Vec2
}

func NewMovementSystem(state *control.State, log logrus.FieldLogger) *MovementSystem {
	return &MovementSystem{state: state, log: log}
}

func (m *MovementSystem) Update(w *ecs.World) {
	if m == nil || m.state == nil || w == nil {
		return
	}

	m.collectBodies(w)

	for _, evt := range w.Events().DrainTypes(EventKeyDown, EventKeyUp, EventFocusLost) {
		switch evt.Type {
		case EventKeyDown:
			k, ok := evt.Data.(control.Key)
			if !ok {
				continue
			}
			m.state.KeyDown(k)
			m.apply(m.state.Resolve(m.vels))
		case EventKeyUp:
			k, ok := evt.Data.(control.Key)
			if !ok {
				continue
			}
			m.apply(m.state.KeyUp(k, m.vels))
		case EventFocusLost:
			m.apply(m.state.ReleaseAll(m.vels))
			m.logDebug(logrus.Fields{}, "movement: focus lost, released held keys")
		}
	}

	m.apply(m.state.Resolve(m.vels))
}

// collectBodies indexes player bodies and their velocities by player index.
func (m *MovementSystem) collectBodies(w *ecs.World) {
	n := m.state.Players()
	if cap(m.bodies) < n {
		m.bodies = make([]*cp.Body, n)
		m.vels = make([]mgl64.Vec2, n)
	}
	m.bodies = m.bodies[:n]
	m.vels = m.vels[:n]
	for i := range m.bodies {
		m.bodies[i] = nil
		m.vels[i] = mgl64.Vec2{}
	}

	for _, e := range w.Query(component.PlayerComponent.Kind(), component.PhysicsBodyComponent.Kind()) {
		player, ok := ecs.Get(w, e, component.PlayerComponent)
		if !ok || player.Index < 0 || player.Index >= n {
			continue
		}
		body, ok := ecs.Get(w, e, component.PhysicsBodyComponent)
		if !ok || body.Body == nil {
			continue
		}
		v := body.Body.Velocity()
		m.bodies[player.Index] = body.Body
		m.vels[player.Index] = mgl64.Vec2{v.X, v.Y}
	}
}

func (m *MovementSystem) apply(cmds []control.Command) {
	for _, cmd := range cmds {
		if cmd.Player < 0 || cmd.Player >= len(m.bodies) {
			continue
		}
		body := m.bodies[cmd.Player]
		if body == nil {
			continue
		}
		body.SetVelocity(cmd.Velocity.X(), cmd.Velocity.Y())
		m.vels[cmd.Player] = cmd.Velocity
		if cmd.Jumped {
			m.logDebug(logrus.Fields{
				"player": cmd.Player,
				"jumps":  m.state.Jumps().Count(cmd.Player),
			}, "movement: jump")
		}
	}
}

func (m *MovementSystem) logDebug(fields logrus.Fields, msg string) {
	if m.log == nil {
		return
	}
	m.log.WithFields(fields).Debug(msg)
}
