package system

import (
	"github.com/milk9111/duojump/control"
	"github.com/milk9111/duojump/ecs"
	"github.com/milk9111/duojump/ecs/component"
	"github.com/sirupsen/logrus"
)

// JumpResetSystem resets a player's jumps whenever one of its contacts
// begins, whatever the other body is.
type JumpResetSystem struct {
	state *control.State
	log   logrus.FieldLogger
}

func NewJumpResetSystem(state *control.State, log logrus.FieldLogger) *JumpResetSystem {
	return &JumpResetSystem{state: state, log: log}
}

func (j *JumpResetSystem) Update(w *ecs.World) {
	if j == nil || j.state == nil || w == nil {
		return
	}
	for _, evt := range w.Events().DrainTypes(ecs.EventCollision) {
		contact, ok := evt.Data.(ecs.CollisionEvent)
		if !ok {
			continue
		}
		j.reset(w, contact.A)
		j.reset(w, contact.B)
	}
}

func (j *JumpResetSystem) reset(w *ecs.World, e ecs.Entity) {
	player, ok := ecs.Get(w, e, component.PlayerComponent)
	if !ok {
		return
	}
	if j.log != nil && j.state.Jumps().Count(player.Index) > 0 {
		j.log.WithField("player", player.Index).Debug("jumps: reset on contact")
	}
	j.state.OnCollision(player.Index)
}
