package control

import "github.com/go-gl/mathgl/mgl64"

// Facing is the horizontal direction a player last moved in.
type Facing string

const (
	FacingLeft  Facing = "left"
	FacingRight Facing = "right"
)

// Command asks the physics engine to set a player's velocity.
type Command struct {
	Player   int
	Velocity mgl64.Vec2
	Jumped   bool
}

// State owns the held keys and jump ledger for every player. Player indices
// are positions in the binding list; velocities passed to State methods use
// the same indices.
type State struct {
	held     *HeldKeys
	jumps    *JumpLedger
	bindings []Binding
	facing   []Facing
	tuning   Tuning
}

func NewState(bindings []Binding, tuning Tuning) *State {
	copied := append([]Binding(nil), bindings...)
	facing := make([]Facing, len(copied))
	for i := range facing {
		facing[i] = FacingRight
	}
	return &State{
		held:     NewHeldKeys(),
		jumps:    NewJumpLedger(len(copied)),
		bindings: copied,
		facing:   facing,
		tuning:   tuning,
	}
}

func (s *State) Players() int {
	if s == nil {
		return 0
	}
	return len(s.bindings)
}

func (s *State) Held() *HeldKeys {
	if s == nil {
		return nil
	}
	return s.held
}

func (s *State) Jumps() *JumpLedger {
	if s == nil {
		return nil
	}
	return s.jumps
}

func (s *State) Binding(player int) (Binding, bool) {
	if s == nil || player < 0 || player >= len(s.bindings) {
		return Binding{}, false
	}
	return s.bindings[player], true
}

func (s *State) Tuning() Tuning {
	if s == nil {
		return DefaultTuning()
	}
	return s.tuning
}

func (s *State) SetTuning(t Tuning) {
	if s == nil {
		return
	}
	s.tuning = t
}

func (s *State) Facing(player int) Facing {
	if s == nil || player < 0 || player >= len(s.facing) {
		return FacingRight
	}
	return s.facing[player]
}

func (s *State) SetFacing(player int, f Facing) {
	if s == nil || player < 0 || player >= len(s.facing) {
		return
	}
	if f != FacingLeft && f != FacingRight {
		return
	}
	s.facing[player] = f
}

// CanJump applies the tuning's can-jump rule to player's current count.
func (s *State) CanJump(player int, vy float64) bool {
	if s == nil {
		return false
	}
	return s.tuning.CanJump(s.jumps.Count(player), vy)
}

// KeyDown marks k as held.
func (s *State) KeyDown(k Key) {
	if s == nil {
		return
	}
	s.held.Press(k)
}

// KeyUp releases k. Releasing a player's movement key stops that player
// horizontally, so the returned commands zero vx and keep vy.
func (s *State) KeyUp(k Key, velocities []mgl64.Vec2) []Command {
	if s == nil {
		return nil
	}
	s.held.Release(k)

	var cmds []Command
	for i, b := range s.bindings {
		if !b.Horizontal(k) || i >= len(velocities) {
			continue
		}
		cmds = append(cmds, Command{
			Player:   i,
			Velocity: mgl64.Vec2{0, velocities[i].Y()},
		})
	}
	return cmds
}

// ReleaseAll releases every held key as if each had a key-up event.
func (s *State) ReleaseAll(velocities []mgl64.Vec2) []Command {
	if s == nil {
		return nil
	}
	var cmds []Command
	stopped := make([]bool, len(s.bindings))
	for _, k := range s.held.Keys() {
		for _, cmd := range s.KeyUp(k, velocities) {
			if stopped[cmd.Player] {
				continue
			}
			stopped[cmd.Player] = true
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}

// Resolve turns the held keys into velocity commands. Each player is handled
// on its own: movement keys set vx, and a held jump key sets vy and spends a
// jump when CanJump allows it. Players whose velocity is left alone get no
// command.
func (s *State) Resolve(velocities []mgl64.Vec2) []Command {
	if s == nil {
		return nil
	}

	var cmds []Command
	for i, b := range s.bindings {
		if i >= len(velocities) {
			break
		}
		vel := velocities[i]
		changed := false

		if s.held.Has(b.Left) {
			vel[0] = -s.tuning.MoveSpeed
			s.facing[i] = FacingLeft
			changed = true
		} else if s.held.Has(b.Right) {
			vel[0] = s.tuning.MoveSpeed
			s.facing[i] = FacingRight
			changed = true
		}

		jumped := false
		if s.held.Has(b.Jump) && s.CanJump(i, vel.Y()) {
			vel[1] = s.tuning.JumpForce
			s.jumps.Increment(i)
			jumped = true
			changed = true
		}

		if changed {
			cmds = append(cmds, Command{Player: i, Velocity: vel, Jumped: jumped})
		}
	}
	return cmds
}

// OnCollision resets player's jumps. Any contact counts, including contact
// with the other player.
func (s *State) OnCollision(player int) {
	if s == nil {
		return
	}
	s.jumps.Reset(player)
}
