package control

import "math"

// MaxJumps is the number of jumps allowed between two contacts.
const MaxJumps = 2

// Tuning holds the movement constants shared by every player. Velocities
// are in pixels per physics tick.
type Tuning struct {
	MoveSpeed     float64
	JumpForce     float64
	RestThreshold float64
}

func DefaultTuning() Tuning {
	return Tuning{
		MoveSpeed:     3,
		JumpForce:     -8,
		RestThreshold: 0.5,
	}
}

// CanJump reports whether a player with count jumps spent and vertical
// velocity vy may jump again. The velocity check does not tell standing on
// ground apart from the apex of a jump, which is what lets the second jump
// fire near the top of the first.
func (t Tuning) CanJump(count int, vy float64) bool {
	return count < MaxJumps && math.Abs(vy) < t.RestThreshold
}
