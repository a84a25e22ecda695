package control

import "github.com/samber/lo"

// JumpLedger counts jumps per player index since that player's last contact.
type JumpLedger struct {
	counts []int
}

func NewJumpLedger(players int) *JumpLedger {
	if players < 0 {
		players = 0
	}
	return &JumpLedger{counts: make([]int, players)}
}

func (l *JumpLedger) Len() int {
	if l == nil {
		return 0
	}
	return len(l.counts)
}

// Count returns the jumps spent by player. Unknown players read as 0.
func (l *JumpLedger) Count(player int) int {
	if l == nil || player < 0 || player >= len(l.counts) {
		return 0
	}
	return l.counts[player]
}

// Increment records one jump for player and returns the new count, which
// never exceeds MaxJumps.
func (l *JumpLedger) Increment(player int) int {
	if l == nil || player < 0 || player >= len(l.counts) {
		return 0
	}
	l.counts[player] = lo.Clamp(l.counts[player]+1, 0, MaxJumps)
	return l.counts[player]
}

func (l *JumpLedger) Reset(player int) {
	if l == nil || player < 0 || player >= len(l.counts) {
		return
	}
	l.counts[player] = 0
}
