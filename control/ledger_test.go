package control

import "testing"

func TestJumpLedgerBounds(t *testing.T) {
	l := NewJumpLedger(2)

	for i := 0; i < 10; i++ {
		l.Increment(0)
		if c := l.Count(0); c < 0 || c > MaxJumps {
			t.Fatalf("count out of range: %d", c)
		}
	}
	if l.Count(0) != MaxJumps {
		t.Fatalf("expected saturation at %d, got %d", MaxJumps, l.Count(0))
	}

	l.Reset(0)
	if l.Count(0) != 0 {
		t.Fatalf("expected reset to 0")
	}
}

func TestJumpLedgerUnknownPlayer(t *testing.T) {
	cases := []struct {
		name   string
		player int
	}{
		{"negative", -1},
		{"past_end", 2},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			l := NewJumpLedger(2)
			if got := l.Increment(c.player); got != 0 {
				t.Fatalf("expected 0, got %d", got)
			}
			if got := l.Count(c.player); got != 0 {
				t.Fatalf("expected 0, got %d", got)
			}
			l.Reset(c.player)
		})
	}

	var nilLedger *JumpLedger
	if nilLedger.Count(0) != 0 || nilLedger.Len() != 0 {
		t.Fatalf("nil ledger should read as empty")
	}
}

func TestCanJump(t *testing.T) {
	tuning := DefaultTuning()
	cases := []struct {
		count int
		vy    float64
		want  bool
	}{
		{0, 0, true},
		{1, 0.3, true},
		{2, 0, false},
		{0, -0.6, false},
		{1, 12, false},
	}
	for _, c := range cases {
		if got := tuning.CanJump(c.count, c.vy); got != c.want {
			t.Fatalf("CanJump(%d, %v) = %v, want %v", c.count, c.vy, got, c.want)
		}
	}
}

func TestHeldKeys(t *testing.T) {
	h := NewHeldKeys()
	h.Press(KeyW)
	h.Press(KeyW)
	h.Press(KeyA)
	if h.Len() != 2 {
		t.Fatalf("press should be idempotent, got %d keys", h.Len())
	}
	keys := h.Keys()
	if len(keys) != 2 || keys[0] != KeyA || keys[1] != KeyW {
		t.Fatalf("expected sorted [a w], got %v", keys)
	}
	h.Release(KeyW)
	h.Release(KeyW)
	if h.Has(KeyW) || !h.Has(KeyA) {
		t.Fatalf("unexpected held set %v", h.Keys())
	}
	h.Press("")
	if h.Len() != 1 {
		t.Fatalf("empty key should be ignored")
	}
}
