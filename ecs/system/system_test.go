package system

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/duojump/control"
	"github.com/milk9111/duojump/ecs"
	"github.com/milk9111/duojump/ecs/component"
	"github.com/milk9111/duojump/ecs/entity"
	"github.com/milk9111/duojump/prefabs"
)

type fakeKeys struct {
	pressed  []control.Key
	released []control.Key
	focused  bool
}

func (f *fakeKeys) AppendJustPressedKeys(keys []control.Key) []control.Key {
	keys = append(keys, f.pressed...)
	f.pressed = nil
	return keys
}

func (f *fakeKeys) AppendJustReleasedKeys(keys []control.Key) []control.Key {
	keys = append(keys, f.released...)
	f.released = nil
	return keys
}

func (f *fakeKeys) IsFocused() bool {
	return f.focused
}

type harness struct {
	world *ecs.World
	state *control.State
	keys  *fakeKeys
	arena entity.Arena
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	spec, err := prefabs.LoadArena(prefabs.DefaultArena)
	if err != nil {
		t.Fatalf("load arena: %v", err)
	}
	w := ecs.NewWorld()
	w.SetPhysicsWorld(ecs.NewPhysicsWorld(entity.PhysicsConfig(spec), nil))
	state := control.NewState(control.DefaultBindings(), entity.Tuning(spec))
	arena, err := entity.BuildArena(w, spec, state)
	if err != nil {
		t.Fatalf("build arena: %v", err)
	}
	return &harness{world: w, state: state, keys: &fakeKeys{focused: true}, arena: arena}
}

// controlOnly runs input and movement without stepping physics.
func (h *harness) controlOnly() *ecs.Scheduler {
	return ecs.NewScheduler(NewInputSystem(h.keys), NewMovementSystem(h.state, nil))
}

func (h *harness) full() *ecs.Scheduler {
	return ecs.NewScheduler(
		NewInputSystem(h.keys),
		NewMovementSystem(h.state, nil),
		NewPhysicsSystem(),
		NewJumpResetSystem(h.state, nil),
	)
}

func (h *harness) body(t *testing.T, player int) *cp.Body {
	t.Helper()
	b, ok := ecs.Get(h.world, h.arena.Players[player], component.PhysicsBodyComponent)
	if !ok || b.Body == nil {
		t.Fatalf("player %d has no body", player)
	}
	return b.Body
}

// settle runs the full simulation with no keys until both players rest on
// the ground.
func (h *harness) settle(t *testing.T) {
	t.Helper()
	s := h.full()
	for i := 0; i < 600; i++ {
		s.Update(h.world)
		if i > 10 && math.Abs(h.body(t, 0).Velocity().Y) < 0.05 && math.Abs(h.body(t, 1).Velocity().Y) < 0.05 {
			return
		}
	}
	t.Fatalf("players never came to rest")
}

func TestJumpFromRest(t *testing.T) {
	h := newHarness(t)
	h.settle(t)
	if h.state.Jumps().Count(0) != 0 {
		t.Fatalf("landing should leave player 1 at 0 jumps")
	}

	h.keys.pressed = []control.Key{control.KeyW}
	h.controlOnly().Update(h.world)

	if vy := h.body(t, 0).Velocity().Y; vy != -8 {
		t.Fatalf("expected vy -8, got %v", vy)
	}
	if got := h.state.Jumps().Count(0); got != 1 {
		t.Fatalf("expected jump count 1, got %d", got)
	}
	if h.body(t, 1).Velocity().Y == -8 {
		t.Fatalf("player 2 should not jump")
	}
}

func TestKeyDownResolvesOnceWithVelocityFeedback(t *testing.T) {
	h := newHarness(t)
	h.settle(t)

	// The key-down resolve jumps; the before-step resolve sees vy=-8 and
	// must not spend a second jump.
	h.keys.pressed = []control.Key{control.KeyArrowUp}
	h.controlOnly().Update(h.world)
	if got := h.state.Jumps().Count(1); got != 1 {
		t.Fatalf("expected one jump from one tick, got %d", got)
	}
}

func TestReleaseStopsHorizontal(t *testing.T) {
	h := newHarness(t)
	h.settle(t)
	s := h.controlOnly()

	h.keys.pressed = []control.Key{control.KeyArrowLeft}
	s.Update(h.world)
	if vx := h.body(t, 1).Velocity().X; vx != -3 {
		t.Fatalf("expected vx -3, got %v", vx)
	}

	h.body(t, 1).SetVelocity(-3, 1.25)
	h.keys.released = []control.Key{control.KeyArrowLeft}
	s.Update(h.world)
	v := h.body(t, 1).Velocity()
	if v.X != 0 || v.Y != 1.25 {
		t.Fatalf("expected (0, 1.25) after release, got %v", v)
	}
}

func TestNoKeysLeavesHorizontal(t *testing.T) {
	h := newHarness(t)
	h.body(t, 0).SetVelocity(1.5, 0)
	h.controlOnly().Update(h.world)
	if vx := h.body(t, 0).Velocity().X; vx != 1.5 {
		t.Fatalf("resolver should not touch vx with no keys held, got %v", vx)
	}
}

func TestDoubleJumpThenLand(t *testing.T) {
	h := newHarness(t)
	h.settle(t)
	s := h.full()

	h.keys.pressed = []control.Key{control.KeyW}
	maxCount := 0
	for i := 0; i < 40; i++ {
		s.Update(h.world)
		if c := h.state.Jumps().Count(0); c > maxCount {
			maxCount = c
		}
	}
	if maxCount != control.MaxJumps {
		t.Fatalf("expected a double jump, max count %d", maxCount)
	}

	h.keys.released = []control.Key{control.KeyW}
	for i := 0; i < 400 && h.state.Jumps().Count(0) != 0; i++ {
		s.Update(h.world)
		if c := h.state.Jumps().Count(0); c < 0 || c > control.MaxJumps {
			t.Fatalf("count out of range: %d", c)
		}
	}
	if got := h.state.Jumps().Count(0); got != 0 {
		t.Fatalf("expected reset after landing, got %d", got)
	}
}

func TestGroundContactResetsAtCap(t *testing.T) {
	h := newHarness(t)
	h.state.Jumps().Increment(0)
	h.state.Jumps().Increment(0)

	s := h.full()
	for i := 0; i < 300 && h.state.Jumps().Count(0) != 0; i++ {
		s.Update(h.world)
	}
	if got := h.state.Jumps().Count(0); got != 0 {
		t.Fatalf("expected reset on ground contact, got %d", got)
	}
}

func TestCollisionWithAnyBodyResets(t *testing.T) {
	cases := []struct {
		name  string
		event func(h *harness) ecs.CollisionEvent
		want  [2]int
	}{
		{
			name: "player_vs_player",
			event: func(h *harness) ecs.CollisionEvent {
				return ecs.CollisionEvent{A: h.arena.Players[0], B: h.arena.Players[1]}
			},
			want: [2]int{0, 0},
		},
		{
			name: "platform_vs_player2",
			event: func(h *harness) ecs.CollisionEvent {
				return ecs.CollisionEvent{A: h.arena.Platforms[1], B: h.arena.Players[1]}
			},
			want: [2]int{2, 0},
		},
		{
			name: "unowned_shape",
			event: func(h *harness) ecs.CollisionEvent {
				return ecs.CollisionEvent{A: 0, B: h.arena.Platforms[0]}
			},
			want: [2]int{2, 2},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h := newHarness(t)
			for p := 0; p < 2; p++ {
				h.state.Jumps().Increment(p)
				h.state.Jumps().Increment(p)
			}
			h.world.Events().Push(ecs.Event{Type: ecs.EventCollision, Data: c.event(h)})
			NewJumpResetSystem(h.state, nil).Update(h.world)

			got := [2]int{h.state.Jumps().Count(0), h.state.Jumps().Count(1)}
			if got != c.want {
				t.Fatalf("expected counts %v, got %v", c.want, got)
			}
		})
	}
}

func TestFocusLossReleasesKeys(t *testing.T) {
	h := newHarness(t)
	s := h.controlOnly()

	h.keys.pressed = []control.Key{control.KeyD, control.KeyArrowRight}
	s.Update(h.world)
	if h.state.Held().Len() != 2 {
		t.Fatalf("expected 2 held keys, got %v", h.state.Held().Keys())
	}

	h.keys.focused = false
	s.Update(h.world)
	if h.state.Held().Len() != 0 {
		t.Fatalf("focus loss should release keys, still held %v", h.state.Held().Keys())
	}
	for p := 0; p < 2; p++ {
		if vx := h.body(t, p).Velocity().X; vx != 0 {
			t.Fatalf("player %d: expected vx 0, got %v", p, vx)
		}
	}
}

func TestUnknownKeysIgnored(t *testing.T) {
	h := newHarness(t)
	h.keys.pressed = []control.Key{"Space", "q"}
	h.controlOnly().Update(h.world)
	for p := 0; p < 2; p++ {
		if v := h.body(t, p).Velocity(); v.X != 0 || v.Y != 0 {
			t.Fatalf("player %d moved on unbound keys: %v", p, v)
		}
	}
}

func TestSnapshot(t *testing.T) {
	h := newHarness(t)
	h.state.Jumps().Increment(1)

	gs := Snapshot(h.world, h.state)
	if len(gs.Players) != 2 || len(gs.Platforms) != 3 {
		t.Fatalf("unexpected snapshot %+v", gs)
	}
	p1, ok := gs.Player(0)
	if !ok || p1.X != 100 || p1.Y != 200 || p1.IsJumping || p1.Direction != control.FacingRight {
		t.Fatalf("unexpected player 1 %+v", p1)
	}
	p2, _ := gs.Player(1)
	if !p2.IsJumping || p2.Jumps != 1 || p2.Direction != control.FacingLeft {
		t.Fatalf("unexpected player 2 %+v", p2)
	}
	plat := gs.Platforms[1]
	if plat.X != 200 || plat.Y != 390 || plat.Width != 200 || plat.Height != 20 {
		t.Fatalf("unexpected platform %+v", plat)
	}
}
