package system

import (
	"github.com/milk9111/duojump/control"
	"github.com/milk9111/duojump/ecs"
)

// Event types queued by InputSystem. Key events carry a control.Key.
const (
	EventKeyDown   = "key_down"
	EventKeyUp     = "key_up"
	EventFocusLost = "focus_lost"
)

// KeySource reports the host's key transitions for the current tick.
type KeySource interface {
	AppendJustPressedKeys(keys []control.Key) []control.Key
	AppendJustReleasedKeys(keys []control.Key) []control.Key
	IsFocused() bool
}

// InputSystem turns host key transitions into queued key events. Releases
// are queued before presses.
type InputSystem struct {
	source   KeySource
	focused  bool
	pressed  []control.Key
	released []control.Key
}

func NewInputSystem(source KeySource) *InputSystem {
	return &InputSystem{source: source, focused: true}
}

func (i *InputSystem) Update(w *ecs.World) {
	if i == nil || i.source == nil || w == nil {
		return
	}

	focused := i.source.IsFocused()
	if i.focused && !focused {
		w.Events().Push(ecs.Event{Type: EventFocusLost})
	}
	i.focused = focused

	i.released = i.source.AppendJustReleasedKeys(i.released[:0])
	for _, k := range i.released {
		w.Events().Push(ecs.Event{Type: EventKeyUp, Data: k})
	}

	i.pressed = i.source.AppendJustPressedKeys(i.pressed[:0])
	for _, k := range i.pressed {
		w.Events().Push(ecs.Event{Type: EventKeyDown, Data: k})
	}
}
