package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

// EventCollision carries a CollisionEvent.
const EventCollision = "collision"

// CollisionEvent is emitted when two shapes start touching. Entities are
// zero for shapes not owned by an entity.
type CollisionEvent struct {
	A Entity
	B Entity
}

// Involves reports whether e is one side of the contact.
func (c CollisionEvent) Involves(e Entity) bool {
	return e.Valid() && (c.A == e || c.B == e)
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// DrainTypes removes and returns the events whose type is listed, in queue
// order. Other events stay queued.
func (q *EventQueue) DrainTypes(types ...string) []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	var out []Event
	kept := q.items[:0]
	for _, evt := range q.items {
		if matchesType(evt.Type, types) {
			out = append(out, evt)
			continue
		}
		kept = append(kept, evt)
	}
	q.items = kept
	return out
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}

func matchesType(typ string, types []string) bool {
	for _, t := range types {
		if t == typ {
			return true
		}
	}
	return false
}
