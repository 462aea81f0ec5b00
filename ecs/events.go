package ecs

// EventType identifies what an Event carries.
type EventType string

const (
	// EventDialogueOpen carries the NPC Entity whose dialogue should open.
	EventDialogueOpen EventType = "dialogue_open"
	// EventCoinCollected carries the new score as an int.
	EventCoinCollected EventType = "coin_collected"
	// EventHeroDied carries the hero Entity.
	EventHeroDied EventType = "hero_died"
)

// Event is a generic ECS event payload.
type Event struct {
	Type EventType
	Data any
}

// EventQueue is a simple FIFO queue. Systems push; the outer game loop drains.
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

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
