package scene

// Event represents a basic user interaction delivered to a node.
//
// Events are high-level and node-targeted: an input-dispatch component
// routes them to specific nodes (typically via hit testing) rather than
// broadcasting them as global signals.
type Event uint8

const (
	// EventClick means the user clicked on the node.
	EventClick Event = iota

	// EventPointerEnter means the pointer entered the node's area.
	EventPointerEnter

	// EventPointerLeave means the pointer exited the node's area.
	EventPointerLeave
)

// String returns the name of the event.
func (e Event) String() string {
	switch e {
	case EventClick:
		return "Click"
	case EventPointerEnter:
		return "PointerEnter"
	case EventPointerLeave:
		return "PointerLeave"
	default:
		return "Unknown"
	}
}

// Handler responds to an input event dispatched to a node.
//
// Thread-safety contract: a Handler may be invoked from any goroutine
// (input dispatch usually runs outside the scene-owning goroutine). A
// Handler must therefore never touch the Scene or its nodes directly.
// To mutate the scene in response to an event, post an Intent to an
// IntentQueue that the scene-owning goroutine drains between frames.
type Handler func(Event)

// Intent is a deferred scene mutation. Intents are created on arbitrary
// goroutines (typically inside event handlers) and executed later on the
// scene-owning goroutine, which is the only place Scene mutation is legal.
type Intent func(*Scene)

// IntentQueue carries Intents from event handlers to the scene-owning
// goroutine. Posting is safe from any goroutine; Apply must only be called
// by the scene owner.
type IntentQueue struct {
	ch chan Intent
}

// DefaultIntentCapacity is the queue capacity used when none is given.
const DefaultIntentCapacity = 256

// NewIntentQueue creates a queue with the given capacity.
// If capacity <= 0, DefaultIntentCapacity is used.
func NewIntentQueue(capacity int) *IntentQueue {
	if capacity <= 0 {
		capacity = DefaultIntentCapacity
	}
	return &IntentQueue{ch: make(chan Intent, capacity)}
}

// Post enqueues an intent without blocking. It returns false if the queue
// is full (the intent is dropped) or the intent is nil. Handlers should
// treat a false return as back-pressure, not an error.
func (q *IntentQueue) Post(in Intent) bool {
	if in == nil {
		return false
	}
	select {
	case q.ch <- in:
		return true
	default:
		return false
	}
}

// Apply drains all currently queued intents, executing each against the
// scene. It returns the number of intents applied. Apply never blocks
// waiting for new intents.
//
// Apply must be called from the scene-owning goroutine only.
func (q *IntentQueue) Apply(s *Scene) int {
	applied := 0
	for {
		select {
		case in := <-q.ch:
			in(s)
			applied++
		default:
			return applied
		}
	}
}

// Len returns the number of intents currently queued.
func (q *IntentQueue) Len() int {
	return len(q.ch)
}
