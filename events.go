package curve

import "slices"

// EventKind identifies what changed in an Editor.
type EventKind int

// Editor notifications.
const (
	// EventPointAdded fires after Add with the new point and its index.
	EventPointAdded EventKind = iota

	// EventPointMoved fires after every successful Move with the point's
	// resulting position, including moves absorbed by clamping or locks.
	EventPointMoved

	// EventPointRemoved fires after Remove with the removed point and the
	// index it used to occupy.
	EventPointRemoved

	// EventVariantChanged fires when SetVariant switches to a different variant.
	EventVariantChanged

	// EventCleared fires after Clear removed at least one point.
	EventCleared
)

var eventKindNames = [...]string{
	EventPointAdded:     "pointAdded",
	EventPointMoved:     "pointMoved",
	EventPointRemoved:   "pointRemoved",
	EventVariantChanged: "variantChanged",
	EventCleared:        "cleared",
}

// String returns the adapter-facing event name.
func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventKindNames) {
		return "unknown"
	}
	return eventKindNames[k]
}

// Event describes a single change. Index is -1 for editor-wide events.
type Event struct {
	Kind  EventKind
	Index int
	Point Point
}

// Listener receives editor notifications on the mutating goroutine.
type Listener func(Event)

type subscription struct {
	id uint64
	fn Listener
}

// observers is an ordered listener list. Listeners run in subscription order.
type observers struct {
	subs []subscription
	next uint64
}

// add registers fn and returns a function that unregisters it.
// Calling the returned function more than once is a no-op.
func (o *observers) add(fn Listener) (cancel func()) {
	o.next++
	id := o.next
	o.subs = append(o.subs, subscription{id: id, fn: fn})

	return func() {
		o.subs = slices.DeleteFunc(o.subs, func(s subscription) bool {
			return s.id == id
		})
	}
}

// notify delivers ev to a snapshot of the current listeners, so a listener
// that cancels itself or another one does not disturb this round.
func (o *observers) notify(ev Event) {
	if len(o.subs) == 0 {
		return
	}
	for _, s := range slices.Clone(o.subs) {
		s.fn(ev)
	}
}

func (o *observers) len() int {
	return len(o.subs)
}
