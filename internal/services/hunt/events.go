package hunt

// EventKind labels a progress change.
type EventKind string

const (
	// EventFound: one item transitioned to (or was re-captured as) found.
	EventFound EventKind = "found"
	// EventCleared: one item was reset to unfound.
	EventCleared EventKind = "cleared"
	// EventReset: the whole catalog was reset. Emitted once per ResetAll.
	EventReset EventKind = "reset"
)

// Event is delivered to subscribers after a mutation has been applied and
// persisted. ItemID is empty for EventReset.
type Event struct {
	Kind   EventKind
	ItemID string
}
