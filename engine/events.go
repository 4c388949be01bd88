package engine

// EventKind identifies a pointer event.
type EventKind uint8

const (
	EventPress EventKind = iota
	EventMove
	EventRelease
	EventScroll
)

// String returns the event kind name used by scripts and logs.
func (k EventKind) String() string {
	switch k {
	case EventPress:
		return "press"
	case EventMove:
		return "move"
	case EventRelease:
		return "release"
	case EventScroll:
		return "scroll"
	}
	return "unknown"
}

// Event is a single discrete pointer event delivered to the engine.
// Events are processed in arrival order, at most one state transition
// per press or release. Scroll events carry Delta and are consumed by
// the UI layer; the controller ignores them.
type Event struct {
	Kind  EventKind
	Pos   Vec2
	Delta float32
}
