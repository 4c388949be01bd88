// Package components defines ECS components for the sandbox simulation.
package components

// Position represents a token's world position (top-left corner).
type Position struct {
	X, Y float32
}

// Token holds the per-instance state of a live element token.
// The element itself lives in the catalog; tokens reference it by id.
type Token struct {
	ElementID string
	CreatedAt float64 // frame clock seconds at creation, drives eviction order
	Dragging  bool
	Hint      bool // transient render hint after a failed combination, cleared each frame
}
