package engine

import (
	"fmt"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/alembic/components"
)

// Marker is the transient "invalid combination" indicator shown after a
// failed merge. It is render-only state; it never mutates pool or catalog.
type Marker struct {
	Pos       Vec2
	ExpiresAt float64
}

// CombineResult describes one resolved combination, reported to observers
// (telemetry, logging) after the frame's mutations are done.
type CombineResult struct {
	A, B, Result   string
	FirstDiscovery bool
	At             Vec2
}

// Observer receives engine lifecycle notifications. All methods are
// invoked synchronously on the single simulation timeline.
type Observer interface {
	Spawned(elementID string, evicted int)
	Combined(res CombineResult)
	InvalidCombination(a, b string)
	Trashed(elementID string)
}

// Controller is the pointer-driven interaction state machine. It holds at
// most one drag session at a time and resolves collision and combination
// events on release.
type Controller struct {
	catalog *Catalog
	recipes *RecipeBook
	pool    *Pool

	spawnAt        Vec2
	tokenSize      float32
	disposal       Rect
	markerLifetime float64

	dragging ecs.Entity
	hasDrag  bool
	marker   *Marker

	observer Observer
}

// ControllerConfig carries the construction-time constants of the state
// machine. All geometry is in world coordinates.
type ControllerConfig struct {
	SpawnAt        Vec2    // default position for palette spawns
	TokenSize      float32 // square token edge length
	Disposal       Rect    // trash bin bounds; release here removes the token
	MarkerLifetime float64 // seconds the invalid marker stays visible
}

// NewController wires the state machine to its collaborators. The recipe
// book is shared immutable configuration; catalog and pool are the only
// state the controller mutates.
func NewController(catalog *Catalog, recipes *RecipeBook, pool *Pool, cfg ControllerConfig) *Controller {
	return &Controller{
		catalog:        catalog,
		recipes:        recipes,
		pool:           pool,
		spawnAt:        cfg.SpawnAt,
		tokenSize:      cfg.TokenSize,
		disposal:       cfg.Disposal,
		markerLifetime: cfg.MarkerLifetime,
	}
}

// SetObserver registers the single lifecycle observer. A nil observer
// disables notifications.
func (c *Controller) SetObserver(obs Observer) {
	c.observer = obs
}

// bounds returns the AABB of a token whose top-left corner is at pos.
func (c *Controller) bounds(pos *components.Position) Rect {
	return Rect{X: pos.X, Y: pos.Y, W: c.tokenSize, H: c.tokenSize}
}

// Advance runs one frame of the state machine: per-frame upkeep, then the
// frame's events in arrival order. It is the only entry point that
// mutates engine state, so snapshots taken between Advance calls are
// always consistent.
func (c *Controller) Advance(now float64, events []Event) {
	c.pool.ClearHints()
	if c.marker != nil && now >= c.marker.ExpiresAt {
		c.marker = nil
	}

	for _, ev := range events {
		switch ev.Kind {
		case EventPress:
			c.press(ev.Pos)
		case EventMove:
			c.move(ev.Pos)
		case EventRelease:
			c.release(ev.Pos, now)
		case EventScroll:
			// Scroll drives UI panels only; the sandbox has no scroll state.
		}
	}
}

// press starts a drag on the first instance in canonical order whose
// bounds contain the pointer.
func (c *Controller) press(pos Vec2) {
	if c.hasDrag {
		return
	}
	c.pool.Each(func(entity ecs.Entity, p *components.Position, tok *components.Token) bool {
		if !c.bounds(p).Contains(pos) {
			return true
		}
		tok.Dragging = true
		c.dragging = entity
		c.hasDrag = true
		return false
	})
}

// move tracks the pointer with the dragged token, offset so the pointer
// sits at the token's visual center.
func (c *Controller) move(pos Vec2) {
	if !c.hasDrag {
		return
	}
	p := c.pool.Position(c.dragging)
	if p == nil {
		// Dragged token vanished (eviction); drop the session.
		c.hasDrag = false
		return
	}
	p.X = pos.X - c.tokenSize/2
	p.Y = pos.Y - c.tokenSize/2
}

// release ends the drag session: trash if dropped on the disposal target,
// otherwise run collision resolution. The session is cleared regardless of
// outcome, so the machine always returns to Idle.
func (c *Controller) release(pos Vec2, now float64) {
	if !c.hasDrag {
		return
	}
	dragged := c.dragging
	c.hasDrag = false

	p := c.pool.Position(dragged)
	if p == nil {
		return
	}

	if c.bounds(p).Intersects(c.disposal) {
		tok := c.pool.Token(dragged)
		var elementID string
		if tok != nil {
			// Copy before Remove: the component pointer is invalidated
			// once the entity leaves the world.
			elementID = tok.ElementID
		}
		c.pool.Remove(dragged)
		if c.observer != nil && tok != nil {
			c.observer.Trashed(elementID)
		}
		return
	}

	c.resolveCollisions(dragged, now)

	if tok := c.pool.Token(dragged); tok != nil {
		tok.Dragging = false
	}
}

// resolveCollisions scans live instances in canonical order for overlap
// with the dragged token. The first overlapping instance with a known
// recipe consumes both tokens, spawns the result at their midpoint, and
// stops the scan. The first overlapping instance without a recipe records
// one invalid marker; the scan continues in case a valid partner appears
// later in order.
func (c *Controller) resolveCollisions(dragged ecs.Entity, now float64) {
	draggedPos := c.pool.Position(dragged)
	draggedTok := c.pool.Token(dragged)
	if draggedPos == nil || draggedTok == nil {
		return
	}
	draggedBounds := c.bounds(draggedPos)
	markerSet := false

	var combined *CombineResult
	c.pool.Each(func(entity ecs.Entity, p *components.Position, tok *components.Token) bool {
		if entity == dragged || tok.Dragging {
			return true
		}
		if !draggedBounds.Intersects(c.bounds(p)) {
			return true
		}

		mid := Midpoint(Vec2{X: draggedPos.X, Y: draggedPos.Y}, Vec2{X: p.X, Y: p.Y})
		result, ok := c.recipes.Resolve(draggedTok.ElementID, tok.ElementID)
		if !ok {
			if !markerSet {
				c.marker = &Marker{Pos: mid, ExpiresAt: now + c.markerLifetime}
				tok.Hint = true
				markerSet = true
				if c.observer != nil {
					c.observer.InvalidCombination(draggedTok.ElementID, tok.ElementID)
				}
			}
			return true
		}

		combined = &CombineResult{
			A:      draggedTok.ElementID,
			B:      tok.ElementID,
			Result: result,
			At:     mid,
		}
		c.pool.Remove(dragged)
		c.pool.Remove(entity)
		return false
	})

	if combined == nil {
		return
	}

	first, err := c.catalog.MarkDiscovered(combined.Result)
	if err != nil {
		// Unreachable with validated recipes; keep the pool consistent anyway.
		return
	}
	combined.FirstDiscovery = first
	if _, _, err := c.pool.Insert(combined.Result, combined.At, now); err != nil {
		return
	}
	if c.observer != nil {
		c.observer.Combined(*combined)
	}
}

// Spawn creates a token of a discovered element at the default spawn
// position. The palette is soft-capped: a full pool rejects the spawn
// with ErrCapacity instead of evicting. Undiscovered elements are a
// silent no-op, matching a palette that never lists them.
func (c *Controller) Spawn(elementID string, now float64) error {
	elem, err := c.catalog.Lookup(elementID)
	if err != nil {
		return fmt.Errorf("spawn: %w", err)
	}
	if !elem.Discovered {
		return nil
	}
	if c.pool.Size() >= c.pool.Cap() {
		return fmt.Errorf("spawn %s: %w", elementID, ErrCapacity)
	}
	_, evicted, err := c.pool.Insert(elementID, c.spawnAt, now)
	if err != nil {
		return fmt.Errorf("spawn: %w", err)
	}
	if err := c.catalog.CountCreation(elementID); err != nil {
		return fmt.Errorf("spawn: %w", err)
	}
	if c.observer != nil {
		c.observer.Spawned(elementID, evicted)
	}
	return nil
}

// Dragging returns the current drag handle, if any.
func (c *Controller) Dragging() (ecs.Entity, bool) {
	return c.dragging, c.hasDrag
}

// ActiveMarker returns the live invalid-combination marker, if any.
func (c *Controller) ActiveMarker() *Marker {
	return c.marker
}
