package engine

import (
	"fmt"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/alembic/components"
)

// Pool owns every live token instance. Storage is an ark ECS world; the
// entity is the instance handle. Handles are generational, so removing an
// already-removed instance is a no-op rather than a use-after-free.
//
// The order slice is the canonical iteration order (insertion order).
// Hit-testing and collision resolution take the first match in this order
// as a deliberate deterministic tie-break, not a nearest-neighbor choice.
type Pool struct {
	world  *ecs.World
	mapper *ecs.Map2[components.Position, components.Token]
	posMap *ecs.Map1[components.Position]
	tokMap *ecs.Map1[components.Token]

	order   []ecs.Entity
	maxLive int
	catalog *Catalog
}

// NewPool creates an empty pool bounded to maxLive instances.
func NewPool(catalog *Catalog, maxLive int) *Pool {
	world := ecs.NewWorld()
	return &Pool{
		world:   world,
		mapper:  ecs.NewMap2[components.Position, components.Token](world),
		posMap:  ecs.NewMap1[components.Position](world),
		tokMap:  ecs.NewMap1[components.Token](world),
		maxLive: maxLive,
		catalog: catalog,
	}
}

// Insert creates a token for the given element at pos, stamped with the
// current clock value. If the pool is full, the oldest instance is evicted
// first; the new instance is never the eviction victim. Returns the number
// of evictions performed alongside the handle.
func (p *Pool) Insert(elementID string, pos Vec2, now float64) (ecs.Entity, int, error) {
	if _, err := p.catalog.Lookup(elementID); err != nil {
		return ecs.Entity{}, 0, fmt.Errorf("pool insert: %w", err)
	}

	evicted := 0
	for len(p.order) >= p.maxLive {
		oldest, ok := p.Oldest()
		if !ok {
			break
		}
		p.Remove(oldest)
		evicted++
	}

	position := &components.Position{X: pos.X, Y: pos.Y}
	token := &components.Token{ElementID: elementID, CreatedAt: now}
	entity := p.mapper.NewEntity(position, token)
	p.order = append(p.order, entity)
	return entity, evicted, nil
}

// Remove destroys a single instance. Removing a handle that is already
// gone is a no-op, so the trash path and combination consumption may race
// within one frame without double-free.
func (p *Pool) Remove(entity ecs.Entity) {
	if !p.world.Alive(entity) {
		return
	}
	p.world.RemoveEntity(entity)
	for i, e := range p.order {
		if e == entity {
			p.order = append(p.order[:i], p.order[i+1:]...)
			break
		}
	}
}

// Each calls fn for every live instance in canonical order. Returning
// false stops the walk. The sequence is stable for the duration of one
// frame's processing; mutation happens only between walks.
func (p *Pool) Each(fn func(entity ecs.Entity, pos *components.Position, tok *components.Token) bool) {
	for _, entity := range p.order {
		if !p.world.Alive(entity) {
			continue
		}
		if !fn(entity, p.posMap.Get(entity), p.tokMap.Get(entity)) {
			return
		}
	}
}

// Oldest returns the handle with the minimal creation timestamp, or false
// if the pool is empty.
func (p *Pool) Oldest() (ecs.Entity, bool) {
	var oldest ecs.Entity
	found := false
	best := 0.0
	for _, entity := range p.order {
		if !p.world.Alive(entity) {
			continue
		}
		tok := p.tokMap.Get(entity)
		if !found || tok.CreatedAt < best {
			oldest = entity
			best = tok.CreatedAt
			found = true
		}
	}
	return oldest, found
}

// Alive reports whether the handle still refers to a live instance.
func (p *Pool) Alive(entity ecs.Entity) bool {
	return p.world.Alive(entity)
}

// Position returns the position component for a live handle, or nil.
func (p *Pool) Position(entity ecs.Entity) *components.Position {
	if !p.world.Alive(entity) {
		return nil
	}
	return p.posMap.Get(entity)
}

// Token returns the token component for a live handle, or nil.
func (p *Pool) Token(entity ecs.Entity) *components.Token {
	if !p.world.Alive(entity) {
		return nil
	}
	return p.tokMap.Get(entity)
}

// Size returns the number of live instances.
func (p *Pool) Size() int {
	return len(p.order)
}

// Cap returns the maximum number of live instances.
func (p *Pool) Cap() int {
	return p.maxLive
}

// ClearHints drops the transient render hints left by failed combinations.
// Called once per frame before event processing, matching the original
// per-frame color reset.
func (p *Pool) ClearHints() {
	for _, entity := range p.order {
		if !p.world.Alive(entity) {
			continue
		}
		p.tokMap.Get(entity).Hint = false
	}
}
