package engine

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/alembic/components"
)

// PaletteEntry is one discovered element as shown in the sidebar.
type PaletteEntry struct {
	ID            string `json:"id"`
	Description   string `json:"description"`
	CreationCount int    `json:"creation_count"`
}

// CatalogEntry is one catalog row, discovered or not. Undiscovered rows
// render as "???" placeholders in the book.
type CatalogEntry struct {
	ID            string `json:"id"`
	Description   string `json:"description"`
	Discovered    bool   `json:"discovered"`
	CreationCount int    `json:"creation_count"`
}

// InstanceView is one live token.
type InstanceView struct {
	Handle    uint32  `json:"handle"`
	ElementID string  `json:"element_id"`
	X         float32 `json:"x"`
	Y         float32 `json:"y"`
	Dragging  bool    `json:"dragging"`
	Hint      bool    `json:"hint"`
}

// MarkerView is the active invalid-combination marker.
type MarkerView struct {
	X         float32 `json:"x"`
	Y         float32 `json:"y"`
	Remaining float64 `json:"remaining"`
}

// Snapshot is a read-only projection of engine state for the renderer and
// UI panels. It is a value copy: holding it past the next Advance is safe,
// it just goes stale.
type Snapshot struct {
	Now       float64        `json:"now"`
	Palette   []PaletteEntry `json:"palette"`
	Catalog   []CatalogEntry `json:"catalog"`
	Instances []InstanceView `json:"instances"`
	Marker    *MarkerView    `json:"marker,omitempty"`
}

// Snapshot projects the current engine state. Call it between mutation
// and render; never during Advance.
func (e *Engine) Snapshot(now float64) Snapshot {
	snap := Snapshot{
		Now:       now,
		Palette:   make([]PaletteEntry, 0, e.catalog.Len()),
		Catalog:   make([]CatalogEntry, 0, e.catalog.Len()),
		Instances: make([]InstanceView, 0, e.pool.Size()),
	}

	for _, elem := range e.catalog.All() {
		snap.Catalog = append(snap.Catalog, CatalogEntry{
			ID:            elem.ID,
			Description:   elem.Description,
			Discovered:    elem.Discovered,
			CreationCount: elem.CreationCount,
		})
		if elem.Discovered {
			snap.Palette = append(snap.Palette, PaletteEntry{
				ID:            elem.ID,
				Description:   elem.Description,
				CreationCount: elem.CreationCount,
			})
		}
	}

	e.pool.Each(func(entity ecs.Entity, pos *components.Position, tok *components.Token) bool {
		snap.Instances = append(snap.Instances, InstanceView{
			Handle:    entity.ID(),
			ElementID: tok.ElementID,
			X:         pos.X,
			Y:         pos.Y,
			Dragging:  tok.Dragging,
			Hint:      tok.Hint,
		})
		return true
	})

	if m := e.controller.ActiveMarker(); m != nil {
		remaining := m.ExpiresAt - now
		if remaining > 0 {
			snap.Marker = &MarkerView{X: m.Pos.X, Y: m.Pos.Y, Remaining: remaining}
		}
	}

	return snap
}
