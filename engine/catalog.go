package engine

import "fmt"

// Element is a discoverable token type. Elements are owned exclusively by
// the Catalog; tokens and recipes reference them by id.
type Element struct {
	ID            string
	Description   string
	Discovered    bool
	CreationCount int
}

// ElementDef describes one element at catalog construction time.
type ElementDef struct {
	ID          string
	Description string
	Discovered  bool
}

// Catalog is the ordered element registry. Order is display order, fixed at
// construction. Discovery is monotonic: once set it is never cleared.
type Catalog struct {
	order []*Element
	index map[string]*Element
}

// NewCatalog builds a catalog from element definitions, preserving their
// order. Duplicate ids reject construction.
func NewCatalog(defs []ElementDef) (*Catalog, error) {
	c := &Catalog{
		order: make([]*Element, 0, len(defs)),
		index: make(map[string]*Element, len(defs)),
	}
	for _, def := range defs {
		if def.ID == "" {
			return nil, fmt.Errorf("catalog: element with empty id")
		}
		if _, dup := c.index[def.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate element id %q", def.ID)
		}
		elem := &Element{
			ID:          def.ID,
			Description: def.Description,
			Discovered:  def.Discovered,
		}
		c.order = append(c.order, elem)
		c.index[def.ID] = elem
	}
	return c, nil
}

// Lookup returns the element with the given id.
func (c *Catalog) Lookup(id string) (*Element, error) {
	elem, ok := c.index[id]
	if !ok {
		return nil, fmt.Errorf("catalog: %q: %w", id, ErrNotFound)
	}
	return elem, nil
}

// Has reports whether the catalog holds the given id.
func (c *Catalog) Has(id string) bool {
	_, ok := c.index[id]
	return ok
}

// MarkDiscovered flags the element as discovered and counts one creation.
// Setting the flag is idempotent. The returned bool reports whether this
// call was the first discovery.
func (c *Catalog) MarkDiscovered(id string) (first bool, err error) {
	elem, ok := c.index[id]
	if !ok {
		return false, fmt.Errorf("catalog: %q: %w", id, ErrNotFound)
	}
	first = !elem.Discovered
	elem.Discovered = true
	elem.CreationCount++
	return first, nil
}

// CountCreation increments the creation counter without touching the
// discovery flag. Used by palette spawns of already-discovered elements.
func (c *Catalog) CountCreation(id string) error {
	elem, ok := c.index[id]
	if !ok {
		return fmt.Errorf("catalog: %q: %w", id, ErrNotFound)
	}
	elem.CreationCount++
	return nil
}

// DiscoveredIDs returns the ids of discovered elements in catalog order.
// This drives both the palette and the book listing.
func (c *Catalog) DiscoveredIDs() []string {
	ids := make([]string, 0, len(c.order))
	for _, elem := range c.order {
		if elem.Discovered {
			ids = append(ids, elem.ID)
		}
	}
	return ids
}

// All returns every element in catalog order, discovered or not.
func (c *Catalog) All() []*Element {
	return c.order
}

// Len returns the number of elements in the catalog.
func (c *Catalog) Len() int {
	return len(c.order)
}
