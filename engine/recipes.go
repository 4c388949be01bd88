package engine

import "fmt"

// RecipeDef describes one combination at construction time. A and B are
// unordered; the book resolves both directions to the same result.
type RecipeDef struct {
	A, B, Result string
}

// pairKey is the normalized unordered key for a recipe pair.
type pairKey struct {
	lo, hi string
}

func makePair(a, b string) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{lo: a, hi: b}
}

// RecipeBook is the immutable combination registry. It is built once from
// configuration and passed by reference into the controller; lookups are
// order-independent by construction.
//
// Display formulas are derived from the same recipe data, so the registry
// and its presentation cannot drift apart.
type RecipeBook struct {
	recipes  []RecipeDef
	byPair   map[pairKey]string
	formulas map[string]string
}

// NewRecipeBook builds the registry and validates it against the catalog:
// every input and result id must exist, and no two recipes may claim the
// same unordered pair with different results. Exact duplicates are merged.
func NewRecipeBook(defs []RecipeDef, catalog *Catalog) (*RecipeBook, error) {
	b := &RecipeBook{
		byPair:   make(map[pairKey]string, len(defs)),
		formulas: make(map[string]string, len(defs)),
	}
	for _, def := range defs {
		for _, id := range []string{def.A, def.B, def.Result} {
			if !catalog.Has(id) {
				return nil, fmt.Errorf("recipes: %s + %s -> %s references unknown element %q",
					def.A, def.B, def.Result, id)
			}
		}
		key := makePair(def.A, def.B)
		if prev, exists := b.byPair[key]; exists {
			if prev != def.Result {
				return nil, fmt.Errorf("recipes: conflicting results for %s + %s: %q vs %q",
					def.A, def.B, prev, def.Result)
			}
			continue
		}
		b.byPair[key] = def.Result
		b.recipes = append(b.recipes, def)
		if _, has := b.formulas[def.Result]; !has {
			b.formulas[def.Result] = def.A + " + " + def.B
		}
	}
	return b, nil
}

// Resolve returns the result of combining a and b, in either order.
func (b *RecipeBook) Resolve(a, other string) (string, bool) {
	result, ok := b.byPair[makePair(a, other)]
	return result, ok
}

// IsValid reports whether a and b form a known combination.
func (b *RecipeBook) IsValid(a, other string) bool {
	_, ok := b.byPair[makePair(a, other)]
	return ok
}

// Formula returns the display formula for a combination result, like
// "Fire + Water". Basic elements have no formula.
func (b *RecipeBook) Formula(result string) (string, bool) {
	f, ok := b.formulas[result]
	return f, ok
}

// Recipes returns the deduplicated recipe list in definition order.
func (b *RecipeBook) Recipes() []RecipeDef {
	return b.recipes
}

// Len returns the number of distinct unordered pairs.
func (b *RecipeBook) Len() int {
	return len(b.byPair)
}
