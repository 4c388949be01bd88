// Package engine implements the combine-elements simulation core: the
// element catalog, the recipe book, the capacity-bounded token pool, and
// the pointer-driven interaction state machine. The engine is headless;
// one Advance call per rendered frame drives the whole timeline.
package engine

import "fmt"

// Config carries everything the engine needs at construction. It is
// plain data assembled by the caller (usually from the config package);
// the engine holds no ambient state.
type Config struct {
	Elements []ElementDef
	Recipes  []RecipeDef

	MaxObjects     int
	TokenSize      float32
	SpawnAt        Vec2
	Disposal       Rect
	MarkerLifetime float64
}

// Engine ties the catalog, recipe book, pool, and controller into one
// simulation. All mutation flows through Advance and Spawn on a single
// logical timeline; Snapshot is safe between frames.
type Engine struct {
	catalog    *Catalog
	recipes    *RecipeBook
	pool       *Pool
	controller *Controller
}

// New validates the configuration and builds the engine. Malformed data
// (duplicate ids, dangling recipe references, conflicting pairs) rejects
// startup here rather than failing mid-session.
func New(cfg Config) (*Engine, error) {
	if cfg.MaxObjects <= 0 {
		return nil, fmt.Errorf("engine: max objects must be positive, got %d", cfg.MaxObjects)
	}
	if cfg.TokenSize <= 0 {
		return nil, fmt.Errorf("engine: token size must be positive, got %g", cfg.TokenSize)
	}

	catalog, err := NewCatalog(cfg.Elements)
	if err != nil {
		return nil, err
	}
	recipes, err := NewRecipeBook(cfg.Recipes, catalog)
	if err != nil {
		return nil, err
	}
	pool := NewPool(catalog, cfg.MaxObjects)
	controller := NewController(catalog, recipes, pool, ControllerConfig{
		SpawnAt:        cfg.SpawnAt,
		TokenSize:      cfg.TokenSize,
		Disposal:       cfg.Disposal,
		MarkerLifetime: cfg.MarkerLifetime,
	})

	return &Engine{
		catalog:    catalog,
		recipes:    recipes,
		pool:       pool,
		controller: controller,
	}, nil
}

// Advance processes one frame's pointer events at the given clock value.
func (e *Engine) Advance(now float64, events []Event) {
	e.controller.Advance(now, events)
}

// Spawn creates a palette token of a discovered element.
func (e *Engine) Spawn(elementID string, now float64) error {
	return e.controller.Spawn(elementID, now)
}

// SetObserver registers a lifecycle observer on the controller.
func (e *Engine) SetObserver(obs Observer) {
	e.controller.SetObserver(obs)
}

// Catalog returns the element catalog.
func (e *Engine) Catalog() *Catalog { return e.catalog }

// Recipes returns the immutable recipe book.
func (e *Engine) Recipes() *RecipeBook { return e.recipes }

// Pool returns the token pool.
func (e *Engine) Pool() *Pool { return e.pool }

// Controller returns the interaction state machine.
func (e *Engine) Controller() *Controller { return e.controller }
