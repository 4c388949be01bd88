// Package game wires the engine, telemetry, and presentation layers into
// the running sandbox. All engine mutation happens in Update; Draw only
// consumes the frame's snapshot.
package game

import (
	"fmt"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/alembic/config"
	"github.com/pthm-cable/alembic/engine"
	"github.com/pthm-cable/alembic/renderer"
	"github.com/pthm-cable/alembic/telemetry"
	"github.com/pthm-cable/alembic/ui"
)

// Headless frame length in seconds; script frames advance a synthetic
// clock instead of raylib's.
const headlessDT = 1.0 / 60.0

// Options holds runtime options from the CLI.
type Options struct {
	Headless  bool
	LogEvents bool
	OutputDir string
	AssetDir  string
}

// Game holds the complete sandbox state.
type Game struct {
	cfg  *config.Config
	opts Options

	eng       *engine.Engine
	collector *telemetry.Collector
	output    *telemetry.OutputManager

	textures *renderer.TextureStore
	scene    *renderer.Scene
	sidebar  *ui.Sidebar
	book     *ui.Book

	frame    int
	headless bool
}

// NewGame builds the sandbox from the loaded configuration. In windowed
// mode the raylib window must already be open (textures need a GL
// context).
func NewGame(opts Options) (*Game, error) {
	cfg := config.Cfg()

	eng, err := engine.New(engineConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("building engine: %w", err)
	}

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("opening output: %w", err)
	}
	if err := output.WriteConfig(cfg); err != nil {
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}

	g := &Game{
		cfg:       cfg,
		opts:      opts,
		eng:       eng,
		collector: telemetry.NewCollector(cfg.Telemetry.StatsWindow),
		output:    output,
		headless:  opts.Headless,
	}
	eng.SetObserver(&hooks{g: g})

	if !opts.Headless {
		ids := make([]string, 0, eng.Catalog().Len())
		for _, elem := range eng.Catalog().All() {
			ids = append(ids, elem.ID)
		}
		g.textures = renderer.LoadTextures(ids, opts.AssetDir)
		g.scene = renderer.NewScene(g.textures, float32(cfg.Sandbox.TokenSize), disposalRect(cfg))
		g.sidebar = ui.NewSidebar(int32(cfg.Sandbox.SidebarWidth), float32(cfg.Sandbox.ScrollSpeed))
		g.book = ui.NewBook(float32(cfg.Book.ScrollSpeed), float32(cfg.Book.RowHeight), eng.Recipes().Formula)
	}

	return g, nil
}

// engineConfig maps the loaded configuration onto the engine's
// construction data.
func engineConfig(cfg *config.Config) engine.Config {
	elements := make([]engine.ElementDef, len(cfg.Elements))
	for i, e := range cfg.Elements {
		elements[i] = engine.ElementDef{ID: e.ID, Description: e.Description, Discovered: e.Discovered}
	}
	recipes := make([]engine.RecipeDef, len(cfg.Recipes))
	for i, r := range cfg.Recipes {
		recipes[i] = engine.RecipeDef{A: r.A, B: r.B, Result: r.Result}
	}
	return engine.Config{
		Elements:       elements,
		Recipes:        recipes,
		MaxObjects:     cfg.Sandbox.MaxObjects,
		TokenSize:      float32(cfg.Sandbox.TokenSize),
		SpawnAt:        engine.Vec2{X: float32(cfg.Sandbox.SpawnX), Y: float32(cfg.Sandbox.SpawnY)},
		Disposal:       disposalRect(cfg),
		MarkerLifetime: cfg.Sandbox.MarkerLifetime,
	}
}

// disposalRect places the trash bin in the bottom-left corner.
func disposalRect(cfg *config.Config) engine.Rect {
	size := float32(cfg.Sandbox.TrashSize)
	margin := float32(cfg.Sandbox.TrashMargin)
	return engine.Rect{
		X: margin,
		Y: float32(cfg.Screen.Height) - size - margin,
		W: size,
		H: size,
	}
}

// now returns the frame clock value in seconds.
func (g *Game) now() float64 {
	if g.headless {
		return float64(g.frame) * headlessDT
	}
	return rl.GetTime()
}

// Update advances the simulation by one frame.
func (g *Game) Update() {
	now := g.now()
	events := g.collectEvents(now)
	g.eng.Advance(now, events)
	g.frame++
	g.flushTelemetry(now)
}

// Draw renders the frame from a fresh snapshot.
func (g *Game) Draw() {
	snap := g.eng.Snapshot(g.now())
	w := int32(g.cfg.Screen.Width)
	h := int32(g.cfg.Screen.Height)

	rl.BeginDrawing()
	rl.ClearBackground(rl.RayWhite)

	g.scene.Draw(snap, w, h, int32(g.cfg.Sandbox.SidebarWidth))
	g.sidebar.Draw(snap, g.textures, w, h)
	g.book.Draw(snap, g.textures)

	rl.EndDrawing()
}

// flushTelemetry closes the stats window when due.
func (g *Game) flushTelemetry(now float64) {
	if !g.collector.WindowDue(now) {
		return
	}
	stats := g.collector.EndWindow(now, g.eng.Pool().Size(), len(g.eng.Catalog().DiscoveredIDs()))
	if g.opts.LogEvents {
		stats.Log()
	}
	if err := g.output.WriteWindow(stats); err != nil {
		slog.Error("writing session stats", "error", err)
	}
}

// Frame returns the number of frames advanced.
func (g *Game) Frame() int {
	return g.frame
}

// Engine exposes the simulation core, used by headless runs and tests.
func (g *Game) Engine() *engine.Engine {
	return g.eng
}

// Unload releases resources and flushes outputs.
func (g *Game) Unload() {
	summary := telemetry.Summarize(g.collector.DiscoveryTimes())
	if g.opts.LogEvents {
		summary.Log()
	}
	if g.textures != nil {
		g.textures.Unload()
	}
	if err := g.output.Close(); err != nil {
		slog.Error("closing output", "error", err)
	}
}
