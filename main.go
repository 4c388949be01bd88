package main

import (
	"flag"
	"log/slog"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/alembic/config"
	"github.com/pthm-cable/alembic/game"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Replay a script without graphics")
	script := flag.String("script", "", "Input script CSV for headless replay")
	logEvents := flag.Bool("log-events", false, "Output sandbox events via slog")
	statsWindow := flag.Float64("stats-window", 0, "Stats window size in seconds (0 = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	assetDir := flag.String("assets", "assets", "Directory holding element textures")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()
	if *statsWindow > 0 {
		cfg.Telemetry.StatsWindow = *statsWindow
	}

	opts := game.Options{
		Headless:  *headless,
		LogEvents: *logEvents,
		OutputDir: *outputDir,
		AssetDir:  *assetDir,
	}

	if *headless {
		if *script == "" {
			slog.Error("headless mode requires -script")
			os.Exit(1)
		}

		g, err := game.NewGame(opts)
		if err != nil {
			slog.Error("failed to build game", "error", err)
			os.Exit(1)
		}
		defer g.Unload()

		slog.Info("starting headless replay", "script", *script, "stats_window", cfg.Telemetry.StatsWindow)
		if err := g.RunScript(*script); err != nil {
			slog.Error("replay failed", "error", err)
			os.Exit(1)
		}
		return
	}

	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), cfg.Screen.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g, err := game.NewGame(opts)
	if err != nil {
		slog.Error("failed to build game", "error", err)
		os.Exit(1)
	}
	defer g.Unload()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}
}
