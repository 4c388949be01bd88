package game

import (
	"fmt"
	"log/slog"

	"github.com/pthm-cable/alembic/engine"
	"github.com/pthm-cable/alembic/telemetry"
)

// RunScript replays a recorded input script headlessly and flushes
// telemetry as the synthetic clock advances. The session summary is
// logged once the script ends.
func (g *Game) RunScript(path string) error {
	script, err := engine.LoadScript(path)
	if err != nil {
		return err
	}

	frames, err := g.eng.Replay(script, headlessDT, func(frame int, now float64) {
		g.frame = frame + 1
		g.flushTelemetry(now)
	})
	if err != nil {
		return fmt.Errorf("replaying %s: %w", path, err)
	}

	end := float64(frames) * headlessDT
	stats := g.collector.EndWindow(end, g.eng.Pool().Size(), len(g.eng.Catalog().DiscoveredIDs()))
	stats.Log()
	if err := g.output.WriteWindow(stats); err != nil {
		slog.Error("writing session stats", "error", err)
	}

	telemetry.Summarize(g.collector.DiscoveryTimes()).Log()
	slog.Info("replay finished",
		"script", path,
		"frames", frames,
		"duration", end,
		"discovered", len(g.eng.Catalog().DiscoveredIDs()),
		"pool", g.eng.Pool().Size())
	return nil
}
