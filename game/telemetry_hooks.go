package game

import (
	"log/slog"

	"github.com/pthm-cable/alembic/engine"
	"github.com/pthm-cable/alembic/telemetry"
)

// hooks routes engine lifecycle notifications into the telemetry
// collector and output files.
type hooks struct {
	g *Game
}

var _ engine.Observer = (*hooks)(nil)

func (h *hooks) Spawned(elementID string, evicted int) {
	h.g.collector.RecordSpawn()
	for i := 0; i < evicted; i++ {
		h.g.collector.RecordEviction()
	}
	if h.g.opts.LogEvents {
		slog.Info("spawned", "element", elementID, "evicted", evicted)
	}
}

func (h *hooks) Combined(res engine.CombineResult) {
	now := h.g.now()
	h.g.collector.RecordCombination(now, res.FirstDiscovery)
	if res.FirstDiscovery {
		formula, _ := h.g.eng.Recipes().Formula(res.Result)
		rec := telemetry.DiscoveryRecord{TimeSec: now, Element: res.Result, Formula: formula}
		if err := h.g.output.WriteDiscovery(rec); err != nil {
			slog.Error("writing discovery", "element", res.Result, "error", err)
		}
		slog.Info("discovered", "element", res.Result, "formula", formula, "time", now)
	}
	if h.g.opts.LogEvents {
		slog.Info("combined", "a", res.A, "b", res.B, "result", res.Result)
	}
}

func (h *hooks) InvalidCombination(a, b string) {
	h.g.collector.RecordInvalid()
	if h.g.opts.LogEvents {
		slog.Info("invalid combination", "a", a, "b", b)
	}
}

func (h *hooks) Trashed(elementID string) {
	h.g.collector.RecordTrash()
	if h.g.opts.LogEvents {
		slog.Info("trashed", "element", elementID)
	}
}
