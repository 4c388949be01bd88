// Package telemetry provides session statistics for the sandbox: windowed
// activity counters, discovery timing, and CSV output.
package telemetry

import "log/slog"

// Collector accumulates engine events within time windows and produces
// WindowStats. All recording happens on the simulation timeline.
type Collector struct {
	windowSec   float64
	windowStart float64

	// Event counters for the current window
	spawns       int
	combinations int
	invalid      int
	trashes      int
	evictions    int
	discoveries  int

	// Session-wide discovery timeline, in clock seconds
	discoveryTimes []float64
}

// NewCollector creates a collector with the given window length in
// simulation seconds.
func NewCollector(windowSec float64) *Collector {
	if windowSec <= 0 {
		windowSec = 30
	}
	return &Collector{windowSec: windowSec}
}

// RecordSpawn counts a palette spawn.
func (c *Collector) RecordSpawn() {
	c.spawns++
}

// RecordCombination counts a successful combination; firstDiscovery marks
// a combination that revealed a new element.
func (c *Collector) RecordCombination(now float64, firstDiscovery bool) {
	c.combinations++
	if firstDiscovery {
		c.discoveries++
		c.discoveryTimes = append(c.discoveryTimes, now)
	}
}

// RecordInvalid counts a failed combination attempt.
func (c *Collector) RecordInvalid() {
	c.invalid++
}

// RecordTrash counts a token dropped on the disposal target.
func (c *Collector) RecordTrash() {
	c.trashes++
}

// RecordEviction counts a capacity eviction.
func (c *Collector) RecordEviction() {
	c.evictions++
}

// WindowDue reports whether the current window has elapsed.
func (c *Collector) WindowDue(now float64) bool {
	return now-c.windowStart >= c.windowSec
}

// EndWindow closes the current window and returns its stats. Pool size
// and discovered count are sampled by the caller at window end.
func (c *Collector) EndWindow(now float64, poolSize, discoveredTotal int) WindowStats {
	stats := WindowStats{
		WindowEnd:       now,
		Spawns:          c.spawns,
		Combinations:    c.combinations,
		Invalid:         c.invalid,
		Trashes:         c.trashes,
		Evictions:       c.evictions,
		Discoveries:     c.discoveries,
		PoolSize:        poolSize,
		DiscoveredTotal: discoveredTotal,
	}

	c.windowStart = now
	c.spawns = 0
	c.combinations = 0
	c.invalid = 0
	c.trashes = 0
	c.evictions = 0
	c.discoveries = 0

	return stats
}

// DiscoveryTimes returns the session-wide discovery timestamps in order.
func (c *Collector) DiscoveryTimes() []float64 {
	return c.discoveryTimes
}

// WindowStats holds aggregated statistics for one time window.
type WindowStats struct {
	WindowEnd       float64 `csv:"window_end"`
	Spawns          int     `csv:"spawns"`
	Combinations    int     `csv:"combinations"`
	Invalid         int     `csv:"invalid"`
	Trashes         int     `csv:"trashes"`
	Evictions       int     `csv:"evictions"`
	Discoveries     int     `csv:"discoveries"`
	PoolSize        int     `csv:"pool_size"`
	DiscoveredTotal int     `csv:"discovered_total"`
}

// Log writes the window stats via slog.
func (s WindowStats) Log() {
	slog.Info("session window",
		"window_end", s.WindowEnd,
		"spawns", s.Spawns,
		"combinations", s.Combinations,
		"invalid", s.Invalid,
		"trashes", s.Trashes,
		"evictions", s.Evictions,
		"discoveries", s.Discoveries,
		"pool_size", s.PoolSize,
		"discovered_total", s.DiscoveredTotal,
	)
}
