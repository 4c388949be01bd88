package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// SessionSummary aggregates discovery pacing over a whole session.
type SessionSummary struct {
	Discoveries  int     `csv:"discoveries"`
	MeanInterval float64 `csv:"mean_interval"`
	P50Interval  float64 `csv:"p50_interval"`
	P90Interval  float64 `csv:"p90_interval"`
}

// DiscoveryIntervals converts an ordered discovery timeline into the gaps
// between consecutive discoveries. The first gap is measured from zero.
func DiscoveryIntervals(times []float64) []float64 {
	if len(times) == 0 {
		return nil
	}
	intervals := make([]float64, len(times))
	prev := 0.0
	for i, t := range times {
		intervals[i] = t - prev
		prev = t
	}
	return intervals
}

// Summarize computes session-level discovery statistics.
func Summarize(discoveryTimes []float64) SessionSummary {
	intervals := DiscoveryIntervals(discoveryTimes)
	summary := SessionSummary{Discoveries: len(discoveryTimes)}
	if len(intervals) == 0 {
		return summary
	}

	sorted := make([]float64, len(intervals))
	copy(sorted, intervals)
	sort.Float64s(sorted)

	summary.MeanInterval = stat.Mean(intervals, nil)
	summary.P50Interval = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	summary.P90Interval = stat.Quantile(0.9, stat.Empirical, sorted, nil)
	return summary
}

// Log writes the session summary via slog.
func (s SessionSummary) Log() {
	slog.Info("session summary",
		"discoveries", s.Discoveries,
		"mean_interval", s.MeanInterval,
		"p50_interval", s.P50Interval,
		"p90_interval", s.P90Interval,
	)
}
