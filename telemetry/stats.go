package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated patrol statistics for a time window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Agent state occupancy at window end
	IdleCount     int `csv:"idle"`
	StandingCount int `csv:"standing"`
	CrawlingCount int `csv:"crawling"`

	// Events during window
	StateChanges        int `csv:"state_changes"`
	DestinationsPlanned int `csv:"destinations_planned"`
	PlannerMisses       int `csv:"planner_misses"`
	Arrivals            int `csv:"arrivals"`
	StuckReplans        int `csv:"stuck_replans"`
	ObstacleRefusals    int `csv:"obstacle_refusals"`
	SurfaceTransitions  int `csv:"surface_transitions"`

	// Planner efficiency
	MissRate       float64 `csv:"miss_rate"`
	TransitionRate float64 `csv:"transition_rate"`

	// Completed-leg distributions
	LegDistMean float64 `csv:"leg_dist_mean"`
	LegDistStd  float64 `csv:"leg_dist_std"`
	LegDistP10  float64 `csv:"leg_dist_p10"`
	LegDistP50  float64 `csv:"leg_dist_p50"`
	LegDistP90  float64 `csv:"leg_dist_p90"`

	LegTimeMean float64 `csv:"leg_time_mean"`
	LegTimeP50  float64 `csv:"leg_time_p50"`
	LegTimeP90  float64 `csv:"leg_time_p90"`
}

// SampleStats summarizes a sample distribution.
type SampleStats struct {
	Mean float64
	Std  float64
	P10  float64
	P50  float64
	P90  float64
}

// ComputeSampleStats calculates mean, std and percentiles for values. The
// input slice is not modified. Empty input yields zeros.
func ComputeSampleStats(values []float64) SampleStats {
	if len(values) == 0 {
		return SampleStats{}
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	var s SampleStats
	s.Mean = stat.Mean(sorted, nil)
	if len(sorted) > 1 {
		s.Std = stat.StdDev(sorted, nil)
	}
	s.P10 = stat.Quantile(0.10, stat.Empirical, sorted, nil)
	s.P50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	s.P90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)
	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("idle", s.IdleCount),
		slog.Int("standing", s.StandingCount),
		slog.Int("crawling", s.CrawlingCount),
		slog.Int("state_changes", s.StateChanges),
		slog.Int("destinations_planned", s.DestinationsPlanned),
		slog.Int("planner_misses", s.PlannerMisses),
		slog.Int("arrivals", s.Arrivals),
		slog.Int("stuck_replans", s.StuckReplans),
		slog.Int("obstacle_refusals", s.ObstacleRefusals),
		slog.Int("surface_transitions", s.SurfaceTransitions),
		slog.Float64("miss_rate", s.MissRate),
		slog.Float64("transition_rate", s.TransitionRate),
		slog.Float64("leg_dist_mean", s.LegDistMean),
		slog.Float64("leg_dist_std", s.LegDistStd),
		slog.Float64("leg_dist_p10", s.LegDistP10),
		slog.Float64("leg_dist_p50", s.LegDistP50),
		slog.Float64("leg_dist_p90", s.LegDistP90),
		slog.Float64("leg_time_mean", s.LegTimeMean),
		slog.Float64("leg_time_p50", s.LegTimeP50),
		slog.Float64("leg_time_p90", s.LegTimeP90),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"idle", s.IdleCount,
		"standing", s.StandingCount,
		"crawling", s.CrawlingCount,
		"state_changes", s.StateChanges,
		"destinations_planned", s.DestinationsPlanned,
		"planner_misses", s.PlannerMisses,
		"arrivals", s.Arrivals,
		"stuck_replans", s.StuckReplans,
		"obstacle_refusals", s.ObstacleRefusals,
		"surface_transitions", s.SurfaceTransitions,
		"miss_rate", s.MissRate,
		"transition_rate", s.TransitionRate,
		"leg_dist_mean", s.LegDistMean,
		"leg_dist_p50", s.LegDistP50,
		"leg_dist_p90", s.LegDistP90,
		"leg_time_mean", s.LegTimeMean,
	)
}
