package telemetry

// Collector accumulates patrol events within time windows and produces
// WindowStats. It is driven from the simulation tick and is not safe for
// concurrent use.
type Collector struct {
	windowDurationSec   float64
	windowDurationTicks int32
	dt                  float64

	windowStartTick int32

	// Event counters for current window
	stateChanges       int
	destinationsPlaned int
	plannerMisses      int
	arrivals           int
	stuckReplans       int
	obstacleRefusals   int
	surfaceTransitions int

	// Completed-leg samples for current window
	legDistances []float64
	legDurations []float64
}

// NewCollector creates a stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds
// dt: seconds per tick (used for tick-to-time conversion)
func NewCollector(windowDurationSec, dt float64) *Collector {
	ticksPerWindow := int32(windowDurationSec / dt)
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	return &Collector{
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
	}
}

// Record folds one event into the current window.
func (c *Collector) Record(e Event) {
	switch e.Type {
	case EventStateChange:
		c.stateChanges++
	case EventDestinationPlanned:
		c.destinationsPlaned++
		c.legDistances = append(c.legDistances, e.Distance)
		if e.Transition {
			c.surfaceTransitions++
		}
	case EventPlannerMiss:
		c.plannerMisses++
	case EventArrival:
		c.arrivals++
		c.legDurations = append(c.legDurations, e.Duration)
	case EventStuckReplan:
		c.stuckReplans++
	case EventObstacleRefusal:
		c.obstacleRefusals++
	}
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush produces a WindowStats and resets counters for the next window.
// The state occupancy counts are sampled by the caller at window end.
func (c *Collector) Flush(currentTick int32, idleCount, standingCount, crawlingCount int) WindowStats {
	planned := c.destinationsPlaned
	attempts := planned + c.plannerMisses

	var missRate, transitionRate float64
	if attempts > 0 {
		missRate = float64(c.plannerMisses) / float64(attempts)
	}
	if planned > 0 {
		transitionRate = float64(c.surfaceTransitions) / float64(planned)
	}

	dist := ComputeSampleStats(c.legDistances)
	dur := ComputeSampleStats(c.legDurations)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * c.dt,

		IdleCount:     idleCount,
		StandingCount: standingCount,
		CrawlingCount: crawlingCount,

		StateChanges:        c.stateChanges,
		DestinationsPlanned: planned,
		PlannerMisses:       c.plannerMisses,
		Arrivals:            c.arrivals,
		StuckReplans:        c.stuckReplans,
		ObstacleRefusals:    c.obstacleRefusals,
		SurfaceTransitions:  c.surfaceTransitions,

		MissRate:       missRate,
		TransitionRate: transitionRate,

		LegDistMean: dist.Mean,
		LegDistStd:  dist.Std,
		LegDistP10:  dist.P10,
		LegDistP50:  dist.P50,
		LegDistP90:  dist.P90,

		LegTimeMean: dur.Mean,
		LegTimeP50:  dur.P50,
		LegTimeP90:  dur.P90,
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.stateChanges = 0
	c.destinationsPlaned = 0
	c.plannerMisses = 0
	c.arrivals = 0
	c.stuckReplans = 0
	c.obstacleRefusals = 0
	c.surfaceTransitions = 0
	c.legDistances = c.legDistances[:0]
	c.legDurations = c.legDurations[:0]

	return stats
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int32 {
	return c.windowDurationTicks
}
