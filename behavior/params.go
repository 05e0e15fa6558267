// Package behavior implements the surface-aware patrol engine: a per-tick
// state machine (idle, standing patrol, crawling patrol) driving ray-based
// surface discovery, destination planning and orientation alignment for a
// single controlled body.
package behavior

// IdleParams holds idle behavior timing parameters.
type IdleParams struct {
	MinDuration       float64
	MaxDuration       float64
	MinFidgetInterval float64
	MaxFidgetInterval float64
	BreathingCycle    float64
	PatrolChance      float64
}

// PatrolParams holds parameters shared by both patrol styles.
type PatrolParams struct {
	Range            float64
	MinStopDuration  float64
	MaxStopDuration  float64
	AcceptanceRadius float64
	StandingSpeed    float64
	CrawlingSpeed    float64
}

// SurfaceParams holds surface detection parameters.
type SurfaceParams struct {
	DetectionRange       float64 // Probe length for the six-direction sweep
	Offset               float64 // Body offset along the hit normal
	FallbackUpDistance   float64 // Straight-down floor probe extents
	FallbackDownDistance float64
}

// PlannerParams holds crawl destination planner parameters.
type PlannerParams struct {
	MaxAttempts            int
	MinDistanceMultiplier  float64 // Candidate distance lower bound as fraction of range
	TransitionChance       float64 // Probability of flagging a transition on arrival
	TransitionDotThreshold float64 // Normals with dot below this count as a different surface
	MinPitchDeg            float64
	MaxPitchDeg            float64
	MinTransitionPitchDeg  float64
	MaxTransitionPitchDeg  float64
	HorizontalDotThreshold float64 // |normal.up| above this = near-horizontal surface
	VerticalDotThreshold   float64 // |normal.up| below this = near-vertical surface
	UpwardBiasChance       float64 // Chance of drawing an upward pitch on walls
}

// LocomotionParams holds movement and alignment parameters.
type LocomotionParams struct {
	AlignmentSpeed       float64
	DirectionBlendSpeed  float64
	ObstacleDotThreshold float64 // travel.normal below this = obstacle
	StuckThreshold       float64 // Seconds of no progress before replanning
	MinProgressSpeed     float64 // Units/sec below which progress counts as none
}

// Params bundles every tunable of the engine.
type Params struct {
	Idle       IdleParams
	Patrol     PatrolParams
	Surface    SurfaceParams
	Planner    PlannerParams
	Locomotion LocomotionParams
}

// DefaultParams returns the engine defaults.
func DefaultParams() Params {
	return Params{
		Idle: IdleParams{
			MinDuration:       5.0,
			MaxDuration:       15.0,
			MinFidgetInterval: 2.0,
			MaxFidgetInterval: 6.0,
			BreathingCycle:    4.0,
			PatrolChance:      0.3,
		},
		Patrol: PatrolParams{
			Range:            1000.0,
			MinStopDuration:  2.0,
			MaxStopDuration:  5.0,
			AcceptanceRadius: 100.0,
			StandingSpeed:    300.0,
			CrawlingSpeed:    150.0,
		},
		Surface: SurfaceParams{
			DetectionRange:       200.0,
			Offset:               50.0,
			FallbackUpDistance:   100.0,
			FallbackDownDistance: 500.0,
		},
		Planner: PlannerParams{
			MaxAttempts:            20,
			MinDistanceMultiplier:  0.3,
			TransitionChance:       0.3,
			TransitionDotThreshold: 0.707,
			MinPitchDeg:            -45.0,
			MaxPitchDeg:            45.0,
			MinTransitionPitchDeg:  -75.0,
			MaxTransitionPitchDeg:  75.0,
			HorizontalDotThreshold: 0.8,
			VerticalDotThreshold:   0.3,
			UpwardBiasChance:       0.7,
		},
		Locomotion: LocomotionParams{
			AlignmentSpeed:       5.0,
			DirectionBlendSpeed:  2.5,
			ObstacleDotThreshold: -0.3,
			StuckThreshold:       2.0,
			MinProgressSpeed:     5.0,
		},
	}
}
