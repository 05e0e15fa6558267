// Package config provides configuration loading and access for the patrol engine.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/skitter/behavior"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all engine and host configuration parameters.
type Config struct {
	Idle       IdleConfig       `yaml:"idle"`
	Patrol     PatrolConfig     `yaml:"patrol"`
	Surface    SurfaceConfig    `yaml:"surface"`
	Planner    PlannerConfig    `yaml:"planner"`
	Locomotion LocomotionConfig `yaml:"locomotion"`
	Sim        SimConfig        `yaml:"sim"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`
}

// IdleConfig holds idle behavior timing parameters.
type IdleConfig struct {
	MinDuration       float64 `yaml:"min_duration"`        // Seconds of idling before a patrol roll
	MaxDuration       float64 `yaml:"max_duration"`
	MinFidgetInterval float64 `yaml:"min_fidget_interval"` // Seconds between cosmetic fidgets
	MaxFidgetInterval float64 `yaml:"max_fidget_interval"`
	BreathingCycle    float64 `yaml:"breathing_cycle"`     // Full breathing sine period in seconds
	PatrolChance      float64 `yaml:"patrol_chance"`       // Probability of leaving idle when the roll fires
}

// PatrolConfig holds parameters shared by both patrol styles.
type PatrolConfig struct {
	Range            float64 `yaml:"range"`             // Destination selection radius
	MinStopDuration  float64 `yaml:"min_stop_duration"` // Stop-and-look pause at each destination
	MaxStopDuration  float64 `yaml:"max_stop_duration"`
	AcceptanceRadius float64 `yaml:"acceptance_radius"`
	StandingSpeed    float64 `yaml:"standing_speed"` // Units per second
	CrawlingSpeed    float64 `yaml:"crawling_speed"`
}

// SurfaceConfig holds surface detection parameters.
type SurfaceConfig struct {
	DetectionRange       float64 `yaml:"detection_range"`        // Probe length for the six-direction sweep
	Offset               float64 `yaml:"offset"`                 // Body offset along the hit normal
	FallbackUpDistance   float64 `yaml:"fallback_up_distance"`   // Straight-down floor probe extents
	FallbackDownDistance float64 `yaml:"fallback_down_distance"`
}

// PlannerConfig holds crawl destination planner parameters.
type PlannerConfig struct {
	MaxAttempts            int     `yaml:"max_attempts"`
	MinDistanceMultiplier  float64 `yaml:"min_distance_multiplier"`  // Candidate distance lower bound as fraction of range
	TransitionChance       float64 `yaml:"transition_chance"`        // Probability of flagging a surface transition on arrival
	TransitionDotThreshold float64 `yaml:"transition_dot_threshold"` // Normals with dot below this count as a different surface
	MinPitchDeg            float64 `yaml:"min_pitch_deg"`            // Pitch range for ordinary candidate directions
	MaxPitchDeg            float64 `yaml:"max_pitch_deg"`
	MinTransitionPitchDeg  float64 `yaml:"min_transition_pitch_deg"` // Widened pitch range when a transition is wanted
	MaxTransitionPitchDeg  float64 `yaml:"max_transition_pitch_deg"`
	HorizontalDotThreshold float64 `yaml:"horizontal_dot_threshold"` // |normal.up| above this = near-horizontal surface
	VerticalDotThreshold   float64 `yaml:"vertical_dot_threshold"`   // |normal.up| below this = near-vertical surface
	UpwardBiasChance       float64 `yaml:"upward_bias_chance"`       // Chance of drawing an upward pitch on walls
}

// LocomotionConfig holds movement and alignment parameters.
type LocomotionConfig struct {
	AlignmentSpeed       float64 `yaml:"alignment_speed"`        // Orientation interpolation rate
	DirectionBlendSpeed  float64 `yaml:"direction_blend_speed"`  // Forward-vs-destination blend rate
	ObstacleDotThreshold float64 `yaml:"obstacle_dot_threshold"` // travel.normal below this = obstacle
	StuckThreshold       float64 `yaml:"stuck_threshold"`        // Seconds of no progress before replanning
	MinProgressSpeed     float64 `yaml:"min_progress_speed"`     // Units/sec below which progress counts as none
}

// SimConfig holds headless simulation host parameters.
type SimConfig struct {
	DT         float64 `yaml:"dt"`          // Seconds per tick
	Agents     int     `yaml:"agents"`      // Number of patrolling agents
	RoomExtent float64 `yaml:"room_extent"` // Half-width of the room footprint
	RoomHeight float64 `yaml:"room_height"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // Seconds per stats window
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	return cfg, nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// BehaviorParams converts the loaded configuration into engine parameters.
func (c *Config) BehaviorParams() behavior.Params {
	return behavior.Params{
		Idle: behavior.IdleParams{
			MinDuration:       c.Idle.MinDuration,
			MaxDuration:       c.Idle.MaxDuration,
			MinFidgetInterval: c.Idle.MinFidgetInterval,
			MaxFidgetInterval: c.Idle.MaxFidgetInterval,
			BreathingCycle:    c.Idle.BreathingCycle,
			PatrolChance:      c.Idle.PatrolChance,
		},
		Patrol: behavior.PatrolParams{
			Range:            c.Patrol.Range,
			MinStopDuration:  c.Patrol.MinStopDuration,
			MaxStopDuration:  c.Patrol.MaxStopDuration,
			AcceptanceRadius: c.Patrol.AcceptanceRadius,
			StandingSpeed:    c.Patrol.StandingSpeed,
			CrawlingSpeed:    c.Patrol.CrawlingSpeed,
		},
		Surface: behavior.SurfaceParams{
			DetectionRange:       c.Surface.DetectionRange,
			Offset:               c.Surface.Offset,
			FallbackUpDistance:   c.Surface.FallbackUpDistance,
			FallbackDownDistance: c.Surface.FallbackDownDistance,
		},
		Planner: behavior.PlannerParams{
			MaxAttempts:            c.Planner.MaxAttempts,
			MinDistanceMultiplier:  c.Planner.MinDistanceMultiplier,
			TransitionChance:       c.Planner.TransitionChance,
			TransitionDotThreshold: c.Planner.TransitionDotThreshold,
			MinPitchDeg:            c.Planner.MinPitchDeg,
			MaxPitchDeg:            c.Planner.MaxPitchDeg,
			MinTransitionPitchDeg:  c.Planner.MinTransitionPitchDeg,
			MaxTransitionPitchDeg:  c.Planner.MaxTransitionPitchDeg,
			HorizontalDotThreshold: c.Planner.HorizontalDotThreshold,
			VerticalDotThreshold:   c.Planner.VerticalDotThreshold,
			UpwardBiasChance:       c.Planner.UpwardBiasChance,
		},
		Locomotion: behavior.LocomotionParams{
			AlignmentSpeed:       c.Locomotion.AlignmentSpeed,
			DirectionBlendSpeed:  c.Locomotion.DirectionBlendSpeed,
			ObstacleDotThreshold: c.Locomotion.ObstacleDotThreshold,
			StuckThreshold:       c.Locomotion.StuckThreshold,
			MinProgressSpeed:     c.Locomotion.MinProgressSpeed,
		},
	}
}
