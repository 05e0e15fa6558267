// Package sim is the headless simulation host: it spawns patrolling agents in
// a closed box room and ticks their behavior engines, collecting telemetry.
package sim

import (
	"fmt"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/skitter/behavior"
	"github.com/pthm-cable/skitter/components"
	"github.com/pthm-cable/skitter/config"
	"github.com/pthm-cable/skitter/telemetry"
	"github.com/pthm-cable/skitter/worldgeom"
)

// wallThickness is the slab depth of the room geometry. Rays never leave the
// room, so the exact value only has to exceed numerical noise.
const wallThickness = 100.0

// Options configures a simulation run.
type Options struct {
	Seed           int64
	Agents         int // 0 = use config
	LogStats       bool
	StatsWindowSec float64 // 0 = use config
	OutputDir      string
}

// Sim holds the complete simulation state.
type Sim struct {
	world *ecs.World
	rng   *rand.Rand
	geo   *worldgeom.World

	agentMapper *ecs.Map3[components.Position, components.Orientation, components.Agent]
	agentFilter *ecs.Filter3[components.Position, components.Orientation, components.Agent]

	navs map[uint32]*floorNavigator

	collector *telemetry.Collector
	output    *telemetry.OutputManager
	logStats  bool

	dt     float64
	tick   int32
	nextID uint32
}

// NewSim builds a simulation from the loaded configuration and the given
// options.
func NewSim(opts Options) (*Sim, error) {
	cfg := config.Cfg()

	extent := cfg.Sim.RoomExtent
	room := worldgeom.Room(
		mgl64.Vec3{-extent, -extent, 0},
		mgl64.Vec3{extent, extent, cfg.Sim.RoomHeight},
		wallThickness,
	)

	statsWindow := opts.StatsWindowSec
	if statsWindow <= 0 {
		statsWindow = cfg.Telemetry.StatsWindow
	}

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("initializing output: %w", err)
	}
	if err := output.WriteConfig(cfg); err != nil {
		output.Close()
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}

	world := ecs.NewWorld()
	s := &Sim{
		world: world,
		rng:   rand.New(rand.NewSource(opts.Seed)),
		geo:   room,
		agentMapper: ecs.NewMap3[
			components.Position,
			components.Orientation,
			components.Agent,
		](world),
		agentFilter: ecs.NewFilter3[
			components.Position,
			components.Orientation,
			components.Agent,
		](world),
		navs:      make(map[uint32]*floorNavigator),
		collector: telemetry.NewCollector(statsWindow, cfg.Sim.DT),
		output:    output,
		logStats:  opts.LogStats,
		dt:        cfg.Sim.DT,
	}

	agents := opts.Agents
	if agents <= 0 {
		agents = cfg.Sim.Agents
	}
	s.spawnAgents(agents, cfg)

	return s, nil
}

// spawnAgents creates the initial agent population on the floor.
func (s *Sim) spawnAgents(count int, cfg *config.Config) {
	extent := cfg.Sim.RoomExtent
	floorZ := cfg.Surface.Offset
	params := cfg.BehaviorParams()

	for i := 0; i < count; i++ {
		s.nextID++
		id := s.nextID

		x := (s.rng.Float64()*2 - 1) * extent * 0.5
		y := (s.rng.Float64()*2 - 1) * extent * 0.5
		body := behavior.NewBody(mgl64.Vec3{x, y, floorZ})

		// Each agent owns a derived RNG so runs stay reproducible regardless
		// of agent count.
		agentRNG := rand.New(rand.NewSource(s.rng.Int63()))

		nav := newFloorNavigator(
			body,
			agentRNG,
			mgl64.Vec2{-extent, -extent},
			mgl64.Vec2{extent, extent},
			floorZ,
			cfg.Patrol.StandingSpeed,
		)
		s.navs[id] = nav

		ctrl := behavior.NewController(behavior.Deps{
			Body:  body,
			Rays:  s.geo,
			Nav:   nav,
			Hooks: s.hooksFor(id),
		}, params, agentRNG)

		pos := components.Position{Pos: body.Position()}
		orn := components.Orientation{Orn: body.Orientation()}
		agent := components.Agent{ID: id, Body: body, Controller: ctrl}
		s.agentMapper.NewEntity(&pos, &orn, &agent)
	}
}

// hooksFor adapts the engine callbacks of one agent into telemetry events.
func (s *Sim) hooksFor(id uint32) behavior.Hooks {
	return behavior.Hooks{
		StateChanged: func(from, to behavior.State) {
			s.collector.Record(telemetry.NewStateChangeEvent(s.tick, id, from, to))
		},
		DestinationPlanned: func(distance float64, transition bool) {
			s.collector.Record(telemetry.NewDestinationPlannedEvent(s.tick, id, distance, transition))
		},
		PlannerMissed: func() {
			s.collector.Record(telemetry.NewPlannerMissEvent(s.tick, id))
		},
		Arrived: func(legDuration float64) {
			s.collector.Record(telemetry.NewArrivalEvent(s.tick, id, legDuration))
		},
		StuckReplanned: func() {
			s.collector.Record(telemetry.NewStuckReplanEvent(s.tick, id))
		},
		ObstacleRefused: func() {
			s.collector.Record(telemetry.NewObstacleRefusalEvent(s.tick, id))
		},
	}
}

// Tick returns the current simulation tick.
func (s *Sim) Tick() int32 { return s.tick }

// Step advances the simulation by one tick.
func (s *Sim) Step() error {
	s.tick++

	query := s.agentFilter.Query()
	for query.Next() {
		pos, orn, agent := query.Get()

		agent.Controller.Tick(s.dt)
		if nav := s.navs[agent.ID]; nav != nil {
			nav.Update(s.dt)
		}

		pos.Pos = agent.Body.Position()
		orn.Orn = agent.Body.Orientation()
	}

	if s.collector.ShouldFlush(s.tick) {
		if err := s.flushStats(); err != nil {
			return err
		}
	}
	return nil
}

// flushStats closes the current telemetry window.
func (s *Sim) flushStats() error {
	var idle, standing, crawling int
	query := s.agentFilter.Query()
	for query.Next() {
		_, _, agent := query.Get()
		switch agent.Controller.State() {
		case behavior.StateIdle:
			idle++
		case behavior.StatePatrolStanding:
			standing++
		case behavior.StatePatrolCrawling:
			crawling++
		}
	}

	stats := s.collector.Flush(s.tick, idle, standing, crawling)
	if s.logStats {
		stats.LogStats()
	}
	if err := s.output.WriteTelemetry(stats); err != nil {
		return fmt.Errorf("flushing stats: %w", err)
	}
	return nil
}

// Close flushes and releases run outputs.
func (s *Sim) Close() error {
	return s.output.Close()
}
