package behavior

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// State identifies the active behavior. There is no hidden sub-state; all
// per-behavior working data lives in the owning strategy and is reset on
// entry.
type State uint8

const (
	StateIdle State = iota
	StatePatrolStanding
	StatePatrolCrawling
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePatrolStanding:
		return "patrol_standing"
	case StatePatrolCrawling:
		return "patrol_crawling"
	default:
		return "unknown"
	}
}

// strategy is the per-state behavior contract.
type strategy interface {
	enter()
	exit()
	tick(dt float64)
}

// CosmeticSink receives the idle behavior's animation signals. Hosts that do
// not animate can leave it nil.
type CosmeticSink interface {
	OnBreathingUpdate(intensity float64)
	OnNeckTwitch()
	OnFingerShift()
}

// NavStatus is the coarse movement status of the external navigator.
type NavStatus uint8

const (
	NavStatusIdle NavStatus = iota
	NavStatusMoving
	NavStatusBusy // transient: paused, aborting, settling
)

// Navigator is the external floor-bound navigation collaborator used by the
// standing patrol. The engine never path-plans on the navmesh itself.
type Navigator interface {
	RandomReachablePoint(origin mgl64.Vec3, radius float64) (mgl64.Vec3, bool)
	MoveTo(dest mgl64.Vec3, acceptanceRadius float64)
	Status() NavStatus
	ReachedGoal() bool
	Stop()
}

// Hooks are optional host callbacks for observing the engine. Any field may
// be nil.
type Hooks struct {
	StateChanged       func(old, new State)
	DestinationPlanned func(distance float64, transition bool)
	PlannerMissed      func()
	Arrived            func(legDuration float64)
	StuckReplanned     func()
	ObstacleRefused    func()
}

// Deps are the collaborators a Controller is constructed with. Body and Rays
// are required; the rest are optional.
type Deps struct {
	Body      Transform
	Rays      RayCaster
	Nav       Navigator
	Cosmetics CosmeticSink
	Hooks     Hooks
}

// Controller owns the behavior state machine for one body and drives it from
// a single per-frame Tick. Everything runs synchronously inside the tick;
// a Controller must not be shared across goroutines.
type Controller struct {
	deps   Deps
	params Params
	rand   *Rand

	sampler *SurfaceSampler
	planner *DestinationPlanner
	driver  *LocomotionDriver
	aligner *OrientationAligner

	state      State
	strategies [3]strategy
}

// NewController builds the engine around the given collaborators and enters
// the idle state.
func NewController(deps Deps, params Params, rng *rand.Rand) *Controller {
	c := &Controller{
		deps:   deps,
		params: params,
		rand:   NewRand(rng),
	}

	c.sampler = NewSurfaceSampler(deps.Rays, params.Surface)
	c.planner = NewDestinationPlanner(deps.Rays, c.sampler, c.rand, params.Planner, params.Surface)
	c.driver = NewLocomotionDriver(deps.Body, deps.Rays, c.sampler, params.Locomotion, params.Surface)
	c.aligner = NewOrientationAligner(params.Locomotion)

	c.strategies[StateIdle] = newIdleBehavior(c)
	c.strategies[StatePatrolStanding] = newStandingBehavior(c)
	c.strategies[StatePatrolCrawling] = newCrawlingBehavior(c)

	c.state = StateIdle
	c.strategies[c.state].enter()
	return c
}

// State returns the active behavior state.
func (c *Controller) State() State { return c.state }

// Driver exposes the locomotion driver, mainly for host inspection.
func (c *Controller) Driver() *LocomotionDriver { return c.driver }

// SurfaceNormal returns the blended surface normal the body is aligned to.
func (c *Controller) SurfaceNormal() mgl64.Vec3 { return c.aligner.Normal() }

// SpeedFor returns the movement speed used in the given state.
func (c *Controller) SpeedFor(s State) float64 {
	switch s {
	case StatePatrolStanding:
		return c.params.Patrol.StandingSpeed
	case StatePatrolCrawling:
		return c.params.Patrol.CrawlingSpeed
	default:
		return 0
	}
}

// Tick advances the active behavior by dt seconds.
func (c *Controller) Tick(dt float64) {
	c.strategies[c.state].tick(dt)
}

// TransitionTo switches behaviors, running the exit and enter handlers.
// Transitioning to the current state is a no-op.
func (c *Controller) TransitionTo(next State) {
	if next == c.state {
		return
	}
	old := c.state
	c.strategies[old].exit()
	c.state = next
	if c.deps.Hooks.StateChanged != nil {
		c.deps.Hooks.StateChanged(old, next)
	}
	c.strategies[next].enter()
}

func (c *Controller) hookDestinationPlanned(distance float64, transition bool) {
	if c.deps.Hooks.DestinationPlanned != nil {
		c.deps.Hooks.DestinationPlanned(distance, transition)
	}
}

func (c *Controller) hookPlannerMissed() {
	if c.deps.Hooks.PlannerMissed != nil {
		c.deps.Hooks.PlannerMissed()
	}
}

func (c *Controller) hookArrived(legDuration float64) {
	if c.deps.Hooks.Arrived != nil {
		c.deps.Hooks.Arrived(legDuration)
	}
}

func (c *Controller) hookStuckReplanned() {
	if c.deps.Hooks.StuckReplanned != nil {
		c.deps.Hooks.StuckReplanned()
	}
}

func (c *Controller) hookObstacleRefused() {
	if c.deps.Hooks.ObstacleRefused != nil {
		c.deps.Hooks.ObstacleRefused()
	}
}
