package behavior

import "github.com/go-gl/mathgl/mgl64"

// standingBehavior patrols upright on the floor through the external
// navigator: pick a reachable point, walk there, pause, repeat. Without a
// navigator the state just stands still until idle is re-entered.
type standingBehavior struct {
	c *Controller

	stopped    bool
	stopTime   float64
	targetStop float64
	legTime    float64
}

func newStandingBehavior(c *Controller) *standingBehavior {
	return &standingBehavior{c: c}
}

func (b *standingBehavior) enter() {
	b.stopped = false
	b.stopTime = 0
	b.targetStop = 0
	b.legTime = 0
}

func (b *standingBehavior) exit() {
	if nav := b.c.deps.Nav; nav != nil {
		nav.Stop()
	}
}

func (b *standingBehavior) tick(dt float64) {
	nav := b.c.deps.Nav
	if nav == nil {
		b.c.TransitionTo(StateIdle)
		return
	}

	if b.stopped {
		b.stopTime += dt
		if b.stopTime < b.targetStop {
			return
		}
		b.stopped = false
		b.stopTime = 0
		// Fall through and request the next leg this tick.
	}

	switch nav.Status() {
	case NavStatusMoving:
		b.legTime += dt
		if nav.ReachedGoal() {
			nav.Stop()
			b.c.hookArrived(b.legTime)
			b.stopped = true
			b.stopTime = 0
			b.targetStop = b.c.rand.Range(b.c.params.Patrol.MinStopDuration, b.c.params.Patrol.MaxStopDuration)
		}
		return
	case NavStatusIdle:
		// Request a new leg below.
	default:
		// Navigator is busy settling; try again next tick.
		return
	}

	origin := b.c.deps.Body.Position()
	patrolRange := b.c.params.Patrol.Range

	point, ok := nav.RandomReachablePoint(origin, patrolRange)
	if !ok {
		// Retry closer in before giving up on this tick.
		point, ok = nav.RandomReachablePoint(origin, patrolRange*0.5)
	}
	if !ok {
		b.c.hookPlannerMissed()
		return
	}

	dist := point.Sub(origin).Len()
	nav.MoveTo(point, b.c.params.Patrol.AcceptanceRadius)
	b.legTime = 0
	b.c.hookDestinationPlanned(dist, false)
}

// crawlingBehavior patrols across arbitrary surfaces: the planner proposes
// ray-found destinations, the driver crawls toward them, and the aligner keeps
// the body oriented to whatever it is attached to.
type crawlingBehavior struct {
	c *Controller

	dest    SurfacePoint
	hasDest bool

	stopped    bool
	stopTime   float64
	targetStop float64

	// wantTransition carries the surface-transition intent across planner
	// calls until a divergent surface is actually found.
	wantTransition bool

	legTime float64
}

func newCrawlingBehavior(c *Controller) *crawlingBehavior {
	return &crawlingBehavior{c: c}
}

func (b *crawlingBehavior) enter() {
	b.hasDest = false
	b.stopped = false
	b.stopTime = 0
	b.targetStop = 0
	b.wantTransition = false
	b.legTime = 0

	b.c.driver.ResetSurface()
	b.c.aligner.Reset(b.c.driver.TargetNormal())
}

func (b *crawlingBehavior) exit() {
	b.hasDest = false
}

func (b *crawlingBehavior) tick(dt float64) {
	c := b.c

	// Orientation tracks the surface every tick, moving or not.
	moveDir, hasMoveDir := b.currentMoveDir()
	c.aligner.Align(c.deps.Body, c.driver.TargetNormal(), moveDir, hasMoveDir, dt)

	if b.stopped {
		b.stopTime += dt
		if b.stopTime < b.targetStop {
			return
		}
		b.stopped = false
		b.stopTime = 0
		// Fall through and plan the next leg this tick.
	}

	if b.hasDest {
		b.advance(dt)
		return
	}

	b.plan()
}

// currentMoveDir returns the normalized direction toward the held
// destination, if any.
func (b *crawlingBehavior) currentMoveDir() (mgl64.Vec3, bool) {
	if !b.hasDest {
		return mgl64.Vec3{}, false
	}
	delta := b.dest.Point.Sub(b.c.deps.Body.Position())
	unit, valid := safeNormalize(delta, worldForward)
	if !valid {
		return mgl64.Vec3{}, false
	}
	return unit, true
}

// advance runs one movement step toward the held destination.
func (b *crawlingBehavior) advance(dt float64) {
	c := b.c
	b.legTime += dt

	if c.driver.Stuck() {
		// No progress for too long: drop the destination and replan fresh.
		c.driver.ResetStuck()
		b.hasDest = false
		c.hookStuckReplanned()
		return
	}

	refusalsBefore := c.driver.ObstacleRefusals()
	moving := c.driver.MoveToward(b.dest.Point, dt, c.params.Patrol.CrawlingSpeed, c.params.Patrol.AcceptanceRadius)
	if c.driver.ObstacleRefusals() > refusalsBefore {
		c.hookObstacleRefused()
	}
	if moving {
		return
	}

	// Arrived: pause, and roll whether the next leg should seek a different
	// surface.
	c.hookArrived(b.legTime)
	b.hasDest = false
	b.stopped = true
	b.stopTime = 0
	b.targetStop = c.rand.Range(c.params.Patrol.MinStopDuration, c.params.Patrol.MaxStopDuration)
	if c.rand.Chance(c.params.Planner.TransitionChance) {
		b.wantTransition = true
	}
}

// plan asks the destination planner for the next leg.
func (b *crawlingBehavior) plan() {
	c := b.c
	origin := c.deps.Body.Position()

	sp, ok := c.planner.Propose(origin, c.params.Patrol.Range, c.driver.TargetNormal(), b.wantTransition)
	if !ok {
		c.hookPlannerMissed()
		return
	}

	transition := clampedDot(sp.Normal, c.driver.TargetNormal()) < c.params.Planner.TransitionDotThreshold

	b.dest = sp
	b.hasDest = true
	b.legTime = 0
	b.wantTransition = false
	c.driver.ResetStuck()
	c.hookDestinationPlanned(sp.Point.Sub(origin).Len(), transition)
}
