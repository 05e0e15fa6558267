package behavior

import "math"

// idleBehavior runs the resting loop: breathing, occasional fidgets, and the
// periodic patrol roll that decides whether to leave idle at all.
type idleBehavior struct {
	c *Controller

	breathingCycle float64

	idleTime   float64
	targetIdle float64

	fidgetTime float64
	nextFidget float64

	breathTime float64
}

func newIdleBehavior(c *Controller) *idleBehavior {
	return &idleBehavior{c: c}
}

func (b *idleBehavior) enter() {
	p := b.c.params.Idle

	// A non-positive cycle would divide by zero in the breathing curve.
	b.breathingCycle = p.BreathingCycle
	if b.breathingCycle <= 0 {
		b.breathingCycle = 4.0
	}

	b.idleTime = 0
	b.targetIdle = b.c.rand.Range(p.MinDuration, p.MaxDuration)
	b.fidgetTime = 0
	b.nextFidget = b.c.rand.Range(p.MinFidgetInterval, p.MaxFidgetInterval)
	b.breathTime = 0
}

func (b *idleBehavior) exit() {}

func (b *idleBehavior) tick(dt float64) {
	p := b.c.params.Idle

	b.breathTime = math.Mod(b.breathTime+dt, b.breathingCycle)
	if sink := b.c.deps.Cosmetics; sink != nil {
		intensity := (math.Sin(b.breathTime/b.breathingCycle*2*math.Pi) + 1) * 0.5
		sink.OnBreathingUpdate(intensity)

		b.fidgetTime += dt
		if b.fidgetTime >= b.nextFidget {
			if b.c.rand.Chance(0.5) {
				sink.OnNeckTwitch()
			} else {
				sink.OnFingerShift()
			}
			b.fidgetTime = 0
			b.nextFidget = b.c.rand.Range(p.MinFidgetInterval, p.MaxFidgetInterval)
		}
	}

	b.idleTime += dt
	if b.idleTime < b.targetIdle {
		return
	}

	if b.c.rand.Chance(p.PatrolChance) {
		if b.c.rand.Chance(0.5) {
			b.c.TransitionTo(StatePatrolStanding)
		} else {
			b.c.TransitionTo(StatePatrolCrawling)
		}
		return
	}

	// Failed the roll: rest for another stretch.
	b.idleTime = 0
	b.targetIdle = b.c.rand.Range(p.MinDuration, p.MaxDuration)
}
