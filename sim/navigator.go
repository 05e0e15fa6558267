package sim

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/pthm-cable/skitter/behavior"
)

// floorNavigator is a minimal behavior.Navigator over the flat floor of the
// room. It stands in for a real navmesh: reachable points are drawn from the
// floor rectangle and movement is a straight line at the standing speed.
type floorNavigator struct {
	body   *behavior.Body
	rng    *rand.Rand
	minXY  mgl64.Vec2
	maxXY  mgl64.Vec2
	floorZ float64
	speed  float64

	dest       mgl64.Vec3
	acceptance float64
	moving     bool
}

func newFloorNavigator(body *behavior.Body, rng *rand.Rand, minXY, maxXY mgl64.Vec2, floorZ, speed float64) *floorNavigator {
	return &floorNavigator{
		body:   body,
		rng:    rng,
		minXY:  minXY,
		maxXY:  maxXY,
		floorZ: floorZ,
		speed:  speed,
	}
}

// RandomReachablePoint draws a uniform point from the disc around origin,
// clamped to the floor rectangle.
func (n *floorNavigator) RandomReachablePoint(origin mgl64.Vec3, radius float64) (mgl64.Vec3, bool) {
	if radius <= 0 {
		return mgl64.Vec3{}, false
	}
	angle := n.rng.Float64() * 2 * math.Pi
	dist := math.Sqrt(n.rng.Float64()) * radius

	x := mgl64.Clamp(origin.X()+dist*math.Cos(angle), n.minXY.X(), n.maxXY.X())
	y := mgl64.Clamp(origin.Y()+dist*math.Sin(angle), n.minXY.Y(), n.maxXY.Y())
	return mgl64.Vec3{x, y, n.floorZ}, true
}

func (n *floorNavigator) MoveTo(dest mgl64.Vec3, acceptanceRadius float64) {
	n.dest = dest
	n.acceptance = acceptanceRadius
	n.moving = true
}

func (n *floorNavigator) Status() behavior.NavStatus {
	if n.moving {
		return behavior.NavStatusMoving
	}
	return behavior.NavStatusIdle
}

func (n *floorNavigator) ReachedGoal() bool {
	if !n.moving {
		return false
	}
	return n.dest.Sub(n.body.Position()).Len() <= n.acceptance
}

func (n *floorNavigator) Stop() {
	n.moving = false
}

// Update advances the body one tick along the active leg. Heading turns to
// face the direction of travel; the body stays on the floor plane.
func (n *floorNavigator) Update(dt float64) {
	if !n.moving {
		return
	}

	cur := n.body.Position()
	delta := n.dest.Sub(cur)
	remaining := delta.Len()
	if remaining < 1e-9 {
		return
	}

	step := n.speed * dt
	if step > remaining {
		step = remaining
	}
	dir := delta.Mul(1 / remaining)
	n.body.SetPosition(cur.Add(dir.Mul(step)))

	yaw := math.Atan2(dir.Y(), dir.X())
	n.body.SetOrientation(mgl64.QuatRotate(yaw, mgl64.Vec3{0, 0, 1}))
}
