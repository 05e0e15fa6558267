package behavior

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func newTestDriver(body *Body, caster RayCaster) *LocomotionDriver {
	params := DefaultParams()
	sampler := NewSurfaceSampler(caster, params.Surface)
	return NewLocomotionDriver(body, caster, sampler, params.Locomotion, params.Surface)
}

// TestMoveTowardArrival verifies MoveToward returns false without moving once
// the destination is within the acceptance radius.
func TestMoveTowardArrival(t *testing.T) {
	body := NewBody(mgl64.Vec3{0, 0, 50})
	d := newTestDriver(body, floorCaster{Z: 0})

	tests := []struct {
		name string
		dest mgl64.Vec3
	}{
		{name: "inside radius", dest: mgl64.Vec3{90, 0, 50}},
		{name: "exactly on radius", dest: mgl64.Vec3{100, 0, 50}},
		{name: "at destination", dest: mgl64.Vec3{0, 0, 50}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			before := body.Position()
			if d.MoveToward(tc.dest, 0.1, 150, 100) {
				t.Error("MoveToward = true, want arrival")
			}
			if body.Position() != before {
				t.Errorf("body moved on arrival: %v -> %v", before, body.Position())
			}
		})
	}
}

// TestMoveTowardSnapsToFloor verifies the body stays glued to the surface at
// the offset height while crossing a floor.
func TestMoveTowardSnapsToFloor(t *testing.T) {
	body := NewBody(mgl64.Vec3{0, 0, 50})
	d := newTestDriver(body, floorCaster{Z: 0})

	dest := mgl64.Vec3{500, 0, 50}
	for i := 0; i < 10; i++ {
		if !d.MoveToward(dest, 0.1, 150, 100) {
			t.Fatalf("arrived unexpectedly on step %d", i)
		}
		if z := body.Position().Z(); z != 50 {
			t.Fatalf("step %d: Z = %f, want 50", i, z)
		}
		if !d.OnSurface() {
			t.Fatalf("step %d: not attached to the floor", i)
		}
		if d.TargetNormal() != (mgl64.Vec3{0, 0, 1}) {
			t.Fatalf("step %d: TargetNormal = %v, want up", i, d.TargetNormal())
		}
	}

	if body.Position().X() <= 0 {
		t.Error("no forward progress along the floor")
	}
}

// wallAt builds a caster with a single wall plane x = X facing -X, for
// obstacle tests.
func wallAt(x float64) funcCaster {
	return func(from, to mgl64.Vec3) (Hit, bool) {
		if from.X() >= x || to.X() < x {
			return Hit{}, false
		}
		t := (x - from.X()) / (to.X() - from.X())
		point := from.Add(to.Sub(from).Mul(t))
		return Hit{Point: point, Normal: mgl64.Vec3{-1, 0, 0}, Distance: point.Sub(from).Len()}, true
	}
}

// TestMoveTowardObstacleRefusal verifies a face opposing the direction of
// travel refuses the step, keeps the body out of the geometry, and still
// reports the leg as in progress.
func TestMoveTowardObstacleRefusal(t *testing.T) {
	body := NewBody(mgl64.Vec3{0, 0, 0})
	d := newTestDriver(body, wallAt(100))

	// dt chosen so the probe reaches past the wall.
	if !d.MoveToward(mgl64.Vec3{300, 0, 0}, 0.5, 150, 10) {
		t.Error("MoveToward = false, want in-progress after refusal")
	}
	if d.ObstacleRefusals() != 1 {
		t.Errorf("ObstacleRefusals = %d, want 1", d.ObstacleRefusals())
	}
	if x := body.Position().X(); x >= 100 {
		t.Errorf("body penetrated the wall: X = %f", x)
	}
}

// TestStuckDetection verifies a pinned body trips stuck detection after the
// threshold and that resetting clears it.
func TestStuckDetection(t *testing.T) {
	body := NewBody(mgl64.Vec3{0, 0, 0})
	d := newTestDriver(body, wallAt(1))

	dest := mgl64.Vec3{300, 0, 0}
	// The wall pins the body in place; 2s of no progress at dt=0.5 means the
	// fifth step at the latest observes a stuck body.
	for i := 0; i < 5; i++ {
		if d.Stuck() {
			t.Fatalf("stuck reported early, step %d", i)
		}
		d.MoveToward(dest, 0.5, 150, 10)
	}
	if !d.Stuck() {
		t.Fatal("stuck not reported after threshold")
	}

	d.ResetStuck()
	if d.Stuck() {
		t.Error("stuck still reported after reset")
	}
}

// TestMoveTowardUnattached verifies free flight through empty space: the raw
// step is taken and the driver reports no surface.
func TestMoveTowardUnattached(t *testing.T) {
	body := NewBody(mgl64.Vec3{0, 0, 0})
	d := newTestDriver(body, missCaster{})

	if !d.MoveToward(mgl64.Vec3{300, 0, 0}, 0.1, 150, 10) {
		t.Fatal("MoveToward = false, want in-progress")
	}
	if d.OnSurface() {
		t.Error("OnSurface = true in empty space")
	}
	want := mgl64.Vec3{15, 0, 0}
	if body.Position() != want {
		t.Errorf("Position = %v, want %v", body.Position(), want)
	}
}

// TestResetSurface verifies crawl entry re-attaches to the surface under the
// body.
func TestResetSurface(t *testing.T) {
	body := NewBody(mgl64.Vec3{0, 0, 120})
	d := newTestDriver(body, floorCaster{Z: 0})

	d.ResetSurface()
	if !d.OnSurface() {
		t.Fatal("not attached after ResetSurface over a floor")
	}
	if d.TargetNormal() != (mgl64.Vec3{0, 0, 1}) {
		t.Errorf("TargetNormal = %v, want up", d.TargetNormal())
	}
}
