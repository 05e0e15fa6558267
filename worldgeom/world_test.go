package worldgeom

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// TestCastRaySingleBox verifies entry point, normal and distance against one
// box.
func TestCastRaySingleBox(t *testing.T) {
	w := NewWorld(Box{
		Min: mgl64.Vec3{100, -50, -50},
		Max: mgl64.Vec3{200, 50, 50},
	})

	tests := []struct {
		name       string
		from, to   mgl64.Vec3
		wantOK     bool
		wantPoint  mgl64.Vec3
		wantNormal mgl64.Vec3
		wantDist   float64
	}{
		{
			name:       "head on",
			from:       mgl64.Vec3{0, 0, 0},
			to:         mgl64.Vec3{300, 0, 0},
			wantOK:     true,
			wantPoint:  mgl64.Vec3{100, 0, 0},
			wantNormal: mgl64.Vec3{-1, 0, 0},
			wantDist:   100,
		},
		{
			name:       "from behind",
			from:       mgl64.Vec3{300, 0, 0},
			to:         mgl64.Vec3{0, 0, 0},
			wantOK:     true,
			wantPoint:  mgl64.Vec3{200, 0, 0},
			wantNormal: mgl64.Vec3{1, 0, 0},
			wantDist:   100,
		},
		{
			name:   "segment stops short",
			from:   mgl64.Vec3{0, 0, 0},
			to:     mgl64.Vec3{99, 0, 0},
			wantOK: false,
		},
		{
			name:   "misses to the side",
			from:   mgl64.Vec3{0, 200, 0},
			to:     mgl64.Vec3{300, 200, 0},
			wantOK: false,
		},
		{
			name:   "starts inside",
			from:   mgl64.Vec3{150, 0, 0},
			to:     mgl64.Vec3{300, 0, 0},
			wantOK: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			hit, ok := w.CastRay(tc.from, tc.to)
			if ok != tc.wantOK {
				t.Fatalf("ok = %t, want %t", ok, tc.wantOK)
			}
			if !ok {
				return
			}
			if hit.Point != tc.wantPoint {
				t.Errorf("Point = %v, want %v", hit.Point, tc.wantPoint)
			}
			if hit.Normal != tc.wantNormal {
				t.Errorf("Normal = %v, want %v", hit.Normal, tc.wantNormal)
			}
			if math.Abs(hit.Distance-tc.wantDist) > 1e-9 {
				t.Errorf("Distance = %f, want %f", hit.Distance, tc.wantDist)
			}
		})
	}
}

// TestCastRayNearestBox verifies the closest of several boxes wins.
func TestCastRayNearestBox(t *testing.T) {
	w := NewWorld(
		Box{Min: mgl64.Vec3{200, -10, -10}, Max: mgl64.Vec3{210, 10, 10}},
		Box{Min: mgl64.Vec3{100, -10, -10}, Max: mgl64.Vec3{110, 10, 10}},
	)

	hit, ok := w.CastRay(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{300, 0, 0})
	if !ok {
		t.Fatal("no hit")
	}
	if hit.Point.X() != 100 {
		t.Errorf("hit X = %f, want the nearer box at 100", hit.Point.X())
	}
}

// TestRoomInteriorProbes verifies rays from inside a room hit the inward
// faces with inward normals.
func TestRoomInteriorProbes(t *testing.T) {
	room := Room(mgl64.Vec3{-500, -500, 0}, mgl64.Vec3{500, 500, 300}, 100)
	center := mgl64.Vec3{0, 0, 150}

	tests := []struct {
		name       string
		to         mgl64.Vec3
		wantPoint  mgl64.Vec3
		wantNormal mgl64.Vec3
	}{
		{name: "down to floor", to: mgl64.Vec3{0, 0, -1000}, wantPoint: mgl64.Vec3{0, 0, 0}, wantNormal: mgl64.Vec3{0, 0, 1}},
		{name: "up to ceiling", to: mgl64.Vec3{0, 0, 1000}, wantPoint: mgl64.Vec3{0, 0, 300}, wantNormal: mgl64.Vec3{0, 0, -1}},
		{name: "east wall", to: mgl64.Vec3{1000, 0, 150}, wantPoint: mgl64.Vec3{500, 0, 150}, wantNormal: mgl64.Vec3{-1, 0, 0}},
		{name: "west wall", to: mgl64.Vec3{-1000, 0, 150}, wantPoint: mgl64.Vec3{-500, 0, 150}, wantNormal: mgl64.Vec3{1, 0, 0}},
		{name: "north wall", to: mgl64.Vec3{0, 1000, 150}, wantPoint: mgl64.Vec3{0, 500, 150}, wantNormal: mgl64.Vec3{0, -1, 0}},
		{name: "south wall", to: mgl64.Vec3{0, -1000, 150}, wantPoint: mgl64.Vec3{0, -500, 150}, wantNormal: mgl64.Vec3{0, 1, 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			hit, ok := room.CastRay(center, tc.to)
			if !ok {
				t.Fatal("no hit from room center")
			}
			if hit.Point != tc.wantPoint {
				t.Errorf("Point = %v, want %v", hit.Point, tc.wantPoint)
			}
			if hit.Normal != tc.wantNormal {
				t.Errorf("Normal = %v, want %v", hit.Normal, tc.wantNormal)
			}
		})
	}
}

// TestCastRayFromSurface verifies a ray starting exactly on a face does not
// re-hit that face.
func TestCastRayFromSurface(t *testing.T) {
	room := Room(mgl64.Vec3{-500, -500, 0}, mgl64.Vec3{500, 500, 300}, 100)

	// Standing on the floor, probing horizontally: the only legal hit is the
	// wall, never the floor underfoot.
	hit, ok := room.CastRay(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1000, 0, 0})
	if !ok {
		t.Fatal("no hit")
	}
	if hit.Normal != (mgl64.Vec3{-1, 0, 0}) {
		t.Errorf("Normal = %v, want the east wall", hit.Normal)
	}
}
