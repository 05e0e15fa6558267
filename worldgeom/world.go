// Package worldgeom provides the static collision world used by the headless
// host: a set of axis-aligned boxes with segment ray queries against them.
package worldgeom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/pthm-cable/skitter/behavior"
)

// Box is an axis-aligned solid. Min must be componentwise below Max.
type Box struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// World is an immutable collection of boxes. Queries are read-only and safe
// for concurrent use.
type World struct {
	boxes []Box
}

// NewWorld builds a world from the given boxes.
func NewWorld(boxes ...Box) *World {
	w := &World{boxes: make([]Box, len(boxes))}
	copy(w.boxes, boxes)
	return w
}

// Boxes returns the world geometry.
func (w *World) Boxes() []Box { return w.boxes }

// rayEpsilon rejects intersections at the segment origin so a body resting on
// a face does not immediately re-hit it.
const rayEpsilon = 1e-9

// CastRay reports the nearest box intersection along the segment from `from`
// to `to`, with the outward normal of the struck face.
func (w *World) CastRay(from, to mgl64.Vec3) (behavior.Hit, bool) {
	dir := to.Sub(from)

	bestT := math.Inf(1)
	var bestNormal mgl64.Vec3
	found := false

	for _, box := range w.boxes {
		if t, normal, ok := intersectBox(from, dir, box); ok && t < bestT {
			bestT = t
			bestNormal = normal
			found = true
		}
	}

	if !found {
		return behavior.Hit{}, false
	}

	point := from.Add(dir.Mul(bestT))
	return behavior.Hit{
		Point:    point,
		Normal:   bestNormal,
		Distance: point.Sub(from).Len(),
	}, true
}

// intersectBox runs the slab method over the segment from+t*dir, t in (0,1],
// returning the entry parameter and the outward normal of the entered face.
// Segments starting inside the box report no hit; the engine treats interior
// starts as open space.
func intersectBox(from, dir mgl64.Vec3, box Box) (float64, mgl64.Vec3, bool) {
	tEnter := 0.0
	tExit := 1.0
	enterAxis := -1

	for axis := 0; axis < 3; axis++ {
		o := from[axis]
		d := dir[axis]
		lo := box.Min[axis]
		hi := box.Max[axis]

		if math.Abs(d) < rayEpsilon {
			if o < lo || o > hi {
				return 0, mgl64.Vec3{}, false
			}
			continue
		}

		t0 := (lo - o) / d
		t1 := (hi - o) / d
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		if t0 > tEnter {
			tEnter = t0
			enterAxis = axis
		}
		if t1 < tExit {
			tExit = t1
		}
		if tEnter > tExit {
			return 0, mgl64.Vec3{}, false
		}
	}

	// enterAxis < 0 means the segment starts inside the box.
	if enterAxis < 0 || tEnter <= rayEpsilon || tEnter > 1 {
		return 0, mgl64.Vec3{}, false
	}

	var normal mgl64.Vec3
	if dir[enterAxis] > 0 {
		normal[enterAxis] = -1
	} else {
		normal[enterAxis] = 1
	}
	return tEnter, normal, true
}

// Room builds the six slabs of a closed rectangular room whose interior spans
// min..max, each wall `thickness` units deep. Interior ray queries hit the
// inward faces of the slabs.
func Room(min, max mgl64.Vec3, thickness float64) *World {
	t := thickness
	return NewWorld(
		// Floor and ceiling.
		Box{Min: mgl64.Vec3{min.X() - t, min.Y() - t, min.Z() - t}, Max: mgl64.Vec3{max.X() + t, max.Y() + t, min.Z()}},
		Box{Min: mgl64.Vec3{min.X() - t, min.Y() - t, max.Z()}, Max: mgl64.Vec3{max.X() + t, max.Y() + t, max.Z() + t}},
		// Walls along X.
		Box{Min: mgl64.Vec3{min.X() - t, min.Y() - t, min.Z()}, Max: mgl64.Vec3{min.X(), max.Y() + t, max.Z()}},
		Box{Min: mgl64.Vec3{max.X(), min.Y() - t, min.Z()}, Max: mgl64.Vec3{max.X() + t, max.Y() + t, max.Z()}},
		// Walls along Y.
		Box{Min: mgl64.Vec3{min.X(), min.Y() - t, min.Z()}, Max: mgl64.Vec3{max.X(), min.Y(), max.Z()}},
		Box{Min: mgl64.Vec3{min.X(), max.Y(), min.Z()}, Max: mgl64.Vec3{max.X(), max.Y() + t, max.Z()}},
	)
}
