// Package components defines the ECS components used by the headless
// simulation host.
package components

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/pthm-cable/skitter/behavior"
)

// Position is an entity's world position, synced from its body each tick.
type Position struct {
	Pos mgl64.Vec3
}

// Orientation is an entity's world orientation, synced from its body each
// tick.
type Orientation struct {
	Orn mgl64.Quat
}

// Agent ties an entity to its behavior engine. Body is the mutable transform
// the engine drives; Position and Orientation mirror it for queries.
type Agent struct {
	ID         uint32
	Body       *behavior.Body
	Controller *behavior.Controller
}
