package behavior

import "github.com/go-gl/mathgl/mgl64"

// Transform is the actor transform sink the engine drives. The host owns the
// body representation; the engine only reads and writes pose through this.
type Transform interface {
	Position() mgl64.Vec3
	SetPosition(p mgl64.Vec3)
	Orientation() mgl64.Quat
	SetOrientation(q mgl64.Quat)
}

// ForwardOf returns the body-space forward axis rotated into world space.
func ForwardOf(q mgl64.Quat) mgl64.Vec3 {
	return q.Rotate(worldForward)
}

// UpOf returns the body-space up axis rotated into world space.
func UpOf(q mgl64.Quat) mgl64.Vec3 {
	return q.Rotate(worldUp)
}

// RightOf returns the body-space right axis rotated into world space.
func RightOf(q mgl64.Quat) mgl64.Vec3 {
	return q.Rotate(mgl64.Vec3{0, -1, 0})
}

// Body is a plain value Transform for hosts that keep pose in memory.
type Body struct {
	Pos mgl64.Vec3
	Orn mgl64.Quat
}

// NewBody creates a body at p with identity orientation.
func NewBody(p mgl64.Vec3) *Body {
	return &Body{Pos: p, Orn: mgl64.QuatIdent()}
}

func (b *Body) Position() mgl64.Vec3        { return b.Pos }
func (b *Body) SetPosition(p mgl64.Vec3)    { b.Pos = p }
func (b *Body) Orientation() mgl64.Quat     { return b.Orn }
func (b *Body) SetOrientation(q mgl64.Quat) { b.Orn = q }
