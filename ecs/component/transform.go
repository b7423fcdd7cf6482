package component

import "github.com/go-gl/mathgl/mgl32"

// Transform is the local pose of a scene node relative to its parent.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
}

// NewTransform returns an identity transform placed at pos.
func NewTransform(pos mgl32.Vec3) *Transform {
	return &Transform{
		Position: pos,
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

// RotateY turns the node about its own Y axis.
func (t *Transform) RotateY(angle float32) {
	t.Rotation = t.Rotation.Mul(mgl32.QuatRotate(angle, mgl32.Vec3{0, 1, 0})).Normalize()
}

// RotateX turns the node about its own X axis.
func (t *Transform) RotateX(angle float32) {
	t.Rotation = t.Rotation.Mul(mgl32.QuatRotate(angle, mgl32.Vec3{1, 0, 0})).Normalize()
}

// Matrix composes translation, rotation and scale.
func (t *Transform) Matrix() mgl32.Mat4 {
	scale := t.Scale
	if scale == (mgl32.Vec3{}) {
		scale = mgl32.Vec3{1, 1, 1}
	}
	rot := t.Rotation
	if rot == (mgl32.Quat{}) {
		rot = mgl32.QuatIdent()
	}
	return mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z()).
		Mul4(rot.Mat4()).
		Mul4(mgl32.Scale3D(scale.X(), scale.Y(), scale.Z()))
}

var TransformComponent = NewComponent[Transform]()

// WorldTransform is the composed parent-to-root matrix, refreshed every frame.
type WorldTransform struct {
	Matrix mgl32.Mat4
}

// Position returns the translation column.
func (w *WorldTransform) Position() mgl32.Vec3 {
	return w.Matrix.Col(3).Vec3()
}

var WorldTransformComponent = NewComponent[WorldTransform]()
