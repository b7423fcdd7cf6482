package component

import "github.com/go-gl/mathgl/mgl32"

type Camera struct {
	FOV    float32
	Near   float32
	Far    float32
	Aspect float32
	Up     mgl32.Vec3
	// Target is the point the camera aims at after every update.
	Target mgl32.Vec3
}

var CameraComponent = NewComponent[Camera]()

type OrbitControls struct {
	Enabled     bool
	RotateSpeed float32
	ZoomSpeed   float32
	PanSpeed    float32
	MinDistance float32
	MaxDistance float32
}

var OrbitControlsComponent = NewComponent[OrbitControls]()

// CameraFocus is a one-shot request to move the camera.
type CameraFocus struct {
	BodyName string
	Position mgl32.Vec3
}

var CameraFocusComponent = NewComponent[CameraFocus]()
