package system

import (
	"log/slog"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/solarsystem/common"
	"github.com/milk9111/solarsystem/ecs"
	"github.com/milk9111/solarsystem/ecs/component"
)

const (
	defaultScreenHeight = 720
	minPolar            = 1e-4
)

// CameraControlSystem applies focus requests and orbit-control input. The
// camera always aims at Camera.Target; the render system builds the view
// from position and target.
type CameraControlSystem struct {
	// ScreenHeight scales drag distances to angles.
	ScreenHeight float64
}

func NewCameraControlSystem() *CameraControlSystem {
	return &CameraControlSystem{ScreenHeight: defaultScreenHeight}
}

func (cs *CameraControlSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	camEntity, ok := w.First(component.CameraTagComponent.Kind())
	if !ok {
		return
	}
	transform, ok := ecs.Get(w, camEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}
	camera, ok := ecs.Get(w, camEntity, component.CameraComponent.Kind())
	if !ok {
		return
	}

	if focus, ok := ecs.Get(w, camEntity, component.CameraFocusComponent.Kind()); ok {
		transform.Position = focus.Position
		slog.Debug("camera focus", "body", focus.BodyName, "position", focus.Position)
		ecs.Remove(w, camEntity, component.CameraFocusComponent.Kind())
	}

	controls, ok := ecs.Get(w, camEntity, component.OrbitControlsComponent.Kind())
	if !ok || !controls.Enabled {
		return
	}

	var input *component.Input
	if e, ok := w.First(component.InputComponent.Kind()); ok {
		input, _ = ecs.Get(w, e, component.InputComponent.Kind())
	}
	if input == nil {
		input = &component.Input{}
	}

	height := cs.ScreenHeight
	if height <= 0 {
		height = defaultScreenHeight
	}

	offset := transform.Position.Sub(camera.Target)
	radius := float64(offset.Len())
	changed := false

	if input.Rotating && (input.DragDX != 0 || input.DragDY != 0) && radius > 0 {
		theta := math.Atan2(float64(offset.X()), float64(offset.Z()))
		phi := math.Acos(common.Clamp(float64(offset.Y())/radius, -1, 1))
		theta -= 2 * math.Pi * input.DragDX / height * float64(controls.RotateSpeed)
		phi -= 2 * math.Pi * input.DragDY / height * float64(controls.RotateSpeed)
		phi = common.Clamp(phi, minPolar, math.Pi-minPolar)
		offset = mgl32.Vec3{
			float32(radius * math.Sin(phi) * math.Sin(theta)),
			float32(radius * math.Cos(phi)),
			float32(radius * math.Sin(phi) * math.Cos(theta)),
		}
		changed = true
	}

	if input.Panning && (input.DragDX != 0 || input.DragDY != 0) && radius > 0 {
		forward := offset.Mul(-1).Normalize()
		right := forward.Cross(camera.Up).Normalize()
		up := right.Cross(forward)
		targetDistance := radius * math.Tan(float64(camera.FOV)/2*math.Pi/180)
		panX := 2 * input.DragDX * targetDistance / height * float64(controls.PanSpeed)
		panY := 2 * input.DragDY * targetDistance / height * float64(controls.PanSpeed)
		move := right.Mul(float32(-panX)).Add(up.Mul(float32(panY)))
		camera.Target = camera.Target.Add(move)
		transform.Position = transform.Position.Add(move)
	}

	if input.Wheel != 0 && radius > 0 {
		scale := math.Pow(0.95, float64(controls.ZoomSpeed)*input.Wheel)
		offset = offset.Mul(float32(scale))
		changed = true
	}

	dist := float64(offset.Len())
	if controls.MinDistance > 0 && dist < float64(controls.MinDistance) && dist > 0 {
		offset = offset.Mul(controls.MinDistance / float32(dist))
		changed = true
	}
	if controls.MaxDistance > 0 && dist > float64(controls.MaxDistance) {
		offset = offset.Mul(controls.MaxDistance / float32(dist))
		changed = true
	}

	if changed {
		transform.Position = camera.Target.Add(offset)
	}
}
