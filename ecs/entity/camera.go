package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/solarsystem/ecs"
	"github.com/milk9111/solarsystem/ecs/component"
	"github.com/milk9111/solarsystem/prefabs"
)

const defaultAspect = 16.0 / 9.0

func NewCamera(w *ecs.World, spec *prefabs.SolarSystemSpec) (ecs.Entity, error) {
	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add camera tag: %w", err)
	}

	if err := addTransform(w, camera, component.NewTransform(vec3(spec.Camera.Position))); err != nil {
		return 0, fmt.Errorf("camera: add transform: %w", err)
	}

	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{
		FOV:    float32(spec.Camera.FOV),
		Near:   float32(spec.Camera.Near),
		Far:    float32(spec.Camera.Far),
		Aspect: defaultAspect,
		Up:     mgl32.Vec3{0, 1, 0},
		Target: vec3(spec.Camera.Target),
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}

	// Zero speeds in the catalogue fall back to 1.
	rotate := spec.Controls.RotateSpeed
	if rotate == 0 {
		rotate = 1
	}
	zoom := spec.Controls.ZoomSpeed
	if zoom == 0 {
		zoom = 1
	}
	pan := spec.Controls.PanSpeed
	if pan == 0 {
		pan = 1
	}
	if err := ecs.Add(w, camera, component.OrbitControlsComponent.Kind(), &component.OrbitControls{
		Enabled:     true,
		RotateSpeed: float32(rotate),
		ZoomSpeed:   float32(zoom),
		PanSpeed:    float32(pan),
		MinDistance: float32(spec.Controls.MinDistance),
		MaxDistance: float32(spec.Controls.MaxDistance),
	}); err != nil {
		return 0, fmt.Errorf("camera: add orbit controls: %w", err)
	}

	return camera, nil
}
