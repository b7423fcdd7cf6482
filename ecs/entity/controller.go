package entity

import (
	"fmt"

	"github.com/milk9111/solarsystem/ecs"
	"github.com/milk9111/solarsystem/ecs/component"
	"github.com/milk9111/solarsystem/prefabs"
)

// NewSpeeds creates the controller entity holding the slider values, the
// frame clock and the per-frame input snapshot.
func NewSpeeds(w *ecs.World, spec prefabs.SpeedsSpec) (ecs.Entity, error) {
	controller := ecs.CreateEntity(w)
	if err := ecs.Add(w, controller, component.ControllerTagComponent.Kind(), &component.ControllerTag{}); err != nil {
		return 0, fmt.Errorf("speeds: add controller tag: %w", err)
	}
	if err := ecs.Add(w, controller, component.SpeedsComponent.Kind(), &component.Speeds{
		RotationSpeed: spec.Rotation,
		OrbitSpeed:    spec.Orbit,
		RotationMax:   spec.RotationMax,
		OrbitMax:      spec.OrbitMax,
		Steps:         spec.Steps,
	}); err != nil {
		return 0, fmt.Errorf("speeds: add speeds: %w", err)
	}
	if err := ecs.Add(w, controller, component.ClockComponent.Kind(), &component.Clock{}); err != nil {
		return 0, fmt.Errorf("speeds: add clock: %w", err)
	}
	if err := ecs.Add(w, controller, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("speeds: add input: %w", err)
	}
	return controller, nil
}
