package entity

import (
	"fmt"

	"github.com/milk9111/solarsystem/ecs"
	"github.com/milk9111/solarsystem/ecs/component"
	"github.com/milk9111/solarsystem/prefabs"
)

// NewLights creates the ambient light and the point light at the sun.
func NewLights(w *ecs.World, spec *prefabs.SolarSystemSpec) (ambient, point ecs.Entity, err error) {
	ambientColor, err := prefabs.ParseColor(spec.AmbientLight.Color)
	if err != nil {
		return 0, 0, fmt.Errorf("lights: ambient: %w", err)
	}
	pointColor, err := prefabs.ParseColor(spec.PointLight.Color)
	if err != nil {
		return 0, 0, fmt.Errorf("lights: point: %w", err)
	}

	ambient = ecs.CreateEntity(w)
	if err := ecs.Add(w, ambient, component.AmbientLightComponent.Kind(), &component.AmbientLight{Color: ambientColor}); err != nil {
		return 0, 0, fmt.Errorf("lights: add ambient: %w", err)
	}

	decay := spec.PointLight.Decay
	if decay == 0 {
		decay = 2
	}
	point = ecs.CreateEntity(w)
	if err := addTransform(w, point, component.NewTransform(vec3(spec.PointLight.Position))); err != nil {
		return 0, 0, fmt.Errorf("lights: add point transform: %w", err)
	}
	if err := ecs.Add(w, point, component.PointLightComponent.Kind(), &component.PointLight{
		Color:     pointColor,
		Intensity: float32(spec.PointLight.Intensity),
		Range:     float32(spec.PointLight.Range),
		Decay:     float32(decay),
	}); err != nil {
		return 0, 0, fmt.Errorf("lights: add point light: %w", err)
	}

	return ambient, point, nil
}
