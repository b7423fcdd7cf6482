package entity

import (
	"github.com/milk9111/solarsystem/ecs"
	"github.com/milk9111/solarsystem/ecs/component"
)

// addTransform attaches t and a WorldTransform seeded from it. The transform
// system only refreshes nodes that carry both.
func addTransform(w *ecs.World, e ecs.Entity, t *component.Transform) error {
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), t); err != nil {
		return err
	}
	return ecs.Add(w, e, component.WorldTransformComponent.Kind(), &component.WorldTransform{Matrix: t.Matrix()})
}
