package system

import (
	"github.com/milk9111/solarsystem/ecs"
	"github.com/milk9111/solarsystem/ecs/component"
)

// OrbitSystem turns every pivot about its own Y axis by its base rate plus
// the orbit slider, carrying its children around the origin.
type OrbitSystem struct {
	scripts *MotionScripts
}

func NewOrbitSystem(scripts *MotionScripts) *OrbitSystem {
	return &OrbitSystem{scripts: scripts}
}

func (o *OrbitSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	speeds, clock := controllerState(w)

	ecs.ForEach2(w, component.TransformComponent.Kind(), component.OrbitComponent.Kind(), func(e ecs.Entity, t *component.Transform, orbit *component.Orbit) {
		delta := orbit.Base + speeds.OrbitSpeed
		if script, ok := ecs.Get(w, e, component.MotionScriptComponent.Kind()); ok && script.Target == component.MotionOrbit {
			delta = o.scripts.increment(script, clock.Frame, orbit.Base, speeds.OrbitSpeed, delta)
		}
		t.RotateY(float32(delta))
		orbit.Angle += delta
	})
}
