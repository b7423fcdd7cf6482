package system

import (
	"github.com/milk9111/solarsystem/ecs"
	"github.com/milk9111/solarsystem/ecs/component"
)

// SpinSystem turns every spinning node about its own Y axis by its base rate
// plus, unless it is the sun, the rotation slider.
type SpinSystem struct {
	scripts *MotionScripts
}

func NewSpinSystem(scripts *MotionScripts) *SpinSystem {
	return &SpinSystem{scripts: scripts}
}

func (s *SpinSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	speeds, clock := controllerState(w)

	ecs.ForEach2(w, component.TransformComponent.Kind(), component.SpinComponent.Kind(), func(e ecs.Entity, t *component.Transform, spin *component.Spin) {
		slider := 0.0
		if spin.FollowSlider {
			slider = speeds.RotationSpeed
		}
		delta := spin.Base + slider
		if script, ok := ecs.Get(w, e, component.MotionScriptComponent.Kind()); ok && script.Target == component.MotionSpin {
			delta = s.scripts.increment(script, clock.Frame, spin.Base, slider, delta)
		}
		t.RotateY(float32(delta))
		spin.Angle += delta
	})
}

// controllerState returns the slider values and frame clock, or zero values
// when the scene has no controller.
func controllerState(w *ecs.World) (component.Speeds, component.Clock) {
	e, ok := w.First(component.ControllerTagComponent.Kind())
	if !ok {
		return component.Speeds{}, component.Clock{}
	}
	var speeds component.Speeds
	var clock component.Clock
	if s, ok := ecs.Get(w, e, component.SpeedsComponent.Kind()); ok {
		speeds = *s
	}
	if c, ok := ecs.Get(w, e, component.ClockComponent.Kind()); ok {
		clock = *c
	}
	return speeds, clock
}
