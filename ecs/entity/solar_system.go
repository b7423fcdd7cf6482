package entity

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/milk9111/solarsystem/ecs"
	"github.com/milk9111/solarsystem/ecs/component"
	"github.com/milk9111/solarsystem/prefabs"
)

var ErrUnknownBody = errors.New("entity: unknown body")

// SolarSystem indexes the entities built from a catalogue.
type SolarSystem struct {
	Camera     ecs.Entity
	Controller ecs.Entity
	Ambient    ecs.Entity
	PointLight ecs.Entity
	Stars      ecs.Entity
	Sun        ecs.Entity
	Planets    map[string]PlanetRecord
	// Order lists planet names in catalogue order.
	Order []string
}

// Focusable returns the names of bodies that get a camera button, in
// catalogue order.
func (s *SolarSystem) Focusable(w *ecs.World) []string {
	var names []string
	for _, name := range s.Order {
		body, ok := ecs.Get(w, s.Planets[name].Body, component.BodyComponent.Kind())
		if ok && body.Focusable {
			names = append(names, name)
		}
	}
	return names
}

// BuildSolarSystem creates the whole scene from a validated catalogue.
func BuildSolarSystem(w *ecs.World, spec *prefabs.SolarSystemSpec) (*SolarSystem, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	s := &SolarSystem{Planets: make(map[string]PlanetRecord, len(spec.Bodies))}
	var err error

	if s.Camera, err = NewCamera(w, spec); err != nil {
		return nil, err
	}
	if s.Ambient, s.PointLight, err = NewLights(w, spec); err != nil {
		return nil, err
	}
	if s.Stars, err = NewStarfield(w, spec.Starfield); err != nil {
		return nil, err
	}
	if s.Controller, err = NewSpeeds(w, spec.Speeds); err != nil {
		return nil, err
	}
	if s.Sun, err = NewSun(w, spec.Sun, spec.Segments); err != nil {
		return nil, err
	}

	for _, body := range spec.Bodies {
		rec, err := NewPlanet(w, body, spec.Segments)
		if err != nil {
			return nil, err
		}
		s.Planets[body.Name] = rec
		s.Order = append(s.Order, body.Name)
	}

	slog.Debug("solar system built", "name", spec.Name, "bodies", len(s.Order), "entities", len(ecs.Entities(w)))
	return s, nil
}

// FocusCamera queues a request to move the camera to a body's catalogue
// position. The camera system consumes it on the next update.
func FocusCamera(w *ecs.World, name string) error {
	var found *component.Body
	ecs.ForEach(w, component.BodyComponent.Kind(), func(_ ecs.Entity, body *component.Body) {
		if found == nil && body.Name == name {
			found = body
		}
	})
	if found == nil {
		return fmt.Errorf("%w: %q", ErrUnknownBody, name)
	}

	camera, ok := w.First(component.CameraTagComponent.Kind())
	if !ok {
		return fmt.Errorf("focus %s: %w", name, component.ErrEntityNotAlive)
	}
	if err := ecs.Add(w, camera, component.CameraFocusComponent.Kind(), &component.CameraFocus{
		BodyName: name,
		Position: found.Distance,
	}); err != nil {
		return fmt.Errorf("focus %s: %w", name, err)
	}
	w.Events().Push(ecs.Event{Type: ecs.EventCameraFocus, Data: name})
	return nil
}

// ApplySpec copies rotation rates and slider ranges from a reloaded
// catalogue onto the live scene. Geometry, textures and the set of bodies
// are fixed at startup; bodies the scene does not know are reported.
func ApplySpec(w *ecs.World, spec *prefabs.SolarSystemSpec) (updated int, err error) {
	if err := spec.Validate(); err != nil {
		return 0, err
	}

	ecs.ForEach2(w, component.SunTagComponent.Kind(), component.SpinComponent.Kind(), func(_ ecs.Entity, _ *component.SunTag, spin *component.Spin) {
		spin.Base = spec.Sun.Spin
		updated++
	})

	known := map[string]bool{}
	ecs.ForEach2(w, component.BodyComponent.Kind(), component.SpinComponent.Kind(), func(e ecs.Entity, body *component.Body, spin *component.Spin) {
		if !spin.FollowSlider {
			return
		}
		b, ok := spec.Body(body.Name)
		if !ok || b.Spin == nil {
			return
		}
		spin.Base = *b.Spin
		updated++
	})
	ecs.ForEach2(w, component.PivotComponent.Kind(), component.OrbitComponent.Kind(), func(e ecs.Entity, pivot *component.Pivot, orbit *component.Orbit) {
		known[pivot.BodyName] = true
		b, ok := spec.Body(pivot.BodyName)
		if !ok {
			return
		}
		orbit.Base = b.Orbit
		updated++
	})

	for _, b := range spec.Bodies {
		if !known[b.Name] {
			slog.Warn("reload: body not in scene, restart to add it", "body", b.Name)
		}
	}

	ecs.ForEach(w, component.SpeedsComponent.Kind(), func(_ ecs.Entity, speeds *component.Speeds) {
		speeds.RotationMax = spec.Speeds.RotationMax
		speeds.OrbitMax = spec.Speeds.OrbitMax
		speeds.Steps = spec.Speeds.Steps
		if speeds.RotationSpeed > speeds.RotationMax {
			speeds.RotationSpeed = speeds.RotationMax
		}
		if speeds.OrbitSpeed > speeds.OrbitMax {
			speeds.OrbitSpeed = speeds.OrbitMax
		}
	})

	w.Events().Push(ecs.Event{Type: ecs.EventSpecReloaded, Data: spec.Name})
	return updated, nil
}
