package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/solarsystem/ecs"
	"github.com/milk9111/solarsystem/ecs/component"
	"github.com/milk9111/solarsystem/geom"
	"github.com/milk9111/solarsystem/prefabs"
)

// NewSun creates the unlit sun at the origin. Its spin ignores the slider.
func NewSun(w *ecs.World, spec prefabs.SunSpec, segments prefabs.SegmentsSpec) (ecs.Entity, error) {
	geometry, err := geom.Sphere(float32(spec.Radius), segments.Width, segments.Height)
	if err != nil {
		return 0, fmt.Errorf("sun: geometry: %w", err)
	}
	key, tex := loadTexture(spec.Name, spec.Texture, spec.Color)

	sun := ecs.CreateEntity(w)
	fail := func(step string, err error) (ecs.Entity, error) {
		ecs.DestroyEntity(w, sun)
		return 0, fmt.Errorf("sun: %s: %w", step, err)
	}

	if err := ecs.Add(w, sun, component.SunTagComponent.Kind(), &component.SunTag{}); err != nil {
		return fail("add sun tag", err)
	}
	if err := addTransform(w, sun, component.NewTransform(mgl32.Vec3{})); err != nil {
		return fail("add transform", err)
	}
	if err := ecs.Add(w, sun, component.BodyComponent.Kind(), &component.Body{
		Name:   spec.Name,
		Radius: float32(spec.Radius),
	}); err != nil {
		return fail("add body", err)
	}
	if err := ecs.Add(w, sun, component.MeshComponent.Kind(), &component.Mesh{
		Geometry: geometry,
		Material: component.Material{
			TextureKey: key,
			Texture:    tex,
			Color:      catalogueColor(spec.Color),
			Shading:    component.ShadingBasic,
		},
	}); err != nil {
		return fail("add mesh", err)
	}
	if err := ecs.Add(w, sun, component.SpinComponent.Kind(), &component.Spin{Base: spec.Spin}); err != nil {
		return fail("add spin", err)
	}
	return sun, nil
}
