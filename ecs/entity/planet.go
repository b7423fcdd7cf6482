package entity

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/solarsystem/ecs"
	"github.com/milk9111/solarsystem/ecs/component"
	"github.com/milk9111/solarsystem/geom"
	"github.com/milk9111/solarsystem/prefabs"
)

// PlanetRecord holds the scene nodes created for one body. Ring is zero
// when the body has none.
type PlanetRecord struct {
	Body  ecs.Entity
	Pivot ecs.Entity
	Ring  ecs.Entity
}

// NewPlanet builds a body mesh under an orbit pivot at the origin. The mesh
// sits at the catalogue position; rotating the pivot carries it around the
// sun. A ring, when present, is a sibling of the mesh under the same pivot,
// laid flat by a -π/2 turn about X.
func NewPlanet(w *ecs.World, spec prefabs.BodySpec, segments prefabs.SegmentsSpec) (PlanetRecord, error) {
	geometry, err := geom.Sphere(float32(spec.Radius), segments.Width, segments.Height)
	if err != nil {
		return PlanetRecord{}, fmt.Errorf("planet %s: geometry: %w", spec.Name, err)
	}
	var ringGeometry *geom.Geometry
	if spec.Ring != nil {
		ringGeometry, err = geom.Ring(float32(spec.Ring.InnerRadius), float32(spec.Ring.OuterRadius), segments.Ring)
		if err != nil {
			return PlanetRecord{}, fmt.Errorf("planet %s: ring geometry: %w", spec.Name, err)
		}
	}

	var rec PlanetRecord
	fail := func(step string, err error) (PlanetRecord, error) {
		for _, e := range []ecs.Entity{rec.Ring, rec.Body, rec.Pivot} {
			if e.Valid() {
				ecs.DestroyEntity(w, e)
			}
		}
		return PlanetRecord{}, fmt.Errorf("planet %s: %s: %w", spec.Name, step, err)
	}

	pos := vec3(spec.Position)

	rec.Pivot = ecs.CreateEntity(w)
	if err := addTransform(w, rec.Pivot, component.NewTransform(mgl32.Vec3{})); err != nil {
		return fail("add pivot transform", err)
	}
	if err := ecs.Add(w, rec.Pivot, component.PivotComponent.Kind(), &component.Pivot{BodyName: spec.Name}); err != nil {
		return fail("add pivot", err)
	}
	if err := ecs.Add(w, rec.Pivot, component.OrbitComponent.Kind(), &component.Orbit{Base: spec.Orbit}); err != nil {
		return fail("add orbit", err)
	}

	rec.Body = ecs.CreateEntity(w)
	if err := addTransform(w, rec.Body, component.NewTransform(pos)); err != nil {
		return fail("add body transform", err)
	}
	if err := ecs.Add(w, rec.Body, component.BodyComponent.Kind(), &component.Body{
		Name:      spec.Name,
		Radius:    float32(spec.Radius),
		Distance:  pos,
		Focusable: spec.Focus,
	}); err != nil {
		return fail("add body", err)
	}
	key, tex := loadTexture(spec.Name, spec.Texture, spec.Color)
	if err := ecs.Add(w, rec.Body, component.MeshComponent.Kind(), &component.Mesh{
		Geometry: geometry,
		Material: component.Material{
			TextureKey: key,
			Texture:    tex,
			Color:      catalogueColor(spec.Color),
			Shading:    component.ShadingStandard,
		},
	}); err != nil {
		return fail("add mesh", err)
	}
	if spec.Spin != nil {
		if err := ecs.Add(w, rec.Body, component.SpinComponent.Kind(), &component.Spin{
			Base:         *spec.Spin,
			FollowSlider: true,
		}); err != nil {
			return fail("add spin", err)
		}
	}
	if err := ecs.SetParent(w, rec.Body, rec.Pivot); err != nil {
		return fail("attach body", err)
	}

	if spec.Ring != nil {
		rec.Ring = ecs.CreateEntity(w)
		transform := component.NewTransform(pos)
		transform.RotateX(-0.5 * math.Pi)
		if err := addTransform(w, rec.Ring, transform); err != nil {
			return fail("add ring transform", err)
		}
		if err := ecs.Add(w, rec.Ring, component.RingComponent.Kind(), &component.Ring{
			BodyName:    spec.Name,
			InnerRadius: float32(spec.Ring.InnerRadius),
			OuterRadius: float32(spec.Ring.OuterRadius),
		}); err != nil {
			return fail("add ring", err)
		}
		ringKey, ringTex := loadRingTexture(spec.Name, spec.Ring)
		if err := ecs.Add(w, rec.Ring, component.MeshComponent.Kind(), &component.Mesh{
			Geometry: ringGeometry,
			Material: component.Material{
				TextureKey:  ringKey,
				Texture:     ringTex,
				Color:       catalogueColor(spec.Ring.Color),
				Shading:     component.ShadingStandard,
				DoubleSided: true,
			},
		}); err != nil {
			return fail("add ring mesh", err)
		}
		if err := ecs.SetParent(w, rec.Ring, rec.Pivot); err != nil {
			return fail("attach ring", err)
		}
	}

	if spec.Script != "" {
		target, owner := component.MotionSpin, rec.Body
		if spec.ScriptTarget == "orbit" {
			target, owner = component.MotionOrbit, rec.Pivot
		}
		if err := ecs.Add(w, owner, component.MotionScriptComponent.Kind(), &component.MotionScript{
			Path:   spec.Script,
			Target: target,
		}); err != nil {
			return fail("add motion script", err)
		}
	}

	return rec, nil
}
