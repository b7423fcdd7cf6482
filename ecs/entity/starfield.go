package entity

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/solarsystem/ecs"
	"github.com/milk9111/solarsystem/ecs/component"
	"github.com/milk9111/solarsystem/prefabs"
)

// NewStarfield scatters unit directions uniformly over the sphere.
func NewStarfield(w *ecs.World, spec prefabs.StarfieldSpec) (ecs.Entity, error) {
	count := spec.Count
	if count < 0 {
		count = 0
	}
	size := float32(spec.Size)
	if size <= 0 {
		size = 1
	}

	rng := rand.New(rand.NewPCG(uint64(spec.Seed), 0x5eed))
	dirs := make([]mgl32.Vec3, count)
	brightness := make([]float32, count)
	for i := range dirs {
		z := rng.Float64()*2 - 1
		phi := rng.Float64() * 2 * math.Pi
		r := math.Sqrt(1 - z*z)
		dirs[i] = mgl32.Vec3{float32(r * math.Cos(phi)), float32(z), float32(r * math.Sin(phi))}
		brightness[i] = float32(0.35 + 0.65*rng.Float64())
	}

	stars := ecs.CreateEntity(w)
	if err := ecs.Add(w, stars, component.StarfieldComponent.Kind(), &component.Starfield{
		Directions: dirs,
		Brightness: brightness,
		Size:       size,
	}); err != nil {
		return 0, fmt.Errorf("starfield: add starfield: %w", err)
	}
	return stars, nil
}
