package system

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/solarsystem/ecs"
	"github.com/milk9111/solarsystem/ecs/component"
)

// TransformSystem composes world matrices from the root down. Nodes without a
// WorldTransform still pass their matrix on to children.
type TransformSystem struct{}

func NewTransformSystem() *TransformSystem {
	return &TransformSystem{}
}

func (ts *TransformSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	for _, root := range ecs.Roots(w) {
		ts.walk(w, root, mgl32.Ident4())
	}
}

func (ts *TransformSystem) walk(w *ecs.World, e ecs.Entity, parent mgl32.Mat4) {
	world := parent
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		world = parent.Mul4(t.Matrix())
		if wt, ok := ecs.Get(w, e, component.WorldTransformComponent.Kind()); ok {
			wt.Matrix = world
		}
	}
	for _, child := range ecs.Children(w, e) {
		ts.walk(w, child, world)
	}
}
