package ecs

import (
	"fmt"

	"github.com/milk9111/solarsystem/ecs/component"
)

// SetParent attaches child under parent. A zero parent makes child a root.
func SetParent(w *World, child, parent Entity) error {
	if w == nil || !w.entities.isAlive(child) {
		return component.ErrEntityNotAlive
	}
	if parent == 0 {
		w.detach(child)
		return nil
	}
	if !w.entities.isAlive(parent) {
		return component.ErrEntityNotAlive
	}
	for p := parent; p != 0; p = w.parents[p] {
		if p == child {
			return fmt.Errorf("%w: %v under %v", component.ErrHierarchyCycle, child, parent)
		}
	}
	w.detach(child)
	w.parents[child] = parent
	w.children[parent] = append(w.children[parent], child)
	return nil
}

// Parent returns the parent of e, if any.
func Parent(w *World, e Entity) (Entity, bool) {
	if w == nil {
		return 0, false
	}
	p, ok := w.parents[e]
	return p, ok
}

// Children returns the direct children of e in attach order.
func Children(w *World, e Entity) []Entity {
	if w == nil {
		return nil
	}
	return append([]Entity(nil), w.children[e]...)
}

// Roots returns live entities without a parent, in id order.
func Roots(w *World) []Entity {
	if w == nil {
		return nil
	}
	var out []Entity
	for _, e := range w.entities.entities() {
		if _, ok := w.parents[e]; !ok {
			out = append(out, e)
		}
	}
	return out
}

func (w *World) detach(child Entity) {
	parent, ok := w.parents[child]
	if !ok {
		return
	}
	delete(w.parents, child)
	siblings := w.children[parent]
	for i, c := range siblings {
		if c == child {
			w.children[parent] = append(siblings[:i:i], siblings[i+1:]...)
			break
		}
	}
	if len(w.children[parent]) == 0 {
		delete(w.children, parent)
	}
}
