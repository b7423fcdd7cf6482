package system

import (
	"github.com/milk9111/solarsystem/ecs"
	"github.com/milk9111/solarsystem/ecs/component"
)

// ClockSystem advances the frame counter once per update. It runs last so
// every other system sees the same frame number.
type ClockSystem struct{}

func NewClockSystem() *ClockSystem {
	return &ClockSystem{}
}

func (c *ClockSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.ClockComponent.Kind(), func(_ ecs.Entity, clock *component.Clock) {
		clock.Frame++
	})
}
