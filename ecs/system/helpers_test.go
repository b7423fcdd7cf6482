package system

import (
	"testing"

	"github.com/milk9111/solarsystem/ecs"
	"github.com/milk9111/solarsystem/ecs/component"
	"github.com/milk9111/solarsystem/ecs/entity"
	"github.com/milk9111/solarsystem/prefabs"
	"github.com/stretchr/testify/require"
)

func buildScene(t *testing.T) (*ecs.World, *entity.SolarSystem) {
	t.Helper()
	spec, err := prefabs.LoadSolarSystemSpec()
	require.NoError(t, err)
	w := ecs.NewWorld()
	s, err := entity.BuildSolarSystem(w, spec)
	require.NoError(t, err)
	return w, s
}

func speedsOf(t *testing.T, w *ecs.World, s *entity.SolarSystem) *component.Speeds {
	t.Helper()
	speeds, ok := ecs.Get(w, s.Controller, component.SpeedsComponent.Kind())
	require.True(t, ok)
	return speeds
}

func inputOf(t *testing.T, w *ecs.World, s *entity.SolarSystem) *component.Input {
	t.Helper()
	input, ok := ecs.Get(w, s.Controller, component.InputComponent.Kind())
	require.True(t, ok)
	return input
}
