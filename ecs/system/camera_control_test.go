package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/solarsystem/ecs"
	"github.com/milk9111/solarsystem/ecs/component"
	"github.com/milk9111/solarsystem/ecs/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cameraState(t *testing.T, w *ecs.World, s *entity.SolarSystem) (*component.Transform, *component.Camera) {
	t.Helper()
	tr, ok := ecs.Get(w, s.Camera, component.TransformComponent.Kind())
	require.True(t, ok)
	cam, ok := ecs.Get(w, s.Camera, component.CameraComponent.Kind())
	require.True(t, ok)
	return tr, cam
}

func TestFocusMovesCameraAndKeepsTarget(t *testing.T) {
	tests := []struct {
		body string
		want mgl32.Vec3
	}{
		{body: "mercury", want: mgl32.Vec3{25, 0, 0}},
		{body: "venus", want: mgl32.Vec3{38, 0, 0}},
		{body: "earth", want: mgl32.Vec3{55, 0, 0}},
		{body: "mars", want: mgl32.Vec3{70, 0, 0}},
		{body: "jupiter", want: mgl32.Vec3{90, 0, 0}},
		{body: "saturn", want: mgl32.Vec3{120, 0, 0}},
		{body: "uranus", want: mgl32.Vec3{145, 0, 0}},
		{body: "neptune", want: mgl32.Vec3{160, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			w, s := buildScene(t)
			require.NoError(t, entity.FocusCamera(w, tt.body))

			NewCameraControlSystem().Update(w)

			tr, cam := cameraState(t, w, s)
			assert.Equal(t, tt.want, tr.Position)
			assert.Equal(t, mgl32.Vec3{0, 20, 20}, cam.Target)
			assert.False(t, ecs.Has(w, s.Camera, component.CameraFocusComponent.Kind()), "focus request is consumed")
		})
	}
}

func TestOrbitControlsWheelDolly(t *testing.T) {
	w, s := buildScene(t)
	tr, cam := cameraState(t, w, s)
	before := tr.Position.Sub(cam.Target).Len()

	inputOf(t, w, s).Wheel = 1
	NewCameraControlSystem().Update(w)

	after := tr.Position.Sub(cam.Target).Len()
	assert.InDelta(t, before*0.95, after, 1e-3)

	inputOf(t, w, s).Wheel = -500
	NewCameraControlSystem().Update(w)
	assert.InDelta(t, 800, tr.Position.Sub(cam.Target).Len(), 1e-2, "clamped to max distance")

	inputOf(t, w, s).Wheel = 500
	NewCameraControlSystem().Update(w)
	assert.InDelta(t, 5, tr.Position.Sub(cam.Target).Len(), 1e-3, "clamped to min distance")
}

func TestOrbitControlsRotateKeepsDistance(t *testing.T) {
	w, s := buildScene(t)
	tr, cam := cameraState(t, w, s)
	start := tr.Position
	before := start.Sub(cam.Target).Len()

	input := inputOf(t, w, s)
	input.Rotating = true
	input.DragDX, input.DragDY = 40, -15
	NewCameraControlSystem().Update(w)

	assert.NotEqual(t, start, tr.Position)
	assert.InDelta(t, before, tr.Position.Sub(cam.Target).Len(), 1e-2)
	assert.Equal(t, mgl32.Vec3{0, 20, 20}, cam.Target)
}

func TestOrbitControlsPanMovesTarget(t *testing.T) {
	w, s := buildScene(t)
	tr, cam := cameraState(t, w, s)
	offset := tr.Position.Sub(cam.Target)

	input := inputOf(t, w, s)
	input.Panning = true
	input.DragDX = 30
	NewCameraControlSystem().Update(w)

	assert.NotEqual(t, mgl32.Vec3{0, 20, 20}, cam.Target)
	assert.True(t, tr.Position.Sub(cam.Target).ApproxEqualThreshold(offset, 1e-3), "pan keeps the view direction")
}

func TestOrbitControlsDisabled(t *testing.T) {
	w, s := buildScene(t)
	controls, ok := ecs.Get(w, s.Camera, component.OrbitControlsComponent.Kind())
	require.True(t, ok)
	controls.Enabled = false

	tr, _ := cameraState(t, w, s)
	start := tr.Position
	inputOf(t, w, s).Wheel = 3
	NewCameraControlSystem().Update(w)
	assert.Equal(t, start, tr.Position)
}
