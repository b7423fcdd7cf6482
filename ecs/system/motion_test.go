package system

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/solarsystem/ecs"
	"github.com/milk9111/solarsystem/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpinAddsRotationSlider(t *testing.T) {
	w, s := buildScene(t)
	speeds := speedsOf(t, w, s)
	speeds.RotationSpeed = 0.02

	spin := NewSpinSystem(NewMotionScripts())
	spin.Update(w)
	spin.Update(w)

	tests := []struct {
		name string
		e    ecs.Entity
		want float64
	}{
		{name: "sun ignores slider", e: s.Sun, want: 2 * 0.002},
		{name: "mercury", e: s.Planets["mercury"].Body, want: 2 * (0.001 + 0.02)},
		{name: "earth", e: s.Planets["earth"].Body, want: 2 * (0.012 + 0.02)},
		{name: "jupiter", e: s.Planets["jupiter"].Body, want: 2 * (0.04 + 0.02)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sp, ok := ecs.Get(w, tt.e, component.SpinComponent.Kind())
			require.True(t, ok)
			assert.InDelta(t, tt.want, sp.Angle, 1e-9)

			tr, ok := ecs.Get(w, tt.e, component.TransformComponent.Kind())
			require.True(t, ok)
			want := mgl32.QuatRotate(float32(tt.want), mgl32.Vec3{0, 1, 0})
			assert.True(t, tr.Rotation.ApproxEqualThreshold(want, 1e-5), "rotation %v want %v", tr.Rotation, want)
		})
	}

	assert.False(t, ecs.Has(w, s.Planets["moon"].Body, component.SpinComponent.Kind()), "moon never spins")
	moon, _ := ecs.Get(w, s.Planets["moon"].Body, component.TransformComponent.Kind())
	assert.Equal(t, mgl32.QuatIdent(), moon.Rotation)
}

func TestOrbitAddsOrbitSlider(t *testing.T) {
	w, s := buildScene(t)
	speedsOf(t, w, s).OrbitSpeed = 0.01

	NewOrbitSystem(NewMotionScripts()).Update(w)

	tests := []struct {
		name string
		want float64
	}{
		{name: "mercury", want: 0.001 + 0.01},
		{name: "earth", want: 0.0012 + 0.01},
		{name: "moon", want: 0.0012 + 0.01},
		{name: "neptune", want: 0.002 + 0.01},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orbit, ok := ecs.Get(w, s.Planets[tt.name].Pivot, component.OrbitComponent.Kind())
			require.True(t, ok)
			assert.InDelta(t, tt.want, orbit.Angle, 1e-9)
		})
	}

	sun, _ := ecs.Get(w, s.Sun, component.TransformComponent.Kind())
	assert.Equal(t, mgl32.QuatIdent(), sun.Rotation, "orbit leaves the sun alone")
}

func TestTransformCarriesBodiesWithPivot(t *testing.T) {
	w, s := buildScene(t)

	saturn := s.Planets["saturn"]
	pivot, ok := ecs.Get(w, saturn.Pivot, component.TransformComponent.Kind())
	require.True(t, ok)
	pivot.RotateY(math.Pi / 2)

	NewTransformSystem().Update(w)

	body, ok := ecs.Get(w, saturn.Body, component.WorldTransformComponent.Kind())
	require.True(t, ok)
	assert.True(t, body.Position().ApproxEqualThreshold(mgl32.Vec3{0, 0, -120}, 1e-3), "body at %v", body.Position())

	ring, ok := ecs.Get(w, saturn.Ring, component.WorldTransformComponent.Kind())
	require.True(t, ok)
	assert.True(t, ring.Position().ApproxEqualThreshold(mgl32.Vec3{0, 0, -120}, 1e-3), "ring at %v", ring.Position())

	// The ring lies flat: its local +Z normal points along world +Y.
	normal := ring.Matrix.Mul4x1(mgl32.Vec4{0, 0, 1, 0}).Vec3()
	assert.True(t, normal.ApproxEqualThreshold(mgl32.Vec3{0, 1, 0}, 1e-4), "ring normal %v", normal)

	earth, ok := ecs.Get(w, s.Planets["earth"].Body, component.WorldTransformComponent.Kind())
	require.True(t, ok)
	assert.True(t, earth.Position().ApproxEqualThreshold(mgl32.Vec3{55, 0, 0}, 1e-4))
}

func TestTransformPassesThroughBareNodes(t *testing.T) {
	w := ecs.NewWorld()
	group := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, group, component.TransformComponent.Kind(), component.NewTransform(mgl32.Vec3{10, 0, 0})))
	child := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, child, component.TransformComponent.Kind(), component.NewTransform(mgl32.Vec3{0, 5, 0})))
	require.NoError(t, ecs.Add(w, child, component.WorldTransformComponent.Kind(), &component.WorldTransform{}))
	require.NoError(t, ecs.SetParent(w, child, group))

	require.NotPanics(t, func() { NewTransformSystem().Update(w) })

	assert.False(t, ecs.Has(w, group, component.WorldTransformComponent.Kind()))
	world, ok := ecs.Get(w, child, component.WorldTransformComponent.Kind())
	require.True(t, ok)
	assert.True(t, world.Position().ApproxEqual(mgl32.Vec3{10, 5, 0}), "child at %v", world.Position())
}

func TestClockAdvances(t *testing.T) {
	w, s := buildScene(t)
	clock := NewClockSystem()
	clock.Update(w)
	clock.Update(w)
	c, ok := ecs.Get(w, s.Controller, component.ClockComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, uint64(2), c.Frame)
}

func TestMotionScriptDelta(t *testing.T) {
	scripts := NewMotionScripts()

	got, err := scripts.Delta("wobble.tengo", 0, 0.01, 0.001)
	require.NoError(t, err)
	assert.InDelta(t, 0.011, got, 1e-12)

	got, err = scripts.Delta("scripts/wobble.tengo", 188, 0.01, 0)
	require.NoError(t, err)
	assert.InDelta(t, 0.01*(1+0.5*math.Sin(188.0/120.0)), got, 1e-9)

	_, err = scripts.Delta("missing.tengo", 0, 0, 0)
	assert.Error(t, err)
}

func TestMotionScriptFailureFallsBack(t *testing.T) {
	w, s := buildScene(t)
	earth := s.Planets["earth"].Body
	require.NoError(t, ecs.Add(w, earth, component.MotionScriptComponent.Kind(), &component.MotionScript{
		Path:   "missing.tengo",
		Target: component.MotionSpin,
	}))

	speedsOf(t, w, s).RotationSpeed = 0
	NewSpinSystem(NewMotionScripts()).Update(w)

	spin, _ := ecs.Get(w, earth, component.SpinComponent.Kind())
	assert.InDelta(t, 0.012, spin.Angle, 1e-12)
	script, _ := ecs.Get(w, earth, component.MotionScriptComponent.Kind())
	assert.True(t, script.Failed)
}

func TestMotionScriptDrivesOrbit(t *testing.T) {
	w, s := buildScene(t)
	mars := s.Planets["mars"].Pivot
	require.NoError(t, ecs.Add(w, mars, component.MotionScriptComponent.Kind(), &component.MotionScript{
		Path:   "wobble.tengo",
		Target: component.MotionOrbit,
	}))

	NewOrbitSystem(NewMotionScripts()).Update(w)

	orbit, _ := ecs.Get(w, mars, component.OrbitComponent.Kind())
	// frame 0: sin(0) = 0, so the script returns base + speed.
	assert.InDelta(t, 0.0019, orbit.Angle, 1e-12)
}
