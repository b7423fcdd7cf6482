package system

import (
	"errors"
	"testing"

	"github.com/milk9111/solarsystem/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type fakeWriter struct {
	texts []string
	err   error
}

func (f *fakeWriter) WriteText(text string) error {
	if f.err != nil {
		return f.err
	}
	f.texts = append(f.texts, text)
	return nil
}

func TestCameraPoseRoundTripsAsCatalogueCamera(t *testing.T) {
	w, _ := buildScene(t)

	text, err := CameraPose(w)
	require.NoError(t, err)

	var pose struct {
		Camera prefabs.CameraSpec `yaml:"camera"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(text), &pose))
	assert.Equal(t, prefabs.Vec3Spec{-90, 140, 140}, pose.Camera.Position)
	assert.Equal(t, prefabs.Vec3Spec{0, 20, 20}, pose.Camera.Target)
	assert.Equal(t, 0.1, pose.Camera.Near)
	assert.Equal(t, 75.0, pose.Camera.FOV)
}

func TestCameraPoseCopiesOnKey(t *testing.T) {
	w, s := buildScene(t)
	out := &fakeWriter{}
	sys := NewCameraPoseSystemWithWriter(out)

	sys.Update(w)
	assert.Empty(t, out.texts)

	inputOf(t, w, s).CopyPose = true
	sys.Update(w)
	require.Len(t, out.texts, 1)
	assert.Contains(t, out.texts[0], "target:")

	out.err = errors.New("no clipboard")
	sys.Update(w)
	assert.Len(t, out.texts, 1)
}
