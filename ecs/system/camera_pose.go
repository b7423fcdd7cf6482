package system

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/solarsystem/ecs"
	"github.com/milk9111/solarsystem/ecs/component"
	"github.com/milk9111/solarsystem/prefabs"
	"golang.design/x/clipboard"
	"gopkg.in/yaml.v3"
)

// TextWriter receives the copied camera pose.
type TextWriter interface {
	WriteText(text string) error
}

type systemClipboard struct {
	ready bool
	err   error
}

func (c *systemClipboard) WriteText(text string) error {
	if !c.ready && c.err == nil {
		c.err = clipboard.Init()
		c.ready = c.err == nil
	}
	if c.err != nil {
		return fmt.Errorf("clipboard unavailable: %w", c.err)
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}

// CameraPoseSystem copies the camera position and target as a catalogue
// camera block when the copy key is pressed.
type CameraPoseSystem struct {
	out TextWriter
}

func NewCameraPoseSystem() *CameraPoseSystem {
	return &CameraPoseSystem{out: &systemClipboard{}}
}

func NewCameraPoseSystemWithWriter(out TextWriter) *CameraPoseSystem {
	return &CameraPoseSystem{out: out}
}

func (cp *CameraPoseSystem) Update(w *ecs.World) {
	if w == nil || cp.out == nil {
		return
	}
	inputEntity, ok := w.First(component.InputComponent.Kind())
	if !ok {
		return
	}
	input, ok := ecs.Get(w, inputEntity, component.InputComponent.Kind())
	if !ok || !input.CopyPose {
		return
	}

	text, err := CameraPose(w)
	if err != nil {
		slog.Warn("camera pose", "err", err)
		return
	}
	if err := cp.out.WriteText(text); err != nil {
		slog.Warn("camera pose: copy", "err", err)
		return
	}
	slog.Info("camera pose copied", "pose", text)
}

// CameraPose renders the current camera as YAML in catalogue form.
func CameraPose(w *ecs.World) (string, error) {
	camEntity, ok := w.First(component.CameraTagComponent.Kind())
	if !ok {
		return "", fmt.Errorf("no camera")
	}
	transform, ok := ecs.Get(w, camEntity, component.TransformComponent.Kind())
	if !ok {
		return "", fmt.Errorf("camera has no transform")
	}
	camera, ok := ecs.Get(w, camEntity, component.CameraComponent.Kind())
	if !ok {
		return "", fmt.Errorf("camera has no camera component")
	}

	pose := struct {
		Camera prefabs.CameraSpec `yaml:"camera"`
	}{Camera: prefabs.CameraSpec{
		FOV:      round3(float64(camera.FOV)),
		Near:     round3(float64(camera.Near)),
		Far:      round3(float64(camera.Far)),
		Position: roundVec(transform.Position),
		Target:   roundVec(camera.Target),
	}}
	b, err := yaml.Marshal(&pose)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func roundVec(v mgl32.Vec3) prefabs.Vec3Spec {
	return prefabs.Vec3Spec{round3(float64(v.X())), round3(float64(v.Y())), round3(float64(v.Z()))}
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
