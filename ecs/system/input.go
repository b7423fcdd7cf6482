package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/solarsystem/ecs"
	"github.com/milk9111/solarsystem/ecs/component"
)

// InputSource is the slice of ebiten's input API the scene reads.
type InputSource interface {
	CursorPosition() (int, int)
	IsMouseButtonPressed(ebiten.MouseButton) bool
	IsMouseButtonJustPressed(ebiten.MouseButton) bool
	Wheel() (float64, float64)
	IsKeyJustPressed(ebiten.Key) bool
}

type ebitenInput struct{}

func (ebitenInput) CursorPosition() (int, int) { return ebiten.CursorPosition() }
func (ebitenInput) IsMouseButtonPressed(b ebiten.MouseButton) bool {
	return ebiten.IsMouseButtonPressed(b)
}
func (ebitenInput) IsMouseButtonJustPressed(b ebiten.MouseButton) bool {
	return inpututil.IsMouseButtonJustPressed(b)
}
func (ebitenInput) Wheel() (float64, float64)          { return ebiten.Wheel() }
func (ebitenInput) IsKeyJustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

type InputSystem struct {
	source InputSource
	// Blocked reports whether a screen point is covered by the control panel.
	Blocked func(x, y int) bool

	lastX, lastY int
	dragOverUI   bool
}

func NewInputSystem() *InputSystem {
	return &InputSystem{source: ebitenInput{}}
}

// NewInputSystemWithSource reads from src instead of the live window.
func NewInputSystemWithSource(src InputSource) *InputSystem {
	return &InputSystem{source: src}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil || i.source == nil {
		return
	}

	x, y := i.source.CursorPosition()
	left := i.source.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := i.source.IsMouseButtonPressed(ebiten.MouseButtonRight)

	if i.source.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || i.source.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		i.dragOverUI = i.blocked(x, y)
		i.lastX, i.lastY = x, y
	}
	if !left && !right {
		i.dragOverUI = false
	}

	dx, dy := float64(x-i.lastX), float64(y-i.lastY)
	i.lastX, i.lastY = x, y

	_, wheel := i.source.Wheel()
	if i.blocked(x, y) {
		wheel = 0
	}
	copyPose := i.source.IsKeyJustPressed(ebiten.KeyC)

	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, input *component.Input) {
		input.CursorX, input.CursorY = x, y
		input.Rotating = left && !i.dragOverUI
		input.Panning = right && !left && !i.dragOverUI
		input.DragDX, input.DragDY = 0, 0
		if input.Rotating || input.Panning {
			input.DragDX, input.DragDY = dx, dy
		}
		input.Wheel = wheel
		input.CopyPose = copyPose
		input.OverUI = i.dragOverUI
	})
}

func (i *InputSystem) blocked(x, y int) bool {
	return i.Blocked != nil && i.Blocked(x, y)
}
