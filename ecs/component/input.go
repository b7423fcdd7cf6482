package component

type Input struct {
	CursorX, CursorY int
	DragDX, DragDY   float64
	Rotating         bool
	Panning          bool
	Wheel            float64
	CopyPose         bool
	// OverUI is set while the drag started over a control panel.
	OverUI bool
}

var InputComponent = NewComponent[Input]()
