package component

import "github.com/go-gl/mathgl/mgl32"

// Body describes a rendered celestial body.
type Body struct {
	Name     string
	Radius   float32
	Distance mgl32.Vec3
	// Focusable bodies get a camera button.
	Focusable bool
}

var BodyComponent = NewComponent[Body]()

// Ring marks a ring mesh and points back at the body it belongs to.
type Ring struct {
	BodyName    string
	InnerRadius float32
	OuterRadius float32
}

var RingComponent = NewComponent[Ring]()

// Pivot marks the orbit container of a body.
type Pivot struct {
	BodyName string
}

var PivotComponent = NewComponent[Pivot]()
