package component

import "github.com/go-gl/mathgl/mgl32"

// Starfield is the background drawn behind everything at infinite distance.
type Starfield struct {
	Directions []mgl32.Vec3
	Brightness []float32
	Size       float32
}

var StarfieldComponent = NewComponent[Starfield]()
