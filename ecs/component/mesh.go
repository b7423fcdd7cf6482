package component

import (
	"image"
	"image/color"

	"github.com/milk9111/solarsystem/geom"
)

// Shading selects how a material reacts to lights.
type Shading int

const (
	// ShadingBasic ignores lights entirely.
	ShadingBasic Shading = iota
	// ShadingStandard is lit by ambient and point lights.
	ShadingStandard
)

// Material describes how a mesh is drawn. Color tints a plain white surface
// when the texture cannot be uploaded.
type Material struct {
	TextureKey  string
	Texture     image.Image
	Color       color.NRGBA
	Shading     Shading
	DoubleSided bool
}

type Mesh struct {
	Geometry *geom.Geometry
	Material Material
}

var MeshComponent = NewComponent[Mesh]()
