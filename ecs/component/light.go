package component

import "image/color"

type AmbientLight struct {
	Color color.NRGBA
}

var AmbientLightComponent = NewComponent[AmbientLight]()

type PointLight struct {
	Color     color.NRGBA
	Intensity float32
	Range     float32
	Decay     float32
}

var PointLightComponent = NewComponent[PointLight]()
