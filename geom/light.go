package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/solarsystem/common"
)

// PointLight is a light source with a physically based falloff and a hard
// cutoff range. Range 0 means unlimited.
type PointLight struct {
	Position  mgl32.Vec3
	Color     mgl32.Vec3
	Intensity float32
	Range     float32
	Decay     float32
}

// Falloff returns the distance attenuation at distance d.
func (l PointLight) Falloff(d float32) float32 {
	decay := l.Decay
	if decay == 0 {
		decay = 2
	}
	f := 1 / float32(math.Max(math.Pow(float64(d), float64(decay)), 0.01))
	if l.Range > 0 {
		ratio := d / l.Range
		window := common.Clamp01(1 - ratio*ratio*ratio*ratio)
		f *= window * window
	}
	return f
}

// Irradiance is the Lambert-weighted light reaching a surface point with
// normal n, already divided by pi.
func (l PointLight) Irradiance(p, n mgl32.Vec3) mgl32.Vec3 {
	toLight := l.Position.Sub(p)
	d := toLight.Len()
	if d == 0 {
		return l.Color.Mul(l.Intensity / math.Pi)
	}
	nDotL := n.Dot(toLight.Mul(1 / d))
	if nDotL <= 0 {
		return mgl32.Vec3{}
	}
	scale := nDotL * l.Intensity * l.Falloff(d) / math.Pi
	return l.Color.Mul(scale)
}

// Shade combines ambient and point-light irradiance into a per-channel factor
// clamped to [0, 1].
func Shade(ambient mgl32.Vec3, lights []PointLight, p, n mgl32.Vec3) mgl32.Vec3 {
	out := ambient
	for _, l := range lights {
		out = out.Add(l.Irradiance(p, n))
	}
	return mgl32.Vec3{common.Clamp01(out.X()), common.Clamp01(out.Y()), common.Clamp01(out.Z())}
}
