package geom

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const MinThetaSegments = 3

// Ring builds a flat annulus in the XY plane facing +Z, with planar uvs
// spanning the outer diameter.
func Ring(innerRadius, outerRadius float32, thetaSegments int) (*Geometry, error) {
	if innerRadius < 0 || outerRadius <= innerRadius {
		return nil, fmt.Errorf("geom: ring needs 0 <= inner < outer, got %v..%v", innerRadius, outerRadius)
	}
	thetaSegments = max(MinThetaSegments, thetaSegments)
	const phiSegments = 1

	g := &Geometry{}
	step := (outerRadius - innerRadius) / phiSegments
	radius := innerRadius

	for j := 0; j <= phiSegments; j++ {
		for i := 0; i <= thetaSegments; i++ {
			segment := float64(i) / float64(thetaSegments) * 2 * math.Pi
			x := radius * float32(math.Cos(segment))
			y := radius * float32(math.Sin(segment))

			g.Positions = append(g.Positions, mgl32.Vec3{x, y, 0})
			g.Normals = append(g.Normals, mgl32.Vec3{0, 0, 1})
			g.UVs = append(g.UVs, mgl32.Vec2{(x/outerRadius + 1) / 2, (y/outerRadius + 1) / 2})
		}
		radius += step
	}

	for j := 0; j < phiSegments; j++ {
		offset := j * (thetaSegments + 1)
		for i := 0; i < thetaSegments; i++ {
			seg := uint16(i + offset)
			a := seg
			b := seg + uint16(thetaSegments) + 1
			c := seg + uint16(thetaSegments) + 2
			d := seg + 1

			g.Indices = append(g.Indices, a, b, d, b, c, d)
		}
	}
	return g, nil
}
