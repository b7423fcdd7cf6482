package geom

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	MinWidthSegments  = 3
	MinHeightSegments = 2
)

// Sphere builds a UV sphere. Rows run from the north pole (v=0) to the south
// pole; the uv origin is bottom-left so the north pole has uv.y == 1.
// Pole rows emit a single triangle per quad.
func Sphere(radius float32, widthSegments, heightSegments int) (*Geometry, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("geom: sphere radius must be positive, got %v", radius)
	}
	widthSegments = max(MinWidthSegments, widthSegments)
	heightSegments = max(MinHeightSegments, heightSegments)
	if (widthSegments+1)*(heightSegments+1) > math.MaxUint16 {
		return nil, fmt.Errorf("geom: sphere %dx%d exceeds 16-bit indices", widthSegments, heightSegments)
	}

	g := &Geometry{}
	grid := make([][]uint16, 0, heightSegments+1)
	var index uint16

	for iy := 0; iy <= heightSegments; iy++ {
		row := make([]uint16, 0, widthSegments+1)
		v := float64(iy) / float64(heightSegments)

		uOffset := 0.0
		switch {
		case iy == 0:
			uOffset = 0.5 / float64(widthSegments)
		case iy == heightSegments:
			uOffset = -0.5 / float64(widthSegments)
		}

		for ix := 0; ix <= widthSegments; ix++ {
			u := float64(ix) / float64(widthSegments)
			phi := u * 2 * math.Pi
			theta := v * math.Pi

			x := -float64(radius) * math.Cos(phi) * math.Sin(theta)
			y := float64(radius) * math.Cos(theta)
			z := float64(radius) * math.Sin(phi) * math.Sin(theta)

			p := mgl32.Vec3{float32(x), float32(y), float32(z)}
			g.Positions = append(g.Positions, p)
			g.Normals = append(g.Normals, p.Normalize())
			g.UVs = append(g.UVs, mgl32.Vec2{float32(u + uOffset), float32(1 - v)})

			row = append(row, index)
			index++
		}
		grid = append(grid, row)
	}

	for iy := 0; iy < heightSegments; iy++ {
		for ix := 0; ix < widthSegments; ix++ {
			a := grid[iy][ix+1]
			b := grid[iy][ix]
			c := grid[iy+1][ix]
			d := grid[iy+1][ix+1]

			if iy != 0 {
				g.Indices = append(g.Indices, a, b, d)
			}
			if iy != heightSegments-1 {
				g.Indices = append(g.Indices, b, c, d)
			}
		}
	}
	return g, nil
}
