// Package geom builds indexed triangle meshes and holds the projection and
// lighting math used by the renderer.
package geom

import "github.com/go-gl/mathgl/mgl32"

// Geometry is an indexed triangle list. Triangles wind counter-clockwise when
// seen from the side their normals point to.
type Geometry struct {
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	UVs       []mgl32.Vec2
	Indices   []uint16
}

// TriangleCount returns the number of indexed triangles.
func (g *Geometry) TriangleCount() int {
	if g == nil {
		return 0
	}
	return len(g.Indices) / 3
}

// BoundingRadius is the largest vertex distance from the local origin.
func (g *Geometry) BoundingRadius() float32 {
	if g == nil {
		return 0
	}
	var r float32
	for _, p := range g.Positions {
		if l := p.Len(); l > r {
			r = l
		}
	}
	return r
}
