package render

import (
	"image/color"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/solarsystem/geom"
)

const maxBatchVertices = 65535 / 3 * 3

// Frame holds the per-frame camera and lighting state shared by every mesh.
type Frame struct {
	ViewProj mgl32.Mat4
	Width    float32
	Height   float32
	Near     float32
	Ambient  mgl32.Vec3
	Lights   []geom.PointLight
}

// MeshDraw is one mesh instance to rasterize.
type MeshDraw struct {
	Geometry    *geom.Geometry
	World       mgl32.Mat4
	Texture     *ebiten.Image
	TexW, TexH  float32
	Tint        color.NRGBA
	Lit         bool
	DoubleSided bool
}

type triangle struct {
	verts   [3]ebiten.Vertex
	depth   float32
	texture *ebiten.Image
	order   int
}

// Batcher collects lit, projected triangles for a frame and draws them back
// to front, merging runs that share a texture into one DrawTriangles call.
type Batcher struct {
	tris    []triangle
	verts   []ebiten.Vertex
	indices []uint16
	calls   int
}

func NewBatcher() *Batcher {
	return &Batcher{}
}

// Reset clears collected triangles, keeping allocations.
func (b *Batcher) Reset() {
	b.tris = b.tris[:0]
	b.calls = 0
}

// Len returns the number of triangles queued.
func (b *Batcher) Len() int {
	return len(b.tris)
}

// DrawCalls reports how many DrawTriangles calls the last Flush issued.
func (b *Batcher) DrawCalls() int {
	return b.calls
}

// AddMesh projects, culls and shades every triangle of m.
func (b *Batcher) AddMesh(f *Frame, m MeshDraw) {
	g := m.Geometry
	if g == nil || len(g.Indices) < 3 {
		return
	}

	normalMat := m.World.Mat3().Inv().Transpose()
	worldPos := make([]mgl32.Vec3, len(g.Positions))
	worldNrm := make([]mgl32.Vec3, len(g.Positions))
	screen := make([]geom.ScreenPoint, len(g.Positions))
	visible := make([]bool, len(g.Positions))

	for i, p := range g.Positions {
		wp := m.World.Mul4x1(p.Vec4(1)).Vec3()
		worldPos[i] = wp
		if i < len(g.Normals) {
			worldNrm[i] = normalMat.Mul3x1(g.Normals[i]).Normalize()
		}
		screen[i], visible[i] = geom.ProjectToScreen(f.ViewProj, wp, f.Width, f.Height, f.Near)
	}

	tint := [4]float32{
		float32(m.Tint.R) / 255,
		float32(m.Tint.G) / 255,
		float32(m.Tint.B) / 255,
		float32(m.Tint.A) / 255,
	}
	if m.Tint == (color.NRGBA{}) {
		tint = [4]float32{1, 1, 1, 1}
	}

	for t := 0; t+2 < len(g.Indices); t += 3 {
		ia, ib, ic := g.Indices[t], g.Indices[t+1], g.Indices[t+2]
		if !visible[ia] || !visible[ib] || !visible[ic] {
			continue
		}
		front := geom.FrontFacing(screen[ia], screen[ib], screen[ic])
		if !front && !m.DoubleSided {
			continue
		}

		tri := triangle{texture: m.Texture, order: len(b.tris)}
		for k, idx := range [3]uint16{ia, ib, ic} {
			shade := mgl32.Vec3{1, 1, 1}
			if m.Lit {
				n := worldNrm[idx]
				if !front {
					n = n.Mul(-1)
				}
				shade = geom.Shade(f.Ambient, f.Lights, worldPos[idx], n)
			}
			var uv mgl32.Vec2
			if int(idx) < len(g.UVs) {
				uv = g.UVs[idx]
			}
			tri.verts[k] = ebiten.Vertex{
				DstX:   screen[idx].X,
				DstY:   screen[idx].Y,
				SrcX:   uv.X() * m.TexW,
				SrcY:   (1 - uv.Y()) * m.TexH,
				ColorR: tint[0] * shade.X(),
				ColorG: tint[1] * shade.Y(),
				ColorB: tint[2] * shade.Z(),
				ColorA: tint[3],
			}
			tri.depth += screen[idx].W
		}
		tri.depth /= 3
		b.tris = append(b.tris, tri)
	}
}

// sortBackToFront orders triangles farthest first; ties keep insertion order.
func (b *Batcher) sortBackToFront() {
	sort.SliceStable(b.tris, func(i, j int) bool {
		if b.tris[i].depth != b.tris[j].depth {
			return b.tris[i].depth > b.tris[j].depth
		}
		return b.tris[i].order < b.tris[j].order
	})
}

// Flush sorts and draws everything queued, then resets the batcher.
func (b *Batcher) Flush(dst *ebiten.Image) {
	b.sortBackToFront()
	b.calls = 0

	op := &ebiten.DrawTrianglesOptions{
		Filter:  ebiten.FilterLinear,
		Address: ebiten.AddressRepeat,
	}

	b.verts = b.verts[:0]
	b.indices = b.indices[:0]
	var current *ebiten.Image

	flush := func() {
		if len(b.verts) == 0 || current == nil {
			b.verts = b.verts[:0]
			b.indices = b.indices[:0]
			return
		}
		if dst != nil {
			dst.DrawTriangles(b.verts, b.indices, current, op)
		}
		b.calls++
		b.verts = b.verts[:0]
		b.indices = b.indices[:0]
	}

	for i := range b.tris {
		tri := &b.tris[i]
		if tri.texture != current || len(b.verts)+3 > maxBatchVertices {
			flush()
			current = tri.texture
		}
		base := uint16(len(b.verts))
		b.verts = append(b.verts, tri.verts[0], tri.verts[1], tri.verts[2])
		b.indices = append(b.indices, base, base+1, base+2)
	}
	flush()

	b.tris = b.tris[:0]
}
