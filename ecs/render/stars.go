package render

import (
	"image"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/solarsystem/geom"
)

var whitePixel *ebiten.Image

func white() *ebiten.Image {
	if whitePixel == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(image.White)
		whitePixel = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whitePixel
}

// StarQuads projects star directions with the rotation part of view only,
// so stars stay at infinite distance, and returns one quad per visible star.
func StarQuads(view, proj mgl32.Mat4, dirs []mgl32.Vec3, brightness []float32, size, width, height float32) ([]ebiten.Vertex, []uint16) {
	rot := view.Mat3().Mat4()
	vp := proj.Mul4(rot)
	half := size / 2

	verts := make([]ebiten.Vertex, 0, len(dirs)*4)
	indices := make([]uint16, 0, len(dirs)*6)
	for i, d := range dirs {
		if len(verts)+4 > 65535 {
			break
		}
		sp, ok := geom.ProjectToScreen(vp, d, width, height, 1e-3)
		if !ok || sp.X < -size || sp.Y < -size || sp.X > width+size || sp.Y > height+size {
			continue
		}
		c := float32(1)
		if i < len(brightness) {
			c = brightness[i]
		}
		base := uint16(len(verts))
		for _, corner := range [4][2]float32{{-half, -half}, {half, -half}, {half, half}, {-half, half}} {
			verts = append(verts, ebiten.Vertex{
				DstX: sp.X + corner[0], DstY: sp.Y + corner[1],
				SrcX: 0, SrcY: 0,
				ColorR: c, ColorG: c, ColorB: c, ColorA: 1,
			})
		}
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}
	return verts, indices
}

// DrawStars draws the starfield background.
func DrawStars(dst *ebiten.Image, view, proj mgl32.Mat4, dirs []mgl32.Vec3, brightness []float32, size float32) {
	b := dst.Bounds()
	verts, indices := StarQuads(view, proj, dirs, brightness, size, float32(b.Dx()), float32(b.Dy()))
	if len(indices) == 0 {
		return
	}
	src := white()
	origin := src.Bounds().Min
	for i := range verts {
		verts[i].SrcX = float32(origin.X) + 0.5
		verts[i].SrcY = float32(origin.Y) + 0.5
	}
	dst.DrawTriangles(verts, indices, src, nil)
}
