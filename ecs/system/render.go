package system

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/solarsystem/assets"
	"github.com/milk9111/solarsystem/ecs"
	"github.com/milk9111/solarsystem/ecs/component"
	"github.com/milk9111/solarsystem/ecs/render"
	"github.com/milk9111/solarsystem/geom"
)

const whiteTextureKey = "white"

type RenderSystem struct {
	camEntity ecs.Entity
	batcher   *render.Batcher
	Debug     bool
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{batcher: render.NewBatcher()}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	if !r.camEntity.Valid() || !w.IsAlive(r.camEntity) {
		if camEntity, ok := w.First(component.CameraTagComponent.Kind()); ok {
			r.camEntity = camEntity
		}
	}
	camTransform, ok := ecs.Get(w, r.camEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}
	camera, ok := ecs.Get(w, r.camEntity, component.CameraComponent.Kind())
	if !ok {
		return
	}

	bounds := screen.Bounds()
	width, height := float32(bounds.Dx()), float32(bounds.Dy())
	if height > 0 {
		camera.Aspect = width / height
	}

	view := geom.View(camTransform.Position, camera.Target, camera.Up)
	proj := geom.Projection{FOV: camera.FOV, Aspect: camera.Aspect, Near: camera.Near, Far: camera.Far}.Matrix()

	screen.Fill(color.Black)
	ecs.ForEach(w, component.StarfieldComponent.Kind(), func(_ ecs.Entity, stars *component.Starfield) {
		render.DrawStars(screen, view, proj, stars.Directions, stars.Brightness, stars.Size)
	})

	frame := &render.Frame{
		ViewProj: proj.Mul4(view),
		Width:    width,
		Height:   height,
		Near:     camera.Near,
		Ambient:  ambientLight(w),
		Lights:   pointLights(w),
	}

	r.batcher.Reset()
	ecs.ForEach2(w, component.MeshComponent.Kind(), component.WorldTransformComponent.Kind(), func(_ ecs.Entity, mesh *component.Mesh, world *component.WorldTransform) {
		if mesh.Geometry == nil {
			return
		}
		r.batcher.AddMesh(frame, meshDraw(mesh, world.Matrix))
	})
	triangles := r.batcher.Len()
	r.batcher.Flush(screen)

	if r.Debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f  triangles: %d  draws: %d", ebiten.ActualFPS(), triangles, r.batcher.DrawCalls()))
	}
}

func meshDraw(mesh *component.Mesh, world mgl32.Mat4) render.MeshDraw {
	mat := mesh.Material
	img := render.ImageFor(mat.TextureKey, mat.Texture)
	tint := color.NRGBA{}
	if img == nil {
		img = render.ImageFor(whiteTextureKey, assets.White())
		tint = mat.Color
	}
	b := img.Bounds()
	return render.MeshDraw{
		Geometry:    mesh.Geometry,
		World:       world,
		Texture:     img,
		TexW:        float32(b.Dx()),
		TexH:        float32(b.Dy()),
		Tint:        tint,
		Lit:         mat.Shading == component.ShadingStandard,
		DoubleSided: mat.DoubleSided,
	}
}

func ambientLight(w *ecs.World) mgl32.Vec3 {
	var sum mgl32.Vec3
	ecs.ForEach(w, component.AmbientLightComponent.Kind(), func(_ ecs.Entity, light *component.AmbientLight) {
		sum = sum.Add(colorVec(light.Color))
	})
	return sum
}

func pointLights(w *ecs.World) []geom.PointLight {
	var lights []geom.PointLight
	ecs.ForEach(w, component.PointLightComponent.Kind(), func(e ecs.Entity, light *component.PointLight) {
		var pos mgl32.Vec3
		if wt, ok := ecs.Get(w, e, component.WorldTransformComponent.Kind()); ok {
			pos = wt.Position()
		} else if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			pos = t.Position
		}
		lights = append(lights, geom.PointLight{
			Position:  pos,
			Color:     colorVec(light.Color),
			Intensity: light.Intensity,
			Range:     light.Range,
			Decay:     light.Decay,
		})
	})
	return lights
}

func colorVec(c color.NRGBA) mgl32.Vec3 {
	return mgl32.Vec3{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255}
}
