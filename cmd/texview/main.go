package main

import (
	"flag"
	"fmt"
	"image/color"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/solarsystem/assets"
	"github.com/milk9111/solarsystem/ecs"
	"github.com/milk9111/solarsystem/ecs/component"
	"github.com/milk9111/solarsystem/ecs/entity"
	"github.com/milk9111/solarsystem/prefabs"
)

const (
	screenSize = 512
)

type frame struct {
	name string
	img  *ebiten.Image
}

// viewer steps through every body texture the scene would use, procedural
// or loaded from disk.
type viewer struct {
	frames      []frame
	current     int
	tick        int
	ticksPerFrm int
}

func (v *viewer) Update() error {
	if len(v.frames) <= 1 {
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		v.advance(1)
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		v.advance(-1)
		return nil
	}
	if v.ticksPerFrm <= 0 {
		return nil
	}
	v.tick++
	if v.tick >= v.ticksPerFrm {
		v.advance(1)
	}
	return nil
}

func (v *viewer) advance(step int) {
	v.tick = 0
	v.current = (v.current + step + len(v.frames)) % len(v.frames)
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x00, 0x00, 0x00, 0xff})
	if len(v.frames) == 0 {
		return
	}
	f := v.frames[v.current]
	fw := f.img.Bounds().Dx()
	fh := f.img.Bounds().Dy()
	scale := float64(screenSize) / float64(max(fw, fh))
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate((screenSize-float64(fw)*scale)/2, (screenSize-float64(fh)*scale)/2)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(f.img, op)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s (%d/%d)  %dx%d", f.name, v.current+1, len(v.frames), fw, fh))
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenSize, screenSize
}

// loadFrames builds the scene in a scratch world and collects its mesh
// textures in catalogue order.
func loadFrames() ([]frame, error) {
	spec, err := prefabs.LoadSolarSystemSpec()
	if err != nil {
		return nil, err
	}
	w := ecs.NewWorld()
	scene, err := entity.BuildSolarSystem(w, spec)
	if err != nil {
		return nil, err
	}

	entities := []ecs.Entity{scene.Sun}
	for _, name := range scene.Order {
		rec := scene.Planets[name]
		entities = append(entities, rec.Body)
		if rec.Ring.Valid() {
			entities = append(entities, rec.Ring)
		}
	}

	var frames []frame
	for _, e := range entities {
		mesh, ok := ecs.Get(w, e, component.MeshComponent.Kind())
		if !ok || mesh.Material.Texture == nil {
			continue
		}
		frames = append(frames, frame{
			name: mesh.Material.TextureKey,
			img:  ebiten.NewImageFromImage(mesh.Material.Texture),
		})
	}
	return frames, nil
}

func main() {
	seconds := flag.Float64("seconds", 2, "seconds per texture (0 = manual, arrows to step)")
	assetsDir := flag.String("assets", "assets/textures", "directory searched for textures before the embedded ones")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	assets.Dir = *assetsDir

	frames, err := loadFrames()
	if err != nil {
		slog.Error("load textures", "err", err)
		os.Exit(1)
	}
	v := &viewer{frames: frames, ticksPerFrm: int(*seconds * 60)}
	ebiten.SetWindowSize(screenSize, screenSize)
	ebiten.SetWindowTitle("solar system textures")
	if err := ebiten.RunGame(v); err != nil {
		slog.Error("run", "err", err)
		os.Exit(1)
	}
}
