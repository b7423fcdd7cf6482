package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/milk9111/solarsystem/assets"
	"github.com/milk9111/solarsystem/ecs/entity"
	"github.com/milk9111/solarsystem/prefabs"
)

type texture struct {
	file string
	img  image.Image
}

func main() {
	out := flag.String("out", "assets/textures", "directory to write PNG textures into")
	force := flag.Bool("force", false, "overwrite existing files")
	catalogue := flag.String("catalogue", prefabs.SolarSystemFile, "catalogue file (disk first, then embedded)")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	spec, err := prefabs.LoadSolarSystemSpecFile(*catalogue)
	if err != nil {
		slog.Error("load catalogue", "err", err)
		os.Exit(1)
	}
	if err := os.MkdirAll(*out, 0o755); err != nil {
		slog.Error("create output dir", "dir", *out, "err", err)
		os.Exit(1)
	}

	written := 0
	for _, tex := range textures(spec) {
		path := filepath.Join(*out, tex.file)
		ok, err := writePNG(path, tex.img, *force)
		if err != nil {
			slog.Error("write texture", "path", path, "err", err)
			os.Exit(1)
		}
		if ok {
			written++
			slog.Info("wrote", "path", path)
		} else {
			slog.Info("skipped existing", "path", path)
		}
	}
	fmt.Printf("%d textures written to %s\n", written, *out)
}

func textures(spec *prefabs.SolarSystemSpec) []texture {
	list := []texture{{
		file: pngFile(spec.Sun.Texture, spec.Sun.Name),
		img:  assets.Planet(spec.Sun.Name, parseColor(spec.Sun.Color)),
	}}
	for _, b := range spec.Bodies {
		list = append(list, texture{
			file: pngFile(b.Texture, b.Name),
			img:  assets.Planet(b.Name, parseColor(b.Color)),
		})
		if b.Ring != nil {
			list = append(list, texture{
				file: entity.RingTextureFile(b.Name),
				img:  assets.RingTexture(b.Name, parseColor(b.Ring.Color), b.Ring.InnerRadius, b.Ring.OuterRadius),
			})
		}
	}
	return list
}

func pngFile(texture, name string) string {
	if texture == "" {
		return name + ".png"
	}
	return strings.TrimSuffix(texture, filepath.Ext(texture)) + ".png"
}

func parseColor(hex string) color.NRGBA {
	c, err := prefabs.ParseColor(hex)
	if err != nil {
		return color.NRGBA{R: 0xb0, G: 0xb0, B: 0xb0, A: 0xff}
	}
	return c
}

// writePNG reports false when path exists and force is unset.
func writePNG(path string, img image.Image, force bool) (bool, error) {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return false, nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return false, err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return false, err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return false, err
	}
	return true, f.Close()
}
