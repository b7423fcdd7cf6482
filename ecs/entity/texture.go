package entity

import (
	"errors"
	"image"
	"image/color"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/solarsystem/assets"
	"github.com/milk9111/solarsystem/prefabs"
)

// loadTexture returns the texture file for a body, or a procedural stand-in
// coloured from the catalogue when the file is missing.
func loadTexture(name, file, hex string) (string, image.Image) {
	if key, img, err := loadFirst(file, pngName(file)); err == nil {
		return key, img
	} else if file != "" {
		slog.Warn("texture missing, using procedural", "body", name, "file", file, "err", err)
	}
	return "procedural:" + name, assets.Planet(name, catalogueColor(hex))
}

func loadRingTexture(name string, ring *prefabs.RingSpec) (string, image.Image) {
	if key, img, err := loadFirst(ring.Texture, RingTextureFile(name)); err == nil {
		return key, img
	} else if ring.Texture != "" {
		slog.Warn("ring texture missing, using procedural", "body", name, "file", ring.Texture, "err", err)
	}
	return "procedural-ring:" + name, assets.RingTexture(name, catalogueColor(ring.Color), ring.InnerRadius, ring.OuterRadius)
}

// RingTextureFile is the file name cmd/texgen writes a body's ring to.
func RingTextureFile(name string) string {
	return name + "-ring.png"
}

// pngName swaps the extension for .png, the format cmd/texgen writes.
func pngName(file string) string {
	if file == "" {
		return ""
	}
	return strings.TrimSuffix(file, filepath.Ext(file)) + ".png"
}

// loadFirst returns the first candidate that decodes.
func loadFirst(candidates ...string) (string, image.Image, error) {
	var first error
	for _, c := range candidates {
		if c == "" {
			continue
		}
		img, err := assets.LoadImage(c)
		if err == nil {
			return c, img, nil
		}
		if first == nil {
			first = err
		}
	}
	if first == nil {
		first = errors.New("no texture file")
	}
	return "", nil, first
}

func catalogueColor(hex string) color.NRGBA {
	if hex == "" {
		return color.NRGBA{R: 0xb0, G: 0xb0, B: 0xb0, A: 0xff}
	}
	c, err := prefabs.ParseColor(hex)
	if err != nil {
		return color.NRGBA{R: 0xb0, G: 0xb0, B: 0xb0, A: 0xff}
	}
	return c
}

func vec3(v prefabs.Vec3Spec) mgl32.Vec3 {
	return mgl32.Vec3{float32(v[0]), float32(v[1]), float32(v[2])}
}
