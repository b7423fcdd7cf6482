package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

var images = map[string]*ebiten.Image{}

// RegisterImage stores an image by key.
func RegisterImage(key string, img *ebiten.Image) {
	if key == "" || img == nil {
		return
	}
	images[key] = img
}

// GetImage returns a cached image by key.
func GetImage(key string) *ebiten.Image {
	if key == "" {
		return nil
	}
	return images[key]
}

// ImageFor returns the GPU image for key, uploading src on first use.
func ImageFor(key string, src image.Image) *ebiten.Image {
	if img := GetImage(key); img != nil {
		return img
	}
	if src == nil {
		return nil
	}
	img := ebiten.NewImageFromImage(src)
	RegisterImage(key, img)
	return img
}
