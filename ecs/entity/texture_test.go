package entity

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/milk9111/solarsystem/assets"
	"github.com/milk9111/solarsystem/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, path string, c color.NRGBA) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestLoadTexturePrefersFiles(t *testing.T) {
	dir := t.TempDir()
	prev := assets.Dir
	assets.Dir = dir
	t.Cleanup(func() { assets.Dir = prev })

	key, img := loadTexture("mars", "mars.jpg", "#b5522e")
	assert.True(t, strings.HasPrefix(key, "procedural:"))
	assert.Equal(t, assets.ProceduralWidth, img.Bounds().Dx())

	writePNG(t, filepath.Join(dir, "mars.png"), color.NRGBA{R: 9, A: 255})
	key, img = loadTexture("mars", "mars.jpg", "#b5522e")
	assert.Equal(t, "mars.png", key)
	assert.Equal(t, 2, img.Bounds().Dx())

	ring := &prefabs.RingSpec{InnerRadius: 10, OuterRadius: 15, Texture: "saturn.jpg"}
	key, _ = loadRingTexture("saturn", ring)
	assert.True(t, strings.HasPrefix(key, "procedural-ring:"))

	writePNG(t, filepath.Join(dir, RingTextureFile("saturn")), color.NRGBA{B: 9, A: 255})
	key, _ = loadRingTexture("saturn", ring)
	assert.Equal(t, "saturn-ring.png", key)
}

func TestCatalogueColorFallback(t *testing.T) {
	assert.Equal(t, color.NRGBA{R: 0x3b, G: 0x6f, B: 0xb6, A: 0xff}, catalogueColor("#3b6fb6"))
	assert.Equal(t, catalogueColor(""), catalogueColor("not a colour"))
}
