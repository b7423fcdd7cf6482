package assets

import (
	"hash/fnv"
	"image"
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/milk9111/solarsystem/common"
)

const (
	ProceduralWidth  = 256
	ProceduralHeight = 128
)

// Planet generates an equirectangular texture from a base colour: soft
// latitude bands with seeded noise. The same name always yields the same
// pixels.
func Planet(name string, base color.NRGBA) *image.NRGBA {
	rng := rand.New(rand.NewPCG(seed(name), 0x5eed))
	img := image.NewNRGBA(image.Rect(0, 0, ProceduralWidth, ProceduralHeight))

	bands := 3 + rng.IntN(6)
	phase := rng.Float64() * math.Pi
	amp := 0.12 + rng.Float64()*0.18

	noise := make([]float64, ProceduralWidth)
	for y := 0; y < ProceduralHeight; y++ {
		lat := float64(y) / float64(ProceduralHeight-1)
		band := math.Sin(lat*math.Pi*float64(bands)+phase) * amp
		// Low-frequency horizontal noise, smoothed so bands look streaky.
		prev := 0.0
		for x := range noise {
			prev = prev*0.85 + (rng.Float64()-0.5)*0.15
			noise[x] = prev
		}
		for x := 0; x < ProceduralWidth; x++ {
			f := 1 + band + noise[x]
			img.SetNRGBA(x, y, scale(base, f))
		}
	}
	return img
}

// RingTexture generates a radially banded, partly transparent texture for a
// ring whose uvs span the outer diameter. Texels inside inner/outer are
// transparent.
func RingTexture(name string, base color.NRGBA, innerRadius, outerRadius float64) *image.NRGBA {
	rng := rand.New(rand.NewPCG(seed(name+"/ring"), 0x5eed))
	const size = 256
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	if outerRadius <= 0 {
		return img
	}
	inner := innerRadius / outerRadius

	stripes := make([]float64, 64)
	for i := range stripes {
		stripes[i] = 0.6 + rng.Float64()*0.4
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := (float64(x)+0.5)/size*2 - 1
			dy := (float64(y)+0.5)/size*2 - 1
			r := math.Hypot(dx, dy)
			if r < inner || r > 1 {
				continue
			}
			t := (r - inner) / (1 - inner)
			s := stripes[min(len(stripes)-1, int(t*float64(len(stripes))))]
			c := scale(base, s)
			c.A = uint8(255 * s * 0.9)
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// White is a tiny opaque texture for untextured materials.
func White() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	return img
}

func scale(c color.NRGBA, f float64) color.NRGBA {
	return color.NRGBA{
		R: clampByte(float64(c.R) * f),
		G: clampByte(float64(c.G) * f),
		B: clampByte(float64(c.B) * f),
		A: 0xff,
	}
}

func clampByte(v float64) uint8 {
	return uint8(common.Clamp(v, 0, 255))
}

func seed(name string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(name))
	return h.Sum64()
}
