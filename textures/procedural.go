package textures

import (
	"image"
	"image/color"
	"image/draw"
	stdmath "math"
	"math/rand"

	"github.com/aquilax/go-perlin"
	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"
)

const barkFleckCount = 420

// GeneratePetal draws the blossom sprite: a symmetric petal silhouette
// filled with a radial near-white to pale-pink gradient. The background
// stays transparent so the point sprite reads as a petal, not a card.
func GeneratePetal(size int) *image.RGBA {
	dc := gg.NewContext(size, size)
	s := float64(size)

	grad := gg.NewRadialGradient(s/2, s/2, 0, s/2, s/2, s/2)
	grad.AddColorStop(0, colorful.Color{R: 1.00, G: 0.98, B: 0.99})
	grad.AddColorStop(0.55, colorful.Color{R: 1.00, G: 0.86, B: 0.92})
	grad.AddColorStop(1, colorful.Color{R: 0.98, G: 0.72, B: 0.84})
	dc.SetFillStyle(grad)

	// Two mirrored quadratics per side, widest just above center, meeting
	// in a soft tip at the top and a blunter base at the bottom.
	dc.MoveTo(s/2, s*0.06)
	dc.QuadraticTo(s*0.94, s*0.22, s*0.86, s*0.62)
	dc.QuadraticTo(s*0.74, s*0.94, s/2, s*0.90)
	dc.QuadraticTo(s*0.26, s*0.94, s*0.14, s*0.62)
	dc.QuadraticTo(s*0.06, s*0.22, s/2, s*0.06)
	dc.ClosePath()
	dc.Fill()

	return rasterOf(dc)
}

// GenerateBark fills a tile with vertical Perlin grain between two brown
// tones, then scatters small translucent flecks so the surface does not
// band. Same seed, same tile.
func GenerateBark(width, height int, seed int64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rng := rand.New(rand.NewSource(seed))
	noise := perlin.NewPerlin(2, 2, 3, seed)

	base := colorful.Color{R: 0.36, G: 0.25, B: 0.20}
	dark := colorful.Color{R: 0.22, G: 0.15, B: 0.12}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			// Stretch the noise along y so the ridges run up the trunk.
			n := noise.Noise2D(float64(x)/12.0, float64(y)/48.0)
			t := (n + 1) / 2
			c := dark.BlendRgb(base, t)
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(c.R * 255),
				G: uint8(c.G * 255),
				B: uint8(c.B * 255),
				A: 255,
			})
		}
	}

	light := color.RGBA{R: 140, G: 112, B: 92, A: 255}
	shadow := color.RGBA{R: 34, G: 22, B: 16, A: 255}
	for i := 0; i < barkFleckCount; i++ {
		fx := rng.Intn(width)
		fy := rng.Intn(height)
		fw := 1 + rng.Intn(3)
		fh := 2 + rng.Intn(6)
		tone := light
		if rng.Float32() < 0.5 {
			tone = shadow
		}
		alpha := 0.15 + rng.Float64()*0.2
		for y := fy; y < fy+fh && y < height; y++ {
			for x := fx; x < fx+fw && x < width; x++ {
				blendPixel(img, x, y, tone, alpha)
			}
		}
	}

	return img
}

// GeneratePlaceholder draws the stand-in photo card: a soft two-tone
// vertical gradient with a light inner border, hue-rotated per index.
func GeneratePlaceholder(width, height, index int) *image.RGBA {
	dc := gg.NewContext(width, height)
	w, h := float64(width), float64(height)

	hue := stdmath.Mod(float64(index)*47, 360)
	top := colorful.Hsl(hue, 0.35, 0.72)
	bottom := colorful.Hsl(stdmath.Mod(hue+30, 360), 0.30, 0.48)

	grad := gg.NewLinearGradient(0, 0, 0, h)
	grad.AddColorStop(0, top)
	grad.AddColorStop(1, bottom)
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, w, h)
	dc.Fill()

	inset := w * 0.06
	dc.SetRGBA(1, 1, 1, 0.85)
	dc.SetLineWidth(w * 0.025)
	dc.DrawRectangle(inset, inset, w-2*inset, h-2*inset)
	dc.Stroke()

	return rasterOf(dc)
}

func rasterOf(dc *gg.Context) *image.RGBA {
	img := dc.Image()
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}

func blendPixel(img *image.RGBA, x, y int, c color.RGBA, alpha float64) {
	prior := img.RGBAAt(x, y)
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a)*(1-alpha) + float64(b)*alpha)
	}
	img.SetRGBA(x, y, color.RGBA{
		R: mix(prior.R, c.R),
		G: mix(prior.G, c.G),
		B: mix(prior.B, c.B),
		A: 255,
	})
}
