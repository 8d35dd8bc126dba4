// Package render draws projected sprites into an image on the CPU and
// writes frames to disk. The window draws through ebiten; this path is used
// for snapshots and the headless CLI.
package render

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"

	"github.com/iburimskiy/blxck-backdrop/internal/scene"
	"github.com/iburimskiy/blxck-backdrop/internal/theme"
)

// Rasterize draws sprites over the palette background at supersample times
// the target size and scales the result down to w×h.
func Rasterize(sprites []scene.Sprite, w, h int, pal theme.Palette, supersample int) *image.RGBA {
	if supersample < 1 {
		supersample = 1
	}
	ss := float64(supersample)
	big := image.NewRGBA(image.Rect(0, 0, w*supersample, h*supersample))
	draw.Draw(big, big.Bounds(), image.NewUniform(pal.Background), image.Point{}, draw.Src)

	for _, sp := range sprites {
		c := pal.Particle
		if sp.Kind == scene.KindSphere {
			c = pal.Sphere
		}
		fillDisc(big, sp.X*ss, sp.Y*ss, sp.Radius*ss, c)
	}
	vignette(big, pal.Vignette)

	if supersample == 1 {
		return big
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), big, big.Bounds(), draw.Src, nil)
	return dst
}

// fillDisc blends a disc with a one-pixel antialiased rim.
func fillDisc(img *image.RGBA, cx, cy, r float64, c color.NRGBA) {
	b := img.Bounds()
	x0 := max(b.Min.X, int(math.Floor(cx-r-1)))
	x1 := min(b.Max.X, int(math.Ceil(cx+r+1)))
	y0 := max(b.Min.Y, int(math.Floor(cy-r-1)))
	y1 := min(b.Max.Y, int(math.Ceil(cy+r+1)))

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			cover := clamp01(r + 0.5 - math.Sqrt(dx*dx+dy*dy))
			if cover <= 0 {
				continue
			}
			blend(img, x, y, c, cover*float64(c.A)/255)
		}
	}
}

// vignette darkens (or lightens) the frame edges: transparent inside 40% of
// the half-diagonal, reaching the tint's alpha at the corners.
func vignette(img *image.RGBA, tint color.NRGBA) {
	if tint.A == 0 {
		return
	}
	b := img.Bounds()
	cx := float64(b.Dx()) / 2
	cy := float64(b.Dy()) / 2
	reach := math.Hypot(cx, cy)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			d := math.Hypot(float64(x)+0.5-cx, float64(y)+0.5-cy) / reach
			t := clamp01((d - 0.4) / 0.6)
			if t == 0 {
				continue
			}
			blend(img, x, y, tint, t*float64(tint.A)/255)
		}
	}
}

// VignetteMask is the vignette as a premultiplied overlay image, for
// compositing on a GPU surface.
func VignetteMask(w, h int, tint color.NRGBA) *image.RGBA {
	mask := image.NewRGBA(image.Rect(0, 0, w, h))
	cx := float64(w) / 2
	cy := float64(h) / 2
	reach := math.Hypot(cx, cy)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			d := math.Hypot(float64(x)+0.5-cx, float64(y)+0.5-cy) / reach
			a := clamp01((d-0.4)/0.6) * float64(tint.A) / 255
			mask.SetRGBA(x, y, color.RGBA{
				R: uint8(float64(tint.R)*a + 0.5),
				G: uint8(float64(tint.G)*a + 0.5),
				B: uint8(float64(tint.B)*a + 0.5),
				A: uint8(255*a + 0.5),
			})
		}
	}
	return mask
}

func blend(img *image.RGBA, x, y int, c color.NRGBA, a float64) {
	i := img.PixOffset(x, y)
	p := img.Pix[i : i+4 : i+4]
	p[0] = mix(p[0], c.R, a)
	p[1] = mix(p[1], c.G, a)
	p[2] = mix(p[2], c.B, a)
	p[3] = 255
}

func mix(dst, src uint8, a float64) uint8 {
	return uint8(float64(dst)*(1-a) + float64(src)*a + 0.5)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
