package show

import (
	"image"
	"image/color"
	"math"
)

// Canvas is a software implementation of the compositing contract. Channels
// accumulate in float so slow fades converge instead of sticking on 8-bit
// rounding.
type Canvas struct {
	W, H  int
	Scale float64 // viewport units to canvas pixels
	pix   []float32
}

func NewCanvas(w, h int, scale float64) *Canvas {
	if scale <= 0 {
		scale = 1
	}
	return &Canvas{W: w, H: h, Scale: scale, pix: make([]float32, w*h*3)}
}

// Clear fills the canvas with c.
func (cv *Canvas) Clear(c RGB) {
	r, g, b := float32(c.R), float32(c.G), float32(c.B)
	for i := 0; i < len(cv.pix); i += 3 {
		cv.pix[i], cv.pix[i+1], cv.pix[i+2] = r, g, b
	}
}

// Fade blends every pixel toward bg by alpha (the long-exposure overlay).
func (cv *Canvas) Fade(bg RGB, alpha float64) {
	a := float32(clampF(alpha, 0, 1))
	if a == 0 {
		return
	}
	r, g, b := float32(bg.R), float32(bg.G), float32(bg.B)
	for i := 0; i < len(cv.pix); i += 3 {
		cv.pix[i] += (r - cv.pix[i]) * a
		cv.pix[i+1] += (g - cv.pix[i+1]) * a
		cv.pix[i+2] += (b - cv.pix[i+2]) * a
	}
}

// Disc adds a filled circle of colour c scaled by alpha, saturating at 255.
// Coordinates and radius are in viewport units.
func (cv *Canvas) Disc(x, y, radius float64, c RGB, alpha float64) {
	a := clampF(alpha, 0, 1)
	if a == 0 || radius <= 0 {
		return
	}
	cx, cy, rad := x*cv.Scale, y*cv.Scale, math.Max(radius*cv.Scale, 0.5)
	x0 := max(0, int(math.Floor(cx-rad)))
	x1 := min(cv.W-1, int(math.Ceil(cx+rad)))
	y0 := max(0, int(math.Floor(cy-rad)))
	y1 := min(cv.H-1, int(math.Ceil(cy+rad)))
	if x0 > x1 || y0 > y1 {
		return
	}
	dr, dg, db := float32(float64(c.R)*a), float32(float64(c.G)*a), float32(float64(c.B)*a)
	r2 := rad * rad
	for py := y0; py <= y1; py++ {
		fy := float64(py) + 0.5 - cy
		for px := x0; px <= x1; px++ {
			fx := float64(px) + 0.5 - cx
			if fx*fx+fy*fy > r2 {
				continue
			}
			i := (py*cv.W + px) * 3
			cv.pix[i] = min(255, cv.pix[i]+dr)
			cv.pix[i+1] = min(255, cv.pix[i+1]+dg)
			cv.pix[i+2] = min(255, cv.pix[i+2]+db)
		}
	}
}

// Present dims the canvas, then draws each sprite's glow and core in order.
func (cv *Canvas) Present(f Frame) error {
	cv.Fade(f.Background, f.FadeAlpha)
	for _, s := range f.Sprites {
		if s.GlowAlpha > 0 {
			cv.Disc(s.X, s.Y, s.Size*GlowSizeMul, s.Color, s.GlowAlpha)
		}
		cv.Disc(s.X, s.Y, s.Size, s.Color, s.Alpha)
	}
	return nil
}

// At returns the pixel at (x, y); out of range reads are black.
func (cv *Canvas) At(x, y int) RGB {
	if x < 0 || y < 0 || x >= cv.W || y >= cv.H {
		return RGB{}
	}
	i := (y*cv.W + x) * 3
	return NewRGB(float64(cv.pix[i]), float64(cv.pix[i+1]), float64(cv.pix[i+2]))
}

// Image snapshots the canvas into dst, allocating when dst is nil or mis-sized.
func (cv *Canvas) Image(dst *image.RGBA) *image.RGBA {
	if dst == nil || dst.Bounds().Dx() != cv.W || dst.Bounds().Dy() != cv.H {
		dst = image.NewRGBA(image.Rect(0, 0, cv.W, cv.H))
	}
	for y := 0; y < cv.H; y++ {
		for x := 0; x < cv.W; x++ {
			c := cv.At(x, y)
			dst.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF})
		}
	}
	return dst
}

var _ Renderer = (*Canvas)(nil)
