package grid

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// NewSampleImage generates a test card for trying out grids without an
// upload: a sine-wave color gradient with a few solid shapes, so lines are
// visible against both smooth and hard-edged content.
func NewSampleImage(width, height int) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: sample dimensions must be positive, got %dx%d", ErrInvalidParameter, width, height)
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		fy := float64(y) / float64(height)
		for x := 0; x < width; x++ {
			fx := float64(x) / float64(width)
			c := colorful.Color{
				R: math.Sin(fx*3*math.Pi)*0.5 + 0.5,
				G: math.Sin(fy*3*math.Pi)*0.5 + 0.5,
				B: math.Sin((fx+fy)*3*math.Pi)*0.5 + 0.5,
			}.Clamped()
			r, g, b := c.RGB255()
			img.SetNRGBA(x, y, color.NRGBA{R: r, G: g, B: b, A: 0xFF})
		}
	}

	radius := min(width, height) / 12
	fillCircle(img, width/4, height/4, radius, color.NRGBA{B: 255, A: 255})

	side := min(width, height) / 6
	fillRect(img, width/2, height/2, width/2+side, height/2+side, color.NRGBA{G: 255, A: 255})

	drawDiagonal(img, color.NRGBA{R: 255, A: 255}, 5)

	return img, nil
}

func fillCircle(img *image.NRGBA, cx, cy, r int, c color.NRGBA) {
	bounds := img.Bounds()
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			if x < bounds.Min.X || x >= bounds.Max.X || y < bounds.Min.Y || y >= bounds.Max.Y {
				continue
			}
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r*r {
				img.SetNRGBA(x, y, c)
			}
		}
	}
}

func fillRect(img *image.NRGBA, x0, y0, x1, y1 int, c color.NRGBA) {
	bounds := img.Bounds()
	x0 = max(x0, bounds.Min.X)
	y0 = max(y0, bounds.Min.Y)
	x1 = min(x1, bounds.Max.X)
	y1 = min(y1, bounds.Max.Y)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
}

// drawDiagonal draws a line of the given thickness from the bottom-left to
// the top-right corner.
func drawDiagonal(img *image.NRGBA, c color.NRGBA, thickness int) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w < 2 || h < 2 {
		return
	}
	for x := 0; x < w; x++ {
		y := (h - 1) - x*(h-1)/(w-1)
		for t := -thickness / 2; t <= thickness/2; t++ {
			if yy := y + t; yy >= 0 && yy < h {
				img.SetNRGBA(x, yy, c)
			}
		}
	}
}
