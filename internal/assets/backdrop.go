package assets

import (
	"image"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/starshot/internal/core"
)

// samplesPerAxis is how many pixels per cell axis are averaged when shading.
const samplesPerAxis = 3

// Backdrop is the background image, stretched over the whole logical surface
// and shaded into one background color per terminal cell.
type Backdrop struct {
	img   image.Image
	dim   float64
	cols  int
	rows  int
	cells []core.Color
}

// NewBackdrop wraps a background image. dim blends every shade toward black
// (0 keeps the image, 1 is black) so sprites stay readable on top of it.
func NewBackdrop(img image.Image, dim float64) *Backdrop {
	return &Backdrop{img: img, dim: core.ClampF(dim, 0, 1)}
}

// Shade returns the background color for every cell of a cols x rows grid in
// row-major order. The result is cached until the grid size changes.
func (b *Backdrop) Shade(cols, rows int) []core.Color {
	if cols <= 0 || rows <= 0 {
		return nil
	}
	if b.cells != nil && b.cols == cols && b.rows == rows {
		return b.cells
	}

	bounds := b.img.Bounds()
	black := colorful.Color{}
	cells := make([]core.Color, cols*rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			avg := b.sampleCell(bounds, col, row, cols, rows)
			cells[row*cols+col] = Nearest(avg.BlendRgb(black, b.dim))
		}
	}

	b.cols, b.rows, b.cells = cols, rows, cells
	return cells
}

// sampleCell averages a small grid of pixels inside the image region a cell covers.
func (b *Backdrop) sampleCell(bounds image.Rectangle, col, row, cols, rows int) colorful.Color {
	w, h := bounds.Dx(), bounds.Dy()
	var sum colorful.Color
	n := 0
	for sy := 0; sy < samplesPerAxis; sy++ {
		for sx := 0; sx < samplesPerAxis; sx++ {
			// Sample at evenly spaced points strictly inside the cell's region
			px := bounds.Min.X + ((col*samplesPerAxis+sx)*2+1)*w/(2*cols*samplesPerAxis)
			py := bounds.Min.Y + ((row*samplesPerAxis+sy)*2+1)*h/(2*rows*samplesPerAxis)
			c, ok := colorful.MakeColor(b.img.At(px, py))
			if !ok {
				continue
			}
			sum.R += c.R
			sum.G += c.G
			sum.B += c.B
			n++
		}
	}
	if n == 0 {
		return colorful.Color{}
	}
	return colorful.Color{R: sum.R / float64(n), G: sum.G / float64(n), B: sum.B / float64(n)}
}
