package assets

import (
	"fmt"
	"image"
	"image/color"
	"io/fs"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/starshot/internal/core"
)

// Sprite is what the game keeps of a sprite image: its size in logical
// units and the palette color closest to its visible pixels.
type Sprite struct {
	Name  string
	W, H  int
	Color core.Color
}

// Size returns the sprite's width and height.
func (s Sprite) Size() (int, int) {
	return s.W, s.H
}

// loadSprite decodes an image and reduces it to a Sprite.
func loadSprite(fsys fs.FS, name string) (Sprite, error) {
	img, err := loadImage(fsys, name)
	if err != nil {
		return Sprite{}, err
	}
	return NewSprite(name, img), nil
}

// NewSprite reduces an image to a Sprite. Pure black pixels are the color key
// and do not contribute to the sprite's color.
func NewSprite(name string, img image.Image) Sprite {
	b := img.Bounds()
	avg, ok := keyedAverage(img)
	c := core.ColorWhite
	if ok {
		c = Nearest(avg)
	}
	return Sprite{Name: name, W: b.Dx(), H: b.Dy(), Color: c}
}

// String describes the sprite for diagnostics.
func (s Sprite) String() string {
	return fmt.Sprintf("%s %dx%d color=%d", s.Name, s.W, s.H, s.Color)
}

// keyedAverage averages the image's pixels, skipping the color key and
// transparent pixels. Reports false when nothing was averaged.
func keyedAverage(img image.Image) (colorful.Color, bool) {
	r := img.Bounds()
	var sum colorful.Color
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			px := img.At(x, y)
			if isKey(px) {
				continue
			}
			c, ok := colorful.MakeColor(px)
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
		return colorful.Color{}, false
	}
	return colorful.Color{R: sum.R / float64(n), G: sum.G / float64(n), B: sum.B / float64(n)}, true
}

// isKey reports whether a pixel is the transparent color key.
func isKey(c color.Color) bool {
	r, g, b, a := c.RGBA()
	return a == 0 || (r == 0 && g == 0 && b == 0)
}

// palette is the quantization target, built once from core's palette.
var palette = buildPalette()

type paletteEntry struct {
	color core.Color
	value colorful.Color
}

func buildPalette() []paletteEntry {
	entries := make([]paletteEntry, 0, len(core.Palette()))
	for _, c := range core.Palette() {
		rgb, _ := c.RGB()
		entries = append(entries, paletteEntry{
			color: c,
			value: colorful.Color{R: float64(rgb.R) / 255, G: float64(rgb.G) / 255, B: float64(rgb.B) / 255},
		})
	}
	return entries
}

// Nearest returns the palette color perceptually closest to c.
func Nearest(c colorful.Color) core.Color {
	best := core.ColorWhite
	bestDist := -1.0
	for _, e := range palette {
		d := c.DistanceLab(e.value)
		if bestDist < 0 || d < bestDist {
			best = e.color
			bestDist = d
		}
	}
	return best
}
