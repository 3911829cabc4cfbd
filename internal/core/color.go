package core

// Color represents a screen cell color.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
// ColorDefault means the terminal's own color.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDarkGray
	ColorNavy
	ColorDeepPurple
)

// RGB is an 8-bit-per-channel color value.
type RGB struct {
	R, G, B uint8
}

// paletteRGB holds the approximate rendition of each palette entry on an
// xterm-compatible terminal.
var paletteRGB = map[Color]RGB{
	ColorBlack:         {0, 0, 0},
	ColorRed:           {205, 0, 0},
	ColorGreen:         {0, 205, 0},
	ColorYellow:        {205, 205, 0},
	ColorBlue:          {0, 0, 238},
	ColorMagenta:       {205, 0, 205},
	ColorCyan:          {0, 205, 205},
	ColorWhite:         {229, 229, 229},
	ColorBrightRed:     {255, 0, 0},
	ColorBrightGreen:   {0, 255, 0},
	ColorBrightYellow:  {255, 255, 0},
	ColorBrightBlue:    {92, 92, 255},
	ColorBrightMagenta: {255, 0, 255},
	ColorBrightCyan:    {0, 255, 255},
	ColorBrightWhite:   {255, 255, 255},
	ColorOrange:        {255, 135, 0},
	ColorGray:          {138, 138, 138},
	ColorDarkGray:      {48, 48, 48},
	ColorNavy:          {0, 0, 95},
	ColorDeepPurple:    {58, 0, 95},
}

// RGB returns the color's approximate RGB value.
// ColorDefault reports false since the terminal decides it.
func (c Color) RGB() (RGB, bool) {
	v, ok := paletteRGB[c]
	return v, ok
}

// Palette returns every concrete (non-default) color in code order.
func Palette() []Color {
	colors := make([]Color, 0, len(paletteRGB))
	for c := ColorBlack; c <= ColorDeepPurple; c++ {
		colors = append(colors, c)
	}
	return colors
}
