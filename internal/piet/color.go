// Package piet implements the execution engine for the Piet graphical
// programming language: a normalized codel grid, connected color blocks,
// the direction pointer / codel chooser state machine, and the
// arbitrary-precision stack machine driven by color transitions.
// The package is UI-agnostic and deterministic; image decoding, tracing
// and I/O are supplied by collaborators.
package piet

import (
	"fmt"
	"image/color"
	"strings"
)

// Color is one of the 20 Piet colors: 18 chromatic colors
// (6 hues x 3 lightness levels) plus white and black.
type Color uint8

const (
	White Color = iota
	Black

	LightRed
	LightYellow
	LightGreen
	LightCyan
	LightBlue
	LightMagenta

	Red
	Yellow
	Green
	Cyan
	Blue
	Magenta

	DarkRed
	DarkYellow
	DarkGreen
	DarkCyan
	DarkBlue
	DarkMagenta

	colorCount // Sentinel value for iteration
)

// String returns the lowercase name of the color.
func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	case LightRed:
		return "light-red"
	case LightYellow:
		return "light-yellow"
	case LightGreen:
		return "light-green"
	case LightCyan:
		return "light-cyan"
	case LightBlue:
		return "light-blue"
	case LightMagenta:
		return "light-magenta"
	case Red:
		return "red"
	case Yellow:
		return "yellow"
	case Green:
		return "green"
	case Cyan:
		return "cyan"
	case Blue:
		return "blue"
	case Magenta:
		return "magenta"
	case DarkRed:
		return "dark-red"
	case DarkYellow:
		return "dark-yellow"
	case DarkGreen:
		return "dark-green"
	case DarkCyan:
		return "dark-cyan"
	case DarkBlue:
		return "dark-blue"
	case DarkMagenta:
		return "dark-magenta"
	default:
		return "unknown"
	}
}

// Chromatic reports whether the color has a hue and lightness,
// i.e. it is neither white nor black.
func (c Color) Chromatic() bool {
	return c >= LightRed && c < colorCount
}

// Hue returns the hue index (0=red .. 5=magenta) and true for chromatic
// colors, 0 and false otherwise.
func (c Color) Hue() (int, bool) {
	if !c.Chromatic() {
		return 0, false
	}
	return int(c-LightRed) % 6, true
}

// Lightness returns the lightness index (0=light, 1=normal, 2=dark) and
// true for chromatic colors, 0 and false otherwise.
func (c Color) Lightness() (int, bool) {
	if !c.Chromatic() {
		return 0, false
	}
	return int(c-LightRed) / 6, true
}

// HueDelta returns the hue steps from c to next, taken modulo 6.
// Defined only between two chromatic colors.
func (c Color) HueDelta(next Color) (int, bool) {
	h1, ok := c.Hue()
	if !ok {
		return 0, false
	}
	h2, ok := next.Hue()
	if !ok {
		return 0, false
	}
	return ((h2-h1)%6 + 6) % 6, true
}

// LightnessDelta returns the lightness steps from c to next, taken
// modulo 3. Defined only between two chromatic colors.
func (c Color) LightnessDelta(next Color) (int, bool) {
	l1, ok := c.Lightness()
	if !ok {
		return 0, false
	}
	l2, ok := next.Lightness()
	if !ok {
		return 0, false
	}
	return ((l2-l1)%3 + 3) % 3, true
}

// rgb triplets of the standard Piet palette, indexed by Color.
var colorRGB = [colorCount][3]uint8{
	White: {0xFF, 0xFF, 0xFF},
	Black: {0x00, 0x00, 0x00},

	LightRed:     {0xFF, 0xC0, 0xC0},
	LightYellow:  {0xFF, 0xFF, 0xC0},
	LightGreen:   {0xC0, 0xFF, 0xC0},
	LightCyan:    {0xC0, 0xFF, 0xFF},
	LightBlue:    {0xC0, 0xC0, 0xFF},
	LightMagenta: {0xFF, 0xC0, 0xFF},

	Red:     {0xFF, 0x00, 0x00},
	Yellow:  {0xFF, 0xFF, 0x00},
	Green:   {0x00, 0xFF, 0x00},
	Cyan:    {0x00, 0xFF, 0xFF},
	Blue:    {0x00, 0x00, 0xFF},
	Magenta: {0xFF, 0x00, 0xFF},

	DarkRed:     {0xC0, 0x00, 0x00},
	DarkYellow:  {0xC0, 0xC0, 0x00},
	DarkGreen:   {0x00, 0xC0, 0x00},
	DarkCyan:    {0x00, 0xC0, 0xC0},
	DarkBlue:    {0x00, 0x00, 0xC0},
	DarkMagenta: {0xC0, 0x00, 0xC0},
}

// RGB returns the color's standard palette value.
func (c Color) RGB() (r, g, b uint8) {
	rgb := colorRGB[c]
	return rgb[0], rgb[1], rgb[2]
}

// Hex returns the color as a #RRGGBB string.
func (c Color) Hex() string {
	r, g, b := c.RGB()
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

// FromRGB maps an exact palette RGB value to its Color.
// Returns false for any value outside the 20-color palette.
func FromRGB(r, g, b uint8) (Color, bool) {
	for c := Color(0); c < colorCount; c++ {
		rgb := colorRGB[c]
		if rgb[0] == r && rgb[1] == g && rgb[2] == b {
			return c, true
		}
	}
	return White, false
}

// FromColor maps an image/color value to its palette Color.
func FromColor(c color.Color) (Color, bool) {
	r, g, b, _ := c.RGBA()
	return FromRGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// Code returns a two-character code for the color, used by the text grid
// format: lightness prefix ('l', 'n', 'd') followed by the hue letter,
// or "ww"/"kk" for white and black.
func (c Color) Code() string {
	switch c {
	case White:
		return "ww"
	case Black:
		return "kk"
	}
	hues := "rygcbm"
	h, _ := c.Hue()
	l, _ := c.Lightness()
	return string("lnd"[l]) + string(hues[h])
}

// ParseColor converts a color name or two-letter code to a Color.
func ParseColor(s string) (Color, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for c := Color(0); c < colorCount; c++ {
		if s == c.String() || s == c.Code() {
			return c, true
		}
	}
	return White, false
}

// AllColors returns every palette color in declaration order.
func AllColors() []Color {
	colors := make([]Color, colorCount)
	for c := Color(0); c < colorCount; c++ {
		colors[c] = c
	}
	return colors
}
