package tag

import (
	"fmt"
	"strconv"

	"github.com/yaklabco/tuimarkup/pkg/markup"
)

// ColorKind distinguishes palette colours from true colours.
type ColorKind uint8

// Colour kinds.
const (
	ColorANSI ColorKind = iota
	ColorRGB
)

// Color is a terminal colour: an entry of the 256-colour palette or a 24-bit RGB value.
type Color struct {
	Kind    ColorKind
	Index   uint8
	R, G, B uint8
}

// ANSI returns the palette colour with the given index.
func ANSI(index uint8) Color {
	return Color{Kind: ColorANSI, Index: index}
}

// RGB returns a true colour.
func RGB(r, g, b uint8) Color {
	return Color{Kind: ColorRGB, R: r, G: g, B: b}
}

// String returns the colour in the form terminal libraries accept:
// a decimal palette index or "#rrggbb".
func (c Color) String() string {
	if c.Kind == ColorRGB {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return strconv.Itoa(int(c.Index))
}

// NamedColor is an entry of the builtin colour table.
type NamedColor struct {
	Name  string
	Color Color
}

// namedColors lists the builtin colour names in palette order.
//
//nolint:gochecknoglobals // immutable lookup table
var namedColors = []NamedColor{
	{"black", ANSI(0)},
	{"red", ANSI(1)},
	{"green", ANSI(2)},
	{"yellow", ANSI(3)},
	{"blue", ANSI(4)},
	{"magenta", ANSI(5)},
	{"purple", ANSI(5)},
	{"cyan", ANSI(6)},
	{"gray", ANSI(7)},
	{"gray+", ANSI(8)},
	{"red-", ANSI(9)},
	{"green-", ANSI(10)},
	{"yellow-", ANSI(11)},
	{"blue-", ANSI(12)},
	{"magenta-", ANSI(13)},
	{"cyan-", ANSI(14)},
	{"white", ANSI(15)},
}

// NamedColors returns the builtin colour names in palette order.
func NamedColors() []NamedColor {
	out := make([]NamedColor, len(namedColors))
	copy(out, namedColors)
	return out
}

// LookupColor parses a colour value.
//
// Accepted forms are a builtin name, exactly six hex digits ("66ccff") and a
// decimal palette index from 0 to 255.
func LookupColor(s string) (Color, bool) {
	for _, named := range namedColors {
		if named.Name == s {
			return named.Color, true
		}
	}

	if r, g, b, ok := markup.HexRGB(s); ok {
		return RGB(r, g, b), true
	}

	if index, err := strconv.ParseUint(s, 10, 8); err == nil {
		return ANSI(uint8(index)), true
	}

	return Color{}, false
}
