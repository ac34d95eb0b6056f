package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
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
)

type paletteEntry struct {
	ansi    string
	r, g, b uint8
}

// palette holds the ANSI code and an sRGB approximation for each color.
// The RGB values follow the xterm defaults.
var palette = [...]paletteEntry{
	ColorDefault:       {"", 0xe5, 0xe5, 0xe5},
	ColorRed:           {"1", 0xcd, 0x00, 0x00},
	ColorGreen:         {"2", 0x00, 0xcd, 0x00},
	ColorYellow:        {"3", 0xcd, 0xcd, 0x00},
	ColorBlue:          {"4", 0x00, 0x00, 0xee},
	ColorMagenta:       {"5", 0xcd, 0x00, 0xcd},
	ColorCyan:          {"6", 0x00, 0xcd, 0xcd},
	ColorWhite:         {"7", 0xe5, 0xe5, 0xe5},
	ColorBrightRed:     {"9", 0xff, 0x00, 0x00},
	ColorBrightGreen:   {"10", 0x00, 0xff, 0x00},
	ColorBrightYellow:  {"11", 0xff, 0xff, 0x00},
	ColorBrightBlue:    {"12", 0x5c, 0x5c, 0xff},
	ColorBrightMagenta: {"13", 0xff, 0x00, 0xff},
	ColorBrightCyan:    {"14", 0x00, 0xff, 0xff},
	ColorBrightWhite:   {"15", 0xff, 0xff, 0xff},
	ColorOrange:        {"208", 0xff, 0x87, 0x00},
	ColorGray:          {"245", 0x8a, 0x8a, 0x8a},
}

// Colors returns every predefined color in declaration order.
func Colors() []Color {
	out := make([]Color, len(palette))
	for i := range palette {
		out[i] = Color(i) //#nosec G115 -- palette is small
	}
	return out
}

// ANSI returns the terminal color code, or "" for the terminal default.
func (c Color) ANSI() string {
	if int(c) >= len(palette) {
		return ""
	}
	return palette[c].ansi
}

// RGB returns an sRGB approximation of the color for pixel front ends.
func (c Color) RGB() (r, g, b uint8) {
	if int(c) >= len(palette) {
		c = ColorDefault
	}
	p := palette[c]
	return p.r, p.g, p.b
}
