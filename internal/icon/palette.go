package icon

import "fmt"

// RGB is a single palette entry, 8 bits per channel, opaque.
type RGB struct {
	R, G, B uint8
}

func (c RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Palette maps the four roles of the icon graphic to colors.
// A Palette is loaded once at startup and never mutated afterwards.
type Palette struct {
	// Background fills the whole canvas.
	Background RGB
	// Outer colors the two outermost nodes.
	Outer RGB
	// Inner colors the two nodes adjacent to the center.
	Inner RGB
	// Center colors the enlarged middle node and the 16px dot.
	Center RGB
}

// DefaultPalette returns the stock canview colors.
func DefaultPalette() Palette {
	return Palette{
		Background: RGB{0x1e, 0x29, 0x3b},
		Outer:      RGB{0x34, 0xd3, 0x99},
		Inner:      RGB{0x60, 0xa5, 0xfa},
		Center:     RGB{0x81, 0x8c, 0xf8},
	}
}
