package core

// RGB stores explicit 8-bit color channels, decoupled from any display library
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}
)

// RGBFrom converts a raw channel triple
func RGBFrom(c [3]uint8) RGB {
	return RGB{c[0], c[1], c[2]}
}

// Scale multiplies each channel by factor, truncating (for fading effects)
func (c RGB) Scale(factor float64) RGB {
	if factor <= 0 {
		return RGBBlack
	}
	if factor >= 1 {
		return c
	}
	return RGB{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
	}
}

// Luma returns integer perceived brightness (Rec. 601 weights, 0-255 scaled by 1000)
func (c RGB) Luma() int {
	return 299*int(c.R) + 587*int(c.G) + 114*int(c.B)
}
