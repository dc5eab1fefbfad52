// Package graphics holds the animatable drawing targets the engine can
// drive: [Paint] structures and detached [FloatValue] primitives, plus
// the [Color] representation they share.
package graphics

// maxByte is the maximum value of a color channel byte.
const maxByte = 255.0

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// RGBA8 constructs a Color from red, green, blue, alpha bytes (all 0-255).
func RGBA8(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA8(r, g, b, 0xFF)
}

// Alpha8 returns the alpha channel byte (0-255).
func (c Color) Alpha8() uint8 {
	return uint8(c >> 24)
}

// Alpha returns the alpha component as a value from 0.0 (transparent)
// to 1.0 (opaque).
func (c Color) Alpha() float64 {
	return float64(uint8(c>>24)) / maxByte
}

// WithAlpha8 returns a copy of the color with the given alpha byte.
func (c Color) WithAlpha8(a uint8) Color {
	return Color(uint32(a)<<24 | uint32(c)&0x00FFFFFF)
}

// Common colors.
const (
	ColorTransparent = Color(0x00000000)
	ColorBlack       = Color(0xFF000000)
	ColorWhite       = Color(0xFFFFFFFF)
)
