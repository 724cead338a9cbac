// SPDX-License-Identifier: Unlicense OR MIT

package graphics

// Color is an 8-bit RGBA color, non-premultiplied.
type Color struct {
	R, G, B, A uint8
}

// RGBA constructs a Color.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

var (
	White       = Color{255, 255, 255, 255}
	Black       = Color{0, 0, 0, 255}
	Transparent = Color{0, 0, 0, 0}
)

// vec4 returns the color as normalized floats, the form the color
// uniform takes.
func (c Color) vec4() (r, g, b, a float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255
}
