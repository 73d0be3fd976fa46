// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides the floating point [Color] type edited by the
// color picker, along with its text forms (hex, named and constructor).
package colors

import (
	"fmt"
	"image/color"

	"cogentcore.org/colorpicker/math32"
)

// Color is a color with floating point red, green, blue and alpha
// components. Components are nominally in the 0-1 range, but they are not
// constrained: values above 1 are "overbright" and are valid for editing
// even though they can not be displayed directly. Components are not
// premultiplied by alpha.
type Color struct {
	R, G, B, A float32
}

// Common colors.
var (
	White       = Color{1, 1, 1, 1}
	Black       = Color{0, 0, 0, 1}
	Transparent = Color{}
)

// New returns a new [Color] with the given components.
func New(r, g, b, a float32) Color {
	return Color{r, g, b, a}
}

// FromStd returns a [Color] from a standard [color.Color].
func FromStd(c color.Color) Color {
	if c == nil {
		return Transparent
	}
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return Color{float32(n.R) / 65535, float32(n.G) / 65535, float32(n.B) / 65535, float32(n.A) / 65535}
}

// FromRGBA8 returns a [Color] from 8-bit non-premultiplied components.
func FromRGBA8(r, g, b, a uint8) Color {
	return Color{float32(r) / 255, float32(g) / 255, float32(b) / 255, float32(a) / 255}
}

// RGBA implements the [color.Color] interface.
// Components are clamped to the displayable range and
// premultiplied by alpha at this point.
func (c Color) RGBA() (r, g, b, a uint32) {
	cc := c.Clamp()
	r = uint32(cc.R*cc.A*65535.0 + 0.5)
	g = uint32(cc.G*cc.A*65535.0 + 0.5)
	b = uint32(cc.B*cc.A*65535.0 + 0.5)
	a = uint32(cc.A*65535.0 + 0.5)
	return
}

// AsRGBA returns the color as a standard [color.RGBA] (premultiplied).
func (c Color) AsRGBA() color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// AsNRGBA returns the clamped color as a standard non-premultiplied [color.NRGBA].
func (c Color) AsNRGBA() color.NRGBA {
	return color.NRGBA{to8(c.R), to8(c.G), to8(c.B), to8(c.A)}
}

// String returns the color in its constructor form with full precision.
func (c Color) String() string {
	return fmt.Sprintf("Color(%g, %g, %g, %g)", c.R, c.G, c.B, c.A)
}

// Clamp returns the color with all components clamped to [0, 1].
func (c Color) Clamp() Color {
	return Color{math32.Clamp(c.R, 0, 1), math32.Clamp(c.G, 0, 1), math32.Clamp(c.B, 0, 1), math32.Clamp(c.A, 0, 1)}
}

// WithA returns the color with the given alpha.
func (c Color) WithA(a float32) Color {
	c.A = a
	return c
}

// Inverted returns the color with its red, green and blue
// components inverted; alpha is preserved.
func (c Color) Inverted() Color {
	return Color{1 - c.R, 1 - c.G, 1 - c.B, c.A}
}

// Luminance returns the relative luminance of the color, ignoring alpha,
// using the Rec. 709 coefficients applied to the stored components.
func (c Color) Luminance() float32 {
	return 0.2126*c.R + 0.7152*c.G + 0.0722*c.B
}

// IsOverbright returns whether any of the red, green or blue
// components exceeds 1.
func (c Color) IsOverbright() bool {
	return c.R > 1 || c.G > 1 || c.B > 1
}

// InGamut returns whether the red, green and blue components
// are all within [0, 1], so the color can be shown as hex.
func (c Color) InGamut() bool {
	return c.R >= 0 && c.G >= 0 && c.B >= 0 && c.R <= 1 && c.G <= 1 && c.B <= 1
}

// IsEqualApprox returns whether the two colors are equal within a small tolerance.
func (c Color) IsEqualApprox(o Color) bool {
	const tol = 1e-5
	return math32.Abs(c.R-o.R) <= tol && math32.Abs(c.G-o.G) <= tol &&
		math32.Abs(c.B-o.B) <= tol && math32.Abs(c.A-o.A) <= tol
}

// ARGB32 returns the color packed into 8-bit ARGB.
// Two colors with the same ARGB32 value are indistinguishable in hex form.
func (c Color) ARGB32() uint32 {
	n := c.AsNRGBA()
	return uint32(n.A)<<24 | uint32(n.R)<<16 | uint32(n.G)<<8 | uint32(n.B)
}

// Lerp returns the linear interpolation between c and o in
// proportion to amount, for all four components.
func (c Color) Lerp(o Color, amount float32) Color {
	return Color{
		math32.Lerp(c.R, o.R, amount),
		math32.Lerp(c.G, o.G, amount),
		math32.Lerp(c.B, o.B, amount),
		math32.Lerp(c.A, o.A, amount),
	}
}

// Components returns the components as an array in r, g, b, a order.
func (c Color) Components() [4]float32 {
	return [4]float32{c.R, c.G, c.B, c.A}
}

// FromComponents returns a color from an array in r, g, b, a order.
func FromComponents(v [4]float32) Color {
	return Color{v[0], v[1], v[2], v[3]}
}

// to8 converts a 0-1 component to a rounded, clamped 8-bit value.
func to8(v float32) uint8 {
	return uint8(math32.Clamp(math32.Round(v*255), 0, 255))
}
