// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hsv provides the hexcone hue, saturation and value color model.
package hsv

import (
	"fmt"

	"cogentcore.org/colorpicker/colors"
	"cogentcore.org/colorpicker/math32"
)

// HSV represents a color in the hue, saturation and value model.
// All components are nominally in the 0-1 range; hue is a fraction of a
// full turn and wraps around. Value may exceed 1 for overbright colors.
type HSV struct {

	// H is the hue, as a fraction of a full turn (0-1).
	H float32

	// S is the saturation (0-1).
	S float32

	// V is the value, which is the largest of the red, green and blue components.
	V float32

	// A is the alpha (opacity) component, carried through unchanged.
	A float32
}

// FromColor converts the given color to HSV. The hue of an achromatic color
// (zero saturation) is 0 by convention.
func FromColor(c colors.Color) HSV {
	mx := max(c.R, c.G, c.B)
	mn := min(c.R, c.G, c.B)
	delta := mx - mn

	h := HSV{V: mx, A: c.A}
	if mx != 0 {
		h.S = delta / mx
	}
	if delta == 0 {
		return h
	}
	switch mx {
	case c.R:
		h.H = (c.G - c.B) / delta
	case c.G:
		h.H = 2 + (c.B-c.R)/delta
	default:
		h.H = 4 + (c.R-c.G)/delta
	}
	h.H /= 6
	if h.H < 0 {
		h.H += 1
	}
	return h
}

// ToColor converts the given hue, saturation, value and alpha to a color.
// The hue is wrapped into [0, 1) before use.
func ToColor(h, s, v, a float32) colors.Color {
	if s == 0 {
		return colors.Color{R: v, G: v, B: v, A: a}
	}
	h = math32.Wrap01(h) * 6
	i := math32.Floor(h)
	f := h - i
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	switch int(i) {
	case 0:
		return colors.Color{R: v, G: t, B: p, A: a}
	case 1:
		return colors.Color{R: q, G: v, B: p, A: a}
	case 2:
		return colors.Color{R: p, G: v, B: t, A: a}
	case 3:
		return colors.Color{R: p, G: q, B: v, A: a}
	case 4:
		return colors.Color{R: t, G: p, B: v, A: a}
	default:
		return colors.Color{R: v, G: p, B: q, A: a}
	}
}

// New returns a new HSV value.
func New(h, s, v, a float32) HSV {
	return HSV{h, s, v, a}
}

// AsColor returns the HSV value as a color.
func (h HSV) AsColor() colors.Color {
	return ToColor(h.H, h.S, h.V, h.A)
}

// RGBA implements the color.Color interface.
func (h HSV) RGBA() (r, g, b, a uint32) {
	return h.AsColor().RGBA()
}

// WithH returns the HSV value with the given hue.
func (h HSV) WithH(hue float32) HSV {
	h.H = hue
	return h
}

// WithS returns the HSV value with the given saturation.
func (h HSV) WithS(s float32) HSV {
	h.S = s
	return h
}

// WithV returns the HSV value with the given value.
func (h HSV) WithV(v float32) HSV {
	h.V = v
	return h
}

func (h HSV) String() string {
	return fmt.Sprintf("hsva(%g, %g, %g, %g)", h.H, h.S, h.V, h.A)
}
