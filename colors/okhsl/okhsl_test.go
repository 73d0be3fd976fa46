// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package okhsl

import (
	"fmt"
	"testing"

	"cogentcore.org/colorpicker/colors"
	"github.com/stretchr/testify/assert"
)

func TestTransfer(t *testing.T) {
	for _, x := range []float64{0, 0.001, 0.04, 0.2, 0.5, 0.9, 1} {
		assert.InDelta(t, x, FromLinear(ToLinear(x)), 1e-9)
	}
	assert.InDelta(t, 0.21404, ToLinear(0.5), 1e-4)
}

func TestOKLab(t *testing.T) {
	lab := LinearToOKLab(RGB{1, 1, 1})
	assert.InDelta(t, 1, lab.L, 1e-4)
	assert.InDelta(t, 0, lab.A, 1e-4)
	assert.InDelta(t, 0, lab.B, 1e-4)

	red := LinearToOKLab(RGB{1, 0, 0})
	assert.InDelta(t, 0.62796, red.L, 1e-3)
	assert.InDelta(t, 0.22486, red.A, 1e-3)
	assert.InDelta(t, 0.12585, red.B, 1e-3)

	back := OKLabToLinear(red)
	assert.InDelta(t, 1, back.R, 1e-4)
	assert.InDelta(t, 0, back.G, 1e-4)
	assert.InDelta(t, 0, back.B, 1e-4)
}

func TestExtremes(t *testing.T) {
	assert.Equal(t, colors.Color{R: 1, G: 1, B: 1, A: 0.5}, ToColor(0.3, 0.7, 1, 0.5))
	assert.Equal(t, colors.Color{R: 0, G: 0, B: 0, A: 1}, ToColor(0.3, 0.7, 0, 1))
	assert.Equal(t, colors.Color{R: 1, G: 1, B: 1, A: 1}, ToColor(0.3, 0.7, 1.5, 1))

	w := FromColor(colors.White)
	assert.Equal(t, float32(0), w.H)
	assert.Equal(t, float32(0), w.S)
	assert.InDelta(t, 1, w.L, 1e-4)

	k := FromColor(colors.Black)
	assert.Equal(t, HSL{A: 1}, k)
}

func TestGrey(t *testing.T) {
	g := FromColor(colors.Color{R: 0.5, G: 0.5, B: 0.5, A: 1})
	assert.Equal(t, float32(0), g.H)
	assert.Equal(t, float32(0), g.S)
	assert.Greater(t, g.L, float32(0.4))
	assert.Less(t, g.L, float32(0.7))

	c := ToColor(0.6, 0, g.L, 1)
	assert.InDelta(t, 0.5, c.R, 1e-3)
	assert.InDelta(t, 0.5, c.G, 1e-3)
	assert.InDelta(t, 0.5, c.B, 1e-3)
}

func TestRed(t *testing.T) {
	h := FromColor(colors.Color{R: 1, G: 0, B: 0, A: 1})
	// OKLCH hue of sRGB red is about 29.2 degrees
	assert.InDelta(t, 29.23/360, h.H, 2e-3)
	assert.InDelta(t, 1, h.S, 1e-3)
}

func TestRoundTrip(t *testing.T) {
	vals := []float32{0.05, 0.25, 0.5, 0.75, 0.95}
	for _, r := range vals {
		for _, g := range vals {
			for _, b := range vals {
				c := colors.Color{R: r, G: g, B: b, A: 1}
				h := FromColor(c)
				assert.GreaterOrEqual(t, h.S, float32(0))
				assert.LessOrEqual(t, h.S, float32(1))
				res := h.AsColor()
				msg := fmt.Sprintf("%v -> %v -> %v", c, h, res)
				assert.InDelta(t, c.R, res.R, 2e-3, msg)
				assert.InDelta(t, c.G, res.G, 2e-3, msg)
				assert.InDelta(t, c.B, res.B, 2e-3, msg)
			}
		}
	}
}

func TestClampInputs(t *testing.T) {
	assert.Equal(t, ToColor(0.2, 1, 0.6, 1), ToColor(0.2, 3, 0.6, 1))
	assert.Equal(t, ToColor(0.2, 0, 0.6, 1), ToColor(0.2, -1, 0.6, 1))

	a, b := ToColor(0.2, 0.5, 0.6, 1), ToColor(1.2, 0.5, 0.6, 1)
	assert.InDelta(t, a.R, b.R, 1e-4)
	assert.InDelta(t, a.G, b.G, 1e-4)
	assert.InDelta(t, a.B, b.B, 1e-4)
}
