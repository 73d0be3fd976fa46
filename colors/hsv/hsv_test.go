// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hsv

import (
	"testing"

	"cogentcore.org/colorpicker/colors"
	"github.com/stretchr/testify/assert"
)

func assertColor(t *testing.T, expected, actual colors.Color, tol float64) {
	t.Helper()
	assert.InDelta(t, expected.R, actual.R, tol, "R of %v", actual)
	assert.InDelta(t, expected.G, actual.G, tol, "G of %v", actual)
	assert.InDelta(t, expected.B, actual.B, tol, "B of %v", actual)
	assert.InDelta(t, expected.A, actual.A, tol, "A of %v", actual)
}

func TestFromColor(t *testing.T) {
	h := FromColor(colors.Color{1, 0, 0, 1})
	assert.Equal(t, HSV{0, 1, 1, 1}, h)

	h = FromColor(colors.Color{0, 1, 0, 0.5})
	assert.InDelta(t, 1.0/3.0, h.H, 1e-6)
	assert.Equal(t, float32(1), h.S)
	assert.Equal(t, float32(0.5), h.A)

	h = FromColor(colors.Color{0, 0, 1, 1})
	assert.InDelta(t, 2.0/3.0, h.H, 1e-6)

	h = FromColor(colors.Color{1, 0, 1, 1})
	assert.InDelta(t, 5.0/6.0, h.H, 1e-6)
}

func TestGrey(t *testing.T) {
	h := FromColor(colors.Color{0.4, 0.4, 0.4, 1})
	assert.Equal(t, float32(0), h.H)
	assert.Equal(t, float32(0), h.S)
	assert.InDelta(t, 0.4, h.V, 1e-6)

	h = FromColor(colors.Black)
	assert.Equal(t, HSV{0, 0, 0, 1}, h)
}

func TestOverbright(t *testing.T) {
	c := colors.Color{2, 1, 1, 1}
	h := FromColor(c)
	assert.Equal(t, float32(2), h.V)
	assertColor(t, c, h.AsColor(), 1e-5)
}

func TestHueWraps(t *testing.T) {
	assertColor(t, ToColor(0.25, 1, 1, 1), ToColor(1.25, 1, 1, 1), 1e-5)
	assertColor(t, ToColor(0.75, 1, 1, 1), ToColor(-0.25, 1, 1, 1), 1e-5)
	assertColor(t, colors.Color{1, 0, 0, 1}, ToColor(1, 1, 1, 1), 1e-5)
}

func TestRoundTrip(t *testing.T) {
	steps := []float32{0, 0.1, 0.25, 0.333, 0.5, 0.66, 0.75, 0.9, 1}
	for _, r := range steps {
		for _, g := range steps {
			for _, b := range steps {
				c := colors.Color{r, g, b, 0.8}
				h := FromColor(c)
				assertColor(t, c, ToColor(h.H, h.S, h.V, h.A), 1e-4)
			}
		}
	}
}
