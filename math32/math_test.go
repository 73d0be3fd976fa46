// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, float32(0), Clamp(float32(-0.5), 0, 1))
	assert.Equal(t, float32(1), Clamp(float32(1.5), 0, 1))
	assert.Equal(t, float32(0.25), Clamp(float32(0.25), 0, 1))
	assert.Equal(t, 3, Clamp(7, 1, 3))
}

func TestWrap01(t *testing.T) {
	assert.InDelta(t, 0.25, Wrap01(1.25), 1e-6)
	assert.InDelta(t, 0.75, Wrap01(-0.25), 1e-6)
	assert.Equal(t, float32(0), Wrap01(1))
	assert.Equal(t, float32(0), Wrap01(0))
}

func TestTruncate(t *testing.T) {
	assert.InDelta(t, 0.333, Truncate(1.0/3.0, 3), 1e-6)
	assert.InDelta(t, 0.667, Truncate(2.0/3.0, 3), 1e-6)
	assert.Equal(t, float32(1), Truncate(1, 3))
}

func TestVector2(t *testing.T) {
	c := Vec2(50, 50)
	assert.Equal(t, float32(50), c.DistanceTo(Vec2(100, 50)))
	assert.InDelta(t, 0, c.AngleToPoint(Vec2(100, 50)), 1e-6)
	assert.InDelta(t, Pi/2, c.AngleToPoint(Vec2(50, 100)), 1e-6)
	assert.InDelta(t, -Pi/2, c.AngleToPoint(Vec2(50, 0)), 1e-6)
	assert.Equal(t, Vec2(0, 10), Vec2(-5, 20).Clamp(Vec2(0, 0), Vec2(10, 10)))
	assert.Equal(t, Vec2(25, 25), c.MulScalar(0.5))
	assert.Equal(t, Vec2(55, 45), c.Add(Vec2(5, -5)))
	assert.Equal(t, Vec2(0, 0), FromPoint(image.Pt(50, 50)).Sub(c))
}
