// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package picker

import (
	"testing"

	"cogentcore.org/colorpicker/colors"
	"cogentcore.org/colorpicker/math32"
	"github.com/stretchr/testify/assert"
)

func testSurface(shape Shapes) Surface {
	return Surface{Shape: shape, Size: math32.Vec2(200, 200), WheelRadius: DefaultWheelRadius}
}

func TestInnerRect(t *testing.T) {
	mn, mx := testSurface(ShapeRectangle).InnerRect()
	assert.Equal(t, math32.Vector2{}, mn)
	assert.Equal(t, math32.Vec2(200, 200), mx)

	mn, mx = testSurface(ShapeWheel).InnerRect()
	half := float32(200 * math32.Sqrt12 * DefaultWheelRadius)
	assert.InDelta(t, 100-half, mn.X, 1e-3)
	assert.InDelta(t, 100+half, mx.Y, 1e-3)
}

func TestInRing(t *testing.T) {
	s := testSurface(ShapeWheel)
	assert.True(t, s.InRing(math32.Vec2(195, 100)))
	assert.True(t, s.InRing(math32.Vec2(100, 5)))
	assert.False(t, s.InRing(math32.Vec2(100, 100)))
	assert.False(t, s.InRing(math32.Vec2(180, 100)))
	assert.False(t, s.InRing(math32.Vec2(0, 0)))
}

func TestSurfacePressOutside(t *testing.T) {
	co := Coords{H: 0.3, S: 0.4, V: 0.5}
	for _, sh := range []Shapes{ShapeRectangle, ShapeWheel, ShapeVHSCircle, ShapeOKHSLCircle, ShapeNone} {
		s := testSurface(sh)
		nco, g, ok := s.Press(math32.Vec2(-1, 50), co)
		assert.False(t, ok, "shape %v", sh)
		assert.Equal(t, NoGesture, g)
		assert.Equal(t, co, nco)
	}
	_, _, ok := testSurface(ShapeNone).Press(math32.Vec2(100, 100), co)
	assert.False(t, ok)
}

func TestSurfaceCursorInverse(t *testing.T) {
	co := Coords{H: 0.3, S: 0.25, V: 0.75, OKH: 0.6, OKS: 0.5, OKL: 0.4}
	for _, sh := range []Shapes{ShapeRectangle, ShapeWheel, ShapeVHSCircle, ShapeOKHSLCircle} {
		s := testSurface(sh)
		pos := s.Cursor(co)
		nco, _, ok := s.Press(pos, Coords{})
		if !assert.True(t, ok, "shape %v", sh) {
			continue
		}
		switch sh {
		case ShapeRectangle, ShapeWheel:
			assert.InDelta(t, co.S, nco.S, 1e-4, "shape %v", sh)
			assert.InDelta(t, co.V, nco.V, 1e-4, "shape %v", sh)
		case ShapeVHSCircle:
			assert.InDelta(t, co.H, nco.H, 1e-4)
			assert.InDelta(t, co.S, nco.S, 1e-4)
		case ShapeOKHSLCircle:
			assert.InDelta(t, co.OKH, nco.OKH, 1e-4)
			assert.InDelta(t, co.OKS, nco.OKS, 1e-4)
		}
	}
}

func TestHueCursor(t *testing.T) {
	s := testSurface(ShapeWheel)
	for _, h := range []float32{0, 0.1, 0.5, 0.9} {
		pos := s.HueCursor(h)
		assert.True(t, s.InRing(pos))
		co, g, ok := s.Press(pos, Coords{})
		assert.True(t, ok)
		assert.Equal(t, GestureHueSpin, g)
		assert.InDelta(t, h, co.H, 1e-4)
	}
}

func TestSurfaceDragClamps(t *testing.T) {
	s := testSurface(ShapeRectangle)
	co := s.Drag(math32.Vec2(500, -40), Coords{}, GestureSV)
	assert.Equal(t, float32(1), co.S)
	assert.Equal(t, float32(1), co.V)
	co = s.Drag(math32.Vec2(-5, 900), Coords{}, GestureSV)
	assert.Equal(t, float32(0), co.S)
	assert.Equal(t, float32(0), co.V)
}

func TestSurfaceColor(t *testing.T) {
	s := testSurface(ShapeRectangle)
	c, ok := s.Color(math32.Vec2(200, 0), Coords{H: 0})
	assert.True(t, ok)
	assert.Equal(t, red, c)

	w := testSurface(ShapeWheel)
	_, ok = w.Color(math32.Vec2(1, 1), Coords{})
	assert.False(t, ok)
	c, ok = w.Color(w.HueCursor(0), Coords{})
	assert.True(t, ok)
	assert.True(t, c.IsEqualApprox(red), "got %v", c)

	circ := testSurface(ShapeVHSCircle)
	c, ok = circ.Color(math32.Vec2(100, 100), Coords{V: 1})
	assert.True(t, ok)
	assert.True(t, c.IsEqualApprox(colors.White), "got %v", c)
}

func TestStripMapping(t *testing.T) {
	st := Strip{Shape: ShapeRectangle, Size: math32.Vec2(20, 100)}
	co, ok := st.Press(math32.Vec2(5, 25), Coords{})
	assert.True(t, ok)
	assert.InDelta(t, 0.25, co.H, 1e-6)
	assert.InDelta(t, 25, st.Cursor(co), 1e-4)

	_, ok = st.Press(math32.Vec2(25, 25), Coords{})
	assert.False(t, ok)

	st.Shape = ShapeOKHSLCircle
	co, ok = st.Press(math32.Vec2(5, 25), Coords{})
	assert.True(t, ok)
	assert.InDelta(t, 0.75, co.OKL, 1e-6)
	assert.InDelta(t, 25, st.Cursor(co), 1e-4)

	co = st.Drag(math32.Vec2(5, 300), co)
	assert.Equal(t, float32(0), co.OKL)

	st.Shape = ShapeWheel
	_, ok = st.Press(math32.Vec2(5, 25), Coords{})
	assert.False(t, ok)
}
