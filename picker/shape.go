// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package picker

import (
	"cogentcore.org/colorpicker/colors"
	"cogentcore.org/colorpicker/colors/hsv"
	"cogentcore.org/colorpicker/colors/okhsl"
	"cogentcore.org/colorpicker/math32"
)

// DefaultWheelRadius is the default [Surface.WheelRadius].
const DefaultWheelRadius = 0.42

// Coords are the cached hue, saturation and value coordinates of
// the current color, along with its OKHSL hue, saturation and lightness.
// All are nominally in 0-1, with the hues wrapping around.
type Coords struct {
	H, S, V       float32
	OKH, OKS, OKL float32
}

// CoordsFromColor derives both triples from the given color.
func CoordsFromColor(c colors.Color) Coords {
	hv := hsv.FromColor(c)
	ok := okhsl.FromColor(c)
	return Coords{H: hv.H, S: hv.S, V: hv.V, OKH: ok.H, OKS: ok.S, OKL: ok.L}
}

// ToColor returns the color for the coordinates that are live for the given
// shape: OKHSL for [ShapeOKHSLCircle] and HSV otherwise. The alpha is a.
func (co Coords) ToColor(shape Shapes, a float32) colors.Color {
	if shape == ShapeOKHSLCircle {
		return okhsl.ToColor(co.OKH, co.OKS, co.OKL, a)
	}
	return hsv.ToColor(co.H, co.S, co.V, a)
}

// Surface maps pointer positions on the 2D picker surface to
// color coordinates and back. Positions are relative to the
// top left of the surface.
type Surface struct {

	// Shape is the layout of the surface.
	Shape Shapes

	// Size is the size of the surface.
	Size math32.Vector2

	// WheelRadius is the half size of the inner rectangle of the wheel
	// relative to the full size, before the 1/√2 factor that inscribes
	// it in a circle. The hue ring spans from twice this value to 1
	// times the radius.
	WheelRadius float32
}

// Center returns the center of the surface.
func (s Surface) Center() math32.Vector2 {
	return s.Size.MulScalar(0.5)
}

// Radius returns the radius of the circle shapes and the wheel.
func (s Surface) Radius() float32 {
	return min(s.Size.X, s.Size.Y) / 2
}

func (s Surface) wheelRadius() float32 {
	if s.WheelRadius <= 0 {
		return DefaultWheelRadius
	}
	return s.WheelRadius
}

// InnerRect returns the minimum and maximum corners of the
// saturation and value rectangle. For the wheel this is the rectangle
// inscribed inside the hue ring; otherwise it is the whole surface.
func (s Surface) InnerRect() (mn, mx math32.Vector2) {
	if s.Shape != ShapeWheel {
		return math32.Vector2{}, s.Size
	}
	half := s.Size.MulScalar(math32.Sqrt12 * s.wheelRadius())
	c := s.Center()
	return c.Sub(half), c.Add(half)
}

// InRing returns whether the given position is in the hue ring of the wheel.
func (s Surface) InRing(pos math32.Vector2) bool {
	r := s.Radius()
	d := s.Center().DistanceTo(pos)
	return d >= r*2*s.wheelRadius() && d <= r
}

// contains returns whether pos is within the surface, inclusive of its edges.
func contains(size, pos math32.Vector2) bool {
	return pos.X >= 0 && pos.Y >= 0 && pos.X <= size.X && pos.Y <= size.Y
}

// hueAt returns the hue for the angle of pos around the center,
// with 0 to the right and increasing clockwise on screen.
func (s Surface) hueAt(pos math32.Vector2) float32 {
	return math32.Wrap01(s.Center().AngleToPoint(pos) / math32.Tau)
}

// Press starts a gesture at the given position, returning the updated
// coordinates and the kind of gesture. It returns false if the position
// is outside of the input region of the shape, in which case the gesture
// must be ignored and the coordinates are unchanged.
func (s Surface) Press(pos math32.Vector2, co Coords) (Coords, Gestures, bool) {
	if !contains(s.Size, pos) || s.Size.X <= 0 || s.Size.Y <= 0 {
		return co, NoGesture, false
	}
	switch s.Shape {
	case ShapeRectangle:
		return s.Drag(pos, co, GestureSV), GestureSV, true
	case ShapeWheel:
		mn, mx := s.InnerRect()
		if contains(mx.Sub(mn), pos.Sub(mn)) {
			return s.Drag(pos, co, GestureSV), GestureSV, true
		}
		if s.InRing(pos) {
			return s.Drag(pos, co, GestureHueSpin), GestureHueSpin, true
		}
	case ShapeVHSCircle, ShapeOKHSLCircle:
		if s.Center().DistanceTo(pos) <= s.Radius() {
			return s.Drag(pos, co, GestureHueSat), GestureHueSat, true
		}
	}
	return co, NoGesture, false
}

// Drag continues a gesture started by [Surface.Press]. Positions
// outside of the input region are clamped to it.
func (s Surface) Drag(pos math32.Vector2, co Coords, g Gestures) Coords {
	switch g {
	case GestureSV:
		mn, mx := s.InnerRect()
		sz := mx.Sub(mn)
		p := pos.Sub(mn).Clamp(math32.Vector2{}, sz)
		if sz.X > 0 {
			co.S = p.X / sz.X
		}
		if sz.Y > 0 {
			co.V = 1 - p.Y/sz.Y
		}
	case GestureHueSpin:
		co.H = s.hueAt(pos)
	case GestureHueSat:
		co.H = s.hueAt(pos)
		r := s.Radius()
		if r > 0 {
			co.S = math32.Clamp(s.Center().DistanceTo(pos)/r, 0, 1)
		}
		// hue and saturation are shared by both circles
		co.OKH = co.H
		co.OKS = co.S
	}
	return co
}

// Cursor returns the position of the cursor for the given coordinates,
// which is the inverse of the mapping used by [Surface.Drag].
func (s Surface) Cursor(co Coords) math32.Vector2 {
	switch s.Shape {
	case ShapeVHSCircle:
		return s.polar(co.H, co.S*s.Radius())
	case ShapeOKHSLCircle:
		return s.polar(co.OKH, co.OKS*s.Radius())
	}
	mn, mx := s.InnerRect()
	sz := mx.Sub(mn)
	p := math32.Vec2(sz.X*co.S, sz.Y*(1-co.V)).Clamp(math32.Vector2{}, sz)
	return mn.Add(p)
}

// HueCursor returns the position of the hue cursor in the middle of the
// ring of the wheel.
func (s Surface) HueCursor(h float32) math32.Vector2 {
	inner := 2 * s.wheelRadius()
	return s.polar(h, s.Radius()*(inner+(1-inner)/2))
}

func (s Surface) polar(h, dist float32) math32.Vector2 {
	a := h * math32.Tau
	return s.Center().Add(math32.Vec2(math32.Cos(a), math32.Sin(a)).MulScalar(dist))
}

// Color returns the color shown at the given position of the surface
// for the given coordinates, and whether the position is drawn at all.
// The hue ring of the wheel shows fully saturated hues.
func (s Surface) Color(pos math32.Vector2, co Coords) (colors.Color, bool) {
	switch s.Shape {
	case ShapeRectangle, ShapeWheel:
		mn, mx := s.InnerRect()
		if contains(mx.Sub(mn), pos.Sub(mn)) {
			c := s.Drag(pos, co, GestureSV)
			return hsv.ToColor(c.H, c.S, c.V, 1), true
		}
		if s.Shape == ShapeWheel && s.InRing(pos) {
			return hsv.ToColor(s.hueAt(pos), 1, 1, 1), true
		}
	case ShapeVHSCircle:
		if s.Center().DistanceTo(pos) <= s.Radius() {
			c := s.Drag(pos, co, GestureHueSat)
			return hsv.ToColor(c.H, c.S, co.V, 1), true
		}
	case ShapeOKHSLCircle:
		if s.Center().DistanceTo(pos) <= s.Radius() {
			c := s.Drag(pos, co, GestureHueSat)
			return okhsl.ToColor(c.OKH, c.OKS, co.OKL, 1), true
		}
	}
	return colors.Color{}, false
}

// Strip maps vertical pointer positions on the 1D strip beside the
// surface to color coordinates and back. The strip edits the hue for
// [ShapeRectangle], the value for [ShapeVHSCircle] and the lightness for
// [ShapeOKHSLCircle]. The other shapes have no strip.
type Strip struct {

	// Shape is the layout of the surface the strip belongs to.
	Shape Shapes

	// Size is the size of the strip.
	Size math32.Vector2
}

// Press starts a gesture at the given position. It returns false if the
// shape has no strip or the position is outside of the strip.
func (s Strip) Press(pos math32.Vector2, co Coords) (Coords, bool) {
	if !s.Shape.HasStrip() || !contains(s.Size, pos) || s.Size.Y <= 0 {
		return co, false
	}
	return s.Drag(pos, co), true
}

// Drag continues a gesture started by [Strip.Press], clamping
// the position to the strip.
func (s Strip) Drag(pos math32.Vector2, co Coords) Coords {
	if s.Size.Y <= 0 {
		return co
	}
	t := math32.Clamp(pos.Y, 0, s.Size.Y) / s.Size.Y
	switch s.Shape {
	case ShapeRectangle:
		co.H = t
	case ShapeVHSCircle, ShapeOKHSLCircle:
		co.V = 1 - t
		co.OKL = co.V
	}
	return co
}

// Cursor returns the vertical position of the strip cursor.
func (s Strip) Cursor(co Coords) float32 {
	switch s.Shape {
	case ShapeRectangle:
		return s.Size.Y * math32.Clamp(co.H, 0, 1)
	case ShapeVHSCircle:
		return s.Size.Y * (1 - math32.Clamp(co.V, 0, 1))
	case ShapeOKHSLCircle:
		return s.Size.Y * (1 - math32.Clamp(co.OKL, 0, 1))
	}
	return 0
}

// Color returns the color shown at the given vertical position of the strip.
func (s Strip) Color(y float32, co Coords) colors.Color {
	c := s.Drag(math32.Vec2(0, y), co)
	switch s.Shape {
	case ShapeRectangle:
		return hsv.ToColor(c.H, 1, 1, 1)
	case ShapeOKHSLCircle:
		return okhsl.ToColor(c.OKH, c.OKS, c.OKL, 1)
	}
	return hsv.ToColor(c.H, c.S, c.V, 1)
}
