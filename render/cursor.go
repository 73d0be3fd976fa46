// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image"

	"cogentcore.org/colorpicker/colors"
	"cogentcore.org/colorpicker/math32"
	"golang.org/x/image/vector"
)

const (
	// CursorRadius is the radius of the surface cursors.
	CursorRadius = 5

	// CursorWidth is the stroke width of all cursors.
	CursorWidth = 2

	circleSegments = 32
)

// cursor rasterizes anti-aliased cursor shapes onto an image.
type cursor struct {
	dst *image.RGBA
	ras *vector.Rasterizer
}

func newCursor(dst *image.RGBA) *cursor {
	b := dst.Bounds()
	return &cursor{dst: dst, ras: vector.NewRasterizer(b.Dx(), b.Dy())}
}

func (c *cursor) fill(col colors.Color) {
	c.ras.Draw(c.dst, c.dst.Bounds(), image.NewUniform(col.AsRGBA()), image.Point{})
	b := c.dst.Bounds()
	c.ras.Reset(b.Dx(), b.Dy())
}

// circle adds a closed circle path; reverse winds it the other way,
// which cuts it out of a circle wound forwards.
func (c *cursor) circle(ctr math32.Vector2, r float32, reverse bool) {
	for i := 0; i <= circleSegments; i++ {
		k := i
		if reverse {
			k = circleSegments - i
		}
		a := float32(k) / circleSegments * math32.Tau
		x, y := ctr.X+r*math32.Cos(a), ctr.Y+r*math32.Sin(a)
		if i == 0 {
			c.ras.MoveTo(x, y)
		} else {
			c.ras.LineTo(x, y)
		}
	}
	c.ras.ClosePath()
}

// ring draws a circle outline with a dark halo inside and outside.
func (c *cursor) ring(ctr math32.Vector2, r float32, col colors.Color) {
	halo := colors.Color{A: 0.5}
	c.circle(ctr, r+CursorWidth, false)
	c.circle(ctr, r-CursorWidth, true)
	c.fill(halo)
	c.circle(ctr, r+CursorWidth/2, false)
	c.circle(ctr, r-CursorWidth/2, true)
	c.fill(col)
}

func (c *cursor) rect(x0, y0, x1, y1 float32) {
	c.ras.MoveTo(x0, y0)
	c.ras.LineTo(x1, y0)
	c.ras.LineTo(x1, y1)
	c.ras.LineTo(x0, y1)
	c.ras.ClosePath()
}

// line draws a horizontal line across the image at y.
func (c *cursor) line(y float32, col colors.Color) {
	w := float32(c.dst.Bounds().Dx())
	c.rect(0, y-CursorWidth/2, w, y+CursorWidth/2)
	c.fill(col)
}

// marker draws a vertical line down the image at x.
func (c *cursor) marker(x float32, col colors.Color) {
	h := float32(c.dst.Bounds().Dy())
	c.rect(x-CursorWidth/2, 0, x+CursorWidth/2, h)
	c.fill(col)
}

// corner draws a right triangle with its right angle at the given
// top right corner and legs of the given size.
func (c *cursor) corner(at math32.Vector2, size float32, col colors.Color) {
	c.ras.MoveTo(at.X, at.Y)
	c.ras.LineTo(at.X, at.Y+size)
	c.ras.LineTo(at.X-size, at.Y)
	c.ras.ClosePath()
	c.fill(col)
}
