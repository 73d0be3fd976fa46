// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render rasterizes the parts of a color picker from a
// [picker.View] snapshot.
package render

import (
	"image"
	"image/color"

	"cogentcore.org/colorpicker/colors"
	"cogentcore.org/colorpicker/math32"
	"cogentcore.org/colorpicker/picker"
	"golang.org/x/image/draw"
)

// CheckerSize is the size of the cells of the checkerboard
// drawn behind translucent colors.
const CheckerSize = 4

var (
	checkerLight = colors.Color{R: 0.8, G: 0.8, B: 0.8, A: 1}
	checkerDark  = colors.Color{R: 0.6, G: 0.6, B: 0.6, A: 1}
)

// checker returns the checkerboard color at the given pixel.
func checker(x, y int) colors.Color {
	if (x/CheckerSize+y/CheckerSize)%2 == 0 {
		return checkerLight
	}
	return checkerDark
}

// over returns c composited over the opaque background bg.
func over(c, bg colors.Color) color.RGBA {
	c = c.Clamp()
	if c.A >= 1 {
		return c.AsRGBA()
	}
	o := bg.Lerp(c, c.A)
	o.A = 1
	return o.AsRGBA()
}

func newImage(sz math32.Vector2) *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, max(int(sz.X), 0), max(int(sz.Y), 0)))
}

// center returns the center of pixel (x, y).
func center(x, y int) math32.Vector2 {
	return math32.Vec2(float32(x)+0.5, float32(y)+0.5)
}

// Surface returns the 2D surface with its cursors.
func Surface(v *picker.View) *image.RGBA {
	sf := v.Surface
	img := newImage(sf.Size)
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if c, ok := sf.Color(center(x, y), v.Coords); ok {
				img.SetRGBA(x, y, c.AsRGBA())
			}
		}
	}
	if sf.Shape == picker.ShapeNone {
		return img
	}
	cur := newCursor(img)
	cur.ring(v.SurfaceCursor, CursorRadius, contrast(v.Color))
	if sf.Shape == picker.ShapeWheel {
		cur.ring(v.HueCursor, CursorRadius, colors.White)
	}
	return img
}

// Strip returns the 1D strip with its cursor,
// or nil if the shape has no strip.
func Strip(v *picker.View) *image.RGBA {
	st := v.Strip
	if !st.Shape.HasStrip() {
		return nil
	}
	img := newImage(st.Size)
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		c := st.Color(float32(y)+0.5, v.Coords).AsRGBA()
		for x := b.Min.X; x < b.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	newCursor(img).line(v.StripCursor, colors.White)
	return img
}

// Slider returns the background of slider i (3 for alpha) with a marker
// at its value. Without gradients the slider is drawn in grey.
func Slider(v *picker.View, i int, sz math32.Vector2) *image.RGBA {
	if i < 0 || i > 3 {
		return nil
	}
	img := newImage(sz)
	b := img.Bounds()
	ch := v.Alpha
	if i < 3 {
		ch = v.Channels[i]
	}
	grad := v.Gradients[i]
	w := b.Dx()
	for x := b.Min.X; x < b.Max.X; x++ {
		c := checkerDark
		if len(grad) > 1 && w > 1 {
			t := float32(x) / float32(w-1) * float32(len(grad)-1)
			k := min(int(t), len(grad)-2)
			c = grad[k].Lerp(grad[k+1], t-float32(k))
		}
		for y := b.Min.Y; y < b.Max.Y; y++ {
			img.SetRGBA(x, y, over(c, checker(x, y)))
		}
	}
	if ch.Max > 0 && w > 0 {
		pos := math32.Clamp(v.Values[i]/ch.Max, 0, 1) * float32(w-1)
		newCursor(img).marker(pos, contrast(v.Color))
	}
	return img
}

// Sample returns the preview of the current color, with the old color
// on the left half if it is displayed. Overbright colors are marked
// with a triangle in the top right corner.
func Sample(v *picker.View) *image.RGBA {
	img := newImage(v.SampleSize)
	b := img.Bounds()
	split := b.Min.X
	if v.DisplayOldColor {
		split = b.Min.X + b.Dx()/2
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := v.Color
			if x < split {
				c = v.OldColor
			}
			img.SetRGBA(x, y, over(c, checker(x, y)))
		}
	}
	if v.Color.IsOverbright() {
		newCursor(img).corner(math32.Vec2(float32(b.Max.X), 0), float32(b.Dy())/3, colors.White)
	}
	return img
}

// Swatches returns the given colors as a grid of square swatches
// with [picker.PresetColumns] columns.
func Swatches(cs []colors.Color, size int) *image.RGBA {
	rows := (len(cs) + picker.PresetColumns - 1) / picker.PresetColumns
	img := image.NewRGBA(image.Rect(0, 0, picker.PresetColumns*size, rows*size))
	for i, c := range cs {
		r := image.Rect(0, 0, size, size).Add(image.Pt(i%picker.PresetColumns*size, i/picker.PresetColumns*size))
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				img.SetRGBA(x, y, over(c, checker(x, y)))
			}
		}
	}
	return img
}

// PickPreview returns the zoomed eyedropper preview framed in its
// background color, or nil if there is no preview.
func PickPreview(v *picker.View) *image.RGBA {
	if v.PickPreview == nil {
		return nil
	}
	const frame = 2
	pb := v.PickPreview.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, pb.Dx()+2*frame, pb.Dy()+2*frame))
	draw.Draw(img, img.Bounds(), image.NewUniform(v.PickBackground.AsRGBA()), image.Point{}, draw.Src)
	draw.Draw(img, pb.Sub(pb.Min).Add(image.Pt(frame, frame)), v.PickPreview, pb.Min, draw.Over)
	return img
}

// contrast returns black or white, whichever contrasts with c.
func contrast(c colors.Color) colors.Color {
	if c.Luminance() < 0.5 {
		return colors.White
	}
	return colors.Black
}
