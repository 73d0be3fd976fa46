// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image"
	"image/color"

	"cogentcore.org/colorpicker/colors"
	"cogentcore.org/colorpicker/math32"
	"cogentcore.org/colorpicker/picker"
	"golang.org/x/image/draw"
)

// Layout places the parts of a picker in a window and composes
// the images of a [Renderer] into one frame.
type Layout struct {
	Surface image.Rectangle
	Strip   image.Rectangle
	Sliders [4]image.Rectangle
	Sample  image.Rectangle
	Presets image.Rectangle
	Recent  image.Rectangle
	Pick    image.Rectangle

	// Bounds are the bounds of the whole frame.
	Bounds image.Rectangle
}

// Gap is the space between parts in a [Layout].
const Gap = 8

// NewLayout returns a layout for the sizes of the given view and renderer,
// with the parts stacked in a column and the strip beside the surface.
func NewLayout(v *picker.View, r *Renderer) Layout {
	var l Layout
	pt := func(s math32.Vector2) image.Point { return image.Pt(int(s.X), int(s.Y)) }
	l.Surface = image.Rectangle{Max: pt(v.Surface.Size)}.Add(image.Pt(Gap, Gap))
	l.Strip = image.Rectangle{Max: pt(v.Strip.Size)}.Add(image.Pt(l.Surface.Max.X+Gap, Gap))
	y := l.Surface.Max.Y + Gap
	for i := range l.Sliders {
		l.Sliders[i] = image.Rectangle{Max: pt(r.SliderSize)}.Add(image.Pt(Gap, y))
		y = l.Sliders[i].Max.Y + Gap/2
	}
	y += Gap / 2
	l.Sample = image.Rectangle{Max: pt(v.SampleSize)}.Add(image.Pt(Gap, y))
	y = l.Sample.Max.Y + Gap
	w := picker.PresetColumns * r.SwatchSize
	l.Presets = image.Rect(Gap, y, Gap+w, y+2*r.SwatchSize)
	y = l.Presets.Max.Y + Gap
	l.Recent = image.Rect(Gap, y, Gap+w, y+r.SwatchSize)
	l.Pick = image.Rect(0, 0, picker.PickZoom+4, picker.PickZoom+4).Add(image.Pt(l.Strip.Max.X+Gap, Gap))
	l.Bounds = image.Rect(0, 0, max(l.Strip.Max.X, l.Pick.Max.X, l.Sliders[0].Max.X, w+Gap)+Gap, l.Recent.Max.Y+Gap)
	return l
}

// Hit is the part of a [Layout] under a position.
type Hit struct {

	// Part is the part, or 0 for none.
	Part picker.Parts

	// Slider is the slider index for [picker.PartSliders].
	Slider int

	// Swatch is the swatch index for [picker.PartPresets] and [picker.PartRecent].
	Swatch int

	// Pos is the position relative to the top left of the part.
	Pos math32.Vector2
}

// HitTest returns the part at the given position.
func (l Layout) HitTest(pos image.Point, swatchSize int) Hit {
	rel := func(r image.Rectangle) math32.Vector2 {
		return math32.FromPoint(pos.Sub(r.Min))
	}
	swatch := func(r image.Rectangle) int {
		p := pos.Sub(r.Min)
		return p.Y/swatchSize*picker.PresetColumns + p.X/swatchSize
	}
	switch {
	case pos.In(l.Surface):
		return Hit{Part: picker.PartSurface, Pos: rel(l.Surface)}
	case pos.In(l.Strip):
		return Hit{Part: picker.PartStrip, Pos: rel(l.Strip)}
	case pos.In(l.Sample):
		return Hit{Part: picker.PartSample, Pos: rel(l.Sample)}
	case pos.In(l.Presets):
		return Hit{Part: picker.PartPresets, Swatch: swatch(l.Presets), Pos: rel(l.Presets)}
	case pos.In(l.Recent):
		return Hit{Part: picker.PartRecent, Swatch: swatch(l.Recent), Pos: rel(l.Recent)}
	}
	for i, r := range l.Sliders {
		if pos.In(r) {
			return Hit{Part: picker.PartSliders, Slider: i, Pos: rel(r)}
		}
	}
	return Hit{}
}

// SliderValue returns the value of slider i of the view for the
// given horizontal position in a slider of the given width.
func SliderValue(v *picker.View, i int, x, width float32) float32 {
	ch := v.Alpha
	if i < 3 {
		ch = v.Channels[i]
	}
	if width <= 1 {
		return 0
	}
	return math32.Clamp(x/(width-1), 0, 1) * ch.Max
}

// Compose draws all images of the renderer into the given frame.
func (l Layout) Compose(frame *image.RGBA, r *Renderer, bg colors.Color) {
	draw.Draw(frame, frame.Bounds(), image.NewUniform(bg.AsRGBA()), image.Point{}, draw.Src)
	put := func(img *image.RGBA, at image.Rectangle) {
		if img != nil {
			draw.Draw(frame, at, img, img.Bounds().Min, draw.Over)
		}
	}
	put(r.Surface, l.Surface)
	put(r.Strip, l.Strip)
	for i, s := range r.Sliders {
		put(s, l.Sliders[i])
	}
	put(r.Sample, l.Sample)
	put(r.Presets, l.Presets)
	put(r.Recent, l.Recent)
	put(r.Pick, l.Pick)
}

// Background is the default frame background.
var Background = colors.FromStd(color.Gray{0x30})
