// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image"
	"log/slog"

	"cogentcore.org/colorpicker/math32"
	"cogentcore.org/colorpicker/picker"
)

// Renderer is a [picker.Renderer] that keeps the images of every part
// of a picker, redrawing only the parts that changed.
type Renderer struct {

	// SliderSize is the size of each slider.
	SliderSize math32.Vector2

	// SwatchSize is the size of each preset swatch.
	SwatchSize int

	// Surface is the image of the 2D surface.
	Surface *image.RGBA

	// Strip is the image of the 1D strip, nil for shapes without one.
	Strip *image.RGBA

	// Sliders are the images of the channel and alpha sliders;
	// the alpha slider is nil if alpha is not edited.
	Sliders [4]*image.RGBA

	// Sample is the image of the sample preview.
	Sample *image.RGBA

	// Presets is the image of the preset swatches.
	Presets *image.RGBA

	// Recent is the image of the recent swatches.
	Recent *image.RGBA

	// Pick is the image of the eyedropper preview while picking.
	Pick *image.RGBA

	// View is the last view drawn.
	View *picker.View

	// Redraws is the number of redraws so far.
	Redraws int

	// OnRedraw is called after every redraw with the parts redrawn.
	OnRedraw func(parts picker.Parts)
}

// NewRenderer returns a new renderer with default slider and swatch sizes.
func NewRenderer() *Renderer {
	return &Renderer{SliderSize: math32.Vec2(256, 16), SwatchSize: 24}
}

// Redraw implements [picker.Renderer].
func (r *Renderer) Redraw(parts picker.Parts, v *picker.View) {
	r.View = v
	r.Redraws++
	if parts.Has(picker.PartSurface) {
		r.Surface = Surface(v)
	}
	if parts.Has(picker.PartStrip) {
		r.Strip = Strip(v)
	}
	if parts.Has(picker.PartSliders) {
		for i := range r.Sliders {
			r.Sliders[i] = nil
			if i < 3 || v.EditAlpha {
				r.Sliders[i] = Slider(v, i, r.SliderSize)
			}
		}
	}
	if parts.Has(picker.PartSample) {
		r.Sample = Sample(v)
	}
	if parts.Has(picker.PartPresets) {
		r.Presets = Swatches(v.Presets, r.SwatchSize)
	}
	if parts.Has(picker.PartRecent) {
		r.Recent = Swatches(v.Recent, r.SwatchSize)
	}
	if parts.Has(picker.PartPicking) {
		r.Pick = PickPreview(v)
	}
	slog.Debug("picker redrawn", "parts", parts, "color", v.Color)
	if r.OnRedraw != nil {
		r.OnRedraw(parts)
	}
}
