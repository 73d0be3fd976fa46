// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package picker

import (
	"errors"
	"image"
	"log/slog"

	"cogentcore.org/colorpicker/colors"
	"github.com/anthonynsimon/bild/transform"
)

// ScreenSampler reads the pointer position and pixel colors of the
// screen for the eyedropper.
type ScreenSampler interface {

	// PointerPosition returns the current pointer position in screen pixels.
	PointerPosition() image.Point

	// Pixel returns the color of the screen pixel at the given position.
	Pixel(pos image.Point) colors.Color
}

// RegionSampler is an optional interface of a [ScreenSampler] that
// can capture a region of the screen for the zoomed preview.
type RegionSampler interface {
	Region(r image.Rectangle) image.Image
}

const (
	// PickRegion is the size of the screen region shown in the eyedropper preview.
	PickRegion = 17

	// PickZoom is the size of the zoomed eyedropper preview.
	PickZoom = 3 * PickRegion
)

// ErrNoSampler is returned when the eyedropper is started without a [ScreenSampler].
var ErrNoSampler = errors.New("picker: no screen sampler")

// SetSampler sets the screen sampler used by the eyedropper.
func (p *Picker) SetSampler(s ScreenSampler) *Picker {
	p.sampler = s
	return p
}

// StartPicking starts the eyedropper. While it is active, every
// [Picker.FrameTick] applies the color under the pointer until
// [Picker.PickPointer] finishes or cancels it.
func (p *Picker) StartPicking() error {
	if p.sampler == nil {
		slog.Error("picker.StartPicking", "err", ErrNoSampler)
		return ErrNoSampler
	}
	p.mutate(func() {
		if p.picking {
			return
		}
		p.picking = true
		p.prePickColor = p.color
		p.update(PartPicking)
		slog.Debug("picker eyedropper started", "color", p.color)
	})
	return nil
}

// FrameTick samples the pixel under the pointer once while the eyedropper
// is active and applies it as the current color, without notifying
// change listeners. It is called from the per-frame update of the host.
func (p *Picker) FrameTick() {
	p.mutate(func() {
		if !p.picking || p.sampler == nil {
			return
		}
		pos := p.sampler.PointerPosition()
		c := p.sampler.Pixel(pos)
		if rs, ok := p.sampler.(RegionSampler); ok {
			p.pickPreview = zoomRegion(rs, pos)
		}
		p.setPickColor(c)
		p.update(PartPicking)
	})
}

// zoomRegion returns the region around pos scaled up by nearest
// neighbor sampling so that each pixel is clearly visible.
func zoomRegion(rs RegionSampler, pos image.Point) image.Image {
	half := PickRegion / 2
	r := image.Rect(pos.X-half, pos.Y-half, pos.X+half+1, pos.Y+half+1)
	img := rs.Region(r)
	if img == nil {
		return nil
	}
	return transform.Resize(img, PickZoom, PickZoom, transform.NearestNeighbor)
}

// PickPointer handles a button press while the eyedropper is active.
// The primary button finishes picking and notifies change listeners;
// the secondary button cancels it.
func (p *Picker) PickPointer(button Buttons) {
	switch button {
	case Left:
		p.mutate(func() {
			if !p.picking {
				return
			}
			p.stopPicking()
			p.changed()
			slog.Debug("picker eyedropper finished", "color", p.color)
		})
	case Right:
		p.CancelPicking()
	}
}

// CancelPicking cancels the eyedropper, restoring the color from
// before it was started.
func (p *Picker) CancelPicking() {
	p.mutate(func() {
		if !p.picking {
			return
		}
		p.stopPicking()
		p.setPickColor(p.prePickColor)
		slog.Debug("picker eyedropper canceled", "color", p.color)
	})
}

func (p *Picker) stopPicking() {
	p.picking = false
	p.pickPreview = nil
	p.update(PartPicking)
}

// ImageSampler is a [ScreenSampler] and [RegionSampler] over a captured
// image, with a pointer position set by the host.
type ImageSampler struct {

	// Image is the captured screen.
	Image image.Image

	// Pointer is the pointer position in the coordinates of Image.
	Pointer image.Point
}

// NewImageSampler returns a new sampler for the given image.
func NewImageSampler(img image.Image) *ImageSampler {
	return &ImageSampler{Image: img}
}

func (s *ImageSampler) PointerPosition() image.Point { return s.Pointer }

// Pixel returns the color at the given position, or transparent
// outside of the image.
func (s *ImageSampler) Pixel(pos image.Point) colors.Color {
	if s.Image == nil || !pos.In(s.Image.Bounds()) {
		return colors.Transparent
	}
	return colors.FromStd(s.Image.At(pos.X, pos.Y))
}

// Region returns the given region of the image, with transparent
// pixels outside of it.
func (s *ImageSampler) Region(r image.Rectangle) image.Image {
	if s.Image == nil {
		return nil
	}
	dst := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if (image.Point{x, y}).In(s.Image.Bounds()) {
				dst.Set(x-r.Min.X, y-r.Min.Y, s.Image.At(x, y))
			}
		}
	}
	return dst
}
