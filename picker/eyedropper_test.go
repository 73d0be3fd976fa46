// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package picker

import (
	"image"
	"image/color"
	"testing"

	"cogentcore.org/colorpicker/colors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testScreen() *ImageSampler {
	img := image.NewNRGBA(image.Rect(0, 0, 40, 40))
	for y := range 40 {
		for x := range 40 {
			c := color.NRGBA{0, 0, 255, 255}
			if x < 20 {
				c = color.NRGBA{255, 0, 0, 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return NewImageSampler(img)
}

func TestStartPickingNoSampler(t *testing.T) {
	p := New()
	assert.ErrorIs(t, p.StartPicking(), ErrNoSampler)
	assert.False(t, p.Picking())
}

func TestPickFinish(t *testing.T) {
	p := New()
	r := record(p)
	s := testScreen()
	p.SetSampler(s)
	require.NoError(t, p.StartPicking())
	assert.True(t, p.Picking())

	s.Pointer = image.Pt(5, 5)
	p.FrameTick()
	assert.Equal(t, red, p.Color())
	v := p.View()
	require.NotNil(t, v.PickPreview)
	assert.Equal(t, image.Rect(0, 0, PickZoom, PickZoom), v.PickPreview.Bounds())
	assert.Equal(t, colors.White, v.PickBackground)

	s.Pointer = image.Pt(30, 5)
	p.FrameTick()
	assert.Equal(t, blue, p.Color())
	assert.Empty(t, r.changes)

	p.PickPointer(Left)
	assert.False(t, p.Picking())
	assert.Nil(t, p.View().PickPreview)
	assert.Equal(t, []colors.Color{blue}, r.changes)

	// ticks after picking change nothing
	s.Pointer = image.Pt(5, 5)
	p.FrameTick()
	assert.Equal(t, blue, p.Color())
}

func TestPickCancel(t *testing.T) {
	p := New()
	r := record(p)
	s := testScreen()
	p.SetSampler(s)
	p.SetColor(green)
	require.NoError(t, p.StartPicking())
	s.Pointer = image.Pt(5, 5)
	p.FrameTick()
	assert.Equal(t, red, p.Color())

	p.PickPointer(Right)
	assert.False(t, p.Picking())
	assert.Equal(t, green, p.Color())
	assert.Empty(t, r.changes)

	require.NoError(t, p.StartPicking())
	p.FrameTick()
	p.CancelPicking()
	assert.Equal(t, green, p.Color())
}

func TestImageSampler(t *testing.T) {
	s := testScreen()
	assert.Equal(t, colors.Transparent, s.Pixel(image.Pt(-1, 0)))
	assert.Equal(t, red, s.Pixel(image.Pt(0, 0)))
	reg := s.Region(image.Rect(-2, -2, 3, 3))
	assert.Equal(t, image.Rect(0, 0, 5, 5), reg.Bounds())
	_, _, _, a := reg.At(0, 0).RGBA()
	assert.Zero(t, a)
	assert.Equal(t, red, colors.FromStd(reg.At(2, 2)))
}
