// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image"
	"image/color"
	"testing"

	"cogentcore.org/colorpicker/base/iox/imagex"
	"cogentcore.org/colorpicker/colors"
	"cogentcore.org/colorpicker/math32"
	"cogentcore.org/colorpicker/picker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPicker(t *testing.T, shape picker.Shapes) *picker.Picker {
	p := picker.New().SetSurfaceSize(math32.Vec2(128, 128)).SetStripSize(math32.Vec2(16, 128))
	require.NoError(t, p.SetShape(shape))
	p.SetColor(colors.Color{R: 0.9, G: 0.5, B: 0.2, A: 1})
	return p
}

func TestSurfaceRectangle(t *testing.T) {
	p := picker.New().SetSurfaceSize(math32.Vec2(128, 128))
	img := Surface(p.View())
	assert.Equal(t, 128, img.Bounds().Dx())

	bl := img.RGBAAt(0, 127)
	assert.Less(t, bl.R, uint8(3))
	assert.Equal(t, uint8(255), bl.A)
	tr := img.RGBAAt(127, 0)
	assert.Greater(t, tr.R, uint8(250))
	assert.Less(t, tr.G, uint8(3))
}

// near asserts that c is within tol of the 8-bit channels r, g, b.
func near(t *testing.T, c color.RGBA, r, g, b uint8, tol int, msgAndArgs ...any) {
	t.Helper()
	assert.True(t, imagex.CompareColors(c, color.RGBA{r, g, b, 255}, tol), "got %v, expected (%d, %d, %d) %v", c, r, g, b, msgAndArgs)
}

// assertSurface checks every pixel of the surface that is clear of the
// cursors against the color the shape maps it to.
func assertSurface(t *testing.T, img *image.RGBA, v *picker.View) {
	t.Helper()
	margin := float32(CursorRadius + 2*CursorWidth)
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			pos := center(x, y)
			if pos.DistanceTo(v.SurfaceCursor) < margin || (v.Shape == picker.ShapeWheel && pos.DistanceTo(v.HueCursor) < margin) {
				continue
			}
			c, ok := v.Surface.Color(pos, v.Coords)
			if !ok {
				if !assert.Zero(t, img.RGBAAt(x, y).A, "%v at (%d, %d)", v.Shape, x, y) {
					return
				}
				continue
			}
			if !assert.Equal(t, c.AsRGBA(), img.RGBAAt(x, y), "%v at (%d, %d)", v.Shape, x, y) {
				return
			}
		}
	}
}

func TestSurfaceShapes(t *testing.T) {
	for _, sh := range []picker.Shapes{picker.ShapeRectangle, picker.ShapeWheel, picker.ShapeVHSCircle, picker.ShapeOKHSLCircle} {
		p := testPicker(t, sh)
		v := p.View()
		img := Surface(v)
		if sh != picker.ShapeRectangle {
			assert.Zero(t, img.RGBAAt(0, 0).A, "shape %v", sh)
		}
		assertSurface(t, img, v)
		imagex.Assert(t, img, "surface-"+sh.String())
	}

	// value 0 at the bottom left of the rectangle, pure hue at the top right
	img := Surface(testPicker(t, picker.ShapeRectangle).View())
	near(t, img.RGBAAt(0, 127), 0, 0, 0, 2)
	near(t, img.RGBAAt(127, 0), 254, 109, 1, 3)

	// hue 0 on the ring to the right of the wheel center, and
	// value 0 at the bottom left of its inner rectangle
	img = Surface(testPicker(t, picker.ShapeWheel).View())
	near(t, img.RGBAAt(123, 64), 255, 0, 0, 6)
	near(t, img.RGBAAt(27, 101), 0, 0, 0, 3)

	// grey of the current value at the center of the circles
	img = Surface(testPicker(t, picker.ShapeVHSCircle).View())
	near(t, img.RGBAAt(64, 64), 229, 229, 229, 4)
	img = Surface(testPicker(t, picker.ShapeOKHSLCircle).View())
	ctr := img.RGBAAt(64, 64)
	near(t, ctr, ctr.R, ctr.R, ctr.R, 6)
}

func TestStrip(t *testing.T) {
	p := testPicker(t, picker.ShapeRectangle)
	img := Strip(p.View())
	require.NotNil(t, img)
	top := img.RGBAAt(8, 0)
	assert.Greater(t, top.R, uint8(250))
	near(t, img.RGBAAt(8, 64), 0, 255, 255, 8)
	imagex.Assert(t, img, "strip-Rectangle")

	require.NoError(t, p.SetShape(picker.ShapeVHSCircle))
	img = Strip(p.View())
	require.NotNil(t, img)
	bottom := img.RGBAAt(8, 127)
	assert.Less(t, bottom.R, uint8(3))
	assert.Greater(t, img.RGBAAt(8, 0).R, uint8(250))
	imagex.Assert(t, img, "strip-VHSCircle")

	require.NoError(t, p.SetShape(picker.ShapeWheel))
	assert.Nil(t, Strip(p.View()))
}

func TestSlider(t *testing.T) {
	p := picker.New()
	v := p.View()
	img := Slider(v, 0, math32.Vec2(128, 12))
	left := img.RGBAAt(0, 6)
	assert.Less(t, left.R, uint8(5))
	assert.Greater(t, left.G, uint8(250))
	assert.Nil(t, Slider(v, 4, math32.Vec2(128, 12)))

	p.SetColor(colors.Color{R: 0.2, G: 0.4, B: 0.8, A: 0.5})
	img = Slider(p.View(), 3, math32.Vec2(128, 12))
	near(t, img.RGBAAt(0, 6), 153, 153, 153, 2)
	near(t, img.RGBAAt(127, 6), 51, 102, 204, 2)
	imagex.Assert(t, img, "slider-alpha")

	require.NoError(t, p.SetMode(picker.ModeHSV))
	img = Slider(p.View(), 0, math32.Vec2(128, 12))
	near(t, img.RGBAAt(0, 6), 204, 51, 51, 3)
	near(t, img.RGBAAt(127, 6), 204, 51, 53, 3)
	imagex.Assert(t, img, "slider-hue")
}

func TestSample(t *testing.T) {
	p := picker.New().SetSampleSize(math32.Vec2(64, 16))
	p.SetOldColor(colors.Black).SetDisplayOldColor(true)
	p.SetColor(colors.Color{R: 1, A: 1})
	img := Sample(p.View())
	assert.Equal(t, colors.Black.AsRGBA(), img.RGBAAt(2, 8))
	assert.Equal(t, colors.Color{R: 1, A: 1}.AsRGBA(), img.RGBAAt(40, 14))

	require.NoError(t, p.SetMode(picker.ModeRAW))
	require.NoError(t, p.SliderChanged(0, 3))
	img = Sample(p.View())
	assert.Greater(t, img.RGBAAt(63, 0).G, uint8(250))
	assert.Equal(t, colors.Black.AsRGBA(), img.RGBAAt(2, 8))
	near(t, img.RGBAAt(40, 14), 255, 0, 0, 0)
	imagex.Assert(t, img, "sample-overbright")
}

func TestSwatches(t *testing.T) {
	cs := make([]colors.Color, 10)
	for i := range cs {
		cs[i] = colors.FromRGBA8(uint8(i*25), 0, 0, 255)
	}
	img := Swatches(cs, 10)
	assert.Equal(t, 80, img.Bounds().Dx())
	assert.Equal(t, 20, img.Bounds().Dy())
	assert.Equal(t, cs[9].AsRGBA(), img.RGBAAt(15, 15))
	assert.Zero(t, img.RGBAAt(75, 15).A)
}

func TestRenderer(t *testing.T) {
	p := picker.New()
	r := NewRenderer()
	var last picker.Parts
	r.OnRedraw = func(parts picker.Parts) { last = parts }
	p.SetRenderer(r)
	assert.Equal(t, picker.PartsAll, last)
	assert.NotNil(t, r.Surface)
	assert.NotNil(t, r.Strip)
	assert.NotNil(t, r.Sample)
	for _, s := range r.Sliders {
		assert.NotNil(t, s)
	}
	assert.Nil(t, r.Pick)

	n := r.Redraws
	p.AddPreset(colors.Black)
	assert.Equal(t, n+1, r.Redraws)
	assert.Equal(t, picker.PartPresets, last)
	assert.Equal(t, 8*r.SwatchSize, r.Presets.Bounds().Dx())

	p.SetEditAlpha(false)
	assert.Nil(t, r.Sliders[3])

	require.NoError(t, p.SetShape(picker.ShapeWheel))
	assert.Nil(t, r.Strip)
	assert.Equal(t, picker.ShapeWheel, r.View.Shape)
}

func TestPickPreview(t *testing.T) {
	p := picker.New()
	r := NewRenderer()
	p.SetRenderer(r)
	s := picker.NewImageSampler(Surface(p.View()))
	s.Pointer = s.Image.Bounds().Max.Div(2)
	p.SetSampler(s)
	require.NoError(t, p.StartPicking())
	p.FrameTick()
	require.NotNil(t, r.Pick)
	assert.Equal(t, picker.PickZoom+4, r.Pick.Bounds().Dx())
	p.CancelPicking()
	assert.Nil(t, r.Pick)
}
