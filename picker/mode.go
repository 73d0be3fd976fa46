// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package picker

import (
	"cogentcore.org/colorpicker/colors"
	"cogentcore.org/colorpicker/colors/hsv"
	"cogentcore.org/colorpicker/colors/okhsl"
)

// Channel describes one slider of a [Mode].
type Channel struct {

	// Label is the short label shown next to the slider.
	Label string

	// Max is the maximum value of the slider; the minimum is always 0.
	Max float32

	// AllowGreater is whether values above Max may be entered,
	// for overbright colors.
	AllowGreater bool
}

// Mode is the slider layout and conversion for one of the [Modes].
// Each mode has three channel sliders plus an alpha slider, and slider
// values are always passed as four values with alpha last.
type Mode interface {

	// Modes returns the enum value of the mode.
	Modes() Modes

	// Channels returns the three channel sliders.
	Channels() [3]Channel

	// Alpha returns the alpha slider.
	Alpha() Channel

	// Step is the step of the sliders.
	Step() float32

	// ArrowStep is the step of the arrows of the numeric fields.
	ArrowStep() float32

	// ShapeOverride returns the shape that the surface uses in this mode
	// regardless of the selected shape, if any.
	ShapeOverride() (Shapes, bool)

	// Values returns the slider values for the given color and coordinates.
	Values(c colors.Color, co Coords) [4]float32

	// Write returns the color and coordinates for the given slider values.
	// The triple edited by the mode is taken from the values, and the
	// other is derived from the resulting color.
	Write(v [4]float32, c colors.Color, co Coords) (colors.Color, Coords)
}

// modes are the implementations of all [Modes], in order.
var modes = [ModesN]Mode{rgbMode{}, hsvMode{}, rawMode{}, okhslMode{}}

// Mode returns the implementation of the mode.
// It returns the RGB mode for invalid values.
func (m Modes) Mode() Mode {
	if !m.IsValid() {
		return modes[ModeRGB]
	}
	return modes[m]
}

// ActualShape returns the shape that the surface uses in the given
// mode when the given shape is selected.
func ActualShape(m Mode, selected Shapes) Shapes {
	if sh, ok := m.ShapeOverride(); ok {
		return sh
	}
	return selected
}

// GradientStops is the number of colors returned by [Gradient].
const GradientStops = 13

// Gradient returns evenly spaced colors along slider i (3 for alpha) of
// the mode from 0 to its maximum, for colorized slider backgrounds.
// The channel sliders are opaque; the alpha slider varies the alpha.
func Gradient(m Mode, i int, c colors.Color, co Coords) []colors.Color {
	var ch Channel
	if i == 3 {
		ch = m.Alpha()
	} else {
		ch = m.Channels()[i]
	}
	v := m.Values(c, co)
	res := make([]colors.Color, GradientStops)
	for k := range res {
		v[i] = ch.Max * float32(k) / (GradientStops - 1)
		gc, _ := m.Write(v, c, co)
		if i != 3 {
			gc.A = 1
		}
		res[k] = gc
	}
	return res
}

// alpha8 is the alpha slider of the 8-bit style modes.
var alpha8 = Channel{Label: "A", Max: 255}

type rgbMode struct{}

func (rgbMode) Modes() Modes { return ModeRGB }

func (rgbMode) Channels() [3]Channel {
	return [3]Channel{{Label: "R", Max: 255}, {Label: "G", Max: 255}, {Label: "B", Max: 255}}
}

func (rgbMode) Alpha() Channel                { return alpha8 }
func (rgbMode) Step() float32                 { return 1 }
func (rgbMode) ArrowStep() float32            { return 1 }
func (rgbMode) ShapeOverride() (Shapes, bool) { return ShapeNone, false }

func (rgbMode) Values(c colors.Color, co Coords) [4]float32 {
	return [4]float32{c.R * 255, c.G * 255, c.B * 255, c.A * 255}
}

func (rgbMode) Write(v [4]float32, c colors.Color, co Coords) (colors.Color, Coords) {
	nc := colors.Color{R: v[0] / 255, G: v[1] / 255, B: v[2] / 255, A: v[3] / 255}
	return nc, CoordsFromColor(nc)
}

type hsvMode struct{}

func (hsvMode) Modes() Modes { return ModeHSV }

func (hsvMode) Channels() [3]Channel {
	return [3]Channel{{Label: "H", Max: 359}, {Label: "S", Max: 100}, {Label: "V", Max: 100}}
}

func (hsvMode) Alpha() Channel                { return alpha8 }
func (hsvMode) Step() float32                 { return 1 }
func (hsvMode) ArrowStep() float32            { return 1 }
func (hsvMode) ShapeOverride() (Shapes, bool) { return ShapeNone, false }

func (hsvMode) Values(c colors.Color, co Coords) [4]float32 {
	return [4]float32{co.H * 360, co.S * 100, co.V * 100, c.A * 255}
}

func (hsvMode) Write(v [4]float32, c colors.Color, co Coords) (colors.Color, Coords) {
	co.H, co.S, co.V = v[0]/360, v[1]/100, v[2]/100
	nc := hsv.ToColor(co.H, co.S, co.V, v[3]/255)
	ok := okhsl.FromColor(nc)
	co.OKH, co.OKS, co.OKL = ok.H, ok.S, ok.L
	return nc, co
}

type rawMode struct{}

func (rawMode) Modes() Modes { return ModeRAW }

func (rawMode) Channels() [3]Channel {
	return [3]Channel{
		{Label: "R", Max: 1, AllowGreater: true},
		{Label: "G", Max: 1, AllowGreater: true},
		{Label: "B", Max: 1, AllowGreater: true},
	}
}

func (rawMode) Alpha() Channel                { return Channel{Label: "A", Max: 1} }
func (rawMode) Step() float32                 { return 0.001 }
func (rawMode) ArrowStep() float32            { return 0.01 }
func (rawMode) ShapeOverride() (Shapes, bool) { return ShapeRectangle, true }

func (rawMode) Values(c colors.Color, co Coords) [4]float32 {
	return c.Components()
}

func (rawMode) Write(v [4]float32, c colors.Color, co Coords) (colors.Color, Coords) {
	nc := colors.FromComponents(v)
	return nc, CoordsFromColor(nc)
}

type okhslMode struct{}

func (okhslMode) Modes() Modes { return ModeOKHSL }

func (okhslMode) Channels() [3]Channel {
	return [3]Channel{{Label: "H", Max: 359}, {Label: "S", Max: 100}, {Label: "L", Max: 100}}
}

func (okhslMode) Alpha() Channel                { return alpha8 }
func (okhslMode) Step() float32                 { return 1 }
func (okhslMode) ArrowStep() float32            { return 1 }
func (okhslMode) ShapeOverride() (Shapes, bool) { return ShapeOKHSLCircle, true }

func (okhslMode) Values(c colors.Color, co Coords) [4]float32 {
	return [4]float32{co.OKH * 360, co.OKS * 100, co.OKL * 100, c.A * 255}
}

func (okhslMode) Write(v [4]float32, c colors.Color, co Coords) (colors.Color, Coords) {
	co.OKH, co.OKS, co.OKL = v[0]/360, v[1]/100, v[2]/100
	nc := okhsl.ToColor(co.OKH, co.OKS, co.OKL, v[3]/255)
	hv := hsv.FromColor(nc)
	co.H, co.S, co.V = hv.H, hv.S, hv.V
	return nc, co
}
