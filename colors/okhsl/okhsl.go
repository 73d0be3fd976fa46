// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package okhsl provides the OKHSL perceptual hue, saturation and
// lightness color model, built on the OKLab color space.
// See https://bottosson.github.io/posts/colorpicker/
package okhsl

import (
	"fmt"
	"math"

	"cogentcore.org/colorpicker/colors"
	"cogentcore.org/colorpicker/math32"
)

// HSL represents a color in the OKHSL model.
// All components are in the 0-1 range; hue is a fraction of a full turn.
type HSL struct {

	// H is the hue, as a fraction of a full turn (0-1).
	H float32

	// S is the perceptual saturation (0-1).
	S float32

	// L is the perceptual lightness (0-1).
	L float32

	// A is the alpha (opacity) component, carried through unchanged.
	A float32
}

const (
	toeK1 = 0.206
	toeK2 = 0.03
	toeK3 = (1 + toeK1) / (1 + toeK2)
)

// toe maps OKLab lightness to a lightness estimate closer to CIELab.
func toe(x float64) float64 {
	d := toeK3*x - toeK1
	return 0.5 * (d + math.Sqrt(d*d+4*toeK2*toeK3*x))
}

func toeInv(x float64) float64 {
	return (x*x + toeK1*x) / (toeK3 * (x + toeK2))
}

// st is a saturation (C/L) and tone (C/(1-L)) pair.
type st struct {
	S, T float64
}

func toST(c cusp) st {
	return st{c.C / c.L, c.C / (1 - c.L)}
}

// stMid returns a smooth approximation of the location of the cusp,
// used to keep the saturation scale uniform across hues.
func stMid(a, b float64) st {
	s := 0.11516993 + 1/(+7.44778970+4.15901240*b+
		a*(-2.19557347+1.75198401*b+
			a*(-2.13704948-10.02301043*b+
				a*(-4.24894561+5.38770819*b+4.69891013*a))))

	t := 0.11239642 + 1/(+1.61320320-0.68124379*b+
		a*(+0.40370612+0.90148123*b+
			a*(-0.27087943+0.61223990*b+
				a*(+0.00299215-0.45399568*b-0.14661872*a))))
	return st{s, t}
}

// chromas are the three reference chroma values for a lightness and hue.
type chromas struct {
	C0, Cmid, Cmax float64
}

func getCs(L, a, b float64) chromas {
	cs := findCusp(a, b)

	cMax := findGamutIntersection(a, b, L, 1, L, cs)
	stMax := toST(cs)

	// scale factor to compensate for the curved part of the gamut shape
	k := cMax / min(L*stMax.S, (1-L)*stMax.T)

	var cMid float64
	{
		sm := stMid(a, b)
		ca := L * sm.S
		cb := (1 - L) * sm.T
		cMid = 0.9 * k * math.Sqrt(math.Sqrt(1/(1/(ca*ca*ca*ca)+1/(cb*cb*cb*cb))))
	}

	var c0 float64
	{
		ca := L * 0.4
		cb := (1 - L) * 0.8
		c0 = math.Sqrt(1 / (1/(ca*ca) + 1/(cb*cb)))
	}
	return chromas{c0, cMid, cMax}
}

const (
	mid    = 0.8
	midInv = 1.25
)

// ToColor converts the given OKHSL hue, saturation and lightness plus
// alpha to a color. Saturation and lightness are clamped to [0, 1] first,
// and the resulting color is clamped to the displayable range.
func ToColor(h, s, l, a float32) colors.Color {
	s = math32.Clamp(s, 0, 1)
	l = math32.Clamp(l, 0, 1)
	if l == 1 {
		return colors.Color{R: 1, G: 1, B: 1, A: a}
	}
	if l == 0 {
		return colors.Color{R: 0, G: 0, B: 0, A: a}
	}

	hf := float64(math32.Wrap01(h))
	sf := float64(s)
	ca := math.Cos(2 * math.Pi * hf)
	cb := math.Sin(2 * math.Pi * hf)
	L := toeInv(float64(l))

	cs := getCs(L, ca, cb)

	var C float64
	if sf < mid {
		t := midInv * sf
		k1 := mid * cs.C0
		k2 := 1 - k1/cs.Cmid
		C = t * k1 / (1 - k2*t)
	} else {
		t := (sf - mid) / (1 - mid)
		k0 := cs.Cmid
		k1 := (1 - mid) * cs.Cmid * cs.Cmid * midInv * midInv / cs.C0
		k2 := 1 - k1/(cs.Cmax-cs.Cmid)
		C = k0 + t*k1/(1-k2*t)
	}

	rgb := OKLabToLinear(Lab{L, C * ca, C * cb})
	c := colors.Color{
		R: float32(FromLinear(rgb.R)),
		G: float32(FromLinear(rgb.G)),
		B: float32(FromLinear(rgb.B)),
		A: a,
	}
	return c.Clamp()
}

// FromColor converts the given color to OKHSL. Achromatic colors (and
// colors that produce an undefined hue) have a hue and saturation of 0.
// All resulting components are clamped to [0, 1].
func FromColor(c colors.Color) HSL {
	lab := LinearToOKLab(RGB{
		ToLinear(float64(c.R)),
		ToLinear(float64(c.G)),
		ToLinear(float64(c.B)),
	})

	res := HSL{A: c.A}
	res.L = float32(math32.Clamp(toe(lab.L), 0, 1))

	C := math.Sqrt(lab.A*lab.A + lab.B*lab.B)
	if C < 1e-7 || lab.L <= 0 || lab.L >= 1 {
		return res
	}
	a := lab.A / C
	b := lab.B / C

	h := 0.5 + 0.5*math.Atan2(-lab.B, -lab.A)/math.Pi

	cs := getCs(lab.L, a, b)

	var s float64
	if C < cs.Cmid {
		k1 := mid * cs.C0
		k2 := 1 - k1/cs.Cmid
		t := C / (k1 + k2*C)
		s = t * mid
	} else {
		k0 := cs.Cmid
		k1 := (1 - mid) * cs.Cmid * cs.Cmid * midInv * midInv / cs.C0
		k2 := 1 - k1/(cs.Cmax-cs.Cmid)
		t := (C - k0) / (k1 + k2*(C-k0))
		s = mid + (1-mid)*t
	}
	if math.IsNaN(h) || math.IsNaN(s) {
		return res
	}
	res.H = float32(math32.Clamp(h, 0, 1))
	res.S = float32(math32.Clamp(s, 0, 1))
	return res
}

// New returns a new HSL value.
func New(h, s, l, a float32) HSL {
	return HSL{h, s, l, a}
}

// AsColor returns the HSL value as a color.
func (h HSL) AsColor() colors.Color {
	return ToColor(h.H, h.S, h.L, h.A)
}

// RGBA implements the color.Color interface.
func (h HSL) RGBA() (r, g, b, a uint32) {
	return h.AsColor().RGBA()
}

func (h HSL) String() string {
	return fmt.Sprintf("okhsla(%g, %g, %g, %g)", h.H, h.S, h.L, h.A)
}
