// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from the OKLab and OKHSL reference implementation:
// https://bottosson.github.io/posts/oklab/
// https://bottosson.github.io/posts/colorpicker/
// Copyright (c) 2021 Björn Ottosson, MIT License.

package okhsl

import "math"

// Lab is a color in the OKLab perceptual color space.
type Lab struct {
	L, A, B float64
}

// RGB is a color with linear or gamma encoded red, green and blue
// components, depending on context.
type RGB struct {
	R, G, B float64
}

// LinearToOKLab converts linear sRGB to OKLab.
func LinearToOKLab(c RGB) Lab {
	l := 0.4122214708*c.R + 0.5363325363*c.G + 0.0514459929*c.B
	m := 0.2119034982*c.R + 0.6806995451*c.G + 0.1073969566*c.B
	s := 0.0883024619*c.R + 0.2817188376*c.G + 0.6299787005*c.B

	l = math.Cbrt(l)
	m = math.Cbrt(m)
	s = math.Cbrt(s)

	return Lab{
		L: 0.2104542553*l + 0.7936177850*m - 0.0040720468*s,
		A: 1.9779984951*l - 2.4285922050*m + 0.4505937099*s,
		B: 0.0259040371*l + 0.7827717662*m - 0.8086757660*s,
	}
}

// OKLabToLinear converts OKLab to linear sRGB. The result may be
// outside of [0, 1] for colors that are out of the sRGB gamut.
func OKLabToLinear(c Lab) RGB {
	l := c.L + 0.3963377774*c.A + 0.2158037573*c.B
	m := c.L - 0.1055613458*c.A - 0.0638541728*c.B
	s := c.L - 0.0894841775*c.A - 1.2914855480*c.B

	l = l * l * l
	m = m * m * m
	s = s * s * s

	return RGB{
		R: +4.0767416621*l - 3.3077115913*m + 0.2309699292*s,
		G: -1.2684380046*l + 2.6097574011*m - 0.3413193965*s,
		B: -0.0041960863*l - 0.7034186147*m + 1.7076147010*s,
	}
}

// FromLinear applies the sRGB transfer function to a linear component.
func FromLinear(x float64) float64 {
	if x >= 0.0031308 {
		return 1.055*math.Pow(x, 1.0/2.4) - 0.055
	}
	return 12.92 * x
}

// ToLinear applies the inverse sRGB transfer function to a gamma encoded component.
func ToLinear(x float64) float64 {
	if x > 0.04045 {
		return math.Pow((x+0.055)/1.055, 2.4)
	}
	return x / 12.92
}

// computeMaxSaturation finds the maximum saturation possible for a given hue that fits in sRGB.
// Saturation here is defined as S = C/L.
// a and b must be normalized so a^2 + b^2 == 1
func computeMaxSaturation(a, b float64) float64 {
	// Max saturation will be when one of r, g or b goes below zero.
	// Select different coefficients depending on which component goes below zero first.
	var k0, k1, k2, k3, k4, wl, wm, ws float64
	if -1.88170328*a-0.80936493*b > 1 { // red component
		k0, k1, k2, k3, k4 = +1.19086277, +1.76576728, +0.59662641, +0.75515197, +0.56771245
		wl, wm, ws = +4.0767416621, -3.3077115913, +0.2309699292
	} else if 1.81444104*a-1.19445276*b > 1 { // green component
		k0, k1, k2, k3, k4 = +0.73956515, -0.45954404, +0.08285427, +0.12541070, +0.14503204
		wl, wm, ws = -1.2684380046, +2.6097574011, -0.3413193965
	} else { // blue component
		k0, k1, k2, k3, k4 = +1.35733652, -0.00915799, -1.15130210, -0.50559606, +0.00692167
		wl, wm, ws = -0.0041960863, -0.7034186147, +1.7076147010
	}

	// approximate max saturation using a polynomial
	sat := k0 + k1*a + k2*b + k3*a*a + k4*a*b

	// one step Halley's method to get closer
	kl := +0.3963377774*a + 0.2158037573*b
	km := -0.1055613458*a - 0.0638541728*b
	ks := -0.0894841775*a - 1.2914855480*b

	l_ := 1 + sat*kl
	m_ := 1 + sat*km
	s_ := 1 + sat*ks

	l := l_ * l_ * l_
	m := m_ * m_ * m_
	s := s_ * s_ * s_

	ldS := 3 * kl * l_ * l_
	mdS := 3 * km * m_ * m_
	sdS := 3 * ks * s_ * s_

	ldS2 := 6 * kl * kl * l_
	mdS2 := 6 * km * km * m_
	sdS2 := 6 * ks * ks * s_

	f := wl*l + wm*m + ws*s
	f1 := wl*ldS + wm*mdS + ws*sdS
	f2 := wl*ldS2 + wm*mdS2 + ws*sdS2

	return sat - f*f1/(f1*f1-0.5*f*f2)
}

// cusp is the point of maximum chroma for a hue, in lightness and chroma.
type cusp struct {
	L, C float64
}

// findCusp finds L_cusp and C_cusp for a given hue.
// a and b must be normalized so a^2 + b^2 == 1
func findCusp(a, b float64) cusp {
	sCusp := computeMaxSaturation(a, b)

	// convert to linear sRGB to find the first point where at least one of r, g or b >= 1
	rgb := OKLabToLinear(Lab{1, sCusp * a, sCusp * b})
	lCusp := math.Cbrt(1 / max(rgb.R, rgb.G, rgb.B))
	return cusp{lCusp, lCusp * sCusp}
}

// findGamutIntersection finds the intersection of the line defined by
// L = L0 * (1 - t) + t * L1;
// C = t * C1;
// with the sRGB gamut boundary.
// a and b must be normalized so a^2 + b^2 == 1
func findGamutIntersection(a, b, L1, C1, L0 float64, cs cusp) float64 {
	var t float64
	if (L1-L0)*cs.C-(cs.L-L0)*C1 <= 0 { // lower half
		return cs.C * L0 / (C1*cs.L + cs.C*(L0-L1))
	}

	// upper half: first intersect with triangle
	t = cs.C * (L0 - 1) / (C1*(cs.L-1) + cs.C*(L0-L1))

	// then one step Halley's method
	dL := L1 - L0
	dC := C1

	kl := +0.3963377774*a + 0.2158037573*b
	km := -0.1055613458*a - 0.0638541728*b
	ks := -0.0894841775*a - 1.2914855480*b

	ldt := dL + dC*kl
	mdt := dL + dC*km
	sdt := dL + dC*ks

	L := L0*(1-t) + t*L1
	C := t * C1

	l_ := L + C*kl
	m_ := L + C*km
	s_ := L + C*ks

	l := l_ * l_ * l_
	m := m_ * m_ * m_
	s := s_ * s_ * s_

	ldt1 := 3 * ldt * l_ * l_
	mdt1 := 3 * mdt * m_ * m_
	sdt1 := 3 * sdt * s_ * s_

	ldt2 := 6 * ldt * ldt * l_
	mdt2 := 6 * mdt * mdt * m_
	sdt2 := 6 * sdt * sdt * s_

	step := func(w0, w1, w2 float64) float64 {
		v := w0*l + w1*m + w2*s - 1
		v1 := w0*ldt1 + w1*mdt1 + w2*sdt1
		v2 := w0*ldt2 + w1*mdt2 + w2*sdt2
		u := v1 / (v1*v1 - 0.5*v*v2)
		if u >= 0 {
			return -v * u
		}
		return math.MaxFloat64
	}
	tr := step(4.0767416621, -3.3077115913, 0.2309699292)
	tg := step(-1.2684380046, 2.6097574011, -0.3413193965)
	tb := step(-0.0041960863, -0.7034186147, 1.7076147010)

	return t + min(tr, tg, tb)
}
