// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math32 is a float32 based math package for the
// 2D geometry of the color picker surfaces.
package math32

import (
	"cmp"
	"math"

	"github.com/chewxy/math32"
)

// These are mostly just wrappers around chewxy/math32, which has
// some optimized implementations.

// Mathematical constants.
const (
	Pi  = math.Pi
	Tau = 2 * math.Pi

	// Sqrt12 is the square root of 1/2, the scale of a square
	// inscribed in a circle relative to its diameter.
	Sqrt12 = 0.7071067811865475244008443621048490
)

// Abs returns the absolute value of x.
//
// Special cases are:
//
//	Abs(±Inf) = +Inf
//	Abs(NaN) = NaN
func Abs(x float32) float32 {
	return math32.Abs(x)
}

// Atan2 returns the arc tangent of y/x, using
// the signs of the two to determine the quadrant
// of the return value.
func Atan2(y, x float32) float32 {
	return math32.Atan2(y, x)
}

// Cbrt returns the cube root of x.
func Cbrt(x float32) float32 {
	return math32.Cbrt(x)
}

// Cos returns the cosine of the radian argument x.
func Cos(x float32) float32 {
	return math32.Cos(x)
}

// Sin returns the sine of the radian argument x.
func Sin(x float32) float32 {
	return math32.Sin(x)
}

// Floor returns the greatest integer value less than or equal to x.
func Floor(x float32) float32 {
	return math32.Floor(x)
}

// IsNaN reports whether x is an IEEE 754 “not-a-number” value.
func IsNaN(x float32) bool {
	return math32.IsNaN(x)
}

// Mod returns the floating-point remainder of x/y.
// The magnitude of the result is less than y and its
// sign agrees with that of x.
func Mod(x, y float32) float32 {
	return math32.Mod(x, y)
}

// Pow returns x**y, the base-x exponential of y.
func Pow(x, y float32) float32 {
	return math32.Pow(x, y)
}

// Round returns the nearest integer, rounding half away from zero.
func Round(x float32) float32 {
	return math32.Round(x)
}

// Sqrt returns the square root of x.
func Sqrt(x float32) float32 {
	return math32.Sqrt(x)
}

//////////////////////////////////////////////////////////////
// Special additions to math. functions

// Clamp clamps x to the provided closed interval [a, b]
func Clamp[T cmp.Ordered](x, a, b T) T {
	if x < a {
		return a
	}
	if x > b {
		return b
	}
	return x
}

// Wrap01 wraps x into the half-open interval [0, 1),
// which is how hue values are normalized.
func Wrap01(x float32) float32 {
	x = Mod(x, 1)
	if x < 0 {
		x += 1
	}
	if x >= 1 {
		return 0
	}
	return x
}

// Truncate rounds x to the given number of decimal places.
func Truncate(x float32, prec int) float32 {
	p := math.Pow10(prec)
	return float32(math.Round(float64(x)*p) / p)
}

// Lerp returns the linear interpolation between start and stop in proportion to amount
func Lerp(start, stop, amount float32) float32 {
	return (1-amount)*start + amount*stop
}
