// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// FromHex parses the given hex color string and returns the resulting color.
// The leading # is optional. The supported forms are RGB, RGBA, RRGGBB and
// RRGGBBAA. It returns any resulting error; see [MustFromHex] and
// [LogFromHex] for versions that do not return an error.
func FromHex(hex string) (Color, error) {
	hex = strings.TrimPrefix(hex, "#")
	if !IsHex(hex) {
		return Color{}, errors.New("colors.FromHex: could not process: " + hex)
	}
	var comps [4]uint8
	comps[3] = 255
	switch len(hex) {
	case 3, 4:
		for i := range len(hex) {
			v, _ := strconv.ParseUint(hex[i:i+1], 16, 8)
			comps[i] = uint8(v<<4 | v)
		}
	case 6, 8:
		for i := 0; i < len(hex); i += 2 {
			v, _ := strconv.ParseUint(hex[i:i+2], 16, 8)
			comps[i/2] = uint8(v)
		}
	default:
		return Color{}, fmt.Errorf("colors.FromHex: invalid length %d: %s", len(hex), hex)
	}
	return FromRGBA8(comps[0], comps[1], comps[2], comps[3]), nil
}

// MustFromHex parses the given hex color string
// and returns the resulting color. It panics on any
// resulting error; see [FromHex] for a version
// that returns an error.
func MustFromHex(hex string) Color {
	c, err := FromHex(hex)
	if err != nil {
		panic("colors.MustFromHex: " + err.Error())
	}
	return c
}

// LogFromHex parses the given hex color string
// and returns the resulting color. It logs any
// resulting error; see [FromHex] for a version
// that returns an error.
func LogFromHex(hex string) Color {
	c, err := FromHex(hex)
	if err != nil {
		slog.Error(err.Error())
	}
	return c
}

// IsHex returns whether the given string is a non-empty sequence of
// hexadecimal digits, with no prefix.
func IsHex(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// RepairHex converts hex codes that are not valid HTML colors, but that
// design tools commonly accept, into valid ones. The # prefix is dropped.
//   - #1 becomes 111111
//   - #12 becomes 121212
//   - #12345 becomes 1234 (the RGBA short form)
//   - #1234567 becomes 123456
//
// Strings that are not hexadecimal are returned trimmed but otherwise unchanged.
func RepairHex(s string) string {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if !IsHex(h) {
		return h
	}
	switch len(h) {
	case 1:
		return strings.Repeat(h, 6)
	case 2:
		return strings.Repeat(h, 3)
	case 5:
		return h[:4]
	case 7:
		return h[:6]
	}
	return h
}

// AsHex returns the clamped color as a lowercase #rrggbb string, or
// #rrggbbaa if alpha is true.
func AsHex(c Color, alpha bool) string {
	n := c.AsNRGBA()
	if alpha {
		return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
	}
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}
