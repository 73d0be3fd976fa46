// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"cogentcore.org/colorpicker/math32"
)

// FromString returns the color specified by the given string, which can be
// a hex code (with or without #) or a CSS color name. If neither parses,
// base is returned unchanged.
func FromString(str string, base Color) Color {
	str = strings.TrimSpace(str)
	if c, err := FromHex(str); err == nil {
		return c
	}
	if c, err := FromName(str); err == nil {
		return c
	}
	return base
}

// FromText parses the given user-entered text into a color the way the
// picker's hex field does: the text is first parsed as is, then
// [RepairHex] is applied to short or long hex codes and the result parsed
// again. Any part that fails to parse leaves base unchanged, so invalid
// input returns base.
func FromText(text string, base Color) Color {
	c := FromString(text, base)
	return FromString(RepairHex(text), c)
}

// AsConstructor returns the color in the constructor form
// Color(r, g, b) or Color(r, g, b, a), with components rounded
// to 3 decimal places.
func AsConstructor(c Color, alpha bool) string {
	var b strings.Builder
	b.WriteString("Color(")
	b.WriteString(formatComponent(c.R))
	b.WriteString(", ")
	b.WriteString(formatComponent(c.G))
	b.WriteString(", ")
	b.WriteString(formatComponent(c.B))
	if alpha {
		b.WriteString(", ")
		b.WriteString(formatComponent(c.A))
	}
	b.WriteString(")")
	return b.String()
}

func formatComponent(v float32) string {
	return strconv.FormatFloat(float64(math32.Truncate(v, 3)), 'f', -1, 32)
}

// FromConstructor parses a color in the Color(r, g, b[, a]) form.
func FromConstructor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "Color(") || !strings.HasSuffix(s, ")") {
		return Color{}, errors.New("colors.FromConstructor: not a constructor: " + s)
	}
	fields := strings.Split(s[len("Color("):len(s)-1], ",")
	if len(fields) != 3 && len(fields) != 4 {
		return Color{}, fmt.Errorf("colors.FromConstructor: expected 3 or 4 components, got %d", len(fields))
	}
	comps := [4]float32{0, 0, 0, 1}
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 32)
		if err != nil {
			return Color{}, fmt.Errorf("colors.FromConstructor: component %d: %w", i, err)
		}
		comps[i] = float32(v)
	}
	return FromComponents(comps), nil
}

// MarshalText implements [encoding.TextMarshaler]. Colors that are exactly
// representable in 8 bits per component are written as hex, and all
// other colors (including overbright ones) in full precision constructor form,
// so that marshaling never loses information.
func (c Color) MarshalText() ([]byte, error) {
	if c.InGamut() && c.A >= 0 && c.A <= 1 {
		n := c.AsNRGBA()
		if FromRGBA8(n.R, n.G, n.B, n.A) == c {
			return []byte(AsHex(c, c.A < 1)), nil
		}
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
// It accepts hex, constructor and named forms.
func (c *Color) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	if strings.HasPrefix(s, "Color(") {
		nc, err := FromConstructor(s)
		if err != nil {
			return err
		}
		*c = nc
		return nil
	}
	if nc, err := FromHex(s); err == nil {
		*c = nc
		return nil
	}
	nc, err := FromName(s)
	if err != nil {
		return fmt.Errorf("colors: invalid color %q", s)
	}
	*c = nc
	return nil
}
