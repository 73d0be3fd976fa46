// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"cogentcore.org/colorpicker/colors"
	"cogentcore.org/colorpicker/colors/hsv"
	"cogentcore.org/colorpicker/colors/okhsl"
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"github.com/muesli/termenv"
)

// errUnknownColor is returned for text that is not a color.
var errUnknownColor = errors.New("unknown color")

// ConvertCmd shows colors in every color model.
type ConvertCmd struct {
	Colors []string `arg:"" help:"Colors as hex, names or Color(r, g, b[, a])."`
}

func (c *ConvertCmd) Run(g *Globals) error {
	var errs []error
	for _, text := range c.Colors {
		col, err := parseColor(text)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		printColor(g.Out, text, col)
	}
	return errors.Join(errs...)
}

// parseColor parses a hex, named or constructor color, suggesting
// similar names for unknown ones.
func parseColor(text string) (colors.Color, error) {
	var c colors.Color
	if err := c.UnmarshalText([]byte(text)); err == nil {
		return c, nil
	}
	if sg := suggest(text, 3); len(sg) > 0 {
		return c, fmt.Errorf("%w %q; did you mean %s?", errUnknownColor, text, strings.Join(sg, ", "))
	}
	return c, fmt.Errorf("%w %q", errUnknownColor, text)
}

// suggest returns up to n color names similar to the given text.
func suggest(text string, n int) []string {
	type match struct {
		name string
		sim  float64
	}
	key := colors.NormalizeName(text)
	metric := metrics.NewJaroWinkler()
	var ms []match
	for _, nm := range colors.Names() {
		sim := strutil.Similarity(key, nm, metric)
		if sim >= 0.8 {
			ms = append(ms, match{nm, sim})
		}
	}
	sort.SliceStable(ms, func(i, j int) bool { return ms[i].sim > ms[j].sim })
	var res []string
	for i := 0; i < len(ms) && i < n; i++ {
		res = append(res, ms[i].name)
	}
	return res
}

// swatch returns a block of the color for terminals that support it.
func swatch(out *termenv.Output, c colors.Color) string {
	return out.String("    ").Background(out.Color(colors.AsHex(c, false))).String()
}

func printColor(out *termenv.Output, text string, c colors.Color) {
	hv := hsv.FromColor(c)
	ok := okhsl.FromColor(c)
	fmt.Fprintf(out, "%s %s\n", swatch(out, c), out.String(text).Bold())
	if c.InGamut() {
		fmt.Fprintf(out, "  hex    %s\n", colors.AsHex(c, c.A < 1))
	}
	fmt.Fprintf(out, "  color  %s\n", colors.AsConstructor(c, c.A < 1))
	fmt.Fprintf(out, "  rgb    %.0f %.0f %.0f %.0f\n", c.R*255, c.G*255, c.B*255, c.A*255)
	fmt.Fprintf(out, "  hsv    %.0f %.0f %.0f\n", hv.H*360, hv.S*100, hv.V*100)
	fmt.Fprintf(out, "  okhsl  %.0f %.0f %.0f\n", ok.H*360, ok.S*100, ok.L*100)
}

// RepairCmd repairs hex text.
type RepairCmd struct {
	Text []string `arg:"" help:"Hex text to repair."`
}

func (c *RepairCmd) Run(g *Globals) error {
	for _, text := range c.Text {
		col, err := parseColor(colors.RepairHex(text))
		if err != nil {
			return err
		}
		fmt.Fprintf(g.Out, "%s %s -> %s\n", swatch(g.Out, col), text, colors.AsHex(col, col.A < 1))
	}
	return nil
}
