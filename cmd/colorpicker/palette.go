// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"cogentcore.org/colorpicker/palette"
	"cogentcore.org/colorpicker/picker"
)

// PaletteCmd shows or converts palette files.
type PaletteCmd struct {
	Show    PaletteShowCmd    `cmd:"" default:"withargs" help:"Show the colors of a palette."`
	Convert PaletteConvertCmd `cmd:"" help:"Convert a palette to another format."`
	New     PaletteNewCmd     `cmd:"" help:"Create a palette from colors."`
}

// PaletteShowCmd shows the colors of palettes.
type PaletteShowCmd struct {
	Files []string `arg:"" type:"existingfile" help:"Palette files."`
}

func (c *PaletteShowCmd) Run(g *Globals) error {
	for _, fn := range c.Files {
		pal, err := palette.Open(fn)
		if err != nil {
			return err
		}
		fmt.Fprintf(g.Out, "%s (%d colors)\n", g.Out.String(pal.Name).Bold(), len(pal.Colors))
		for _, col := range pal.Colors {
			text, _ := col.MarshalText()
			fmt.Fprintf(g.Out, "%s %s\n", swatch(g.Out, col), text)
		}
	}
	return nil
}

// PaletteConvertCmd converts a palette to another format.
type PaletteConvertCmd struct {
	In   string `arg:"" type:"existingfile" help:"Input palette file."`
	Out  string `arg:"" help:"Output palette file; the format is taken from its extension."`
	Name string `help:"New name of the palette."`
}

func (c *PaletteConvertCmd) Run(g *Globals) error {
	pal, err := palette.Open(c.In)
	if err != nil {
		return err
	}
	if c.Name != "" {
		pal.Name = c.Name
	}
	return pal.Save(c.Out)
}

// PaletteNewCmd creates a palette from colors.
type PaletteNewCmd struct {
	Out    string   `arg:"" help:"Output palette file; the format is taken from its extension."`
	Colors []string `arg:"" help:"Colors as hex, names or Color(r, g, b[, a])."`
	Name   string   `help:"Name of the palette; defaults to the file name."`
}

func (c *PaletteNewCmd) Run(g *Globals) error {
	ps := picker.NewPresets(0)
	for _, text := range c.Colors {
		col, err := parseColor(text)
		if err != nil {
			return err
		}
		ps.Add(col)
	}
	name := c.Name
	if name == "" {
		name = palette.NameOf(c.Out)
	}
	return (&palette.Palette{Name: name, Colors: ps.Colors()}).Save(c.Out)
}
