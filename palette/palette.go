// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package palette provides named color palette files for the presets
// of a color picker, in TOML, YAML or JSON format.
package palette

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"cogentcore.org/colorpicker/base/iox/jsonx"
	"cogentcore.org/colorpicker/base/iox/tomlx"
	"cogentcore.org/colorpicker/base/iox/yamlx"
	"cogentcore.org/colorpicker/colors"
	"cogentcore.org/colorpicker/picker"
)

// ErrUnknownFormat is returned for palette files with an
// extension other than .toml, .yaml, .yml and .json.
var ErrUnknownFormat = errors.New("palette: unknown file format")

// Palette is a named list of colors.
type Palette struct {

	// Name is the name of the palette. It defaults to the
	// file name without extension.
	Name string `toml:"name" yaml:"name" json:"name"`

	// Colors are the colors of the palette, in order.
	Colors []colors.Color `toml:"colors" yaml:"colors" json:"colors"`
}

// format is an encoding of palette files.
type format struct {
	open func(v any, filename string) error
	save func(v any, filename string) error
}

var formats = map[string]format{
	".toml": {tomlx.Open, tomlx.Save},
	".yaml": {yamlx.Open, yamlx.Save},
	".yml":  {yamlx.Open, yamlx.Save},
	".json": {jsonx.Open, jsonx.Save},
}

func formatOf(filename string) (format, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	f, ok := formats[ext]
	if !ok {
		return format{}, fmt.Errorf("%w: %q", ErrUnknownFormat, filename)
	}
	return f, nil
}

// NameOf returns the default palette name for the given file,
// which is its base name without extension.
func NameOf(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Open opens the palette from the given file, with the format
// chosen by its extension.
func Open(filename string) (*Palette, error) {
	f, err := formatOf(filename)
	if err != nil {
		return nil, err
	}
	pal := &Palette{}
	if err := f.open(pal, filename); err != nil {
		return nil, fmt.Errorf("palette: opening %q: %w", filename, err)
	}
	if pal.Name == "" {
		pal.Name = NameOf(filename)
	}
	return pal, nil
}

// Save saves the palette to the given file, with the format
// chosen by its extension.
func (pal *Palette) Save(filename string) error {
	f, err := formatOf(filename)
	if err != nil {
		return err
	}
	if err := f.save(pal, filename); err != nil {
		return fmt.Errorf("palette: saving %q: %w", filename, err)
	}
	return nil
}

// Load opens the palette in the given file and loads it
// into the presets of the picker.
func Load(p *picker.Picker, filename string) error {
	pal, err := Open(filename)
	if err != nil {
		return err
	}
	p.LoadPalette(pal.Name, filename, pal.Colors)
	return nil
}

// SaveFrom saves the presets of the picker as a palette with the given
// name in the given file. An empty name uses the file name.
func SaveFrom(p *picker.Picker, name, filename string) error {
	if name == "" {
		name = NameOf(filename)
	}
	pal := &Palette{Name: name, Colors: p.Presets()}
	if err := pal.Save(filename); err != nil {
		return err
	}
	p.PaletteSaved(name, filename)
	return nil
}
