// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/colorpicker/base/iox/imagex"
	"cogentcore.org/colorpicker/colors"
	"cogentcore.org/colorpicker/palette"
	"cogentcore.org/colorpicker/picker"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGlobals() (*Globals, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return &Globals{Out: termenv.NewOutput(buf, termenv.WithProfile(termenv.Ascii))}, buf
}

func TestConvert(t *testing.T) {
	g, buf := testGlobals()
	require.NoError(t, (&ConvertCmd{Colors: []string{"red", "Color(2, 0, 0)"}}).Run(g))
	out := buf.String()
	assert.Contains(t, out, "hex    #ff0000")
	assert.Contains(t, out, "hsv    0 100 100")
	assert.Contains(t, out, "color  Color(2, 0, 0)")
}

func TestSuggest(t *testing.T) {
	_, err := parseColor("rde")
	assert.ErrorIs(t, err, errUnknownColor)
	assert.Contains(t, suggest("cornflowerblu", 3), "cornflowerblue")
	assert.Empty(t, suggest("zzzzzzzz", 3))
}

func TestRepair(t *testing.T) {
	g, buf := testGlobals()
	require.NoError(t, (&RepairCmd{Text: []string{"#12", "abcdefa"}}).Run(g))
	assert.Contains(t, buf.String(), "#12 -> #121212")
	assert.Contains(t, buf.String(), "abcdefa -> #abcdef")
	assert.Error(t, (&RepairCmd{Text: []string{"#xyz"}}).Run(g))
}

func TestRender(t *testing.T) {
	dir := t.TempDir()
	g, _ := testGlobals()
	cmd := &RenderCmd{Part: "surface", Color: "orange", Shape: picker.ShapeWheel, Size: 64, Out: filepath.Join(dir, "wheel.png")}
	require.NoError(t, cmd.Validate(nil))
	require.NoError(t, cmd.Run(g))
	img, format, err := imagex.Open(cmd.Out)
	require.NoError(t, err)
	assert.Equal(t, imagex.PNG, format)
	assert.Equal(t, 64, img.Bounds().Dx())

	cmd.Part = "strip"
	assert.Error(t, cmd.Run(g))

	cmd.Out = filepath.Join(dir, "wheel.txt")
	assert.Error(t, cmd.Validate(nil))
}

func TestRenderSettings(t *testing.T) {
	dir := t.TempDir()
	st := picker.NewFileSettings(filepath.Join(dir, "settings.toml"))
	require.NoError(t, st.SaveSettings(&picker.Settings{Shape: picker.ShapeVHSCircle, Mode: picker.ModeHSV, Presets: []colors.Color{colors.Black}}))

	cmd := &RenderCmd{Part: "presets", Color: "white", Size: 64, Settings: st.Path, Out: filepath.Join(dir, "presets.png")}
	p, err := cmd.newPicker()
	require.NoError(t, err)
	assert.Equal(t, picker.ShapeVHSCircle, p.Shape())
	assert.Equal(t, picker.ModeHSV, p.Mode())
	assert.Equal(t, []colors.Color{colors.Black}, p.Presets())
}

func TestPaletteNewShow(t *testing.T) {
	dir := t.TempDir()
	g, buf := testGlobals()
	fn := filepath.Join(dir, "mine.yaml")
	require.NoError(t, (&PaletteNewCmd{Out: fn, Colors: []string{"red", "#00f", "red"}}).Run(g))
	pal, err := palette.Open(fn)
	require.NoError(t, err)
	assert.Equal(t, "mine", pal.Name)
	assert.Len(t, pal.Colors, 2)

	out := filepath.Join(dir, "mine.toml")
	require.NoError(t, (&PaletteConvertCmd{In: fn, Out: out, Name: "ours"}).Run(g))
	require.NoError(t, (&PaletteShowCmd{Files: []string{out}}).Run(g))
	assert.Contains(t, buf.String(), "ours (2 colors)")
	assert.Contains(t, buf.String(), "#0000ff")
}

func TestPick(t *testing.T) {
	dir := t.TempDir()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	img.SetRGBA(3, 4, color.RGBA{0, 128, 0, 255})
	fn := filepath.Join(dir, "screen.png")
	require.NoError(t, imagex.Save(img, fn))
	require.NoError(t, checkImage(fn))

	txt := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(txt, []byte("just some text"), 0o644))
	assert.ErrorIs(t, checkImage(txt), errNotImage)

	g, buf := testGlobals()
	zoom := filepath.Join(dir, "zoom.png")
	require.NoError(t, (&PickCmd{Image: fn, X: 3, Y: 4, Zoom: zoom}).Run(g))
	assert.Contains(t, buf.String(), "hex    #008000")
	_, err := os.Stat(zoom)
	assert.NoError(t, err)

	assert.Error(t, (&PickCmd{Image: fn, X: 9, Y: 4}).Run(g))
}
