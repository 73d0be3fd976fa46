// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command colorpickerdemo is an interactive color picker window.
//
// Drag on the surface, strip and sliders to edit the color. Keys:
//   - S cycles the surface shape and M the slider mode
//   - E starts the eyedropper (left click picks, right click or Escape cancels)
//   - A adds the color to the presets; right click a preset to remove it
//   - D toggles deferred mode and O shows the old color in the sample
package main

import (
	"log/slog"

	"cogentcore.org/colorpicker/base/errors"
	"cogentcore.org/colorpicker/logx"
	"cogentcore.org/colorpicker/palette"
	"cogentcore.org/colorpicker/picker"
	"github.com/alecthomas/kong"
	"github.com/hajimehoshi/ebiten/v2"
)

type options struct {
	Verbose     bool   `short:"v" help:"Show info messages."`
	VeryVerbose bool   `name:"vv" help:"Show debug messages."`
	Quiet       bool   `short:"q" help:"Only show errors."`
	Color       string `help:"Initial color as hex or a name." default:"#4285f4"`
	Shape       string `help:"Initial surface shape (Rectangle, Wheel, VHSCircle, OKHSLCircle, None), overriding the settings."`
	Mode        string `help:"Initial slider mode (RGB, HSV, RAW, OKHSL), overriding the settings."`
	Deferred    bool   `help:"Only notify changes at the end of gestures."`
	Settings    string `help:"Settings file; a leading ~ is the home directory." default:"${settings}"`
	Palette     string `help:"Palette file to load and reload when it changes." type:"existingfile"`
}

func main() {
	opts := &options{}
	kong.Parse(opts,
		kong.Name("colorpickerdemo"),
		kong.Description("Interactive color picker."),
		kong.Vars{"settings": picker.DefaultSettingsPath},
	)
	logx.UserLevel = logx.LevelFromFlags(opts.VeryVerbose, opts.Verbose, opts.Quiet)
	logx.SetDefaultLogger()

	g, err := newGame(opts)
	errors.Must(err)
	if opts.Palette != "" {
		w, err := palette.Watch(opts.Palette, g.picker, g.post)
		if errors.Log(err) == nil {
			defer w.Close()
		}
	}

	b := g.layout.Bounds
	ebiten.SetWindowSize(b.Dx(), b.Dy())
	ebiten.SetWindowTitle("Color Picker")
	if err := ebiten.RunGame(g); err != nil {
		slog.Error("colorpickerdemo", "err", err)
	}
}
