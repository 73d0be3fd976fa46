// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command colorpicker converts, repairs and renders colors and palettes
// with the color picker core from the command line.
package main

import (
	"os"

	"cogentcore.org/colorpicker/logx"
	"github.com/alecthomas/kong"
	"github.com/muesli/termenv"
)

// Globals are the flags and output shared by all commands.
type Globals struct {
	Verbose     bool `short:"v" help:"Show info messages."`
	VeryVerbose bool `name:"vv" help:"Show debug messages."`
	Quiet       bool `short:"q" help:"Only show errors."`

	// Out is the terminal output that results are written to.
	Out *termenv.Output `kong:"-"`
}

// CLI is the command line of colorpicker.
type CLI struct {
	Globals

	Convert ConvertCmd `cmd:"" help:"Show a color in every color model."`
	Repair  RepairCmd  `cmd:"" help:"Repair hex text the way the picker text field does."`
	Render  RenderCmd  `cmd:"" help:"Render a part of the picker to an image."`
	Palette PaletteCmd `cmd:"" help:"Show or convert palette files."`
	Pick    PickCmd    `cmd:"" help:"Pick a color from an image with the eyedropper."`
}

func main() {
	cli := &CLI{}
	kctx := kong.Parse(cli,
		kong.Name("colorpicker"),
		kong.Description("Color picker tools."),
		kong.UsageOnError(),
	)
	logx.UserLevel = logx.LevelFromFlags(cli.VeryVerbose, cli.Verbose, cli.Quiet)
	logx.SetDefaultLogger()
	cli.Out = termenv.NewOutput(os.Stdout)
	kctx.FatalIfErrorf(kctx.Run(&cli.Globals))
}
