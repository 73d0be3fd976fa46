// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"log/slog"
	"path/filepath"

	"cogentcore.org/colorpicker/base/iox/imagex"
	"cogentcore.org/colorpicker/math32"
	"cogentcore.org/colorpicker/picker"
	"cogentcore.org/colorpicker/render"
	"github.com/alecthomas/kong"
)

// RenderCmd renders a part of the picker to an image file.
type RenderCmd struct {
	Part     string        `help:"Part to render." enum:"surface,strip,slider,sample,presets" default:"surface"`
	Color    string        `help:"Color to show." default:"#ff8000"`
	Shape    picker.Shapes `help:"Surface shape (Rectangle, Wheel, VHSCircle, OKHSLCircle)." default:"Rectangle"`
	Mode     picker.Modes  `help:"Slider mode (RGB, HSV, RAW, OKHSL)." default:"RGB"`
	Slider   int           `help:"Slider index for the slider part, 3 for alpha." default:"0"`
	Size     int           `help:"Size of the surface in pixels." default:"256"`
	Settings string        `help:"Picker settings file to take the shape, mode and presets from." type:"path"`
	Out      string        `short:"o" help:"Output image file; the format is taken from its extension." default:"picker.png"`
}

func (c *RenderCmd) Validate(kctx *kong.Context) error {
	if c.Size <= 0 {
		return fmt.Errorf("invalid size: %d", c.Size)
	}
	if c.Slider < 0 || c.Slider > 3 {
		return fmt.Errorf("%w: %d", picker.ErrInvalidSlider, c.Slider)
	}
	if _, err := imagex.ExtToFormat(filepath.Ext(c.Out)); err != nil {
		return fmt.Errorf("invalid output file %q: %w", c.Out, err)
	}
	return nil
}

// newPicker returns a picker configured from the flags.
func (c *RenderCmd) newPicker() (*picker.Picker, error) {
	col, err := parseColor(c.Color)
	if err != nil {
		return nil, err
	}
	sz := float32(c.Size)
	p := picker.New().
		SetSurfaceSize(math32.Vec2(sz, sz)).
		SetStripSize(math32.Vec2(sz/8, sz)).
		SetSampleSize(math32.Vec2(sz, sz/8))
	if c.Settings != "" {
		s, err := picker.NewFileSettings(c.Settings).LoadSettings()
		switch {
		case errors.Is(err, fs.ErrNotExist):
			slog.Warn("settings file does not exist", "file", c.Settings)
		case err != nil:
			return nil, err
		default:
			p.ApplySettings(s)
		}
	}
	if c.Settings == "" || c.Shape != picker.ShapeRectangle {
		if err := p.SetShape(c.Shape); err != nil {
			return nil, err
		}
	}
	if c.Settings == "" || c.Mode != picker.ModeRGB {
		if err := p.SetMode(c.Mode); err != nil {
			return nil, err
		}
	}
	p.SetColor(col)
	return p, nil
}

func (c *RenderCmd) Run(g *Globals) error {
	p, err := c.newPicker()
	if err != nil {
		return err
	}
	img, err := c.render(p.View())
	if err != nil {
		return err
	}
	if err := imagex.Save(img, c.Out); err != nil {
		return err
	}
	slog.Info("rendered", "part", c.Part, "shape", p.ActualShape(), "file", c.Out)
	fmt.Fprintln(g.Out, c.Out)
	return nil
}

func (c *RenderCmd) render(v *picker.View) (image.Image, error) {
	switch c.Part {
	case "strip":
		if img := render.Strip(v); img != nil {
			return img, nil
		}
		return nil, fmt.Errorf("shape %v has no strip", v.Shape)
	case "slider":
		return render.Slider(v, c.Slider, math32.Vec2(float32(c.Size), 16)), nil
	case "sample":
		return render.Sample(v), nil
	case "presets":
		return render.Swatches(v.Presets, c.Size/picker.PresetColumns), nil
	}
	return render.Surface(v), nil
}
