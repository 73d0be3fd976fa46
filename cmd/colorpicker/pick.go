// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"

	"cogentcore.org/colorpicker/base/iox/imagex"
	"cogentcore.org/colorpicker/colors"
	"cogentcore.org/colorpicker/picker"
	"github.com/alecthomas/kong"
	"github.com/h2non/filetype"
)

// errNotImage is returned for pick sources that are not images.
var errNotImage = errors.New("not an image")

// PickCmd picks the color of a pixel of an image with the eyedropper.
type PickCmd struct {
	Image string `arg:"" type:"existingfile" help:"Image to pick from."`
	X     int    `arg:"" help:"Horizontal pixel position."`
	Y     int    `arg:"" help:"Vertical pixel position."`
	Zoom  string `help:"Also save the zoomed eyedropper preview to this image file."`
}

func (c *PickCmd) Validate(kctx *kong.Context) error {
	return checkImage(c.Image)
}

// checkImage returns an error if the file does not start with
// the signature of a known image format.
func checkImage(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	head := make([]byte, 262)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return err
	}
	if !filetype.IsImage(head[:n]) {
		kind, _ := filetype.Match(head[:n])
		return fmt.Errorf("%q: %w (%s)", filename, errNotImage, kind.MIME.Value)
	}
	return nil
}

// pick returns the color at the given position of the image, and
// the zoomed preview around it.
func pick(img image.Image, pos image.Point) (colors.Color, image.Image, error) {
	s := picker.NewImageSampler(img)
	s.Pointer = pos
	p := picker.New().SetSampler(s)
	var picked colors.Color
	p.OnChange(func(c colors.Color) { picked = c })
	if err := p.StartPicking(); err != nil {
		return picked, nil, err
	}
	p.FrameTick()
	preview := p.View().PickPreview
	p.PickPointer(picker.Left)
	return picked, preview, nil
}

func (c *PickCmd) Run(g *Globals) error {
	img, _, err := imagex.Open(c.Image)
	if err != nil {
		return err
	}
	pos := image.Pt(c.X, c.Y).Add(img.Bounds().Min)
	if !pos.In(img.Bounds()) {
		return fmt.Errorf("position (%d, %d) is outside of the image bounds %v", c.X, c.Y, img.Bounds())
	}
	col, preview, err := pick(img, pos)
	if err != nil {
		return err
	}
	printColor(g.Out, fmt.Sprintf("%s (%d, %d)", c.Image, c.X, c.Y), col)
	if c.Zoom != "" && preview != nil {
		return imagex.Save(preview, c.Zoom)
	}
	return nil
}
