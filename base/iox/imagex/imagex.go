// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package imagex provides image file reading and writing by extension,
// along with golden image assertions for tests.
package imagex

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Formats are the image file formats.
type Formats int32 //enums:enum

const (
	None Formats = iota
	PNG
	JPEG
	GIF
	TIFF
	BMP

	// WebP can only be read.
	WebP
)

var formatNames = []string{"None", "PNG", "JPEG", "GIF", "TIFF", "BMP", "WebP"}

func (f Formats) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Formats(%d)", int32(f))
	}
	return formatNames[f]
}

// extFormats maps lowercase extensions without the dot to formats.
var extFormats = map[string]Formats{
	"png":  PNG,
	"jpg":  JPEG,
	"jpeg": JPEG,
	"gif":  GIF,
	"tif":  TIFF,
	"tiff": TIFF,
	"bmp":  BMP,
	"webp": WebP,
}

// encoders are the writers of the formats that can be written.
var encoders = map[Formats]func(w io.Writer, im image.Image) error{
	PNG:  png.Encode,
	JPEG: func(w io.Writer, im image.Image) error { return jpeg.Encode(w, im, &jpeg.Options{Quality: 90}) },
	GIF:  func(w io.Writer, im image.Image) error { return gif.Encode(w, im, nil) },
	TIFF: func(w io.Writer, im image.Image) error { return tiff.Encode(w, im, nil) },
	BMP:  bmp.Encode,
}

// ExtToFormat returns the format for a filename extension,
// with or without the leading dot.
func ExtToFormat(ext string) (Formats, error) {
	if ext == "" {
		return None, errors.New("imagex: empty extension")
	}
	f, ok := extFormats[strings.ToLower(strings.TrimPrefix(ext, "."))]
	if !ok {
		return None, fmt.Errorf("imagex: extension %q not recognized", ext)
	}
	return f, nil
}

// Open reads the image in the given file, detecting its format
// from the content.
func Open(filename string) (image.Image, Formats, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, None, err
	}
	defer file.Close()
	return Read(bufio.NewReader(file))
}

// Read decodes an image from the given reader.
func Read(r io.Reader) (image.Image, Formats, error) {
	im, name, err := image.Decode(r)
	if err != nil {
		return nil, None, fmt.Errorf("imagex: decode: %w", err)
	}
	f, err := ExtToFormat(name)
	return im, f, err
}

// Save writes the image to the given file in the format of its extension.
func Save(im image.Image, filename string) error {
	f, err := ExtToFormat(filepath.Ext(filename))
	if err != nil {
		return err
	}
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	bw := bufio.NewWriter(file)
	if err := Write(im, bw, f); err != nil {
		return err
	}
	return bw.Flush()
}

// Write writes the image to the given writer in the given format.
func Write(im image.Image, w io.Writer, f Formats) error {
	enc, ok := encoders[f]
	if !ok {
		return fmt.Errorf("imagex: cannot write %v", f)
	}
	return enc(w, im)
}

// AsRGBA returns src itself if it is an [image.RGBA] and an RGBA copy otherwise.
func AsRGBA(src image.Image) *image.RGBA {
	if src == nil {
		return nil
	}
	if rgba, ok := src.(*image.RGBA); ok {
		return rgba
	}
	bounds := src.Bounds()
	img := image.NewRGBA(bounds)
	draw.Draw(img, bounds, src, bounds.Min, draw.Src)
	return img
}
