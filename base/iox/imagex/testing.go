// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// TestingT is an interface wrapper around *testing.T
type TestingT interface {
	Errorf(format string, args ...any)
}

// UpdateTestImages indicates whether to update currently saved test
// images in [Assert] instead of comparing against them.
// It is set if the environment variable "COLORPICKER_UPDATE_TESTDATA"
// is "true". It should only be set when behavior has been updated that
// causes test images to change.
var UpdateTestImages = os.Getenv("COLORPICKER_UPDATE_TESTDATA") == "true"

// Tolerance is the largest per-channel difference that [Assert] accepts.
var Tolerance = 2

// CompareColors returns whether two colors differ by at most tol
// in every channel.
func CompareColors(cc, ic color.RGBA, tol int) bool {
	near := func(a, b uint8) bool {
		d := int(a) - int(b)
		return d >= -tol && d <= tol
	}
	return near(cc.R, ic.R) && near(cc.G, ic.G) && near(cc.B, ic.B) && near(cc.A, ic.A)
}

// DiffImage returns the difference between two images,
// with pixels having the abs of the difference between pixels.
func DiffImage(a, b image.Image) image.Image {
	ab := a.Bounds()
	di := image.NewRGBA(ab)
	abs := func(x, y uint8) uint8 {
		if x > y {
			return x - y
		}
		return y - x
	}
	for y := ab.Min.Y; y < ab.Max.Y; y++ {
		for x := ab.Min.X; x < ab.Max.X; x++ {
			cc := color.RGBAModel.Convert(a.At(x, y)).(color.RGBA)
			ic := color.RGBAModel.Convert(b.At(x, y)).(color.RGBA)
			di.Set(x, y, color.RGBA{abs(cc.R, ic.R), abs(cc.G, ic.G), abs(cc.B, ic.B), 255})
		}
	}
	return di
}

// golden returns the testdata path of a golden image along with the
// paths of its fail and diff images.
func golden(name string) (file, fail, diff string) {
	file = filepath.Join("testdata", name)
	ext := filepath.Ext(file)
	if ext == "" {
		ext = ".png"
		file += ext
	}
	base := strings.TrimSuffix(file, ext)
	return file, base + ".fail" + ext, base + ".diff" + ext
}

// mismatch returns a description of the first difference between
// img and want, or "" if they are equal within [Tolerance].
func mismatch(img, want image.Image) string {
	ib, wb := img.Bounds(), want.Bounds()
	if ib.Size() != wb.Size() {
		return fmt.Sprintf("expected size %v, but got %v", wb.Size(), ib.Size())
	}
	for y := range ib.Dy() {
		for x := range ib.Dx() {
			got := color.RGBAModel.Convert(img.At(ib.Min.X+x, ib.Min.Y+y)).(color.RGBA)
			exp := color.RGBAModel.Convert(want.At(wb.Min.X+x, wb.Min.Y+y)).(color.RGBA)
			if !CompareColors(got, exp, Tolerance) {
				return fmt.Sprintf("expected color %v at (%d, %d), but got %v", exp, x, y, got)
			}
		}
	}
	return ""
}

// Assert checks img against the golden image with the given name in
// the testdata directory, where ".png" is added to names without an
// extension. A missing golden image is created. On a mismatch the test
// fails and continues, with the image and its difference from the golden
// image saved next to it as .fail and .diff files.
func Assert(t TestingT, img image.Image, name string) {
	file, fail, diff := golden(name)
	if err := os.MkdirAll(filepath.Dir(file), 0750); err != nil {
		t.Errorf("imagex.Assert: %v", err)
		return
	}
	clean := func() {
		os.RemoveAll(fail)
		os.RemoveAll(diff)
	}
	if UpdateTestImages {
		if err := Save(img, file); err != nil {
			t.Errorf("imagex.Assert: updating %s: %v", file, err)
		}
		clean()
		return
	}

	want, _, err := Open(file)
	if errors.Is(err, fs.ErrNotExist) {
		if err := Save(img, file); err != nil {
			t.Errorf("imagex.Assert: creating %s: %v", file, err)
		}
		return
	}
	if err != nil {
		t.Errorf("imagex.Assert: opening %s: %v", file, err)
		return
	}

	msg := mismatch(img, want)
	if msg == "" {
		clean()
		return
	}
	t.Errorf("imagex.Assert: image for %s differs, see %s: %s", file, fail, msg)
	if err := Save(img, fail); err != nil {
		t.Errorf("imagex.Assert: saving %s: %v", fail, err)
	}
	if img.Bounds().Size() == want.Bounds().Size() {
		if err := Save(DiffImage(img, want), diff); err != nil {
			t.Errorf("imagex.Assert: saving %s: %v", diff, err)
		}
	}
}
