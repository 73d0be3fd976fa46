// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package picker

import (
	"errors"
	"fmt"
	"strings"
)

// Shapes are the layouts of the 2D picker surface and its 1D strip.
type Shapes int32 //enums:enum

const (
	// ShapeRectangle maps saturation and value over a rectangle,
	// with hue on the strip.
	ShapeRectangle Shapes = iota

	// ShapeWheel is a hue ring around a saturation and value rectangle.
	ShapeWheel

	// ShapeVHSCircle maps hue to angle and saturation to radius,
	// with value on the strip.
	ShapeVHSCircle

	// ShapeOKHSLCircle is like [ShapeVHSCircle] in the OKHSL color
	// space, with lightness on the strip.
	ShapeOKHSLCircle

	// ShapeNone hides the surface and the strip.
	ShapeNone

	// ShapesN is the number of shapes.
	ShapesN
)

var shapeNames = [ShapesN]string{"Rectangle", "Wheel", "VHSCircle", "OKHSLCircle", "None"}

// IsValid returns whether the shape is one of the defined shapes.
func (s Shapes) IsValid() bool { return s >= 0 && s < ShapesN }

// IsCircle returns whether the shape is one of the two circle shapes.
func (s Shapes) IsCircle() bool { return s == ShapeVHSCircle || s == ShapeOKHSLCircle }

// HasStrip returns whether the shape shows a 1D strip beside the surface.
func (s Shapes) HasStrip() bool {
	return s == ShapeRectangle || s.IsCircle()
}

func (s Shapes) String() string {
	if !s.IsValid() {
		return fmt.Sprintf("Shapes(%d)", int32(s))
	}
	return shapeNames[s]
}

// ShapesValues returns all valid shapes.
func ShapesValues() []Shapes {
	return []Shapes{ShapeRectangle, ShapeWheel, ShapeVHSCircle, ShapeOKHSLCircle, ShapeNone}
}

// MarshalText implements [encoding.TextMarshaler].
func (s Shapes) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidShape, s)
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
// Names are matched case insensitively.
func (s *Shapes) UnmarshalText(text []byte) error {
	for i, nm := range shapeNames {
		if strings.EqualFold(nm, string(text)) {
			*s = Shapes(i)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrInvalidShape, text)
}

// Modes are the channel sets edited by the sliders.
type Modes int32 //enums:enum

const (
	// ModeRGB edits red, green and blue in 0-255.
	ModeRGB Modes = iota

	// ModeHSV edits hue in degrees, and saturation and value in percent.
	ModeHSV

	// ModeRAW edits the unclamped red, green and blue components,
	// allowing overbright values.
	ModeRAW

	// ModeOKHSL edits OKHSL hue in degrees, and saturation and
	// lightness in percent.
	ModeOKHSL

	// ModesN is the number of modes.
	ModesN
)

var modeNames = [ModesN]string{"RGB", "HSV", "RAW", "OKHSL"}

// IsValid returns whether the mode is one of the defined modes.
func (m Modes) IsValid() bool { return m >= 0 && m < ModesN }

func (m Modes) String() string {
	if !m.IsValid() {
		return fmt.Sprintf("Modes(%d)", int32(m))
	}
	return modeNames[m]
}

// ModesValues returns all valid modes.
func ModesValues() []Modes {
	return []Modes{ModeRGB, ModeHSV, ModeRAW, ModeOKHSL}
}

// MarshalText implements [encoding.TextMarshaler].
func (m Modes) MarshalText() ([]byte, error) {
	if !m.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMode, m)
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
// Names are matched case insensitively.
func (m *Modes) UnmarshalText(text []byte) error {
	for i, nm := range modeNames {
		if strings.EqualFold(nm, string(text)) {
			*m = Modes(i)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrInvalidMode, text)
}

// Gestures are the kinds of pointer gesture in progress on the surface or strip.
type Gestures int32 //enums:enum

const (
	// NoGesture means that no gesture is in progress.
	NoGesture Gestures = iota

	// GestureSV edits saturation and value on a rectangle.
	GestureSV

	// GestureHueSpin edits only the hue, from the ring of the wheel.
	GestureHueSpin

	// GestureHueSat edits hue and saturation on a circle.
	GestureHueSat

	// GestureStrip edits the channel of the strip.
	GestureStrip
)

func (g Gestures) String() string {
	switch g {
	case NoGesture:
		return "None"
	case GestureSV:
		return "SV"
	case GestureHueSpin:
		return "HueSpin"
	case GestureHueSat:
		return "HueSat"
	case GestureStrip:
		return "Strip"
	}
	return fmt.Sprintf("Gestures(%d)", int32(g))
}

// Targets are the pointer-driven controls of the picker.
type Targets int32 //enums:enum

const (
	// TargetSurface is the 2D surface.
	TargetSurface Targets = iota

	// TargetStrip is the 1D strip.
	TargetStrip
)

func (t Targets) String() string {
	switch t {
	case TargetSurface:
		return "Surface"
	case TargetStrip:
		return "Strip"
	}
	return fmt.Sprintf("Targets(%d)", int32(t))
}

// Buttons are the mouse buttons.
type Buttons int32 //enums:enum

const (
	// NoButton is no mouse button.
	NoButton Buttons = iota

	// Left is the left mouse button.
	Left

	// Middle is the middle mouse button.
	Middle

	// Right is the right mouse button.
	Right
)

func (b Buttons) String() string {
	switch b {
	case NoButton:
		return "NoButton"
	case Left:
		return "Left"
	case Middle:
		return "Middle"
	case Right:
		return "Right"
	}
	return fmt.Sprintf("Buttons(%d)", int32(b))
}

// Parts are bit flags for the parts of the picker that need to be redrawn.
type Parts uint32

const (
	PartSurface Parts = 1 << iota
	PartStrip
	PartSliders
	PartText
	PartSample
	PartPresets
	PartRecent
	PartPicking

	// PartsColor are the parts that show the current color.
	PartsColor = PartSurface | PartStrip | PartSliders | PartText | PartSample

	// PartsAll is every part.
	PartsAll = PartsColor | PartPresets | PartRecent | PartPicking
)

// Has returns whether all of the given parts are set.
func (p Parts) Has(parts Parts) bool { return p&parts == parts }

func (p Parts) String() string {
	names := []string{"Surface", "Strip", "Sliders", "Text", "Sample", "Presets", "Recent", "Picking"}
	var b strings.Builder
	for i, nm := range names {
		if p&(1<<i) == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('|')
		}
		b.WriteString(nm)
	}
	if b.Len() == 0 {
		return "0"
	}
	return b.String()
}

var (
	// ErrInvalidShape is returned for a shape outside of the defined [Shapes].
	ErrInvalidShape = errors.New("picker: invalid shape")

	// ErrInvalidMode is returned for a mode outside of the defined [Modes].
	ErrInvalidMode = errors.New("picker: invalid mode")

	// ErrInvalidSlider is returned for a slider index outside of 0-3.
	ErrInvalidSlider = errors.New("picker: invalid slider index")
)

// States are the states of the picker with respect to gestures.
type States int32 //enums:enum

const (
	// Idle is when no gesture is in progress.
	Idle States = iota

	// Editing is when a pointer gesture on the surface or strip,
	// or a slider drag, is in progress.
	Editing
)

func (s States) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Editing:
		return "Editing"
	}
	return fmt.Sprintf("States(%d)", int32(s))
}
