// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package picker provides the state and input handling of an interactive
// color picker. A [Picker] keeps one canonical color consistent with its
// cached HSV and OKHSL coordinates while sliders, a 2D surface with a 1D
// strip, hex text, swatches and an eyedropper edit it. Drawing is left to
// a [Renderer], which receives a [View] snapshot whenever parts change.
package picker

import (
	"image"
	"log/slog"

	"cogentcore.org/colorpicker/colors"
	"cogentcore.org/colorpicker/math32"
)

// Renderer draws the parts of a picker.
// Redraw is called at the end of every event that changed any of the
// given parts. Calls back into the picker from Redraw are ignored.
type Renderer interface {
	Redraw(parts Parts, v *View)
}

// View is a snapshot of everything needed to draw a picker.
type View struct {

	// Color is the current color.
	Color colors.Color

	// OldColor is the color shown on the left half of the sample
	// if DisplayOldColor is on.
	OldColor colors.Color

	// DisplayOldColor is whether to show OldColor beside Color.
	DisplayOldColor bool

	// Coords are the cached coordinates of Color.
	Coords Coords

	// Shape is the shape of the surface, after any override of the mode.
	Shape Shapes

	// Mode is the slider mode.
	Mode Modes

	// Channels are the three channel sliders of Mode.
	Channels [3]Channel

	// Alpha is the alpha slider of Mode.
	Alpha Channel

	// Step is the step of the sliders.
	Step float32

	// ArrowStep is the step of the arrows of the numeric fields.
	ArrowStep float32

	// Values are the values of the four sliders.
	Values [4]float32

	// Gradients are the slider backgrounds when sliders are colorized.
	Gradients [4][]colors.Color

	// EditAlpha is whether the alpha slider is shown.
	EditAlpha bool

	// Text is the hex or constructor text.
	Text string

	// TextVisible is whether the text field is shown; it is hidden
	// for overbright and negative colors.
	TextVisible bool

	// TextConstructor is whether Text is in the Color(r, g, b) form.
	TextConstructor bool

	// Surface is the geometry of the 2D surface.
	Surface Surface

	// Strip is the geometry of the 1D strip.
	Strip Strip

	// SampleSize is the size of the sample preview.
	SampleSize math32.Vector2

	// SurfaceCursor is the position of the cursor on the surface.
	SurfaceCursor math32.Vector2

	// HueCursor is the position of the hue cursor on the ring of the wheel.
	HueCursor math32.Vector2

	// StripCursor is the vertical position of the cursor on the strip.
	StripCursor float32

	// Presets are the saved swatches.
	Presets []colors.Color

	// Recent are the recently used colors, oldest first.
	Recent []colors.Color

	// PaletteName is the name of the loaded palette, with a * suffix
	// if it has unsaved changes.
	PaletteName string

	// State is whether a gesture is in progress.
	State States

	// Picking is whether the eyedropper is active.
	Picking bool

	// PickPreview is the zoomed region around the eyedropper pointer,
	// if the sampler supports regions.
	PickPreview image.Image

	// PickBackground is the frame color of the eyedropper preview,
	// which contrasts with Color.
	PickBackground colors.Color
}

// Picker is the state of a color picker. It is driven by input events and
// is not safe for concurrent use; all calls must come from the thread
// that handles input.
type Picker struct {
	color     colors.Color
	lastColor colors.Color
	oldColor  colors.Color
	coords    Coords

	shape Shapes
	mode  Modes

	deferred        bool
	editAlpha       bool
	colorizeSliders bool
	textConstructor bool
	displayOldColor bool
	canAddSwatches  bool

	// updating suppresses reentrant events while a change is applied.
	updating bool

	// dragging is whether a slider is being dragged.
	dragging bool

	// changing is whether a surface or strip gesture is in progress.
	changing bool
	gesture  Gestures
	target   Targets

	// textChanged is whether the text was edited since the last change,
	// in which case the color before the next change is made recent.
	textChanged bool

	surfaceSize math32.Vector2
	stripSize   math32.Vector2
	sampleSize  math32.Vector2
	wheelRadius float32

	presets       *Presets
	recent        *Presets
	paletteName   string
	palettePath   string
	paletteEdited bool

	renderer Renderer
	settings SettingsStore

	sampler      ScreenSampler
	picking      bool
	prePickColor colors.Color
	pickPreview  image.Image

	dirty     Parts
	saveDirty bool
	events    []func()

	onChange         []func(c colors.Color)
	onPresetAdded    []func(c colors.Color)
	onPresetRemoved  []func(c colors.Color)
	onPresetsChanged []func(cs []colors.Color)
	onRecentChanged  []func(cs []colors.Color)
}

// New returns a new picker with opaque white as the color.
func New() *Picker {
	p := &Picker{
		color:           colors.White,
		oldColor:        colors.White,
		shape:           ShapeRectangle,
		mode:            ModeRGB,
		editAlpha:       true,
		colorizeSliders: true,
		canAddSwatches:  true,
		surfaceSize:     math32.Vec2(256, 256),
		stripSize:       math32.Vec2(30, 256),
		sampleSize:      math32.Vec2(256, 32),
		wheelRadius:     DefaultWheelRadius,
		presets:         NewPresets(0),
		recent:          NewPresets(PresetColumns),
	}
	p.lastColor = p.color
	p.coords = CoordsFromColor(p.color)
	return p
}

// hold suppresses reentrant events until the returned function is called.
// The intended usage is:
//
//	defer p.hold()()
func (p *Picker) hold() func() {
	prev := p.updating
	p.updating = true
	return func() { p.updating = prev }
}

// mutate applies a change with reentrant events suppressed, redraws the
// parts marked by fn, saves settings if needed, and then runs the queued
// listener events with the suppression lifted. It does nothing if a
// change is already being applied.
func (p *Picker) mutate(fn func()) {
	if p.updating {
		return
	}
	func() {
		defer p.hold()()
		fn()
		p.flush()
	}()
	evs := p.events
	p.events = nil
	for _, ev := range evs {
		ev()
	}
}

// update marks the given parts for redrawing at the end of the current change.
func (p *Picker) update(parts Parts) {
	p.dirty |= parts
}

// flush redraws and saves the dirty state.
func (p *Picker) flush() {
	if p.saveDirty {
		p.saveDirty = false
		p.saveSettings()
	}
	if p.dirty == 0 {
		return
	}
	parts := p.dirty
	p.dirty = 0
	if p.renderer != nil {
		p.renderer.Redraw(parts, p.View())
	}
}

// changed queues a color changed event with the current color.
func (p *Picker) changed() {
	c := p.color
	p.events = append(p.events, func() {
		for _, f := range p.onChange {
			f(c)
		}
	})
}

// setPickColor replaces the color, re-deriving both triples if it differs
// from the color they were last derived from.
func (p *Picker) setPickColor(c colors.Color) {
	if p.textChanged {
		p.addRecent(p.color)
		p.textChanged = false
	}
	p.color = c
	if c != p.lastColor {
		p.coords = CoordsFromColor(c)
		p.lastColor = c
	}
	p.update(PartsColor)
}

// applyCoords replaces the color with the one given by the coordinates
// that are live for the actual shape, keeping the coordinates as given.
func (p *Picker) applyCoords(co Coords) {
	p.coords = co
	c := co.ToColor(p.ActualShape(), p.color.A)
	p.lastColor = c
	p.setPickColor(c)
}

// OnChange adds a listener for committed color changes. In deferred mode
// it is not called for intermediate values of gestures.
func (p *Picker) OnChange(fun func(c colors.Color)) *Picker {
	p.onChange = append(p.onChange, fun)
	return p
}

// OnPresetAdded adds a listener for the current color being added as
// a preset from the add swatch button.
func (p *Picker) OnPresetAdded(fun func(c colors.Color)) *Picker {
	p.onPresetAdded = append(p.onPresetAdded, fun)
	return p
}

// OnPresetRemoved adds a listener for a preset being removed by a
// secondary click on its swatch.
func (p *Picker) OnPresetRemoved(fun func(c colors.Color)) *Picker {
	p.onPresetRemoved = append(p.onPresetRemoved, fun)
	return p
}

// OnPresetsChanged adds a listener for any change to the presets, which
// receives the full list for persistence.
func (p *Picker) OnPresetsChanged(fun func(cs []colors.Color)) *Picker {
	p.onPresetsChanged = append(p.onPresetsChanged, fun)
	return p
}

// OnRecentChanged adds a listener for any change to the recent presets.
func (p *Picker) OnRecentChanged(fun func(cs []colors.Color)) *Picker {
	p.onRecentChanged = append(p.onRecentChanged, fun)
	return p
}

// SetRenderer sets the renderer and redraws everything.
func (p *Picker) SetRenderer(r Renderer) *Picker {
	p.mutate(func() {
		p.renderer = r
		p.update(PartsAll)
	})
	return p
}

// SetSurfaceSize sets the size of the 2D surface.
func (p *Picker) SetSurfaceSize(sz math32.Vector2) *Picker {
	p.mutate(func() {
		p.surfaceSize = sz
		p.update(PartSurface)
	})
	return p
}

// SetStripSize sets the size of the 1D strip.
func (p *Picker) SetStripSize(sz math32.Vector2) *Picker {
	p.mutate(func() {
		p.stripSize = sz
		p.update(PartStrip)
	})
	return p
}

// SetSampleSize sets the size of the sample preview.
func (p *Picker) SetSampleSize(sz math32.Vector2) *Picker {
	p.mutate(func() {
		p.sampleSize = sz
		p.update(PartSample)
	})
	return p
}

// SetWheelRadius sets the [Surface.WheelRadius] of the wheel shape.
func (p *Picker) SetWheelRadius(r float32) *Picker {
	p.mutate(func() {
		p.wheelRadius = r
		p.update(PartSurface)
	})
	return p
}

// Color returns the current color.
func (p *Picker) Color() colors.Color { return p.color }

// Coords returns the cached coordinates of the current color.
func (p *Picker) Coords() Coords { return p.coords }

// OldColor returns the color shown for comparison in the sample.
func (p *Picker) OldColor() colors.Color { return p.oldColor }

// Shape returns the selected shape.
func (p *Picker) Shape() Shapes { return p.shape }

// ActualShape returns the shape in use, which is the shape override
// of the mode if it has one and the selected shape otherwise.
func (p *Picker) ActualShape() Shapes {
	return ActualShape(p.mode.Mode(), p.shape)
}

// Mode returns the slider mode.
func (p *Picker) Mode() Modes { return p.mode }

// IsDeferred returns whether deferred mode is on.
func (p *Picker) IsDeferred() bool { return p.deferred }

// EditAlpha returns whether the alpha can be edited.
func (p *Picker) EditAlpha() bool { return p.editAlpha }

// State returns whether a gesture is in progress.
func (p *Picker) State() States {
	if p.dragging || p.changing {
		return Editing
	}
	return Idle
}

// Gesture returns the surface or strip gesture in progress.
func (p *Picker) Gesture() Gestures { return p.gesture }

// Picking returns whether the eyedropper is active.
func (p *Picker) Picking() bool { return p.picking }

// Surface returns the geometry of the 2D surface.
func (p *Picker) Surface() Surface {
	return Surface{Shape: p.ActualShape(), Size: p.surfaceSize, WheelRadius: p.wheelRadius}
}

// Strip returns the geometry of the 1D strip.
func (p *Picker) Strip() Strip {
	return Strip{Shape: p.ActualShape(), Size: p.stripSize}
}

// SliderValues returns the values of the four sliders of the current mode.
func (p *Picker) SliderValues() [4]float32 {
	return p.mode.Mode().Values(p.color, p.coords)
}

// Text returns the text shown in the text field, and whether the text
// field is shown at all. The text is lowercase hex with alpha if the
// alpha is edited and below 1, or the constructor form if that is on.
// Colors outside of the displayable range hide the text field.
func (p *Picker) Text() (string, bool) {
	alpha := p.editAlpha && p.color.A < 1
	visible := p.color.InGamut()
	if p.textConstructor {
		return colors.AsConstructor(p.color, alpha), visible
	}
	if !visible {
		return "", false
	}
	return colors.AsHex(p.color, alpha), true
}

// Presets returns the saved presets.
func (p *Picker) Presets() []colors.Color { return p.presets.Colors() }

// RecentPresets returns the recent presets, oldest first.
func (p *Picker) RecentPresets() []colors.Color { return p.recent.Colors() }

// Palette returns the name and path of the loaded palette, and whether
// the presets were changed since it was loaded or saved.
func (p *Picker) Palette() (name, path string, edited bool) {
	return p.paletteName, p.palettePath, p.paletteEdited
}

// View returns a snapshot of the picker for drawing.
func (p *Picker) View() *View {
	m := p.mode.Mode()
	sf := p.Surface()
	st := p.Strip()
	v := &View{
		Color:           p.color,
		OldColor:        p.oldColor,
		DisplayOldColor: p.displayOldColor,
		Coords:          p.coords,
		Shape:           sf.Shape,
		Mode:            p.mode,
		Channels:        m.Channels(),
		Alpha:           m.Alpha(),
		Step:            m.Step(),
		ArrowStep:       m.ArrowStep(),
		Values:          m.Values(p.color, p.coords),
		EditAlpha:       p.editAlpha,
		TextConstructor: p.textConstructor,
		Surface:         sf,
		Strip:           st,
		SampleSize:      p.sampleSize,
		SurfaceCursor:   sf.Cursor(p.coords),
		HueCursor:       sf.HueCursor(p.coords.H),
		StripCursor:     st.Cursor(p.coords),
		Presets:         p.presets.Colors(),
		Recent:          p.recent.Colors(),
		PaletteName:     p.paletteName,
		State:           p.State(),
		Picking:         p.picking,
		PickPreview:     p.pickPreview,
		PickBackground:  contrast(p.color),
	}
	v.Text, v.TextVisible = p.Text()
	if p.paletteEdited && p.paletteName != "" {
		v.PaletteName += "*"
	}
	if p.colorizeSliders {
		for i := range v.Gradients {
			v.Gradients[i] = Gradient(m, i, p.color, p.coords)
		}
	}
	return v
}

// contrast returns white for dark colors and black for light ones.
func contrast(c colors.Color) colors.Color {
	if c.Luminance() < 0.5 {
		return colors.White
	}
	return colors.Black
}

// SetColor sets the current color without notifying change listeners.
func (p *Picker) SetColor(c colors.Color) *Picker {
	p.mutate(func() {
		p.setPickColor(c)
	})
	return p
}

// SetShape sets the selected shape of the surface. It returns
// [ErrInvalidShape] for shapes outside of [Shapes].
func (p *Picker) SetShape(s Shapes) error {
	if !s.IsValid() {
		slog.Error("picker.SetShape", "err", ErrInvalidShape, "shape", int32(s))
		return ErrInvalidShape
	}
	p.mutate(func() {
		if s == p.shape {
			return
		}
		p.shape = s
		p.coords = CoordsFromColor(p.color)
		p.lastColor = p.color
		p.saveDirty = true
		p.update(PartsColor)
		slog.Debug("picker shape changed", "shape", s, "actual", p.ActualShape())
	})
	return nil
}

// SetMode sets the slider mode. It returns [ErrInvalidMode] for modes
// outside of [Modes]. The color is never changed by a mode switch; both
// triples are derived again from it.
func (p *Picker) SetMode(m Modes) error {
	if !m.IsValid() {
		slog.Error("picker.SetMode", "err", ErrInvalidMode, "mode", int32(m))
		return ErrInvalidMode
	}
	p.mutate(func() {
		if m == p.mode {
			return
		}
		p.mode = m
		p.coords = CoordsFromColor(p.color)
		p.lastColor = p.color
		p.saveDirty = true
		p.update(PartsColor)
		slog.Debug("picker mode changed", "mode", m, "actual", p.ActualShape())
	})
	return nil
}

// SetDeferred sets whether change listeners are only notified at the end
// of gestures instead of for every intermediate value.
func (p *Picker) SetDeferred(deferred bool) *Picker {
	p.deferred = deferred
	return p
}

// SetEditAlpha sets whether the alpha can be edited.
func (p *Picker) SetEditAlpha(edit bool) *Picker {
	p.mutate(func() {
		if edit == p.editAlpha {
			return
		}
		p.editAlpha = edit
		p.update(PartSliders | PartText | PartSample)
	})
	return p
}

// SetColorizeSliders sets whether slider backgrounds show the colors
// they would select.
func (p *Picker) SetColorizeSliders(colorize bool) *Picker {
	p.mutate(func() {
		if colorize == p.colorizeSliders {
			return
		}
		p.colorizeSliders = colorize
		p.update(PartSliders)
	})
	return p
}

// SetTextConstructor sets whether the text shows the read-only
// Color(r, g, b) form instead of editable hex.
func (p *Picker) SetTextConstructor(constructor bool) *Picker {
	p.mutate(func() {
		p.textConstructor = constructor
		p.update(PartText)
	})
	return p
}

// SetOldColor sets the color shown for comparison in the sample.
func (p *Picker) SetOldColor(c colors.Color) *Picker {
	p.mutate(func() {
		p.oldColor = c
		p.update(PartSample)
	})
	return p
}

// SetDisplayOldColor sets whether the old color is shown in the sample.
func (p *Picker) SetDisplayOldColor(display bool) *Picker {
	p.mutate(func() {
		p.displayOldColor = display
		p.update(PartSample)
	})
	return p
}

// SetCanAddSwatches sets whether presets can be added and removed
// from the swatch buttons.
func (p *Picker) SetCanAddSwatches(can bool) *Picker {
	p.mutate(func() {
		p.canAddSwatches = can
		p.update(PartPresets)
	})
	return p
}
