// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package picker

import (
	"fmt"
	"log/slog"

	"cogentcore.org/colorpicker/colors"
	"cogentcore.org/colorpicker/math32"
)

// SliderChanged handles slider i (3 for alpha) of the current mode being
// set to the given value. Values below 0, and above the maximum of
// channels that do not allow greater values, are clamped. It returns
// [ErrInvalidSlider] for indexes outside of 0-3.
func (p *Picker) SliderChanged(i int, value float32) error {
	if i < 0 || i > 3 {
		err := fmt.Errorf("%w: %d", ErrInvalidSlider, i)
		slog.Error(err.Error())
		return err
	}
	p.mutate(func() {
		m := p.mode.Mode()
		var ch Channel
		if i == 3 {
			ch = m.Alpha()
		} else {
			ch = m.Channels()[i]
		}
		value = max(value, 0)
		if !ch.AllowGreater {
			value = min(value, ch.Max)
		}
		vals := m.Values(p.color, p.coords)
		vals[i] = value
		c, co := m.Write(vals, p.color, p.coords)
		p.coords = co
		p.lastColor = c
		p.setPickColor(c)
		if !p.deferred || !p.dragging {
			p.changed()
		}
	})
	return nil
}

// SliderDragStarted handles the start of a slider drag.
func (p *Picker) SliderDragStarted() {
	p.mutate(func() {
		p.dragging = true
	})
}

// SliderDragEnded handles the end of a slider drag, which notifies
// change listeners of the final value in deferred mode.
func (p *Picker) SliderDragEnded() {
	p.mutate(func() {
		if !p.dragging {
			return
		}
		p.dragging = false
		if p.deferred {
			p.changed()
		}
	})
}

// SliderReleased handles the primary button being released on a slider
// or its numeric field, which makes the current color recent.
func (p *Picker) SliderReleased() {
	p.mutate(func() {
		p.addRecent(p.color)
	})
}

// PointerDown handles a button press on the surface or the strip at the
// given position relative to the top left of the target. It returns
// whether a gesture was started; presses outside of the input region of
// the shape and presses of other buttons than [Left] change nothing.
func (p *Picker) PointerDown(target Targets, button Buttons, pos math32.Vector2) bool {
	started := false
	p.mutate(func() {
		if button != Left {
			p.endGesture()
			return
		}
		var co Coords
		var g Gestures
		var ok bool
		switch target {
		case TargetSurface:
			co, g, ok = p.Surface().Press(pos, p.coords)
		case TargetStrip:
			co, ok = p.Strip().Press(pos, p.coords)
			g = GestureStrip
		}
		if !ok {
			return
		}
		started = true
		p.changing = true
		p.gesture = g
		p.target = target
		p.applyCoords(co)
		if !p.deferred {
			p.changed()
		}
	})
	return started
}

// PointerMove handles the pointer moving over the given target. It only
// has an effect during a gesture started on that target, and positions
// outside of the input region are clamped to it.
func (p *Picker) PointerMove(target Targets, pos math32.Vector2) {
	p.mutate(func() {
		if !p.changing || target != p.target {
			return
		}
		var co Coords
		if target == TargetStrip {
			co = p.Strip().Drag(pos, p.coords)
		} else {
			co = p.Surface().Drag(pos, p.coords, p.gesture)
		}
		p.applyCoords(co)
		if !p.deferred {
			p.changed()
		}
	})
}

// PointerUp handles a button release on the given target. Releasing the
// primary button ends the gesture, makes the color recent, and in
// deferred mode notifies change listeners of the final value.
func (p *Picker) PointerUp(target Targets, button Buttons, pos math32.Vector2) {
	p.mutate(func() {
		if !p.changing || target != p.target {
			return
		}
		if button != Left {
			p.endGesture()
			return
		}
		p.endGesture()
		if p.deferred {
			p.changed()
		}
		p.addRecent(p.color)
	})
}

func (p *Picker) endGesture() {
	if p.changing {
		p.update(PartSurface | PartStrip)
	}
	p.changing = false
	p.gesture = NoGesture
}

// TextChanged handles the text being edited, before it is submitted.
// The color before the next change is then made recent.
func (p *Picker) TextChanged(text string) {
	p.mutate(func() {
		p.textChanged = true
	})
}

// TextSubmitted handles the text being submitted. Text that is not a
// valid color is repaired with [colors.RepairHex] where possible and
// otherwise ignored. Nothing happens in constructor mode, or when the
// text field is hidden, or when the text resolves to the same 8-bit
// color. Without alpha editing the alpha is kept.
func (p *Picker) TextSubmitted(text string) {
	p.mutate(func() {
		if _, visible := p.Text(); p.textConstructor || !visible {
			return
		}
		nc := colors.FromText(text, p.color)
		if !p.editAlpha {
			nc.A = p.color.A
		}
		if nc.ARGB32() == p.color.ARGB32() {
			p.update(PartText)
			return
		}
		p.setPickColor(nc)
		p.changed()
	})
}

// TextFocusExited handles the text field losing focus, which submits it.
func (p *Picker) TextFocusExited(text string) {
	p.TextSubmitted(text)
}

// SampleClicked handles a click on the sample preview at the given
// position. A primary click on the left half while the old color is
// displayed reverts to the old color.
func (p *Picker) SampleClicked(button Buttons, pos math32.Vector2) {
	p.mutate(func() {
		if !p.displayOldColor || button != Left {
			return
		}
		old := math32.Vec2(p.sampleSize.X*0.5, p.sampleSize.Y*0.95)
		if !contains(old, pos) || pos.X >= old.X {
			return
		}
		p.setPickColor(p.oldColor)
		p.changed()
	})
}
