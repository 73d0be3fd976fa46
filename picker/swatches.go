// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package picker

import (
	"cogentcore.org/colorpicker/colors"
)

// addRecent makes the given color the most recent one.
func (p *Picker) addRecent(c colors.Color) {
	p.recent.Add(c)
	p.recentChanged()
}

func (p *Picker) recentChanged() {
	p.saveDirty = true
	p.update(PartRecent)
	cs := p.recent.Colors()
	p.events = append(p.events, func() {
		for _, f := range p.onRecentChanged {
			f(cs)
		}
	})
}

func (p *Picker) presetsChanged() {
	p.saveDirty = true
	p.update(PartPresets)
	cs := p.presets.Colors()
	p.events = append(p.events, func() {
		for _, f := range p.onPresetsChanged {
			f(cs)
		}
	})
}

func (p *Picker) emitPreset(listeners []func(c colors.Color), c colors.Color) {
	p.events = append(p.events, func() {
		for _, f := range listeners {
			f(c)
		}
	})
}

// AddPreset adds the given color to the presets, moving it to the back
// if it is already present. A loaded palette is marked as edited.
func (p *Picker) AddPreset(c colors.Color) {
	p.mutate(func() {
		p.addPreset(c)
	})
}

func (p *Picker) addPreset(c colors.Color) {
	p.presets.Add(c)
	p.paletteEdited = true
	p.presetsChanged()
}

// AddCurrentPreset handles the add swatch button, adding the current
// color to the presets and notifying preset added listeners.
func (p *Picker) AddCurrentPreset() {
	p.mutate(func() {
		if !p.canAddSwatches {
			return
		}
		p.addPreset(p.color)
		p.emitPreset(p.onPresetAdded, p.color)
	})
}

// ErasePreset removes the given color from the presets. Removing the last
// preset forgets the loaded palette.
func (p *Picker) ErasePreset(c colors.Color) {
	p.mutate(func() {
		p.erasePreset(c)
	})
}

func (p *Picker) erasePreset(c colors.Color) bool {
	if !p.presets.Remove(c) {
		return false
	}
	p.paletteEdited = true
	if p.presets.Len() == 0 {
		p.paletteName = ""
		p.palettePath = ""
	}
	p.presetsChanged()
	return true
}

// EraseRecentPreset removes the given color from the recent presets.
func (p *Picker) EraseRecentPreset(c colors.Color) {
	p.mutate(func() {
		if p.recent.Remove(c) {
			p.recentChanged()
		}
	})
}

// ClearPresets removes all presets and forgets the loaded palette.
func (p *Picker) ClearPresets() {
	p.mutate(func() {
		p.presets.Clear()
		p.paletteName = ""
		p.palettePath = ""
		p.paletteEdited = false
		p.presetsChanged()
	})
}

// SetPresets replaces the presets, typically with ones loaded from
// storage. Preset listeners are not notified.
func (p *Picker) SetPresets(cs []colors.Color) {
	p.mutate(func() {
		p.presets.Set(cs)
		p.saveDirty = true
		p.update(PartPresets)
	})
}

// SetRecentPresets replaces the recent presets, keeping the newest
// [PresetColumns] of them. Recent listeners are not notified.
func (p *Picker) SetRecentPresets(cs []colors.Color) {
	p.mutate(func() {
		p.recent.Set(cs)
		p.saveDirty = true
		p.update(PartRecent)
	})
}

// LoadPalette replaces the presets with the colors of a palette
// loaded from the given path.
func (p *Picker) LoadPalette(name, path string, cs []colors.Color) {
	p.mutate(func() {
		p.presets.Set(cs)
		p.paletteName = name
		p.palettePath = path
		p.paletteEdited = false
		p.presetsChanged()
	})
}

// PaletteSaved records that the presets were saved as a palette
// with the given name at the given path.
func (p *Picker) PaletteSaved(name, path string) {
	p.mutate(func() {
		p.paletteName = name
		p.palettePath = path
		p.paletteEdited = false
		p.saveDirty = true
		p.update(PartPresets)
	})
}

// PresetPressed handles a press on a preset swatch. The primary button
// selects the color and makes it recent; the secondary button removes
// the preset if swatches can be edited.
func (p *Picker) PresetPressed(c colors.Color, button Buttons) {
	p.mutate(func() {
		switch {
		case button == Left:
			p.setPickColor(c)
			p.addRecent(c)
			p.changed()
		case button == Right && p.canAddSwatches:
			if p.erasePreset(c) {
				p.emitPreset(p.onPresetRemoved, c)
			}
		}
	})
}

// RecentPresetPressed handles a press on a recent swatch, which selects
// the color and makes it the most recent one.
func (p *Picker) RecentPresetPressed(c colors.Color) {
	p.mutate(func() {
		p.setPickColor(c)
		if p.recent.MoveToBack(c) {
			p.recentChanged()
		}
		p.changed()
	})
}
