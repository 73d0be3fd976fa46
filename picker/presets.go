// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package picker

import (
	"slices"

	"cogentcore.org/colorpicker/colors"
)

// PresetColumns is the number of columns in the swatch grid,
// which is also the capacity of the recent presets.
const PresetColumns = 8

// Presets is an ordered list of distinct colors. Adding a color that is
// already present moves it to the back. If Capacity is positive, adding
// beyond it evicts the oldest color from the front.
type Presets struct {

	// Capacity is the maximum number of colors, or 0 for no limit.
	Capacity int

	colors []colors.Color
}

// NewPresets returns new presets with the given capacity (0 for no limit).
func NewPresets(capacity int) *Presets {
	return &Presets{Capacity: capacity}
}

// Len returns the number of colors.
func (ps *Presets) Len() int { return len(ps.colors) }

// Colors returns a copy of the colors, oldest first.
func (ps *Presets) Colors() []colors.Color {
	return slices.Clone(ps.colors)
}

// Index returns the index of the given color, or -1 if it is not present.
func (ps *Presets) Index(c colors.Color) int {
	return slices.Index(ps.colors, c)
}

// Contains returns whether the given color is present.
func (ps *Presets) Contains(c colors.Color) bool {
	return ps.Index(c) >= 0
}

// Add adds the given color to the back, moving it there if it is already
// present. It returns the evicted color and true if the capacity was exceeded.
func (ps *Presets) Add(c colors.Color) (colors.Color, bool) {
	if ps.MoveToBack(c) {
		return colors.Color{}, false
	}
	ps.colors = append(ps.colors, c)
	if ps.Capacity > 0 && len(ps.colors) > ps.Capacity {
		ev := ps.colors[0]
		ps.colors = slices.Delete(ps.colors, 0, 1)
		return ev, true
	}
	return colors.Color{}, false
}

// MoveToBack moves the given color to the back, returning false
// if it is not present.
func (ps *Presets) MoveToBack(c colors.Color) bool {
	i := ps.Index(c)
	if i < 0 {
		return false
	}
	ps.colors = append(slices.Delete(ps.colors, i, i+1), c)
	return true
}

// Remove removes the given color, returning false if it is not present.
func (ps *Presets) Remove(c colors.Color) bool {
	i := ps.Index(c)
	if i < 0 {
		return false
	}
	ps.colors = slices.Delete(ps.colors, i, i+1)
	return true
}

// Set replaces the colors with the given ones, dropping duplicates and
// keeping the newest colors if the capacity is exceeded.
func (ps *Presets) Set(cs []colors.Color) {
	ps.colors = nil
	for _, c := range cs {
		ps.Add(c)
	}
}

// Clear removes all colors.
func (ps *Presets) Clear() {
	ps.colors = nil
}
