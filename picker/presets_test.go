// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package picker

import (
	"testing"

	"cogentcore.org/colorpicker/colors"
	"github.com/stretchr/testify/assert"
)

func TestPresets(t *testing.T) {
	ps := NewPresets(0)
	ps.Add(red)
	ps.Add(green)
	ps.Add(blue)
	ps.Add(red)
	assert.Equal(t, []colors.Color{green, blue, red}, ps.Colors())
	assert.True(t, ps.Contains(blue))
	assert.Equal(t, 1, ps.Index(blue))

	assert.True(t, ps.Remove(blue))
	assert.False(t, ps.Remove(blue))
	assert.Equal(t, 2, ps.Len())

	cs := ps.Colors()
	cs[0] = colors.Black
	assert.Equal(t, green, ps.Colors()[0])

	ps.Clear()
	assert.Zero(t, ps.Len())
}

func TestPresetsCapacity(t *testing.T) {
	ps := NewPresets(2)
	_, evicted := ps.Add(red)
	assert.False(t, evicted)
	ps.Add(green)
	ev, evicted := ps.Add(blue)
	assert.True(t, evicted)
	assert.Equal(t, red, ev)
	assert.Equal(t, []colors.Color{green, blue}, ps.Colors())

	ps.Set([]colors.Color{red, red, green, blue})
	assert.Equal(t, []colors.Color{green, blue}, ps.Colors())
}
