// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLog(t *testing.T) {
	assert.NoError(t, Log(nil))
	err := New("boom")
	assert.Equal(t, err, Log(err))
	assert.Equal(t, 3, Log1(3, err))
	assert.Equal(t, "x", Log1("x", nil))
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { Must(nil) })
	assert.Panics(t, func() { Must(New("boom")) })
	assert.Equal(t, 2, Must1(2, nil))
	assert.Panics(t, func() { Must1(2, New("boom")) })
}

func TestReexports(t *testing.T) {
	err := Join(New("a"), fs.ErrNotExist)
	assert.True(t, Is(err, fs.ErrNotExist))
	var pe *fs.PathError
	assert.False(t, As(err, &pe))
	assert.Equal(t, 5, Ignore1(5, err))
}
