// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"cogentcore.org/colorpicker/colors"
	"cogentcore.org/colorpicker/picker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testColors = []colors.Color{
	{R: 1, A: 1},
	{G: 1, B: 1, A: 0.2},
	{R: 2.5, G: 0.125, B: 0, A: 1},
}

func TestRoundTrip(t *testing.T) {
	dir := t.TempDir()
	for _, ext := range []string{".toml", ".yaml", ".yml", ".json"} {
		fn := filepath.Join(dir, "test"+ext)
		pal := &Palette{Name: "test palette", Colors: testColors}
		require.NoError(t, pal.Save(fn), ext)
		got, err := Open(fn)
		require.NoError(t, err, ext)
		assert.Equal(t, pal, got, ext)
	}
}

func TestOpenErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := Open(filepath.Join(dir, "test.gpl"))
	assert.ErrorIs(t, err, ErrUnknownFormat)
	_, err = Open(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.ErrorIs(t, (&Palette{}).Save(filepath.Join(dir, "test.txt")), ErrUnknownFormat)
}

func TestDefaultName(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "sunset.toml")
	require.NoError(t, os.WriteFile(fn, []byte(`colors = ["#ff8000", "Color(1.5, 0, 0, 1)", "navy"]`), 0o644))
	pal, err := Open(fn)
	require.NoError(t, err)
	assert.Equal(t, "sunset", pal.Name)
	require.Len(t, pal.Colors, 3)
	assert.Equal(t, colors.FromRGBA8(255, 128, 0, 255), pal.Colors[0])
	assert.Equal(t, float32(1.5), pal.Colors[1].R)
	assert.Equal(t, colors.FromRGBA8(0, 0, 128, 255), pal.Colors[2])
}

func TestLoadSave(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "test.yaml")
	require.NoError(t, (&Palette{Name: "mine", Colors: testColors}).Save(fn))

	p := picker.New()
	require.NoError(t, Load(p, fn))
	assert.Equal(t, testColors, p.Presets())
	name, path, edited := p.Palette()
	assert.Equal(t, "mine", name)
	assert.Equal(t, fn, path)
	assert.False(t, edited)

	p.AddPreset(colors.Black)
	out := filepath.Join(dir, "out.json")
	require.NoError(t, SaveFrom(p, "", out))
	name, path, edited = p.Palette()
	assert.Equal(t, "out", name)
	assert.Equal(t, out, path)
	assert.False(t, edited)

	pal, err := Open(out)
	require.NoError(t, err)
	assert.Equal(t, append(testColors, colors.Black), pal.Colors)
}

func TestWatch(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "live.toml")
	require.NoError(t, (&Palette{Name: "live", Colors: testColors[:1]}).Save(fn))

	p := picker.New()
	posted := make(chan func(), 16)
	w, err := Watch(fn, p, func(f func()) { posted <- f })
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, (&Palette{Name: "live", Colors: testColors}).Save(fn))
	timeout := time.After(5 * time.Second)
	for len(p.Presets()) != len(testColors) {
		select {
		case f := <-posted:
			f()
		case <-timeout:
			t.Fatalf("palette was not reloaded; presets are %v", p.Presets())
		}
	}
	name, path, _ := p.Palette()
	assert.Equal(t, "live", name)
	assert.Equal(t, fn, path)
}

func TestQueue(t *testing.T) {
	q := NewQueue(1)
	ran := 0
	assert.True(t, q.Post(func() { ran++ }))
	assert.False(t, q.Post(func() { ran += 10 }))
	assert.Equal(t, 1, q.Run())
	assert.Equal(t, 1, ran)
	assert.Equal(t, 0, q.Run())
}

func TestWatchCloseFullQueue(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "busy.toml")
	pal := &Palette{Name: "busy", Colors: testColors}
	require.NoError(t, pal.Save(fn))

	q := NewQueue(1)
	w, err := Watch(fn, picker.New(), func(f func()) { q.Post(f) })
	require.NoError(t, err)

	require.NoError(t, pal.Save(fn))
	assert.Eventually(t, func() bool { return len(q) == 1 }, 5*time.Second, 10*time.Millisecond)
	for range 3 {
		require.NoError(t, pal.Save(fn))
	}
	time.Sleep(50 * time.Millisecond)

	closed := make(chan error)
	go func() { closed <- w.Close() }()
	select {
	case err := <-closed:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Close did not return with a full queue")
	}
	assert.Len(t, q, 1)
}
