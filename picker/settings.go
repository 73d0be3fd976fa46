// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package picker

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"cogentcore.org/colorpicker/base/iox/tomlx"
	"cogentcore.org/colorpicker/colors"
	"github.com/mitchellh/go-homedir"
)

// Settings are the persisted settings of a picker.
type Settings struct {

	// Shape is the selected shape of the surface.
	Shape Shapes `toml:"picker_shape"`

	// Mode is the slider mode.
	Mode Modes `toml:"color_mode"`

	// Presets are the saved swatches.
	Presets []colors.Color `toml:"presets"`

	// RecentPresets are the recently used colors, oldest first.
	RecentPresets []colors.Color `toml:"recent_presets"`

	// PaletteName is the name of the loaded palette.
	PaletteName string `toml:"palette_name"`

	// PalettePath is the file path of the loaded palette.
	PalettePath string `toml:"palette_path"`

	// PaletteEdited is whether the presets have unsaved changes
	// relative to the palette file.
	PaletteEdited bool `toml:"palette_edited"`
}

// SettingsStore loads and saves [Settings].
type SettingsStore interface {
	LoadSettings() (*Settings, error)
	SaveSettings(s *Settings) error
}

// Settings returns the current settings of the picker.
func (p *Picker) Settings() *Settings {
	return &Settings{
		Shape:         p.shape,
		Mode:          p.mode,
		Presets:       p.presets.Colors(),
		RecentPresets: p.recent.Colors(),
		PaletteName:   p.paletteName,
		PalettePath:   p.palettePath,
		PaletteEdited: p.paletteEdited,
	}
}

// ApplySettings applies the given settings. Invalid shapes and modes
// are ignored with an error logged.
func (p *Picker) ApplySettings(s *Settings) {
	p.mutate(func() {
		if s.Shape.IsValid() {
			p.shape = s.Shape
		} else {
			slog.Error("picker.ApplySettings", "err", ErrInvalidShape, "shape", int32(s.Shape))
		}
		if s.Mode.IsValid() {
			p.mode = s.Mode
		} else {
			slog.Error("picker.ApplySettings", "err", ErrInvalidMode, "mode", int32(s.Mode))
		}
		p.presets.Set(s.Presets)
		p.recent.Set(s.RecentPresets)
		p.paletteName = s.PaletteName
		p.palettePath = s.PalettePath
		p.paletteEdited = s.PaletteEdited
		p.coords = CoordsFromColor(p.color)
		p.lastColor = p.color
		p.update(PartsAll)
	})
}

// UseSettings loads and applies settings from the given store, and saves
// them there on every later change. Settings that do not exist yet are
// not an error.
func (p *Picker) UseSettings(store SettingsStore) error {
	s, err := store.LoadSettings()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	if s != nil {
		p.ApplySettings(s)
	}
	p.settings = store
	return nil
}

// saveSettings saves the settings to the store, logging any error.
func (p *Picker) saveSettings() {
	if p.settings == nil {
		return
	}
	if err := p.settings.SaveSettings(p.Settings()); err != nil {
		slog.Error("picker: saving settings", "err", err)
	}
}

// FileSettings is a [SettingsStore] that keeps [Settings] in a TOML file.
type FileSettings struct {

	// Path is the path of the file. A leading ~ is expanded
	// to the home directory.
	Path string
}

// DefaultSettingsPath is the default path of [FileSettings].
const DefaultSettingsPath = "~/.config/colorpicker/settings.toml"

// NewFileSettings returns new file settings for the given path,
// using [DefaultSettingsPath] if it is empty.
func NewFileSettings(path string) *FileSettings {
	if path == "" {
		path = DefaultSettingsPath
	}
	return &FileSettings{Path: path}
}

func (st *FileSettings) path() (string, error) {
	path, err := homedir.Expand(st.Path)
	if err != nil {
		return "", fmt.Errorf("picker: settings path %q: %w", st.Path, err)
	}
	return path, nil
}

// LoadSettings loads the settings from the file. It returns an error
// wrapping [fs.ErrNotExist] if the file does not exist.
func (st *FileSettings) LoadSettings() (*Settings, error) {
	path, err := st.path()
	if err != nil {
		return nil, err
	}
	s := &Settings{}
	if err := tomlx.Open(s, path); err != nil {
		return nil, fmt.Errorf("picker: loading settings: %w", err)
	}
	return s, nil
}

// SaveSettings saves the settings to the file, creating its directory.
func (st *FileSettings) SaveSettings(s *Settings) error {
	path, err := st.path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("picker: saving settings: %w", err)
	}
	if err := tomlx.Save(s, path); err != nil {
		return fmt.Errorf("picker: saving settings: %w", err)
	}
	return nil
}
