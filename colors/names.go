// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"errors"
	"sort"
	"strings"

	"golang.org/x/image/colornames"
)

// nameReplacer strips the separators people put in color names,
// so that "Dark Slate-Gray" and "dark_slate_gray" both match.
var nameReplacer = strings.NewReplacer(" ", "", "-", "", "_", "", "'", "", ".", "")

// NormalizeName returns the lookup key for the given color name.
func NormalizeName(name string) string {
	return strings.ToLower(nameReplacer.Replace(strings.TrimSpace(name)))
}

// extraNames are the named colors that colornames does not have.
var extraNames = map[string]Color{
	"transparent":   Transparent,
	"rebeccapurple": FromRGBA8(0x66, 0x33, 0x99, 0xff),
}

// FromName returns the color value specified by the given CSS standard
// color name, compared after [NormalizeName]. It returns an error if the
// name is not found.
func FromName(name string) (Color, error) {
	key := NormalizeName(name)
	if c, ok := extraNames[key]; ok {
		return c, nil
	}
	c, ok := colornames.Map[key]
	if !ok {
		return Color{}, errors.New("colors.FromName: name not found: " + name)
	}
	return FromStd(c), nil
}

// Names returns all of the known color names in sorted order.
func Names() []string {
	names := make([]string, 0, len(colornames.Map)+len(extraNames))
	for nm := range colornames.Map {
		names = append(names, nm)
	}
	for nm := range extraNames {
		if _, ok := colornames.Map[nm]; !ok {
			names = append(names, nm)
		}
	}
	sort.Strings(names)
	return names
}
