// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides level selection and a terminal-aware default
// [slog] logger for the colorpicker commands.
package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. The default user
// verbosity level is [slog.LevelWarn].
var UserLevel = slog.LevelWarn

// LevelFromFlags returns the [slog.Level] object corresponding to the given
// user flag options. The flags correspond to the following values:
//   - vv: [slog.LevelDebug]
//   - v: [slog.LevelInfo]
//   - q: [slog.LevelError]
//   - (default: [slog.LevelWarn])
//
// The flags are evaluated in that order, so, for example, if both
// vv and q are specified, it will still return [slog.LevelDebug].
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// levelColors are the terminal colors used for each level label.
var levelColors = map[slog.Level]string{
	slog.LevelDebug: "#a0a0a0",
	slog.LevelInfo:  "#5fafff",
	slog.LevelWarn:  "#ffaf00",
	slog.LevelError: "#ff5f5f",
}

// NewHandler returns a text [slog.Handler] writing to w at [UserLevel],
// with level labels colored when w is a terminal that supports it.
func NewHandler(w io.Writer) slog.Handler {
	out := termenv.NewOutput(w)
	opts := &slog.HandlerOptions{
		Level: UserLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) > 0 {
				return a
			}
			switch a.Key {
			case slog.TimeKey:
				return slog.Attr{}
			case slog.LevelKey:
				lv, ok := a.Value.Any().(slog.Level)
				if !ok || out.Profile == termenv.Ascii {
					return a
				}
				style := out.String(lv.String()).Bold()
				if c, ok := levelColors[lv]; ok {
					style = style.Foreground(out.Color(c))
				}
				return slog.String(a.Key, style.String())
			}
			return a
		},
	}
	return slog.NewTextHandler(w, opts)
}

// SetDefaultLogger sets the default [slog] logger to one
// created by [NewHandler] on [os.Stderr].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}
