// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides helpers for logging and checking errors in a
// single line, and re-exports the standard library errors functions so
// that only one errors package needs to be imported.
package errors

import (
	"errors"
	"log/slog"
)

// Log takes the given error and logs it if it is non-nil.
// The intended usage is:
//
//	errors.Log(MyFunc(v))
//	// or
//	return errors.Log(MyFunc(v))
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error())
	}
	return err
}

// Log1 takes the given value and error and returns the value,
// logging the error if it is non-nil. The intended usage is:
//
//	a := errors.Log1(MyFunc(v))
func Log1[T any](v T, err error) T {
	if err != nil {
		slog.Error(err.Error())
	}
	return v
}

// Must takes the given error and panics if it is non-nil.
// The intended usage is:
//
//	errors.Must(MyFunc(v))
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// Must1 takes the given value and error and returns the value if
// the error is nil, and panics if the error is non-nil. The intended usage is:
//
//	a := errors.Must1(MyFunc(v))
func Must1[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Ignore1 returns the given value, ignoring the error.
// It is for errors that are known to be impossible.
func Ignore1[T any](v T, err error) T {
	return v
}

// New is [errors.New].
func New(text string) error { return errors.New(text) }

// Is is [errors.Is].
func Is(err, target error) bool { return errors.Is(err, target) }

// As is [errors.As].
func As(err error, target any) bool { return errors.As(err, target) }

// Join is [errors.Join].
func Join(errs ...error) error { return errors.Join(errs...) }
