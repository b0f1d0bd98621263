// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the user-selected logging level and
// a default [slog] logger that respects it.
package logx

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. The default is
// [slog.LevelWarn], or [slog.LevelDebug] with the debug build tag and
// [slog.LevelError] with the release build tag.
var UserLevel = defaultUserLevel

// LevelFromString returns the [slog.Level] with the given
// case-insensitive name: debug, info, warn (or warning), or error.
func LevelFromString(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return UserLevel, fmt.Errorf("logx: unknown log level %q", s)
}

// levelVar tracks UserLevel for the handler installed by SetDefaultLogger,
// so that later changes to UserLevel take effect through it.
type levelVar struct{}

func (levelVar) Level() slog.Level { return UserLevel }

// SetDefaultLogger sets the default [slog] logger to a text
// logger on stderr that only shows messages at or above [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: levelVar{}})))
}
