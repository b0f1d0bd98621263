// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromString(t *testing.T) {
	for s, want := range map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		" warn ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"Error":   slog.LevelError,
	} {
		l, err := LevelFromString(s)
		assert.NoError(t, err, s)
		assert.Equal(t, want, l, s)
	}
	_, err := LevelFromString("loud")
	assert.Error(t, err)
}

func TestDefaultLogger(t *testing.T) {
	old := UserLevel
	defer func() { UserLevel = old }()
	prev := slog.Default()
	defer slog.SetDefault(prev)

	UserLevel = slog.LevelDebug
	SetDefaultLogger()
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))

	UserLevel = slog.LevelError
	assert.False(t, slog.Default().Enabled(context.Background(), slog.LevelWarn))

	slog.Debug("this is debug")
	slog.Error("this is error")
}
