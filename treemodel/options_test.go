// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package treemodel_test

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/livetree/logx"
	. "cogentcore.org/livetree/treemodel"
)

func TestLoadOptions(t *testing.T) {
	tests := []struct {
		file string
		want Options
	}{
		{"options.toml", Options{Shallow: true, LogLevel: "debug"}},
		{"options.yaml", Options{Shallow: true, LogLevel: "info"}},
		{"options.json", Options{Shallow: false, LogLevel: "error"}},
	}
	for _, test := range tests {
		t.Run(test.file, func(t *testing.T) {
			o, err := LoadOptions(filepath.Join("testdata", test.file))
			require.NoError(t, err)
			assert.Equal(t, test.want, o)
		})
	}
}

func TestLoadOptionsErrors(t *testing.T) {
	_, err := LoadOptions("")
	assert.Error(t, err)
	_, err = LoadOptions(filepath.Join("testdata", "options.ini"))
	assert.ErrorContains(t, err, "unsupported")
	_, err = LoadOptions(filepath.Join("testdata", "broken.toml"))
	assert.Error(t, err)
	_, err = LoadOptions(filepath.Join("testdata", "missing.yaml"))
	assert.Error(t, err)
}

func TestOptionsApply(t *testing.T) {
	prev := logx.UserLevel
	prevLogger := slog.Default()
	t.Cleanup(func() {
		logx.UserLevel = prev
		slog.SetDefault(prevLogger)
	})

	logx.UserLevel = slog.LevelWarn
	require.NoError(t, Options{}.Apply())
	assert.Equal(t, slog.LevelWarn, logx.UserLevel)

	require.NoError(t, Options{LogLevel: "debug"}.Apply())
	assert.Equal(t, slog.LevelDebug, logx.UserLevel)
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))

	require.NoError(t, Options{LogLevel: "error"}.Apply())
	assert.False(t, slog.Default().Enabled(context.Background(), slog.LevelWarn))
	require.NoError(t, Options{LogLevel: "debug"}.Apply())

	assert.Error(t, Options{LogLevel: "loud"}.Apply())
	assert.Equal(t, slog.LevelDebug, logx.UserLevel)
}

func TestModelOptions(t *testing.T) {
	m := NewModel(nil)
	assert.Equal(t, Options{}, m.Options())
	m.SetOptions(Options{Shallow: true})
	assert.True(t, m.Options().Shallow)
}
