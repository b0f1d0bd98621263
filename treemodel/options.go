// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package treemodel

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/livetree/logx"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Options are the options of a [Model].
type Options struct {

	// Shallow makes the model subscribe to and unsubscribe from only the
	// nodes directly named in an insertion or removal, instead of the
	// whole inserted or removed subtree. Changes below a node inserted
	// together with its children are then not seen.
	Shallow bool `json:"shallow" yaml:"shallow" toml:"shallow"`

	// LogLevel is the name of the log level to use: debug, info, warn, or error.
	// If it is empty, the log level is left unchanged.
	LogLevel string `json:"log_level" yaml:"log_level" toml:"log_level"`
}

// LoadOptions reads options from the file with the given path, in the
// format given by its extension: .toml, .yaml, .yml, or .json.
func LoadOptions(path string) (Options, error) {
	var o Options
	if path == "" {
		return o, fmt.Errorf("treemodel: empty options path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return o, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(b, &o)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &o)
	case ".json":
		err = json.Unmarshal(b, &o)
	default:
		return o, fmt.Errorf("treemodel: unsupported options extension %q", ext)
	}
	if err != nil {
		return o, fmt.Errorf("treemodel: loading options from %q: %w", path, err)
	}
	return o, nil
}

// Apply applies the global parts of the options. If LogLevel is set, it
// sets [logx.UserLevel] and installs the [logx.SetDefaultLogger] logger,
// so that the level takes effect for the logging of the tree and the model.
func (o Options) Apply() error {
	if o.LogLevel == "" {
		return nil
	}
	lvl, err := logx.LevelFromString(o.LogLevel)
	if err != nil {
		return err
	}
	logx.UserLevel = lvl
	logx.SetDefaultLogger()
	return nil
}
