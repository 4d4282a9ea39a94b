// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd implements the commands of the scop tool.
package cmd

import (
	"github.com/ameschmeems/scop/config"
	"github.com/ameschmeems/scop/scene"
)

// LoadScene returns the scene in the given config file, or the default
// scene if path is empty, with the non-zero fields of over applied.
func LoadScene(path string, over config.Projection) (*scene.Scene, error) {
	cfg := config.Default()
	if path != "" {
		var err error
		cfg, err = config.Open(path)
		if err != nil {
			return nil, err
		}
	}
	if err := cfg.ApplyOverrides(over); err != nil {
		return nil, err
	}
	return scene.FromConfig(cfg), nil
}
