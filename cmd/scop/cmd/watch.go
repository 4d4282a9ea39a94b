// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/ameschmeems/scop/base/errors"
	"github.com/ameschmeems/scop/config"
	"github.com/ameschmeems/scop/scene"
)

// Watch writes the uniforms of the scene in the given config file, and
// writes them again each time the file changes, until ctx is done.
// Errors in a changed file are logged and the previous output stands.
func Watch(ctx context.Context, w io.Writer, path string, over config.Projection) error {
	if path == "" {
		return fmt.Errorf("watch: a config file is required")
	}
	sc, err := LoadScene(path, over)
	if err != nil {
		return err
	}
	if err := Uniforms(w, sc); err != nil {
		return err
	}
	return config.Watch(ctx, path, func(cfg *config.Scene, err error) {
		if errors.Log(err) != nil {
			return
		}
		if errors.Log(cfg.ApplyOverrides(over)) != nil {
			return
		}
		slog.Info("scene changed", "path", path, "models", len(cfg.Models))
		errors.Log(Uniforms(w, scene.FromConfig(cfg)))
	})
}
