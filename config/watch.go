// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/go-homedir"
)

// Watch calls fn with the result of [Open] each time the given file is
// written or created, until ctx is done. It watches the directory of the
// file so that editors that replace the file are seen as well. Watch
// blocks and returns nil when ctx is done.
func Watch(ctx context.Context, path string, fn func(sc *Scene, err error)) error {
	fpath, err := homedir.Expand(path)
	if err != nil {
		return fmt.Errorf("config: expanding %s: %w", path, err)
	}
	fpath, err = filepath.Abs(fpath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config: creating watcher: %w", err)
	}
	defer watcher.Close()
	if err := watcher.Add(filepath.Dir(fpath)); err != nil {
		return fmt.Errorf("config: watching %s: %w", fpath, err)
	}
	slog.Debug("watching scene", "path", fpath)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != fpath {
				continue
			}
			switch {
			case event.Op&fsnotify.Write == fsnotify.Write ||
				event.Op&fsnotify.Create == fsnotify.Create:
				slog.Debug("reloading scene", "path", fpath, "op", event.Op)
				fn(Open(fpath))
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fn(nil, fmt.Errorf("config: watching %s: %w", fpath, err))
		}
	}
}
