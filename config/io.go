// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a config file format.
type Format int

const (
	// TOML is the format of .toml files.
	TOML Format = iota

	// YAML is the format of .yaml and .yml files.
	YAML
)

func (f Format) String() string {
	switch f {
	case TOML:
		return "TOML"
	case YAML:
		return "YAML"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// FormatOf returns the format of the given file based on its extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return 0, fmt.Errorf("config: unsupported file extension %q in %s (want .toml, .yaml or .yml)", filepath.Ext(path), path)
}

// Open reads the scene from the given file, expanding a leading ~ to the
// home directory. Fields missing from the file keep their [Default] values;
// if the file lists no models, the default model is used. Unknown fields
// are an error.
func Open(path string) (*Scene, error) {
	fpath, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("config: expanding %s: %w", path, err)
	}
	format, err := FormatOf(fpath)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(fpath)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	sc, err := Read(f, format)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", fpath, err)
	}
	slog.Debug("opened scene", "path", fpath, "format", format, "models", len(sc.Models))
	return sc, nil
}

// Read reads the scene from r in the given format, applying
// the same defaults and validation as [Open].
func Read(r io.Reader, format Format) (*Scene, error) {
	sc := Default()
	defModels := sc.Models
	sc.Models = nil

	var err error
	switch format {
	case TOML:
		err = toml.NewDecoder(r).DisallowUnknownFields().Decode(sc)
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err = dec.Decode(sc)
		if errors.Is(err, io.EOF) {
			err = nil
		}
	default:
		err = fmt.Errorf("unknown format %v", format)
	}
	if err != nil {
		return nil, err
	}

	if sc.Models == nil {
		sc.Models = defModels
	}
	for i := range sc.Models {
		sc.Models[i].SetDefaults()
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return sc, nil
}

// Write writes the scene to w in the given format.
func Write(w io.Writer, sc *Scene, format Format) error {
	switch format {
	case TOML:
		return toml.NewEncoder(w).Encode(sc)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(sc); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("config: unknown format %v", format)
}

// Save writes the scene to the given file in the format given by its
// extension, expanding a leading ~ to the home directory.
func Save(path string, sc *Scene) error {
	fpath, err := homedir.Expand(path)
	if err != nil {
		return fmt.Errorf("config: expanding %s: %w", path, err)
	}
	format, err := FormatOf(fpath)
	if err != nil {
		return err
	}
	f, err := os.Create(fpath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	err = Write(f, sc, format)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("config: saving %s: %w", fpath, err)
	}
	return nil
}
