// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ameschmeems/scop/math32"
	"github.com/ameschmeems/scop/math32/minmax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	sc := Default()
	require.NoError(t, sc.Validate())
	assert.Equal(t, math32.Vec3(0, 0, 15), sc.Camera.Eye.Vector3())
	assert.Equal(t, float32(45), sc.Projection.FOV)
	require.Len(t, sc.Models, 1)
	assert.Equal(t, "cube", sc.Models[0].Name)
}

func TestFormatOf(t *testing.T) {
	tests := []struct {
		path   string
		format Format
	}{
		{"scene.toml", TOML},
		{"scene.TOML", TOML},
		{"scene.yaml", YAML},
		{"dir/scene.yml", YAML},
	}
	for _, test := range tests {
		f, err := FormatOf(test.path)
		assert.NoError(t, err, test.path)
		assert.Equal(t, test.format, f, test.path)
	}
	_, err := FormatOf("scene.json")
	assert.ErrorContains(t, err, "unsupported file extension")
	assert.Equal(t, "YAML", YAML.String())
}

func TestReadTOML(t *testing.T) {
	src := `
[camera]
eye = [0, 5, 20]

[projection]
fov = 60

[[models]]
name = "left"
translation = [-2, 0, 0]

[[models]]
name = "right"
translation = [2, 0, 0]
rotation_axis = [1, 0, 0]
rotation_angle = 30
scale = [2, 2, 2]
`
	sc, err := Read(strings.NewReader(src), TOML)
	require.NoError(t, err)

	assert.Equal(t, Vec3{0, 5, 20}, sc.Camera.Eye)
	assert.Equal(t, Vec3{0, 1, 0}, sc.Camera.Up)
	assert.Equal(t, float32(60), sc.Projection.FOV)
	assert.Equal(t, float32(100), sc.Projection.Far)

	require.Len(t, sc.Models, 2)
	assert.Equal(t, Model{
		Name:         "left",
		Translation:  Vec3{-2, 0, 0},
		RotationAxis: Vec3{0, 1, 0},
		Scale:        Vec3{1, 1, 1},
	}, sc.Models[0])
	assert.Equal(t, Model{
		Name:          "right",
		Translation:   Vec3{2, 0, 0},
		RotationAxis:  Vec3{1, 0, 0},
		RotationAngle: 30,
		Scale:         Vec3{2, 2, 2},
	}, sc.Models[1])
}

func TestReadYAML(t *testing.T) {
	src := `
projection:
  aspect: 2
  fov_range: {min: 20, max: 70}
models:
  - name: only
    translation: [0, 1, 0]
`
	sc, err := Read(strings.NewReader(src), YAML)
	require.NoError(t, err)
	assert.Equal(t, float32(2), sc.Projection.Aspect)
	assert.Equal(t, minmax.F32{Min: 20, Max: 70}, sc.Projection.FOVRange)
	assert.Equal(t, float32(45), sc.Projection.FOV)
	require.Len(t, sc.Models, 1)
	assert.Equal(t, "only", sc.Models[0].Name)

	sc, err = Read(strings.NewReader(""), YAML)
	require.NoError(t, err)
	assert.Equal(t, Default(), sc)
}

func TestReadErrors(t *testing.T) {
	_, err := Read(strings.NewReader("[camera]\nposition = [0, 0, 1]\n"), TOML)
	assert.Error(t, err)

	_, err = Read(strings.NewReader("camera:\n  position: [0, 0, 1]\n"), YAML)
	assert.Error(t, err)

	_, err = Read(strings.NewReader("[camera]\neye = [0, 0, 0]\n"), TOML)
	assert.ErrorContains(t, err, "eye and target")

	_, err = Read(strings.NewReader("[camera]\nup = [0, 0, -3]\n"), TOML)
	assert.ErrorContains(t, err, "parallel")

	_, err = Read(strings.NewReader("[[models]]\ntranslation = [1, 0, 0]\n"), TOML)
	assert.ErrorContains(t, err, "no name")
}

func TestValidateCamera(t *testing.T) {
	tests := []struct {
		name string
		src  string
		err  string
	}{
		{"default", "", ""},
		{"tilted up", "[camera]\nup = [0.2, 1, 0.3]\n", ""},
		{"up along view", "[camera]\nup = [0, 0, 3]\n", "parallel"},
		{"up against view", "[camera]\nup = [0, 0, -3]\n", "parallel"},
		{"large nearly collinear up", "[camera]\neye = [1e10, 0, 0]\ntarget = [0, 0, 0]\nup = [1e18, 1e-28, 0]\n", "parallel"},
		{"zero up", "[camera]\nup = [0, 0, 0]\n", "parallel"},
		{"view direction overflows", "[camera]\neye = [3e38, 0, 0]\ntarget = [-3e38, 0, 0]\n", "finite"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			sc, err := Read(strings.NewReader(test.src), TOML)
			if test.err != "" {
				assert.ErrorContains(t, err, test.err)
				return
			}
			require.NoError(t, err)
			eye, target, up := sc.Camera.Eye.Vector3(), sc.Camera.Target.Vector3(), sc.Camera.Up.Vector3()
			assert.NotPanics(t, func() {
				m := math32.LookAt(eye, target, up)
				for _, f := range m.Floats() {
					assert.False(t, math32.IsNaN(f))
				}
			})
		})
	}
}

func TestValidateFOVRange(t *testing.T) {
	_, err := Read(strings.NewReader("[projection]\nfov_range = {min = 90, max = 10}\n"), TOML)
	assert.ErrorContains(t, err, "fov_range min 90 is greater than max 10")

	sc, err := Read(strings.NewReader("[projection]\nfov_range = {min = 30, max = 30}\n"), TOML)
	require.NoError(t, err)
	assert.Equal(t, minmax.F32{Min: 30, Max: 30}, sc.Projection.FOVRange)
}

func TestSaveOpen(t *testing.T) {
	dir := t.TempDir()
	sc := Default()
	sc.Projection.Near = 0.5
	sc.Models = append(sc.Models, Model{
		Name:          "second",
		Translation:   Vec3{1.5, -2, 3},
		RotationAxis:  Vec3{0, 0, 1},
		RotationAngle: 12.5,
		Scale:         Vec3{0.25, 1, 4},
	})

	for _, name := range []string{"scene.toml", "scene.yaml"} {
		path := filepath.Join(dir, name)
		require.NoError(t, Save(path, sc), name)
		got, err := Open(path)
		require.NoError(t, err, name)
		assert.Equal(t, sc, got, name)
	}

	_, err := Open(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Error(t, Save(filepath.Join(dir, "scene.txt"), sc))
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Default(), YAML))
	assert.Contains(t, buf.String(), "fov_range:")
	assert.Contains(t, buf.String(), "name: cube")

	buf.Reset()
	require.NoError(t, Write(&buf, Default(), TOML))
	assert.Contains(t, buf.String(), "[[models]]")
}

func TestApplyOverrides(t *testing.T) {
	sc := Default()
	require.NoError(t, sc.ApplyOverrides(Projection{FOV: 70, Far: 50}))
	assert.Equal(t, float32(70), sc.Projection.FOV)
	assert.Equal(t, float32(50), sc.Projection.Far)
	assert.Equal(t, float32(0.1), sc.Projection.Near)
	assert.Equal(t, Default().Projection.Aspect, sc.Projection.Aspect)
	assert.Equal(t, Default().Projection.FOVRange, sc.Projection.FOVRange)

	require.NoError(t, sc.ApplyOverrides(Projection{}))
	assert.Equal(t, float32(70), sc.Projection.FOV)
}
