// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the scene description that scop loads from
// TOML or YAML files.
package config

import (
	"fmt"

	"github.com/ameschmeems/scop/math32"
	"github.com/ameschmeems/scop/math32/minmax"
)

// Vec3 is a 3-component vector as written in a config file: [x, y, z].
type Vec3 [3]float32

// Vector3 returns v as a [math32.Vector3].
func (v Vec3) Vector3() math32.Vector3 {
	return math32.Vec3(v[0], v[1], v[2])
}

// Scene is the main config struct that describes
// what to render and from where.
type Scene struct {

	// the camera placement
	Camera Camera `toml:"camera" yaml:"camera"`

	// the perspective projection parameters
	Projection Projection `toml:"projection" yaml:"projection"`

	// the models in the scene, each rendered with the cube mesh
	Models []Model `toml:"models" yaml:"models"`
}

// Camera is the camera placement of a [Scene].
type Camera struct {

	// the camera position
	Eye Vec3 `toml:"eye" yaml:"eye"`

	// the point the camera looks at
	Target Vec3 `toml:"target" yaml:"target"`

	// the approximate up direction
	Up Vec3 `toml:"up" yaml:"up"`
}

// Projection holds the perspective projection parameters of a [Scene].
// Angles are in degrees.
type Projection struct {

	// the vertical field of view in degrees
	FOV float32 `toml:"fov" yaml:"fov"`

	// the viewport width divided by its height
	Aspect float32 `toml:"aspect" yaml:"aspect"`

	// the near clip plane distance
	Near float32 `toml:"near" yaml:"near"`

	// the far clip plane distance
	Far float32 `toml:"far" yaml:"far"`

	// the limits of the field of view when zooming, in degrees
	FOVRange minmax.F32 `toml:"fov_range" yaml:"fov_range"`
}

// Model is one object in a [Scene].
type Model struct {

	// the name of the model, used in output
	Name string `toml:"name" yaml:"name"`

	// the position of the model
	Translation Vec3 `toml:"translation" yaml:"translation"`

	// the axis the model is rotated about; zero means the Y axis
	RotationAxis Vec3 `toml:"rotation_axis" yaml:"rotation_axis"`

	// the rotation angle in degrees
	RotationAngle float32 `toml:"rotation_angle" yaml:"rotation_angle"`

	// the scale of the model along each axis; zero means unit scale
	Scale Vec3 `toml:"scale" yaml:"scale"`
}

// Default returns the default scene: a single unit cube rotated
// 45 degrees about (0.5, 1, 0), seen from 15 units along +Z.
func Default() *Scene {
	return &Scene{
		Camera: Camera{
			Eye: Vec3{0, 0, 15},
			Up:  Vec3{0, 1, 0},
		},
		Projection: Projection{
			FOV:      45,
			Aspect:   900.0 / 700.0,
			Near:     0.1,
			Far:      100,
			FOVRange: minmax.F32{Min: 10, Max: 90},
		},
		Models: []Model{{
			Name:          "cube",
			RotationAxis:  Vec3{0.5, 1, 0},
			RotationAngle: 45,
			Scale:         Vec3{1, 1, 1},
		}},
	}
}

// SetDefaults fills in the fields of the model that have a zero value
// with no meaning of their own.
func (m *Model) SetDefaults() {
	if m.RotationAxis == (Vec3{}) {
		m.RotationAxis = Vec3{0, 1, 0}
	}
	if m.Scale == (Vec3{}) {
		m.Scale = Vec3{1, 1, 1}
	}
}

// Validate returns an error if the scene cannot produce finite view
// matrices: the eye must differ from the target, the up direction must
// not be parallel or antiparallel to the view direction, and the field
// of view range must not be inverted. The up checks are the ones
// [math32.LookAt] applies, so a valid scene never makes it panic.
func (sc *Scene) Validate() error {
	eye, target, up := sc.Camera.Eye.Vector3(), sc.Camera.Target.Vector3(), sc.Camera.Up.Vector3()
	if eye == target {
		return fmt.Errorf("config: camera eye and target are both %v", eye)
	}
	f := eye.Sub(target).Normal()
	if !finite(f) {
		return fmt.Errorf("config: camera view direction %v has no finite unit vector", eye.Sub(target))
	}
	if up.Normal() == f.Normal() {
		return fmt.Errorf("config: camera up %v is parallel to the view direction %v", up, eye.Sub(target))
	}
	if r := up.Cross(f).Normal(); !finite(r) || r == (math32.Vector3{}) {
		return fmt.Errorf("config: camera up %v is parallel to the view direction %v", up, eye.Sub(target))
	}
	if fr := sc.Projection.FOVRange; !fr.IsValid() {
		return fmt.Errorf("config: projection fov_range min %v is greater than max %v", fr.Min, fr.Max)
	}
	for i, m := range sc.Models {
		if m.Name == "" {
			return fmt.Errorf("config: model %d has no name", i)
		}
	}
	return nil
}

// finite reports whether no component of v is NaN or infinite.
func finite(v math32.Vector3) bool {
	for _, c := range [3]float32{v.X, v.Y, v.Z} {
		if math32.IsNaN(c) || math32.IsInf(c, 0) {
			return false
		}
	}
	return true
}
