// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene combines models and a camera into the matrices a shader
// needs for each model.
package scene

import (
	"log/slog"

	"github.com/ameschmeems/scop/camera"
	"github.com/ameschmeems/scop/config"
	"github.com/ameschmeems/scop/math32"
	"github.com/ameschmeems/scop/math32/minmax"
	"github.com/ameschmeems/scop/mesh"
)

// Model is an instance of the scene mesh placed in the world.
type Model struct {
	Name string

	Translation math32.Vector3

	// RotationAxis need not be a unit vector, but must not be zero.
	RotationAxis math32.Vector3

	// RotationAngle is in radians.
	RotationAngle float32

	Scale math32.Vector3
}

// NewModel returns a model at the origin with no rotation and unit scale.
func NewModel(name string) Model {
	return Model{
		Name:         name,
		RotationAxis: math32.Vec3(0, 1, 0),
		Scale:        math32.Vec3(1, 1, 1),
	}
}

// Matrix returns the model matrix: points are scaled first,
// then rotated, then translated.
func (m Model) Matrix() math32.Matrix4 {
	mat := math32.Translate(math32.Identity4(), m.Translation)
	mat = math32.Rotate(mat, m.RotationAngle, m.RotationAxis)
	return math32.Scale(mat, m.Scale)
}

// Uniform holds the matrices for drawing one model. All of them are
// transposed, ready for a column-major consumer such as an OpenGL
// uniform upload without transposition.
type Uniform struct {
	Name       string
	Model      math32.Matrix4
	View       math32.Matrix4
	Projection math32.Matrix4

	// MVP is Projection * View * Model.
	MVP math32.Matrix4
}

// Scene is a camera and the models it sees, all drawn with one mesh.
type Scene struct {
	Camera camera.Camera
	Models []Model
	Mesh   *mesh.Mesh
}

// New returns a new scene drawing the given models with a unit cube.
func New(cam camera.Camera, models ...Model) *Scene {
	return &Scene{Camera: cam, Models: models, Mesh: mesh.Cube(1)}
}

// FromConfig returns the scene described by the given config,
// converting its angles from degrees to radians.
func FromConfig(cfg *config.Scene) *Scene {
	cam := camera.Camera{
		Eye:    cfg.Camera.Eye.Vector3(),
		Target: cfg.Camera.Target.Vector3(),
		Up:     cfg.Camera.Up.Vector3(),
		FOV:    math32.DegToRad(cfg.Projection.FOV),
		Aspect: cfg.Projection.Aspect,
		Near:   cfg.Projection.Near,
		Far:    cfg.Projection.Far,
		FOVRange: minmax.F32{
			Min: math32.DegToRad(cfg.Projection.FOVRange.Min),
			Max: math32.DegToRad(cfg.Projection.FOVRange.Max),
		},
	}
	models := make([]Model, len(cfg.Models))
	for i, cm := range cfg.Models {
		models[i] = Model{
			Name:          cm.Name,
			Translation:   cm.Translation.Vector3(),
			RotationAxis:  cm.RotationAxis.Vector3(),
			RotationAngle: math32.DegToRad(cm.RotationAngle),
			Scale:         cm.Scale.Vector3(),
		}
	}
	return New(cam, models...)
}

// Uniforms returns the transposed matrices for each model, in order.
func (sc *Scene) Uniforms() []Uniform {
	view := sc.Camera.View()
	proj := sc.Camera.Projection()
	vp := proj.Mul(view)
	us := make([]Uniform, len(sc.Models))
	for i, m := range sc.Models {
		mm := m.Matrix()
		us[i] = Uniform{
			Name:       m.Name,
			Model:      mm.Transpose(),
			View:       view.Transpose(),
			Projection: proj.Transpose(),
			MVP:        vp.Mul(mm).Transpose(),
		}
	}
	slog.Debug("computed uniforms", "models", len(us), "eye", sc.Camera.Eye)
	return us
}

// Bounds returns the world space bounding box of all models.
func (sc *Scene) Bounds() math32.Box3 {
	bb := math32.B3Empty()
	mb := sc.Mesh.Bounds()
	for _, m := range sc.Models {
		bb = bb.Union(mb.MulMatrix4(m.Matrix()))
	}
	return bb
}

// Floats returns the matrices of the given uniforms as one flat buffer of
// 64 float32 values per uniform: Model, View, Projection, then MVP.
func Floats(us []Uniform) []float32 {
	mats := make([]math32.Matrix4, 0, 4*len(us))
	for _, u := range us {
		mats = append(mats, u.Model, u.View, u.Projection, u.MVP)
	}
	return math32.Floats(mats)
}
