// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package camera provides an orbiting perspective camera that produces
// view and projection matrices.
package camera

import (
	"github.com/ameschmeems/scop/math32"
	"github.com/ameschmeems/scop/math32/minmax"
)

// Sensitivity scales pointer motion before it is turned into an orbit angle.
const Sensitivity = 0.1

// orbitStep is the rotation in radians for one unit of scaled motion.
var orbitStep = math32.DegToRad(3)

// Camera is a perspective camera looking from Eye at Target. It is a
// value type: the methods that change it return an updated copy.
type Camera struct {

	// Eye is the camera position in world space.
	Eye math32.Vector3

	// Target is the point the camera looks at.
	Target math32.Vector3

	// Up is the approximate up direction. It must not point along Eye - Target.
	Up math32.Vector3

	// FOV is the vertical field of view in radians.
	FOV float32

	// Aspect is the viewport width divided by its height.
	Aspect float32

	// Near and Far are the clip plane distances.
	Near, Far float32

	// FOVRange limits FOV under [Camera.Zoom], in radians.
	// A zero range leaves FOV unclamped.
	FOVRange minmax.F32
}

// New returns the default camera: 15 units out on +Z looking at the
// origin with a 45 degree field of view.
func New() Camera {
	return Camera{
		Eye:      math32.Vec3(0, 0, 15),
		Up:       math32.Vec3(0, 1, 0),
		FOV:      math32.DegToRad(45),
		Aspect:   900.0 / 700.0,
		Near:     0.1,
		Far:      100,
		FOVRange: minmax.F32{Min: math32.DegToRad(10), Max: math32.DegToRad(90)},
	}
}

// View returns the view matrix of the camera.
func (c Camera) View() math32.Matrix4 {
	return math32.LookAt(c.Eye, c.Target, c.Up)
}

// Projection returns the perspective projection matrix of the camera.
func (c Camera) Projection() math32.Matrix4 {
	return math32.NewPerspective(c.FOV, c.Aspect, c.Near, c.Far)
}

// ViewProjection returns Projection * View.
func (c Camera) ViewProjection() math32.Matrix4 {
	return c.Projection().Mul(c.View())
}

// Distance returns the distance from Eye to Target.
func (c Camera) Distance() float32 {
	return c.Eye.Sub(c.Target).Length()
}

// Orbit moves the eye around the origin for a pointer motion of dx, dy:
// dx turns about the Y axis and dy about the X axis. The X axis is
// flipped when the eye is behind the origin so that vertical motion
// keeps its on-screen direction.
func (c Camera) Orbit(dx, dy float32) Camera {
	x := float32(1)
	if c.Eye.Z < 0 {
		x = -x
	}
	id := math32.Identity4()
	m1 := math32.Rotate(id, orbitStep*dx*Sensitivity, math32.Vec3(0, 1, 0))
	m2 := math32.Rotate(id, orbitStep*dy*Sensitivity, math32.Vec3(x, 0, 0))
	c.Eye = m1.Mul(m2).MulVector4(math32.Vector4FromVector3(c.Eye, 1)).Vector3()
	return c
}

// Zoom changes the field of view by delta radians, clamped to FOVRange.
func (c Camera) Zoom(delta float32) Camera {
	c.FOV += delta
	if c.FOVRange.Range() > 0 {
		c.FOV = c.FOVRange.ClipValue(c.FOV)
	}
	return c
}
