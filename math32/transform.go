// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Translate returns m right-multiplied by a translation by v.
func Translate(m Matrix4, v Vector3) Matrix4 {
	t := Identity4()
	t[0].W = v.X
	t[1].W = v.Y
	t[2].W = v.Z
	return m.Mul(t)
}

// Rotate returns m right-multiplied by a rotation of angle radians
// about axis. The axis is normalized here, so it need not be a unit vector.
func Rotate(m Matrix4, angle float32, axis Vector3) Matrix4 {
	a := axis.Normal()
	s, c := Sincos(angle)
	t := 1 - c
	r := Matrix4{
		{c + a.X*a.X*t, a.X*a.Y*t - a.Z*s, a.X*a.Z*t + a.Y*s, 0},
		{a.Y*a.X*t + a.Z*s, c + a.Y*a.Y*t, a.Y*a.Z*t - a.X*s, 0},
		{a.Z*a.X*t - a.Y*s, a.Z*a.Y*t + a.X*s, c + a.Z*a.Z*t, 0},
		{0, 0, 0, 1},
	}
	return m.Mul(r)
}

// Scale returns m right-multiplied by a scaling by v.
func Scale(m Matrix4, v Vector3) Matrix4 {
	return m.Mul(Matrix4{
		{v.X, 0, 0, 0},
		{0, v.Y, 0, 0},
		{0, 0, v.Z, 0},
		{0, 0, 0, 1},
	})
}

// LookAt returns a right-handed view matrix for a camera at eye
// looking at target, with the given approximate up direction.
// It panics (see [Vector3.Cross]) if up has the same direction as eye - target.
func LookAt(eye, target, up Vector3) Matrix4 {
	f := eye.Sub(target).Normal()
	r := up.Cross(f).Normal()
	u := f.Cross(r)
	return Matrix4{
		Vector4FromVector3(r, -r.Dot(eye)),
		Vector4FromVector3(u, -u.Dot(eye)),
		Vector4FromVector3(f, -f.Dot(eye)),
		{0, 0, 0, 1},
	}
}
