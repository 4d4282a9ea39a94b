// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"

	"golang.org/x/image/math/f32"
)

// Matrix4 is a 4x4 matrix stored as four row vectors.
// It must be transposed before uploading to a column-major consumer.
type Matrix4 [4]Vector4

// NewMatrix4 returns a new [Matrix4] with the given rows.
func NewMatrix4(r0, r1, r2, r3 Vector4) Matrix4 {
	return Matrix4{r0, r1, r2, r3}
}

// Empty4 returns the all-zero [Matrix4].
func Empty4() Matrix4 {
	return Matrix4{}
}

// Identity4 returns the 4x4 identity matrix.
func Identity4() Matrix4 {
	return Matrix4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// NewPerspective returns an OpenGL-style perspective projection matrix
// for the given vertical field of view (in radians), aspect ratio and
// near and far clipping planes. The parameters are not validated:
// a zero aspect or near == far gives Inf or NaN elements.
func NewPerspective(fov, aspect, near, far float32) Matrix4 {
	t := Tan(fov / 2)
	return Matrix4{
		{1 / (aspect * t), 0, 0, 0},
		{0, 1 / t, 0, 0},
		{0, 0, -(far + near) / (far - near), -(2 * far * near) / (far - near)},
		{0, 0, -1, 0},
	}
}

// Matrix4FromF32 returns a new [Matrix4] from the given row-major [f32.Mat4].
func Matrix4FromF32(a f32.Mat4) Matrix4 {
	return Matrix4{
		{a[0], a[1], a[2], a[3]},
		{a[4], a[5], a[6], a[7]},
		{a[8], a[9], a[10], a[11]},
		{a[12], a[13], a[14], a[15]},
	}
}

// F32 returns this matrix as a row-major [f32.Mat4].
func (m Matrix4) F32() f32.Mat4 {
	return f32.Mat4{
		m[0].X, m[0].Y, m[0].Z, m[0].W,
		m[1].X, m[1].Y, m[1].Z, m[1].W,
		m[2].X, m[2].Y, m[2].Z, m[2].W,
		m[3].X, m[3].Y, m[3].Z, m[3].W,
	}
}

// Row returns row i.
func (m Matrix4) Row(i int) Vector4 {
	return m[i]
}

// Col returns column j.
func (m Matrix4) Col(j int) Vector4 {
	d := Dims(j)
	return Vector4{m[0].Dim(d), m[1].Dim(d), m[2].Dim(d), m[3].Dim(d)}
}

// At returns the element at the given row and column.
func (m Matrix4) At(row, col int) float32 {
	return m[row].Dim(Dims(col))
}

func (m Matrix4) String() string {
	return fmt.Sprintf("[%v, %v, %v, %v]", m[0], m[1], m[2], m[3])
}

// Add returns the component-wise sum of this matrix and other.
func (m Matrix4) Add(other Matrix4) Matrix4 {
	return Matrix4{m[0].Add(other[0]), m[1].Add(other[1]), m[2].Add(other[2]), m[3].Add(other[3])}
}

// Sub returns the component-wise difference of this matrix and other.
func (m Matrix4) Sub(other Matrix4) Matrix4 {
	return Matrix4{m[0].Sub(other[0]), m[1].Sub(other[1]), m[2].Sub(other[2]), m[3].Sub(other[3])}
}

// MulScalar returns this matrix with every element multiplied by s.
func (m Matrix4) MulScalar(s float32) Matrix4 {
	return Matrix4{m[0].MulScalar(s), m[1].MulScalar(s), m[2].MulScalar(s), m[3].MulScalar(s)}
}

// Mul returns the matrix product m * other. Matrix multiplication
// is not commutative: m.Mul(other) applies other first to a vector.
func (m Matrix4) Mul(other Matrix4) Matrix4 {
	c0, c1, c2, c3 := other.Col(0), other.Col(1), other.Col(2), other.Col(3)
	var r Matrix4
	for i, row := range m {
		r[i] = Vector4{row.Dot(c0), row.Dot(c1), row.Dot(c2), row.Dot(c3)}
	}
	return r
}

// MulVector4 returns the matrix-vector product m * v.
func (m Matrix4) MulVector4(v Vector4) Vector4 {
	return Vector4{m[0].Dot(v), m[1].Dot(v), m[2].Dot(v), m[3].Dot(v)}
}

// MulPoint returns the given point transformed by this matrix,
// treating it as a homogeneous point with W = 1 and dropping W afterwards.
func (m Matrix4) MulPoint(p Vector3) Vector3 {
	return m.MulVector4(Vector4FromVector3(p, 1)).Vector3()
}

// Transpose returns the transpose of this matrix.
func (m Matrix4) Transpose() Matrix4 {
	return Matrix4{m.Col(0), m.Col(1), m.Col(2), m.Col(3)}
}
