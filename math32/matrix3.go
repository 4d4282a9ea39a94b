// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"

	"golang.org/x/image/math/f32"
)

// Matrix3 is a 3x3 matrix stored as three row vectors.
type Matrix3 [3]Vector3

// NewMatrix3 returns a new [Matrix3] with the given rows.
func NewMatrix3(r0, r1, r2 Vector3) Matrix3 {
	return Matrix3{r0, r1, r2}
}

// Empty3 returns the all-zero [Matrix3].
func Empty3() Matrix3 {
	return Matrix3{}
}

// Identity3 returns the 3x3 identity matrix.
func Identity3() Matrix3 {
	return Matrix3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Matrix3FromMatrix4 returns the upper-left 3x3 part of the given [Matrix4].
func Matrix3FromMatrix4(m Matrix4) Matrix3 {
	return Matrix3{m[0].Vector3(), m[1].Vector3(), m[2].Vector3()}
}

// Matrix3FromF32 returns a new [Matrix3] from the given row-major [f32.Mat3].
func Matrix3FromF32(a f32.Mat3) Matrix3 {
	return Matrix3{
		{a[0], a[1], a[2]},
		{a[3], a[4], a[5]},
		{a[6], a[7], a[8]},
	}
}

// F32 returns this matrix as a row-major [f32.Mat3].
func (m Matrix3) F32() f32.Mat3 {
	return f32.Mat3{
		m[0].X, m[0].Y, m[0].Z,
		m[1].X, m[1].Y, m[1].Z,
		m[2].X, m[2].Y, m[2].Z,
	}
}

// Row returns row i.
func (m Matrix3) Row(i int) Vector3 {
	return m[i]
}

// Col returns column j.
func (m Matrix3) Col(j int) Vector3 {
	d := Dims(j)
	return Vector3{m[0].Dim(d), m[1].Dim(d), m[2].Dim(d)}
}

// At returns the element at the given row and column.
func (m Matrix3) At(row, col int) float32 {
	return m[row].Dim(Dims(col))
}

func (m Matrix3) String() string {
	return fmt.Sprintf("[%v, %v, %v]", m[0], m[1], m[2])
}

// Add returns the component-wise sum of this matrix and other.
func (m Matrix3) Add(other Matrix3) Matrix3 {
	return Matrix3{m[0].Add(other[0]), m[1].Add(other[1]), m[2].Add(other[2])}
}

// Sub returns the component-wise difference of this matrix and other.
func (m Matrix3) Sub(other Matrix3) Matrix3 {
	return Matrix3{m[0].Sub(other[0]), m[1].Sub(other[1]), m[2].Sub(other[2])}
}

// MulScalar returns this matrix with every element multiplied by s.
func (m Matrix3) MulScalar(s float32) Matrix3 {
	return Matrix3{m[0].MulScalar(s), m[1].MulScalar(s), m[2].MulScalar(s)}
}

// Mul returns the matrix product m * other.
func (m Matrix3) Mul(other Matrix3) Matrix3 {
	c0, c1, c2 := other.Col(0), other.Col(1), other.Col(2)
	var r Matrix3
	for i, row := range m {
		r[i] = Vector3{row.Dot(c0), row.Dot(c1), row.Dot(c2)}
	}
	return r
}

// MulVector3 returns the matrix-vector product m * v.
func (m Matrix3) MulVector3(v Vector3) Vector3 {
	return Vector3{m[0].Dot(v), m[1].Dot(v), m[2].Dot(v)}
}

// Transpose returns the transpose of this matrix.
func (m Matrix3) Transpose() Matrix3 {
	return Matrix3{m.Col(0), m.Col(1), m.Col(2)}
}
