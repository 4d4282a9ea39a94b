// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "fmt"

// Matrix2 is a 2x2 matrix stored as two row vectors.
type Matrix2 [2]Vector2

// NewMatrix2 returns a new [Matrix2] with the given rows.
func NewMatrix2(r0, r1 Vector2) Matrix2 {
	return Matrix2{r0, r1}
}

// Empty2 returns the all-zero [Matrix2].
func Empty2() Matrix2 {
	return Matrix2{}
}

// Identity2 returns the 2x2 identity matrix.
func Identity2() Matrix2 {
	return Matrix2{
		{1, 0},
		{0, 1},
	}
}

// Row returns row i.
func (m Matrix2) Row(i int) Vector2 {
	return m[i]
}

// Col returns column j.
func (m Matrix2) Col(j int) Vector2 {
	d := Dims(j)
	return Vector2{m[0].Dim(d), m[1].Dim(d)}
}

// At returns the element at the given row and column.
func (m Matrix2) At(row, col int) float32 {
	return m[row].Dim(Dims(col))
}

func (m Matrix2) String() string {
	return fmt.Sprintf("[%v, %v]", m[0], m[1])
}

// Add returns the component-wise sum of this matrix and other.
func (m Matrix2) Add(other Matrix2) Matrix2 {
	return Matrix2{m[0].Add(other[0]), m[1].Add(other[1])}
}

// Sub returns the component-wise difference of this matrix and other.
func (m Matrix2) Sub(other Matrix2) Matrix2 {
	return Matrix2{m[0].Sub(other[0]), m[1].Sub(other[1])}
}

// MulScalar returns this matrix with every element multiplied by s.
func (m Matrix2) MulScalar(s float32) Matrix2 {
	return Matrix2{m[0].MulScalar(s), m[1].MulScalar(s)}
}

// Mul returns the matrix product m * other.
func (m Matrix2) Mul(other Matrix2) Matrix2 {
	c0, c1 := other.Col(0), other.Col(1)
	var r Matrix2
	for i, row := range m {
		r[i] = Vector2{row.Dot(c0), row.Dot(c1)}
	}
	return r
}

// MulVector2 returns the matrix-vector product m * v.
func (m Matrix2) MulVector2(v Vector2) Vector2 {
	return Vector2{m[0].Dot(v), m[1].Dot(v)}
}
