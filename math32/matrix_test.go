// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/ameschmeems/scop/base/tolassert"
	"github.com/stretchr/testify/assert"
	"golang.org/x/image/math/f32"
)

const standardTol = float32(1.0e-6)

func tolAssertEqualVector(t *testing.T, tol float32, vt, va Vector3) {
	t.Helper()
	tolassert.EqualTol(t, vt.X, va.X, tol)
	tolassert.EqualTol(t, vt.Y, va.Y, tol)
	tolassert.EqualTol(t, vt.Z, va.Z, tol)
}

func tolAssertEqualMatrix(t *testing.T, tol float32, mt, ma Matrix4) {
	t.Helper()
	tolassert.EqualTolSlice(t, mt.Floats(), ma.Floats(), tol)
}

var seq4 = Matrix4{
	{1, 2, 3, 4},
	{5, 6, 7, 8},
	{9, 10, 11, 12},
	{13, 14, 15, 16},
}

func TestMatrixConstructors(t *testing.T) {
	assert.Equal(t, Matrix2{}, Empty2())
	assert.Equal(t, Matrix3{}, Empty3())
	assert.Equal(t, Matrix4{}, Empty4())

	assert.Equal(t, NewMatrix2(Vec2(1, 0), Vec2(0, 1)), Identity2())
	assert.Equal(t, NewMatrix3(Vec3(1, 0, 0), Vec3(0, 1, 0), Vec3(0, 0, 1)), Identity3())
	assert.Equal(t, NewMatrix4(Vec4(1, 0, 0, 0), Vec4(0, 1, 0, 0), Vec4(0, 0, 1, 0), Vec4(0, 0, 0, 1)), Identity4())
	for i := range 4 {
		for j := range 4 {
			want := float32(0)
			if i == j {
				want = 1
			}
			assert.Equal(t, want, Identity4().At(i, j))
		}
	}
}

func TestMatrixIdentityLaw(t *testing.T) {
	m2 := NewMatrix2(Vec2(1, 2), Vec2(3, 4))
	assert.Equal(t, m2, m2.Mul(Identity2()))
	assert.Equal(t, m2, Identity2().Mul(m2))

	m3 := NewMatrix3(Vec3(1, 2, 3), Vec3(4, 5, 6), Vec3(7, 8, 9))
	assert.Equal(t, m3, m3.Mul(Identity3()))
	assert.Equal(t, m3, Identity3().Mul(m3))

	ms := []Matrix4{seq4, Identity4(), Empty4(), NewPerspective(1, 1.5, 0.1, 100)}
	for _, m := range ms {
		assert.Equal(t, m, m.Mul(Identity4()))
		assert.Equal(t, m, Identity4().Mul(m))
	}
}

func TestMatrixMul(t *testing.T) {
	a := NewMatrix2(Vec2(1, 2), Vec2(3, 4))
	b := NewMatrix2(Vec2(5, 6), Vec2(7, 8))
	assert.Equal(t, NewMatrix2(Vec2(19, 22), Vec2(43, 50)), a.Mul(b))
	assert.Equal(t, NewMatrix2(Vec2(23, 34), Vec2(31, 46)), b.Mul(a))

	m3 := NewMatrix3(Vec3(1, 2, 3), Vec3(4, 5, 6), Vec3(7, 8, 9))
	assert.Equal(t, NewMatrix3(Vec3(30, 36, 42), Vec3(66, 81, 96), Vec3(102, 126, 150)), m3.Mul(m3))

	want := Matrix4{
		{90, 100, 110, 120},
		{202, 228, 254, 280},
		{314, 356, 398, 440},
		{426, 484, 542, 600},
	}
	assert.Equal(t, want, seq4.Mul(seq4))
	assert.NotEqual(t, seq4.Mul(Translate(Identity4(), Vec3(1, 2, 3))), Translate(Identity4(), Vec3(1, 2, 3)).Mul(seq4))
}

func TestMatrixMulVector(t *testing.T) {
	ones := NewMatrix4(Vector4Scalar(1), Vector4Scalar(1), Vector4Scalar(1), Vector4Scalar(1))
	assert.Equal(t, Vec4(10, 10, 10, 10), ones.MulVector4(Vec4(1, 2, 3, 4)))
	assert.Equal(t, Vec4(30, 70, 110, 150), seq4.MulVector4(Vec4(1, 2, 3, 4)))
	assert.Equal(t, Vec4(1, 2, 3, 4), Identity4().MulVector4(Vec4(1, 2, 3, 4)))

	m3 := NewMatrix3(Vec3(1, 2, 3), Vec3(4, 5, 6), Vec3(7, 8, 9))
	assert.Equal(t, Vec3(14, 32, 50), m3.MulVector3(Vec3(1, 2, 3)))

	m2 := NewMatrix2(Vec2(1, 2), Vec2(3, 4))
	assert.Equal(t, Vec2(5, 11), m2.MulVector2(Vec2(1, 2)))
}

func TestMatrixArithmetic(t *testing.T) {
	m2 := NewMatrix2(Vec2(1, 2), Vec2(3, 4))
	assert.Equal(t, NewMatrix2(Vec2(2, 4), Vec2(6, 8)), m2.Add(m2))
	assert.Equal(t, Empty2(), m2.Sub(m2))
	assert.Equal(t, NewMatrix2(Vec2(3, 6), Vec2(9, 12)), m2.MulScalar(3))

	m3 := Identity3()
	assert.Equal(t, NewMatrix3(Vec3(2, 0, 0), Vec3(0, 2, 0), Vec3(0, 0, 2)), m3.Add(m3))
	assert.Equal(t, m3.MulScalar(2), m3.Add(m3))
	assert.Equal(t, Empty3(), m3.Sub(m3))

	assert.Equal(t, seq4.MulScalar(2), seq4.Add(seq4))
	assert.Equal(t, Empty4(), seq4.Sub(seq4))
	assert.Equal(t, Vec4(2, 4, 6, 8), seq4.MulScalar(2)[0])
}

func TestMatrixAccessors(t *testing.T) {
	assert.Equal(t, Vec4(5, 6, 7, 8), seq4.Row(1))
	assert.Equal(t, Vec4(2, 6, 10, 14), seq4.Col(1))
	assert.Equal(t, float32(12), seq4.At(2, 3))

	m3 := NewMatrix3(Vec3(1, 2, 3), Vec3(4, 5, 6), Vec3(7, 8, 9))
	assert.Equal(t, Vec3(3, 6, 9), m3.Col(2))
	assert.Equal(t, float32(8), m3.At(2, 1))

	m2 := NewMatrix2(Vec2(1, 2), Vec2(3, 4))
	assert.Equal(t, Vec2(2, 4), m2.Col(1))
	assert.Equal(t, Vec2(3, 4), m2.Row(1))
	assert.Equal(t, float32(3), m2.At(1, 0))

	assert.Equal(t, "[(1, 0), (0, 1)]", Identity2().String())
	assert.Equal(t, "[(1, 2, 3, 4), (5, 6, 7, 8), (9, 10, 11, 12), (13, 14, 15, 16)]", seq4.String())
}

func TestMatrixTranspose(t *testing.T) {
	want := Matrix4{
		{1, 5, 9, 13},
		{2, 6, 10, 14},
		{3, 7, 11, 15},
		{4, 8, 12, 16},
	}
	assert.Equal(t, want, seq4.Transpose())
	assert.Equal(t, seq4, seq4.Transpose().Transpose())
	assert.Equal(t, Identity4(), Identity4().Transpose())

	m3 := NewMatrix3(Vec3(1, 2, 3), Vec3(4, 5, 6), Vec3(7, 8, 9))
	assert.Equal(t, NewMatrix3(Vec3(1, 4, 7), Vec3(2, 5, 8), Vec3(3, 6, 9)), m3.Transpose())
	assert.Equal(t, m3, m3.Transpose().Transpose())
}

func TestMatrixConversions(t *testing.T) {
	assert.Equal(t, NewMatrix3(Vec3(1, 2, 3), Vec3(5, 6, 7), Vec3(9, 10, 11)), Matrix3FromMatrix4(seq4))

	fm := seq4.F32()
	assert.Equal(t, f32.Mat4{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}, fm)
	assert.Equal(t, seq4, Matrix4FromF32(fm))

	m3 := NewMatrix3(Vec3(1, 2, 3), Vec3(4, 5, 6), Vec3(7, 8, 9))
	assert.Equal(t, f32.Mat3{1, 2, 3, 4, 5, 6, 7, 8, 9}, m3.F32())
	assert.Equal(t, m3, Matrix3FromF32(m3.F32()))
}

func TestPerspective(t *testing.T) {
	p := NewPerspective(Pi/2, 2, 1, 3)
	tolassert.EqualTol(t, 0.5, p[0].X, standardTol)
	tolassert.EqualTol(t, 1, p[1].Y, standardTol)
	assert.Equal(t, Vec4(0, 0, -2, -3), p[2])
	assert.Equal(t, Vec4(0, 0, -1, 0), p[3])
	for _, e := range []float32{p[0].Y, p[0].Z, p[0].W, p[1].X, p[1].Z, p[1].W} {
		assert.Equal(t, float32(0), e)
	}

	// near and far planes map to NDC -1 and +1
	near := p.MulVector4(Vec4(0, 0, -1, 1)).PerspDiv()
	far := p.MulVector4(Vec4(0, 0, -3, 1)).PerspDiv()
	assert.Equal(t, float32(-1), near.Z)
	assert.Equal(t, float32(1), far.Z)
}

func TestPerspectiveDegenerate(t *testing.T) {
	p := NewPerspective(Pi/2, 0, 1, 1)
	assert.True(t, IsInf(p[0].X, 1))
	assert.True(t, IsInf(p[2].Z, -1))
	assert.True(t, IsInf(p[2].W, -1))

	p = NewPerspective(Pi/2, 1, 0, 0)
	assert.True(t, IsNaN(p[2].Z))
	assert.True(t, IsNaN(p[2].W))

	p = NewPerspective(0, 1, 0.1, 10)
	assert.True(t, IsInf(p[0].X, 1))
	assert.True(t, IsInf(p[1].Y, 1))
}
