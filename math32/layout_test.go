// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestLayoutSizes(t *testing.T) {
	assert.Equal(t, uintptr(8), unsafe.Sizeof(Vector2{}))
	assert.Equal(t, uintptr(12), unsafe.Sizeof(Vector3{}))
	assert.Equal(t, uintptr(16), unsafe.Sizeof(Vector4{}))
	assert.Equal(t, uintptr(16), unsafe.Sizeof(Matrix2{}))
	assert.Equal(t, uintptr(36), unsafe.Sizeof(Matrix3{}))
	assert.Equal(t, uintptr(64), unsafe.Sizeof(Matrix4{}))

	assert.Equal(t, uintptr(8), unsafe.Offsetof(Vector4{}.Z))
	assert.Equal(t, uintptr(12), unsafe.Offsetof(Vector4{}.W))
}

func TestVectorFloats(t *testing.T) {
	v := Vec4(1, 2, 3, 4)
	assert.Equal(t, []float32{1, 2, 3, 4}, v.Floats())
	assert.Equal(t, [4]float32{1, 2, 3, 4}, *(*[4]float32)(unsafe.Pointer(&v)))

	v3 := Vec3(1, 2, 3)
	assert.Equal(t, []float32{1, 2, 3}, v3.Floats())
	v2 := Vec2(1, 2)
	assert.Equal(t, []float32{1, 2}, v2.Floats())

	vs := []Vector3{{1, 2, 3}, {4, 5, 6}}
	fs := Floats(vs)
	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6}, fs)

	// the views share memory
	fs[4] = 9
	assert.Equal(t, Vec3(4, 9, 6), vs[1])

	assert.Nil(t, Floats([]Vector4(nil)))
	assert.Nil(t, Bytes([]Vector4{}))
	assert.Len(t, Bytes(vs), 24)
}

func TestMatrixFloats(t *testing.T) {
	rows := [4]Vector4{Vec4(1, 2, 3, 4), Vec4(5, 6, 7, 8), Vec4(9, 10, 11, 12), Vec4(13, 14, 15, 16)}
	m := NewMatrix4(rows[0], rows[1], rows[2], rows[3])
	assert.Equal(t, rows, *(*[4]Vector4)(unsafe.Pointer(&m)))
	for i, r := range *(*[4]Vector4)(unsafe.Pointer(&m)) {
		assert.Equal(t, rows[i], r)
	}
	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}, m.Floats())

	// column-major upload is the transpose
	mt := m.Transpose()
	assert.Equal(t, []float32{1, 5, 9, 13, 2, 6, 10, 14, 3, 7, 11, 15, 4, 8, 12, 16}, mt.Floats())

	ms := []Matrix4{m, Identity4()}
	fs := Floats(ms)
	assert.Len(t, fs, 32)
	assert.Equal(t, float32(1), fs[16])
	assert.Equal(t, float32(16), fs[15])
	assert.Len(t, Bytes(ms), 128)

	m3 := Identity3()
	assert.Equal(t, []float32{1, 0, 0, 0, 1, 0, 0, 0, 1}, m3.Floats())
	m2 := Identity2()
	assert.Equal(t, []float32{1, 0, 0, 1}, m2.Floats())
}
