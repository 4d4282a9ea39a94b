// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "unsafe"

// The vector and matrix types are reinterpreted as flat float32 arrays
// for GPU upload, so none of them may contain padding.
// Each line fails to compile if the size is not exactly N float32 values.
var (
	_ [0]struct{} = [unsafe.Sizeof(Vector2{}) - 2*4]struct{}{}
	_ [0]struct{} = [unsafe.Sizeof(Vector3{}) - 3*4]struct{}{}
	_ [0]struct{} = [unsafe.Sizeof(Vector4{}) - 4*4]struct{}{}
	_ [0]struct{} = [unsafe.Sizeof(Matrix2{}) - 4*4]struct{}{}
	_ [0]struct{} = [unsafe.Sizeof(Matrix3{}) - 9*4]struct{}{}
	_ [0]struct{} = [unsafe.Sizeof(Matrix4{}) - 16*4]struct{}{}
)

// Packed is the set of types with a tightly packed float32 layout.
type Packed interface {
	Vector2 | Vector3 | Vector4 | Matrix2 | Matrix3 | Matrix4
}

// Floats returns the given values as a flat slice of float32, sharing
// the same memory: writes through either slice are visible in the other.
// Vectors appear in X, Y, Z, W order and matrices in row order.
func Floats[T Packed](values []T) []float32 {
	if len(values) == 0 {
		return nil
	}
	n := len(values) * int(unsafe.Sizeof(values[0])) / 4
	return unsafe.Slice((*float32)(unsafe.Pointer(&values[0])), n)
}

// Bytes returns the given values as a flat byte slice in native byte
// order, sharing the same memory, suitable for a buffer upload.
func Bytes[T Packed](values []T) []byte {
	if len(values) == 0 {
		return nil
	}
	n := len(values) * int(unsafe.Sizeof(values[0]))
	return unsafe.Slice((*byte)(unsafe.Pointer(&values[0])), n)
}

// Floats returns the components of v as a slice sharing its memory.
func (v *Vector2) Floats() []float32 { return unsafe.Slice(&v.X, 2) }

// Floats returns the components of v as a slice sharing its memory.
func (v *Vector3) Floats() []float32 { return unsafe.Slice(&v.X, 3) }

// Floats returns the components of v as a slice sharing its memory.
func (v *Vector4) Floats() []float32 { return unsafe.Slice(&v.X, 4) }

// Floats returns the elements of m in row order as a slice sharing its memory.
func (m *Matrix2) Floats() []float32 { return unsafe.Slice(&m[0].X, 4) }

// Floats returns the elements of m in row order as a slice sharing its memory.
func (m *Matrix3) Floats() []float32 { return unsafe.Slice(&m[0].X, 9) }

// Floats returns the elements of m in row order as a slice sharing its memory.
func (m *Matrix4) Floats() []float32 { return unsafe.Slice(&m[0].X, 16) }
