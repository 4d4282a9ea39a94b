// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Vector is the set of float32 vector types, constrained to those
// that can add and multiply by a scalar.
type Vector[V any] interface {
	Vector2 | Vector3 | Vector4
	AddScalar(s float32) V
	MulScalar(s float32) V
}

// ScalarAdd returns s + v, which equals v.AddScalar(s).
// There is no scalar - vector form.
func ScalarAdd[V Vector[V]](s float32, v V) V {
	return v.AddScalar(s)
}

// ScalarMul returns s * v, which equals v.MulScalar(s).
func ScalarMul[V Vector[V]](s float32, v V) V {
	return v.MulScalar(s)
}
