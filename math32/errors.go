// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "fmt"

// ParallelError is the panic value of [Vector3.Cross] when both operands
// have the same direction. It signals a caller bug and is not meant to be
// recovered from in normal control flow.
type ParallelError struct {
	A, B Vector3
}

func (e *ParallelError) Error() string {
	return fmt.Sprintf("math32: invalid cross product - both vectors are parallel: %v and %v", e.A, e.B)
}
