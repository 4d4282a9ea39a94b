// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "strconv"

// Dims is a list of vector dimension (component) names
type Dims int32

const (
	X Dims = iota
	Y
	Z
	W
)

// DimsN is the number of valid [Dims] values.
const DimsN Dims = 4

var dimsNames = [DimsN]string{"X", "Y", "Z", "W"}

// String returns the name of the dimension, or "Dims(n)" if out of range.
func (d Dims) String() string {
	if d < 0 || d >= DimsN {
		return "Dims(" + strconv.Itoa(int(d)) + ")"
	}
	return dimsNames[d]
}
