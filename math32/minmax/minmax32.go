// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package minmax provides a struct that holds Min and Max values.
package minmax

// F32 represents a min / max range for float32 values.
type F32 struct {
	Min float32 `toml:"min" yaml:"min"`
	Max float32 `toml:"max" yaml:"max"`
}

// IsValid returns true if Min <= Max
func (mr F32) IsValid() bool {
	return mr.Min <= mr.Max
}

// Range returns Max - Min
func (mr F32) Range() float32 {
	return mr.Max - mr.Min
}

// ClipValue clips given value within Min / Max range
// Note: a NaN will remain as a NaN
func (mr F32) ClipValue(val float32) float32 {
	if val < mr.Min {
		return mr.Min
	}
	if val > mr.Max {
		return mr.Max
	}
	return val
}
