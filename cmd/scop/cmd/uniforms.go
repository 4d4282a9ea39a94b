// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"bufio"
	"io"
	"strconv"

	"github.com/ameschmeems/scop/scene"
)

// Uniforms writes one line per model of the scene: its name followed by
// the 16 values of its transposed MVP matrix, in upload order.
func Uniforms(w io.Writer, sc *scene.Scene) error {
	bw := bufio.NewWriter(w)
	for _, u := range sc.Uniforms() {
		bw.WriteString(u.Name)
		bw.WriteByte(':')
		for _, f := range u.MVP.Floats() {
			bw.WriteByte(' ')
			bw.WriteString(strconv.FormatFloat(float64(f), 'g', -1, 32))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
