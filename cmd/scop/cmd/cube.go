// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"io"

	"github.com/ameschmeems/scop/mesh"
)

// Cube writes the vertex layout, counts, and bounds of the cube mesh
// with the given edge length.
func Cube(w io.Writer, size float32) error {
	ms := mesh.Cube(size)
	bb := ms.Bounds()
	_, err := fmt.Fprintf(w, "stride: %d\noffsets: position %d, normal %d, texcoord %d\nvertices: %d\nindices: %d\ntriangles: %d\nbounds: %v %v\n",
		mesh.Stride, mesh.PositionOffset, mesh.NormalOffset, mesh.TexCoordOffset,
		len(ms.Vertices), len(ms.Indices), ms.NumTriangles(), bb.Min, bb.Max)
	return err
}
