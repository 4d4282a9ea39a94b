// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "github.com/ameschmeems/scop/math32"

// Cube returns an axis-aligned cube centered at the origin with the given
// edge length. Each face has its own four vertices so that normals and
// texture coordinates are per face; triangles wind counter-clockwise
// seen from outside.
func Cube(size float32) *Mesh {
	h := size / 2
	faces := [6][4]math32.Vector3{
		{{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h}},     // +Z
		{{h, -h, -h}, {-h, -h, -h}, {-h, h, -h}, {h, h, -h}}, // -Z
		{{h, -h, h}, {h, -h, -h}, {h, h, -h}, {h, h, h}},     // +X
		{{-h, -h, -h}, {-h, -h, h}, {-h, h, h}, {-h, h, -h}}, // -X
		{{-h, h, h}, {h, h, h}, {h, h, -h}, {-h, h, -h}},     // +Y
		{{-h, -h, -h}, {h, -h, -h}, {h, -h, h}, {-h, -h, h}}, // -Y
	}
	uvs := [4]math32.Vector2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	ms := &Mesh{
		Vertices: make([]Vertex, 0, 24),
		Indices:  make([]uint32, 0, 36),
	}
	for _, f := range faces {
		n := math32.Normal(f[0], f[1], f[2])
		base := uint32(len(ms.Vertices))
		for i, p := range f {
			ms.Vertices = append(ms.Vertices, Vertex{Position: p, Normal: n, TexCoord: uvs[i]})
		}
		ms.Indices = append(ms.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return ms
}
