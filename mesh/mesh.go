// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh provides vertex and index data laid out for direct
// upload to a GPU vertex buffer.
package mesh

import (
	"fmt"
	"unsafe"

	"github.com/ameschmeems/scop/math32"
)

// Vertex is one interleaved vertex: 8 tightly packed float32 values.
type Vertex struct {
	Position math32.Vector3
	Normal   math32.Vector3
	TexCoord math32.Vector2
}

// Attribute layout of [Vertex], in bytes, for vertex attribute pointers.
const (
	Stride         = 32
	PositionOffset = 0
	NormalOffset   = 12
	TexCoordOffset = 24
)

var (
	_ [0]struct{} = [unsafe.Sizeof(Vertex{}) - Stride]struct{}{}
	_ [0]struct{} = [unsafe.Offsetof(Vertex{}.Normal) - NormalOffset]struct{}{}
	_ [0]struct{} = [unsafe.Offsetof(Vertex{}.TexCoord) - TexCoordOffset]struct{}{}
)

// NewVertex returns a vertex at the given position with a zero normal and
// texture coordinate.
func NewVertex(position math32.Vector3) Vertex {
	return Vertex{Position: position}
}

// Mesh is an indexed triangle list.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// NewMesh returns a new [Mesh], checking that the indices describe
// whole triangles and stay within the vertex list.
func NewMesh(vertices []Vertex, indices []uint32) (*Mesh, error) {
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("mesh: index count %d is not a multiple of 3", len(indices))
	}
	for i, idx := range indices {
		if int(idx) >= len(vertices) {
			return nil, fmt.Errorf("mesh: index %d at position %d is out of range for %d vertices", idx, i, len(vertices))
		}
	}
	return &Mesh{Vertices: vertices, Indices: indices}, nil
}

// NumTriangles returns the number of triangles in the mesh.
func (ms *Mesh) NumTriangles() int {
	return len(ms.Indices) / 3
}

// Triangles returns the triangles of the mesh, in index order.
func (ms *Mesh) Triangles() []math32.Triangle {
	ts := make([]math32.Triangle, 0, ms.NumTriangles())
	for i := 0; i+2 < len(ms.Indices); i += 3 {
		ts = append(ts, math32.NewTriangle(
			ms.Vertices[ms.Indices[i]].Position,
			ms.Vertices[ms.Indices[i+1]].Position,
			ms.Vertices[ms.Indices[i+2]].Position))
	}
	return ts
}

// Bounds returns the bounding box of all vertex positions.
func (ms *Mesh) Bounds() math32.Box3 {
	bb := math32.B3Empty()
	for _, v := range ms.Vertices {
		bb = bb.ExpandByPoint(v.Position)
	}
	return bb
}

// Floats returns the vertex data as interleaved float32 values,
// sharing memory with the vertices.
func (ms *Mesh) Floats() []float32 {
	if len(ms.Vertices) == 0 {
		return nil
	}
	return unsafe.Slice(&ms.Vertices[0].Position.X, len(ms.Vertices)*Stride/4)
}

// Bytes returns the vertex data as bytes in native byte order,
// sharing memory with the vertices.
func (ms *Mesh) Bytes() []byte {
	if len(ms.Vertices) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&ms.Vertices[0])), len(ms.Vertices)*Stride)
}

// IndexBytes returns the index data as bytes in native byte order,
// sharing memory with the indices.
func (ms *Mesh) IndexBytes() []byte {
	if len(ms.Indices) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&ms.Indices[0])), len(ms.Indices)*4)
}
