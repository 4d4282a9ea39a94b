// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

// Box3 represents a 3D bounding box defined by two points:
// the point with minimum coordinates and the point with maximum coordinates.
type Box3 struct {
	Min Vector3
	Max Vector3
}

// B3 returns a new [Box3] from the given minimum and maximum x, y, and z coordinates.
func B3(x0, y0, z0, x1, y1, z1 float32) Box3 {
	return Box3{Vec3(x0, y0, z0), Vec3(x1, y1, z1)}
}

// B3Empty returns a new [Box3] with empty minimum and maximum values
// (min / max +/- Infinity).
func B3Empty() Box3 {
	return Box3{Vector3Scalar(Infinity), Vector3Scalar(-Infinity)}
}

// B3FromPoints returns the smallest [Box3] containing all of the given points.
func B3FromPoints(points ...Vector3) Box3 {
	return B3Empty().ExpandByPoints(points...)
}

// IsEmpty returns true if this bounding box is empty (max < min on any coord).
func (b Box3) IsEmpty() bool {
	return (b.Max.X < b.Min.X) || (b.Max.Y < b.Min.Y) || (b.Max.Z < b.Min.Z)
}

// ExpandByPoint returns this bounding box expanded to include the specified point.
func (b Box3) ExpandByPoint(point Vector3) Box3 {
	return Box3{
		Min: Vec3(Min(b.Min.X, point.X), Min(b.Min.Y, point.Y), Min(b.Min.Z, point.Z)),
		Max: Vec3(Max(b.Max.X, point.X), Max(b.Max.Y, point.Y), Max(b.Max.Z, point.Z)),
	}
}

// ExpandByPoints returns this bounding box expanded to include the specified points.
func (b Box3) ExpandByPoints(points ...Vector3) Box3 {
	for _, p := range points {
		b = b.ExpandByPoint(p)
	}
	return b
}

// Center returns the center of the bounding box.
func (b Box3) Center() Vector3 {
	return b.Min.Add(b.Max).MulScalar(0.5)
}

// Size calculates the size of this bounding box: the vector from
// its minimum point to its maximum point.
func (b Box3) Size() Vector3 {
	return b.Max.Sub(b.Min)
}

// ContainsPoint returns if this bounding box contains the specified point.
func (b Box3) ContainsPoint(point Vector3) bool {
	if point.X < b.Min.X || point.X > b.Max.X ||
		point.Y < b.Min.Y || point.Y > b.Max.Y ||
		point.Z < b.Min.Z || point.Z > b.Max.Z {
		return false
	}
	return true
}

// Union returns the union with other box.
func (b Box3) Union(other Box3) Box3 {
	return b.ExpandByPoints(other.Min, other.Max)
}


// corners returns the eight corners of the box.
func (b Box3) corners() [8]Vector3 {
	return [8]Vector3{
		Vec3(b.Min.X, b.Min.Y, b.Min.Z),
		Vec3(b.Min.X, b.Min.Y, b.Max.Z),
		Vec3(b.Min.X, b.Max.Y, b.Min.Z),
		Vec3(b.Max.X, b.Min.Y, b.Min.Z),
		Vec3(b.Max.X, b.Max.Y, b.Max.Z),
		Vec3(b.Max.X, b.Max.Y, b.Min.Z),
		Vec3(b.Max.X, b.Min.Y, b.Max.Z),
		Vec3(b.Min.X, b.Max.Y, b.Max.Z),
	}
}

// MulMatrix4 multiplies the specified matrix to the vertices of this bounding box
// and computes the resulting spanning Box3 of the transformed points
func (b Box3) MulMatrix4(m Matrix4) Box3 {
	nb := B3Empty()
	for _, c := range b.corners() {
		nb = nb.ExpandByPoint(m.MulPoint(c))
	}
	return nb
}
