// seehuhn.de/go/colour - a library for colour science computations
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package algebra

import "math"

// Table3D is a cubic lattice of three-component values, stored as a flat
// array in red-major order.  The entry for lattice point (r, g, b) starts
// at index ((r*Size+g)*Size+b)*3.
type Table3D struct {
	Size int
	Data []float64
}

// NewTable3D allocates a zero-filled cubic table with the given number of
// lattice points per axis.
func NewTable3D(size int) (*Table3D, error) {
	if size < 2 {
		return nil, newArgumentError("Table3D", "size",
			"must be at least 2, got %d", size)
	}
	return &Table3D{
		Size: size,
		Data: make([]float64, size*size*size*3),
	}, nil
}

// At returns the three components stored at lattice point (r, g, b).
func (t *Table3D) At(r, g, b int) [3]float64 {
	i := ((r*t.Size+g)*t.Size + b) * 3
	return [3]float64{t.Data[i], t.Data[i+1], t.Data[i+2]}
}

// Set stores the three components at lattice point (r, g, b).
func (t *Table3D) Set(r, g, b int, v [3]float64) {
	i := ((r*t.Size+g)*t.Size + b) * 3
	t.Data[i] = v[0]
	t.Data[i+1] = v[1]
	t.Data[i+2] = v[2]
}

// Copy returns an independent copy of the table.
func (t *Table3D) Copy() *Table3D {
	data := make([]float64, len(t.Data))
	copy(data, t.Data)
	return &Table3D{Size: t.Size, Data: data}
}

// TableMethod selects the interpolation scheme of [InterpolateTable3D].
type TableMethod int

const (
	// TableTrilinear interpolates linearly along each lattice axis in
	// turn.
	TableTrilinear TableMethod = iota

	// TableTetrahedral splits each lattice cell into six tetrahedra and
	// interpolates barycentrically within the enclosing one.
	TableTetrahedral
)

func (m TableMethod) String() string {
	switch m {
	case TableTrilinear:
		return "Trilinear"
	case TableTetrahedral:
		return "Tetrahedral"
	default:
		return "Unknown"
	}
}

// IsValid reports whether m names a supported table interpolation method.
func (m TableMethod) IsValid() bool {
	return m == TableTrilinear || m == TableTetrahedral
}

// cellOrigin clamps the continuous lattice coordinate u to the table and
// splits it into a cell index and a fraction within the cell.
func cellOrigin(u float64, size int) (int, float64) {
	if u <= 0 {
		return 0, 0
	}
	if u >= float64(size-1) {
		return size - 2, 1
	}
	i := int(math.Floor(u))
	if i > size-2 {
		i = size - 2
	}
	return i, u - float64(i)
}

// InterpolateTable3D interpolates the table at the continuous lattice
// coordinate (r, g, b), each in [0, Size-1].  Coordinates outside the
// lattice are clamped.
func InterpolateTable3D(t *Table3D, r, g, b float64, method TableMethod) ([3]float64, error) {
	if !method.IsValid() {
		return [3]float64{}, newArgumentError("InterpolateTable3D", "method",
			"unknown table method %d", int(method))
	}
	ri, rf := cellOrigin(r, t.Size)
	gi, gf := cellOrigin(g, t.Size)
	bi, bf := cellOrigin(b, t.Size)

	if method == TableTrilinear {
		return trilinear(t, ri, gi, bi, rf, gf, bf), nil
	}
	return tetrahedral(t, ri, gi, bi, rf, gf, bf), nil
}

func trilinear(t *Table3D, ri, gi, bi int, rf, gf, bf float64) [3]float64 {
	var res [3]float64
	for c := 0; c < 3; c++ {
		c000 := t.At(ri, gi, bi)[c]
		c100 := t.At(ri+1, gi, bi)[c]
		c010 := t.At(ri, gi+1, bi)[c]
		c110 := t.At(ri+1, gi+1, bi)[c]
		c001 := t.At(ri, gi, bi+1)[c]
		c101 := t.At(ri+1, gi, bi+1)[c]
		c011 := t.At(ri, gi+1, bi+1)[c]
		c111 := t.At(ri+1, gi+1, bi+1)[c]

		c00 := Lerp(c000, c100, rf)
		c10 := Lerp(c010, c110, rf)
		c01 := Lerp(c001, c101, rf)
		c11 := Lerp(c011, c111, rf)
		c0 := Lerp(c00, c10, gf)
		c1 := Lerp(c01, c11, gf)
		res[c] = Lerp(c0, c1, bf)
	}
	return res
}

// tetrahedral performs the six-case barycentric interpolation within the
// lattice cell, choosing the tetrahedron by the ordering of the cell
// fractions.
func tetrahedral(t *Table3D, ri, gi, bi int, rf, gf, bf float64) [3]float64 {
	v000 := t.At(ri, gi, bi)
	v111 := t.At(ri+1, gi+1, bi+1)

	var a, b [3]float64
	var wa, wb, wc float64
	switch {
	case rf >= gf && gf >= bf:
		a, b = t.At(ri+1, gi, bi), t.At(ri+1, gi+1, bi)
		wa, wb, wc = rf, gf, bf
	case rf >= bf && bf >= gf:
		a, b = t.At(ri+1, gi, bi), t.At(ri+1, gi, bi+1)
		wa, wb, wc = rf, bf, gf
	case bf >= rf && rf >= gf:
		a, b = t.At(ri, gi, bi+1), t.At(ri+1, gi, bi+1)
		wa, wb, wc = bf, rf, gf
	case gf >= rf && rf >= bf:
		a, b = t.At(ri, gi+1, bi), t.At(ri+1, gi+1, bi)
		wa, wb, wc = gf, rf, bf
	case gf >= bf && bf >= rf:
		a, b = t.At(ri, gi+1, bi), t.At(ri, gi+1, bi+1)
		wa, wb, wc = gf, bf, rf
	default:
		a, b = t.At(ri, gi, bi+1), t.At(ri, gi+1, bi+1)
		wa, wb, wc = bf, gf, rf
	}

	var res [3]float64
	for c := 0; c < 3; c++ {
		res[c] = v000[c] +
			wa*(a[c]-v000[c]) +
			wb*(b[c]-a[c]) +
			wc*(v111[c]-b[c])
	}
	return res
}
