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

package lut

import (
	"fmt"
	"math"

	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/spatial/kdtree"

	"seehuhn.de/go/colour/algebra"
)

// LUT3D interpolates colour triplets over a cubic lattice.
type LUT3D struct {
	Name     string
	Comments []string

	table  *algebra.Table3D
	domain Domain
}

const defaultSize3D = 33

// NewLUT3D creates a three-dimensional lookup table.  A nil table selects
// an identity lattice of 33 points per axis; a zero domain selects bounds
// [0, 1] for all channels.  With an explicit domain the per-channel
// sample counts must equal the lattice size.
func NewLUT3D(table *algebra.Table3D, domain Domain, opts *Options) (*LUT3D, error) {
	if domain.IsZero() {
		domain = domainBoundsUniform(0, 1, 3)
	}
	if err := domain.validate("NewLUT3D", 3); err != nil {
		return nil, err
	}
	if table == nil {
		var err error
		table, err = LinearTable3D(defaultSize3D, domain)
		if err != nil {
			return nil, err
		}
	}
	for c := 0; c < 3; c++ {
		if n := domain.GridLen(c); n != 0 && n != table.Size {
			return nil, newUsageError("NewLUT3D",
				"lattice size is %d, channel %d domain has %d samples",
				table.Size, c, n)
		}
	}
	l := &LUT3D{
		table:  table.Copy(),
		domain: domain.Copy(),
	}
	if opts != nil {
		l.Name = opts.Name
		l.Comments = slices.Clone(opts.Comments)
	}
	return l, nil
}

// LinearTable3D returns the identity lattice over the given domain: each
// entry holds its own grid coordinates.
func LinearTable3D(size int, domain Domain) (*algebra.Table3D, error) {
	if domain.IsExplicit() {
		size = domain.GridLen(0)
	}
	t, err := algebra.NewTable3D(size)
	if err != nil {
		return nil, err
	}
	var grids [3][]float64
	for c := 0; c < 3; c++ {
		grids[c] = domain.Grid(c, size)
		if len(grids[c]) != size {
			return nil, newUsageError("LinearTable3D",
				"channel %d domain has %d samples, expected %d",
				c, len(grids[c]), size)
		}
	}
	for r := 0; r < size; r++ {
		for g := 0; g < size; g++ {
			for b := 0; b < size; b++ {
				t.Set(r, g, b, [3]float64{grids[0][r], grids[1][g], grids[2][b]})
			}
		}
	}
	return t, nil
}

// Size returns the number of lattice points per axis.
func (l *LUT3D) Size() int {
	return l.table.Size
}

// Table returns a copy of the lattice.
func (l *LUT3D) Table() *algebra.Table3D {
	return l.table.Copy()
}

// Domain returns a copy of the table's domain.
func (l *LUT3D) Domain() Domain {
	return l.domain.Copy()
}

// Apply maps one colour triplet through the lattice.  Inputs outside the
// domain are clamped to the lattice boundary.
func (l *LUT3D) Apply(rgb [3]float64, opts *ApplyOptions) ([3]float64, error) {
	opts = applyDefaults(opts)
	if opts.Direction == Inverse {
		inv, err := l.Invert(opts.Invert)
		if err != nil {
			return [3]float64{}, err
		}
		return inv.Apply(rgb, forwardOpts(opts))
	}
	return l.applyForward(rgb, opts.Table)
}

// ApplySlice maps a slice of colour triplets through the lattice.
func (l *LUT3D) ApplySlice(rgb [][3]float64, opts *ApplyOptions) ([][3]float64, error) {
	opts = applyDefaults(opts)
	if opts.Direction == Inverse {
		inv, err := l.Invert(opts.Invert)
		if err != nil {
			return nil, err
		}
		return inv.ApplySlice(rgb, forwardOpts(opts))
	}
	res := make([][3]float64, len(rgb))
	for i, v := range rgb {
		out, err := l.applyForward(v, opts.Table)
		if err != nil {
			return nil, err
		}
		res[i] = out
	}
	return res, nil
}

func (l *LUT3D) applyForward(rgb [3]float64, method algebra.TableMethod) ([3]float64, error) {
	size := l.table.Size
	var u [3]float64
	for c := 0; c < 3; c++ {
		u[c] = fracIndex(l.domain.Grid(c, size), rgb[c])
	}
	return algebra.InterpolateTable3D(l.table, u[0], u[1], u[2], method)
}

// Invert returns an approximate inverse of the lattice, built by querying
// the nearest forward entries for each inverse lattice point and blending
// their source coordinates by inverse distance.  Accuracy degrades for
// non-injective tables; inversion over non-uniform explicit domains is
// not supported.
func (l *LUT3D) Invert(opts *InvertOptions) (*LUT3D, error) {
	for c := 0; c < 3; c++ {
		if !l.domain.isUniform(c) {
			return nil, newUnsupportedError("LUT3D.Invert",
				"non-uniform explicit domain for channel %d", c)
		}
	}
	querySize := 3
	extrapolate := false
	if opts != nil {
		if opts.QuerySize > 0 {
			querySize = opts.QuerySize
		}
		extrapolate = opts.Extrapolate
	}

	size := l.table.Size
	var grids [3][]float64
	for c := 0; c < 3; c++ {
		grids[c] = l.domain.Grid(c, size)
	}

	lo, hi := 0, size
	if extrapolate {
		lo, hi = -1, size+1
	}
	entries := make(tableEntries, 0, (hi-lo)*(hi-lo)*(hi-lo))
	for r := lo; r < hi; r++ {
		for g := lo; g < hi; g++ {
			for b := lo; b < hi; b++ {
				entries = append(entries, tableEntry{
					colour: extendedAt(l.table, r, g, b),
					source: [3]float64{
						extendedGrid(grids[0], r),
						extendedGrid(grids[1], g),
						extendedGrid(grids[2], b),
					},
				})
			}
		}
	}
	tree := kdtree.New(entries, false)

	inv, err := algebra.NewTable3D(size)
	if err != nil {
		return nil, err
	}
	for r := 0; r < size; r++ {
		for g := 0; g < size; g++ {
			for b := 0; b < size; b++ {
				q := [3]float64{grids[0][r], grids[1][g], grids[2][b]}
				inv.Set(r, g, b, nearestSource(tree, q, querySize))
			}
		}
	}
	return NewLUT3D(inv, l.domain, &Options{
		Name:     l.Name,
		Comments: l.Comments,
	})
}

// nearestSource blends the source coordinates of the n forward entries
// closest to the colour q, weighting by inverse distance.
func nearestSource(tree *kdtree.Tree, q [3]float64, n int) [3]float64 {
	keep := kdtree.NewNKeeper(n)
	tree.NearestSet(keep, tableEntry{colour: q})

	var res [3]float64
	var wSum float64
	for _, cd := range keep.Heap {
		e, ok := cd.Comparable.(tableEntry)
		if !ok {
			continue
		}
		if cd.Dist < 1e-24 {
			return e.source
		}
		w := 1 / math.Sqrt(cd.Dist)
		for c := 0; c < 3; c++ {
			res[c] += w * e.source[c]
		}
		wSum += w
	}
	for c := 0; c < 3; c++ {
		res[c] /= wSum
	}
	return res
}

// extendedAt reads a lattice entry, extending indices one step beyond the
// lattice by linear extrapolation.
func extendedAt(t *algebra.Table3D, r, g, b int) [3]float64 {
	switch {
	case r < 0:
		return extrapolatePair(extendedAt(t, 0, g, b), extendedAt(t, 1, g, b))
	case r >= t.Size:
		return extrapolatePair(extendedAt(t, t.Size-1, g, b), extendedAt(t, t.Size-2, g, b))
	case g < 0:
		return extrapolatePair(extendedAt(t, r, 0, b), extendedAt(t, r, 1, b))
	case g >= t.Size:
		return extrapolatePair(extendedAt(t, r, t.Size-1, b), extendedAt(t, r, t.Size-2, b))
	case b < 0:
		return extrapolatePair(extendedAt(t, r, g, 0), extendedAt(t, r, g, 1))
	case b >= t.Size:
		return extrapolatePair(extendedAt(t, r, g, t.Size-1), extendedAt(t, r, g, t.Size-2))
	default:
		return t.At(r, g, b)
	}
}

func extrapolatePair(edge, inner [3]float64) [3]float64 {
	var res [3]float64
	for c := 0; c < 3; c++ {
		res[c] = 2*edge[c] - inner[c]
	}
	return res
}

func extendedGrid(grid []float64, i int) float64 {
	n := len(grid)
	step := (grid[n-1] - grid[0]) / float64(n-1)
	switch {
	case i < 0:
		return grid[0] + float64(i)*step
	case i >= n:
		return grid[n-1] + float64(i-n+1)*step
	default:
		return grid[i]
	}
}

// ArithmeticalOperation combines the lattice values with a scalar, a
// lattice of the same size, or another table of the same shape.  With
// inPlace the receiver is modified and returned; otherwise a new table is
// returned.
func (l *LUT3D) ArithmeticalOperation(value any, op algebra.Operation, inPlace bool) (*LUT3D, error) {
	if !op.IsValid() {
		return nil, newUsageError("ArithmeticalOperation",
			"unknown operation %d", int(op))
	}
	var other *algebra.Table3D
	switch v := value.(type) {
	case float64:
		// handled below
	case *algebra.Table3D:
		other = v
	case *LUT3D:
		if !v.domain.Equal(l.domain) {
			return nil, newUsageError("ArithmeticalOperation",
				"operand domain does not match")
		}
		other = v.table
	default:
		return nil, newUsageError("ArithmeticalOperation",
			"unsupported operand type %T", value)
	}
	if other != nil && other.Size != l.table.Size {
		return nil, newUsageError("ArithmeticalOperation",
			"operand lattice size %d does not match %d",
			other.Size, l.table.Size)
	}

	res := l
	if !inPlace {
		res = l.Copy()
	}
	size := res.table.Size
	for r := 0; r < size; r++ {
		for g := 0; g < size; g++ {
			for b := 0; b < size; b++ {
				a := res.table.At(r, g, b)
				for c := 0; c < 3; c++ {
					x := a[c]
					var y float64
					if other != nil {
						y = other.At(r, g, b)[c]
					} else {
						y = value.(float64)
					}
					a[c] = op.Apply(x, y)
				}
				res.table.Set(r, g, b, a)
			}
		}
	}
	return res, nil
}

// Copy returns an independent copy of the table.
func (l *LUT3D) Copy() *LUT3D {
	return &LUT3D{
		Name:     l.Name,
		Comments: slices.Clone(l.Comments),
		table:    l.table.Copy(),
		domain:   l.domain.Copy(),
	}
}

// Equal reports whether two tables have the same lattice values and
// domain.  The name and comments do not participate in the comparison.
func (l *LUT3D) Equal(other *LUT3D) bool {
	if l.table.Size != other.table.Size || !l.domain.Equal(other.domain) {
		return false
	}
	return slices.Equal(l.table.Data, other.table.Data)
}

func (l *LUT3D) String() string {
	return fmt.Sprintf("LUT3D %q, %d points per axis", l.Name, l.table.Size)
}

// tableEntry is one lattice point of a forward table, keyed for spatial
// search by its output colour.
type tableEntry struct {
	colour [3]float64
	source [3]float64
}

func (e tableEntry) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	return e.colour[d] - c.(tableEntry).colour[d]
}

func (e tableEntry) Dims() int { return 3 }

func (e tableEntry) Distance(c kdtree.Comparable) float64 {
	o := c.(tableEntry)
	var sum float64
	for i := 0; i < 3; i++ {
		d := e.colour[i] - o.colour[i]
		sum += d * d
	}
	return sum
}

type tableEntries []tableEntry

func (p tableEntries) Index(i int) kdtree.Comparable { return p[i] }
func (p tableEntries) Len() int                      { return len(p) }
func (p tableEntries) Slice(start, end int) kdtree.Interface {
	return p[start:end]
}
func (p tableEntries) Pivot(d kdtree.Dim) int {
	return entryPlane{entries: p, dim: d}.Pivot()
}

// entryPlane sorts tableEntries along one colour dimension, as required
// by the spatial index.
type entryPlane struct {
	entries tableEntries
	dim     kdtree.Dim
}

func (p entryPlane) Len() int { return len(p.entries) }
func (p entryPlane) Less(i, j int) bool {
	return p.entries[i].colour[p.dim] < p.entries[j].colour[p.dim]
}
func (p entryPlane) Swap(i, j int) {
	p.entries[i], p.entries[j] = p.entries[j], p.entries[i]
}
func (p entryPlane) Slice(start, end int) kdtree.SortSlicer {
	p.entries = p.entries[start:end]
	return p
}
func (p entryPlane) Pivot() int {
	return kdtree.Partition(p, kdtree.MedianOfMedians(p))
}
