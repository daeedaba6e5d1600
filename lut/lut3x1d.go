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

	"golang.org/x/exp/slices"

	"seehuhn.de/go/colour/algebra"
)

// LUT3x1D applies an independent tone curve to each colour channel.
//
// With an explicit domain the per-channel sample counts may differ; the
// table then holds the longest channel's count of rows, and shorter
// channels use only their leading rows.
type LUT3x1D struct {
	Name     string
	Comments []string

	table  [][3]float64
	domain Domain
}

// NewLUT3x1D creates a lookup table with one curve per channel.  A nil
// table selects linear ramps; a zero domain selects bounds [0, 1] for
// all channels.
func NewLUT3x1D(table [][3]float64, domain Domain, opts *Options) (*LUT3x1D, error) {
	if domain.IsZero() {
		domain = domainBoundsUniform(0, 1, 3)
	}
	if err := domain.validate("NewLUT3x1D", 3); err != nil {
		return nil, err
	}
	if table == nil {
		table = LinearTable3x1D(defaultSize, domain)
	}
	if len(table) < 2 {
		return nil, newUsageError("NewLUT3x1D",
			"at least 2 samples required, got %d", len(table))
	}
	for c := 0; c < 3; c++ {
		if n := domain.GridLen(c); n != 0 && n > len(table) {
			return nil, newUsageError("NewLUT3x1D",
				"table has %d samples, channel %d domain has %d",
				len(table), c, n)
		}
	}
	l := &LUT3x1D{
		table:  slices.Clone(table),
		domain: domain.Copy(),
	}
	if opts != nil {
		l.Name = opts.Name
		l.Comments = slices.Clone(opts.Comments)
	}
	return l, nil
}

// LinearTable3x1D returns identity ramps over the given domain, one per
// channel.  For an explicit domain the per-channel sample positions are
// used and size is ignored.
func LinearTable3x1D(size int, domain Domain) [][3]float64 {
	var grids [3][]float64
	rows := 0
	for c := 0; c < 3; c++ {
		grids[c] = domain.Grid(c, size)
		rows = max(rows, len(grids[c]))
	}
	table := make([][3]float64, rows)
	for c := 0; c < 3; c++ {
		for i, v := range grids[c] {
			table[i][c] = v
		}
		// Shorter channels repeat their last value.
		for i := len(grids[c]); i < rows; i++ {
			table[i][c] = grids[c][len(grids[c])-1]
		}
	}
	return table
}

// Size returns the number of table rows.
func (l *LUT3x1D) Size() int {
	return len(l.table)
}

// Table returns a copy of the table values.
func (l *LUT3x1D) Table() [][3]float64 {
	return slices.Clone(l.table)
}

// Domain returns a copy of the table's domain.
func (l *LUT3x1D) Domain() Domain {
	return l.domain.Copy()
}

// channel returns the sample positions and values of one channel's
// curve.
func (l *LUT3x1D) channel(c int) (grid, values []float64) {
	grid = l.domain.Grid(c, len(l.table))
	values = make([]float64, len(grid))
	for i := range grid {
		values[i] = l.table[i][c]
	}
	return grid, values
}

func (l *LUT3x1D) curves(method CurveMethod) ([3]*algebra.Extrapolator, error) {
	var res [3]*algebra.Extrapolator
	for c := 0; c < 3; c++ {
		grid, values := l.channel(c)
		ex, err := curve(grid, values, method)
		if err != nil {
			return res, err
		}
		res[c] = ex
	}
	return res, nil
}

// Apply maps one colour triplet through the table.
func (l *LUT3x1D) Apply(rgb [3]float64, opts *ApplyOptions) ([3]float64, error) {
	opts = applyDefaults(opts)
	if opts.Direction == Inverse {
		inv, err := l.Invert(opts.Invert)
		if err != nil {
			return [3]float64{}, err
		}
		return inv.Apply(rgb, forwardOpts(opts))
	}

	cs, err := l.curves(opts.Curve)
	if err != nil {
		return [3]float64{}, err
	}
	return applyCurve3(cs[0], cs[1], cs[2], rgb)
}

// ApplySlice maps a slice of colour triplets through the table.
func (l *LUT3x1D) ApplySlice(rgb [][3]float64, opts *ApplyOptions) ([][3]float64, error) {
	opts = applyDefaults(opts)
	if opts.Direction == Inverse {
		inv, err := l.Invert(opts.Invert)
		if err != nil {
			return nil, err
		}
		return inv.ApplySlice(rgb, forwardOpts(opts))
	}

	cs, err := l.curves(opts.Curve)
	if err != nil {
		return nil, err
	}
	res := make([][3]float64, len(rgb))
	for i, v := range rgb {
		out, err := applyCurve3(cs[0], cs[1], cs[2], v)
		if err != nil {
			return nil, err
		}
		res[i] = out
	}
	return res, nil
}

// Invert returns the inverse table, obtained by swapping sample positions
// and values per channel.  All three curves must be strictly monotonic.
func (l *LUT3x1D) Invert(opts *InvertOptions) (*LUT3x1D, error) {
	var grids [3][]float64
	var values [3][]float64
	for c := 0; c < 3; c++ {
		grid, vals := l.channel(c)
		g, v, err := invertCurve("LUT3x1D.Invert", grid, vals)
		if err != nil {
			return nil, err
		}
		grids[c] = g
		values[c] = v
	}
	rows := max(len(values[0]), len(values[1]), len(values[2]))
	table := make([][3]float64, rows)
	for c := 0; c < 3; c++ {
		for i := range values[c] {
			table[i][c] = values[c][i]
		}
		for i := len(values[c]); i < rows; i++ {
			table[i][c] = values[c][len(values[c])-1]
		}
	}
	return NewLUT3x1D(table, DomainExplicit(grids[0], grids[1], grids[2]),
		&Options{Name: l.Name, Comments: l.Comments})
}

// ArithmeticalOperation combines the table values with a scalar, a table
// of per-row triplets, or another table of the same shape.  With inPlace
// the receiver is modified and returned; otherwise a new table is
// returned.
func (l *LUT3x1D) ArithmeticalOperation(value any, op algebra.Operation, inPlace bool) (*LUT3x1D, error) {
	if !op.IsValid() {
		return nil, newUsageError("ArithmeticalOperation",
			"unknown operation %d", int(op))
	}
	other, err := l.operand(value)
	if err != nil {
		return nil, err
	}
	res := l
	if !inPlace {
		res = l.Copy()
	}
	for i := range res.table {
		for c := 0; c < 3; c++ {
			res.table[i][c] = op.Apply(res.table[i][c], other(i, c))
		}
	}
	return res, nil
}

func (l *LUT3x1D) operand(value any) (func(i, c int) float64, error) {
	switch v := value.(type) {
	case float64:
		return func(int, int) float64 { return v }, nil
	case [][3]float64:
		if len(v) != len(l.table) {
			return nil, newUsageError("ArithmeticalOperation",
				"operand has %d rows, table has %d", len(v), len(l.table))
		}
		return func(i, c int) float64 { return v[i][c] }, nil
	case *LUT3x1D:
		if len(v.table) != len(l.table) || !v.domain.Equal(l.domain) {
			return nil, newUsageError("ArithmeticalOperation",
				"operand table shape does not match")
		}
		return func(i, c int) float64 { return v.table[i][c] }, nil
	default:
		return nil, newUsageError("ArithmeticalOperation",
			"unsupported operand type %T", value)
	}
}

// Copy returns an independent copy of the table.
func (l *LUT3x1D) Copy() *LUT3x1D {
	return &LUT3x1D{
		Name:     l.Name,
		Comments: slices.Clone(l.Comments),
		table:    slices.Clone(l.table),
		domain:   l.domain.Copy(),
	}
}

// Equal reports whether two tables have the same values and domain.  The
// name and comments do not participate in the comparison.
func (l *LUT3x1D) Equal(other *LUT3x1D) bool {
	return slices.Equal(l.table, other.table) && l.domain.Equal(other.domain)
}

func (l *LUT3x1D) String() string {
	return fmt.Sprintf("LUT3x1D %q, %d samples", l.Name, len(l.table))
}
