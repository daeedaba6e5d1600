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

// LUT1D applies a single tone curve to all three colour channels.
type LUT1D struct {
	Name     string
	Comments []string

	table  []float64
	domain Domain
}

// NewLUT1D creates a one-dimensional lookup table.  A nil table selects a
// linear ramp; a zero domain selects bounds [0, 1].
func NewLUT1D(table []float64, domain Domain, opts *Options) (*LUT1D, error) {
	if domain.IsZero() {
		domain = domainBoundsUniform(0, 1, 1)
	}
	if err := domain.validate("NewLUT1D", 1); err != nil {
		return nil, err
	}
	if table == nil {
		table = LinearTable1D(defaultSize, domain)
	}
	if len(table) < 2 {
		return nil, newUsageError("NewLUT1D",
			"at least 2 samples required, got %d", len(table))
	}
	if n := domain.GridLen(0); n != 0 && n != len(table) {
		return nil, newUsageError("NewLUT1D",
			"table has %d samples, explicit domain has %d", len(table), n)
	}
	l := &LUT1D{
		table:  slices.Clone(table),
		domain: domain.Copy(),
	}
	if opts != nil {
		l.Name = opts.Name
		l.Comments = slices.Clone(opts.Comments)
	}
	return l, nil
}

// LinearTable1D returns the identity ramp over the given domain.  For an
// explicit domain the stored sample positions are returned and size is
// ignored.
func LinearTable1D(size int, domain Domain) []float64 {
	return domain.Grid(0, size)
}

// Size returns the number of table samples.
func (l *LUT1D) Size() int {
	return len(l.table)
}

// Table returns a copy of the table values.
func (l *LUT1D) Table() []float64 {
	return slices.Clone(l.table)
}

// Domain returns a copy of the table's domain.
func (l *LUT1D) Domain() Domain {
	return l.domain.Copy()
}

// Apply maps one colour triplet through the table, applying the tone
// curve to each channel.
func (l *LUT1D) Apply(rgb [3]float64, opts *ApplyOptions) ([3]float64, error) {
	opts = applyDefaults(opts)
	if opts.Direction == Inverse {
		inv, err := l.Invert(opts.Invert)
		if err != nil {
			return [3]float64{}, err
		}
		return inv.Apply(rgb, forwardOpts(opts))
	}

	ex, err := curve(l.grid(), l.table, opts.Curve)
	if err != nil {
		return [3]float64{}, err
	}
	return applyCurve3(ex, ex, ex, rgb)
}

// ApplySlice maps a slice of colour triplets through the table.
func (l *LUT1D) ApplySlice(rgb [][3]float64, opts *ApplyOptions) ([][3]float64, error) {
	opts = applyDefaults(opts)
	if opts.Direction == Inverse {
		inv, err := l.Invert(opts.Invert)
		if err != nil {
			return nil, err
		}
		return inv.ApplySlice(rgb, forwardOpts(opts))
	}

	ex, err := curve(l.grid(), l.table, opts.Curve)
	if err != nil {
		return nil, err
	}
	res := make([][3]float64, len(rgb))
	for i, v := range rgb {
		out, err := applyCurve3(ex, ex, ex, v)
		if err != nil {
			return nil, err
		}
		res[i] = out
	}
	return res, nil
}

// Invert returns the inverse table, obtained by swapping sample positions
// and values.  The table must be strictly monotonic.
func (l *LUT1D) Invert(opts *InvertOptions) (*LUT1D, error) {
	grid, values, err := invertCurve("LUT1D.Invert", l.grid(), l.table)
	if err != nil {
		return nil, err
	}
	return NewLUT1D(values, DomainExplicit(grid), &Options{
		Name:     l.Name,
		Comments: l.Comments,
	})
}

// ArithmeticalOperation combines the table values with a scalar, a slice
// of per-sample values, or another table of the same size.  With inPlace
// the receiver is modified and returned; otherwise a new table is
// returned.
func (l *LUT1D) ArithmeticalOperation(value any, op algebra.Operation, inPlace bool) (*LUT1D, error) {
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
		res.table[i] = op.Apply(res.table[i], other(i))
	}
	return res, nil
}

func (l *LUT1D) operand(value any) (func(i int) float64, error) {
	switch v := value.(type) {
	case float64:
		return func(int) float64 { return v }, nil
	case []float64:
		if len(v) != len(l.table) {
			return nil, newUsageError("ArithmeticalOperation",
				"operand has %d samples, table has %d", len(v), len(l.table))
		}
		return func(i int) float64 { return v[i] }, nil
	case *LUT1D:
		if len(v.table) != len(l.table) || !v.domain.Equal(l.domain) {
			return nil, newUsageError("ArithmeticalOperation",
				"operand table shape does not match")
		}
		return func(i int) float64 { return v.table[i] }, nil
	default:
		return nil, newUsageError("ArithmeticalOperation",
			"unsupported operand type %T", value)
	}
}

// Copy returns an independent copy of the table.
func (l *LUT1D) Copy() *LUT1D {
	return &LUT1D{
		Name:     l.Name,
		Comments: slices.Clone(l.Comments),
		table:    slices.Clone(l.table),
		domain:   l.domain.Copy(),
	}
}

// Equal reports whether two tables have the same values and domain.  The
// name and comments do not participate in the comparison.
func (l *LUT1D) Equal(other *LUT1D) bool {
	return slices.Equal(l.table, other.table) && l.domain.Equal(other.domain)
}

func (l *LUT1D) String() string {
	low, high := l.domain.LowHigh(0)
	return fmt.Sprintf("LUT1D %q, %d samples, domain [%g, %g]",
		l.Name, len(l.table), low, high)
}

func (l *LUT1D) grid() []float64 {
	return l.domain.Grid(0, len(l.table))
}

// invertCurve swaps the sample positions and values of a strictly
// monotonic curve, reordering to an increasing grid.
func invertCurve(op string, grid, table []float64) (newGrid, newValues []float64, err error) {
	switch monotonicity(table) {
	case 1:
		return slices.Clone(table), slices.Clone(grid), nil
	case -1:
		newGrid = slices.Clone(table)
		newValues = slices.Clone(grid)
		slices.Reverse(newGrid)
		slices.Reverse(newValues)
		return newGrid, newValues, nil
	default:
		return nil, nil, newUsageError(op, "table is not strictly monotonic")
	}
}

func applyCurve3(r, g, b *algebra.Extrapolator, rgb [3]float64) ([3]float64, error) {
	var res [3]float64
	curves := [3]*algebra.Extrapolator{r, g, b}
	for c, ex := range curves {
		y, err := ex.Evaluate(rgb[c])
		if err != nil {
			return [3]float64{}, err
		}
		res[c] = y
	}
	return res, nil
}

func applyDefaults(opts *ApplyOptions) *ApplyOptions {
	if opts == nil {
		return &ApplyOptions{}
	}
	return opts
}

func forwardOpts(opts *ApplyOptions) *ApplyOptions {
	o := *opts
	o.Direction = Forward
	return &o
}
