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
	"github.com/aclements/go-moremath/vec"

	"seehuhn.de/go/colour/algebra"
)

// Kind names one of the three lookup table kinds.
type Kind int

const (
	// Kind1D is a single tone curve.
	Kind1D Kind = iota

	// Kind3x1D is one tone curve per channel.
	Kind3x1D

	// Kind3D is a cubic lattice.
	Kind3D
)

func (k Kind) String() string {
	switch k {
	case Kind1D:
		return "LUT1D"
	case Kind3x1D:
		return "LUT3x1D"
	case Kind3D:
		return "LUT3D"
	default:
		return "Unknown"
	}
}

// ConvertOptions configures [LUTToLUT].
type ConvertOptions struct {
	// ForceConversion permits conversions which lose information, for
	// example reducing a lattice to a tone curve.
	ForceConversion bool

	// Size is the sample count of the converted table.  Zero keeps the
	// source table's size.
	Size int

	// ChannelWeights combines three channels into one when reducing to a
	// single tone curve.  A nil value weights all channels equally.
	ChannelWeights *[3]float64

	// Curve selects the interpolation used when resampling tone curves.
	Curve CurveMethod

	// Table selects the interpolation used when resampling lattices.
	Table algebra.TableMethod
}

// LUTToLUT converts a lookup table to the given target kind.
//
// Without ForceConversion only lossless conversions are permitted:
// conversion of a table to its own kind, and broadcasting a single tone
// curve to one curve per channel.  All other conversions approximate the
// source table by sampling it and require ForceConversion.
func LUTToLUT(src ProcessNode, target Kind, opts *ConvertOptions) (ProcessNode, error) {
	if opts == nil {
		opts = &ConvertOptions{}
	}
	weights := [3]float64{1.0 / 3, 1.0 / 3, 1.0 / 3}
	if opts.ChannelWeights != nil {
		weights = *opts.ChannelWeights
	}

	switch l := src.(type) {
	case *LUT1D:
		switch target {
		case Kind1D:
			return resample1D(l, opts)
		case Kind3x1D:
			return broadcast1D(l)
		case Kind3D:
			if !opts.ForceConversion {
				return nil, conversionError(Kind1D, target)
			}
			return sampleTo3D(l, l.domain.Copy(), sizeOr(opts, l.Size()), opts)
		}
	case *LUT3x1D:
		switch target {
		case Kind3x1D:
			return resample3x1D(l, opts)
		case Kind1D:
			if !opts.ForceConversion {
				return nil, conversionError(Kind3x1D, target)
			}
			return reduce3x1D(l, weights, opts)
		case Kind3D:
			if !opts.ForceConversion {
				return nil, conversionError(Kind3x1D, target)
			}
			return sampleTo3D(l, l.domain.Copy(), sizeOr(opts, l.Size()), opts)
		}
	case *LUT3D:
		switch target {
		case Kind3D:
			return resample3D(l, opts)
		case Kind3x1D:
			if !opts.ForceConversion {
				return nil, conversionError(Kind3D, target)
			}
			return sample3DTo3x1D(l, sizeOr(opts, l.Size()), opts)
		case Kind1D:
			if !opts.ForceConversion {
				return nil, conversionError(Kind3D, target)
			}
			return sample3DTo1D(l, weights, sizeOr(opts, l.Size()), opts)
		}
	default:
		return nil, newUsageError("LUTToLUT",
			"unsupported source type %T", src)
	}
	return nil, newUsageError("LUTToLUT", "unknown target kind %d", int(target))
}

func conversionError(from, to Kind) error {
	return newUsageError("LUTToLUT",
		"conversion %v to %v requires ForceConversion", from, to)
}

func sizeOr(opts *ConvertOptions, def int) int {
	if opts.Size > 0 {
		return opts.Size
	}
	return def
}

func resample1D(l *LUT1D, opts *ConvertOptions) (*LUT1D, error) {
	size := sizeOr(opts, l.Size())
	if size == l.Size() {
		return l.Copy(), nil
	}
	low, high := l.domain.LowHigh(0)
	domain := DomainBounds([2]float64{low, high})
	grid := vec.Linspace(low, high, size)
	ex, err := curve(l.grid(), l.table, opts.Curve)
	if err != nil {
		return nil, err
	}
	table, err := ex.EvaluateSlice(grid)
	if err != nil {
		return nil, err
	}
	return NewLUT1D(table, domain, &Options{Name: l.Name, Comments: l.Comments})
}

func broadcast1D(l *LUT1D) (*LUT3x1D, error) {
	table := make([][3]float64, l.Size())
	for i, v := range l.table {
		table[i] = [3]float64{v, v, v}
	}
	var domain Domain
	if l.domain.IsExplicit() {
		g := l.domain.Grid(0, l.Size())
		domain = DomainExplicit(g, g, g)
	} else {
		low, high := l.domain.LowHigh(0)
		domain = domainBoundsUniform(low, high, 3)
	}
	return NewLUT3x1D(table, domain, &Options{Name: l.Name, Comments: l.Comments})
}

func resample3x1D(l *LUT3x1D, opts *ConvertOptions) (*LUT3x1D, error) {
	size := sizeOr(opts, l.Size())
	if size == l.Size() {
		return l.Copy(), nil
	}
	table := make([][3]float64, size)
	bounds := make([][2]float64, 3)
	for c := 0; c < 3; c++ {
		grid, values := l.channel(c)
		low, high := grid[0], grid[len(grid)-1]
		bounds[c] = [2]float64{low, high}
		ex, err := curve(grid, values, opts.Curve)
		if err != nil {
			return nil, err
		}
		resampled, err := ex.EvaluateSlice(vec.Linspace(low, high, size))
		if err != nil {
			return nil, err
		}
		for i, v := range resampled {
			table[i][c] = v
		}
	}
	return NewLUT3x1D(table, DomainBounds(bounds...),
		&Options{Name: l.Name, Comments: l.Comments})
}

// reduce3x1D combines the three channel curves into a single curve as a
// weighted sum, applying the same weights to the domain bounds.
func reduce3x1D(l *LUT3x1D, weights [3]float64, opts *ConvertOptions) (*LUT1D, error) {
	rows := l.Size()
	table := make([]float64, rows)
	for i := 0; i < rows; i++ {
		for c := 0; c < 3; c++ {
			table[i] += weights[c] * l.table[i][c]
		}
	}
	var low, high float64
	for c := 0; c < 3; c++ {
		lo, hi := l.domain.LowHigh(c)
		low += weights[c] * lo
		high += weights[c] * hi
	}
	reduced, err := NewLUT1D(table, DomainBounds([2]float64{low, high}),
		&Options{Name: l.Name, Comments: l.Comments})
	if err != nil {
		return nil, err
	}
	return resample1D(reduced, opts)
}

// sampleTo3D builds a lattice by mapping every lattice point of an
// identity lattice through the source node.
func sampleTo3D(src ProcessNode, domain Domain, size int, opts *ConvertOptions) (*LUT3D, error) {
	var bounds [3][2]float64
	for c := 0; c < 3; c++ {
		var low, high float64
		if domain.Channels() == 1 {
			low, high = domain.LowHigh(0)
		} else {
			low, high = domain.LowHigh(c)
		}
		bounds[c] = [2]float64{low, high}
	}
	domain3 := DomainBounds(bounds[0], bounds[1], bounds[2])

	table, err := LinearTable3D(size, domain3)
	if err != nil {
		return nil, err
	}
	fwd := &ApplyOptions{Curve: opts.Curve, Table: opts.Table}
	for r := 0; r < size; r++ {
		for g := 0; g < size; g++ {
			for b := 0; b < size; b++ {
				out, err := src.Apply(table.At(r, g, b), fwd)
				if err != nil {
					return nil, err
				}
				table.Set(r, g, b, out)
			}
		}
	}
	name, comments := metadata(src)
	return NewLUT3D(table, domain3, &Options{Name: name, Comments: comments})
}

// sample3DTo3x1D samples the lattice along per-channel ramps.
func sample3DTo3x1D(l *LUT3D, size int, opts *ConvertOptions) (*LUT3x1D, error) {
	var grids [3][]float64
	bounds := make([][2]float64, 3)
	for c := 0; c < 3; c++ {
		low, high := l.domain.LowHigh(c)
		bounds[c] = [2]float64{low, high}
		grids[c] = vec.Linspace(low, high, size)
	}
	fwd := &ApplyOptions{Table: opts.Table}
	table := make([][3]float64, size)
	for i := 0; i < size; i++ {
		out, err := l.Apply([3]float64{grids[0][i], grids[1][i], grids[2][i]}, fwd)
		if err != nil {
			return nil, err
		}
		table[i] = out
	}
	return NewLUT3x1D(table, DomainBounds(bounds...),
		&Options{Name: l.Name, Comments: l.Comments})
}

// sample3DTo1D samples the lattice along the grey axis and combines the
// output channels as a weighted sum.
func sample3DTo1D(l *LUT3D, weights [3]float64, size int, opts *ConvertOptions) (*LUT1D, error) {
	var low, high float64
	for c := 0; c < 3; c++ {
		lo, hi := l.domain.LowHigh(c)
		low += weights[c] * lo
		high += weights[c] * hi
	}
	grid := vec.Linspace(low, high, size)
	fwd := &ApplyOptions{Table: opts.Table}
	table := make([]float64, size)
	for i, v := range grid {
		out, err := l.Apply([3]float64{v, v, v}, fwd)
		if err != nil {
			return nil, err
		}
		for c := 0; c < 3; c++ {
			table[i] += weights[c] * out[c]
		}
	}
	return NewLUT1D(table, DomainBounds([2]float64{low, high}),
		&Options{Name: l.Name, Comments: l.Comments})
}

func resample3D(l *LUT3D, opts *ConvertOptions) (*LUT3D, error) {
	size := sizeOr(opts, l.Size())
	if size == l.Size() {
		return l.Copy(), nil
	}
	return sampleTo3D(l, l.domain.Copy(), size, opts)
}

func metadata(node ProcessNode) (string, []string) {
	switch l := node.(type) {
	case *LUT1D:
		return l.Name, l.Comments
	case *LUT3x1D:
		return l.Name, l.Comments
	case *LUT3D:
		return l.Name, l.Comments
	default:
		return "", nil
	}
}
