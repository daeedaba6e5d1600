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
	"seehuhn.de/go/colour/algebra"
)

// ProcessNode is a single stage of a colour processing chain.  All lookup
// tables and the [Sequence] type implement this interface.
type ProcessNode interface {
	// Apply maps one colour triplet through the node.
	Apply(rgb [3]float64, opts *ApplyOptions) ([3]float64, error)
}

// Direction selects whether [ProcessNode.Apply] uses a table as-is or
// through its inverse.
type Direction int

const (
	// Forward applies the table directly.
	Forward Direction = iota

	// Inverse inverts the table first and applies the inverse.  For
	// three-dimensional tables the inverse is approximate.
	Inverse
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "Forward"
	case Inverse:
		return "Inverse"
	default:
		return "Unknown"
	}
}

// CurveMethod selects the one-dimensional interpolation used when
// applying [LUT1D] and [LUT3x1D] tables.
type CurveMethod int

const (
	// CurveLinear interpolates linearly between table samples.
	CurveLinear CurveMethod = iota

	// CurveCubicSpline fits a natural cubic spline through the table
	// samples.
	CurveCubicSpline
)

func (m CurveMethod) String() string {
	switch m {
	case CurveLinear:
		return "Linear"
	case CurveCubicSpline:
		return "Cubic Spline"
	default:
		return "Unknown"
	}
}

// ApplyOptions configures [ProcessNode.Apply].  A nil value applies the
// table forward with linear curve interpolation and trilinear table
// interpolation.
type ApplyOptions struct {
	// Direction selects forward or inverse application.
	Direction Direction

	// Curve selects the interpolation for one-dimensional tables.
	Curve CurveMethod

	// Table selects the interpolation for three-dimensional tables.
	Table algebra.TableMethod

	// Invert configures the inversion for Direction == Inverse.
	Invert *InvertOptions
}

// InvertOptions configures table inversion.
type InvertOptions struct {
	// QuerySize is the number of nearest table entries blended for each
	// inverse sample of a three-dimensional table.  Zero selects the
	// default of 3.
	QuerySize int

	// Extrapolate pads a three-dimensional table with linearly
	// extrapolated entries before inversion, improving accuracy near the
	// gamut boundary.
	Extrapolate bool
}

// Options carries the metadata of a new lookup table.
type Options struct {
	Name     string
	Comments []string
}

const defaultSize = 10

// curve fits a one-dimensional interpolator through the given samples and
// extends it linearly beyond the ends.
func curve(grid, table []float64, method CurveMethod) (*algebra.Extrapolator, error) {
	var ip algebra.Interpolator
	var err error
	switch method {
	case CurveLinear:
		ip, err = algebra.NewLinearInterpolator(grid, table)
	case CurveCubicSpline:
		ip, err = algebra.NewCubicSplineInterpolator(grid, table)
	default:
		return nil, newUsageError("Apply", "unknown curve method %d", int(method))
	}
	if err != nil {
		return nil, err
	}
	return algebra.NewExtrapolator(ip, &algebra.ExtrapolatorOptions{
		Method: algebra.ExtrapolationLinear,
	})
}

// fracIndex maps a domain value to a fractional sample index on a grid of
// increasing sample positions.  Values outside the grid are clamped.
func fracIndex(grid []float64, v float64) float64 {
	n := len(grid)
	if v <= grid[0] {
		return 0
	}
	if v >= grid[n-1] {
		return float64(n - 1)
	}
	lo := 0
	hi := n - 1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if grid[mid] <= v {
			lo = mid
		} else {
			hi = mid
		}
	}
	return float64(lo) + (v-grid[lo])/(grid[lo+1]-grid[lo])
}

// monotonicity classifies a table as strictly increasing (+1), strictly
// decreasing (-1), or neither (0).
func monotonicity(table []float64) int {
	inc, dec := true, true
	for i := 1; i < len(table); i++ {
		if table[i] <= table[i-1] {
			inc = false
		}
		if table[i] >= table[i-1] {
			dec = false
		}
	}
	switch {
	case inc:
		return 1
	case dec:
		return -1
	default:
		return 0
	}
}
