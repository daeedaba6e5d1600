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

import "sync"

// LagrangeCoefficients returns the values of the n Lagrange basis
// polynomials for the stencil 0, 1, ..., n-1 evaluated at r.
func LagrangeCoefficients(r float64, n int) []float64 {
	coeffs := make([]float64, n)
	for j := 0; j < n; j++ {
		basis := 1.0
		for i := 0; i < n; i++ {
			if i == j {
				continue
			}
			basis *= (r - float64(i)) / float64(j-i)
		}
		coeffs[j] = basis
	}
	return coeffs
}

// BoundaryMode selects the stencil of [LagrangeCoefficientsASTME2022].
type BoundaryMode int

const (
	// Inner uses the four-point stencil for interior measurement
	// intervals.
	Inner BoundaryMode = iota

	// Boundary uses the three-point stencil for the first and last
	// measurement intervals.
	Boundary
)

func (m BoundaryMode) String() string {
	switch m {
	case Inner:
		return "Inner"
	case Boundary:
		return "Boundary"
	default:
		return "Unknown"
	}
}

type lagrangeKey struct {
	interval int
	mode     BoundaryMode
}

var lagrangeCache = struct {
	sync.Mutex
	m map[lagrangeKey][][]float64
}{m: make(map[lagrangeKey][][]float64)}

// LagrangeCoefficientsASTME2022 computes the Lagrange interpolation
// coefficients of practice ASTM E2022-11 for the given measurement interval
// in nanometres.  The result has interval-1 rows, one per interpolated
// wavelength within a measurement interval, and four (Inner) or three
// (Boundary) columns, one per stencil knot.
//
// The coefficient matrices are pure functions of the two arguments and are
// cached; the returned matrix is a private copy which the caller may
// modify freely.
func LagrangeCoefficientsASTME2022(interval int, mode BoundaryMode) ([][]float64, error) {
	const fn = "LagrangeCoefficientsASTME2022"
	if interval < 2 {
		return nil, newArgumentError(fn, "interval",
			"must be at least 2, got %d", interval)
	}
	if mode != Inner && mode != Boundary {
		return nil, newArgumentError(fn, "mode", "unknown mode %d", int(mode))
	}

	key := lagrangeKey{interval: interval, mode: mode}

	lagrangeCache.Lock()
	defer lagrangeCache.Unlock()

	coeffs, ok := lagrangeCache.m[key]
	if !ok {
		n := 3
		shift := 0.0
		if mode == Inner {
			n = 4
			shift = 1
		}
		coeffs = make([][]float64, interval-1)
		for i := 1; i < interval; i++ {
			r := float64(i)/float64(interval) + shift
			coeffs[i-1] = LagrangeCoefficients(r, n)
		}
		lagrangeCache.m[key] = coeffs
	}

	return copyMatrix(coeffs), nil
}

func copyMatrix(m [][]float64) [][]float64 {
	res := make([][]float64, len(m))
	for i, row := range m {
		res[i] = make([]float64, len(row))
		copy(res[i], row)
	}
	return res
}
