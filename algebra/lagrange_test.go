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

import (
	"math"
	"testing"
)

func TestLagrangeCoefficients(t *testing.T) {
	// At a stencil knot the matching basis polynomial is 1 and all others
	// vanish.
	for n := 2; n <= 4; n++ {
		for k := 0; k < n; k++ {
			coeffs := LagrangeCoefficients(float64(k), n)
			for j, c := range coeffs {
				expected := 0.0
				if j == k {
					expected = 1
				}
				if math.Abs(c-expected) > 1e-12 {
					t.Errorf("n=%d r=%d: coeffs[%d] = %g, expected %g",
						n, k, j, c, expected)
				}
			}
		}
	}

	// The basis polynomials form a partition of unity, and reproduce
	// linear functions of the stencil index.
	for _, r := range []float64{0.1, 0.5, 1.3, 2.9} {
		coeffs := LagrangeCoefficients(r, 4)
		var sum, moment float64
		for j, c := range coeffs {
			sum += c
			moment += c * float64(j)
		}
		if math.Abs(sum-1) > 1e-12 {
			t.Errorf("r=%g: coefficients sum to %g", r, sum)
		}
		if math.Abs(moment-r) > 1e-12 {
			t.Errorf("r=%g: first moment is %g", r, moment)
		}
	}
}

func TestLagrangeCoefficientsASTME2022(t *testing.T) {
	for _, mode := range []BoundaryMode{Inner, Boundary} {
		t.Run(mode.String(), func(t *testing.T) {
			coeffs, err := LagrangeCoefficientsASTME2022(10, mode)
			if err != nil {
				t.Fatal(err)
			}
			if len(coeffs) != 9 {
				t.Fatalf("got %d rows, expected 9", len(coeffs))
			}
			cols := 3
			if mode == Inner {
				cols = 4
			}
			for i, row := range coeffs {
				if len(row) != cols {
					t.Fatalf("row %d has %d columns, expected %d",
						i, len(row), cols)
				}
				var sum float64
				for _, c := range row {
					sum += c
				}
				if math.Abs(sum-1) > 1e-12 {
					t.Errorf("row %d sums to %g", i, sum)
				}
			}
		})
	}
}

// The cache must hand out private copies: mutating a returned matrix must
// not affect later calls.
func TestLagrangeCoefficientsCacheIsolation(t *testing.T) {
	first, err := LagrangeCoefficientsASTME2022(5, Inner)
	if err != nil {
		t.Fatal(err)
	}
	saved := first[0][0]
	first[0][0] = 1e6

	second, err := LagrangeCoefficientsASTME2022(5, Inner)
	if err != nil {
		t.Fatal(err)
	}
	if second[0][0] != saved {
		t.Errorf("cache was corrupted: got %g, expected %g",
			second[0][0], saved)
	}
}

func TestLagrangeCoefficientsValidation(t *testing.T) {
	if _, err := LagrangeCoefficientsASTME2022(1, Inner); err == nil {
		t.Error("interval 1 accepted")
	}
	if _, err := LagrangeCoefficientsASTME2022(10, BoundaryMode(7)); err == nil {
		t.Error("unknown mode accepted")
	}
}
