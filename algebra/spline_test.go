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

func TestCubicSplineKnots(t *testing.T) {
	x := uniformX(len(testY), 0, 1)
	ip, err := NewCubicSplineInterpolator(x, testY)
	if err != nil {
		t.Fatal(err)
	}
	checkKnots(t, ip, x, testY, 1e-10)
}

func TestCubicSplineLinearData(t *testing.T) {
	x := []float64{0, 1, 3, 4, 7}
	y := make([]float64, len(x))
	for i, xi := range x {
		y[i] = 2*xi - 1
	}
	ip, err := NewCubicSplineInterpolator(x, y)
	if err != nil {
		t.Fatal(err)
	}
	for q := 0.0; q <= 7.0; q += 0.25 {
		got, err := ip.Evaluate(q)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(got-(2*q-1)) > 1e-10 {
			t.Errorf("Evaluate(%g) = %g, expected %g", q, got, 2*q-1)
		}
	}
}

func TestPchipKnots(t *testing.T) {
	x := uniformX(len(testY), 0, 1)
	ip, err := NewPchipInterpolator(x, testY)
	if err != nil {
		t.Fatal(err)
	}
	checkKnots(t, ip, x, testY, 1e-10)
}

// Pchip must not overshoot: between two samples the interpolant stays within
// the sample values, and monotone data yields a monotone curve.
func TestPchipShapePreservation(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4, 5}
	y := []float64{0, 0.1, 0.2, 5, 9.9, 10}
	ip, err := NewPchipInterpolator(x, y)
	if err != nil {
		t.Fatal(err)
	}
	prev := math.Inf(-1)
	for q := 0.0; q <= 5.0; q += 0.01 {
		got, err := ip.Evaluate(q)
		if err != nil {
			t.Fatal(err)
		}
		if got < prev-1e-12 {
			t.Fatalf("not monotone at %g: %g after %g", q, got, prev)
		}
		if got < -1e-12 || got > 10+1e-12 {
			t.Fatalf("overshoot at %g: %g", q, got)
		}
		prev = got
	}
}

func TestPchipTwoSamples(t *testing.T) {
	ip, err := NewPchipInterpolator([]float64{0, 2}, []float64{1, 5})
	if err != nil {
		t.Fatal(err)
	}
	got, err := ip.Evaluate(1)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got-3) > 1e-12 {
		t.Errorf("Evaluate(1) = %g, expected 3", got)
	}
}

func TestSpragueKnots(t *testing.T) {
	x := uniformX(len(testY), 340, 20)
	ip, err := NewSpragueInterpolator(x, testY)
	if err != nil {
		t.Fatal(err)
	}
	checkKnots(t, ip, x, testY, 1e-10)
}

// In intervals far enough from the ends that only real samples enter the
// window, the fifth-order formula reproduces low-degree polynomials exactly.
func TestSpraguePolynomialReproduction(t *testing.T) {
	poly := func(u float64) float64 {
		return 1 + u*(0.5-0.25*u)
	}
	n := 12
	x := uniformX(n, 0, 1)
	y := make([]float64, n)
	for i := range y {
		y[i] = poly(x[i])
	}
	ip, err := NewSpragueInterpolator(x, y)
	if err != nil {
		t.Fatal(err)
	}
	for q := 2.0; q <= float64(n-3); q += 0.1 {
		got, err := ip.Evaluate(q)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(got-poly(q)) > 1e-10 {
			t.Errorf("Evaluate(%g) = %g, expected %g", q, got, poly(q))
		}
	}
}

func TestSpragueValidation(t *testing.T) {
	if _, err := NewSpragueInterpolator(
		[]float64{0, 1, 2, 3, 4}, []float64{1, 2, 3, 4, 5}); err == nil {
		t.Error("five samples accepted")
	}
	if _, err := NewSpragueInterpolator(
		[]float64{0, 1, 2, 3, 4, 5.5},
		[]float64{1, 2, 3, 4, 5, 6}); err == nil {
		t.Error("non-uniform domain accepted")
	}
}
