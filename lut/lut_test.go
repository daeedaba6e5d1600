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
	"errors"
	"math"
	"testing"

	"seehuhn.de/go/colour/algebra"
)

func checkTriplet(t *testing.T, got, want [3]float64, tol float64) {
	t.Helper()
	for c := 0; c < 3; c++ {
		if math.Abs(got[c]-want[c]) > tol {
			t.Errorf("channel %d: got %g, expected %g", c, got[c], want[c])
			return
		}
	}
}

func TestLUT1DDefaults(t *testing.T) {
	l, err := NewLUT1D(nil, Domain{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if l.Size() != 10 {
		t.Errorf("default size %d, expected 10", l.Size())
	}
	low, high := l.Domain().LowHigh(0)
	if low != 0 || high != 1 {
		t.Errorf("default domain [%g, %g]", low, high)
	}

	// The default table is the identity.
	got, err := l.Apply([3]float64{0.3, 0.5, 0.7}, nil)
	if err != nil {
		t.Fatal(err)
	}
	checkTriplet(t, got, [3]float64{0.3, 0.5, 0.7}, 1e-12)
}

func TestLUT1DApply(t *testing.T) {
	l, err := NewLUT1D([]float64{0, 0.1, 0.3, 0.6, 1}, Domain{}, nil)
	if err != nil {
		t.Fatal(err)
	}

	// Knots are reproduced exactly, intermediate values linearly.
	got, err := l.Apply([3]float64{0.25, 0.125, 0.5}, nil)
	if err != nil {
		t.Fatal(err)
	}
	checkTriplet(t, got, [3]float64{0.1, 0.05, 0.3}, 1e-12)

	// Inputs beyond the domain extend the boundary segment.
	got, err = l.Apply([3]float64{1.25, 0.5, 0.5}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got[0]-1.4) > 1e-12 {
		t.Errorf("extrapolated value %g, expected 1.4", got[0])
	}
}

func TestLUT1DInvert(t *testing.T) {
	l, err := NewLUT1D([]float64{0, 0.1, 0.3, 0.6, 1}, Domain{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	inv, err := l.Invert(nil)
	if err != nil {
		t.Fatal(err)
	}
	if !inv.Domain().IsExplicit() {
		t.Error("inverse domain is not explicit")
	}

	// The inverse of a piecewise linear curve is exact.
	for _, x := range []float64{0, 0.2, 0.55, 0.8, 1} {
		y, err := l.Apply([3]float64{x, x, x}, nil)
		if err != nil {
			t.Fatal(err)
		}
		back, err := inv.Apply(y, nil)
		if err != nil {
			t.Fatal(err)
		}
		checkTriplet(t, back, [3]float64{x, x, x}, 1e-12)
	}

	// Direction Inverse matches explicit inversion.
	y, err := l.Apply([3]float64{0.4, 0.4, 0.4}, nil)
	if err != nil {
		t.Fatal(err)
	}
	back, err := l.Apply(y, &ApplyOptions{Direction: Inverse})
	if err != nil {
		t.Fatal(err)
	}
	checkTriplet(t, back, [3]float64{0.4, 0.4, 0.4}, 1e-12)
}

func TestLUT1DInvertDecreasing(t *testing.T) {
	l, err := NewLUT1D([]float64{1, 0.6, 0.3, 0.1, 0}, Domain{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	inv, err := l.Invert(nil)
	if err != nil {
		t.Fatal(err)
	}
	y, err := l.Apply([3]float64{0.4, 0.4, 0.4}, nil)
	if err != nil {
		t.Fatal(err)
	}
	back, err := inv.Apply(y, nil)
	if err != nil {
		t.Fatal(err)
	}
	checkTriplet(t, back, [3]float64{0.4, 0.4, 0.4}, 1e-12)
}

func TestLUT1DInvertNonMonotonic(t *testing.T) {
	l, err := NewLUT1D([]float64{0, 0.5, 0.3, 1}, Domain{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	_, err = l.Invert(nil)
	var usageErr *UsageError
	if !errors.As(err, &usageErr) {
		t.Errorf("got %v, expected a usage error", err)
	}
}

func TestLUT1DArithmetic(t *testing.T) {
	l, err := NewLUT1D([]float64{0, 0.25, 0.5, 0.75, 1}, Domain{}, nil)
	if err != nil {
		t.Fatal(err)
	}

	shifted, err := l.ArithmeticalOperation(2.0, algebra.Addition, false)
	if err != nil {
		t.Fatal(err)
	}
	if shifted.Table()[0] != 2 {
		t.Errorf("shifted table starts at %g", shifted.Table()[0])
	}
	if l.Table()[0] != 0 {
		t.Error("operation without inPlace modified the receiver")
	}

	zero, err := l.ArithmeticalOperation(l.Copy(), algebra.Subtraction, false)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range zero.Table() {
		if v != 0 {
			t.Errorf("sample %d: %g after self-subtraction", i, v)
		}
	}

	if _, err := l.ArithmeticalOperation([]float64{1, 2}, algebra.Addition, false); err == nil {
		t.Error("mismatched operand length accepted")
	}

	res, err := l.ArithmeticalOperation(3.0, algebra.Multiplication, true)
	if err != nil {
		t.Fatal(err)
	}
	if res != l {
		t.Error("inPlace operation did not return the receiver")
	}
	if l.Table()[4] != 3 {
		t.Errorf("inPlace operation not applied, got %g", l.Table()[4])
	}
}

func TestLUT1DEqual(t *testing.T) {
	a, err := NewLUT1D([]float64{0, 0.5, 1}, Domain{}, &Options{Name: "a"})
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewLUT1D([]float64{0, 0.5, 1}, Domain{}, &Options{
		Name:     "b",
		Comments: []string{"different"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if !a.Equal(b) {
		t.Error("tables differing only in metadata compare unequal")
	}

	c := a.Copy()
	if _, err := c.ArithmeticalOperation(1.0, algebra.Addition, true); err != nil {
		t.Fatal(err)
	}
	if a.Equal(c) {
		t.Error("tables with different values compare equal")
	}
	if a.Table()[0] != 0 {
		t.Error("Copy shares state with the original")
	}
}

func TestLUT3x1DApply(t *testing.T) {
	// Identity, doubling, and inversion curves per channel.
	table := make([][3]float64, 5)
	for i := range table {
		v := float64(i) / 4
		table[i] = [3]float64{v, 2 * v, 1 - v}
	}
	l, err := NewLUT3x1D(table, Domain{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	got, err := l.Apply([3]float64{0.5, 0.5, 0.5}, nil)
	if err != nil {
		t.Fatal(err)
	}
	checkTriplet(t, got, [3]float64{0.5, 1.0, 0.5}, 1e-12)

	got, err = l.Apply([3]float64{0.25, 0.75, 1}, nil)
	if err != nil {
		t.Fatal(err)
	}
	checkTriplet(t, got, [3]float64{0.25, 1.5, 0}, 1e-12)
}

func TestLUT3x1DInvert(t *testing.T) {
	table := make([][3]float64, 5)
	for i := range table {
		v := float64(i) / 4
		table[i] = [3]float64{v * v, 2 * v, 1 - v}
	}
	l, err := NewLUT3x1D(table, Domain{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	in := [3]float64{0.4, 0.6, 0.3}
	y, err := l.Apply(in, nil)
	if err != nil {
		t.Fatal(err)
	}
	back, err := l.Apply(y, &ApplyOptions{Direction: Inverse})
	if err != nil {
		t.Fatal(err)
	}
	checkTriplet(t, back, in, 1e-12)
}

func TestLUT3x1DExplicitRagged(t *testing.T) {
	domain := DomainExplicit(
		[]float64{0, 0.5, 1},
		[]float64{0, 0.25, 0.5, 0.75, 1},
		[]float64{0, 1},
	)
	l, err := NewLUT3x1D(nil, domain, nil)
	if err != nil {
		t.Fatal(err)
	}
	if l.Size() != 5 {
		t.Fatalf("got %d rows, expected 5", l.Size())
	}
	if !l.Domain().IsExplicit() {
		t.Error("domain is not explicit")
	}

	// The ragged identity still maps points to themselves.
	got, err := l.Apply([3]float64{0.3, 0.7, 0.9}, nil)
	if err != nil {
		t.Fatal(err)
	}
	checkTriplet(t, got, [3]float64{0.3, 0.7, 0.9}, 1e-12)
}

func TestDomainValidation(t *testing.T) {
	cases := []Domain{
		DomainBounds([2]float64{1, 0}),
		DomainBounds([2]float64{0, 0}),
		DomainExplicit([]float64{0.5}),
		DomainExplicit([]float64{0, 0.5, 0.5, 1}),
	}
	for i, d := range cases {
		if _, err := NewLUT1D(nil, d, nil); err == nil {
			t.Errorf("case %d: invalid domain accepted", i)
		}
	}

	// Channel count must match the table kind.
	if _, err := NewLUT1D(nil, domainBoundsUniform(0, 1, 3), nil); err == nil {
		t.Error("3-channel domain accepted for LUT1D")
	}
	if _, err := NewLUT3x1D(nil, DomainBounds([2]float64{0, 1}), nil); err == nil {
		t.Error("1-channel domain accepted for LUT3x1D")
	}
}

func TestDomainEqual(t *testing.T) {
	a := DomainBounds([2]float64{0, 1}, [2]float64{0, 1}, [2]float64{0, 1})
	b := domainBoundsUniform(0, 1, 3)
	if !a.Equal(b) {
		t.Error("identical bounds domains compare unequal")
	}
	c := DomainExplicit([]float64{0, 1}, []float64{0, 1}, []float64{0, 1})
	if a.Equal(c) {
		t.Error("bounds and explicit domains compare equal")
	}
}

func TestSequence(t *testing.T) {
	double, err := NewLUT1D([]float64{0, 2}, Domain{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	shift, err := NewLUT1D([]float64{1, 3}, Domain{}, nil)
	if err != nil {
		t.Fatal(err)
	}

	seq := NewSequence(double, shift)
	if seq.Len() != 2 {
		t.Fatalf("Len() = %d", seq.Len())
	}

	// 0.25 -> 0.5 -> 1 + 2*0.5 = 2.
	got, err := seq.Apply([3]float64{0.25, 0.25, 0.25}, nil)
	if err != nil {
		t.Fatal(err)
	}
	checkTriplet(t, got, [3]float64{2, 2, 2}, 1e-12)

	seq.Remove(1)
	if seq.Len() != 1 || seq.Node(0) != ProcessNode(double) {
		t.Error("Remove did not drop the second node")
	}
	seq.Insert(0, shift)
	if seq.Len() != 2 || seq.Node(0) != ProcessNode(shift) {
		t.Error("Insert did not place the node first")
	}

	// 0.25 -> 1.5 -> 3.
	got, err = seq.Apply([3]float64{0.25, 0.25, 0.25}, nil)
	if err != nil {
		t.Fatal(err)
	}
	checkTriplet(t, got, [3]float64{3, 3, 3}, 1e-12)
}
