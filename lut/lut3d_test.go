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

func identityLUT3D(t *testing.T, size int) *LUT3D {
	t.Helper()
	table, err := LinearTable3D(size, domainBoundsUniform(0, 1, 3))
	if err != nil {
		t.Fatal(err)
	}
	l, err := NewLUT3D(table, Domain{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	return l
}

func TestLUT3DApplyIdentity(t *testing.T) {
	l := identityLUT3D(t, 5)
	points := [][3]float64{
		{0, 0, 0},
		{1, 1, 1},
		{0.25, 0.5, 0.75},
		{0.1, 0.9, 0.3},
	}
	for _, method := range []algebra.TableMethod{
		algebra.TableTrilinear, algebra.TableTetrahedral,
	} {
		for _, p := range points {
			got, err := l.Apply(p, &ApplyOptions{Table: method})
			if err != nil {
				t.Fatal(err)
			}
			checkTriplet(t, got, p, 1e-12)
		}
	}
}

func TestLUT3DApplyScaled(t *testing.T) {
	l := identityLUT3D(t, 5)
	if _, err := l.ArithmeticalOperation(0.5, algebra.Multiplication, true); err != nil {
		t.Fatal(err)
	}
	got, err := l.Apply([3]float64{0.3, 0.6, 0.9}, nil)
	if err != nil {
		t.Fatal(err)
	}
	checkTriplet(t, got, [3]float64{0.15, 0.3, 0.45}, 1e-12)
}

func TestLUT3DApplyClamping(t *testing.T) {
	l := identityLUT3D(t, 5)
	got, err := l.Apply([3]float64{-0.5, 2, 0.5}, nil)
	if err != nil {
		t.Fatal(err)
	}
	checkTriplet(t, got, [3]float64{0, 1, 0.5}, 1e-12)
}

func TestLUT3DInvertIdentity(t *testing.T) {
	l := identityLUT3D(t, 5)
	inv, err := l.Invert(nil)
	if err != nil {
		t.Fatal(err)
	}
	// Every inverse lattice point coincides with a forward entry, so the
	// inverse is again the identity.
	if !inv.Equal(l) {
		t.Error("inverse of the identity lattice is not the identity")
	}

	got, err := l.Apply([3]float64{0.3, 0.5, 0.7}, &ApplyOptions{Direction: Inverse})
	if err != nil {
		t.Fatal(err)
	}
	checkTriplet(t, got, [3]float64{0.3, 0.5, 0.7}, 1e-12)
}

func TestLUT3DInvertAffine(t *testing.T) {
	// f(v) = 0.8 v + 0.1 per channel, invertible within the domain.
	l := identityLUT3D(t, 11)
	if _, err := l.ArithmeticalOperation(0.8, algebra.Multiplication, true); err != nil {
		t.Fatal(err)
	}
	if _, err := l.ArithmeticalOperation(0.1, algebra.Addition, true); err != nil {
		t.Fatal(err)
	}

	inv, err := l.Invert(&InvertOptions{QuerySize: 8, Extrapolate: true})
	if err != nil {
		t.Fatal(err)
	}

	// The inversion is approximate; round trips through interior points
	// stay within a fraction of a lattice cell.
	for _, v := range []float64{0.3, 0.5, 0.7} {
		in := [3]float64{v, v, v}
		y, err := l.Apply(in, nil)
		if err != nil {
			t.Fatal(err)
		}
		back, err := inv.Apply(y, nil)
		if err != nil {
			t.Fatal(err)
		}
		checkTriplet(t, back, in, 0.15)
	}
}

func TestLUT3DInvertUnsupported(t *testing.T) {
	grid := []float64{0, 0.1, 1}
	table, err := LinearTable3D(3, DomainExplicit(grid, grid, grid))
	if err != nil {
		t.Fatal(err)
	}
	l, err := NewLUT3D(table, DomainExplicit(grid, grid, grid), nil)
	if err != nil {
		t.Fatal(err)
	}
	_, err = l.Invert(nil)
	var unsupported *UnsupportedError
	if !errors.As(err, &unsupported) {
		t.Errorf("got %v, expected an unsupported error", err)
	}
}

func TestLUT3DArithmetic(t *testing.T) {
	a := identityLUT3D(t, 3)
	zero, err := a.ArithmeticalOperation(a.Copy(), algebra.Subtraction, false)
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range zero.Table().Data {
		if v != 0 {
			t.Fatal("self-subtraction left non-zero entries")
		}
	}
	if a.Table().At(2, 2, 2) != [3]float64{1, 1, 1} {
		t.Error("operation without inPlace modified the receiver")
	}

	b := identityLUT3D(t, 5)
	if _, err := a.ArithmeticalOperation(b, algebra.Addition, false); err == nil {
		t.Error("mismatched lattice size accepted")
	}
}

func TestLUT3DEqual(t *testing.T) {
	a := identityLUT3D(t, 3)
	b := a.Copy()
	b.Name = "other"
	if !a.Equal(b) {
		t.Error("lattices differing only in metadata compare unequal")
	}
	if _, err := b.ArithmeticalOperation(1.0, algebra.Addition, true); err != nil {
		t.Fatal(err)
	}
	if a.Equal(b) {
		t.Error("lattices with different values compare equal")
	}
	if a.Table().At(0, 0, 0) != [3]float64{0, 0, 0} {
		t.Error("Copy shares state with the original")
	}
}

func TestLUT3DExplicitUniform(t *testing.T) {
	// A uniform explicit domain behaves like the equivalent bounds
	// domain, including inversion.
	grid := []float64{0, 0.5, 1}
	table, err := LinearTable3D(3, DomainExplicit(grid, grid, grid))
	if err != nil {
		t.Fatal(err)
	}
	l, err := NewLUT3D(table, DomainExplicit(grid, grid, grid), nil)
	if err != nil {
		t.Fatal(err)
	}
	got, err := l.Apply([3]float64{0.25, 0.5, 0.75}, nil)
	if err != nil {
		t.Fatal(err)
	}
	checkTriplet(t, got, [3]float64{0.25, 0.5, 0.75}, 1e-12)

	if _, err := l.Invert(nil); err != nil {
		t.Errorf("inversion over a uniform explicit domain failed: %v", err)
	}
}

func TestLUT3DInvertExtrapolatePadding(t *testing.T) {
	// Padding must not disturb exact hits on forward entries.
	l := identityLUT3D(t, 4)
	inv, err := l.Invert(&InvertOptions{Extrapolate: true})
	if err != nil {
		t.Fatal(err)
	}
	if !inv.Equal(l) {
		t.Error("padded inversion of the identity is not the identity")
	}
}

func TestExtendedAt(t *testing.T) {
	table, err := LinearTable3D(3, domainBoundsUniform(0, 1, 3))
	if err != nil {
		t.Fatal(err)
	}
	got := extendedAt(table, -1, 0, 0)
	checkTriplet(t, got, [3]float64{-0.5, 0, 0}, 1e-12)
	got = extendedAt(table, 3, 3, 3)
	checkTriplet(t, got, [3]float64{1.5, 1.5, 1.5}, 1e-12)
	if math.Abs(extendedGrid([]float64{0, 0.5, 1}, -1)+0.5) > 1e-12 {
		t.Error("extendedGrid below the lattice")
	}
	if math.Abs(extendedGrid([]float64{0, 0.5, 1}, 3)-1.5) > 1e-12 {
		t.Error("extendedGrid above the lattice")
	}
}
