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

package colorimetry

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestSpectralShape(t *testing.T) {
	shape := SpectralShape{Start: 360, End: 830, Interval: 5}
	if err := shape.Validate(); err != nil {
		t.Fatal(err)
	}
	if got := shape.Len(); got != 95 {
		t.Errorf("Len() = %d, expected 95", got)
	}
	wls := shape.Wavelengths()
	if wls[0] != 360 || wls[94] != 830 {
		t.Errorf("wavelengths span [%g, %g]", wls[0], wls[94])
	}
	if wls[1]-wls[0] != 5 {
		t.Errorf("interval %g, expected 5", wls[1]-wls[0])
	}

	if !shape.Contains(555) {
		t.Error("555 nm not contained")
	}
	if shape.Contains(556) {
		t.Error("556 nm contained")
	}
	if shape.Contains(860) {
		t.Error("860 nm contained")
	}

	if got := shape.String(); got != "(360, 830, 5)" {
		t.Errorf("String() = %q", got)
	}
}

func TestSpectralShapeValidate(t *testing.T) {
	cases := []SpectralShape{
		{Start: 500, End: 400, Interval: 10},
		{Start: 400, End: 400, Interval: 10},
		{Start: 400, End: 700, Interval: 0},
		{Start: 400, End: 700, Interval: -5},
	}
	for i, shape := range cases {
		if err := shape.Validate(); err == nil {
			t.Errorf("case %d: invalid shape %v accepted", i, shape)
		}
	}
}

// When the range is not divisible by the interval, the grid keeps the
// stated interval and stops at the last on-grid wavelength.
func TestSpectralShapeTruncation(t *testing.T) {
	shape := SpectralShape{Start: 360, End: 830, Interval: 20}
	if got := shape.Len(); got != 24 {
		t.Fatalf("Len() = %d, expected 24", got)
	}
	wls := shape.Wavelengths()
	if len(wls) != 24 {
		t.Fatalf("got %d wavelengths, expected 24", len(wls))
	}
	for i, wl := range wls {
		if wl != 360+float64(i)*20 {
			t.Fatalf("wavelength %d is %g, expected %g", i, wl, 360+float64(i)*20)
		}
	}
	if !shape.Contains(820) {
		t.Error("820 nm not contained")
	}
	if shape.Contains(830) {
		t.Error("830 nm contained despite being off-grid")
	}
}

func TestSpectralShapeWavelengths(t *testing.T) {
	shape := SpectralShape{Start: 400, End: 700, Interval: 20}
	expected := []float64{
		400, 420, 440, 460, 480, 500, 520, 540, 560,
		580, 600, 620, 640, 660, 680, 700,
	}
	if d := cmp.Diff(expected, shape.Wavelengths(),
		cmpopts.EquateApprox(0, 1e-9)); d != "" {
		t.Errorf("wavelengths (-want +got):\n%s", d)
	}
}
