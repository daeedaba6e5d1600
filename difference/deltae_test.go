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

package difference

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"seehuhn.de/go/colour"
)

var (
	testLab1 = [3]float64{100.00000000, 21.57210357, 272.22819350}
	testLab2 = [3]float64{100.00000000, 426.67945353, 72.39590835}
)

func TestDeltaECIE1976(t *testing.T) {
	got := DeltaECIE1976(testLab1, testLab2)

	// Independent Euclidean distance.
	var want float64
	for i := 0; i < 3; i++ {
		d := testLab1[i] - testLab2[i]
		want += d * d
	}
	want = math.Sqrt(want)
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("got %g, expected %g", got, want)
	}
	if math.Abs(got-451.713302) > 1e-4 {
		t.Errorf("got %g, expected 451.713302", got)
	}
}

func TestDeltaECIE1994(t *testing.T) {
	got := DeltaECIE1994(testLab1, testLab2, false)
	if math.Abs(got-83.7792255) > 1e-4 {
		t.Errorf("got %g, expected 83.7792255", got)
	}

	got = DeltaECIE1994(testLab1, testLab2, true)
	if math.Abs(got-88.3355531) > 1e-4 {
		t.Errorf("textiles: got %g, expected 88.3355531", got)
	}
}

// Reference values from the test data set of Sharma, Wu and Dalal
// (2005), given there to four decimal places.
func TestDeltaECIE2000(t *testing.T) {
	cases := []struct {
		lab1, lab2 [3]float64
		expected   float64
	}{
		{[3]float64{50, 2.6772, -79.7751}, [3]float64{50, 0, -82.7485}, 2.0425},
		{[3]float64{50, 3.1571, -77.2803}, [3]float64{50, 0, -82.7485}, 2.8615},
		{[3]float64{50, 2.8361, -74.0200}, [3]float64{50, 0, -82.7485}, 3.4412},
		{[3]float64{50, -1.3802, -84.2814}, [3]float64{50, 0, -82.7485}, 1.0000},
		{[3]float64{50, 0, 0}, [3]float64{50, -1, 2}, 2.3669},
		{[3]float64{50, 2.4900, -0.0010}, [3]float64{50, -2.4900, 0.0009}, 7.1792},
		{[3]float64{50, 2.5000, 0}, [3]float64{73, 25, -18}, 27.1492},
		{[3]float64{50, 2.5000, 0}, [3]float64{61, -5, 29}, 22.8977},
	}
	for i, c := range cases {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			got := DeltaECIE2000(c.lab1, c.lab2, false)
			if math.Abs(got-c.expected) > 1e-4 {
				t.Errorf("got %g, expected %g", got, c.expected)
			}

			// The formula is symmetric in its arguments.
			swapped := DeltaECIE2000(c.lab2, c.lab1, false)
			if math.Abs(got-swapped) > 1e-12 {
				t.Errorf("asymmetric: %g and %g", got, swapped)
			}
		})
	}
}

func TestDeltaEIdentical(t *testing.T) {
	lab := [3]float64{35, 20, -10}
	if got := DeltaECIE1976(lab, lab); got != 0 {
		t.Errorf("CIE 1976: got %g, expected 0", got)
	}
	if got := DeltaECIE1994(lab, lab, false); got != 0 {
		t.Errorf("CIE 1994: got %g, expected 0", got)
	}
	if got := DeltaECIE2000(lab, lab, false); got != 0 {
		t.Errorf("CIE 2000: got %g, expected 0", got)
	}
}

func TestDeltaEScaleInvariance(t *testing.T) {
	ref := DeltaECIE2000(testLab1, testLab2, false)

	var scaled float64
	colour.WithScale(colour.ScaleOne, func() {
		lab1, lab2 := testLab1, testLab2
		for i := 0; i < 3; i++ {
			lab1[i] /= 100
			lab2[i] /= 100
		}
		scaled = DeltaECIE2000(lab1, lab2, false)
	})
	if math.Abs(scaled-ref) > 1e-9 {
		t.Errorf("got %g at scale 1, %g at reference", scaled, ref)
	}
}

func TestDeltaEDispatch(t *testing.T) {
	got, err := DeltaE(testLab1, testLab2, MethodCIE1976)
	if err != nil {
		t.Fatal(err)
	}
	if want := DeltaECIE1976(testLab1, testLab2); got != want {
		t.Errorf("dispatch yields %g, direct call %g", got, want)
	}

	_, err = DeltaE(testLab1, testLab2, Method(9))
	var usageErr *UsageError
	if !errors.As(err, &usageErr) {
		t.Errorf("unknown method: got %v, expected a usage error", err)
	}
}

func TestMethodString(t *testing.T) {
	cases := []struct {
		method Method
		want   string
	}{
		{MethodCIE2000, "CIE 2000"},
		{MethodCIE1976, "CIE 1976"},
		{MethodCIE1994, "CIE 1994"},
		{Method(9), "Unknown"},
	}
	for i, c := range cases {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			if got := c.method.String(); got != c.want {
				t.Errorf("String() = %q, expected %q", got, c.want)
			}
		})
	}
	if Method(9).IsValid() {
		t.Error("invalid method reported as valid")
	}
}
