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

package adaptation

import (
	"errors"
	"testing"

	"seehuhn.de/go/colour"
)

// testConditions adapts from illuminant A to D65 viewing conditions.
var testConditions = CIE1994Conditions{
	XYO1: [2]float64{0.4476, 0.4074},
	XYO2: [2]float64{0.3127, 0.3290},
	YO:   20,
	EO1:  1000,
	EO2:  1000,
}

func TestCIE1994(t *testing.T) {
	got, err := ChromaticAdaptationCIE1994([3]float64{28.00, 21.26, 5.27}, testConditions)
	if err != nil {
		t.Fatal(err)
	}
	checkXYZ(t, got, [3]float64{24.0337952, 21.1562121, 17.6430119}, 1e-6)
}

func TestCIE1994Identity(t *testing.T) {
	cond := testConditions
	cond.XYO2 = cond.XYO1
	xyz := [3]float64{28.00, 21.26, 5.27}
	got, err := ChromaticAdaptationCIE1994(xyz, cond)
	if err != nil {
		t.Fatal(err)
	}
	checkXYZ(t, got, xyz, 1e-9)
}

func TestCIE1994ScaleInvariance(t *testing.T) {
	xyz := [3]float64{28.00, 21.26, 5.27}
	ref, err := ChromaticAdaptationCIE1994(xyz, testConditions)
	if err != nil {
		t.Fatal(err)
	}

	var scaled [3]float64
	colour.WithScale(colour.ScaleOne, func() {
		in := [3]float64{xyz[0] / 100, xyz[1] / 100, xyz[2] / 100}
		scaled, err = ChromaticAdaptationCIE1994(in, testConditions)
	})
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		scaled[i] *= 100
	}
	checkXYZ(t, scaled, ref, 1e-9)
}

func TestCIE1994LuminanceWarning(t *testing.T) {
	var warnings []string
	prev := colour.SetWarningHandler(func(msg string) {
		warnings = append(warnings, msg)
	})
	defer colour.SetWarningHandler(prev)

	cond := testConditions
	cond.YO = 10
	if _, err := ChromaticAdaptationCIE1994([3]float64{28, 21, 5}, cond); err != nil {
		t.Fatal(err)
	}
	if len(warnings) != 1 {
		t.Errorf("got %d warnings, expected 1", len(warnings))
	}

	warnings = warnings[:0]
	if _, err := ChromaticAdaptationCIE1994([3]float64{28, 21, 5}, testConditions); err != nil {
		t.Fatal(err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warning for an in-range luminance factor")
	}
}

func TestCIE1994Validation(t *testing.T) {
	var validationErr *ValidationError

	cond := testConditions
	cond.XYO1 = [2]float64{0.4476, 0}
	_, err := ChromaticAdaptationCIE1994([3]float64{28, 21, 5}, cond)
	if !errors.As(err, &validationErr) {
		t.Errorf("got %v, expected a validation error", err)
	}

	cond = testConditions
	cond.EO2 = 0
	_, err = ChromaticAdaptationCIE1994([3]float64{28, 21, 5}, cond)
	if !errors.As(err, &validationErr) {
		t.Errorf("got %v, expected a validation error", err)
	}
}
