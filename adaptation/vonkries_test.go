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
	"fmt"
	"math"
	"testing"

	"seehuhn.de/go/colour"
)

var (
	whiteD65 = [3]float64{0.95045593, 1.00000000, 1.08905775}
	whiteD50 = [3]float64{0.96429568, 1.00000000, 0.82510460}
)

func checkXYZ(t *testing.T, got, want [3]float64, tol float64) {
	t.Helper()
	for i := 0; i < 3; i++ {
		if math.Abs(got[i]-want[i]) > tol {
			t.Errorf("component %d: got %.8f, expected %.8f", i, got[i], want[i])
			return
		}
	}
}

func TestVonKriesWhitePointMapping(t *testing.T) {
	transforms := []Transform{XYZScaling, VonKries, Bradford, CAT02}
	for _, tr := range transforms {
		t.Run(tr.String(), func(t *testing.T) {
			got, err := ChromaticAdaptationVonKries(whiteD65, whiteD65, whiteD50, tr)
			if err != nil {
				t.Fatal(err)
			}
			// The source white must map exactly onto the target white.
			checkXYZ(t, got, whiteD50, 1e-9)
		})
	}
}

func TestVonKriesIdentity(t *testing.T) {
	xyz := [3]float64{0.20654008, 0.12197225, 0.05136952}
	got, err := ChromaticAdaptationVonKries(xyz, whiteD65, whiteD65, Bradford)
	if err != nil {
		t.Fatal(err)
	}
	checkXYZ(t, got, xyz, 1e-12)
}

func TestVonKriesD65ToD50(t *testing.T) {
	xyz := [3]float64{0.20654008, 0.12197225, 0.05136952}
	got, err := ChromaticAdaptationVonKries(xyz, whiteD65, whiteD50, CAT02)
	if err != nil {
		t.Fatal(err)
	}
	checkXYZ(t, got, [3]float64{0.21638819, 0.12570000, 0.03847494}, 1e-4)
}

func TestXYZScalingMatrix(t *testing.T) {
	cat, err := MatrixChromaticAdaptationVonKries(whiteD65, whiteD50, XYZScaling)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = whiteD50[i] / whiteD65[i]
			}
			if math.Abs(cat[i][j]-want) > 1e-12 {
				t.Errorf("cat[%d][%d] = %g, expected %g", i, j, cat[i][j], want)
			}
		}
	}
}

func TestVonKriesScaleInvariance(t *testing.T) {
	xyz := [3]float64{0.20654008, 0.12197225, 0.05136952}
	ref, err := ChromaticAdaptationVonKries(xyz, whiteD65, whiteD50, Bradford)
	if err != nil {
		t.Fatal(err)
	}

	var scaled [3]float64
	colour.WithScale(colour.ScaleHundred, func() {
		var xyz100, w100, wr100 [3]float64
		for i := 0; i < 3; i++ {
			xyz100[i] = xyz[i] * 100
			w100[i] = whiteD65[i] * 100
			wr100[i] = whiteD50[i] * 100
		}
		scaled, err = ChromaticAdaptationVonKries(xyz100, w100, wr100, Bradford)
	})
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		scaled[i] /= 100
	}
	checkXYZ(t, scaled, ref, 1e-9)
}

func TestVonKriesValidation(t *testing.T) {
	_, err := MatrixChromaticAdaptationVonKries(whiteD65, whiteD50, Transform(17))
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Errorf("got %v, expected a validation error", err)
	}

	_, err = MatrixChromaticAdaptationVonKries([3]float64{}, whiteD50, XYZScaling)
	if !errors.As(err, &validationErr) {
		t.Errorf("got %v, expected a validation error", err)
	}
}

func TestTransformString(t *testing.T) {
	cases := []struct {
		transform Transform
		want      string
	}{
		{XYZScaling, "XYZ Scaling"},
		{VonKries, "Von Kries"},
		{Bradford, "Bradford"},
		{CAT02, "CAT02"},
		{Transform(17), "Unknown"},
	}
	for i, c := range cases {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			if got := c.transform.String(); got != c.want {
				t.Errorf("String() = %q, expected %q", got, c.want)
			}
		})
	}
	if Transform(17).IsValid() {
		t.Error("invalid transform reported as valid")
	}
}
