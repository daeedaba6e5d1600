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
	"math"
	"testing"
)

func TestBandpassCorrectionStearns1988(t *testing.T) {
	// A constant distribution is a fixed point of the correction.
	sd, err := NewSpectralDistribution(
		[]float64{0.5, 0.5, 0.5, 0.5, 0.5},
		[]float64{400, 420, 440, 460, 480}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := BandpassCorrectionStearns1988(sd); err != nil {
		t.Fatal(err)
	}
	for i, v := range sd.Values() {
		if math.Abs(v-0.5) > 1e-12 {
			t.Errorf("sample %d: %g, expected 0.5", i, v)
		}
	}

	// Hand-computed values for a small distribution.
	sd, err = NewSpectralDistribution(
		[]float64{0.1, 0.4, 0.2},
		[]float64{500, 510, 520}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := BandpassCorrectionStearns1988(sd); err != nil {
		t.Fatal(err)
	}
	const a = 0.083
	expected := []float64{
		(1+a)*0.1 - a*0.4,
		-a*0.1 + (1+2*a)*0.4 - a*0.2,
		(1+a)*0.2 - a*0.4,
	}
	got := sd.Values()
	for i := range expected {
		if math.Abs(got[i]-expected[i]) > 1e-12 {
			t.Errorf("sample %d: %g, expected %g", i, got[i], expected[i])
		}
	}
}

func TestBandpassCorrectionDispatch(t *testing.T) {
	sd, err := NewSpectralDistribution(
		[]float64{0.1, 0.2, 0.3},
		[]float64{500, 510, 520}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := BandpassCorrection(sd, BandpassMethod(5)); err == nil {
		t.Error("unknown method accepted")
	}
	if err := BandpassCorrection(sd, BandpassStearns1988); err != nil {
		t.Error(err)
	}

	if err := BandpassCorrectionStearns1988(mustSD(t, []float64{1, 2}, []float64{500, 510})); err == nil {
		t.Error("two samples accepted")
	}
}

func mustSD(t *testing.T, values, wls []float64) *SpectralDistribution {
	t.Helper()
	sd, err := NewSpectralDistribution(values, wls, nil)
	if err != nil {
		t.Fatal(err)
	}
	return sd
}
