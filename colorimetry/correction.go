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

// stearnsAlpha is the correction coefficient of Stearns and Stearns
// (1988).
const stearnsAlpha = 0.083

// BandpassCorrectionStearns1988 corrects a spectral distribution measured
// with a spectrophotometer whose triangular bandpass equals its sampling
// interval, using the method of Stearns and Stearns (1988).  The
// distribution is modified in place.
func BandpassCorrectionStearns1988(sd *SpectralDistribution) error {
	values := sd.Values()
	n := len(values)
	if n < 3 {
		return newValidationError("BandpassCorrectionStearns1988",
			"at least 3 samples required, got %d", n)
	}

	corrected := make([]float64, n)
	corrected[0] = (1+stearnsAlpha)*values[0] - stearnsAlpha*values[1]
	corrected[n-1] = (1+stearnsAlpha)*values[n-1] - stearnsAlpha*values[n-2]
	for i := 1; i < n-1; i++ {
		corrected[i] = -stearnsAlpha*values[i-1] +
			(1+2*stearnsAlpha)*values[i] -
			stearnsAlpha*values[i+1]
	}
	return sd.SetRange(corrected)
}

// BandpassMethod selects the bandpass dependence correction used by
// [BandpassCorrection].
type BandpassMethod int

const (
	// BandpassStearns1988 is the correction of Stearns and Stearns
	// (1988).
	BandpassStearns1988 BandpassMethod = iota
)

func (m BandpassMethod) String() string {
	switch m {
	case BandpassStearns1988:
		return "Stearns 1988"
	default:
		return "Unknown"
	}
}

// BandpassCorrection corrects a spectral distribution for bandpass
// dependence using the selected method.
func BandpassCorrection(sd *SpectralDistribution, method BandpassMethod) error {
	switch method {
	case BandpassStearns1988:
		return BandpassCorrectionStearns1988(sd)
	default:
		return newValidationError("BandpassCorrection",
			"unknown method %d", int(method))
	}
}
