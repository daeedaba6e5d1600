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
	"math"

	"gonum.org/v1/gonum/mat"

	"seehuhn.de/go/colour"
	"seehuhn.de/go/colour/algebra"
)

// CIE1994Conditions describes the viewing conditions of the CIE 1994
// chromatic adaptation model.
type CIE1994Conditions struct {
	// XYO1 is the source illuminant chromaticity.
	XYO1 [2]float64

	// XYO2 is the target illuminant chromaticity.
	XYO2 [2]float64

	// YO is the luminance factor of the achromatic background, in
	// percent.  The model is defined for values between 18 and 100.
	YO float64

	// EO1 and EO2 are the source and target illuminances in lux.
	EO1, EO2 float64

	// N is the noise term.  Zero selects the default of 1.
	N float64
}

// matrixXYZToRGBCIE1994 maps tristimulus values to the cone responses
// used by the CIE 1994 model.
var matrixXYZToRGBCIE1994 = [3][3]float64{
	{0.40024, 0.70760, -0.08081},
	{-0.22630, 1.16532, 0.04570},
	{0.00000, 0.00000, 0.91822},
}

// ChromaticAdaptationCIE1994 computes the corresponding colour of xyz1
// under the target viewing conditions, following CIE 109-1994.
// Tristimulus values are in the [0, 100] reference range.
func ChromaticAdaptationCIE1994(xyz1 [3]float64, cond CIE1994Conditions) ([3]float64, error) {
	if cond.XYO1[1] == 0 || cond.XYO2[1] == 0 {
		return [3]float64{}, newValidationError("ChromaticAdaptationCIE1994",
			"illuminant chromaticity has zero y")
	}
	if cond.EO1 <= 0 || cond.EO2 <= 0 {
		return [3]float64{}, newValidationError("ChromaticAdaptationCIE1994",
			"illuminances must be positive")
	}
	n := cond.N
	if n == 0 {
		n = 1
	}
	if cond.YO < 18 || cond.YO > 100 {
		colour.Warn("CIE 1994 chromatic adaptation: "+
			"luminance factor %g is outside the recommended range [18, 100]",
			cond.YO)
	}

	for i := 0; i < 3; i++ {
		xyz1[i] = colour.ToDomain100(xyz1[i])
	}

	rgb1 := mulMV(matrixXYZToRGBCIE1994, xyz1)

	xez1 := intermediateValuesCIE1994(cond.XYO1)
	xez2 := intermediateValuesCIE1994(cond.XYO2)

	rgbO1 := effectiveAdaptingResponses(xez1, cond.YO, cond.EO1)
	rgbO2 := effectiveAdaptingResponses(xez2, cond.YO, cond.EO2)

	b1 := exponentialFactors(rgbO1)
	b2 := exponentialFactors(rgbO2)

	k := kCoefficient(xez1, xez2, b1, b2, cond.YO, n)
	rgb2 := correspondingColour(rgb1, xez1, xez2, b1, b2, cond.YO, k, n)

	var mInv mat.Dense
	if err := mInv.Inverse(denseFrom(matrixXYZToRGBCIE1994)); err != nil {
		return [3]float64{}, newValidationError("ChromaticAdaptationCIE1994",
			"response matrix is singular: %v", err)
	}
	var xyz2 [3]float64
	for i := 0; i < 3; i++ {
		xyz2[i] = mInv.At(i, 0)*rgb2[0] +
			mInv.At(i, 1)*rgb2[1] +
			mInv.At(i, 2)*rgb2[2]
		xyz2[i] = colour.FromRange100(xyz2[i])
	}
	return xyz2, nil
}

// intermediateValuesCIE1994 computes the xi, eta, zeta values of an
// illuminant chromaticity.
func intermediateValuesCIE1994(xy [2]float64) [3]float64 {
	x, y := xy[0], xy[1]
	return [3]float64{
		(0.48105*x + 0.78841*y - 0.08081) / y,
		(-0.27200*x + 1.11962*y + 0.04570) / y,
		0.91822 * (1 - x - y) / y,
	}
}

// effectiveAdaptingResponses computes the cone responses to the adapting
// field.
func effectiveAdaptingResponses(xez [3]float64, yO, eO float64) [3]float64 {
	var res [3]float64
	for i := 0; i < 3; i++ {
		res[i] = yO * eO / (100 * math.Pi) * xez[i]
	}
	return res
}

func beta1(x float64) float64 {
	t := math.Pow(x, 0.4495)
	return (6.469 + 6.362*t) / (6.469 + t)
}

func beta2(x float64) float64 {
	t := math.Pow(x, 0.5128)
	return 0.7844 * (8.414 + 8.091*t) / (8.414 + t)
}

// exponentialFactors computes the beta exponents of the adapting
// responses.
func exponentialFactors(rgbO [3]float64) [3]float64 {
	return [3]float64{beta1(rgbO[0]), beta1(rgbO[1]), beta2(rgbO[2])}
}

func kCoefficient(xez1, xez2, b1, b2 [3]float64, yO, n float64) float64 {
	xi1, eta1 := xez1[0], xez1[1]
	xi2, eta2 := xez2[0], xez2[1]

	k := math.Pow((yO*xi1+n)/(20*xi1+n), 2.0/3.0*b1[0]) /
		math.Pow((yO*xi2+n)/(20*xi2+n), 2.0/3.0*b2[0])
	k *= math.Pow((yO*eta1+n)/(20*eta1+n), 1.0/3.0*b1[1]) /
		math.Pow((yO*eta2+n)/(20*eta2+n), 1.0/3.0*b2[1])
	return k
}

// correspondingColour maps the cone responses of the test colour to the
// responses of the corresponding colour under the target conditions.
func correspondingColour(rgb1, xez1, xez2, b1, b2 [3]float64, yO, k, n float64) [3]float64 {
	var res [3]float64
	for i := 0; i < 3; i++ {
		x1, x2 := xez1[i], xez2[i]
		y1, y2 := b1[i], b2[i]
		res[i] = (yO*x2+n)*algebra.Spow(k, 1/y2)*
			algebra.Spow((rgb1[i]+n)/(yO*x1+n), y1/y2) - n
	}
	return res
}
