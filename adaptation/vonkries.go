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
	"gonum.org/v1/gonum/mat"

	"seehuhn.de/go/colour"
)

// Transform names a chromatic adaptation transform, the matrix mapping
// tristimulus values to the cone-like response space in which the von
// Kries scaling is applied.
type Transform int

const (
	// XYZScaling scales the tristimulus values directly.
	XYZScaling Transform = iota

	// VonKries uses the original von Kries responses as tabulated by
	// Judd.
	VonKries

	// Bradford is the transform of the BFD chromatic adaptation model.
	Bradford

	// CAT02 is the transform of the CIECAM02 appearance model.
	CAT02
)

func (t Transform) String() string {
	switch t {
	case XYZScaling:
		return "XYZ Scaling"
	case VonKries:
		return "Von Kries"
	case Bradford:
		return "Bradford"
	case CAT02:
		return "CAT02"
	default:
		return "Unknown"
	}
}

// IsValid reports whether t names a supported transform.
func (t Transform) IsValid() bool {
	return t >= XYZScaling && t <= CAT02
}

var catMatrices = map[Transform][3][3]float64{
	XYZScaling: {
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	},
	VonKries: {
		{0.40024, 0.70760, -0.08081},
		{-0.22630, 1.16532, 0.04570},
		{0.00000, 0.00000, 0.91822},
	},
	Bradford: {
		{0.8951, 0.2664, -0.1614},
		{-0.7502, 1.7135, 0.0367},
		{0.0389, -0.0685, 1.0296},
	},
	CAT02: {
		{0.7328, 0.4296, -0.1624},
		{-0.7036, 1.6975, 0.0061},
		{0.0030, 0.0136, 0.9834},
	},
}

// Matrix returns the transform's 3x3 matrix.
func (t Transform) Matrix() [3][3]float64 {
	return catMatrices[t]
}

// MatrixChromaticAdaptationVonKries computes the matrix adapting
// tristimulus values from the source white xyzW to the target white
// xyzWR using the von Kries framework.
func MatrixChromaticAdaptationVonKries(xyzW, xyzWR [3]float64, transform Transform) ([3][3]float64, error) {
	if !transform.IsValid() {
		return [3][3]float64{}, newValidationError("MatrixChromaticAdaptationVonKries",
			"unknown transform %d", int(transform))
	}
	m := transform.Matrix()

	rgbW := mulMV(m, xyzW)
	rgbWR := mulMV(m, xyzWR)
	for i := 0; i < 3; i++ {
		if rgbW[i] == 0 {
			return [3][3]float64{}, newValidationError("MatrixChromaticAdaptationVonKries",
				"source white has zero response in channel %d", i)
		}
	}

	var mInv mat.Dense
	if err := mInv.Inverse(denseFrom(m)); err != nil {
		return [3][3]float64{}, newValidationError("MatrixChromaticAdaptationVonKries",
			"transform matrix is singular: %v", err)
	}

	// M^-1 * diag(wr/w) * M
	scaled := denseFrom(m)
	for i := 0; i < 3; i++ {
		d := rgbWR[i] / rgbW[i]
		for j := 0; j < 3; j++ {
			scaled.Set(i, j, d*scaled.At(i, j))
		}
	}
	var res mat.Dense
	res.Mul(&mInv, scaled)

	var cat [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			cat[i][j] = res.At(i, j)
		}
	}
	return cat, nil
}

// ChromaticAdaptationVonKries adapts the tristimulus values xyz from the
// source white xyzW to the target white xyzWR.
func ChromaticAdaptationVonKries(xyz, xyzW, xyzWR [3]float64, transform Transform) ([3]float64, error) {
	for i := 0; i < 3; i++ {
		xyz[i] = colour.ToDomain1(xyz[i])
		xyzW[i] = colour.ToDomain1(xyzW[i])
		xyzWR[i] = colour.ToDomain1(xyzWR[i])
	}
	cat, err := MatrixChromaticAdaptationVonKries(xyzW, xyzWR, transform)
	if err != nil {
		return [3]float64{}, err
	}
	res := mulMV(cat, xyz)
	for i := 0; i < 3; i++ {
		res[i] = colour.FromRange1(res[i])
	}
	return res, nil
}

func mulMV(m [3][3]float64, v [3]float64) [3]float64 {
	var res [3]float64
	for i := 0; i < 3; i++ {
		res[i] = m[i][0]*v[0] + m[i][1]*v[1] + m[i][2]*v[2]
	}
	return res
}

func denseFrom(m [3][3]float64) *mat.Dense {
	data := make([]float64, 0, 9)
	for i := 0; i < 3; i++ {
		data = append(data, m[i][:]...)
	}
	return mat.NewDense(3, 3, data)
}
