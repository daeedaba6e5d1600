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

// Package colorimetry computes tristimulus values from spectral data.
//
// A [SpectralDistribution] holds sampled spectral data such as a
// reflectance or an illuminant power distribution; a
// [MultiSpectralDistributions] holds several channels over shared
// wavelengths, most importantly the colour matching functions of a
// standard observer.  [SDToXYZ] converts spectral data to CIE XYZ
// tristimulus values, either by direct Riemann summation or following
// practices ASTM E308-15 and ASTM E2022-11.
package colorimetry
