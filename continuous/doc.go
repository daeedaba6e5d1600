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

// Package continuous models continuous functions from discrete samples.
//
// A [Signal] is an ordered mapping from float64 domain values to float64
// range values, together with an interpolator for queries between samples
// and an extrapolator for queries outside the sampled domain.  A
// [MultiSignals] bundles several signals which share a single domain, for
// example the three channels of a set of colour matching functions.
package continuous
