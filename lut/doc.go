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

// Package lut implements colour lookup tables.
//
// Three kinds of table are provided: [LUT1D] applies a single tone curve
// to all channels, [LUT3x1D] applies an independent curve per channel, and
// [LUT3D] interpolates colour triplets over a cubic lattice.  Tables can
// be chained into a [Sequence], converted between kinds with [LUTToLUT],
// and approximately inverted.
//
// Tables are not safe for concurrent mutation; concurrent read-only use is
// fine.
package lut
