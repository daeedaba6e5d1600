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

// Package colour provides numerically faithful implementations of published
// colourimetric standards.
//
// The root package holds cross-cutting configuration shared by all
// sub-packages: the domain-range scaling convention and the warning hook.
// The actual computations live in the sub-packages:
//
//	algebra     interpolation, extrapolation and scalar helpers
//	continuous  the Signal type, a continuous function backed by samples
//	colorimetry spectral distributions and tristimulus integration
//	lut         lookup-table based colour transforms
//	adaptation  chromatic adaptation models
//
// All public numeric entry points honour the process-wide domain-range
// scale, see [Scale].
package colour
