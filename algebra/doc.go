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

// Package algebra implements the numerical building blocks shared by the
// rest of the module: single-axis interpolators, extrapolation, Lagrange
// coefficients, three-dimensional table interpolation, and scalar helpers
// such as sign-preserving exponentiation and safe division.
//
// All interpolators are fitted at construction time and validate their
// sample data there; evaluation never re-validates.  Evaluating an
// interpolator outside its fitted domain yields a [RangeError]; callers
// needing defined behaviour outside the domain wrap the interpolator in an
// [Extrapolator].
package algebra
