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

// Package adaptation implements chromatic adaptation models.
//
// Chromatic adaptation predicts how tristimulus values measured under one
// illuminant appear under another.  The package provides the von Kries
// framework with a choice of adaptation transforms, and the more
// elaborate CIE 1994 model which also accounts for the adapting
// luminance.
package adaptation
