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
	"fmt"
	"math"

	"github.com/aclements/go-moremath/vec"
)

// SpectralShape describes a uniformly sampled wavelength range, in
// nanometres.  Both end points are included.
type SpectralShape struct {
	Start, End, Interval float64
}

// Validate checks that the shape describes a non-empty wavelength range.
func (s SpectralShape) Validate() error {
	if !(s.Start < s.End) {
		return newValidationError("SpectralShape",
			"start %g not below end %g", s.Start, s.End)
	}
	if !(s.Interval > 0) {
		return newValidationError("SpectralShape",
			"interval %g not positive", s.Interval)
	}
	return nil
}

// Len returns the number of wavelengths in the shape.  When the range is
// not divisible by the interval, the grid is truncated at the largest
// on-grid wavelength not above End.
func (s SpectralShape) Len() int {
	return int((s.End-s.Start)/s.Interval+1e-10) + 1
}

// Wavelengths returns the wavelengths of the shape, spaced by Interval
// starting at Start.  The last wavelength is End when the range is
// divisible by the interval, and the largest on-grid wavelength below End
// otherwise.
func (s SpectralShape) Wavelengths() []float64 {
	n := s.Len()
	last := s.Start + float64(n-1)*s.Interval
	if math.Abs(last-s.End) < 1e-10 {
		return vec.Linspace(s.Start, s.End, n)
	}
	res := make([]float64, n)
	for i := range res {
		res[i] = s.Start + float64(i)*s.Interval
	}
	return res
}

// Contains reports whether the wavelength is one of the shape's sample
// points.
func (s SpectralShape) Contains(wl float64) bool {
	if wl < s.Start || wl > s.End {
		return false
	}
	steps := (wl - s.Start) / s.Interval
	return math.Abs(steps-math.Round(steps)) < 1e-10
}

func (s SpectralShape) String() string {
	return fmt.Sprintf("(%g, %g, %g)", s.Start, s.End, s.Interval)
}
