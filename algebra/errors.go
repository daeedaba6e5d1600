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

package algebra

import "fmt"

// ArgumentError indicates that a constructor or function was called with
// invalid sample data or configuration.
type ArgumentError struct {
	Fn      string
	Field   string
	Message string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: invalid %s: %s", e.Fn, e.Field, e.Message)
}

func (e *ArgumentError) Is(target error) bool {
	_, ok := target.(*ArgumentError)
	return ok
}

func newArgumentError(fn, field, format string, args ...any) *ArgumentError {
	return &ArgumentError{
		Fn:      fn,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

// RangeError indicates that an interpolator was evaluated outside its
// fitted domain.
type RangeError struct {
	X         float64
	Low, High float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("x = %g outside interpolation range [%g, %g]",
		e.X, e.Low, e.High)
}

func (e *RangeError) Is(target error) bool {
	_, ok := target.(*RangeError)
	return ok
}
