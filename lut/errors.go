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

package lut

import "fmt"

// UsageError indicates that a lookup table operation was called with
// invalid arguments or on a table which does not support it.
type UsageError struct {
	Op      string
	Message string
}

func (e *UsageError) Error() string {
	return "lut: " + e.Op + ": " + e.Message
}

func (e *UsageError) Is(target error) bool {
	_, ok := target.(*UsageError)
	return ok
}

func newUsageError(op, format string, args ...any) *UsageError {
	return &UsageError{Op: op, Message: fmt.Sprintf(format, args...)}
}

// UnsupportedError indicates a documented limitation, for example the
// inversion of a three-dimensional table over a non-uniform domain.
type UnsupportedError struct {
	Op      string
	Message string
}

func (e *UnsupportedError) Error() string {
	return "lut: " + e.Op + ": unsupported: " + e.Message
}

func (e *UnsupportedError) Is(target error) bool {
	_, ok := target.(*UnsupportedError)
	return ok
}

func newUnsupportedError(op, format string, args ...any) *UnsupportedError {
	return &UnsupportedError{Op: op, Message: fmt.Sprintf(format, args...)}
}
