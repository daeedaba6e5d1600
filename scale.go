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

package colour

import "sync"

// Scale selects the domain-range scaling convention applied by every public
// numeric entry point: inputs are scaled on entry, outputs on exit.
type Scale int

const (
	// ScaleReference uses the canonical units of the implemented standards,
	// e.g. [0, 100] for tristimulus values.
	ScaleReference Scale = iota

	// ScaleOne normalises values to [0, 1].
	ScaleOne

	// ScaleHundred scales values to [0, 100], including values which are
	// [0, 1] in the reference scale.
	ScaleHundred
)

func (s Scale) String() string {
	switch s {
	case ScaleReference:
		return "Reference"
	case ScaleOne:
		return "1"
	case ScaleHundred:
		return "100"
	default:
		return "Unknown"
	}
}

var (
	scaleMu      sync.RWMutex
	currentScale = ScaleReference
)

// CurrentScale returns the process-wide domain-range scale.
func CurrentScale() Scale {
	scaleMu.RLock()
	defer scaleMu.RUnlock()
	return currentScale
}

// SetScale sets the process-wide domain-range scale and returns the
// previous value.
func SetScale(s Scale) Scale {
	scaleMu.Lock()
	defer scaleMu.Unlock()
	prev := currentScale
	currentScale = s
	return prev
}

// WithScale runs f under the given domain-range scale and restores the
// previous scale afterwards.
func WithScale(s Scale, f func()) {
	prev := SetScale(s)
	defer SetScale(prev)
	f()
}

// ToDomain1 converts a, given in the current domain-range scale, to the
// [0, 1] domain of a formula whose reference domain is [0, 1].
func ToDomain1(a float64) float64 {
	if CurrentScale() == ScaleHundred {
		return a / 100
	}
	return a
}

// ToDomain100 converts a, given in the current domain-range scale, to the
// [0, 100] domain of a formula whose reference domain is [0, 100].
func ToDomain100(a float64) float64 {
	if CurrentScale() == ScaleOne {
		return a * 100
	}
	return a
}

// FromRange1 converts a, computed in a [0, 1] reference range, back to the
// current domain-range scale.
func FromRange1(a float64) float64 {
	if CurrentScale() == ScaleHundred {
		return a * 100
	}
	return a
}

// FromRange100 converts a, computed in a [0, 100] reference range, back to
// the current domain-range scale.
func FromRange100(a float64) float64 {
	if CurrentScale() == ScaleOne {
		return a / 100
	}
	return a
}

// ToDomain1Slice applies [ToDomain1] element-wise, returning a new slice.
func ToDomain1Slice(a []float64) []float64 {
	return mapSlice(a, ToDomain1)
}

// ToDomain100Slice applies [ToDomain100] element-wise, returning a new slice.
func ToDomain100Slice(a []float64) []float64 {
	return mapSlice(a, ToDomain100)
}

// FromRange1Slice applies [FromRange1] element-wise, returning a new slice.
func FromRange1Slice(a []float64) []float64 {
	return mapSlice(a, FromRange1)
}

// FromRange100Slice applies [FromRange100] element-wise, returning a new
// slice.
func FromRange100Slice(a []float64) []float64 {
	return mapSlice(a, FromRange100)
}

func mapSlice(a []float64, f func(float64) float64) []float64 {
	res := make([]float64, len(a))
	for i, ai := range a {
		res[i] = f(ai)
	}
	return res
}
