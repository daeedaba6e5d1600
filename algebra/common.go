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

import (
	"math"
	"sync/atomic"
)

var spowEnabled atomic.Bool

func init() {
	spowEnabled.Store(true)
}

// SpowEnabled reports whether [Spow] currently preserves signs.
func SpowEnabled() bool {
	return spowEnabled.Load()
}

// SetSpowEnabled toggles the sign-preserving behaviour of [Spow] and
// returns the previous setting.  With the behaviour disabled, Spow is plain
// exponentiation and negative bases yield NaN for fractional exponents.
func SetSpowEnabled(enabled bool) bool {
	return spowEnabled.Swap(enabled)
}

// Spow computes sign(a) * |a|^p, a safe power function which keeps negative
// numbers negative instead of producing NaN.
func Spow(a, p float64) float64 {
	if !spowEnabled.Load() {
		return math.Pow(a, p)
	}
	if a < 0 {
		return -math.Pow(-a, p)
	}
	return math.Pow(a, p)
}

// SdivMode selects the behaviour of [Sdiv] for zero denominators.
type SdivMode int

const (
	// SdivZero yields 0 for zero denominators.  This is the default.
	SdivZero SdivMode = iota

	// SdivIgnore yields the IEEE 754 result (Inf or NaN).
	SdivIgnore

	// SdivNaN yields NaN for zero denominators.
	SdivNaN

	// SdivWarning yields the IEEE 754 result and reports a warning through
	// the handler installed with SetSdivWarningHandler.
	SdivWarning
)

func (m SdivMode) String() string {
	switch m {
	case SdivZero:
		return "Zero"
	case SdivIgnore:
		return "Ignore"
	case SdivNaN:
		return "NaN"
	case SdivWarning:
		return "Warning"
	default:
		return "Unknown"
	}
}

var sdivMode atomic.Int32

var sdivWarn atomic.Pointer[func(a, b float64)]

// CurrentSdivMode returns the process-wide zero-denominator mode.
func CurrentSdivMode() SdivMode {
	return SdivMode(sdivMode.Load())
}

// SetSdivMode sets the process-wide zero-denominator mode and returns the
// previous mode.
func SetSdivMode(m SdivMode) SdivMode {
	return SdivMode(sdivMode.Swap(int32(m)))
}

// SetSdivWarningHandler installs the handler called by [Sdiv] in
// [SdivWarning] mode.
func SetSdivWarningHandler(h func(a, b float64)) {
	sdivWarn.Store(&h)
}

// Sdiv divides a by b with well-defined behaviour for zero denominators,
// selected by the process-wide [SdivMode].
func Sdiv(a, b float64) float64 {
	if b != 0 {
		return a / b
	}
	switch CurrentSdivMode() {
	case SdivZero:
		return 0
	case SdivNaN:
		return math.NaN()
	case SdivWarning:
		if h := sdivWarn.Load(); h != nil && *h != nil {
			(*h)(a, b)
		}
		return a / b
	default:
		return a / b
	}
}

// Lerp linearly interpolates between a and b by factor t.
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// LinearConversion maps a from the range [oldMin, oldMax] to the range
// [newMin, newMax].
func LinearConversion(a, oldMin, oldMax, newMin, newMax float64) float64 {
	ratio := (newMax - newMin) / (oldMax - oldMin)
	return (a-oldMin)*ratio + newMin
}

// LinstepFunction is the linear step function of a between edge values.
func LinstepFunction(x, a, b float64, clip bool) float64 {
	y := (1-x)*a + x*b
	if clip {
		lo, hi := a, b
		if lo > hi {
			lo, hi = hi, lo
		}
		y = math.Min(math.Max(y, lo), hi)
	}
	return y
}

// SmoothstepFunction evaluates the smoothstep sigmoid of x between the
// edges a and b.
func SmoothstepFunction(x, a, b float64, clip bool) float64 {
	t := (x - a) / (b - a)
	if clip {
		t = math.Min(math.Max(t, 0), 1)
	}
	return t * t * (3 - 2*t)
}

// EuclideanDistance returns the euclidean distance between two points.
func EuclideanDistance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// ManhattanDistance returns the city-block distance between two points.
func ManhattanDistance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += math.Abs(a[i] - b[i])
	}
	return sum
}

// NormaliseMaximum scales a so that its largest absolute element becomes
// factor, returning a new slice.  A slice of zeros is returned unchanged.
func NormaliseMaximum(a []float64, factor float64, clip bool) []float64 {
	var max float64
	for _, ai := range a {
		if v := math.Abs(ai); v > max {
			max = v
		}
	}
	res := make([]float64, len(a))
	if max == 0 {
		copy(res, a)
		return res
	}
	for i, ai := range a {
		v := ai / max * factor
		if clip && v < 0 {
			v = 0
		}
		res[i] = v
	}
	return res
}

// Operation is one of the four elementary arithmetic operations plus
// exponentiation, used by the Signal and LUT arithmetic entry points.
type Operation int

const (
	Addition Operation = iota
	Subtraction
	Multiplication
	Division
	Exponentiation
)

func (op Operation) String() string {
	switch op {
	case Addition:
		return "+"
	case Subtraction:
		return "-"
	case Multiplication:
		return "*"
	case Division:
		return "/"
	case Exponentiation:
		return "^"
	default:
		return "?"
	}
}

// IsValid reports whether op is one of the defined operations.
func (op Operation) IsValid() bool {
	return op >= Addition && op <= Exponentiation
}

// Apply computes "a op b".
func (op Operation) Apply(a, b float64) float64 {
	switch op {
	case Addition:
		return a + b
	case Subtraction:
		return a - b
	case Multiplication:
		return a * b
	case Division:
		return a / b
	case Exponentiation:
		return math.Pow(a, b)
	default:
		return math.NaN()
	}
}
