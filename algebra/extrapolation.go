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

import "math"

// ExtrapolationMethod selects the behaviour of an [Extrapolator] outside
// the wrapped interpolator's domain.
type ExtrapolationMethod int

const (
	// ExtrapolationConstant yields fixed left/right values outside the
	// domain; unset values yield NaN, signalling "undefined" rather than
	// failing.
	ExtrapolationConstant ExtrapolationMethod = iota

	// ExtrapolationLinear extends the tangent line through the two
	// boundary-adjacent samples on each side.
	ExtrapolationLinear
)

func (m ExtrapolationMethod) String() string {
	switch m {
	case ExtrapolationConstant:
		return "Constant"
	case ExtrapolationLinear:
		return "Linear"
	default:
		return "Unknown"
	}
}

// IsValid reports whether m names a supported extrapolation method.
func (m ExtrapolationMethod) IsValid() bool {
	return m == ExtrapolationConstant || m == ExtrapolationLinear
}

// Extrapolator extends a fitted [Interpolator] beyond its domain.
// In-domain queries are delegated to the wrapped interpolator unchanged, so
// the extrapolator is exactly continuous with it at the domain boundaries.
type Extrapolator struct {
	interpolator Interpolator
	method       ExtrapolationMethod
	left, right  float64
}

// ExtrapolatorOptions configures a new [Extrapolator].
type ExtrapolatorOptions struct {
	// Method selects the extrapolation behaviour.  The zero value is
	// constant extrapolation.
	Method ExtrapolationMethod

	// Left and Right override the values yielded below and above the
	// domain for constant extrapolation.  A nil pointer leaves the
	// corresponding side undefined (NaN).
	Left, Right *float64
}

// NewExtrapolator wraps the given interpolator.  A nil opts selects
// constant extrapolation with both sides undefined (NaN).
func NewExtrapolator(ip Interpolator, opts *ExtrapolatorOptions) (*Extrapolator, error) {
	var method ExtrapolationMethod
	left, right := math.NaN(), math.NaN()
	if opts != nil {
		method = opts.Method
		if opts.Left != nil {
			left = *opts.Left
		}
		if opts.Right != nil {
			right = *opts.Right
		}
	}
	if !method.IsValid() {
		return nil, newArgumentError("Extrapolator", "method",
			"unknown extrapolation method %d", int(method))
	}
	return &Extrapolator{
		interpolator: ip,
		method:       method,
		left:         left,
		right:        right,
	}, nil
}

// Evaluate returns the wrapped interpolator's value for in-domain queries
// and the extrapolated value otherwise.
func (e *Extrapolator) Evaluate(x float64) (float64, error) {
	low, high := e.interpolator.Bounds()
	if x >= low && x <= high {
		return e.interpolator.Evaluate(x)
	}

	switch e.method {
	case ExtrapolationConstant:
		if x < low {
			return e.left, nil
		}
		return e.right, nil
	default: // ExtrapolationLinear
		side := 1
		if x < low {
			side = -1
		}
		sx, sy := e.interpolator.BoundarySamples(side)
		slope := (sy[1] - sy[0]) / (sx[1] - sx[0])
		if side < 0 {
			return sy[0] + (x-sx[0])*slope, nil
		}
		return sy[1] + (x-sx[1])*slope, nil
	}
}

// EvaluateSlice evaluates the extrapolator at every element of xs.
func (e *Extrapolator) EvaluateSlice(xs []float64) ([]float64, error) {
	res := make([]float64, len(xs))
	for i, x := range xs {
		y, err := e.Evaluate(x)
		if err != nil {
			return nil, err
		}
		res[i] = y
	}
	return res, nil
}
