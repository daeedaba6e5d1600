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
	"sort"
)

// Interpolator is a single-axis interpolating function fitted to a set of
// samples at construction time.
type Interpolator interface {
	// Evaluate returns the interpolated value at x.  Evaluating outside
	// the fitted domain yields a *RangeError.
	Evaluate(x float64) (float64, error)

	// Bounds returns the smallest and largest domain sample.
	Bounds() (low, high float64)

	// BoundarySamples returns the two sample pairs adjacent to one end of
	// the domain; side < 0 selects the low end, side > 0 the high end.
	// Linear extrapolation extends the line through these samples.
	BoundarySamples(side int) (x, y [2]float64)
}

// EvaluateSlice evaluates ip at every element of xs.  The first evaluation
// error aborts and is returned.
func EvaluateSlice(ip Interpolator, xs []float64) ([]float64, error) {
	res := make([]float64, len(xs))
	for i, x := range xs {
		y, err := ip.Evaluate(x)
		if err != nil {
			return nil, err
		}
		res[i] = y
	}
	return res, nil
}

// uniformTolerance is the relative tolerance used to decide whether domain
// samples are evenly spaced.
const uniformTolerance = 1e-10

// IsUniform reports whether consecutive differences of x are constant
// within floating point tolerance.
func IsUniform(x []float64) bool {
	if len(x) < 3 {
		return true
	}
	step := x[1] - x[0]
	tol := math.Abs(step) * uniformTolerance
	for i := 2; i < len(x); i++ {
		if math.Abs((x[i]-x[i-1])-step) > tol {
			return false
		}
	}
	return true
}

// samples holds the validated domain and range arrays shared by all
// interpolators.
type samples struct {
	x, y []float64
}

// newSamples validates and copies the sample arrays.  The domain must be
// strictly increasing, both arrays must have the same length and at least
// minCount entries.
func newSamples(fn string, x, y []float64, minCount int) (samples, error) {
	if len(x) != len(y) {
		return samples{}, newArgumentError(fn, "samples",
			"domain and range must have the same length, got %d and %d",
			len(x), len(y))
	}
	if len(x) < minCount {
		return samples{}, newArgumentError(fn, "samples",
			"at least %d samples required, got %d", minCount, len(x))
	}
	for i := 1; i < len(x); i++ {
		if !(x[i] > x[i-1]) {
			return samples{}, newArgumentError(fn, "domain",
				"samples must be strictly increasing, got %g after %g at index %d",
				x[i], x[i-1], i)
		}
	}
	s := samples{
		x: make([]float64, len(x)),
		y: make([]float64, len(y)),
	}
	copy(s.x, x)
	copy(s.y, y)
	return s, nil
}

func (s samples) Bounds() (low, high float64) {
	return s.x[0], s.x[len(s.x)-1]
}

func (s samples) BoundarySamples(side int) (x, y [2]float64) {
	n := len(s.x)
	if side < 0 {
		return [2]float64{s.x[0], s.x[1]}, [2]float64{s.y[0], s.y[1]}
	}
	return [2]float64{s.x[n-2], s.x[n-1]}, [2]float64{s.y[n-2], s.y[n-1]}
}

// checkRange verifies that x lies within the fitted domain.
func (s samples) checkRange(x float64) error {
	if x < s.x[0] || x > s.x[len(s.x)-1] {
		return &RangeError{X: x, Low: s.x[0], High: s.x[len(s.x)-1]}
	}
	return nil
}

// locate returns the index i such that x lies in [x[i], x[i+1]].  The last
// domain sample maps to the final interval.
func (s samples) locate(x float64) int {
	i := sort.SearchFloat64s(s.x, x)
	if i > 0 {
		i--
	}
	if i > len(s.x)-2 {
		i = len(s.x) - 2
	}
	return i
}

// NearestNeighbourInterpolator returns the range value of the domain sample
// closest to the query point, resolving ties toward the lower index.
type NearestNeighbourInterpolator struct {
	samples
}

// NewNearestNeighbourInterpolator fits a nearest-neighbour interpolator to
// the given samples.
func NewNearestNeighbourInterpolator(x, y []float64) (*NearestNeighbourInterpolator, error) {
	s, err := newSamples("NearestNeighbourInterpolator", x, y, 1)
	if err != nil {
		return nil, err
	}
	return &NearestNeighbourInterpolator{samples: s}, nil
}

// Evaluate returns the range value of the sample closest to x.
func (ip *NearestNeighbourInterpolator) Evaluate(x float64) (float64, error) {
	if err := ip.checkRange(x); err != nil {
		return 0, err
	}
	if len(ip.x) == 1 {
		return ip.y[0], nil
	}
	i := ip.locate(x)
	// Ties resolve toward the lower index.
	if x-ip.x[i] <= ip.x[i+1]-x {
		return ip.y[i], nil
	}
	return ip.y[i+1], nil
}

// LinearInterpolator performs piecewise linear interpolation between
// bracketing samples.
type LinearInterpolator struct {
	samples
}

// NewLinearInterpolator fits a piecewise linear interpolator to the given
// samples.  At least two samples are required.
func NewLinearInterpolator(x, y []float64) (*LinearInterpolator, error) {
	s, err := newSamples("LinearInterpolator", x, y, 2)
	if err != nil {
		return nil, err
	}
	return &LinearInterpolator{samples: s}, nil
}

// Evaluate returns the linearly interpolated value at x.
func (ip *LinearInterpolator) Evaluate(x float64) (float64, error) {
	if err := ip.checkRange(x); err != nil {
		return 0, err
	}
	i := ip.locate(x)
	t := (x - ip.x[i]) / (ip.x[i+1] - ip.x[i])
	return Lerp(ip.y[i], ip.y[i+1], t), nil
}

// NullInterpolator snaps query points to the nearest domain sample within a
// tolerance window and yields a configurable default value otherwise.  It
// is used for exact-match-only tables.
type NullInterpolator struct {
	samples
	absoluteTolerance float64
	defaultValue      float64
}

// DefaultNullTolerance is the absolute snapping tolerance used when none is
// given.
const DefaultNullTolerance = 1e-7

// NewNullInterpolator fits a null interpolator.  A non-positive tolerance
// selects [DefaultNullTolerance]; def is the value yielded for queries not
// within tolerance of any sample (commonly NaN).
func NewNullInterpolator(x, y []float64, tolerance, def float64) (*NullInterpolator, error) {
	s, err := newSamples("NullInterpolator", x, y, 1)
	if err != nil {
		return nil, err
	}
	if tolerance <= 0 {
		tolerance = DefaultNullTolerance
	}
	return &NullInterpolator{
		samples:           s,
		absoluteTolerance: tolerance,
		defaultValue:      def,
	}, nil
}

// Evaluate returns the exact sample value if x is within tolerance of a
// domain sample, and the configured default value otherwise.
func (ip *NullInterpolator) Evaluate(x float64) (float64, error) {
	if err := ip.checkRange(x); err != nil {
		return 0, err
	}
	best, bestDist := -1, math.Inf(1)
	if len(ip.x) == 1 {
		best, bestDist = 0, math.Abs(x-ip.x[0])
	} else {
		i := ip.locate(x)
		for _, j := range []int{i, i + 1} {
			if d := math.Abs(x - ip.x[j]); d < bestDist {
				best, bestDist = j, d
			}
		}
	}
	if bestDist <= ip.absoluteTolerance {
		return ip.y[best], nil
	}
	return ip.defaultValue, nil
}

// KernelInterpolator resamples uniformly spaced samples by convolution with
// a windowed kernel.  The sample array is reflected at both ends to pad the
// convolution window.
type KernelInterpolator struct {
	samples
	kernel   KernelType
	a, b     float64
	window   int
	interval float64
}

// KernelOptions configures a [KernelInterpolator].
type KernelOptions struct {
	// Kernel selects the resampling kernel.  The zero value is the
	// Lanczos kernel.
	Kernel KernelType

	// A and B are the kernel parameters; unused parameters are ignored.
	// For the Lanczos and sinc kernels A is the half-width and defaults
	// to the window size.
	A, B float64

	// Window is the half-width, in samples, of the convolution window.
	// Zero selects the default of 3.
	Window int
}

// NewKernelInterpolator fits a kernel interpolator to uniformly spaced
// samples.
func NewKernelInterpolator(x, y []float64, opts *KernelOptions) (*KernelInterpolator, error) {
	const fn = "KernelInterpolator"
	s, err := newSamples(fn, x, y, 2)
	if err != nil {
		return nil, err
	}
	if !IsUniform(x) {
		return nil, newArgumentError(fn, "domain",
			"samples must be uniformly spaced")
	}
	var o KernelOptions
	if opts != nil {
		o = *opts
	}
	if !o.Kernel.IsValid() {
		return nil, newArgumentError(fn, "kernel", "unknown kernel %d", int(o.Kernel))
	}
	if o.Window == 0 {
		o.Window = 3
	}
	if o.Window < 1 {
		return nil, newArgumentError(fn, "window",
			"must be at least 1, got %d", o.Window)
	}
	if o.A == 0 {
		o.A = float64(o.Window)
	}
	switch o.Kernel {
	case KernelKindLanczos, KernelKindSinc:
		if o.A < 1 {
			return nil, newArgumentError(fn, "a",
				"kernel half-width must be at least 1, got %g", o.A)
		}
	}
	return &KernelInterpolator{
		samples:  s,
		kernel:   o.Kernel,
		a:        o.A,
		b:        o.B,
		window:   o.Window,
		interval: x[1] - x[0],
	}, nil
}

// reflectIndex maps an out-of-bounds sample index into [0, n) by mirror
// reflection about the array ends.
func reflectIndex(i, n int) int {
	if n == 1 {
		return 0
	}
	period := 2 * (n - 1)
	i %= period
	if i < 0 {
		i += period
	}
	if i >= n {
		i = period - i
	}
	return i
}

// Evaluate returns the kernel-resampled value at x.
func (ip *KernelInterpolator) Evaluate(x float64) (float64, error) {
	if err := ip.checkRange(x); err != nil {
		return 0, err
	}
	u := (x - ip.x[0]) / ip.interval
	base := int(math.Floor(u))
	var sum float64
	for j := base - ip.window + 1; j <= base+ip.window; j++ {
		w := ip.kernel.evaluate(u-float64(j), ip.a, ip.b)
		if w == 0 {
			continue
		}
		sum += w * ip.y[reflectIndex(j, len(ip.y))]
	}
	return sum, nil
}
