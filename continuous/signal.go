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

package continuous

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"seehuhn.de/go/colour"
	"seehuhn.de/go/colour/algebra"
)

// InterpolatorType selects the interpolator fitted by a [Signal].
type InterpolatorType int

const (
	// InterpolatorKernel is windowed kernel convolution, by default with
	// the Lanczos kernel.  This is the default interpolator.
	InterpolatorKernel InterpolatorType = iota

	InterpolatorLinear
	InterpolatorNearestNeighbour
	InterpolatorCubicSpline
	InterpolatorPchip
	InterpolatorSprague
	InterpolatorNull
)

func (t InterpolatorType) String() string {
	switch t {
	case InterpolatorKernel:
		return "Kernel"
	case InterpolatorLinear:
		return "Linear"
	case InterpolatorNearestNeighbour:
		return "Nearest Neighbour"
	case InterpolatorCubicSpline:
		return "Cubic Spline"
	case InterpolatorPchip:
		return "Pchip"
	case InterpolatorSprague:
		return "Sprague"
	case InterpolatorNull:
		return "Null"
	default:
		return "Unknown"
	}
}

// IsValid reports whether t names a supported interpolator.
func (t InterpolatorType) IsValid() bool {
	return t >= InterpolatorKernel && t <= InterpolatorNull
}

// InterpolatorSpec selects and parameterises a Signal's interpolator.
// Parameters not used by the selected type are ignored.
type InterpolatorSpec struct {
	Type InterpolatorType

	// Kernel, KernelA, KernelB and Window parameterise
	// [InterpolatorKernel]; see [algebra.KernelOptions].
	Kernel            KernelParams
	AbsoluteTolerance float64 // InterpolatorNull snapping tolerance
	Default           float64 // InterpolatorNull fallback value
}

// KernelParams are the kernel convolution parameters of an
// [InterpolatorSpec].
type KernelParams struct {
	Kernel algebra.KernelType
	A, B   float64
	Window int
}

// ExtrapolatorSpec selects and parameterises a Signal's extrapolator.
// The zero value is constant extrapolation with both sides undefined.
type ExtrapolatorSpec struct {
	Method algebra.ExtrapolationMethod

	// Left and Right are the constant extrapolation values; a nil
	// pointer leaves the corresponding side undefined (NaN).
	Left, Right *float64
}

// Signal is a continuous function backed by discrete samples.  The domain
// is kept sorted in strictly increasing order at all times; interpolator
// and extrapolator are fitted lazily on first evaluation and refitted after
// each mutation.
//
// A Signal is not safe for concurrent mutation.
type Signal struct {
	name   string
	x, y   []float64
	interp InterpolatorSpec
	extrap ExtrapolatorSpec

	fitted *algebra.Extrapolator
}

// SignalOptions configures a new [Signal].
type SignalOptions struct {
	Name         string
	Interpolator *InterpolatorSpec
	Extrapolator *ExtrapolatorSpec
}

// NewSignal creates a Signal from the given range values and domain.  A nil
// domain defaults to 0, 1, ..., len(rng)-1.  Unsorted domains are sorted;
// when the same domain value occurs more than once, the last range value
// given wins.
func NewSignal(rng, domain []float64, opts *SignalOptions) (*Signal, error) {
	const op = "NewSignal"
	if domain == nil {
		domain = make([]float64, len(rng))
		for i := range domain {
			domain[i] = float64(i)
		}
	}
	if len(domain) != len(rng) {
		return nil, newUsageError(op,
			"domain and range must have the same length, got %d and %d",
			len(domain), len(rng))
	}

	s := &Signal{}
	if opts != nil {
		s.name = opts.Name
		if opts.Interpolator != nil {
			if !opts.Interpolator.Type.IsValid() {
				return nil, newUsageError(op,
					"unknown interpolator type %d", int(opts.Interpolator.Type))
			}
			s.interp = *opts.Interpolator
		}
		if opts.Extrapolator != nil {
			if !opts.Extrapolator.Method.IsValid() {
				return nil, newUsageError(op,
					"unknown extrapolation method %d", int(opts.Extrapolator.Method))
			}
			s.extrap = *opts.Extrapolator
		}
	}

	x := make([]float64, len(domain))
	y := make([]float64, len(rng))
	copy(x, domain)
	copy(y, rng)
	warnNonFinite(op, x)
	s.x, s.y = sortSamples(x, y)
	return s, nil
}

// NewSignalFromMap creates a Signal from a domain-to-range mapping.
func NewSignalFromMap(m map[float64]float64, opts *SignalOptions) (*Signal, error) {
	x := make([]float64, 0, len(m))
	for k := range m {
		x = append(x, k)
	}
	sort.Float64s(x)
	y := make([]float64, len(x))
	for i, k := range x {
		y[i] = m[k]
	}
	return NewSignal(y, x, opts)
}

// sortSamples sorts the sample pairs by domain value and removes duplicate
// domain values, keeping the last range value given for each.
func sortSamples(x, y []float64) ([]float64, []float64) {
	idx := make([]int, len(x))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return x[idx[a]] < x[idx[b]] })

	outX := x[:0]
	outY := y[:0]
	sx := make([]float64, len(x))
	sy := make([]float64, len(y))
	for i, j := range idx {
		sx[i], sy[i] = x[j], y[j]
	}
	for i := range sx {
		n := len(outX)
		if n > 0 && outX[n-1] == sx[i] {
			outY[n-1] = sy[i] // last write wins
			continue
		}
		outX = append(outX, sx[i])
		outY = append(outY, sy[i])
	}
	return outX, outY
}

func warnNonFinite(op string, vals []float64) {
	for _, v := range vals {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			colour.Warn("%s: non-finite value %g in domain", op, v)
			return
		}
	}
}

// Name returns the signal's name.
func (s *Signal) Name() string { return s.name }

// SetName sets the signal's name.
func (s *Signal) SetName(name string) { s.name = name }

// Len returns the number of samples.
func (s *Signal) Len() int { return len(s.x) }

// Domain returns a copy of the sorted domain values.
func (s *Signal) Domain() []float64 {
	res := make([]float64, len(s.x))
	copy(res, s.x)
	return res
}

// Range returns a copy of the range values, in domain order.
func (s *Signal) Range() []float64 {
	res := make([]float64, len(s.y))
	copy(res, s.y)
	return res
}

// Interpolator returns the signal's interpolator selection.
func (s *Signal) Interpolator() InterpolatorSpec { return s.interp }

// Extrapolator returns the signal's extrapolator selection.
func (s *Signal) Extrapolator() ExtrapolatorSpec { return s.extrap }

// SetInterpolator replaces the interpolator selection and invalidates the
// fitted interpolator.
func (s *Signal) SetInterpolator(spec InterpolatorSpec) error {
	if !spec.Type.IsValid() {
		return newUsageError("SetInterpolator",
			"unknown interpolator type %d", int(spec.Type))
	}
	s.interp = spec
	s.invalidate()
	return nil
}

// SetExtrapolator replaces the extrapolator selection and invalidates the
// fitted interpolator.
func (s *Signal) SetExtrapolator(spec ExtrapolatorSpec) error {
	if !spec.Method.IsValid() {
		return newUsageError("SetExtrapolator",
			"unknown extrapolation method %d", int(spec.Method))
	}
	s.extrap = spec
	s.invalidate()
	return nil
}

func (s *Signal) invalidate() {
	s.fitted = nil
}

// fit constructs the interpolator and extrapolator for the current samples.
func (s *Signal) fit() error {
	if s.fitted != nil {
		return nil
	}

	var ip algebra.Interpolator
	var err error
	switch s.interp.Type {
	case InterpolatorKernel:
		ip, err = algebra.NewKernelInterpolator(s.x, s.y, &algebra.KernelOptions{
			Kernel: s.interp.Kernel.Kernel,
			A:      s.interp.Kernel.A,
			B:      s.interp.Kernel.B,
			Window: s.interp.Kernel.Window,
		})
	case InterpolatorLinear:
		ip, err = algebra.NewLinearInterpolator(s.x, s.y)
	case InterpolatorNearestNeighbour:
		ip, err = algebra.NewNearestNeighbourInterpolator(s.x, s.y)
	case InterpolatorCubicSpline:
		ip, err = algebra.NewCubicSplineInterpolator(s.x, s.y)
	case InterpolatorPchip:
		ip, err = algebra.NewPchipInterpolator(s.x, s.y)
	case InterpolatorSprague:
		ip, err = algebra.NewSpragueInterpolator(s.x, s.y)
	case InterpolatorNull:
		def := s.interp.Default
		ip, err = algebra.NewNullInterpolator(s.x, s.y,
			s.interp.AbsoluteTolerance, def)
	default:
		err = newUsageError("Signal",
			"unknown interpolator type %d", int(s.interp.Type))
	}
	if err != nil {
		return err
	}

	ex, err := algebra.NewExtrapolator(ip, &algebra.ExtrapolatorOptions{
		Method: s.extrap.Method,
		Left:   s.extrap.Left,
		Right:  s.extrap.Right,
	})
	if err != nil {
		return err
	}
	s.fitted = ex
	return nil
}

// EvaluateAt returns the signal value at x, interpolating between samples
// and extrapolating outside the sampled domain.
func (s *Signal) EvaluateAt(x float64) (float64, error) {
	if len(s.x) == 0 {
		return 0, newUsageError("EvaluateAt", "signal has no samples")
	}
	if err := s.fit(); err != nil {
		return 0, err
	}
	return s.fitted.Evaluate(x)
}

// Evaluate returns the signal values at every element of xs.
func (s *Signal) Evaluate(xs []float64) ([]float64, error) {
	if len(s.x) == 0 {
		return nil, newUsageError("Evaluate", "signal has no samples")
	}
	if err := s.fit(); err != nil {
		return nil, err
	}
	return s.fitted.EvaluateSlice(xs)
}

// At returns the stored range value for the exact domain value x, and
// whether such a sample exists.
func (s *Signal) At(x float64) (float64, bool) {
	i := sort.SearchFloat64s(s.x, x)
	if i < len(s.x) && s.x[i] == x {
		return s.y[i], true
	}
	return 0, false
}

// Set stores the range value v for the domain value x.  An existing sample
// at x is overwritten; otherwise a new sample is inserted, keeping the
// domain sorted.
func (s *Signal) Set(x, v float64) {
	i := sort.SearchFloat64s(s.x, x)
	if i < len(s.x) && s.x[i] == x {
		s.y[i] = v
	} else {
		s.x = append(s.x, 0)
		s.y = append(s.y, 0)
		copy(s.x[i+1:], s.x[i:])
		copy(s.y[i+1:], s.y[i:])
		s.x[i] = x
		s.y[i] = v
	}
	s.invalidate()
}

// SetIndex assigns the range value at sample index i.
func (s *Signal) SetIndex(i int, v float64) error {
	if i < 0 || i >= len(s.y) {
		return newUsageError("SetIndex",
			"index %d out of range [0, %d)", i, len(s.y))
	}
	s.y[i] = v
	s.invalidate()
	return nil
}

// SetIndexRange assigns the range value v at the existing sample indices
// lo <= i < hi.  No new samples are created.
func (s *Signal) SetIndexRange(lo, hi int, v float64) error {
	if lo < 0 || hi > len(s.y) || lo > hi {
		return newUsageError("SetIndexRange",
			"invalid index range [%d, %d) for %d samples", lo, hi, len(s.y))
	}
	for i := lo; i < hi; i++ {
		s.y[i] = v
	}
	s.invalidate()
	return nil
}

// SetDomain replaces the domain values.  The new domain must have the same
// length as the current one; the sample pairs are re-sorted afterwards.
func (s *Signal) SetDomain(domain []float64) error {
	if len(domain) != len(s.x) {
		return newUsageError("SetDomain",
			"expected %d values, got %d", len(s.x), len(domain))
	}
	warnNonFinite("SetDomain", domain)
	x := make([]float64, len(domain))
	copy(x, domain)
	s.x, s.y = sortSamples(x, s.y)
	s.invalidate()
	return nil
}

// SetRange replaces the range values.  The new range must have the same
// length as the current one.
func (s *Signal) SetRange(rng []float64) error {
	if len(rng) != len(s.y) {
		return newUsageError("SetRange",
			"expected %d values, got %d", len(s.y), len(rng))
	}
	copy(s.y, rng)
	s.invalidate()
	return nil
}

// IsUniform reports whether the domain samples are evenly spaced.
func (s *Signal) IsUniform() bool {
	return algebra.IsUniform(s.x)
}

// ArithmeticalOperation applies "s op value" element-wise.  The value may
// be a float64 scalar, a []float64 of the same length as the range, or
// another *Signal with an identical domain.  With inPlace the receiver is
// modified and returned; otherwise a new Signal is returned.
func (s *Signal) ArithmeticalOperation(value any, op algebra.Operation, inPlace bool) (*Signal, error) {
	const fn = "ArithmeticalOperation"
	if !op.IsValid() {
		return nil, newUsageError(fn, "unknown operation %d", int(op))
	}

	target := s
	if !inPlace {
		target = s.Copy()
	}

	switch v := value.(type) {
	case float64:
		for i := range target.y {
			target.y[i] = op.Apply(target.y[i], v)
		}
	case []float64:
		if len(v) != len(target.y) {
			return nil, newUsageError(fn,
				"expected %d values, got %d", len(target.y), len(v))
		}
		for i := range target.y {
			target.y[i] = op.Apply(target.y[i], v[i])
		}
	case *Signal:
		if !sameFloats(target.x, v.x) {
			return nil, newUsageError(fn, "domains do not match")
		}
		for i := range target.y {
			target.y[i] = op.Apply(target.y[i], v.y[i])
		}
	default:
		return nil, newUsageError(fn, "unsupported operand type %T", value)
	}

	target.invalidate()
	return target, nil
}

// FillMethod selects how [Signal.FillNaN] replaces undefined range values.
type FillMethod int

const (
	// FillInterpolation interpolates replacement values from the
	// remaining samples.  This is the default.
	FillInterpolation FillMethod = iota

	// FillConstant replaces undefined values with a constant.
	FillConstant
)

// FillNaN replaces NaN range values.  With [FillInterpolation] the
// replacement values are interpolated from the finite samples using the
// signal's own interpolator and extrapolator; with [FillConstant] the given
// constant is used.
func (s *Signal) FillNaN(method FillMethod, constant float64) error {
	var holes []int
	for i, v := range s.y {
		if math.IsNaN(v) {
			holes = append(holes, i)
		}
	}
	if len(holes) == 0 {
		return nil
	}

	switch method {
	case FillConstant:
		for _, i := range holes {
			s.y[i] = constant
		}
	case FillInterpolation:
		x := make([]float64, 0, len(s.x)-len(holes))
		y := make([]float64, 0, len(s.y)-len(holes))
		for i := range s.y {
			if !math.IsNaN(s.y[i]) {
				x = append(x, s.x[i])
				y = append(y, s.y[i])
			}
		}
		valid, err := NewSignal(y, x, &SignalOptions{
			Interpolator: &s.interp,
			Extrapolator: &s.extrap,
		})
		if err != nil {
			return err
		}
		for _, i := range holes {
			v, err := valid.EvaluateAt(s.x[i])
			if err != nil {
				return err
			}
			s.y[i] = v
		}
	default:
		return newUsageError("FillNaN", "unknown fill method %d", int(method))
	}
	s.invalidate()
	return nil
}

// DomainDistance returns the absolute distance from x to the closest
// domain sample, measured in domain units rather than in fractional
// sample indices.
func (s *Signal) DomainDistance(x float64) float64 {
	best := math.Inf(1)
	for _, xi := range s.x {
		if d := math.Abs(x - xi); d < best {
			best = d
		}
	}
	return best
}

// Copy returns a deep copy of the signal.
func (s *Signal) Copy() *Signal {
	cp := &Signal{
		name:   s.name,
		x:      make([]float64, len(s.x)),
		y:      make([]float64, len(s.y)),
		interp: s.interp,
		extrap: s.extrap,
	}
	copy(cp.x, s.x)
	copy(cp.y, s.y)
	return cp
}

// Equal reports whether two signals have the same samples and the same
// interpolator and extrapolator selections.  NaN range values compare
// equal to each other; names are ignored.
func (s *Signal) Equal(other *Signal) bool {
	if other == nil {
		return false
	}
	if !sameFloats(s.x, other.x) || !sameFloatsNaN(s.y, other.y) {
		return false
	}
	if s.interp != other.interp {
		return false
	}
	return s.extrap.Method == other.extrap.Method &&
		sameFloatPtr(s.extrap.Left, other.extrap.Left) &&
		sameFloatPtr(s.extrap.Right, other.extrap.Right)
}

// String returns a compact listing of the sample pairs.
func (s *Signal) String() string {
	var b strings.Builder
	if s.name != "" {
		fmt.Fprintf(&b, "%s: ", s.name)
	}
	b.WriteString("[")
	for i := range s.x {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%g: %g", s.x[i], s.y[i])
	}
	b.WriteString("]")
	return b.String()
}

func sameFloat(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}

func sameFloatPtr(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return sameFloat(*a, *b)
}

func sameFloats(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func sameFloatsNaN(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !sameFloat(a[i], b[i]) {
			return false
		}
	}
	return true
}
