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
	"math"

	"seehuhn.de/go/colour/algebra"
	"seehuhn.de/go/colour/continuous"
)

// SpectralDistribution is spectral data sampled over wavelengths in
// nanometres, for example a reflectance or an illuminant power
// distribution.
//
// By default, uniformly sampled data with at least six samples is
// interpolated with the Sprague (1880) method as recommended by
// CIE 167:2005, other data with a natural cubic spline; queries outside
// the sampled range yield NaN.
type SpectralDistribution struct {
	*continuous.Signal
}

// SDOptions configures a new [SpectralDistribution].
type SDOptions struct {
	Name         string
	Interpolator *continuous.InterpolatorSpec
	Extrapolator *continuous.ExtrapolatorSpec
}

// NewSpectralDistribution creates a SpectralDistribution from values
// sampled at the given wavelengths.  Nil wavelengths default to
// 0, 1, ..., len(values)-1.
func NewSpectralDistribution(values, wavelengths []float64, opts *SDOptions) (*SpectralDistribution, error) {
	var sOpts continuous.SignalOptions
	if opts != nil {
		sOpts.Name = opts.Name
		sOpts.Interpolator = opts.Interpolator
		sOpts.Extrapolator = opts.Extrapolator
	}
	if sOpts.Interpolator == nil {
		spec := defaultSDInterpolator(wavelengths, len(values))
		sOpts.Interpolator = &spec
	}
	sig, err := continuous.NewSignal(values, wavelengths, &sOpts)
	if err != nil {
		return nil, err
	}
	return &SpectralDistribution{Signal: sig}, nil
}

// defaultSDInterpolator selects Sprague interpolation for uniformly
// sampled data and a cubic spline otherwise.
func defaultSDInterpolator(wavelengths []float64, n int) continuous.InterpolatorSpec {
	if n >= 6 && (wavelengths == nil || algebra.IsUniform(wavelengths)) {
		return continuous.InterpolatorSpec{Type: continuous.InterpolatorSprague}
	}
	if n >= 3 {
		return continuous.InterpolatorSpec{Type: continuous.InterpolatorCubicSpline}
	}
	return continuous.InterpolatorSpec{Type: continuous.InterpolatorLinear}
}

// Wavelengths returns a copy of the sampled wavelengths.
func (sd *SpectralDistribution) Wavelengths() []float64 {
	return sd.Domain()
}

// Values returns a copy of the sampled values.
func (sd *SpectralDistribution) Values() []float64 {
	return sd.Range()
}

// Shape returns the spectral shape of the sampled wavelengths.  For
// unevenly sampled data the most common sampling interval is reported.
func (sd *SpectralDistribution) Shape() SpectralShape {
	return shapeOf(sd.Domain())
}

func shapeOf(wls []float64) SpectralShape {
	n := len(wls)
	if n < 2 {
		var s SpectralShape
		if n == 1 {
			s.Start, s.End = wls[0], wls[0]
		}
		return s
	}
	counts := make(map[float64]int)
	for i := 1; i < n; i++ {
		d := math.Round((wls[i]-wls[i-1])*1e7) / 1e7
		counts[d]++
	}
	var interval float64
	best := -1
	for d, c := range counts {
		if c > best || (c == best && d < interval) {
			interval, best = d, c
		}
	}
	return SpectralShape{Start: wls[0], End: wls[n-1], Interval: interval}
}

// Copy returns a deep copy of the distribution.
func (sd *SpectralDistribution) Copy() *SpectralDistribution {
	return &SpectralDistribution{Signal: sd.Signal.Copy()}
}

// Equal reports whether two distributions have the same samples and the
// same interpolator and extrapolator selections.
func (sd *SpectralDistribution) Equal(other *SpectralDistribution) bool {
	if other == nil {
		return false
	}
	return sd.Signal.Equal(other.Signal)
}

// Interpolate resamples the distribution at the shape's wavelengths which
// lie within the currently sampled range, using the distribution's
// interpolator.
func (sd *SpectralDistribution) Interpolate(shape SpectralShape) error {
	if err := shape.Validate(); err != nil {
		return err
	}
	domain := sd.Domain()
	low, high := domain[0], domain[len(domain)-1]

	var wls []float64
	for _, wl := range shape.Wavelengths() {
		if wl >= low && wl <= high {
			wls = append(wls, wl)
		}
	}
	if len(wls) == 0 {
		return newValidationError("Interpolate",
			"shape %s does not overlap sampled range [%g, %g]",
			shape, low, high)
	}
	values, err := sd.Evaluate(wls)
	if err != nil {
		return err
	}

	return sd.reset(values, wls)
}

// Extrapolate extends the distribution to the shape's wavelengths outside
// the currently sampled range.  The boundary values are held constant, as
// recommended by CIE 15 and practice ASTM E308-15.
func (sd *SpectralDistribution) Extrapolate(shape SpectralShape) error {
	if err := shape.Validate(); err != nil {
		return err
	}
	domain := sd.Domain()
	low, high := domain[0], domain[len(domain)-1]
	values := sd.Range()
	lowV, highV := values[0], values[len(values)-1]

	for _, wl := range shape.Wavelengths() {
		if wl < low {
			sd.Set(wl, lowV)
		} else if wl > high {
			sd.Set(wl, highV)
		}
	}
	return nil
}

// Align resamples the distribution to exactly the shape's wavelengths,
// interpolating within and extrapolating outside the sampled range.
func (sd *SpectralDistribution) Align(shape SpectralShape) error {
	if err := sd.Interpolate(shape); err != nil {
		return err
	}
	if err := sd.Extrapolate(shape); err != nil {
		return err
	}
	return nil
}

// Trim discards the samples outside the shape's wavelength range.
func (sd *SpectralDistribution) Trim(shape SpectralShape) error {
	if err := shape.Validate(); err != nil {
		return err
	}
	domain := sd.Domain()
	values := sd.Range()
	var wls, vals []float64
	for i, wl := range domain {
		if wl >= shape.Start && wl <= shape.End {
			wls = append(wls, wl)
			vals = append(vals, values[i])
		}
	}
	if len(wls) == 0 {
		return newValidationError("Trim",
			"shape %s leaves no samples", shape)
	}
	if len(wls) == len(domain) {
		return nil
	}
	return sd.reset(vals, wls)
}

// Normalise scales the distribution so that its largest absolute value
// becomes factor.
func (sd *SpectralDistribution) Normalise(factor float64) error {
	values := algebra.NormaliseMaximum(sd.Range(), factor, false)
	return sd.SetRange(values)
}

// reset replaces the samples, keeping the interpolator and extrapolator
// selections.
func (sd *SpectralDistribution) reset(values, wls []float64) error {
	interp := sd.Interpolator()
	extrap := sd.Extrapolator()
	sig, err := continuous.NewSignal(values, wls, &continuous.SignalOptions{
		Name:         sd.Name(),
		Interpolator: &interp,
		Extrapolator: &extrap,
	})
	if err != nil {
		return err
	}
	sd.Signal = sig
	return nil
}

// MultiSpectralDistributions is a set of spectral distributions sharing
// the same sampled wavelengths, one per channel.  The most prominent use
// is a set of colour matching functions with the channels x, y and z.
type MultiSpectralDistributions struct {
	ms *continuous.MultiSignals
}

// MSDSOptions configures a new [MultiSpectralDistributions].
type MSDSOptions struct {
	Name         string
	Labels       []string
	Interpolator *continuous.InterpolatorSpec
	Extrapolator *continuous.ExtrapolatorSpec
}

// NewMultiSpectralDistributions creates a MultiSpectralDistributions from
// sample-major values: values[i][c] is the value of channel c at
// wavelengths[i].
func NewMultiSpectralDistributions(values [][]float64, wavelengths []float64, opts *MSDSOptions) (*MultiSpectralDistributions, error) {
	var mOpts continuous.MultiSignalsOptions
	if opts != nil {
		mOpts.Name = opts.Name
		mOpts.Labels = opts.Labels
		mOpts.Interpolator = opts.Interpolator
		mOpts.Extrapolator = opts.Extrapolator
	}
	if mOpts.Interpolator == nil {
		spec := defaultSDInterpolator(wavelengths, len(values))
		mOpts.Interpolator = &spec
	}
	ms, err := continuous.NewMultiSignals(values, wavelengths, &mOpts)
	if err != nil {
		return nil, err
	}
	return &MultiSpectralDistributions{ms: ms}, nil
}

// Name returns the name of the distribution set.
func (m *MultiSpectralDistributions) Name() string { return m.ms.Name() }

// SetName sets the name of the distribution set.
func (m *MultiSpectralDistributions) SetName(name string) { m.ms.SetName(name) }

// Labels returns a copy of the channel labels.
func (m *MultiSpectralDistributions) Labels() []string { return m.ms.Labels() }

// Channels returns the number of channels.
func (m *MultiSpectralDistributions) Channels() int { return m.ms.Channels() }

// Len returns the number of sampled wavelengths.
func (m *MultiSpectralDistributions) Len() int { return m.ms.Len() }

// Wavelengths returns a copy of the shared sampled wavelengths.
func (m *MultiSpectralDistributions) Wavelengths() []float64 { return m.ms.Domain() }

// Values returns the sampled values, sample-major: Values()[i][c] is the
// value of channel c at the i-th wavelength.
func (m *MultiSpectralDistributions) Values() [][]float64 { return m.ms.Values() }

// Shape returns the spectral shape of the shared wavelengths.
func (m *MultiSpectralDistributions) Shape() SpectralShape {
	return shapeOf(m.ms.Domain())
}

// Signal returns the spectral distribution of channel c.  The result
// shares no state with the receiver.
func (m *MultiSpectralDistributions) Signal(c int) *SpectralDistribution {
	return &SpectralDistribution{Signal: m.ms.Signal(c)}
}

// EvaluateAt returns the value of every channel at the given wavelength.
func (m *MultiSpectralDistributions) EvaluateAt(wl float64) ([]float64, error) {
	return m.ms.EvaluateAt(wl)
}

// Copy returns a deep copy of the distribution set.
func (m *MultiSpectralDistributions) Copy() *MultiSpectralDistributions {
	return &MultiSpectralDistributions{ms: m.ms.Copy()}
}

// Equal reports whether two distribution sets have the same samples,
// labels, and interpolator and extrapolator selections.
func (m *MultiSpectralDistributions) Equal(other *MultiSpectralDistributions) bool {
	if other == nil {
		return false
	}
	return m.ms.Equal(other.ms)
}

// Align resamples every channel to exactly the shape's wavelengths.
func (m *MultiSpectralDistributions) Align(shape SpectralShape) error {
	return m.perChannel(func(sd *SpectralDistribution) error {
		return sd.Align(shape)
	})
}

// Trim discards the samples outside the shape's wavelength range, in
// every channel.
func (m *MultiSpectralDistributions) Trim(shape SpectralShape) error {
	return m.perChannel(func(sd *SpectralDistribution) error {
		return sd.Trim(shape)
	})
}

// perChannel applies f to each channel's distribution and reassembles the
// shared-domain collection.
func (m *MultiSpectralDistributions) perChannel(f func(*SpectralDistribution) error) error {
	channels := m.ms.Channels()
	sds := make([]*SpectralDistribution, channels)
	for c := 0; c < channels; c++ {
		sd := m.Signal(c)
		if err := f(sd); err != nil {
			return err
		}
		sds[c] = sd
	}

	wls := sds[0].Domain()
	values := make([][]float64, len(wls))
	for i := range values {
		values[i] = make([]float64, channels)
	}
	for c, sd := range sds {
		rng := sd.Range()
		if len(rng) != len(wls) {
			return newValidationError("MultiSpectralDistributions",
				"channel %d has %d samples, expected %d", c, len(rng), len(wls))
		}
		for i, v := range rng {
			values[i][c] = v
		}
	}

	interp := sds[0].Interpolator()
	extrap := sds[0].Extrapolator()
	ms, err := continuous.NewMultiSignals(values, wls, &continuous.MultiSignalsOptions{
		Name:         m.ms.Name(),
		Labels:       m.ms.Labels(),
		Interpolator: &interp,
		Extrapolator: &extrap,
	})
	if err != nil {
		return err
	}
	m.ms = ms
	return nil
}
