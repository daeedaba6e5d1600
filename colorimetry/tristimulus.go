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
	"sync"

	"gonum.org/v1/gonum/floats"

	"seehuhn.de/go/colour"
	"seehuhn.de/go/colour/algebra"
)

// shapeASTME308 is the practice wavelength range of ASTM E308-15.
var shapeASTME308 = SpectralShape{Start: 360, End: 830, Interval: 1}

// defaultCMFs returns the CIE 1931 2 degree observer at the given
// interval if cmfs is nil.
func defaultCMFs(cmfs *MultiSpectralDistributions, interval float64) (*MultiSpectralDistributions, error) {
	if cmfs != nil {
		return cmfs, nil
	}
	return CMFsCIE1931Observer2Deg(interval)
}

// defaultIlluminant returns the unit distribution over the shape if
// illuminant is nil.  Using ones rather than an illuminant keeps absolute
// conversions with an explicit normalisation constant k unscaled.
func defaultIlluminant(illuminant *SpectralDistribution, shape SpectralShape) (*SpectralDistribution, error) {
	if illuminant != nil {
		return illuminant, nil
	}
	return SDOnes(shape)
}

// SDToXYZIntegration converts a spectral distribution to CIE XYZ
// tristimulus values by Riemann summation over the given shape.  A zero
// shape defaults to the shape of sd; nil cmfs default to the CIE 1931
// 2 degree observer at 1 nm, a nil illuminant to the unit distribution.
//
// The normalisation constant k defaults (when zero) to 100 divided by the
// luminance integral of the illuminant, so that a perfect diffuser yields
// Y = 100; an explicit k, such as the maximum luminous efficacy 683 lm/W,
// bypasses this normalisation and yields absolute values.
func SDToXYZIntegration(sd *SpectralDistribution, cmfs *MultiSpectralDistributions, illuminant *SpectralDistribution, k float64, shape SpectralShape) ([3]float64, error) {
	cmfs, err := defaultCMFs(cmfs, 1)
	if err != nil {
		return [3]float64{}, err
	}
	if shape == (SpectralShape{}) {
		shape = sd.Shape()
	}
	if err := shape.Validate(); err != nil {
		return [3]float64{}, err
	}
	illuminant, err = defaultIlluminant(illuminant, shape)
	if err != nil {
		return [3]float64{}, err
	}

	if cmfs.Shape() != shape {
		cmfs = cmfs.Copy()
		if err := cmfs.Align(shape); err != nil {
			return [3]float64{}, err
		}
	}
	if illuminant.Shape() != shape {
		illuminant = illuminant.Copy()
		if err := illuminant.Align(shape); err != nil {
			return [3]float64{}, err
		}
	}
	sd = sd.Copy()
	if err := sd.Align(shape); err != nil {
		return [3]float64{}, err
	}

	s := illuminant.Values()
	r := sd.Values()
	v := cmfs.Values()
	dw := shape.Interval

	if k == 0 {
		ys := make([]float64, len(s))
		for i := range ys {
			ys[i] = v[i][1] * s[i]
		}
		k = 100 / (floats.Sum(ys) * dw)
	}

	var xyz [3]float64
	prod := make([]float64, len(s))
	for c := 0; c < 3; c++ {
		for i := range prod {
			prod[i] = r[i] * v[i][c] * s[i]
		}
		xyz[c] = k * floats.Sum(prod) * dw
	}
	return fromRange100(xyz), nil
}

// twfKey identifies a cached tristimulus weighting factors table.
type twfKey struct {
	cmfs       string
	illuminant string
	shape      SpectralShape
	k          float64
}

var twfCache = struct {
	sync.Mutex
	m map[twfKey][][3]float64
}{m: make(map[twfKey][][3]float64)}

// TristimulusWeightingFactorsASTME2022 computes the tristimulus weighting
// factors table of practice ASTM E2022-11 for the given measurement shape.
// The colour matching functions and the illuminant must share the same
// spectral shape with a 1 nm interval; the measurement interval must be a
// whole number of nanometres.
//
// Row t of the result weights a reflectance sample at wavelength
// shape.Start + t*shape.Interval.  With k zero the table is normalised so
// that the Y weights sum to 100.
//
// Tables are cached by colour matching function and illuminant name,
// shape, and k; the returned table is a private copy which the caller may
// modify freely.
func TristimulusWeightingFactorsASTME2022(cmfs *MultiSpectralDistributions, illuminant *SpectralDistribution, shape SpectralShape, k float64) ([][3]float64, error) {
	const op = "TristimulusWeightingFactorsASTME2022"
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if cmfs.Shape().Interval != 1 {
		return nil, newValidationError(op,
			"colour matching functions must be sampled at 1 nm, got %g nm",
			cmfs.Shape().Interval)
	}
	if illuminant.Shape() != cmfs.Shape() {
		return nil, newValidationError(op,
			"illuminant shape %s does not match colour matching functions %s",
			illuminant.Shape(), cmfs.Shape())
	}
	interval := int(shape.Interval)
	if float64(interval) != shape.Interval || interval < 2 {
		return nil, newValidationError(op,
			"measurement interval must be a whole number of nanometres above 1, got %g",
			shape.Interval)
	}

	key := twfKey{
		cmfs:       cmfs.Name(),
		illuminant: illuminant.Name(),
		shape:      shape,
		k:          k,
	}

	twfCache.Lock()
	defer twfCache.Unlock()

	w, ok := twfCache.m[key]
	if !ok {
		var err error
		w, err = computeTWF(cmfs, illuminant, interval, k)
		if err != nil {
			return nil, err
		}
		twfCache.m[key] = w
	}

	res := make([][3]float64, len(w))
	copy(res, w)
	return res, nil
}

// computeTWF builds the raw weighting factors table.  Reflectance values
// between measurement knots are modelled by Lagrange interpolation from
// the knot values; each 1 nm product S*Y is distributed onto the knot
// weights through the Lagrange basis coefficients.
func computeTWF(cmfs *MultiSpectralDistributions, illuminant *SpectralDistribution, interval int, k float64) ([][3]float64, error) {
	y := cmfs.Values()
	s := illuminant.Values()
	wc := len(y)

	knots := (wc-1)/interval + 1
	if knots < 4 {
		return nil, newValidationError("TristimulusWeightingFactorsASTME2022",
			"spectral range too short for interval %d nm", interval)
	}

	w := make([][3]float64, knots)
	for t := 0; t < knots; t++ {
		i := t * interval
		for c := 0; c < 3; c++ {
			w[t][c] = s[i] * y[i][c]
		}
	}

	boundary, err := algebra.LagrangeCoefficientsASTME2022(interval, algebra.Boundary)
	if err != nil {
		return nil, err
	}
	inner, err := algebra.LagrangeCoefficientsASTME2022(interval, algebra.Inner)
	if err != nil {
		return nil, err
	}

	// First measurement interval: three-point stencil on the first three
	// knots.
	for j := 0; j < interval-1; j++ {
		i := j + 1
		for kk := 0; kk < 3; kk++ {
			for c := 0; c < 3; c++ {
				w[kk][c] += boundary[j][kk] * s[i] * y[i][c]
			}
		}
	}

	// Last measurement interval: the mirrored three-point stencil on the
	// last three knots.
	last := knots - 1
	for j := 1; j < interval; j++ {
		i := (knots-2)*interval + j
		for kk := 0; kk < 3; kk++ {
			for c := 0; c < 3; c++ {
				w[last-kk][c] += boundary[interval-j-1][kk] * s[i] * y[i][c]
			}
		}
	}

	// Interior measurement intervals: four-point stencil on the
	// surrounding knots.
	for t := 1; t < knots-2; t++ {
		for j := 0; j < interval-1; j++ {
			i := t*interval + j + 1
			for kk := 0; kk < 4; kk++ {
				for c := 0; c < 3; c++ {
					w[t-1+kk][c] += inner[j][kk] * s[i] * y[i][c]
				}
			}
		}
	}

	// Wavelengths beyond the last knot are accumulated into the last
	// weight.
	for i := (knots-1)*interval + 1; i < wc; i++ {
		for c := 0; c < 3; c++ {
			w[last][c] += s[i] * y[i][c]
		}
	}

	if k == 0 {
		var sumY float64
		for t := range w {
			sumY += w[t][1]
		}
		k = 100 / sumY
	}
	for t := range w {
		for c := 0; c < 3; c++ {
			w[t][c] *= k
		}
	}
	return w, nil
}

// AdjustTristimulusWeightingFactorsASTME308 truncates a weighting factors
// table from the reference shape to the target shape following practice
// ASTM E308-15 section 7.3.2.3: the weights of the discarded rows are
// folded into the first and last remaining rows, so that the total weight
// is conserved.
func AdjustTristimulusWeightingFactorsASTME308(w [][3]float64, ref, target SpectralShape) ([][3]float64, error) {
	const op = "AdjustTristimulusWeightingFactorsASTME308"
	if ref.Interval != target.Interval {
		return nil, newValidationError(op,
			"intervals differ: %g and %g", ref.Interval, target.Interval)
	}
	head := int(math.Round((target.Start - ref.Start) / ref.Interval))
	tail := int(math.Round((ref.End - target.End) / ref.Interval))
	if head < 0 || tail < 0 || head+tail >= len(w) {
		return nil, newValidationError(op,
			"target shape %s not contained in reference shape %s", target, ref)
	}

	res := make([][3]float64, len(w)-head-tail)
	copy(res, w[head:len(w)-tail])
	for j := 0; j < head; j++ {
		for c := 0; c < 3; c++ {
			res[0][c] += w[j][c]
		}
	}
	for j := len(w) - tail; j < len(w); j++ {
		for c := 0; c < 3; c++ {
			res[len(res)-1][c] += w[j][c]
		}
	}
	return res, nil
}

// ASTME308Options configures [SDToXYZASTME308].
type ASTME308Options struct {
	// K is the normalisation constant; zero selects the illuminant
	// luminance normalisation.
	K float64

	// UsePracticeRange trims the colour matching functions to the
	// practice range [360, 830] nm.
	UsePracticeRange bool

	// MI5nmOmission applies the 10 nm weighting factors to alternate
	// samples of 5 nm data, as the practice describes for measurement
	// interval 5 nm.
	MI5nmOmission bool

	// MI20nmInterpolation interpolates 20 nm data down to 10 nm before
	// applying the weighting factors, as the practice describes for
	// measurement interval 20 nm.
	MI20nmInterpolation bool
}

// DefaultASTME308Options returns the options with all practice behaviours
// enabled.
func DefaultASTME308Options() *ASTME308Options {
	return &ASTME308Options{
		UsePracticeRange:    true,
		MI5nmOmission:       true,
		MI20nmInterpolation: true,
	}
}

// SDToXYZASTME308 converts a spectral distribution to CIE XYZ tristimulus
// values following practice ASTM E308-15.  The measurement interval of sd
// must be 1, 5, 10 or 20 nm.  Nil cmfs default to the CIE 1931 2 degree
// observer at 1 nm, a nil illuminant to the unit distribution, nil opts
// to [DefaultASTME308Options].
func SDToXYZASTME308(sd *SpectralDistribution, cmfs *MultiSpectralDistributions, illuminant *SpectralDistribution, opts *ASTME308Options) ([3]float64, error) {
	const op = "SDToXYZASTME308"
	if opts == nil {
		opts = DefaultASTME308Options()
	}

	interval := sd.Shape().Interval
	switch interval {
	case 1, 5, 10, 20:
	default:
		return [3]float64{}, newValidationError(op,
			"measurement interval must be 1, 5, 10 or 20 nm, got %g", interval)
	}

	cmfs, err := defaultCMFs(cmfs, 1)
	if err != nil {
		return [3]float64{}, err
	}
	if cmfs.Shape().Interval != 1 {
		cmfs = cmfs.Copy()
		shape := cmfs.Shape()
		shape.Interval = 1
		if err := cmfs.Align(shape); err != nil {
			return [3]float64{}, err
		}
	}
	if opts.UsePracticeRange {
		cmfs = cmfs.Copy()
		if err := cmfs.Trim(shapeASTME308); err != nil {
			return [3]float64{}, err
		}
	}
	illuminant, err = defaultIlluminant(illuminant, cmfs.Shape())
	if err != nil {
		return [3]float64{}, err
	}
	if illuminant.Shape() != cmfs.Shape() {
		illuminant = illuminant.Copy()
		if err := illuminant.Align(cmfs.Shape()); err != nil {
			return [3]float64{}, err
		}
	}

	if interval == 1 {
		return SDToXYZIntegration(sd, cmfs, illuminant, opts.K, SpectralShape{})
	}

	cs := cmfs.Shape()
	sd = sd.Copy()
	switch {
	case interval == 5 && opts.MI5nmOmission:
		// Alternate 5 nm samples are omitted so that the 10 nm weighting
		// factors apply; the kept samples lie on the 10 nm grid of the
		// practice range.
		wls := sd.Wavelengths()
		values := sd.Values()
		var owls, ovals []float64
		for i, wl := range wls {
			if math.Mod(wl-cs.Start, 10) == 0 {
				owls = append(owls, wl)
				ovals = append(ovals, values[i])
			}
		}
		sd, err = NewSpectralDistribution(ovals, owls, &SDOptions{Name: sd.Name()})
		if err != nil {
			return [3]float64{}, err
		}
	case interval == 20 && opts.MI20nmInterpolation:
		sdShape := sd.Shape()
		err := sd.Interpolate(SpectralShape{
			Start:    sdShape.Start,
			End:      sdShape.End,
			Interval: 10,
		})
		if err != nil {
			return [3]float64{}, err
		}
	}

	if err := sd.Trim(cs); err != nil {
		return [3]float64{}, err
	}

	mi := sd.Shape().Interval
	w, err := TristimulusWeightingFactorsASTME2022(cmfs, illuminant,
		SpectralShape{Start: cs.Start, End: cs.End, Interval: mi}, opts.K)
	if err != nil {
		return [3]float64{}, err
	}
	refShape := SpectralShape{
		Start:    cs.Start,
		End:      cs.Start + float64(len(w)-1)*mi,
		Interval: mi,
	}
	if sdShape := sd.Shape(); sdShape != refShape {
		w, err = AdjustTristimulusWeightingFactorsASTME308(w, refShape, sdShape)
		if err != nil {
			return [3]float64{}, err
		}
	}

	r := sd.Values()
	if len(r) != len(w) {
		return [3]float64{}, newValidationError(op,
			"%d weighting factor rows for %d samples", len(w), len(r))
	}
	var xyz [3]float64
	for t := range w {
		for c := 0; c < 3; c++ {
			xyz[c] += w[t][c] * r[t]
		}
	}
	return fromRange100(xyz), nil
}

// TristimulusMethod selects the conversion used by [SDToXYZ].
type TristimulusMethod int

const (
	// MethodASTME308 follows practice ASTM E308-15.  This is the
	// default.
	MethodASTME308 TristimulusMethod = iota

	// MethodIntegration uses direct Riemann summation.
	MethodIntegration
)

func (m TristimulusMethod) String() string {
	switch m {
	case MethodASTME308:
		return "ASTM E308"
	case MethodIntegration:
		return "Integration"
	default:
		return "Unknown"
	}
}

// IsValid reports whether m names a supported conversion method.
func (m TristimulusMethod) IsValid() bool {
	return m == MethodASTME308 || m == MethodIntegration
}

// SDToXYZ converts a spectral distribution to CIE XYZ tristimulus values
// using the selected method.
func SDToXYZ(sd *SpectralDistribution, cmfs *MultiSpectralDistributions, illuminant *SpectralDistribution, method TristimulusMethod, opts *ASTME308Options) ([3]float64, error) {
	switch method {
	case MethodASTME308:
		return SDToXYZASTME308(sd, cmfs, illuminant, opts)
	case MethodIntegration:
		var k float64
		if opts != nil {
			k = opts.K
		}
		return SDToXYZIntegration(sd, cmfs, illuminant, k, SpectralShape{})
	default:
		return [3]float64{}, newValidationError("SDToXYZ",
			"unknown method %d", int(method))
	}
}

// MSDSToXYZIntegration converts every channel of a set of spectral
// distributions to CIE XYZ tristimulus values by Riemann summation.
func MSDSToXYZIntegration(msds *MultiSpectralDistributions, cmfs *MultiSpectralDistributions, illuminant *SpectralDistribution, k float64, shape SpectralShape) ([][3]float64, error) {
	return msdsToXYZ(msds, func(sd *SpectralDistribution) ([3]float64, error) {
		return SDToXYZIntegration(sd, cmfs, illuminant, k, shape)
	})
}

// MSDSToXYZASTME308 converts every channel of a set of spectral
// distributions to CIE XYZ tristimulus values following practice ASTM
// E308-15.
func MSDSToXYZASTME308(msds *MultiSpectralDistributions, cmfs *MultiSpectralDistributions, illuminant *SpectralDistribution, opts *ASTME308Options) ([][3]float64, error) {
	return msdsToXYZ(msds, func(sd *SpectralDistribution) ([3]float64, error) {
		return SDToXYZASTME308(sd, cmfs, illuminant, opts)
	})
}

// MSDSToXYZ converts every channel of a set of spectral distributions to
// CIE XYZ tristimulus values using the selected method.
func MSDSToXYZ(msds *MultiSpectralDistributions, cmfs *MultiSpectralDistributions, illuminant *SpectralDistribution, method TristimulusMethod, opts *ASTME308Options) ([][3]float64, error) {
	return msdsToXYZ(msds, func(sd *SpectralDistribution) ([3]float64, error) {
		return SDToXYZ(sd, cmfs, illuminant, method, opts)
	})
}

func msdsToXYZ(msds *MultiSpectralDistributions, f func(*SpectralDistribution) ([3]float64, error)) ([][3]float64, error) {
	res := make([][3]float64, msds.Channels())
	for c := range res {
		xyz, err := f(msds.Signal(c))
		if err != nil {
			return nil, fmt.Errorf("channel %d: %w", c, err)
		}
		res[c] = xyz
	}
	return res, nil
}

// WavelengthToXYZ returns the colour matching function values at the
// given wavelength, interpolating between samples.  Wavelengths outside
// the covered range yield a *DomainError.  Nil cmfs default to the CIE
// 1931 2 degree observer.
func WavelengthToXYZ(wl float64, cmfs *MultiSpectralDistributions) ([3]float64, error) {
	cmfs, err := defaultCMFs(cmfs, 5)
	if err != nil {
		return [3]float64{}, err
	}
	shape := cmfs.Shape()
	if wl < shape.Start || wl > shape.End {
		return [3]float64{}, &DomainError{
			Wavelength: wl,
			Low:        shape.Start,
			High:       shape.End,
		}
	}
	values, err := cmfs.EvaluateAt(wl)
	if err != nil {
		return [3]float64{}, err
	}
	if len(values) != 3 {
		return [3]float64{}, newValidationError("WavelengthToXYZ",
			"expected 3 channels, got %d", len(values))
	}
	return [3]float64{values[0], values[1], values[2]}, nil
}

// fromRange100 converts tristimulus values from the reference range to
// the active domain-range scale.
func fromRange100(xyz [3]float64) [3]float64 {
	for c := range xyz {
		xyz[c] = colour.FromRange100(xyz[c])
	}
	return xyz
}
