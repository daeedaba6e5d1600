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

// CubicSplineInterpolator is a natural cubic spline through all samples,
// with continuous first and second derivatives at the interior knots.
type CubicSplineInterpolator struct {
	samples
	m []float64 // second derivatives at the knots
}

// NewCubicSplineInterpolator fits a natural cubic spline to the given
// samples.  At least three samples are required.
func NewCubicSplineInterpolator(x, y []float64) (*CubicSplineInterpolator, error) {
	s, err := newSamples("CubicSplineInterpolator", x, y, 3)
	if err != nil {
		return nil, err
	}
	n := len(s.x)

	// Solve the tridiagonal system for the second derivatives with
	// natural boundary conditions m[0] = m[n-1] = 0.
	m := make([]float64, n)
	c := make([]float64, n) // scratch for forward elimination
	d := make([]float64, n)
	for i := 1; i < n-1; i++ {
		hPrev := s.x[i] - s.x[i-1]
		hNext := s.x[i+1] - s.x[i]
		rhs := 6 * ((s.y[i+1]-s.y[i])/hNext - (s.y[i]-s.y[i-1])/hPrev)
		diag := 2*(hPrev+hNext) - hPrev*c[i-1]
		c[i] = hNext / diag
		d[i] = (rhs - hPrev*d[i-1]) / diag
	}
	for i := n - 2; i >= 1; i-- {
		m[i] = d[i] - c[i]*m[i+1]
	}

	return &CubicSplineInterpolator{samples: s, m: m}, nil
}

// Evaluate returns the spline value at x.
func (ip *CubicSplineInterpolator) Evaluate(x float64) (float64, error) {
	if err := ip.checkRange(x); err != nil {
		return 0, err
	}
	i := ip.locate(x)
	h := ip.x[i+1] - ip.x[i]
	t := x - ip.x[i]
	u := ip.x[i+1] - x
	y := ip.m[i]*u*u*u/(6*h) +
		ip.m[i+1]*t*t*t/(6*h) +
		(ip.y[i]/h-ip.m[i]*h/6)*u +
		(ip.y[i+1]/h-ip.m[i+1]*h/6)*t
	return y, nil
}

// PchipInterpolator is the shape-preserving piecewise cubic Hermite
// interpolator of Fritsch and Carlson (1980).  Monotone sample data yields
// a monotone interpolant with no overshoot between samples.
type PchipInterpolator struct {
	samples
	d []float64 // first derivatives at the knots
}

// NewPchipInterpolator fits a monotone piecewise cubic Hermite interpolator
// to the given samples.  At least two samples are required.
func NewPchipInterpolator(x, y []float64) (*PchipInterpolator, error) {
	s, err := newSamples("PchipInterpolator", x, y, 2)
	if err != nil {
		return nil, err
	}
	n := len(s.x)

	d := make([]float64, n)
	if n == 2 {
		slope := (s.y[1] - s.y[0]) / (s.x[1] - s.x[0])
		d[0], d[1] = slope, slope
		return &PchipInterpolator{samples: s, d: d}, nil
	}

	h := make([]float64, n-1)
	m := make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		h[i] = s.x[i+1] - s.x[i]
		m[i] = (s.y[i+1] - s.y[i]) / h[i]
	}

	// Interior derivatives: weighted harmonic mean of the adjacent
	// secant slopes, zero at local extrema.
	for i := 1; i < n-1; i++ {
		if m[i-1]*m[i] <= 0 {
			d[i] = 0
			continue
		}
		w1 := 2*h[i] + h[i-1]
		w2 := h[i] + 2*h[i-1]
		d[i] = (w1 + w2) / (w1/m[i-1] + w2/m[i])
	}
	d[0] = pchipEdge(h[0], h[1], m[0], m[1])
	d[n-1] = pchipEdge(h[n-2], h[n-3], m[n-2], m[n-3])

	return &PchipInterpolator{samples: s, d: d}, nil
}

// pchipEdge is the one-sided three-point derivative estimate with the
// monotonicity clamping of Fritsch and Carlson.
func pchipEdge(h0, h1, m0, m1 float64) float64 {
	d := ((2*h0+h1)*m0 - h0*m1) / (h0 + h1)
	if sign(d) != sign(m0) {
		return 0
	}
	if sign(m0) != sign(m1) && math.Abs(d) > 3*math.Abs(m0) {
		return 3 * m0
	}
	return d
}

func sign(x float64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// Evaluate returns the Hermite interpolant value at x.
func (ip *PchipInterpolator) Evaluate(x float64) (float64, error) {
	if err := ip.checkRange(x); err != nil {
		return 0, err
	}
	i := ip.locate(x)
	h := ip.x[i+1] - ip.x[i]
	t := (x - ip.x[i]) / h
	h00 := (1 + 2*t) * (1 - t) * (1 - t)
	h10 := t * (1 - t) * (1 - t)
	h01 := t * t * (3 - 2*t)
	h11 := t * t * (t - 1)
	y := h00*ip.y[i] + h10*h*ip.d[i] + h01*ip.y[i+1] + h11*h*ip.d[i+1]
	return y, nil
}

// spragueC holds the coefficients of the end-point extension polynomials of
// the Sprague (1880) interpolator, divided by 209.
var spragueC = [4][6]float64{
	{884, -1960, 3033, -2648, 1080, -180},
	{508, -540, 488, -367, 144, -24},
	{-24, 144, -367, 488, -540, 508},
	{-180, 1080, -2648, 3033, -1960, 884},
}

// SpragueInterpolator is the fifth-order polynomial interpolator of Sprague
// (1880), as mandated by CIE 167:2005 for interpolating uniformly spaced
// colourimetric data.
type SpragueInterpolator struct {
	samples
	yp []float64 // range samples padded with two extension points per side
}

// NewSpragueInterpolator fits a Sprague (1880) interpolator to the given
// samples.  The domain must be uniformly spaced and hold at least six
// samples.
func NewSpragueInterpolator(x, y []float64) (*SpragueInterpolator, error) {
	const fn = "SpragueInterpolator"
	s, err := newSamples(fn, x, y, 6)
	if err != nil {
		return nil, err
	}
	if !IsUniform(x) {
		return nil, newArgumentError(fn, "domain",
			"samples must be uniformly spaced")
	}

	n := len(s.y)
	yp := make([]float64, n+4)
	copy(yp[2:], s.y)
	for k := 0; k < 2; k++ {
		var head, tail float64
		for j := 0; j < 6; j++ {
			head += spragueC[k][j] * s.y[j]
			tail += spragueC[k+2][j] * s.y[n-6+j]
		}
		yp[k] = head / 209
		yp[n+2+k] = tail / 209
	}

	return &SpragueInterpolator{samples: s, yp: yp}, nil
}

// Evaluate returns the fifth-order interpolated value at x.
func (ip *SpragueInterpolator) Evaluate(x float64) (float64, error) {
	if err := ip.checkRange(x); err != nil {
		return 0, err
	}
	i := ip.locate(x)
	t := (x - ip.x[i]) / (ip.x[i+1] - ip.x[i])

	r := ip.yp
	j := i + 2 // index into the padded array
	a0 := r[j]
	a1 := (2*r[j-2] - 16*r[j-1] + 16*r[j+1] - 2*r[j+2]) / 24
	a2 := (-r[j-2] + 16*r[j-1] - 30*r[j] + 16*r[j+1] - r[j+2]) / 24
	a3 := (-9*r[j-2] + 39*r[j-1] - 70*r[j] + 66*r[j+1] - 33*r[j+2] + 7*r[j+3]) / 24
	a4 := (13*r[j-2] - 64*r[j-1] + 126*r[j] - 124*r[j+1] + 61*r[j+2] - 12*r[j+3]) / 24
	a5 := (-5*r[j-2] + 25*r[j-1] - 50*r[j] + 50*r[j+1] - 25*r[j+2] + 5*r[j+3]) / 24

	y := a0 + t*(a1+t*(a2+t*(a3+t*(a4+t*a5))))
	return y, nil
}
