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

// sinc is the normalised sinc function sin(pi x) / (pi x).
func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	px := math.Pi * x
	return math.Sin(px) / px
}

// KernelNearestNeighbour is the box kernel used for nearest-neighbour
// resampling.
func KernelNearestNeighbour(x float64) float64 {
	if math.Abs(x) < 0.5 {
		return 1
	}
	return 0
}

// KernelLinear is the triangle kernel used for linear resampling.
func KernelLinear(x float64) float64 {
	return math.Max(0, 1-math.Abs(x))
}

// KernelSinc is the sinc kernel truncated to the half-width a.  a must be
// at least 1.
func KernelSinc(x, a float64) float64 {
	if math.Abs(x) >= a {
		return 0
	}
	return sinc(x)
}

// KernelLanczos is the Lanczos kernel with half-width a.
func KernelLanczos(x, a float64) float64 {
	if math.Abs(x) >= a {
		return 0
	}
	return sinc(x) * sinc(x/a)
}

// KernelCardinalSpline is the two-parameter cardinal spline kernel.  With
// a = 0.5 and b = 0 it is the Catmull-Rom spline, with a = 1/3 and b = 1/3
// the Mitchell-Netravali kernel.
func KernelCardinalSpline(x, a, b float64) float64 {
	ax := math.Abs(x)
	switch {
	case ax < 1:
		return ((-6*a-9*b+12)*ax*ax*ax + (6*a+12*b-18)*ax*ax - 2*b + 6) / 6
	case ax < 2:
		return ((-6*a-b)*ax*ax*ax + (30*a+6*b)*ax*ax + (-48*a-12*b)*ax +
			24*a + 8*b) / 6
	default:
		return 0
	}
}

// KernelType identifies one of the supported resampling kernels.  Unknown
// values are rejected when constructing a [KernelInterpolator].
type KernelType int

const (
	KernelKindLanczos KernelType = iota
	KernelKindSinc
	KernelKindCardinalSpline
	KernelKindLinear
	KernelKindNearestNeighbour
)

func (k KernelType) String() string {
	switch k {
	case KernelKindLanczos:
		return "Lanczos"
	case KernelKindSinc:
		return "Sinc"
	case KernelKindCardinalSpline:
		return "Cardinal Spline"
	case KernelKindLinear:
		return "Linear"
	case KernelKindNearestNeighbour:
		return "Nearest Neighbour"
	default:
		return "Unknown"
	}
}

// IsValid reports whether k names a supported kernel.
func (k KernelType) IsValid() bool {
	return k >= KernelKindLanczos && k <= KernelKindNearestNeighbour
}

// evaluate applies the kernel with parameters a and b.  Parameters not used
// by the given kernel are ignored.
func (k KernelType) evaluate(x, a, b float64) float64 {
	switch k {
	case KernelKindLanczos:
		return KernelLanczos(x, a)
	case KernelKindSinc:
		return KernelSinc(x, a)
	case KernelKindCardinalSpline:
		return KernelCardinalSpline(x, a, b)
	case KernelKindLinear:
		return KernelLinear(x)
	case KernelKindNearestNeighbour:
		return KernelNearestNeighbour(x)
	default:
		return math.NaN()
	}
}
