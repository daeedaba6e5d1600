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

package difference

import (
	"math"

	"seehuhn.de/go/colour"
)

// Method selects the colour difference formula used by [DeltaE].
type Method int

const (
	// MethodCIE2000 is recommendation CIE 142-2001.  This is the
	// default.
	MethodCIE2000 Method = iota

	// MethodCIE1976 is the Euclidean distance in CIE L*a*b* space.
	MethodCIE1976

	// MethodCIE1994 weights lightness, chroma and hue differences
	// relative to the chroma of the reference colour.
	MethodCIE1994
)

func (m Method) String() string {
	switch m {
	case MethodCIE2000:
		return "CIE 2000"
	case MethodCIE1976:
		return "CIE 1976"
	case MethodCIE1994:
		return "CIE 1994"
	default:
		return "Unknown"
	}
}

// IsValid reports whether m names a supported difference formula.
func (m Method) IsValid() bool {
	return m >= MethodCIE2000 && m <= MethodCIE1994
}

// DeltaE returns the colour difference between the two CIE L*a*b*
// colours using the selected formula, with the graphic arts parameters
// where the formula distinguishes applications.
func DeltaE(lab1, lab2 [3]float64, method Method) (float64, error) {
	switch method {
	case MethodCIE2000:
		return DeltaECIE2000(lab1, lab2, false), nil
	case MethodCIE1976:
		return DeltaECIE1976(lab1, lab2), nil
	case MethodCIE1994:
		return DeltaECIE1994(lab1, lab2, false), nil
	default:
		return 0, newUsageError("DeltaE", "unknown method %d", int(method))
	}
}

// DeltaECIE1976 returns the CIE 1976 colour difference, the Euclidean
// distance between the two CIE L*a*b* colours.
func DeltaECIE1976(lab1, lab2 [3]float64) float64 {
	lab1, lab2 = toDomain100(lab1), toDomain100(lab2)
	var sum float64
	for i := 0; i < 3; i++ {
		d := lab1[i] - lab2[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// DeltaECIE1994 returns the CIE 1994 colour difference between the two
// CIE L*a*b* colours.  The first colour is the reference against which
// the chroma weights are computed.  With textiles the parametric factors
// for textile applications are used instead of the graphic arts ones.
func DeltaECIE1994(lab1, lab2 [3]float64, textiles bool) float64 {
	lab1, lab2 = toDomain100(lab1), toDomain100(lab2)

	kL, k1, k2 := 1.0, 0.045, 0.015
	if textiles {
		kL, k1, k2 = 2.0, 0.048, 0.014
	}

	c1 := math.Hypot(lab1[1], lab1[2])
	c2 := math.Hypot(lab2[1], lab2[2])

	dL := lab1[0] - lab2[0]
	dC := c1 - c2
	dA := lab1[1] - lab2[1]
	dB := lab1[2] - lab2[2]
	dH2 := dA*dA + dB*dB - dC*dC
	if dH2 < 0 { // rounding
		dH2 = 0
	}

	sL := 1.0
	sC := 1 + k1*c1
	sH := 1 + k2*c1

	fL := dL / (kL * sL)
	fC := dC / sC
	return math.Sqrt(fL*fL + fC*fC + dH2/(sH*sH))
}

// DeltaECIE2000 returns the CIE 2000 colour difference between the two
// CIE L*a*b* colours, following the implementation notes of Sharma,
// Wu and Dalal (2005).  With textiles the lightness weight of textile
// applications is used.
func DeltaECIE2000(lab1, lab2 [3]float64, textiles bool) float64 {
	lab1, lab2 = toDomain100(lab1), toDomain100(lab2)

	kL := 1.0
	if textiles {
		kL = 2
	}

	l1, a1, b1 := lab1[0], lab1[1], lab1[2]
	l2, a2, b2 := lab2[0], lab2[1], lab2[2]

	cMean := (math.Hypot(a1, b1) + math.Hypot(a2, b2)) / 2
	g := 0.5 * (1 - math.Sqrt(pow7(cMean)/(pow7(cMean)+pow7(25))))

	ap1, ap2 := (1+g)*a1, (1+g)*a2
	cp1, cp2 := math.Hypot(ap1, b1), math.Hypot(ap2, b2)
	hp1, hp2 := hueAngle(ap1, b1), hueAngle(ap2, b2)

	dLp := l2 - l1
	dCp := cp2 - cp1

	var dhp float64
	switch {
	case cp1*cp2 == 0:
		dhp = 0
	case math.Abs(hp2-hp1) <= 180:
		dhp = hp2 - hp1
	case hp2-hp1 > 180:
		dhp = hp2 - hp1 - 360
	default:
		dhp = hp2 - hp1 + 360
	}
	dHp := 2 * math.Sqrt(cp1*cp2) * math.Sin(radians(dhp/2))

	lMean := (l1 + l2) / 2
	cpMean := (cp1 + cp2) / 2

	var hpMean float64
	switch {
	case cp1*cp2 == 0:
		hpMean = hp1 + hp2
	case math.Abs(hp1-hp2) <= 180:
		hpMean = (hp1 + hp2) / 2
	case hp1+hp2 < 360:
		hpMean = (hp1 + hp2 + 360) / 2
	default:
		hpMean = (hp1 + hp2 - 360) / 2
	}

	t := 1 -
		0.17*math.Cos(radians(hpMean-30)) +
		0.24*math.Cos(radians(2*hpMean)) +
		0.32*math.Cos(radians(3*hpMean+6)) -
		0.20*math.Cos(radians(4*hpMean-63))

	h := (hpMean - 275) / 25
	dTheta := 30 * math.Exp(-h*h)
	rC := 2 * math.Sqrt(pow7(cpMean)/(pow7(cpMean)+pow7(25)))
	rT := -math.Sin(radians(2*dTheta)) * rC

	l50 := (lMean - 50) * (lMean - 50)
	sL := 1 + 0.015*l50/math.Sqrt(20+l50)
	sC := 1 + 0.045*cpMean
	sH := 1 + 0.015*cpMean*t

	fL := dLp / (kL * sL)
	fC := dCp / sC
	fH := dHp / sH
	return math.Sqrt(fL*fL + fC*fC + fH*fH + rT*fC*fH)
}

// hueAngle returns the hue angle of (a, b) in degrees within [0, 360).
func hueAngle(a, b float64) float64 {
	if a == 0 && b == 0 {
		return 0
	}
	h := degrees(math.Atan2(b, a))
	if h < 0 {
		h += 360
	}
	return h
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
func degrees(rad float64) float64 { return rad * 180 / math.Pi }

func pow7(x float64) float64 {
	x2 := x * x
	return x2 * x2 * x2 * x
}

// toDomain100 converts a L*a*b* triple from the active domain-range
// scale to the reference range.
func toDomain100(lab [3]float64) [3]float64 {
	for i := range lab {
		lab[i] = colour.ToDomain100(lab[i])
	}
	return lab
}
