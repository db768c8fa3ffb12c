// seehuhn.de/go/srm - sRGB display colors for SRM beer color ratings
// Copyright (C) 2026  The srm Authors
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

package cie

import (
	"math"

	"golang.org/x/image/math/f64"
	"gonum.org/v1/gonum/floats"
)

// WhiteD65 is the D65 reference white used for CIELAB.
var WhiteD65 = f64.Vec3{0.95047, 1.0, 1.08883}

const (
	labEpsilon = 216.0 / 24389.0
	labKappa   = 24389.0 / 27.0
)

// XYZToLab converts CIE XYZ (D65) to CIE 1976 L*a*b*.
func XYZToLab(v f64.Vec3) f64.Vec3 {
	fx := labF(v[0] / WhiteD65[0])
	fy := labF(v[1] / WhiteD65[1])
	fz := labF(v[2] / WhiteD65[2])
	return f64.Vec3{116*fy - 16, 500 * (fx - fy), 200 * (fy - fz)}
}

func labF(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return (labKappa*t + 16) / 116
}

// DeltaE76 returns the CIE76 color difference between two L*a*b* colors.
func DeltaE76(a, b f64.Vec3) float64 {
	return floats.Distance(a[:], b[:], 2)
}
