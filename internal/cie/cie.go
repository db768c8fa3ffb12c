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

// Package cie implements the colorimetry needed to turn a transmission
// spectrum into display colors.
//
// All tristimulus values use the D65 white point and are normalized so that
// a perfect transmitter has Y = 1.
package cie

import (
	"fmt"

	"golang.org/x/image/math/f64"
	"gonum.org/v1/gonum/floats"
)

// Illuminant weighted color matching functions and the normalization
// constant k = 1 / Σ D65·ȳ.
var (
	wx, wy, wz [N]float64
	k          float64
)

func init() {
	for i := range N {
		wx[i] = d65[i] * xBar[i]
		wy[i] = d65[i] * yBar[i]
		wz[i] = d65[i] * zBar[i]
	}
	k = 1 / floats.Sum(wy[:])
}

// Integrate returns the CIE XYZ coordinates of light from illuminant D65
// after passing through a medium with the given spectral transmittance.
// The slice t must have one entry for each wavelength of the sample grid.
func Integrate(t []float64) f64.Vec3 {
	if len(t) != N {
		panic(fmt.Sprintf("cie: expected %d samples, got %d", N, len(t)))
	}
	return f64.Vec3{
		k * floats.Dot(wx[:], t),
		k * floats.Dot(wy[:], t),
		k * floats.Dot(wz[:], t),
	}
}

func mul(m *f64.Mat3, v f64.Vec3) f64.Vec3 {
	return f64.Vec3{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2],
		m[3]*v[0] + m[4]*v[1] + m[5]*v[2],
		m[6]*v[0] + m[7]*v[1] + m[8]*v[2],
	}
}
