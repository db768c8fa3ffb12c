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

// Package spectrum models the transmittance of beer.
//
// The absorption spectrum follows A. J. de Lange, "Color," in Brewing
// Materials and Processes, Elsevier, 2016, pp. 199-249: the average
// normalized absorbance of an ensemble of 99 beers is well described by a sum
// of two exponentials in the wavelength, scaled by the absorbance at 430 nm.
package spectrum

import (
	"math"

	"seehuhn.de/go/srm/internal/cie"
)

// shape holds the normalized absorbance A(λ)/A(430 nm) on the CIE grid.
var shape [cie.N]float64

func init() {
	for i := range shape {
		d := cie.Wavelength(i) - 430
		shape[i] = 0.02465*math.Exp(-d/17.591) + 0.97535*math.Exp(-d/82.122)
	}
}

// Transmission returns the spectral transmittance of a beer with absorbance
// a430 at 430 nm (per cm), seen through pathCM centimeters of liquid.
// The result has one entry per sample of the CIE grid.
func Transmission(a430, pathCM float64) []float64 {
	t := make([]float64, cie.N)
	for i, s := range shape {
		t[i] = math.Pow(10, -a430*pathCM*s)
	}
	return t
}
