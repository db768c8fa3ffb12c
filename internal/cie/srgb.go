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
)

// Rec. 709 primaries with D65 white, as given in C. Poynton, Digital Video
// and HD, 2nd ed.
var (
	xyzToSRGB = f64.Mat3{
		3.240479, -1.537150, -0.498535,
		-0.969256, 1.875992, 0.041556,
		0.055648, -0.204043, 1.057311,
	}
	srgbToXYZ = f64.Mat3{
		0.412453, 0.357580, 0.180423,
		0.212671, 0.715160, 0.072169,
		0.019334, 0.119193, 0.950227,
	}
)

// XYZToLinearSRGB converts CIE XYZ (D65) to linear sRGB.
// The result is not clamped.
func XYZToLinearSRGB(v f64.Vec3) f64.Vec3 {
	return mul(&xyzToSRGB, v)
}

// LinearSRGBToXYZ converts linear sRGB to CIE XYZ (D65).
func LinearSRGBToXYZ(v f64.Vec3) f64.Vec3 {
	return mul(&srgbToXYZ, v)
}

// EncodeSRGB applies the sRGB transfer function to a linear intensity.
// Values outside [0, 1] are extended rather than clipped.
func EncodeSRGB(v float64) float64 {
	if v <= 0.0031308 {
		return 12.92 * v
	}
	return 1.055*math.Pow(v, 1/2.4) - 0.055
}

// DecodeSRGB is the inverse of [EncodeSRGB].
func DecodeSRGB(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}
