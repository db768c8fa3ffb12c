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

import "golang.org/x/image/math/f64"

// WhiteD50 is the CIE XYZ white point of the ICC profile connection space.
var WhiteD50 = f64.Vec3{0.9642, 1.0, 0.8249}

// Bradford chromatic adaptation from D65 to D50.
var d65ToD50 = f64.Mat3{
	1.0478112, 0.0228866, -0.0501270,
	0.0295424, 0.9904844, -0.0170491,
	-0.0092345, 0.0150436, 0.7521316,
}

// AdaptD50 maps CIE XYZ (D65) coordinates to D50, using the Bradford
// transform.
func AdaptD50(v f64.Vec3) f64.Vec3 {
	return mul(&d65ToD50, v)
}

// Adaptation returns the matrix used by [AdaptD50], in row-major order.
func Adaptation() f64.Mat3 {
	return d65ToD50
}

// Colorants returns the D50 XYZ coordinates of the red, green and blue sRGB
// primaries at full intensity.
func Colorants() [3]f64.Vec3 {
	var res [3]f64.Vec3
	for i := range res {
		col := f64.Vec3{srgbToXYZ[i], srgbToXYZ[3+i], srgbToXYZ[6+i]}
		res[i] = AdaptD50(col)
	}
	return res
}
