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

package srm

// ebcPerA430 is the ratio between an EBC rating and the absorbance of the
// beer at 430 nm, per cm.
const ebcPerA430 = 25.0

// EBCToSRM converts a color rating from the EBC scale to the SRM scale.
func EBCToSRM(ebc float64) float64 {
	return ebc * srmPerA430 / ebcPerA430
}

// SRMToEBC converts a color rating from the SRM scale to the EBC scale.
func SRMToEBC(srm float64) float64 {
	return srm * ebcPerA430 / srmPerA430
}

// SRGBFromEBC returns the display color of a beer with the given EBC
// rating, using the conversion formula selected by p.
func SRGBFromEBC(ebc float64, p Path) (RGB, error) {
	if !isFinite(ebc) {
		return RGB{}, newDomainError("SRGBFromEBC", "EBC", ebc, errNotFinite)
	}
	return SRGBPath(EBCToSRM(ebc), p)
}
