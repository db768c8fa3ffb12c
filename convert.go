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

import (
	"math"

	"seehuhn.de/go/srm/internal/cie"
	"seehuhn.de/go/srm/internal/spectrum"
)

// srmPerA430 is the ratio between an SRM rating and the absorbance of the
// beer at 430 nm, per cm.
const srmPerA430 = 12.7

// SRGB returns the display color of a beer with the given SRM rating,
// using [DefaultPath].
func SRGB(srm float64) (RGB, error) {
	return SRGBPath(srm, DefaultPath)
}

// SRGBPath returns the display color of a beer with the given SRM rating,
// using the conversion formula selected by p.
//
// Values outside the usual range of 0 to 80 are accepted.  A [*DomainError]
// is returned if srm is NaN or infinite, or if the formula overflows.
// SRGBPath panics if p is not a valid path.
func SRGBPath(srm float64, p Path) (RGB, error) {
	if !isFinite(srm) {
		return RGB{}, newDomainError("SRGB", "SRM", srm, errNotFinite)
	}

	var c RGB
	switch p {
	case PathGlass:
		c = spectral(srm, GlassCM)
	case PathCuvette:
		c = spectral(srm, CuvetteCM)
	case PathExponential:
		c = exponential(srm)
	default:
		panic("srm: invalid " + p.String())
	}

	if !c.finite() {
		return RGB{}, newDomainError("SRGB", "SRM", srm, errOverflow)
	}
	return c, nil
}

// Spectral returns the display color of a beer with the given SRM rating,
// seen through pathCM centimeters of liquid.
//
// SRGBPath(srm, PathGlass) is the same as Spectral(srm, GlassCM).
func Spectral(srm, pathCM float64) (RGB, error) {
	if !isFinite(srm) {
		return RGB{}, newDomainError("Spectral", "SRM", srm, errNotFinite)
	}
	if !isFinite(pathCM) {
		return RGB{}, newDomainError("Spectral", "path length", pathCM, errNotFinite)
	}
	if pathCM < 0 {
		return RGB{}, newDomainError("Spectral", "path length", pathCM, errNegative)
	}

	c := spectral(srm, pathCM)
	if !c.finite() {
		return RGB{}, newDomainError("Spectral", "SRM", srm, errOverflow)
	}
	return c, nil
}

func spectral(srm, pathCM float64) RGB {
	t := spectrum.Transmission(srm/srmPerA430, pathCM)
	lin := cie.XYZToLinearSRGB(cie.Integrate(t))
	return RGB{
		R: 255 * cie.EncodeSRGB(lin[0]),
		G: 255 * cie.EncodeSRGB(lin[1]),
		B: 255 * cie.EncodeSRGB(lin[2]),
	}
}

func exponential(srm float64) RGB {
	return RGB{
		R: 255 * math.Pow(0.975, srm),
		G: 245 * math.Pow(0.88, srm),
		B: 220 * math.Pow(0.7, srm),
	}
}
