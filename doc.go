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

// Package srm computes display colors for beer color ratings.
//
// A beer color given on the SRM (Standard Reference Method) scale is turned
// into an sRGB triple by [SRGB] or [SRGBPath]:
//
//	c, err := srm.SRGB(12)
//	if err != nil {
//		log.Fatal(err)
//	}
//	hex, err := c.Hex() // "#ac4900"
//
// The conversion method is chosen by a [Path].  The default, [PathGlass],
// computes the color of the beer seen through a 5 cm sample glass as
// described in the BJCP color guide, using the spectral model of A. J. de
// Lange.  [PathCuvette] uses the same model for the ½ inch reference cell
// of the SRM measurement, and [PathExponential] is a simple empirical curve.
// Beer colors given on the EBC scale are handled by [SRGBFromEBC].
//
// Colors are returned as [RGB] values on the scale 0 to 255.  The values are
// not clipped: dark beers can have slightly negative blue components, and
// negative SRM values give components above 255.  Clipping happens when a
// color is formatted using [Hex] or converted using [RGB.NRGBA].
//
// All functions in this package are pure and safe for concurrent use.
package srm
