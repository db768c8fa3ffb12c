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
	"encoding/hex"
	"image/color"
	"math"
)

// RGB is a gamma-encoded sRGB color.  The components use the scale 0 to 255
// but may lie outside this range.
type RGB struct {
	R, G, B float64
}

var channelNames = [3]string{"red", "green", "blue"}

// Hex formats c as a string of the form "#rrggbb", using lower case
// hexadecimal digits.  Each component is clipped to the range [0, 255] and
// then rounded to the nearest integer, with halves rounded away from zero.
//
// A [*DomainError] is returned if a component is NaN or infinite.
func Hex(c RGB) (string, error) {
	var b [3]byte
	for i, v := range c.values() {
		if !isFinite(v) {
			return "", newDomainError("Hex", channelNames[i], v, errNotFinite)
		}
		b[i] = to8(v)
	}

	var buf [7]byte
	buf[0] = '#'
	hex.Encode(buf[1:], b[:])
	return string(buf[:]), nil
}

// Hex is a shorthand for [Hex](c).
func (c RGB) Hex() (string, error) {
	return Hex(c)
}

// NRGBA converts c to an 8-bit color, clipping and rounding the components
// in the same way as [Hex].  NaN components are mapped to 0.
func (c RGB) NRGBA() color.NRGBA {
	v := c.values()
	return color.NRGBA{R: to8(v[0]), G: to8(v[1]), B: to8(v[2]), A: 255}
}

func (c RGB) values() [3]float64 {
	return [3]float64{c.R, c.G, c.B}
}

func (c RGB) finite() bool {
	return isFinite(c.R) && isFinite(c.G) && isFinite(c.B)
}

// to8 clips v to [0, 255] and rounds to the nearest integer.
func to8(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	return uint8(math.Round(min(max(v, 0), 255)))
}
