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

// Package colorname finds the SVG 1.1 color keyword closest to a beer color.
//
// Distances are measured as CIE76 color differences in L*a*b* space.
package colorname

import (
	"golang.org/x/exp/slices"
	"golang.org/x/image/colornames"
	"golang.org/x/image/math/f64"

	"seehuhn.de/go/srm"
	"seehuhn.de/go/srm/internal/cie"
)

type entry struct {
	name string
	lab  f64.Vec3
}

// palette lists all color keywords in alphabetical order, so that ties are
// resolved in favour of the alphabetically first name.
var palette []entry

func init() {
	names := slices.Clone(colornames.Names)
	slices.Sort(names)
	palette = make([]entry, len(names))
	for i, name := range names {
		c := colornames.Map[name]
		palette[i] = entry{name: name, lab: lab(c.R, c.G, c.B)}
	}
}

// Nearest returns the name of the color keyword closest to c.
// Components outside [0, 255] are clipped first.  A [*srm.DomainError] is
// returned if a component of c is NaN or infinite.
func Nearest(c srm.RGB) (string, error) {
	if _, err := c.Hex(); err != nil {
		return "", err
	}
	n := c.NRGBA()
	target := lab(n.R, n.G, n.B)

	best := ""
	bestDist := 0.0
	for _, e := range palette {
		d := cie.DeltaE76(target, e.lab)
		if best == "" || d < bestDist {
			best, bestDist = e.name, d
		}
	}
	return best, nil
}

func lab(r, g, b uint8) f64.Vec3 {
	lin := f64.Vec3{
		cie.DecodeSRGB(float64(r) / 255),
		cie.DecodeSRGB(float64(g) / 255),
		cie.DecodeSRGB(float64(b) / 255),
	}
	return cie.XYZToLab(cie.LinearSRGBToXYZ(lin))
}
