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
	"fmt"
	"strconv"
)

// Path selects the formula used to convert SRM values to colors.
// The zero value is [DefaultPath].
type Path int

// These are the supported conversion paths.
const (
	// PathGlass applies the spectral model to a glass of width [GlassCM].
	PathGlass Path = iota

	// PathCuvette applies the spectral model to the ½ inch cell used to
	// measure SRM values.
	PathCuvette

	// PathExponential uses the empirical approximation
	// R = 255·0.975^SRM, G = 245·0.88^SRM, B = 220·0.7^SRM.
	PathExponential

	numPaths
)

// DefaultPath is used by [SRGB] and [SRGBFromEBC].
const DefaultPath = PathGlass

// Transmission path lengths for the spectral paths, in cm.
const (
	// GlassCM is the width of the sample glass in the BJCP color guide.
	GlassCM = 5.0

	// CuvetteCM is the path length of the SRM reference cell.
	CuvetteCM = 1.27
)

var pathNames = [numPaths]string{
	PathGlass:       "glass",
	PathCuvette:     "cuvette",
	PathExponential: "exponential",
}

// Valid reports whether p is one of the defined paths.
func (p Path) Valid() bool {
	return p >= 0 && p < numPaths
}

func (p Path) String() string {
	if !p.Valid() {
		return "Path(" + strconv.Itoa(int(p)) + ")"
	}
	return pathNames[p]
}

// Paths returns all defined paths, starting with the default.
func Paths() []Path {
	res := make([]Path, numPaths)
	for i := range res {
		res[i] = Path(i)
	}
	return res
}

// ParsePath returns the path with the given name, as returned by
// [Path.String].
func ParsePath(name string) (Path, error) {
	for p, n := range pathNames {
		if n == name {
			return Path(p), nil
		}
	}
	return 0, fmt.Errorf("srm: unknown path %q", name)
}
