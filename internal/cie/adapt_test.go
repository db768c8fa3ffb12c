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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/image/math/f64"
)

func TestColorants(t *testing.T) {
	c := Colorants()

	want := [3]f64.Vec3{
		{0.436071, 0.222503, 0.013932},
		{0.385069, 0.716886, 0.097105},
		{0.143069, 0.060612, 0.714115},
	}
	if d := cmp.Diff(want, c, cmpopts.EquateApprox(0, 1e-6)); d != "" {
		t.Errorf("wrong colorants (-want +got):\n%s", d)
	}

	// full intensity on all three channels is the PCS white
	var sum f64.Vec3
	for _, v := range c {
		for j := range sum {
			sum[j] += v[j]
		}
	}
	if d := cmp.Diff(WhiteD50, sum, cmpopts.EquateApprox(0, 5e-4)); d != "" {
		t.Errorf("colorants do not add up to D50 (-want +got):\n%s", d)
	}
}

func TestAdaptWhite(t *testing.T) {
	got := AdaptD50(WhiteD65)
	if d := cmp.Diff(WhiteD50, got, cmpopts.EquateApprox(0, 5e-4)); d != "" {
		t.Errorf("D65 white maps to (-want +got):\n%s", d)
	}
}
