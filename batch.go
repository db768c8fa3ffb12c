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
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Batch converts a list of SRM values to colors, using up to GOMAXPROCS
// goroutines.  The result is the same as calling [SRGBPath] for every
// element in turn.
//
// If any conversion fails, or if ctx is cancelled, Batch returns the first
// error encountered and no colors.
func Batch(ctx context.Context, values []float64, p Path) ([]RGB, error) {
	if !p.Valid() {
		panic("srm: invalid " + p.String())
	}

	res := make([]RGB, len(values))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, srm := range values {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			c, err := SRGBPath(srm, p)
			if err != nil {
				return err
			}
			res[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	Logger().Debug("batch converted", "n", len(values), "path", p)
	return res, nil
}
