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
	"errors"
	"math"
	"strconv"
)

var (
	errNotFinite = errors.New("not a finite number")
	errNegative  = errors.New("must not be negative")
	errOverflow  = errors.New("result is not finite")
)

// DomainError indicates that a value lies outside the range where the
// selected formula is defined.
type DomainError struct {
	Op    string // the function which failed, e.g. "SRGB"
	Arg   string // the name of the offending argument
	Value float64
	Err   error
}

func (err *DomainError) Error() string {
	tail := ""
	if err.Err != nil {
		tail = ": " + err.Err.Error()
	}
	return err.Op + ": " + err.Arg + " " +
		strconv.FormatFloat(err.Value, 'g', -1, 64) + " out of domain" + tail
}

func (err *DomainError) Unwrap() error {
	return err.Err
}

func newDomainError(op, arg string, value float64, err error) *DomainError {
	Logger().Debug("domain error", "op", op, "arg", arg, "value", value, "err", err)
	return &DomainError{Op: op, Arg: arg, Value: value, Err: err}
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
