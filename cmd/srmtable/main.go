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

// Srmtable prints the display colors for SRM 1 to 50 as comma-separated
// values.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"seehuhn.de/go/srm"
)

func main() {
	out := bufio.NewWriter(os.Stdout)
	err := writeTable(out, 1, 50)
	if e := out.Flush(); err == nil {
		err = e
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "srmtable: %v\n", err)
		os.Exit(1)
	}
}

// writeTable writes a header line followed by one line for each integer SRM
// value from first to last, using the default conversion path.
func writeTable(w io.Writer, first, last int) error {
	_, err := fmt.Fprintln(w, "SRM,sRGB")
	if err != nil {
		return err
	}
	for i := first; i <= last; i++ {
		c, err := srm.SRGB(float64(i))
		if err != nil {
			return err
		}
		hex, err := c.Hex()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%d,%s\n", i, hex)
		if err != nil {
			return err
		}
	}
	return nil
}
