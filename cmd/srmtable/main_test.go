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

package main

import (
	"bytes"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const goldenTable = `SRM,sRGB
1,#fae8b6
2,#f4d180
3,#eebd55
4,#e7aa31
5,#e09a03
6,#d98a00
7,#d17d00
8,#c97000
9,#c26500
10,#ba5b00
11,#b35200
12,#ac4900
13,#a54100
14,#9f3a00
15,#993400
16,#932e00
17,#8d2800
18,#872300
19,#821e00
20,#7d1900
21,#781400
22,#731000
23,#6f0c00
24,#6b0800
25,#660400
26,#630100
27,#5f0000
28,#5b0000
29,#580000
30,#540000
31,#510000
32,#4e0000
33,#4b0000
34,#480000
35,#450000
36,#430000
37,#400000
38,#3e0000
39,#3c0000
40,#390000
41,#370000
42,#350000
43,#330000
44,#310000
45,#2f0000
46,#2e0000
47,#2c0000
48,#2a0000
49,#290000
50,#270000
`

func TestWriteTable(t *testing.T) {
	buf := &bytes.Buffer{}
	err := writeTable(buf, 1, 50)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(goldenTable, buf.String()); d != "" {
		t.Errorf("table mismatch (-want +got):\n%s", d)
	}
}

func TestWriteTableFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	err := writeTable(buf, 1, 50)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 51 {
		t.Fatalf("expected 51 lines, got %d", len(lines))
	}
	if lines[0] != "SRM,sRGB" {
		t.Errorf("header %q", lines[0])
	}
	row := regexp.MustCompile(`^[0-9]+,#[0-9a-f]{6}$`)
	for _, line := range lines[1:] {
		if !row.MatchString(line) {
			t.Errorf("malformed line %q", line)
		}
	}
}

type failWriter struct{ n int }

var errFull = errors.New("disk full")

func (w *failWriter) Write(p []byte) (int, error) {
	if w.n <= 0 {
		return 0, errFull
	}
	w.n--
	return len(p), nil
}

func TestWriteTableError(t *testing.T) {
	for n := range 3 {
		err := writeTable(&failWriter{n: n}, 1, 50)
		if !errors.Is(err, errFull) {
			t.Errorf("n=%d: got %v", n, err)
		}
	}
}
