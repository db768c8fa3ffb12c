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
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/language"

	"seehuhn.de/go/srm"
)

func defaultOptions() *options {
	return &options{
		path: srm.DefaultPath,
		from: 1,
		to:   3,
		step: 1,
		lang: language.English,
	}
}

func TestPlain(t *testing.T) {
	buf := &bytes.Buffer{}
	err := run(context.Background(), buf, defaultOptions(), 0)
	if err != nil {
		t.Fatal(err)
	}
	want := "SRM,sRGB\n1.0,#fae8b6\n2.0,#f4d180\n3.0,#eebd55\n"
	if d := cmp.Diff(want, buf.String()); d != "" {
		t.Errorf("output mismatch (-want +got):\n%s", d)
	}
}

func TestPlainGerman(t *testing.T) {
	opt := defaultOptions()
	opt.from, opt.to, opt.step = 2.5, 2.5, 1
	opt.lang = language.German

	buf := &bytes.Buffer{}
	err := run(context.Background(), buf, opt, 0)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(buf.String(), "\n")
	if lines[0] != "SRM;sRGB" {
		t.Errorf("header %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "2,5;#") {
		t.Errorf("row %q", lines[1])
	}
}

func TestWidthMatchesPath(t *testing.T) {
	opt := defaultOptions()
	opt.to = 30
	a := &bytes.Buffer{}
	if err := run(context.Background(), a, opt, 0); err != nil {
		t.Fatal(err)
	}

	opt.width = srm.GlassCM
	opt.path = srm.PathExponential // ignored
	b := &bytes.Buffer{}
	if err := run(context.Background(), b, opt, 0); err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(a.String(), b.String()); d != "" {
		t.Errorf("output mismatch (-path +width):\n%s", d)
	}
}

func TestEBC(t *testing.T) {
	opt := defaultOptions()
	opt.ebc = true
	opt.from, opt.to = 20, 20

	buf := &bytes.Buffer{}
	if err := run(context.Background(), buf, opt, 0); err != nil {
		t.Fatal(err)
	}
	want := "EBC,sRGB\n20.0,#b95900\n"
	if d := cmp.Diff(want, buf.String()); d != "" {
		t.Errorf("output mismatch (-want +got):\n%s", d)
	}
}

func TestNames(t *testing.T) {
	opt := defaultOptions()
	opt.names = true
	buf := &bytes.Buffer{}
	if err := run(context.Background(), buf, opt, 0); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if lines[0] != "SRM,sRGB,name" {
		t.Errorf("header %q", lines[0])
	}
	for _, line := range lines[1:] {
		fields := strings.Split(line, ",")
		if len(fields) != 3 || fields[2] == "" {
			t.Errorf("malformed row %q", line)
		}
	}
}

func TestTerminal(t *testing.T) {
	const cols = 60
	buf := &bytes.Buffer{}
	if err := run(context.Background(), buf, defaultOptions(), cols); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "\x1b[48;2;250;232;182m ") {
		t.Errorf("unexpected escape sequence in %q", lines[0])
	}
	for _, line := range lines {
		i := strings.Index(line, "m")
		j := strings.Index(line, "\x1b[0m")
		visible := line[i+1:j] + line[j+4:]
		if len(visible) != cols {
			t.Errorf("line has width %d: %q", len(visible), visible)
		}
		if !strings.HasSuffix(line, "  #"+line[len(line)-6:]) {
			t.Errorf("line does not end in a hex color: %q", line)
		}
	}
}

func TestConvertErrors(t *testing.T) {
	cases := []func(*options){
		func(o *options) { o.step = 0 },
		func(o *options) { o.step = -1 },
		func(o *options) { o.to = 0 },
		func(o *options) { o.from = math.NaN() },
		func(o *options) { o.to = math.Inf(1) },
		func(o *options) { o.width = -5 },
		func(o *options) { o.width = math.NaN() },
		func(o *options) { o.width = math.Inf(1) },
	}
	for i, modify := range cases {
		opt := defaultOptions()
		modify(opt)
		_, err := convert(context.Background(), opt)
		if err == nil {
			t.Errorf("%d: expected an error", i)
		}
	}
}

func TestConvertDomainError(t *testing.T) {
	opt := defaultOptions()
	opt.from, opt.to = -1e6, -1e6
	_, err := convert(context.Background(), opt)
	var domErr *srm.DomainError
	if !errors.As(err, &domErr) {
		t.Errorf("expected DomainError, got %v", err)
	}
}
