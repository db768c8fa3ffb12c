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
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLicensify(t *testing.T) {
	root := t.TempDir()
	files := map[string]string{
		"a.go":              "package a\n",
		"b.go":              header + "package b\n",
		"c.go":              "// Package c is odd.\npackage c\n",
		"notes.txt":         "package notes\n",
		"sub/d.go":          "package sub\n",
		"_skip/e.go":        "package skip\n",
		"sub/testdata/f.go": "package f\n",
	}
	for name, body := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	report := &bytes.Buffer{}
	if err := licensify(root, report); err != nil {
		t.Fatal(err)
	}

	want := map[string]string{
		"a.go":              header + "package a\n",
		"b.go":              header + "package b\n",
		"c.go":              "// Package c is odd.\npackage c\n",
		"notes.txt":         "package notes\n",
		"sub/d.go":          header + "package sub\n",
		"_skip/e.go":        "package skip\n",
		"sub/testdata/f.go": "package f\n",
	}
	for name, body := range want {
		got, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(name)))
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != body {
			t.Errorf("%s: got %q", name, got)
		}
	}

	out := report.String()
	if !strings.Contains(out, "ATTENTION") || strings.Count(out, "updating") != 2 {
		t.Errorf("unexpected report:\n%s", out)
	}

	// running again changes nothing
	report.Reset()
	if err := licensify(root, report); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(report.String(), "updating") {
		t.Errorf("second run updated files:\n%s", report.String())
	}
}
