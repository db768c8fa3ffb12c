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

// Srmswatch shows beer colors as swatches in the terminal.
//
// When standard output is not a terminal, the colors are written as
// delimiter-separated values instead.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"seehuhn.de/go/srm"
	"seehuhn.de/go/srm/colorname"
)

type options struct {
	path  srm.Path
	width float64 // if positive, use the spectral model with this glass width
	ebc   bool
	from  float64
	to    float64
	step  float64
	names bool
	lang  language.Tag
}

const maxSwatches = 10000

type swatch struct {
	value float64
	color srm.RGB
}

func main() {
	pathName := flag.String("path", srm.DefaultPath.String(), "conversion path: glass, cuvette or exponential")
	width := flag.Float64("width", 0, "glass width in cm (overrides -path)")
	ebc := flag.Bool("ebc", false, "interpret values on the EBC scale")
	from := flag.Float64("from", 1, "first value")
	to := flag.Float64("to", 40, "last value")
	step := flag.Float64("step", 1, "increment between values")
	names := flag.Bool("names", false, "show the closest color keyword")
	lang := flag.String("lang", "en", "language used to format numbers")
	verbose := flag.Bool("v", false, "print debug messages to stderr")
	flag.Parse()

	if *verbose {
		srm.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	p, err := srm.ParsePath(*pathName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "srmswatch: %v\n", err)
		os.Exit(1)
	}
	tag, err := language.Parse(*lang)
	if err != nil {
		fmt.Fprintf(os.Stderr, "srmswatch: invalid language %q: %v\n", *lang, err)
		os.Exit(1)
	}
	opt := &options{
		path:  p,
		width: *width,
		ebc:   *ebc,
		from:  *from,
		to:    *to,
		step:  *step,
		names: *names,
		lang:  tag,
	}

	cols := 0
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		cols = 80
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			cols = w
		}
	}

	out := bufio.NewWriter(os.Stdout)
	err = run(context.Background(), out, opt, cols)
	if e := out.Flush(); err == nil {
		err = e
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "srmswatch: %v\n", err)
		os.Exit(1)
	}
}

// run writes the swatches to w.  If cols is zero, plain text is written,
// otherwise cols gives the terminal width.
func run(ctx context.Context, w io.Writer, opt *options, cols int) error {
	swatches, err := convert(ctx, opt)
	if err != nil {
		return err
	}

	pr := message.NewPrinter(opt.lang)
	scale := "SRM"
	if opt.ebc {
		scale = "EBC"
	}

	if cols == 0 {
		return writePlain(w, pr, scale, swatches, opt.names)
	}
	return writeTerminal(w, pr, swatches, opt.names, cols)
}

func convert(ctx context.Context, opt *options) ([]swatch, error) {
	if !(opt.step > 0) {
		return nil, errors.New("step must be positive")
	}
	if !(opt.to >= opt.from) {
		return nil, fmt.Errorf("empty range %g to %g", opt.from, opt.to)
	}
	if !(opt.width >= 0) {
		return nil, fmt.Errorf("invalid glass width %g", opt.width)
	}

	var values []float64
	for i := 0; ; i++ {
		v := opt.from + float64(i)*opt.step
		if v > opt.to+1e-9*opt.step {
			break
		}
		if i >= maxSwatches {
			return nil, fmt.Errorf("more than %d values", maxSwatches)
		}
		values = append(values, v)
	}

	srmValues := values
	if opt.ebc {
		srmValues = make([]float64, len(values))
		for i, v := range values {
			srmValues[i] = srm.EBCToSRM(v)
		}
	}

	var colors []srm.RGB
	if opt.width > 0 {
		colors = make([]srm.RGB, len(srmValues))
		for i, v := range srmValues {
			c, err := srm.Spectral(v, opt.width)
			if err != nil {
				return nil, err
			}
			colors[i] = c
		}
	} else {
		var err error
		colors, err = srm.Batch(ctx, srmValues, opt.path)
		if err != nil {
			return nil, err
		}
	}

	res := make([]swatch, len(values))
	for i := range values {
		res[i] = swatch{value: values[i], color: colors[i]}
	}
	return res, nil
}

func writePlain(w io.Writer, pr *message.Printer, scale string, swatches []swatch, names bool) error {
	// Use a semicolon where the decimal separator is a comma.
	sep := ","
	if strings.Contains(pr.Sprintf("%.1f", 0.5), ",") {
		sep = ";"
	}

	header := scale + sep + "sRGB"
	if names {
		header += sep + "name"
	}
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}

	for _, s := range swatches {
		hex, err := s.color.Hex()
		if err != nil {
			return err
		}
		line := pr.Sprintf("%.1f", s.value) + sep + hex
		if names {
			name, err := colorname.Nearest(s.color)
			if err != nil {
				return err
			}
			line += sep + name
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func writeTerminal(w io.Writer, pr *message.Printer, swatches []swatch, names bool, cols int) error {
	for _, s := range swatches {
		hex, err := s.color.Hex()
		if err != nil {
			return err
		}
		label := fmt.Sprintf("%6s  %s", pr.Sprintf("%.1f", s.value), hex)
		if names {
			name, err := colorname.Nearest(s.color)
			if err != nil {
				return err
			}
			label += "  " + name
		}

		bar := max(cols-len(label)-1, 4)
		n := s.color.NRGBA()
		_, err = fmt.Fprintf(w, "\x1b[48;2;%d;%d;%dm%s\x1b[0m %s\n",
			n.R, n.G, n.B, strings.Repeat(" ", bar), label)
		if err != nil {
			return err
		}
	}
	return nil
}
