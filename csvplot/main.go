// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command csvplot plots the columns of a CSV file.
//
// csvplot reads a CSV table with a header row from a file or standard
// input and draws one trace per trace argument. A trace argument is a
// chart kind followed by key=value options, quoted as in a shell:
//
//	csvplot -i load.csv -o load.html \
//		"line x=time y=user name='user CPU' markers=true" \
//		"line x=time y=sys name='system CPU' dash=dot"
//
// The chart kinds are scatter, point, line, bar and column. Scatter,
// point and line take x and y columns (x defaults to the row number).
// Bar and column take a values column and an optional keys column.
//
// The output format is taken from the -o file extension, or from
// --format. The formats are svg, html and json.
package main

import (
	"bytes"
	"encoding/csv"
	"io"
	"os"

	"github.com/aclements/chart2d/config"
	"github.com/aclements/chart2d/engine"
	"github.com/aclements/chart2d/render"
	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
	"github.com/dustin/go-humanize"
	"github.com/juju/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type flags struct {
	config  string
	input   string
	output  string
	title   string
	xlabel  string
	ylabel  string
	table   bool
	verbose bool
}

func main() {
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	if err := newCommand().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newCommand() *cobra.Command {
	var f flags
	v := config.NewViper()
	cmd := &cobra.Command{
		Use:   "csvplot [flags] trace...",
		Short: "Plot the columns of a CSV file",
		Long: `csvplot reads a CSV table and draws one trace per argument.
Each trace is a chart kind (scatter, point, line, bar, column)
followed by key=value options.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.verbose {
				log.SetLevel(log.DebugLevel)
			}
			cfg, err := config.Read(v, f.config)
			if err != nil {
				return err
			}
			return run(&f, cfg, args)
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&f.config, "config", "", "read defaults from `file` (TOML, YAML or JSON)")
	fs.StringVarP(&f.input, "input", "i", "-", "read CSV from `file`")
	fs.StringVarP(&f.output, "output", "o", "", "write output to `file` (default: stdout)")
	fs.String("format", "", "output `format` when -o has no known extension (svg, html, json)")
	fs.Int("width", 0, "output width in pixels")
	fs.Int("height", 0, "output height in pixels")
	fs.StringVar(&f.title, "title", "", "chart title")
	fs.StringVar(&f.xlabel, "xlabel", "", "X axis title")
	fs.StringVar(&f.ylabel, "ylabel", "", "Y axis title")
	fs.BoolVar(&f.table, "table", false, "print the parsed table instead of a chart")
	fs.BoolVar(&f.verbose, "verbose", false, "log details")
	if err := config.BindFlags(v, fs); err != nil {
		log.Fatal(err)
	}
	return cmd
}

func run(f *flags, cfg *config.Config, args []string) error {
	// gg reports layout problems through its own logger.
	w := log.StandardLogger().WriterLevel(log.WarnLevel)
	defer w.Close()
	gg.Warning.SetOutput(w)
	gg.Warning.SetFlags(0)

	tab, err := readCSV(f.input)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{"rows": tab.Len(), "columns": tab.Columns()}).Debug("read table")

	if f.table {
		return writeOutput(f.output, func(w io.Writer) error {
			table.Fprint(w, tab)
			return nil
		})
	}

	if len(args) == 0 {
		return errors.NotValidf("no traces")
	}
	e := cfg.Engine()
	var charts []*engine.GenericChart
	for _, arg := range args {
		ts, err := parseTrace(arg)
		if err != nil {
			return err
		}
		c, err := ts.draw(e, tab)
		if err != nil {
			return errors.Annotatef(err, "trace %q", arg)
		}
		log.WithField("trace", arg).Debug("built trace")
		charts = append(charts, c)
	}
	c := engine.Combine(charts...)
	if f.title != "" {
		c = c.WithTitle(f.title)
	}
	if f.xlabel != "" {
		c = c.WithXAxisTitle(f.xlabel)
	}
	if f.ylabel != "" {
		c = c.WithYAxisTitle(f.ylabel)
	}

	format := render.FormatOf(f.output, cfg.Render.Format)
	if f.output == "" && format != render.FormatJSON && term.IsTerminal(int(os.Stdout.Fd())) {
		log.Warnf("writing %s to a terminal; use -o to write a file", format)
	}
	var buf bytes.Buffer
	width, height := cfg.Render.Width, cfg.Render.Height
	if width == 0 {
		width = 600
	}
	if height == 0 {
		height = 450
	}
	width, height = c.Size(width, height)
	if err := render.Write(&buf, c, format, width, height); err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"format": format,
		"size":   humanize.Bytes(uint64(buf.Len())),
		"width":  width,
		"height": height,
	}).Debug("rendered chart")
	return writeOutput(f.output, func(w io.Writer) error {
		_, err := buf.WriteTo(w)
		return err
	})
}

func readCSV(path string) (*table.Table, error) {
	r := os.Stdin
	if path != "-" {
		var err error
		r, err = os.Open(path)
		if err != nil {
			return nil, errors.Trace(err)
		}
		defer r.Close()
	}
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, errors.Annotatef(err, "reading %s", path)
	}
	if len(rows) == 0 {
		return nil, errors.NotValidf("%s: CSV without header", path)
	}
	return table.TableFromStrings(rows[0], rows[1:], true), nil
}

func writeOutput(path string, write func(io.Writer) error) error {
	if path == "" {
		return write(os.Stdout)
	}
	out, err := os.Create(path)
	if err != nil {
		return errors.Trace(err)
	}
	if err := write(out); err != nil {
		out.Close()
		return errors.Annotatef(err, "writing %s", path)
	}
	return errors.Trace(out.Close())
}
