package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/mattn/go-isatty"
)

const (
	formatAuto  = "auto"
	formatTable = "table"
	formatJSON  = "json"
)

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// resolveFormat maps the --output flag onto a concrete format. auto picks
// a table on a terminal and JSON otherwise.
func resolveFormat(flag string, terminal bool) (string, error) {
	switch strings.ToLower(strings.TrimSpace(flag)) {
	case "", formatAuto:
		if terminal {
			return formatTable, nil
		}
		return formatJSON, nil
	case formatTable:
		return formatTable, nil
	case formatJSON:
		return formatJSON, nil
	default:
		return "", fmt.Errorf("invalid --output value %q", flag)
	}
}

type printer struct {
	w      io.Writer
	format string
	err    error
}

func newPrinter(w io.Writer, flag string) *printer {
	format, err := resolveFormat(flag, stdoutIsTerminal())
	return &printer{w: w, format: format, err: err}
}

// print writes payload as indented JSON, or headers and rows as an aligned
// table.
func (p *printer) print(payload any, headers []string, rows [][]string) error {
	if p.err != nil {
		return p.err
	}
	if p.format == formatJSON {
		b, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(p.w, string(b))
		return err
	}

	tw := tabwriter.NewWriter(p.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
