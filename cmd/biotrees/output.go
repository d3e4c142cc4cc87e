package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/mattn/go-isatty"
)

// table writes tab-separated rows. On a terminal the columns are aligned;
// otherwise rows are written as plain TSV for further processing.
type table struct {
	w     io.Writer
	flush func() error
}

func newTable(out io.Writer) *table {
	if f, ok := out.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		return &table{w: tw, flush: tw.Flush}
	}
	return &table{w: out, flush: func() error { return nil }}
}

func (t *table) row(cols ...any) error {
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = fmt.Sprint(c)
	}
	_, err := io.WriteString(t.w, strings.Join(parts, "\t")+"\n")
	return err
}

func (t *table) header(cols ...string) error {
	parts := make([]any, len(cols))
	for i, c := range cols {
		parts[i] = c
	}
	return t.row(parts...)
}
