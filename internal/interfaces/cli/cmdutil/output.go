package cmdutil

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Table prints rows under headers, aligned in columns.
func Table(out io.Writer, headers []string, rows [][]string) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

// Fields prints label/value pairs, one per line.
func Fields(out io.Writer, pairs ...[2]string) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, p := range pairs {
		fmt.Fprintf(tw, "%s:\t%s\n", p[0], p[1])
	}
	return tw.Flush()
}
