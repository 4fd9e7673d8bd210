package tabler

import (
	"fmt"
	"io"
	"strings"
)

var tsvReplacer = strings.NewReplacer("\t", " ", "\r\n", " ", "\n", " ", "\r", " ")

// writeTSV writes tab-separated lines without quoting. Tabs and line breaks
// inside values become spaces so every row stays on one line.
func writeTSV(w io.Writer, t *Table) error {
	if _, err := fmt.Fprintln(w, joinTSV(t.Headers())); err != nil {
		return err
	}
	for _, row := range t.rows {
		if _, err := fmt.Fprintln(w, joinTSV(row.Values())); err != nil {
			return err
		}
	}
	return nil
}

func joinTSV(fields []string) string {
	clean := make([]string, len(fields))
	for i, f := range fields {
		clean[i] = tsvReplacer.Replace(f)
	}
	return strings.Join(clean, "\t")
}
