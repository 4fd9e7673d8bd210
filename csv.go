package tabler

import (
	"encoding/csv"
	"io"
)

func writeCSV(w io.Writer, t *Table) error {
	return writeDelimited(w, t, ',')
}

// writeDelimited writes the header and raw cell values with encoding/csv,
// which quotes fields holding the delimiter, quotes or newlines and doubles
// embedded quotes.
func writeDelimited(w io.Writer, t *Table, comma rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = comma
	if err := writeRecord(w, cw, t.Headers()); err != nil {
		return err
	}
	for _, row := range t.rows {
		if err := writeRecord(w, cw, row.Values()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// writeRecord writes one record through cw. A record holding a single empty
// field is written as "" because csv.Writer emits a blank line for it, which
// readers skip.
func writeRecord(w io.Writer, cw *csv.Writer, record []string) error {
	if len(record) != 1 || record[0] != "" {
		return cw.Write(record)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\"\"\n")
	return err
}
