package tabler

import (
	"bytes"
	"encoding/json"
	"io"
)

// writeJSON writes the rows as an indented array of objects. Keys follow
// column order, which encoding/json would lose for a map.
func writeJSON(w io.Writer, t *Table) error {
	var compact bytes.Buffer
	compact.WriteByte('[')
	for i, row := range t.rows {
		if i > 0 {
			compact.WriteByte(',')
		}
		compact.WriteByte('{')
		for j, col := range t.columns {
			if j > 0 {
				compact.WriteByte(',')
			}
			if err := writeJSONString(&compact, col.Name); err != nil {
				return err
			}
			compact.WriteByte(':')
			if err := writeJSONString(&compact, row.Cells[j].Value); err != nil {
				return err
			}
		}
		compact.WriteByte('}')
	}
	compact.WriteByte(']')

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "  "); err != nil {
		return err
	}
	out.WriteByte('\n')
	_, err := out.WriteTo(w)
	return err
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	buf.Write(b)
	return nil
}
