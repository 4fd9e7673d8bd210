package tabler

import (
	"bytes"
	"io"
)

// writeJSONL writes one compact JSON object per row.
func writeJSONL(w io.Writer, t *Table) error {
	var buf bytes.Buffer
	for _, row := range t.rows {
		buf.WriteByte('{')
		for i, col := range t.columns {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONString(&buf, col.Name); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := writeJSONString(&buf, row.Cells[i].Value); err != nil {
				return err
			}
		}
		buf.WriteString("}\n")
	}
	_, err := buf.WriteTo(w)
	return err
}
