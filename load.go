package tabler

import (
	"fmt"
	"iter"
	"slices"
)

// Record maps column names to raw cell values. It is the bulk-load unit and
// does not depend on any particular source format.
type Record map[string]string

// LoadData replaces every row with one row per record. Each column takes the
// record's value for its name, or "" when the key is missing; keys that name
// no column are ignored. An empty records slice fails with
// [ErrInvalidArgument] and leaves the rows untouched; use [Table.Clear] to
// drop all rows.
func (t *Table) LoadData(records []Record) error {
	if len(records) == 0 {
		return fmt.Errorf("%w: no records to load", ErrInvalidArgument)
	}
	return t.LoadSeq(slices.Values(records))
}

// LoadSeq is [Table.LoadData] for records produced by an iterator.
func (t *Table) LoadSeq(records iter.Seq[Record]) error {
	var rows []Row
	for rec := range records {
		cells := make([]Cell, len(t.columns))
		for i, col := range t.columns {
			cells[i] = Cell{Value: rec[col.Name]}
		}
		rows = append(rows, Row{Cells: cells})
	}
	if len(rows) == 0 {
		return fmt.Errorf("%w: no records to load", ErrInvalidArgument)
	}
	t.rows = rows
	return nil
}

// Clear removes every row and keeps the columns.
func (t *Table) Clear() { t.rows = nil }
