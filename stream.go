package tabler

import "iter"

// All yields each row index and a copy of the row.
func (t *Table) All() iter.Seq2[int, Row] {
	return func(yield func(int, Row) bool) {
		for i, r := range t.rows {
			if !yield(i, r.clone()) {
				return
			}
		}
	}
}

// Pages yields the same pages as [Table.Paginate], building each one only
// when requested. Nothing is yielded when pageSize is not positive.
func (t *Table) Pages(pageSize int) iter.Seq[*Table] {
	return func(yield func(*Table) bool) {
		if pageSize <= 0 {
			return
		}
		for start := 0; start < len(t.rows); start += pageSize {
			end := min(start+pageSize, len(t.rows))
			page := t.derive()
			page.rows = make([]Row, 0, end-start)
			for _, r := range t.rows[start:end] {
				page.rows = append(page.rows, r.clone())
			}
			if !yield(page) {
				return
			}
		}
	}
}

// Records yields each row as a record keyed by column name.
func (t *Table) Records() iter.Seq[Record] {
	return func(yield func(Record) bool) {
		for _, r := range t.rows {
			rec := make(Record, len(t.columns))
			for i, col := range t.columns {
				rec[col.Name] = r.Cells[i].Value
			}
			if !yield(rec) {
				return
			}
		}
	}
}
