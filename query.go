package tabler

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// SortBy reorders the rows in place by the named column. Values that both
// parse as numbers compare numerically; otherwise they compare as text. The
// sort is stable, so rows with equal keys keep their relative order in
// either direction.
func (t *Table) SortBy(column string, ascending bool) error {
	idx, err := t.lookup(column)
	if err != nil {
		return err
	}
	slices.SortStableFunc(t.rows, func(a, b Row) int {
		c := compareValues(a.Cells[idx].Value, b.Cells[idx].Value)
		if !ascending {
			return -c
		}
		return c
	})
	return nil
}

func compareValues(a, b string) int {
	fa, okA := parseNumber(a)
	fb, okB := parseNumber(b)
	if okA && okB {
		return cmp.Compare(fa, fb)
	}
	return strings.Compare(a, b)
}

// Filter returns a new table holding deep copies of the rows whose value in
// the named column equals value exactly. The receiver is not modified.
func (t *Table) Filter(column, value string) (*Table, error) {
	idx, err := t.lookup(column)
	if err != nil {
		return nil, err
	}
	return t.FilterFunc(func(r Row) bool { return r.Cells[idx].Value == value }), nil
}

// FilterFunc returns a new table holding deep copies of the rows for which
// keep returns true. keep receives a copy and cannot modify the receiver.
func (t *Table) FilterFunc(keep func(Row) bool) *Table {
	out := t.derive()
	for _, r := range t.rows {
		c := r.clone()
		if keep(c) {
			out.rows = append(out.rows, c)
		}
	}
	return out
}

// Paginate splits the rows into consecutive pages of at most pageSize rows.
// Each page is an independent table with the receiver's columns, theme and
// titles. A table without rows yields no pages.
func (t *Table) Paginate(pageSize int) ([]*Table, error) {
	if pageSize <= 0 {
		return nil, fmt.Errorf("%w: page size %d", ErrInvalidArgument, pageSize)
	}
	var pages []*Table
	for page := range t.Pages(pageSize) {
		pages = append(pages, page)
	}
	return pages, nil
}

// ConditionalFormat replaces, in place, the value of every cell in the named
// column that equals match. Other cell attributes are kept.
func (t *Table) ConditionalFormat(column, match, replacement string) error {
	idx, err := t.lookup(column)
	if err != nil {
		return err
	}
	for i := range t.rows {
		if t.rows[i].Cells[idx].Value == match {
			t.rows[i].Cells[idx].Value = replacement
		}
	}
	return nil
}
