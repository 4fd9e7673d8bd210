package tabler

import (
	"errors"
	"fmt"
)

// Summary holds every aggregate of one column.
type Summary struct {
	Count   int
	Sum     float64
	Average float64
	Min     float64
	Max     float64
}

// Summarize computes all aggregates of the named column in one pass. Cells
// that do not parse as numbers are skipped. If no cell parses the error
// wraps [ErrNoNumericData].
func (t *Table) Summarize(column string) (Summary, error) {
	idx, err := t.lookup(column)
	if err != nil {
		return Summary{}, err
	}
	var s Summary
	for _, r := range t.rows {
		f, ok := parseNumber(r.Cells[idx].Value)
		if !ok {
			continue
		}
		if s.Count == 0 || f < s.Min {
			s.Min = f
		}
		if s.Count == 0 || f > s.Max {
			s.Max = f
		}
		s.Sum += f
		s.Count++
	}
	if s.Count == 0 {
		return Summary{}, fmt.Errorf("%w: column %q", ErrNoNumericData, column)
	}
	s.Average = s.Sum / float64(s.Count)
	return s, nil
}

// Sum returns the sum of the numeric values in the named column.
func (t *Table) Sum(column string) (float64, error) {
	s, err := t.Summarize(column)
	return s.Sum, err
}

// Average returns the mean of the numeric values in the named column.
// Skipped cells do not count towards the divisor.
func (t *Table) Average(column string) (float64, error) {
	s, err := t.Summarize(column)
	return s.Average, err
}

// Min returns the smallest numeric value in the named column.
func (t *Table) Min(column string) (float64, error) {
	s, err := t.Summarize(column)
	return s.Min, err
}

// Max returns the largest numeric value in the named column.
func (t *Table) Max(column string) (float64, error) {
	s, err := t.Summarize(column)
	return s.Max, err
}

// Count returns how many values in the named column parse as numbers.
// Unlike the other aggregates it reports zero rather than an error when
// none do.
func (t *Table) Count(column string) (int, error) {
	s, err := t.Summarize(column)
	if errors.Is(err, ErrNoNumericData) {
		return 0, nil
	}
	return s.Count, err
}
