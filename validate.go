package tabler

import (
	"fmt"
	"strings"
)

// ValidationError reports every consistency problem found by
// [Table.Validate]. It matches [ErrValidation] with errors.Is.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(e.Problems, "; "))
}

// Unwrap returns ErrValidation.
func (e *ValidationError) Unwrap() error { return ErrValidation }

// Validate checks that column names are non-empty and unique and that every
// row has one cell per column. All violations are reported together.
func (t *Table) Validate() error {
	var problems []string

	seen := make(map[string]int, len(t.columns))
	for i, col := range t.columns {
		if col.Name == "" {
			problems = append(problems, fmt.Sprintf("column %d has an empty name", i))
			continue
		}
		if first, ok := seen[col.Name]; ok {
			problems = append(problems, fmt.Sprintf("column %d duplicates name %q of column %d", i, col.Name, first))
			continue
		}
		seen[col.Name] = i
	}

	for i, row := range t.rows {
		if len(row.Cells) != len(t.columns) {
			problems = append(problems, fmt.Sprintf("row %d has %d cells, want %d", i, len(row.Cells), len(t.columns)))
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}
