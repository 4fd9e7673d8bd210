package tabler

import (
	"fmt"
	"slices"
)

// Column is the metadata of one table column.
type Column struct {
	Name string

	// Default is the value given to existing rows when the column is added
	// after rows exist.
	Default string
}

// Row is an ordered sequence of cells, one per column.
type Row struct {
	Cells []Cell
}

// Values returns the raw value of every cell in the row.
func (r Row) Values() []string {
	out := make([]string, len(r.Cells))
	for i, c := range r.Cells {
		out[i] = c.Value
	}
	return out
}

func (r Row) clone() Row {
	return Row{Cells: slices.Clone(r.Cells)}
}

// Config holds optional construction parameters for [New].
type Config struct {
	// Theme styles text output. Nil means no color codes are emitted.
	Theme *Theme

	// ShowIndex adds a 1-based row-number column to text output. The column
	// is display-only and is not one of the table's columns.
	ShowIndex bool
}

// Table is an in-memory table of styled cells. A Table is not safe for
// concurrent use; callers sharing one across goroutines must guard it with
// their own lock.
//
// Methods document whether they mutate the receiver or return a derived
// copy. Derived tables never share rows, columns or themes with their source.
type Table struct {
	columns   []Column
	rows      []Row
	theme     *Theme
	title     string
	subtitle  string
	showIndex bool
}

// New returns an empty table with one column per header. Header names are
// not checked here; [Table.Validate] reports duplicate or empty names.
func New(headers []string, cfg Config) *Table {
	cols := make([]Column, len(headers))
	for i, h := range headers {
		cols[i] = Column{Name: h}
	}
	return &Table{
		columns:   cols,
		theme:     cfg.Theme.clone(),
		showIndex: cfg.ShowIndex,
	}
}

// --- Structural operations (mutate the receiver) ---

// AddRow appends a row. The number of cells must equal the number of
// columns; nothing is padded or truncated.
func (t *Table) AddRow(cells []Cell) error {
	if len(cells) != len(t.columns) {
		return fmt.Errorf("%w: row has %d cells, table has %d columns", ErrSchemaMismatch, len(cells), len(t.columns))
	}
	t.rows = append(t.rows, Row{Cells: slices.Clone(cells)})
	return nil
}

// AddValues appends a row of plain cells built from values.
func (t *Table) AddValues(values ...string) error {
	return t.AddRow(Cells(values...))
}

// RemoveRow removes the row at the 0-based index.
func (t *Table) RemoveRow(index int) error {
	if index < 0 || index >= len(t.rows) {
		return fmt.Errorf("%w: row %d of %d", ErrIndexOutOfRange, index, len(t.rows))
	}
	t.rows = slices.Delete(t.rows, index, index+1)
	return nil
}

// AddColumn appends a column and gives every existing row a cell holding
// defaultValue.
func (t *Table) AddColumn(name, defaultValue string) error {
	if t.ColumnIndex(name) >= 0 {
		return fmt.Errorf("%w: %q", ErrDuplicateColumn, name)
	}
	t.columns = append(t.columns, Column{Name: name, Default: defaultValue})
	for i := range t.rows {
		t.rows[i].Cells = append(t.rows[i].Cells, Cell{Value: defaultValue})
	}
	return nil
}

// RemoveColumn removes the column at the 0-based index along with its cell
// in every row.
func (t *Table) RemoveColumn(index int) error {
	if index < 0 || index >= len(t.columns) {
		return fmt.Errorf("%w: column %d of %d", ErrIndexOutOfRange, index, len(t.columns))
	}
	t.columns = slices.Delete(t.columns, index, index+1)
	for i := range t.rows {
		t.rows[i].Cells = slices.Delete(t.rows[i].Cells, index, index+1)
	}
	return nil
}

// SetCell replaces the cell at the given 0-based row and column.
func (t *Table) SetCell(row, col int, c Cell) error {
	if row < 0 || row >= len(t.rows) {
		return fmt.Errorf("%w: row %d of %d", ErrIndexOutOfRange, row, len(t.rows))
	}
	if col < 0 || col >= len(t.columns) {
		return fmt.Errorf("%w: column %d of %d", ErrIndexOutOfRange, col, len(t.columns))
	}
	t.rows[row].Cells[col] = c
	return nil
}

// SetTitle sets the title shown above the table.
func (t *Table) SetTitle(title string) { t.title = title }

// SetSubtitle sets the line shown below the title.
func (t *Table) SetSubtitle(subtitle string) { t.subtitle = subtitle }

// SetTheme replaces the theme wholesale. The table keeps its own copy.
// A nil theme disables styling.
func (t *Table) SetTheme(theme *Theme) { t.theme = theme.clone() }

// SetShowIndex toggles the row-number column of text output.
func (t *Table) SetShowIndex(show bool) { t.showIndex = show }

// --- Accessors (never mutate; results are copies) ---

// Title returns the table title.
func (t *Table) Title() string { return t.title }

// Subtitle returns the table subtitle.
func (t *Table) Subtitle() string { return t.subtitle }

// ShowIndex reports whether text output includes row numbers.
func (t *Table) ShowIndex() bool { return t.showIndex }

// Theme returns a copy of the theme, or nil.
func (t *Table) Theme() *Theme { return t.theme.clone() }

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Width returns the number of columns.
func (t *Table) Width() int { return len(t.columns) }

// Columns returns a copy of the column metadata.
func (t *Table) Columns() []Column { return slices.Clone(t.columns) }

// Headers returns the column names in order.
func (t *Table) Headers() []string {
	out := make([]string, len(t.columns))
	for i, c := range t.columns {
		out[i] = c.Name
	}
	return out
}

// ColumnIndex returns the 0-based index of the named column, or -1.
func (t *Table) ColumnIndex(name string) int {
	return slices.IndexFunc(t.columns, func(c Column) bool { return c.Name == name })
}

// Rows returns a deep copy of all rows.
func (t *Table) Rows() []Row {
	out := make([]Row, len(t.rows))
	for i, r := range t.rows {
		out[i] = r.clone()
	}
	return out
}

// Row returns a copy of the row at the 0-based index.
func (t *Table) Row(index int) (Row, error) {
	if index < 0 || index >= len(t.rows) {
		return Row{}, fmt.Errorf("%w: row %d of %d", ErrIndexOutOfRange, index, len(t.rows))
	}
	return t.rows[index].clone(), nil
}

// Cell returns the cell at the given 0-based row and column.
func (t *Table) Cell(row, col int) (Cell, error) {
	if row < 0 || row >= len(t.rows) {
		return Cell{}, fmt.Errorf("%w: row %d of %d", ErrIndexOutOfRange, row, len(t.rows))
	}
	if col < 0 || col >= len(t.columns) {
		return Cell{}, fmt.Errorf("%w: column %d of %d", ErrIndexOutOfRange, col, len(t.columns))
	}
	return t.rows[row].Cells[col], nil
}

// Clone returns an independent deep copy of the table.
func (t *Table) Clone() *Table {
	c := t.derive()
	c.rows = t.Rows()
	return c
}

// derive returns a copy of everything but the rows.
func (t *Table) derive() *Table {
	return &Table{
		columns:   slices.Clone(t.columns),
		theme:     t.theme.clone(),
		title:     t.title,
		subtitle:  t.subtitle,
		showIndex: t.showIndex,
	}
}

// lookup returns the index of the named column or an ErrUnknownColumn error.
func (t *Table) lookup(name string) (int, error) {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return -1, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
	}
	return idx, nil
}
