package tabler_test

import (
	"errors"
	"testing"

	"github.com/bjaus/tabler"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Helpers ---

func people(t *testing.T) *tabler.Table {
	t.Helper()
	tbl := tabler.New([]string{"Name", "Age", "City"}, tabler.Config{})
	require.NoError(t, tbl.AddValues("Alice", "30", "New York"))
	require.NoError(t, tbl.AddValues("Bob", "25", "San Francisco"))
	require.NoError(t, tbl.AddValues("Charlie", "40", "Los Angeles"))
	return tbl
}

func column(t *testing.T, tbl *tabler.Table, name string) []string {
	t.Helper()
	idx := tbl.ColumnIndex(name)
	require.GreaterOrEqual(t, idx, 0, "column %q", name)
	var out []string
	for _, r := range tbl.Rows() {
		out = append(out, r.Cells[idx].Value)
	}
	return out
}

func requireRectangular(t *testing.T, tbl *tabler.Table) {
	t.Helper()
	for i, r := range tbl.Rows() {
		require.Len(t, r.Cells, tbl.Width(), "row %d", i)
	}
}

// ============================================================
// Tests
// ============================================================

func TestNew(t *testing.T) {
	t.Parallel()
	theme := &tabler.Theme{HeaderColor: "32", RowColors: []string{"31", "34"}}
	tbl := tabler.New([]string{"Name", "Age"}, tabler.Config{Theme: theme, ShowIndex: true})

	assert.Equal(t, []string{"Name", "Age"}, tbl.Headers())
	assert.Equal(t, 0, tbl.Len())
	assert.Equal(t, 2, tbl.Width())
	assert.True(t, tbl.ShowIndex())
	assert.Equal(t, theme, tbl.Theme())

	// The table keeps its own copy of the theme.
	theme.RowColors[0] = "99"
	assert.Equal(t, "31", tbl.Theme().RowColors[0])
}

func TestAddRow(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		cells   []tabler.Cell
		wantErr error
	}{
		"matching": {cells: tabler.Cells("Alice", "30"), wantErr: nil},
		"too few":  {cells: tabler.Cells("Alice"), wantErr: tabler.ErrSchemaMismatch},
		"too many": {cells: tabler.Cells("Alice", "30", "x"), wantErr: tabler.ErrSchemaMismatch},
		"no cells": {cells: nil, wantErr: tabler.ErrSchemaMismatch},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			tbl := tabler.New([]string{"Name", "Age"}, tabler.Config{})
			err := tbl.AddRow(tt.cells)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, 0, tbl.Len())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1, tbl.Len())
		})
	}
}

func TestAddRowCopiesCells(t *testing.T) {
	t.Parallel()
	tbl := tabler.New([]string{"Name"}, tabler.Config{})
	cells := tabler.Cells("Alice")
	require.NoError(t, tbl.AddRow(cells))
	cells[0].Value = "Mallory"
	c, err := tbl.Cell(0, 0)
	require.NoError(t, err)
	assert.Equal(t, "Alice", c.Value)
}

func TestRemoveRow(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		index   int
		want    []string
		wantErr error
	}{
		"first":    {index: 0, want: []string{"Bob", "Charlie"}},
		"middle":   {index: 1, want: []string{"Alice", "Charlie"}},
		"last":     {index: 2, want: []string{"Alice", "Bob"}},
		"negative": {index: -1, wantErr: tabler.ErrIndexOutOfRange},
		"past end": {index: 3, wantErr: tabler.ErrIndexOutOfRange},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			tbl := people(t)
			err := tbl.RemoveRow(tt.index)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, 3, tbl.Len())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, column(t, tbl, "Name"))
		})
	}
}

func TestAddColumnBackfillsRows(t *testing.T) {
	t.Parallel()
	tbl := people(t)
	require.NoError(t, tbl.AddColumn("Country", "USA"))
	assert.Equal(t, []string{"Name", "Age", "City", "Country"}, tbl.Headers())
	assert.Equal(t, []string{"USA", "USA", "USA"}, column(t, tbl, "Country"))
	assert.Equal(t, "USA", tbl.Columns()[3].Default)
	requireRectangular(t, tbl)

	// Rows added afterwards must carry the new column.
	require.ErrorIs(t, tbl.AddValues("Dana", "35", "Austin"), tabler.ErrSchemaMismatch)
	require.NoError(t, tbl.AddValues("Dana", "35", "Austin", "USA"))
}

func TestAddColumnEmptyDefault(t *testing.T) {
	t.Parallel()
	tbl := people(t)
	require.NoError(t, tbl.AddColumn("Email", ""))
	assert.Equal(t, []string{"", "", ""}, column(t, tbl, "Email"))
}

func TestAddColumnDuplicate(t *testing.T) {
	t.Parallel()
	tbl := people(t)
	err := tbl.AddColumn("Age", "0")
	require.ErrorIs(t, err, tabler.ErrDuplicateColumn)
	assert.Contains(t, err.Error(), `"Age"`)
	assert.Equal(t, 3, tbl.Width())
}

func TestRemoveColumn(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		index   int
		headers []string
		wantErr error
	}{
		"first":    {index: 0, headers: []string{"Age", "City"}},
		"middle":   {index: 1, headers: []string{"Name", "City"}},
		"last":     {index: 2, headers: []string{"Name", "Age"}},
		"negative": {index: -1, wantErr: tabler.ErrIndexOutOfRange},
		"past end": {index: 3, wantErr: tabler.ErrIndexOutOfRange},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			tbl := people(t)
			err := tbl.RemoveColumn(tt.index)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, 3, tbl.Width())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.headers, tbl.Headers())
			requireRectangular(t, tbl)
			for _, h := range tt.headers {
				assert.Len(t, column(t, tbl, h), 3)
			}
		})
	}
}

func TestColumnIndicesAreZeroBased(t *testing.T) {
	t.Parallel()
	tbl := people(t)
	require.NoError(t, tbl.AddColumn("Country", "USA"))
	// Index 3 is the fourth column, the one just added.
	require.NoError(t, tbl.RemoveColumn(3))
	assert.Equal(t, []string{"Name", "Age", "City"}, tbl.Headers())
	assert.Equal(t, 0, tbl.ColumnIndex("Name"))
	assert.Equal(t, -1, tbl.ColumnIndex("Country"))
}

func TestAddThenRemoveColumnRestoresTable(t *testing.T) {
	t.Parallel()
	tbl := people(t)
	wantCols, wantRows := tbl.Columns(), tbl.Rows()

	require.NoError(t, tbl.AddColumn("Country", "USA"))
	require.NoError(t, tbl.RemoveColumn(tbl.Width()-1))

	if diff := cmp.Diff(wantCols, tbl.Columns()); diff != "" {
		t.Errorf("columns mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantRows, tbl.Rows()); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestStructuralEditsKeepRowsRectangular(t *testing.T) {
	t.Parallel()
	tbl := tabler.New([]string{"A"}, tabler.Config{})
	steps := []func() error{
		func() error { return tbl.AddValues("1") },
		func() error { return tbl.AddColumn("B", "b") },
		func() error { return tbl.AddValues("2", "x") },
		func() error { return tbl.AddColumn("C", "") },
		func() error { return tbl.RemoveColumn(0) },
		func() error { return tbl.AddValues("y", "z") },
		func() error { return tbl.RemoveColumn(1) },
		func() error { return tbl.AddColumn("D", "d") },
	}
	for i, step := range steps {
		require.NoError(t, step(), "step %d", i)
		requireRectangular(t, tbl)
		require.NoError(t, tbl.Validate(), "step %d", i)
	}
	assert.Equal(t, []string{"B", "D"}, tbl.Headers())
	assert.Equal(t, []string{"b", "x", "y"}, column(t, tbl, "B"))
}

func TestCellAccess(t *testing.T) {
	t.Parallel()
	tbl := people(t)

	require.NoError(t, tbl.SetCell(1, 2, tabler.NewCell("SF", tabler.WithHighlight())))
	c, err := tbl.Cell(1, 2)
	require.NoError(t, err)
	assert.Equal(t, tabler.Cell{Value: "SF", Highlighted: true}, c)

	_, err = tbl.Cell(3, 0)
	require.ErrorIs(t, err, tabler.ErrIndexOutOfRange)
	_, err = tbl.Cell(0, 3)
	require.ErrorIs(t, err, tabler.ErrIndexOutOfRange)
	require.ErrorIs(t, tbl.SetCell(-1, 0, tabler.Cell{}), tabler.ErrIndexOutOfRange)
	require.ErrorIs(t, tbl.SetCell(0, 9, tabler.Cell{}), tabler.ErrIndexOutOfRange)

	row, err := tbl.Row(0)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice", "30", "New York"}, row.Values())
	_, err = tbl.Row(5)
	require.ErrorIs(t, err, tabler.ErrIndexOutOfRange)
}

func TestAccessorsReturnCopies(t *testing.T) {
	t.Parallel()
	tbl := people(t)

	rows := tbl.Rows()
	rows[0].Cells[0].Value = "Mallory"
	cols := tbl.Columns()
	cols[0].Name = "Changed"
	theme := tbl.Theme()
	assert.Nil(t, theme)

	assert.Equal(t, "Alice", column(t, tbl, "Name")[0])
	assert.Equal(t, "Name", tbl.Headers()[0])
}

func TestSetters(t *testing.T) {
	t.Parallel()
	tbl := people(t)
	tbl.SetTitle("User Information")
	tbl.SetSubtitle("A table displaying user data")
	tbl.SetShowIndex(true)
	assert.Equal(t, "User Information", tbl.Title())
	assert.Equal(t, "A table displaying user data", tbl.Subtitle())
	assert.True(t, tbl.ShowIndex())

	tbl.SetTheme(&tabler.Theme{HeaderColor: "32", RowColors: []string{"31"}})
	tbl.SetTheme(&tabler.Theme{RowColors: []string{"34"}})
	// Replaced wholesale, not merged.
	assert.Equal(t, &tabler.Theme{RowColors: []string{"34"}}, tbl.Theme())

	tbl.SetTheme(nil)
	assert.Nil(t, tbl.Theme())
}

func TestClone(t *testing.T) {
	t.Parallel()
	src := people(t)
	src.SetTitle("People")
	src.SetTheme(&tabler.Theme{RowColors: []string{"31"}})

	c := src.Clone()
	assert.Equal(t, src.ToCSV(), c.ToCSV())
	assert.Equal(t, "People", c.Title())

	require.NoError(t, c.SetCell(0, 0, tabler.Cell{Value: "Zed"}))
	require.NoError(t, c.AddColumn("Extra", ""))
	assert.Equal(t, "Alice", column(t, src, "Name")[0])
	assert.Equal(t, 3, src.Width())
}

func TestValidate(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		headers  []string
		problems int
	}{
		"well formed":    {headers: []string{"Name", "Age"}, problems: 0},
		"no columns":     {headers: nil, problems: 0},
		"duplicate name": {headers: []string{"Name", "Name"}, problems: 1},
		"empty name":     {headers: []string{"Name", ""}, problems: 1},
		"all violations": {headers: []string{"", "A", "A", ""}, problems: 3},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			tbl := tabler.New(tt.headers, tabler.Config{})
			err := tbl.Validate()
			if tt.problems == 0 {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tabler.ErrValidation)
			var verr *tabler.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Len(t, verr.Problems, tt.problems)
		})
	}
}

func TestValidateMessageNamesProblem(t *testing.T) {
	t.Parallel()
	tbl := tabler.New([]string{"City", "City"}, tabler.Config{})
	err := tbl.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), `duplicates name "City"`)
}
