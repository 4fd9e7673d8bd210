// Package tabler is an in-memory table of styled text cells with
// structural editing, queries, aggregation and multi-format rendering.
//
// A [Table] is created from a header list and a [Config]:
//
//	t := tabler.New([]string{"Name", "Age", "City"}, tabler.Config{ShowIndex: true})
//	_ = t.AddRow(tabler.Cells("Alice", "30", "New York"))
//	fmt.Print(t.ToString())
//
// Every cell stores its value as text. Numbers are parsed only when sorting
// or aggregating, so "30" and "abc" live side by side in one column.
//
// # Mutation versus derivation
//
// Operations either change the receiver or return an independent copy:
//
//   - In place: [Table.AddRow], [Table.RemoveRow], [Table.AddColumn],
//     [Table.RemoveColumn], [Table.SetCell], [Table.SortBy],
//     [Table.ConditionalFormat], [Table.LoadData], [Table.Clear] and the setters.
//   - Derived copies: [Table.Filter], [Table.FilterFunc], [Table.Paginate],
//     [Table.Pages], [Table.Clone]. Editing a derived table never touches
//     its source.
//
// Row and column indices are 0-based everywhere.
//
// # Rendering
//
// [Table.Write] and [Table.Render] accept a [Format]. The string helpers
// [Table.ToString], [Table.ToCSV], [Table.ToHTML] and [Table.ToMarkdown]
// cover the common cases. Colors come from a [Theme] and are only emitted
// by the text renderer; a table without a theme renders no color codes.
// Highlighted cells are bold in text output with or without a theme.
//
// Use [ParseFormat] to turn a flag value into a [Format], including
// "go-template=<tmpl>" strings built by [GoTemplate].
//
// # Errors
//
// The package exports sentinel errors for use with errors.Is:
//
//   - [ErrSchemaMismatch] — row length differs from the column count
//   - [ErrDuplicateColumn] — column name already present
//   - [ErrUnknownColumn] — no column with that name
//   - [ErrIndexOutOfRange] — row or column index outside the table
//   - [ErrInvalidArgument] — e.g. non-positive page size or empty load
//   - [ErrNoNumericData] — aggregate over a column without numbers
//   - [ErrValidation] — wrapped by [ValidationError] from [Table.Validate]
//   - [ErrUnsupportedFormat], [ErrInvalidTemplate] — rendering setup
//
// A Table is not safe for concurrent use.
package tabler
