package tabler

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Alignment controls cell text alignment within its column.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// String returns the alignment name.
func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// ParseAlignment converts "left", "center" or "right" (case-insensitive) to
// an Alignment. The empty string means left.
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "left":
		return AlignLeft, nil
	case "center", "centre":
		return AlignCenter, nil
	case "right":
		return AlignRight, nil
	default:
		return AlignLeft, fmt.Errorf("%w: alignment %q", ErrInvalidArgument, s)
	}
}

// Cell is a single styled value. The zero value of every optional field is
// its default: no format hint, no highlight, left aligned, and a color
// inherited from the table's Theme.
type Cell struct {
	// Value is the raw text. Numeric meaning is derived by parsing it when
	// sorting or aggregating; it is never stored separately.
	Value string

	// FormatHint is an fmt verb string such as "%.2f" applied to the value
	// by the text, HTML and Markdown renderers when the value is numeric.
	// A hint without a verb that is a bare SGR parameter string such as "31"
	// or "4;33" is instead added to the cell's style in themed text output.
	// Any other hint without a verb is ignored.
	FormatHint string

	// Highlighted renders the cell in bold in text output.
	Highlighted bool

	// Align positions the cell within its column in text output.
	Align Alignment

	// Color is an SGR parameter string (e.g. "31" or "1;34") overriding the
	// row color. It only takes effect when the table has a Theme.
	Color string
}

// CellOption configures a Cell built by NewCell.
type CellOption func(*Cell)

// WithFormat sets the cell's format hint.
func WithFormat(hint string) CellOption {
	return func(c *Cell) { c.FormatHint = hint }
}

// WithHighlight marks the cell for emphasis.
func WithHighlight() CellOption {
	return func(c *Cell) { c.Highlighted = true }
}

// WithAlign sets the cell's alignment.
func WithAlign(a Alignment) CellOption {
	return func(c *Cell) { c.Align = a }
}

// WithColor sets the cell's color override.
func WithColor(code string) CellOption {
	return func(c *Cell) { c.Color = code }
}

// NewCell returns a Cell holding value with the given options applied.
func NewCell(value string, opts ...CellOption) Cell {
	c := Cell{Value: value}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Cells builds a row of plain cells from values.
func Cells(values ...string) []Cell {
	out := make([]Cell, len(values))
	for i, v := range values {
		out[i] = Cell{Value: v}
	}
	return out
}

// Display returns the text shown for the cell by display renderers. The
// format hint is applied only to numeric values; anything else, including a
// hint that fmt rejects, falls back to the raw value.
func (c Cell) Display() string {
	if c.FormatHint == "" || !strings.Contains(c.FormatHint, "%") {
		return c.Value
	}
	f, ok := parseNumber(c.Value)
	if !ok {
		return c.Value
	}
	s := fmt.Sprintf(c.FormatHint, f)
	if strings.Contains(s, "%!") {
		return c.Value
	}
	return s
}

// styleHint returns the format hint when it is an SGR parameter string
// rather than an fmt verb, and "" otherwise.
func (c Cell) styleHint() string {
	if c.FormatHint == "" {
		return ""
	}
	for _, r := range c.FormatHint {
		if r != ';' && (r < '0' || r > '9') {
			return ""
		}
	}
	return c.FormatHint
}

// parseNumber parses s as a float64 after trimming surrounding space.
// NaN is rejected so numeric comparisons stay ordered.
func parseNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}
