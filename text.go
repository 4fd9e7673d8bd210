package tabler

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

type borderChars struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
	topTee, bottomTee, leftTee, rightTee       string
	cross                                      string
}

var borderSets = map[BorderStyle]borderChars{
	BorderRounded: {
		topLeft: "╭", topRight: "╮", bottomLeft: "╰", bottomRight: "╯",
		horizontal: "─", vertical: "│",
		topTee: "┬", bottomTee: "┴", leftTee: "├", rightTee: "┤",
		cross: "┼",
	},
	BorderASCII: {
		topLeft: "+", topRight: "+", bottomLeft: "+", bottomRight: "+",
		horizontal: "-", vertical: "|",
		topTee: "+", bottomTee: "+", leftTee: "+", rightTee: "+",
		cross: "+",
	},
	BorderHeavy: {
		topLeft: "┏", topRight: "┓", bottomLeft: "┗", bottomRight: "┛",
		horizontal: "━", vertical: "┃",
		topTee: "┳", bottomTee: "┻", leftTee: "┣", rightTee: "┫",
		cross: "╋",
	},
	BorderDouble: {
		topLeft: "╔", topRight: "╗", bottomLeft: "╚", bottomRight: "╝",
		horizontal: "═", vertical: "║",
		topTee: "╦", bottomTee: "╩", leftTee: "╠", rightTee: "╣",
		cross: "╬",
	},
}

// textCell is a cell ready for layout: display text, alignment and the SGR
// codes to wrap it in after padding.
type textCell struct {
	text  string
	align Alignment
	codes []string
}

func (c *textCell) style(code string) {
	if code != "" {
		c.codes = append(c.codes, code)
	}
}

// indexHeader labels the row-number column.
const indexHeader = "#"

func writeText(w io.Writer, t *Table) error {
	styled := t.theme != nil

	header := make([]textCell, 0, len(t.columns)+1)
	if t.showIndex {
		header = append(header, textCell{text: indexHeader, align: AlignRight})
	}
	for _, col := range t.columns {
		header = append(header, textCell{text: col.Name})
	}
	if styled {
		for i := range header {
			header[i].style(t.theme.HeaderColor)
		}
	}

	rows := make([][]textCell, len(t.rows))
	for i, row := range t.rows {
		cells := make([]textCell, 0, len(row.Cells)+1)
		if t.showIndex {
			tc := textCell{text: strconv.Itoa(i + 1), align: AlignRight}
			if styled {
				tc.style(t.theme.rowColor(i))
			}
			cells = append(cells, tc)
		}
		for _, c := range row.Cells {
			tc := textCell{text: c.Display(), align: c.Align}
			if c.Highlighted {
				tc.style("1")
			}
			if styled {
				color := c.Color
				if color == "" {
					color = t.theme.rowColor(i)
				}
				tc.style(color)
				tc.style(c.styleHint())
			}
			cells = append(cells, tc)
		}
		rows[i] = cells
	}

	widths := computeWidths(header, rows)

	border := BorderRounded
	if styled {
		border = t.theme.Border
	}

	if err := writeTitleLines(w, t, outerWidth(widths, border)); err != nil {
		return err
	}
	if len(widths) == 0 {
		return nil
	}
	if border == BorderNone {
		return renderPlainTable(w, header, rows, widths)
	}
	bc, ok := borderSets[border]
	if !ok {
		bc = borderSets[BorderRounded]
	}
	return renderBorderedTable(w, header, rows, widths, bc)
}

// writeTitleLines writes the title and subtitle centered over the table.
func writeTitleLines(w io.Writer, t *Table, width int) error {
	for _, line := range []string{t.title, t.subtitle} {
		if line == "" {
			continue
		}
		text := strings.TrimRight(alignCell(line, width, AlignCenter), " ")
		if _, err := fmt.Fprintln(w, text); err != nil {
			return err
		}
	}
	return nil
}

func computeWidths(header []textCell, rows [][]textCell) []int {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h.text)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell.text); i < len(widths) && w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// outerWidth returns the display width of a full table line.
func outerWidth(widths []int, border BorderStyle) int {
	if len(widths) == 0 {
		return 0
	}
	if border == BorderNone {
		n := 2 * (len(widths) - 1)
		for _, w := range widths {
			n += w
		}
		return n
	}
	return tableInnerWidth(widths) + 2
}

// tableInnerWidth returns the total character width between the outer vertical
// borders of a bordered table. Each cell contributes its width plus 2 (one
// space of padding on each side), and cells are separated by a single vertical
// border character.
func tableInnerWidth(widths []int) int {
	n := 0
	for _, w := range widths {
		n += w + 2
	}
	if len(widths) > 1 {
		n += len(widths) - 1
	}
	return n
}

// --- Plain table (BorderNone) ---

func renderPlainTable(w io.Writer, header []textCell, rows [][]textCell, widths []int) error {
	if err := writePlainRow(w, header, widths); err != nil {
		return err
	}
	if err := writePlainSep(w, widths); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writePlainRow(w, row, widths); err != nil {
			return err
		}
	}
	return nil
}

func writePlainSep(w io.Writer, widths []int) error {
	sep := make([]string, len(widths))
	for i, width := range widths {
		sep[i] = strings.Repeat("-", width)
	}
	_, err := fmt.Fprintln(w, strings.Join(sep, "  "))
	return err
}

func writePlainRow(w io.Writer, cells []textCell, widths []int) error {
	parts := make([]string, len(widths))
	last := len(widths) - 1
	for i, width := range widths {
		cell := cells[i]
		if i == last && len(cell.codes) == 0 && cell.align == AlignLeft {
			// No trailing padding on an unstyled, left-aligned last column.
			parts[i] = cell.text
			continue
		}
		parts[i] = sgr(alignCell(cell.text, width, cell.align), cell.codes...)
	}
	_, err := fmt.Fprintln(w, strings.Join(parts, "  "))
	return err
}

// --- Bordered table ---

func renderBorderedTable(w io.Writer, header []textCell, rows [][]textCell, widths []int, bc borderChars) error {
	if err := drawHLine(w, widths, bc.topLeft, bc.horizontal, bc.topTee, bc.topRight); err != nil {
		return err
	}
	if err := drawBorderedRow(w, header, widths, bc.vertical); err != nil {
		return err
	}
	if err := drawHLine(w, widths, bc.leftTee, bc.horizontal, bc.cross, bc.rightTee); err != nil {
		return err
	}
	for _, row := range rows {
		if err := drawBorderedRow(w, row, widths, bc.vertical); err != nil {
			return err
		}
	}
	return drawHLine(w, widths, bc.bottomLeft, bc.horizontal, bc.bottomTee, bc.bottomRight)
}

func drawHLine(w io.Writer, widths []int, left, fill, mid, right string) error {
	var sb strings.Builder
	sb.WriteString(left)
	for i, width := range widths {
		sb.WriteString(strings.Repeat(fill, width+2))
		if i < len(widths)-1 {
			sb.WriteString(mid)
		}
	}
	sb.WriteString(right)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func drawBorderedRow(w io.Writer, cells []textCell, widths []int, vert string) error {
	var sb strings.Builder
	sb.WriteString(vert)
	for i, width := range widths {
		cell := cells[i]
		sb.WriteString(" ")
		sb.WriteString(sgr(alignCell(cell.text, width, cell.align), cell.codes...))
		sb.WriteString(" ")
		if i < len(widths)-1 {
			sb.WriteString(vert)
		}
	}
	sb.WriteString(vert)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func alignCell(s string, width int, align Alignment) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		return s + strings.Repeat(" ", pad)
	}
}
