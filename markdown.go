package tabler

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

var markdownEscaper = strings.NewReplacer(`|`, `\|`, "\r\n", "<br>", "\n", "<br>", "\r", "<br>")

func writeMarkdown(w io.Writer, t *Table) error {
	if t.title != "" {
		if _, err := fmt.Fprintf(w, "# %s\n\n", t.title); err != nil {
			return err
		}
	}
	if t.subtitle != "" {
		if _, err := fmt.Fprintf(w, "_%s_\n\n", t.subtitle); err != nil {
			return err
		}
	}

	numCols := len(t.columns)
	if numCols == 0 {
		return nil
	}

	header := make([]string, numCols)
	for i, col := range t.columns {
		header[i] = markdownEscaper.Replace(col.Name)
	}
	rows := make([][]string, len(t.rows))
	for i, row := range t.rows {
		cells := make([]string, numCols)
		for j, c := range row.Cells {
			cells[j] = markdownEscaper.Replace(c.Display())
		}
		rows[i] = cells
	}

	// Calculate column widths (minimum 3 for alignment markers).
	widths := make([]int, numCols)
	for i, col := range header {
		widths[i] = max(3, runewidth.StringWidth(col))
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	// Markdown aligns whole columns; the first row's cells decide.
	aligns := make([]Alignment, numCols)
	if len(t.rows) > 0 {
		for i, c := range t.rows[0].Cells {
			aligns[i] = c.Align
		}
	}

	if err := writeMarkdownRow(w, header, widths, aligns); err != nil {
		return err
	}

	sep := make([]string, numCols)
	for i, width := range widths {
		switch aligns[i] {
		case AlignRight:
			sep[i] = strings.Repeat("-", width-1) + ":"
		case AlignCenter:
			sep[i] = ":" + strings.Repeat("-", width-2) + ":"
		default:
			sep[i] = strings.Repeat("-", width)
		}
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}

	for _, row := range rows {
		if err := writeMarkdownRow(w, row, widths, aligns); err != nil {
			return err
		}
	}
	return nil
}

func writeMarkdownRow(w io.Writer, cells []string, widths []int, aligns []Alignment) error {
	padded := make([]string, len(widths))
	for i, width := range widths {
		padded[i] = alignCell(cells[i], width, aligns[i])
	}
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	return err
}
