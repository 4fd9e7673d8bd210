package tabler

import (
	"fmt"
	"html"
	"io"
)

// writeHTML writes the title and subtitle as headings followed by a table
// of escaped cell text. Themes and cell colors are terminal-only and are not
// translated.
func writeHTML(w io.Writer, t *Table) error {
	if t.title != "" {
		if _, err := fmt.Fprintf(w, "<h1>%s</h1>\n", html.EscapeString(t.title)); err != nil {
			return err
		}
	}
	if t.subtitle != "" {
		if _, err := fmt.Fprintf(w, "<h2>%s</h2>\n", html.EscapeString(t.subtitle)); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w, "<table>"); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, "  <thead>"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "    <tr>"); err != nil {
		return err
	}
	for _, col := range t.columns {
		if _, err := fmt.Fprintf(w, "      <th>%s</th>\n", html.EscapeString(col.Name)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "    </tr>"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "  </thead>"); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, "  <tbody>"); err != nil {
		return err
	}
	for _, row := range t.rows {
		if _, err := fmt.Fprintln(w, "    <tr>"); err != nil {
			return err
		}
		for _, cell := range row.Cells {
			if _, err := fmt.Fprintf(w, "      <td>%s</td>\n", html.EscapeString(cell.Display())); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "    </tr>"); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "  </tbody>"); err != nil {
		return err
	}

	_, err := fmt.Fprintln(w, "</table>")
	return err
}
