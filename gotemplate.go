package tabler

import (
	"fmt"
	"io"
	"text/template"
)

// writeGoTemplate executes tmplStr once per row with the row's [Record] as
// data, so "{{.Name}}" reads the Name column.
func writeGoTemplate(w io.Writer, tmplStr string, t *Table) error {
	tmpl, err := template.New("").Option("missingkey=zero").Parse(tmplStr)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTemplate, err)
	}
	for rec := range t.Records() {
		if err := tmpl.Execute(w, rec); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
