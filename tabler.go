package tabler

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrSchemaMismatch    = errors.New("schema mismatch")
	ErrDuplicateColumn   = errors.New("duplicate column")
	ErrUnknownColumn     = errors.New("unknown column")
	ErrIndexOutOfRange   = errors.New("index out of range")
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrNoNumericData     = errors.New("no numeric data")
	ErrValidation        = errors.New("validation failed")
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrInvalidTemplate   = errors.New("invalid template")
)

// Format represents an output format.
type Format string

const (
	FormatText     Format = "text"
	FormatCSV      Format = "csv"
	FormatTSV      Format = "tsv"
	FormatHTML     Format = "html"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
	FormatJSONL    Format = "jsonl"
	FormatYAML     Format = "yaml"
)

const goTemplatePrefix = "go-template="

var formats = []Format{FormatText, FormatCSV, FormatTSV, FormatHTML, FormatMarkdown, FormatJSON, FormatJSONL, FormatYAML}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported static format names.
// GoTemplate is not included because it is parameterized.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// GoTemplate returns a Format that renders each row using a Go text/template.
// The template receives the row as a [Record] and each execution is written
// on its own line.
func GoTemplate(tmpl string) Format {
	return Format(goTemplatePrefix + tmpl)
}

// ParseFormat parses a format string such as a CLI flag value. It recognizes
// all static formats, go-template=<tmpl> strings, and the aliases "table"
// and "md" for text and markdown.
func ParseFormat(s string) (Format, error) {
	if strings.HasPrefix(s, goTemplatePrefix) {
		return Format(s), nil
	}
	switch strings.ToLower(s) {
	case "table":
		return FormatText, nil
	case "md":
		return FormatMarkdown, nil
	}
	for _, f := range formats {
		if strings.EqualFold(string(f), s) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Write renders the table in format f and writes it to w.
// The table is not modified.
func (t *Table) Write(w io.Writer, f Format) error {
	switch f {
	case FormatText:
		return writeText(w, t)
	case FormatCSV:
		return writeCSV(w, t)
	case FormatTSV:
		return writeTSV(w, t)
	case FormatHTML:
		return writeHTML(w, t)
	case FormatMarkdown:
		return writeMarkdown(w, t)
	case FormatJSON:
		return writeJSON(w, t)
	case FormatJSONL:
		return writeJSONL(w, t)
	case FormatYAML:
		return writeYAML(w, t)
	default:
		if tmpl, ok := strings.CutPrefix(string(f), goTemplatePrefix); ok {
			return writeGoTemplate(w, tmpl, t)
		}
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Render returns the table rendered in format f.
func (t *Table) Render(f Format) (string, error) {
	var sb strings.Builder
	if err := t.Write(&sb, f); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// mustRender is for the fixed-format helpers. Writing to a strings.Builder
// never fails and every built-in format is known, so the error is always nil.
func (t *Table) mustRender(f Format) string {
	s, err := t.Render(f)
	if err != nil {
		panic(err)
	}
	return s
}

// String renders the table as boxed text.
func (t *Table) String() string { return t.mustRender(FormatText) }

// ToString renders the table as boxed text. It is the same as String.
func (t *Table) ToString() string { return t.mustRender(FormatText) }

// ToCSV renders the header and rows as CSV.
func (t *Table) ToCSV() string { return t.mustRender(FormatCSV) }

// ToHTML renders the table as an HTML fragment.
func (t *Table) ToHTML() string { return t.mustRender(FormatHTML) }

// ToMarkdown renders the table as a GitHub-flavored Markdown table.
func (t *Table) ToMarkdown() string { return t.mustRender(FormatMarkdown) }
