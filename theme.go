package tabler

import (
	"slices"
	"strings"
)

// BorderStyle controls the border characters of the text renderer.
type BorderStyle int

const (
	BorderRounded BorderStyle = iota // ╭─╮╰╯│┬┴├┤┼
	BorderNone                       // No borders, space-separated columns
	BorderASCII                      // +-+|
	BorderHeavy                      // ┏━┓┗┛┃┳┻┣┫╋
	BorderDouble                     // ╔═╗╚╝║╦╩╠╣╬
)

// Theme is render-time styling for text output. Color fields hold SGR
// parameter strings such as "32" or "1;31".
type Theme struct {
	// HeaderColor colors the header row. Empty means uncolored.
	HeaderColor string

	// RowColors is cycled over body rows: row i uses RowColors[i%len(RowColors)]
	// unless the cell sets its own Color. Empty means uncolored rows.
	RowColors []string

	// Border selects the box characters. Default: BorderRounded.
	Border BorderStyle
}

// rowColor returns the color for body row i.
func (th *Theme) rowColor(i int) string {
	if th == nil || len(th.RowColors) == 0 {
		return ""
	}
	return th.RowColors[i%len(th.RowColors)]
}

func (th *Theme) clone() *Theme {
	if th == nil {
		return nil
	}
	c := *th
	c.RowColors = slices.Clone(th.RowColors)
	return &c
}

const sgrReset = "\x1b[0m"

// sgr wraps s in an ANSI select-graphic-rendition sequence built from codes.
// Empty codes are skipped; with none left s is returned unchanged.
func sgr(s string, codes ...string) string {
	var params []string
	for _, c := range codes {
		if c != "" {
			params = append(params, c)
		}
	}
	if len(params) == 0 {
		return s
	}
	return "\x1b[" + strings.Join(params, ";") + "m" + s + sgrReset
}
