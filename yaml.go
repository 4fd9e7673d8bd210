package tabler

import (
	"bytes"
	"io"

	"gopkg.in/yaml.v3"
)

// writeYAML writes the rows as a sequence of mappings in column order. Every
// value is tagged as a string so "30" stays text rather than becoming an int.
func writeYAML(w io.Writer, t *Table) error {
	seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	if len(t.rows) == 0 {
		seq.Style = yaml.FlowStyle
	}
	for _, row := range t.rows {
		m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for i, col := range t.columns {
			m.Content = append(m.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: col.Name},
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: row.Cells[i].Value},
			)
		}
		seq.Content = append(seq.Content, m)
	}
	// Encode into a buffer: the encoder reports writer failures as its own
	// error type, which would hide the caller's error.
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(seq); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}
