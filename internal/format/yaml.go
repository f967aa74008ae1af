package format

import (
	"io"

	"gopkg.in/yaml.v3"
)

// WriteYAML writes v as a single YAML document with two-space indentation.
// Field names follow the json tags.
func WriteYAML(w io.Writer, v any) error {
	x, err := toGeneric(v)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(x); err != nil {
		return err
	}
	return enc.Close()
}
