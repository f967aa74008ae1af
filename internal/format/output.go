// Package format renders command payloads as json, edn or yaml.
package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Formats lists the accepted --format values, default first.
var Formats = []string{"json", "edn", "yaml"}

// Parse normalizes a format name. Empty means json.
func Parse(name string) (string, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "":
		return "json", nil
	case "json", "edn", "yaml":
		return name, nil
	case "yml":
		return "yaml", nil
	default:
		return "", fmt.Errorf("unknown format: %s (want %s)", name, strings.Join(Formats, ", "))
	}
}

// Write writes v in the requested format.
func Write(w io.Writer, v any, format string, pretty bool) error {
	f, err := Parse(format)
	if err != nil {
		return err
	}
	switch f {
	case "edn":
		return WriteEDN(w, v, pretty)
	case "yaml":
		return WriteYAML(w, v)
	default:
		return WriteJSON(w, v, pretty)
	}
}

// WriteJSON writes strict JSON, one document per line unless pretty.
func WriteJSON(w io.Writer, v any, pretty bool) error {
	var b []byte
	var err error
	if pretty {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))
	return err
}

// toGeneric converts v to maps, slices and scalars using its json tags so
// every encoder agrees on field names.
func toGeneric(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var x any
	if err := json.Unmarshal(b, &x); err != nil {
		return nil, err
	}
	return x, nil
}
