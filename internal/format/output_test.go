package format

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
)

type pickResult struct {
	Components string   `json:"components"`
	Events     []string `json:"events"`
	Hour       int      `json:"hour"`
	Locale     string   `json:"locale"`
	Minute     int      `json:"minute"`
	Selected   bool     `json:"selected"`
	Title      string   `json:"title"`
	Value      *string  `json:"value"`
}

var sample = pickResult{
	Components: "datetime",
	Events:     []string{"committed", "confirmed"},
	Hour:       12,
	Locale:     "en-US",
	Minute:     6,
	Selected:   true,
	Title:      "6/15/2023",
}

func TestWrite_Golden(t *testing.T) {
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	cases := []struct {
		name   string
		format string
		pretty bool
	}{
		{"result.json", "json", true},
		{"result.compact.json", "", false},
		{"result.edn", "edn", true},
		{"result.compact.edn", "edn", false},
		{"result.yaml", "yaml", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Write(&buf, sample, tc.format, tc.pretty); err != nil {
				t.Fatalf("write: %v", err)
			}
			g.Assert(t, tc.name, buf.Bytes())
		})
	}
}

func TestParse(t *testing.T) {
	for in, want := range map[string]string{"": "json", "JSON": "json", " edn ": "edn", "yml": "yaml"} {
		got, err := Parse(in)
		if err != nil || got != want {
			t.Fatalf("Parse(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := Parse("xml"); err == nil {
		t.Fatalf("expected error for xml")
	}
	if err := Write(&bytes.Buffer{}, sample, "xml", false); err == nil {
		t.Fatalf("expected Write to reject xml")
	}
}

func TestWriteEDN_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteEDN(&buf, map[string]any{"rows": []any{}, "meta": map[string]any{}, "ratio": 0.5}, false); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got, want := buf.String(), "{:meta {} :ratio 0.5 :rows []}\n"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}
