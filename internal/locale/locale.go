// Package locale answers the locale questions the pickers need: 12/24-hour
// time, month/day ordering, period and month symbols, the time separator,
// and a calendar that composes and decomposes dates.
//
// All queries are pure. Engines consult a Service, they never mutate it.
package locale

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

var ErrInvalidTag = errors.New("invalid locale identifier")

// Service is the locale collaborator consulted by the time and date engines.
type Service interface {
	ID() string
	Uses24HourTime() bool
	MonthPrecedesDay() bool
	AMSymbol() string
	PMSymbol() string
	ShortMonthSymbols() []string
	TimeSeparator() string
	Calendar
}

// Table is a Service backed by a static entry.
type Table struct {
	entry entry
	Gregorian
}

var _ Service = Table{}

func (t Table) ID() string               { return t.entry.id }
func (t Table) Uses24HourTime() bool     { return t.entry.hour24 }
func (t Table) MonthPrecedesDay() bool   { return t.entry.monthFirst }
func (t Table) AMSymbol() string         { return t.entry.am }
func (t Table) PMSymbol() string         { return t.entry.pm }
func (t Table) TimeSeparator() string    { return t.entry.separator }
func (t Table) ShortMonthSymbols() []string {
	out := make([]string, len(t.entry.months))
	copy(out, t.entry.months[:])
	return out
}

var (
	supportedTags []language.Tag
	matcher       language.Matcher
)

func init() {
	supportedTags = make([]language.Tag, 0, len(entries))
	for _, e := range entries {
		supportedTags = append(supportedTags, language.MustParse(e.id))
	}
	// The first tag is the matcher's fallback for unknown languages.
	matcher = language.NewMatcher(supportedTags)
}

// Lookup resolves a BCP 47 identifier ("en-US", "fi", "zh-TW", "sv_SE") to
// the closest supported locale. Well-formed identifiers for languages
// without an entry fall back to en-US. An empty id means en-US.
func Lookup(id string) (Table, error) {
	id = strings.TrimSpace(strings.ReplaceAll(id, "_", "-"))
	if id == "" {
		return Table{entry: entries[0]}, nil
	}
	tag, err := language.Parse(id)
	if err != nil {
		return Table{}, fmt.Errorf("%w: %q: %v", ErrInvalidTag, id, err)
	}
	_, idx, _ := matcher.Match(tag)
	if idx < 0 || idx >= len(entries) {
		idx = 0
	}
	return Table{entry: entries[idx]}, nil
}

// MustLookup is Lookup for identifiers known at compile time.
func MustLookup(id string) Table {
	t, err := Lookup(id)
	if err != nil {
		panic(err)
	}
	return t
}

// Supported lists the identifiers that have their own entry.
func Supported() []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.id)
	}
	return out
}

// Info is a flat description of a Service, used for CLI listings.
type Info struct {
	ID               string   `json:"id" yaml:"id"`
	Uses24HourTime   bool     `json:"uses24HourTime" yaml:"uses24HourTime"`
	MonthPrecedesDay bool     `json:"monthPrecedesDay" yaml:"monthPrecedesDay"`
	AMSymbol         string   `json:"amSymbol" yaml:"amSymbol"`
	PMSymbol         string   `json:"pmSymbol" yaml:"pmSymbol"`
	TimeSeparator    string   `json:"timeSeparator" yaml:"timeSeparator"`
	ShortMonths      []string `json:"shortMonths" yaml:"shortMonths"`
}

func Describe(s Service) Info {
	return Info{
		ID:               s.ID(),
		Uses24HourTime:   s.Uses24HourTime(),
		MonthPrecedesDay: s.MonthPrecedesDay(),
		AMSymbol:         s.AMSymbol(),
		PMSymbol:         s.PMSymbol(),
		TimeSeparator:    s.TimeSeparator(),
		ShortMonths:      s.ShortMonthSymbols(),
	}
}
