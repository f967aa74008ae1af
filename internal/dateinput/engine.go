// Package dateinput is the three-wheel date selector. The year, month and day
// wheels depend on each other: the month wheel shrinks in a bound year, the
// day wheel follows the month length, and the selected day is pulled back
// into range whenever the year or month moves.
package dateinput

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"crownpick/internal/debounce"
	"crownpick/internal/locale"
	"crownpick/internal/logging"
	"crownpick/internal/wheel"
)

const DefaultDebounce = debounce.DefaultWindow

type Config struct {
	Bounds Bounds
	// YearSpan is the unbounded year window either side of Now. Zero means
	// DefaultYearSpan.
	YearSpan int
	// MonthBeforeDay overrides the locale's wheel order when set.
	MonthBeforeDay *bool
	// MonthSymbols labels the month wheel with short month names instead
	// of numbers.
	MonthSymbols bool
	// Now anchors the unbounded year window. Zero means the clock's now.
	Now time.Time

	Debounce time.Duration
	Clock    debounce.Clock
	Schedule func(func())

	Logger   logrus.FieldLogger
	OnCommit func(time.Time)
}

// Engine holds the state of one presentation of the date selector. Like the
// time engine it is driven from a single goroutine.
type Engine struct {
	loc  locale.Service
	tz   *time.Location
	seed locale.Parts
	calc Calculator
	now  time.Time

	monthFirst   bool
	monthSymbols bool

	focus Field
	year  int
	month int
	day   int
	accs  [3]wheel.Accumulator

	lastValid time.Time
	log       logrus.FieldLogger
	commits   *debounce.Debouncer[time.Time]
}

// New seeds an engine from seed. A seed before the minimum bound starts on
// the minimum day, one after the maximum bound on the maximum day.
func New(seed time.Time, loc locale.Service, cfg Config) *Engine {
	if loc == nil {
		loc = locale.MustLookup("")
	}
	log := cfg.Logger
	if log == nil {
		log = logging.For("dateinput")
	}
	clock := cfg.Clock
	if clock == nil {
		clock = debounce.System
	}
	now := cfg.Now
	if now.IsZero() {
		now = clock.Now()
	}
	monthFirst := loc.MonthPrecedesDay()
	if cfg.MonthBeforeDay != nil {
		monthFirst = *cfg.MonthBeforeDay
	}
	parts := loc.Decompose(seed)
	calc := NewCalculator(cfg.Bounds, loc, cfg.YearSpan, log)
	parts = calc.snap(parts)

	e := &Engine{
		loc:          loc,
		tz:           seed.Location(),
		seed:         parts,
		calc:         calc,
		now:          now,
		monthFirst:   monthFirst,
		monthSymbols: cfg.MonthSymbols,
		year:         parts.Year,
		month:        int(parts.Month),
		day:          parts.Day,
		lastValid:    seed,
		log:          log,
	}
	e.focus = e.DisplayOrder()[0]
	e.year = e.YearRange().Clamp(e.year)
	e.reconcile()

	e.commits = debounce.New(debounce.Opts[time.Time]{
		Window:   cfg.Debounce,
		Clock:    clock,
		Schedule: cfg.Schedule,
		Fire: func(t time.Time) {
			e.log.WithField("selection", t.Format(time.DateOnly)).Debug("commit")
			if cfg.OnCommit != nil {
				cfg.OnCommit(t)
			}
		},
	})
	return e
}

func (e *Engine) Focus() Field { return e.focus }
func (e *Engine) Year() int    { return e.year }

func (e *Engine) Month() time.Month { return time.Month(e.month) }
func (e *Engine) Day() int          { return e.day }

func (e *Engine) YearRange() wheel.Range  { return e.calc.YearRange(e.now) }
func (e *Engine) MonthRange() wheel.Range { return e.calc.MonthRange(e.year) }
func (e *Engine) DayRange() wheel.Range   { return e.calc.DayRange(e.year, time.Month(e.month)) }

// RangeOf is the current range of field f.
func (e *Engine) RangeOf(f Field) wheel.Range {
	switch f {
	case Year:
		return e.YearRange()
	case Month:
		return e.MonthRange()
	default:
		return e.DayRange()
	}
}

// DisplayOrder is the left-to-right order of the wheels. The year is always
// last.
func (e *Engine) DisplayOrder() []Field {
	if e.monthFirst {
		return []Field{Month, Day, Year}
	}
	return []Field{Day, Month, Year}
}

func (e *Engine) SetFocus(f Field) {
	if !f.valid() {
		return
	}
	e.focus = f
}

// Rotate feeds a continuous rotary delta, in ticks, to field f. It reports
// whether the selection moved.
func (e *Engine) Rotate(f Field, delta float64) bool {
	if !f.valid() {
		return false
	}
	return e.move(f, e.accs[f].Add(delta))
}

// Step moves field f by one, wrapping at the ends of its range.
func (e *Engine) Step(f Field, dir wheel.Direction) bool {
	if !f.valid() {
		return false
	}
	return e.move(f, int(dir))
}

// Set puts field f on v, clamped into its range.
func (e *Engine) Set(f Field, v int) bool {
	if !f.valid() {
		return false
	}
	before := [3]int{e.year, e.month, e.day}
	switch f {
	case Year:
		e.year = e.YearRange().Clamp(v)
	case Month:
		e.month = e.MonthRange().Clamp(v)
	case Day:
		e.day = e.DayRange().Clamp(v)
	}
	e.reconcile()
	if before == [3]int{e.year, e.month, e.day} {
		return false
	}
	e.changed()
	return true
}

func (e *Engine) move(f Field, ticks int) bool {
	if ticks == 0 {
		return false
	}
	before := [3]int{e.year, e.month, e.day}
	switch f {
	case Year:
		e.year = e.YearRange().Wrap(e.year + ticks)
	case Month:
		e.month = e.MonthRange().Wrap(e.month + ticks)
	case Day:
		e.day = e.DayRange().Wrap(e.day + ticks)
	}
	e.reconcile()
	if before == [3]int{e.year, e.month, e.day} {
		// A single-value wheel wraps onto itself.
		return false
	}
	e.changed()
	return true
}

// reconcile pulls month and day back into the ranges of the current year and
// month. Ranges are recomputed after each step so the day is never clamped
// against a month it no longer belongs to.
func (e *Engine) reconcile() {
	e.month = e.MonthRange().Clamp(e.month)
	e.day = e.DayRange().Clamp(e.day)
}

// SetTimeOfDay replaces the hour and minute the wheels are composed with.
// The wheels do not move and nothing is committed.
func (e *Engine) SetTimeOfDay(hour, minute int) {
	e.seed.Hour = hour
	e.seed.Minute = minute
	e.seed.Second = 0
}

func (e *Engine) changed() {
	e.commits.Notify(e.Candidate())
}

// Candidate composes the wheels with the seed's hour and minute. When the
// components do not form a valid instant the last valid candidate is kept.
func (e *Engine) Candidate() time.Time {
	p := locale.Parts{
		Year:   e.year,
		Month:  time.Month(e.month),
		Day:    e.day,
		Hour:   e.seed.Hour,
		Minute: e.seed.Minute,
	}
	t, err := e.loc.Compose(p, e.tz)
	if err != nil {
		e.log.WithFields(logrus.Fields{
			"year":   p.Year,
			"month":  int(p.Month),
			"day":    p.Day,
			"hour":   p.Hour,
			"minute": p.Minute,
		}).WithError(err).Warn("invalid selection, keeping last valid date")
		return e.lastValid
	}
	e.lastValid = t
	return t
}

// Confirm delivers any pending commit now and returns the candidate.
func (e *Engine) Confirm() time.Time {
	e.commits.Flush()
	return e.Candidate()
}

func (e *Engine) Cancel()       { e.commits.Cancel() }
func (e *Engine) Pending() bool { return e.commits.Pending() }

func (e *Engine) text(f Field, v int) string {
	switch f {
	case Month:
		if e.monthSymbols {
			symbols := e.loc.ShortMonthSymbols()
			if v >= 1 && v <= len(symbols) {
				return symbols[v-1]
			}
		}
		return fmt.Sprintf("%d", v)
	default:
		// Years are never digit-grouped.
		return fmt.Sprintf("%d", v)
	}
}

func (e *Engine) value(f Field) int {
	switch f {
	case Year:
		return e.year
	case Month:
		return e.month
	default:
		return e.day
	}
}

// Row is one visible entry of a wheel.
type Row struct {
	Value    int    `json:"value"`
	Text     string `json:"text"`
	Selected bool   `json:"selected,omitempty"`
}

// Wheel lists the selected value of f with up to radius neighbours either
// side, wrapping at the range ends. Short ranges show each value once.
func (e *Engine) Wheel(f Field, radius int) []Row {
	r := e.RangeOf(f)
	if max := (r.Len() - 1) / 2; radius > max {
		radius = max
	}
	if radius < 0 {
		radius = 0
	}
	cur := e.value(f)
	rows := make([]Row, 0, 2*radius+1)
	for off := -radius; off <= radius; off++ {
		v := r.Wrap(cur + off)
		rows = append(rows, Row{Value: v, Text: e.text(f, v), Selected: off == 0})
	}
	return rows
}

type Snapshot struct {
	Year  string   `json:"year"`
	Month string   `json:"month"`
	Day   string   `json:"day"`
	Focus string   `json:"focus"`
	Order []string `json:"order"`

	YearRange  [2]int `json:"yearRange"`
	MonthRange [2]int `json:"monthRange"`
	DayRange   [2]int `json:"dayRange"`
}

func (e *Engine) Snapshot() Snapshot {
	order := e.DisplayOrder()
	names := make([]string, len(order))
	for i, f := range order {
		names[i] = f.String()
	}
	yr, mr, dr := e.YearRange(), e.MonthRange(), e.DayRange()
	return Snapshot{
		Year:       e.text(Year, e.year),
		Month:      e.text(Month, e.month),
		Day:        e.text(Day, e.day),
		Focus:      e.focus.String(),
		Order:      names,
		YearRange:  [2]int{yr.Min(), yr.Max()},
		MonthRange: [2]int{mr.Min(), mr.Max()},
		DayRange:   [2]int{dr.Min(), dr.Max()},
	}
}
