package dateinput

import (
	"time"

	"github.com/sirupsen/logrus"

	"crownpick/internal/locale"
	"crownpick/internal/wheel"
)

// DefaultYearSpan is how many years either side of the current year the year
// wheel offers when no bound constrains it.
const DefaultYearSpan = 500

// Bounds limits the selectable year, month and day. Either end may be nil.
// The time of day of a bound is ignored.
type Bounds struct {
	Min *time.Time
	Max *time.Time
}

// Closed bounds a selection to [min, max].
func Closed(min, max time.Time) Bounds { return Bounds{Min: &min, Max: &max} }

// From bounds a selection to min and later.
func From(min time.Time) Bounds { return Bounds{Min: &min} }

// Through bounds a selection to max and earlier.
func Through(max time.Time) Bounds { return Bounds{Max: &max} }

func (b Bounds) Misconfigured() bool {
	return b.Min != nil && b.Max != nil && b.Min.After(*b.Max)
}

// Calculator computes the year, month and day ranges a selection may take.
// All ranges are half-open; use Min and Max for the inclusive ends.
type Calculator struct {
	cal  locale.Calendar
	span int
	min  *locale.Parts
	max  *locale.Parts
}

// NewCalculator resolves bounds against cal. When min is after max both
// bounds are dropped and a warning is logged.
func NewCalculator(b Bounds, cal locale.Calendar, span int, log logrus.FieldLogger) Calculator {
	if cal == nil {
		cal = locale.Gregorian{}
	}
	if span <= 0 {
		span = DefaultYearSpan
	}
	c := Calculator{cal: cal, span: span}
	if b.Misconfigured() {
		if log != nil {
			log.WithFields(logrus.Fields{
				"min": b.Min.Format(time.DateOnly),
				"max": b.Max.Format(time.DateOnly),
			}).Warn("minimum date is after maximum date, ignoring bounds")
		}
		return c
	}
	if b.Min != nil {
		p := cal.Decompose(*b.Min)
		c.min = &p
	}
	if b.Max != nil {
		p := cal.Decompose(*b.Max)
		c.max = &p
	}
	return c
}

// snap moves the date of p onto the nearer bound when it lies outside the
// bounds. The time of day is kept.
func (c Calculator) snap(p locale.Parts) locale.Parts {
	switch {
	case c.min != nil && dateBefore(p, *c.min):
		p.Year, p.Month, p.Day = c.min.Year, c.min.Month, c.min.Day
	case c.max != nil && dateBefore(*c.max, p):
		p.Year, p.Month, p.Day = c.max.Year, c.max.Month, c.max.Day
	}
	return p
}

func dateBefore(a, b locale.Parts) bool {
	if a.Year != b.Year {
		return a.Year < b.Year
	}
	if a.Month != b.Month {
		return a.Month < b.Month
	}
	return a.Day < b.Day
}

func (c Calculator) Bounded() bool { return c.min != nil || c.max != nil }

// YearRange is the current year ±span, with either end replaced by the year
// of the matching bound.
func (c Calculator) YearRange(now time.Time) wheel.Range {
	year := c.cal.Decompose(now).Year
	lo, hi := year-c.span, year+c.span
	if c.min != nil {
		lo = c.min.Year
	}
	if c.max != nil {
		hi = c.max.Year
	}
	if lo > hi {
		// A lone bound lies outside the default window: keep the window
		// anchored on the bound instead.
		switch {
		case c.min != nil && c.max == nil:
			hi = lo + c.span
		case c.max != nil && c.min == nil:
			lo = hi - c.span
		default:
			lo, hi = year-c.span, year+c.span
		}
	}
	return wheel.Closed(lo, hi)
}

// MonthRange is every month of year, narrowed to the bound months when a
// bound falls in year.
func (c Calculator) MonthRange(year int) wheel.Range {
	full := wheel.Closed(1, c.cal.MonthsInYear(year))
	r := full
	if c.min != nil && c.min.Year == year {
		r.Lo = int(c.min.Month)
	}
	if c.max != nil && c.max.Year == year {
		r.Hi = int(c.max.Month) + 1
	}
	if r.Empty() {
		return full
	}
	return r
}

// DayRange is every day of the month, narrowed to the bound days when a bound
// falls in the same year and month.
func (c Calculator) DayRange(year int, month time.Month) wheel.Range {
	full := wheel.Closed(1, c.cal.DaysInMonth(year, month))
	r := full
	if c.min != nil && c.min.Year == year && c.min.Month == month {
		r.Lo = c.min.Day
	}
	if c.max != nil && c.max.Year == year && c.max.Month == month {
		r.Hi = c.max.Day + 1
	}
	if r.Empty() {
		return full
	}
	return r
}
