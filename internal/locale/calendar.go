package locale

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidComponents = errors.New("invalid date components")

// Parts are the calendar components of an instant.
type Parts struct {
	Year   int
	Month  time.Month
	Day    int
	Hour   int
	Minute int
	Second int
}

// Calendar composes and decomposes dates.
type Calendar interface {
	MonthsInYear(year int) int
	DaysInMonth(year int, month time.Month) int
	Compose(p Parts, loc *time.Location) (time.Time, error)
	Decompose(t time.Time) Parts
}

// Gregorian is the proleptic Gregorian calendar of package time.
type Gregorian struct{}

var _ Calendar = Gregorian{}

func (Gregorian) MonthsInYear(int) int { return 12 }

func (Gregorian) DaysInMonth(year int, month time.Month) int {
	// Day 0 of next month is last day of this month.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Compose builds the instant for p in loc. Unlike time.Date it does not
// normalize: every component must be in range and the wall-clock time must
// exist in loc (a time skipped by a DST transition is rejected).
func (g Gregorian) Compose(p Parts, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	switch {
	case p.Month < time.January || p.Month > time.December:
		return time.Time{}, fmt.Errorf("%w: month %d", ErrInvalidComponents, p.Month)
	case p.Day < 1 || p.Day > g.DaysInMonth(p.Year, p.Month):
		return time.Time{}, fmt.Errorf("%w: day %d of %04d-%02d", ErrInvalidComponents, p.Day, p.Year, p.Month)
	case p.Hour < 0 || p.Hour > 23:
		return time.Time{}, fmt.Errorf("%w: hour %d", ErrInvalidComponents, p.Hour)
	case p.Minute < 0 || p.Minute > 59:
		return time.Time{}, fmt.Errorf("%w: minute %d", ErrInvalidComponents, p.Minute)
	case p.Second < 0 || p.Second > 59:
		return time.Time{}, fmt.Errorf("%w: second %d", ErrInvalidComponents, p.Second)
	}
	t := time.Date(p.Year, p.Month, p.Day, p.Hour, p.Minute, p.Second, 0, loc)
	if got := g.Decompose(t); got != p {
		return time.Time{}, fmt.Errorf("%w: %04d-%02d-%02d %02d:%02d does not exist in %s", ErrInvalidComponents, p.Year, p.Month, p.Day, p.Hour, p.Minute, loc)
	}
	return t, nil
}

func (Gregorian) Decompose(t time.Time) Parts {
	y, m, d := t.Date()
	return Parts{Year: y, Month: m, Day: d, Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}
}
