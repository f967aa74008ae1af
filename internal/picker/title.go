package picker

import (
	"fmt"
	"time"

	"crownpick/internal/locale"
)

// NextHour is the top of the hour after t (9:41 -> 10:00).
func NextHour(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour()+1, 0, 0, 0, t.Location())
}

// DefaultSelection is what a picker shows when it is bound to no value:
// the next full hour when only the time is edited, now otherwise.
func DefaultSelection(c Components, now time.Time) time.Time {
	if c == HourAndMinute {
		return NextHour(now)
	}
	return now
}

// ShortTime formats the time of day the way the locale writes it.
func ShortTime(t time.Time, loc locale.Service, twentyFourHour bool) string {
	sep := loc.TimeSeparator()
	if twentyFourHour {
		return fmt.Sprintf("%02d%s%02d", t.Hour(), sep, t.Minute())
	}
	h := t.Hour() % 12
	if h == 0 {
		h = 12
	}
	period := loc.AMSymbol()
	if t.Hour() >= 12 {
		period = loc.PMSymbol()
	}
	return fmt.Sprintf("%d%s%02d %s", h, sep, t.Minute(), period)
}

// NumericDate is the all-numeric date in the locale's month/day order.
func NumericDate(t time.Time, loc locale.Service) string {
	if loc.MonthPrecedesDay() {
		return fmt.Sprintf("%d/%d/%d", int(t.Month()), t.Day(), t.Year())
	}
	return fmt.Sprintf("%d/%d/%d", t.Day(), int(t.Month()), t.Year())
}

// AbbreviatedDate spells the month with its short symbol.
func AbbreviatedDate(t time.Time, loc locale.Service) string {
	month := loc.ShortMonthSymbols()[t.Month()-1]
	if loc.MonthPrecedesDay() {
		return fmt.Sprintf("%s %d, %d", month, t.Day(), t.Year())
	}
	return fmt.Sprintf("%d %s %d", t.Day(), month, t.Year())
}

// ButtonTitle is the label of a collapsed picker showing selection.
func ButtonTitle(selection *time.Time, c Components, loc locale.Service, twentyFourHour bool) string {
	if selection == nil {
		return "None"
	}
	t := *selection
	switch c {
	case Date:
		return AbbreviatedDate(t, loc)
	case HourAndMinute:
		return ShortTime(t, loc, twentyFourHour)
	default:
		return NumericDate(t, loc) + ", " + ShortTime(t, loc, twentyFourHour)
	}
}
