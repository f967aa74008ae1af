package dateinput

import (
	"fmt"
	"strings"
)

// Field is one of the three date wheels.
type Field int

const (
	Year Field = iota
	Month
	Day
)

func (f Field) valid() bool { return f >= Year && f <= Day }

func (f Field) String() string {
	switch f {
	case Year:
		return "year"
	case Month:
		return "month"
	case Day:
		return "day"
	default:
		return fmt.Sprintf("Field(%d)", int(f))
	}
}

func ParseField(s string) (Field, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "year", "y":
		return Year, nil
	case "month", "m":
		return Month, nil
	case "day", "d":
		return Day, nil
	}
	return Year, fmt.Errorf("unknown date field %q (want year, month or day)", s)
}
