package picker

import (
	"errors"
	"fmt"
	"strings"
)

// Components selects which parts of an instant the picker edits.
type Components uint8

const (
	Date Components = 1 << iota
	HourAndMinute

	DateAndTime = Date | HourAndMinute
)

var ErrUnsupportedComponents = errors.New("unsupported picker components")

func (c Components) Has(x Components) bool { return c&x == x }

// Validate rejects empty and unknown component sets.
func (c Components) Validate() error {
	if c == 0 || c&^DateAndTime != 0 {
		return fmt.Errorf("%w: %d", ErrUnsupportedComponents, uint8(c))
	}
	return nil
}

func (c Components) String() string {
	switch c {
	case Date:
		return "date"
	case HourAndMinute:
		return "time"
	case DateAndTime:
		return "datetime"
	default:
		return fmt.Sprintf("Components(%d)", uint8(c))
	}
}

// ParseComponents accepts "date", "time" and "datetime", or a list joined
// with '+' or ',' ("date+time").
func ParseComponents(s string) (Components, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DateAndTime, nil
	}
	var c Components
	for _, part := range strings.FieldsFunc(s, func(r rune) bool { return r == '+' || r == ',' || r == '|' }) {
		switch strings.TrimSpace(part) {
		case "date":
			c |= Date
		case "time", "hourandminute", "hour-and-minute":
			c |= HourAndMinute
		case "datetime", "dateandtime", "all":
			c |= DateAndTime
		default:
			return 0, fmt.Errorf("%w: %q (want date, time or datetime)", ErrUnsupportedComponents, part)
		}
	}
	if err := c.Validate(); err != nil {
		return 0, err
	}
	return c, nil
}

// Screen is one step of the picker flow.
type Screen int

const (
	DateScreen Screen = iota
	TimeScreen
)

func (s Screen) String() string {
	if s == TimeScreen {
		return "time"
	}
	return "date"
}
