package timeinput

import (
	"fmt"
	"strings"
)

// Field is one of the two clock-face components.
type Field int

const (
	Hour Field = iota
	Minute
)

func (f Field) String() string {
	switch f {
	case Hour:
		return "hour"
	case Minute:
		return "minute"
	default:
		return fmt.Sprintf("Field(%d)", int(f))
	}
}

// Period is the half of the day in 12-hour time.
type Period int

const (
	AM Period = iota
	PM
)

// Offset is the hour added to a normalized 12-hour value.
func (p Period) Offset() int {
	if p == PM {
		return 12
	}
	return 0
}

func (p Period) String() string {
	if p == PM {
		return "pm"
	}
	return "am"
}

func ParsePeriod(s string) (Period, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "am":
		return AM, nil
	case "pm":
		return PM, nil
	}
	return AM, fmt.Errorf("unknown period %q (want am or pm)", s)
}

func periodOf(hour24 int) Period {
	if hour24 < 12 {
		return AM
	}
	return PM
}

// Indicator controls the "24 hr" badge shown in 24-hour mode.
type Indicator int

const (
	IndicatorAutomatic Indicator = iota
	IndicatorVisible
	IndicatorHidden
)

func (i Indicator) String() string {
	switch i {
	case IndicatorVisible:
		return "visible"
	case IndicatorHidden:
		return "hidden"
	default:
		return "automatic"
	}
}

func ParseIndicator(s string) (Indicator, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "automatic", "auto":
		return IndicatorAutomatic, nil
	case "visible":
		return IndicatorVisible, nil
	case "hidden":
		return IndicatorHidden, nil
	}
	return IndicatorAutomatic, fmt.Errorf("unknown indicator visibility %q (want automatic, visible or hidden)", s)
}

func ParseField(s string) (Field, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hour", "h":
		return Hour, nil
	case "minute", "min", "m":
		return Minute, nil
	}
	return Hour, fmt.Errorf("unknown time field %q (want hour or minute)", s)
}
