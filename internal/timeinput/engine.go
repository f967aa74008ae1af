// Package timeinput is the clock-face time selector: two unbounded counters
// (hour and minute) driven by rotary deltas and discrete steps, projected
// onto a 12- or 24-hour dial, and committed through a debouncer.
package timeinput

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"crownpick/internal/debounce"
	"crownpick/internal/locale"
	"crownpick/internal/logging"
	"crownpick/internal/wheel"
)

// DefaultDebounce is how long the counters must settle before a commit.
const DefaultDebounce = debounce.DefaultWindow

type Config struct {
	// TwentyFourHour overrides the locale's clock convention when set.
	TwentyFourHour *bool
	// HourOnly disables the minute field.
	HourOnly    bool
	Indicator   Indicator
	ZeroPadHour bool

	Debounce time.Duration
	Clock    debounce.Clock
	Schedule func(func())

	Logger   logrus.FieldLogger
	OnCommit func(time.Time)
}

// Engine holds the state of one presentation of the time selector. It is not
// safe for concurrent use; the debounced commit is delivered through
// Config.Schedule so hosts can run it on their own loop.
type Engine struct {
	loc  locale.Service
	tz   *time.Location
	seed locale.Parts

	twentyFourHour bool
	hourOnly       bool
	indicator      Indicator
	zeroPadHour    bool

	focus  Field
	hour   int
	minute int
	period Period

	hourAcc   wheel.Accumulator
	minuteAcc wheel.Accumulator
	animated  bool

	lastValid time.Time
	log       logrus.FieldLogger
	commits   *debounce.Debouncer[time.Time]
}

// New seeds an engine from seed. The seed's location is kept for composing
// candidates.
func New(seed time.Time, loc locale.Service, cfg Config) *Engine {
	if loc == nil {
		loc = locale.MustLookup("")
	}
	twentyFourHour := loc.Uses24HourTime()
	if cfg.TwentyFourHour != nil {
		twentyFourHour = *cfg.TwentyFourHour
	}
	log := cfg.Logger
	if log == nil {
		log = logging.For("timeinput")
	}
	parts := loc.Decompose(seed)

	e := &Engine{
		loc:            loc,
		tz:             seed.Location(),
		seed:           parts,
		twentyFourHour: twentyFourHour,
		hourOnly:       cfg.HourOnly,
		indicator:      cfg.Indicator,
		zeroPadHour:    cfg.ZeroPadHour,
		focus:          Hour,
		hour:           parts.Hour,
		minute:         parts.Minute,
		period:         periodOf(wheel.Normalize(parts.Hour, 24)),
		animated:       true,
		lastValid:      seed,
		log:            log,
	}
	e.commits = debounce.New(debounce.Opts[time.Time]{
		Window:   cfg.Debounce,
		Clock:    cfg.Clock,
		Schedule: cfg.Schedule,
		Fire: func(t time.Time) {
			e.log.WithField("selection", t.Format(time.RFC3339)).Debug("commit")
			if cfg.OnCommit != nil {
				cfg.OnCommit(t)
			}
		},
	})
	return e
}

func (e *Engine) TwentyFourHour() bool { return e.twentyFourHour }
func (e *Engine) HourOnly() bool       { return e.hourOnly }
func (e *Engine) Focus() Field         { return e.focus }

// Period is the active half of the day. In 24-hour mode it follows the hour.
func (e *Engine) Period() Period {
	if e.twentyFourHour {
		return periodOf(e.NormalizedHour())
	}
	return e.period
}

func (e *Engine) hourModulus() int {
	if e.twentyFourHour {
		return 24
	}
	return 12
}

func (e *Engine) NormalizedHour() int   { return wheel.Normalize(e.hour, e.hourModulus()) }
func (e *Engine) NormalizedMinute() int { return wheel.Normalize(e.minute, 60) }

// SetFocus moves focus. The minute field cannot take focus in hour-only mode.
func (e *Engine) SetFocus(f Field) {
	if f == Minute && e.hourOnly {
		return
	}
	if f != Hour && f != Minute {
		return
	}
	e.focus = f
}

func (e *Engine) accepts(f Field) bool {
	switch f {
	case Hour:
		return true
	case Minute:
		return !e.hourOnly
	}
	return false
}

// Rotate feeds a continuous rotary delta, in ticks, to field f. It reports
// whether a counter moved.
func (e *Engine) Rotate(f Field, delta float64) bool {
	if !e.accepts(f) {
		return false
	}
	var ticks int
	if f == Hour {
		ticks = e.hourAcc.Add(delta)
	} else {
		ticks = e.minuteAcc.Add(delta)
	}
	return e.move(f, ticks)
}

// Step moves field f by one.
func (e *Engine) Step(f Field, dir wheel.Direction) bool {
	if !e.accepts(f) {
		return false
	}
	return e.move(f, int(dir))
}

func (e *Engine) move(f Field, ticks int) bool {
	if ticks == 0 {
		return false
	}
	if f == Hour {
		e.hour += ticks
	} else {
		e.minute += ticks
	}
	e.animated = true
	e.changed()
	return true
}

// TogglePeriod makes target the active period. The raw hour is shifted by 12
// in the matching direction so the dial does not move. Selecting the active
// period, or any period in 24-hour mode, does nothing.
func (e *Engine) TogglePeriod(target Period) bool {
	if e.twentyFourHour || e.period == target {
		return false
	}
	if target == PM {
		e.hour += 12
	} else {
		e.hour -= 12
	}
	e.period = target
	e.animated = false
	e.changed()
	return true
}

func (e *Engine) changed() {
	e.commits.Notify(e.Candidate())
}

// Candidate composes the current counters onto the seed's date. When the
// components do not form a valid instant the last valid candidate is kept.
func (e *Engine) Candidate() time.Time {
	hour := e.NormalizedHour()
	if !e.twentyFourHour {
		hour += e.period.Offset()
	}
	p := e.seed
	p.Hour = hour
	p.Minute = e.NormalizedMinute()
	p.Second = 0

	t, err := e.loc.Compose(p, e.tz)
	if err != nil {
		e.log.WithFields(logrus.Fields{
			"year":   p.Year,
			"month":  int(p.Month),
			"day":    p.Day,
			"hour":   p.Hour,
			"minute": p.Minute,
			"period": e.period.String(),
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

// Cancel drops a pending commit.
func (e *Engine) Cancel() {
	e.commits.Cancel()
}

// Pending reports whether a debounced commit is waiting.
func (e *Engine) Pending() bool { return e.commits.Pending() }

func (e *Engine) hourText() string {
	n := e.NormalizedHour()
	if e.twentyFourHour {
		return fmt.Sprintf("%02d", n)
	}
	if n == 0 {
		n = 12
	}
	if e.zeroPadHour {
		return fmt.Sprintf("%02d", n)
	}
	return fmt.Sprintf("%d", n)
}

type Snapshot struct {
	Hour      string `json:"hour"`
	Minute    string `json:"minute"`
	Separator string `json:"separator"`
	Focus     string `json:"focus"`
	Period    string `json:"period"`
	AMSymbol  string `json:"amSymbol"`
	PMSymbol  string `json:"pmSymbol"`

	TwentyFourHour bool `json:"twentyFourHour"`
	// ShowPeriod is true when the AM/PM controls are on screen.
	ShowPeriod bool `json:"showPeriod"`
	// ShowIndicator is true when the "24 hr" badge is on screen.
	ShowIndicator bool `json:"showIndicator"`
	HourOnly      bool `json:"hourOnly"`
	// Animated is false right after a period toggle.
	Animated bool `json:"animated"`
}

func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Hour:           e.hourText(),
		Minute:         fmt.Sprintf("%02d", e.NormalizedMinute()),
		Separator:      e.loc.TimeSeparator(),
		Focus:          e.focus.String(),
		Period:         e.Period().String(),
		AMSymbol:       e.loc.AMSymbol(),
		PMSymbol:       e.loc.PMSymbol(),
		TwentyFourHour: e.twentyFourHour,
		ShowPeriod:     !e.twentyFourHour,
		ShowIndicator:  e.twentyFourHour && e.indicator != IndicatorHidden,
		HourOnly:       e.hourOnly,
		Animated:       e.animated,
	}
}
