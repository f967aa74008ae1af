// Package picker runs one presentation of the date and/or time selector. A
// Session owns the engines for each screen, adapts an optional bound value
// into the required value the engines work on, and writes a value back out
// only when the user confirms (or, for a time-only picker, when the dial
// settles).
package picker

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"crownpick/internal/dateinput"
	"crownpick/internal/debounce"
	"crownpick/internal/locale"
	"crownpick/internal/logging"
	"crownpick/internal/timeinput"
	"crownpick/internal/wheel"
)

type EventKind int

const (
	// Committed is a debounced commit from the active screen's engine.
	Committed EventKind = iota
	// Advanced moves from the date screen to the time screen.
	Advanced
	// Returned moves from the time screen back to the date screen.
	Returned
	Confirmed
	Canceled
	Cleared
)

func (k EventKind) String() string {
	switch k {
	case Committed:
		return "committed"
	case Advanced:
		return "advanced"
	case Returned:
		return "returned"
	case Confirmed:
		return "confirmed"
	case Canceled:
		return "canceled"
	case Cleared:
		return "cleared"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

type Event struct {
	Kind   EventKind
	Screen Screen
	// Value is nil for Canceled and Cleared.
	Value *time.Time
}

type Options struct {
	Components Components
	Locale     locale.Service

	// Default replaces the computed default when the bound value is absent.
	Default *time.Time

	Bounds         dateinput.Bounds
	YearSpan       int
	MonthBeforeDay *bool
	MonthSymbols   bool

	TwentyFourHour *bool
	HourOnly       bool
	Indicator      timeinput.Indicator
	ZeroPadHour    bool

	// ConfirmationTitle replaces the "Continue"/"Set" label.
	ConfirmationTitle string

	Debounce time.Duration
	Clock    debounce.Clock
	Schedule func(func())
	Logger   logrus.FieldLogger

	OnEvent func(Event)
}

// Session methods may be called from one goroutine while debounced commits
// land from the timer goroutine (or from the host loop, when
// Options.Schedule is set). Both go through mu. OnEvent runs after mu is
// released, so handlers may call back into the session.
type Session struct {
	id       string
	opts     Options
	loc      locale.Service
	clock    debounce.Clock
	log      logrus.FieldLogger
	schedule func(func())

	mu     sync.Mutex
	outbox []Event

	selection *time.Time
	working   time.Time

	screen Screen
	date   *dateinput.Engine
	time   *timeinput.Engine
	done   bool
}

// New starts a session bound to selection, which may be nil.
func New(selection *time.Time, opts Options) (*Session, error) {
	if err := opts.Components.Validate(); err != nil {
		return nil, err
	}
	if opts.Locale == nil {
		opts.Locale = locale.MustLookup("")
	}
	if opts.Clock == nil {
		opts.Clock = debounce.System
	}
	id := uuid.NewString()
	var log logrus.FieldLogger = logging.For("picker")
	if opts.Logger != nil {
		log = opts.Logger
	}
	log = log.WithField("session", id)

	s := &Session{
		id:    id,
		opts:  opts,
		loc:   opts.Locale,
		clock: opts.Clock,
		log:   log,
	}
	s.schedule = s.serialized(opts.Schedule)
	switch {
	case selection != nil:
		v := *selection
		s.selection = &v
		s.working = v
	case opts.Default != nil:
		s.working = *opts.Default
	default:
		s.working = DefaultSelection(opts.Components, opts.Clock.Now())
	}

	if opts.Components.Has(Date) {
		s.screen = DateScreen
		s.date = s.newDateEngine(s.working)
	} else {
		s.screen = TimeScreen
		s.time = s.newTimeEngine(s.working)
	}
	log.WithFields(logrus.Fields{
		"components": opts.Components.String(),
		"locale":     s.loc.ID(),
		"seed":       s.working.Format(time.RFC3339),
	}).Debug("session started")
	return s, nil
}

func (s *Session) newDateEngine(seed time.Time) *dateinput.Engine {
	return dateinput.New(seed, s.loc, dateinput.Config{
		Bounds:         s.opts.Bounds,
		YearSpan:       s.opts.YearSpan,
		MonthBeforeDay: s.opts.MonthBeforeDay,
		MonthSymbols:   s.opts.MonthSymbols,
		Debounce:       s.opts.Debounce,
		Clock:          s.clock,
		Schedule:       s.schedule,
		Logger:         s.log.WithField("component", "dateinput"),
		OnCommit:       s.dateCommitted,
	})
}

func (s *Session) newTimeEngine(seed time.Time) *timeinput.Engine {
	return timeinput.New(seed, s.loc, timeinput.Config{
		TwentyFourHour: s.opts.TwentyFourHour,
		HourOnly:       s.opts.HourOnly,
		Indicator:      s.opts.Indicator,
		ZeroPadHour:    s.opts.ZeroPadHour,
		Debounce:       s.opts.Debounce,
		Clock:          s.clock,
		Schedule:       s.schedule,
		Logger:         s.log.WithField("component", "timeinput"),
		OnCommit:       s.timeCommitted,
	})
}

// serialized runs debounced deliveries under mu, on the host loop when the
// host supplies one.
func (s *Session) serialized(host func(func())) func(func()) {
	return func(f func()) {
		run := func() {
			s.mu.Lock()
			defer s.unlock()
			f()
		}
		if host != nil {
			host(run)
			return
		}
		run()
	}
}

// unlock releases mu and then hands queued events to OnEvent.
func (s *Session) unlock() {
	events := s.outbox
	s.outbox = nil
	s.mu.Unlock()
	if s.opts.OnEvent == nil {
		return
	}
	for _, e := range events {
		s.opts.OnEvent(e)
	}
}

func (s *Session) dateCommitted(t time.Time) {
	if s.done || s.screen != DateScreen {
		return
	}
	s.working = t
	s.emit(Committed, &t)
}

func (s *Session) timeCommitted(t time.Time) {
	if s.done || s.screen != TimeScreen {
		return
	}
	s.working = t
	if s.opts.Components == HourAndMinute {
		// A lone time picker previews live.
		v := t
		s.selection = &v
	}
	s.emit(Committed, &t)
}

func (s *Session) emit(kind EventKind, v *time.Time) {
	e := Event{Kind: kind, Screen: s.screen}
	if v != nil {
		x := *v
		e.Value = &x
	}
	s.log.WithFields(logrus.Fields{"event": kind.String(), "screen": s.screen.String()}).Debug("picker event")
	s.outbox = append(s.outbox, e)
}

func (s *Session) ID() string             { return s.id }
func (s *Session) Components() Components { return s.opts.Components }
func (s *Session) Locale() locale.Service { return s.loc }

func (s *Session) Screen() Screen {
	s.mu.Lock()
	defer s.unlock()
	return s.screen
}

func (s *Session) Done() bool {
	s.mu.Lock()
	defer s.unlock()
	return s.done
}

func (s *Session) Working() time.Time {
	s.mu.Lock()
	defer s.unlock()
	return s.working
}

func (s *Session) DateEngine() *dateinput.Engine {
	s.mu.Lock()
	defer s.unlock()
	return s.date
}

// TimeEngine is nil until the time screen has been reached.
func (s *Session) TimeEngine() *timeinput.Engine {
	s.mu.Lock()
	defer s.unlock()
	return s.time
}

// Selection is the externally visible value; nil when none has been set.
func (s *Session) Selection() *time.Time {
	s.mu.Lock()
	defer s.unlock()
	if s.selection == nil {
		return nil
	}
	v := *s.selection
	return &v
}

// Fields names the fields of the current screen in display order.
func (s *Session) Fields() []string {
	s.mu.Lock()
	defer s.unlock()
	return s.fields()
}

func (s *Session) fields() []string {
	if s.screen == DateScreen {
		order := s.date.DisplayOrder()
		out := make([]string, len(order))
		for i, f := range order {
			out[i] = f.String()
		}
		return out
	}
	if s.time.HourOnly() {
		return []string{timeinput.Hour.String()}
	}
	return []string{timeinput.Hour.String(), timeinput.Minute.String()}
}

func (s *Session) Focus() string {
	s.mu.Lock()
	defer s.unlock()
	return s.focus()
}

func (s *Session) focus() string {
	if s.screen == DateScreen {
		return s.date.Focus().String()
	}
	return s.time.Focus().String()
}

// SetFocus focuses a field of the current screen by name.
func (s *Session) SetFocus(name string) error {
	s.mu.Lock()
	defer s.unlock()
	return s.setFocus(name)
}

func (s *Session) setFocus(name string) error {
	if s.screen == DateScreen {
		f, err := dateinput.ParseField(name)
		if err != nil {
			return err
		}
		s.date.SetFocus(f)
		return nil
	}
	f, err := timeinput.ParseField(name)
	if err != nil {
		return err
	}
	s.time.SetFocus(f)
	return nil
}

// CycleFocus moves focus by n fields in display order, wrapping.
func (s *Session) CycleFocus(n int) {
	s.mu.Lock()
	defer s.unlock()
	fields := s.fields()
	focus := s.focus()
	cur := 0
	for i, f := range fields {
		if f == focus {
			cur = i
		}
	}
	_ = s.setFocus(fields[wheel.Normalize(cur+n, len(fields))])
}

// Rotate feeds a rotary delta to the focused field.
func (s *Session) Rotate(delta float64) bool {
	s.mu.Lock()
	defer s.unlock()
	if s.done {
		return false
	}
	if s.screen == DateScreen {
		return s.date.Rotate(s.date.Focus(), delta)
	}
	return s.time.Rotate(s.time.Focus(), delta)
}

// RotateField feeds a rotary delta to a named field of the current screen
// and focuses it.
func (s *Session) RotateField(name string, delta float64) (bool, error) {
	s.mu.Lock()
	defer s.unlock()
	if s.done {
		return false, nil
	}
	if s.screen == DateScreen {
		f, err := dateinput.ParseField(name)
		if err != nil {
			return false, err
		}
		s.date.SetFocus(f)
		return s.date.Rotate(f, delta), nil
	}
	f, err := timeinput.ParseField(name)
	if err != nil {
		return false, err
	}
	s.time.SetFocus(f)
	return s.time.Rotate(f, delta), nil
}

func (s *Session) Step(dir wheel.Direction) bool {
	s.mu.Lock()
	defer s.unlock()
	if s.done {
		return false
	}
	if s.screen == DateScreen {
		return s.date.Step(s.date.Focus(), dir)
	}
	return s.time.Step(s.time.Focus(), dir)
}

func (s *Session) StepField(name string, dir wheel.Direction) (bool, error) {
	s.mu.Lock()
	defer s.unlock()
	if s.done {
		return false, nil
	}
	if s.screen == DateScreen {
		f, err := dateinput.ParseField(name)
		if err != nil {
			return false, err
		}
		s.date.SetFocus(f)
		return s.date.Step(f, dir), nil
	}
	f, err := timeinput.ParseField(name)
	if err != nil {
		return false, err
	}
	s.time.SetFocus(f)
	return s.time.Step(f, dir), nil
}

// SetField puts a date wheel on v, clamped into its range, and focuses it.
func (s *Session) SetField(name string, v int) (bool, error) {
	s.mu.Lock()
	defer s.unlock()
	if s.done {
		return false, nil
	}
	if s.screen != DateScreen {
		return false, fmt.Errorf("set: the %s screen has no %s wheel", s.screen, name)
	}
	f, err := dateinput.ParseField(name)
	if err != nil {
		return false, err
	}
	s.date.SetFocus(f)
	return s.date.Set(f, v), nil
}

// TogglePeriod switches AM/PM on the time screen.
func (s *Session) TogglePeriod(p timeinput.Period) bool {
	s.mu.Lock()
	defer s.unlock()
	if s.done || s.screen != TimeScreen {
		return false
	}
	return s.time.TogglePeriod(p)
}

// Confirm commits the current screen immediately. On the date screen of a
// date-and-time picker it advances to the time screen, seeded with the date.
// It reports whether the session is finished.
func (s *Session) Confirm() bool {
	s.mu.Lock()
	defer s.unlock()
	if s.done {
		return true
	}
	if s.screen == DateScreen {
		t := s.date.Confirm()
		s.working = t
		if s.opts.Components.Has(HourAndMinute) {
			s.screen = TimeScreen
			s.time = s.newTimeEngine(t)
			s.emit(Advanced, &t)
			return false
		}
		s.finish(t)
		return true
	}
	s.finish(s.time.Confirm())
	return true
}

func (s *Session) finish(t time.Time) {
	s.working = t
	s.selection = &t
	s.done = true
	s.emit(Confirmed, &t)
}

// Back returns from the time screen to the date screen, dropping any
// unsettled time change. It reports whether there was a screen to go back to.
func (s *Session) Back() bool {
	s.mu.Lock()
	defer s.unlock()
	if s.done || s.screen != TimeScreen || !s.opts.Components.Has(Date) {
		return false
	}
	s.time.Cancel()
	s.time = nil
	s.screen = DateScreen
	w := s.working
	// Settled time edits survive the trip back to the date screen.
	s.date.SetTimeOfDay(w.Hour(), w.Minute())
	s.emit(Returned, &w)
	return true
}

// Cancel dismisses the picker. Pending commits are discarded and the
// selection is left as it was.
func (s *Session) Cancel() {
	s.mu.Lock()
	defer s.unlock()
	if s.done {
		return
	}
	s.stopEngines()
	s.done = true
	s.emit(Canceled, nil)
}

// Clear dismisses the picker and sets the selection to none.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.unlock()
	if s.done {
		return
	}
	s.stopEngines()
	s.selection = nil
	s.done = true
	s.emit(Cleared, nil)
}

func (s *Session) stopEngines() {
	if s.date != nil {
		s.date.Cancel()
	}
	if s.time != nil {
		s.time.Cancel()
	}
}

// Pending reports whether the active engine has an unsettled change.
func (s *Session) Pending() bool {
	s.mu.Lock()
	defer s.unlock()
	if s.screen == DateScreen {
		return s.date.Pending()
	}
	return s.time.Pending()
}

// ConfirmLabel is the caption of the confirm action on the current screen.
func (s *Session) ConfirmLabel() string {
	s.mu.Lock()
	defer s.unlock()
	if s.opts.ConfirmationTitle != "" {
		return s.opts.ConfirmationTitle
	}
	if s.screen == DateScreen && s.opts.Components.Has(HourAndMinute) {
		return "Continue"
	}
	return "Set"
}

// Title is the selection as a collapsed picker would show it.
func (s *Session) Title() string {
	s.mu.Lock()
	defer s.unlock()
	return ButtonTitle(s.selection, s.opts.Components, s.loc, s.twentyFourHour())
}

// WorkingTitle formats the value being edited, for screen headers.
func (s *Session) WorkingTitle() string {
	s.mu.Lock()
	defer s.unlock()
	w := s.working
	if s.screen == DateScreen {
		w = s.date.Candidate()
		return AbbreviatedDate(w, s.loc)
	}
	return ButtonTitle(&w, s.opts.Components, s.loc, s.twentyFourHour())
}

func (s *Session) twentyFourHour() bool {
	if s.opts.TwentyFourHour != nil {
		return *s.opts.TwentyFourHour
	}
	return s.loc.Uses24HourTime()
}
