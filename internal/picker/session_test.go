package picker

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crownpick/internal/dateinput"
	"crownpick/internal/debounce"
	"crownpick/internal/locale"
	"crownpick/internal/timeinput"
	"crownpick/internal/wheel"
)

var now = time.Date(2023, time.June, 15, 9, 41, 0, 0, time.UTC)

type recorder struct {
	events []Event
}

func (r *recorder) kinds() []EventKind {
	out := make([]EventKind, len(r.events))
	for i, e := range r.events {
		out[i] = e.Kind
	}
	return out
}

func newSession(t *testing.T, sel *time.Time, opts Options) (*Session, *debounce.ManualClock, *recorder) {
	t.Helper()
	clock := debounce.NewManualClock(now)
	rec := &recorder{}
	opts.Clock = clock
	opts.OnEvent = func(e Event) { rec.events = append(rec.events, e) }
	if opts.Locale == nil {
		opts.Locale = locale.MustLookup("en-US")
	}
	logger, _ := test.NewNullLogger()
	opts.Logger = logger
	s, err := New(sel, opts)
	require.NoError(t, err)
	return s, clock, rec
}

func TestNew_RejectsUnsupportedComponents(t *testing.T) {
	_, err := New(nil, Options{})
	require.ErrorIs(t, err, ErrUnsupportedComponents)
	_, err = New(nil, Options{Components: Components(8)})
	require.ErrorIs(t, err, ErrUnsupportedComponents)
}

func TestParseComponents(t *testing.T) {
	tests := []struct {
		in   string
		want Components
	}{
		{"", DateAndTime},
		{"date", Date},
		{"time", HourAndMinute},
		{"date+time", DateAndTime},
		{"time,date", DateAndTime},
		{"datetime", DateAndTime},
	}
	for _, tt := range tests {
		got, err := ParseComponents(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
	_, err := ParseComponents("week")
	assert.True(t, errors.Is(err, ErrUnsupportedComponents))
}

func TestDefaultSelection(t *testing.T) {
	assert.Equal(t, time.Date(2023, time.June, 15, 10, 0, 0, 0, time.UTC), DefaultSelection(HourAndMinute, now))
	assert.Equal(t, now, DefaultSelection(Date, now))
	assert.Equal(t, now, DefaultSelection(DateAndTime, now))
	assert.Equal(t, time.Date(2023, time.June, 16, 0, 0, 0, 0, time.UTC), NextHour(time.Date(2023, time.June, 15, 23, 59, 0, 0, time.UTC)))
}

func TestTimeOnly_AbsentSelectionSeedsNextHour(t *testing.T) {
	s, _, _ := newSession(t, nil, Options{Components: HourAndMinute})
	assert.Equal(t, TimeScreen, s.Screen())
	assert.Nil(t, s.Selection())
	assert.Equal(t, "10", s.TimeEngine().Snapshot().Hour)
	assert.Equal(t, "00", s.TimeEngine().Snapshot().Minute)
	assert.Equal(t, "None", s.Title())
	assert.Equal(t, "Set", s.ConfirmLabel())
}

func TestTimeOnly_SettledValuesPreviewLive(t *testing.T) {
	s, clock, rec := newSession(t, nil, Options{Components: HourAndMinute})

	s.Step(wheel.Increment)
	clock.Advance(50 * time.Millisecond)
	s.Step(wheel.Increment)
	assert.Nil(t, s.Selection(), "nothing is written before the dial settles")

	clock.Advance(timeinput.DefaultDebounce)
	require.NotNil(t, s.Selection())
	// 10 AM + 2 lands on 12 AM: rotation never flips the period.
	assert.Equal(t, 0, s.Selection().Hour())
	assert.Equal(t, []EventKind{Committed}, rec.kinds())
}

func TestCancel_DiscardsPendingCommit(t *testing.T) {
	sel := time.Date(2023, time.June, 15, 22, 5, 0, 0, time.UTC)
	s, clock, rec := newSession(t, &sel, Options{Components: HourAndMinute})

	s.Rotate(5)
	s.Cancel()
	clock.Advance(time.Second)

	assert.Equal(t, sel, *s.Selection())
	assert.Equal(t, []EventKind{Canceled}, rec.kinds())
	assert.True(t, s.Done())
	assert.False(t, s.Rotate(1))
}

func TestDateOnly_ConfirmWritesSelection(t *testing.T) {
	sel := time.Date(2023, time.January, 30, 8, 15, 0, 0, time.UTC)
	s, clock, rec := newSession(t, &sel, Options{Components: Date})

	assert.Equal(t, "month", s.Focus())
	s.Step(wheel.Increment)
	clock.Advance(timeinput.DefaultDebounce)
	assert.Equal(t, sel, *s.Selection(), "date commits only update the working value")
	assert.Equal(t, time.Date(2023, time.February, 28, 8, 15, 0, 0, time.UTC), s.Working())

	assert.True(t, s.Confirm())
	assert.Equal(t, time.Date(2023, time.February, 28, 8, 15, 0, 0, time.UTC), *s.Selection())
	assert.Equal(t, []EventKind{Committed, Confirmed}, rec.kinds())
	assert.Equal(t, "Feb 28, 2023", s.Title())
}

func TestDateAndTime_Flow(t *testing.T) {
	s, _, rec := newSession(t, nil, Options{Components: DateAndTime})
	assert.Equal(t, DateScreen, s.Screen())
	assert.Equal(t, "Continue", s.ConfirmLabel())
	assert.Equal(t, []string{"month", "day", "year"}, s.Fields())

	_, err := s.StepField("day", wheel.Increment)
	require.NoError(t, err)
	assert.False(t, s.Confirm(), "date screen advances")
	assert.Equal(t, TimeScreen, s.Screen())
	assert.Equal(t, "Set", s.ConfirmLabel())
	assert.Nil(t, s.Selection())

	// The time screen starts from the picked date.
	assert.Equal(t, 16, s.TimeEngine().Candidate().Day())

	assert.True(t, s.TogglePeriod(timeinput.PM))
	assert.True(t, s.Confirm())
	got := s.Selection()
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2023, time.June, 16, 21, 41, 0, 0, time.UTC), *got)
	assert.Equal(t, []EventKind{Committed, Advanced, Committed, Confirmed}, rec.kinds())
	assert.Equal(t, "6/16/2023, 9:41 PM", s.Title())
}

func TestBack_ReturnsToDateScreen(t *testing.T) {
	s, clock, rec := newSession(t, nil, Options{Components: DateAndTime})
	require.False(t, s.Back())

	s.Confirm()
	s.Rotate(3)
	require.True(t, s.Back())
	clock.Advance(time.Second)

	assert.Equal(t, DateScreen, s.Screen())
	assert.Nil(t, s.TimeEngine())
	assert.Equal(t, []EventKind{Advanced, Returned}, rec.kinds())
	assert.False(t, s.TogglePeriod(timeinput.AM))
}

func TestBack_KeepsSettledTimeOfDay(t *testing.T) {
	sel := now
	s, clock, rec := newSession(t, &sel, Options{Components: DateAndTime})

	require.False(t, s.Confirm())
	s.Rotate(3) // 9 AM to 12 AM
	clock.Advance(time.Second)
	require.Equal(t, time.Date(2023, time.June, 15, 0, 41, 0, 0, time.UTC), s.Working())

	require.True(t, s.Back())
	assert.Equal(t, time.Date(2023, time.June, 15, 0, 41, 0, 0, time.UTC), s.DateEngine().Candidate())

	require.False(t, s.Confirm())
	assert.Equal(t, time.Date(2023, time.June, 15, 0, 41, 0, 0, time.UTC), s.TimeEngine().Candidate())
	assert.Equal(t, "12", s.TimeEngine().Snapshot().Hour)
	assert.Equal(t, []EventKind{Advanced, Committed, Returned, Advanced}, rec.kinds())
}

func TestBack_DropsUnsettledTimeOfDay(t *testing.T) {
	sel := now
	s, _, _ := newSession(t, &sel, Options{Components: DateAndTime})

	s.Confirm()
	s.Rotate(3)
	require.True(t, s.Back())
	s.Confirm()
	assert.Equal(t, now, s.TimeEngine().Candidate())
}

func TestOnEvent_MayCallBackIntoSession(t *testing.T) {
	clock := debounce.NewManualClock(now)
	logger, _ := test.NewNullLogger()
	var seen []time.Time
	var s *Session
	s, err := New(nil, Options{
		Components: HourAndMinute,
		Locale:     locale.MustLookup("en-US"),
		Clock:      clock,
		Logger:     logger,
		OnEvent: func(e Event) {
			seen = append(seen, s.Working())
			_ = s.Title()
		},
	})
	require.NoError(t, err)

	s.Step(wheel.Increment)
	clock.Advance(time.Second)
	s.Confirm()
	assert.Equal(t, []time.Time{
		time.Date(2023, time.June, 15, 11, 0, 0, 0, time.UTC),
		time.Date(2023, time.June, 15, 11, 0, 0, 0, time.UTC),
	}, seen)
}

// Run with -race: commits land on the timer goroutine while the caller keeps
// reading and turning.
func TestRealClock_CommitsAreSerialized(t *testing.T) {
	logger, _ := test.NewNullLogger()
	var mu sync.Mutex
	var commits int
	s, err := New(nil, Options{
		Components: HourAndMinute,
		Debounce:   time.Millisecond,
		Logger:     logger,
		OnEvent: func(e Event) {
			mu.Lock()
			commits++
			mu.Unlock()
		},
	})
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		s.Rotate(1)
		_ = s.Working()
		_ = s.Selection()
		_ = s.Title()
		time.Sleep(2 * time.Millisecond)
	}
	require.Eventually(t, func() bool {
		return s.Selection() != nil && !s.Pending()
	}, 2*time.Second, 5*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Positive(t, commits)
}

func TestClear(t *testing.T) {
	sel := now
	s, _, rec := newSession(t, &sel, Options{Components: Date})
	s.Clear()
	assert.Nil(t, s.Selection())
	assert.Equal(t, []EventKind{Cleared}, rec.kinds())
	assert.Nil(t, rec.events[0].Value)
}

func TestConfirmationTitleOverride(t *testing.T) {
	s, _, _ := newSession(t, nil, Options{Components: DateAndTime, ConfirmationTitle: "Save"})
	assert.Equal(t, "Save", s.ConfirmLabel())
	s.Confirm()
	assert.Equal(t, "Save", s.ConfirmLabel())
}

func TestCycleFocus(t *testing.T) {
	s, _, _ := newSession(t, nil, Options{Components: Date, Locale: locale.MustLookup("de")})
	assert.Equal(t, "day", s.Focus())
	s.CycleFocus(1)
	assert.Equal(t, "month", s.Focus())
	s.CycleFocus(1)
	assert.Equal(t, "year", s.Focus())
	s.CycleFocus(1)
	assert.Equal(t, "day", s.Focus())
	s.CycleFocus(-1)
	assert.Equal(t, "year", s.Focus())

	assert.Error(t, s.SetFocus("hour"))
}

func TestBoundsReachDateEngine(t *testing.T) {
	min := time.Date(2023, time.June, 15, 0, 0, 0, 0, time.UTC)
	max := time.Date(2023, time.June, 20, 0, 0, 0, 0, time.UTC)
	s, _, _ := newSession(t, nil, Options{Components: Date, Bounds: dateinput.Closed(min, max)})
	snap := s.DateEngine().Snapshot()
	assert.Equal(t, [2]int{2023, 2023}, snap.YearRange)
	assert.Equal(t, [2]int{6, 6}, snap.MonthRange)
	assert.Equal(t, [2]int{15, 20}, snap.DayRange)
}

func TestHourOnlyFields(t *testing.T) {
	s, _, _ := newSession(t, nil, Options{Components: HourAndMinute, HourOnly: true})
	assert.Equal(t, []string{"hour"}, s.Fields())
	ok, err := s.RotateField("minute", 3)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTitles(t *testing.T) {
	ts := time.Date(2023, time.June, 5, 14, 7, 0, 0, time.UTC)
	us := locale.MustLookup("en-US")
	fi := locale.MustLookup("fi")

	assert.Equal(t, "2:07 PM", ShortTime(ts, us, false))
	assert.Equal(t, "14.07", ShortTime(ts, fi, true))
	assert.Equal(t, "12:00 AM", ShortTime(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), us, false))
	assert.Equal(t, "6/5/2023", NumericDate(ts, us))
	assert.Equal(t, "5/6/2023", NumericDate(ts, fi))
	assert.Equal(t, "Jun 5, 2023", AbbreviatedDate(ts, us))
	assert.Equal(t, "5 kesä 2023", AbbreviatedDate(ts, fi))
	assert.Equal(t, "5 kesä 2023", ButtonTitle(&ts, Date, fi, true))
	assert.Equal(t, "14.07", ButtonTitle(&ts, HourAndMinute, fi, true))
}
