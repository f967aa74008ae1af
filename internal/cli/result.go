package cli

import (
	"time"

	"crownpick/internal/dateinput"
	"crownpick/internal/picker"
	"crownpick/internal/timeinput"
)

type eventOut struct {
	Kind   string  `json:"kind"`
	Screen string  `json:"screen"`
	Value  *string `json:"value"`
}

// pickResult is the data payload of pick and simulate.
type pickResult struct {
	Session    string     `json:"session"`
	Outcome    string     `json:"outcome"`
	Components string     `json:"components"`
	Locale     string     `json:"locale"`
	Value      *string    `json:"value"`
	Title      string     `json:"title"`
	Events     []eventOut `json:"events"`

	// Set while the session is still open.
	Screen string              `json:"screen,omitempty"`
	Date   *dateinput.Snapshot `json:"date,omitempty"`
	Time   *timeinput.Snapshot `json:"time,omitempty"`
}

type eventLog struct {
	events []picker.Event
}

func (l *eventLog) add(e picker.Event) { l.events = append(l.events, e) }

func formatValue(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

func newResult(s *picker.Session, events []picker.Event) pickResult {
	res := pickResult{
		Session:    s.ID(),
		Outcome:    "open",
		Components: s.Components().String(),
		Locale:     s.Locale().ID(),
		Value:      formatValue(s.Selection()),
		Title:      s.Title(),
		Events:     make([]eventOut, 0, len(events)),
	}
	for _, e := range events {
		res.Events = append(res.Events, eventOut{
			Kind:   e.Kind.String(),
			Screen: e.Screen.String(),
			Value:  formatValue(e.Value),
		})
		switch e.Kind {
		case picker.Confirmed, picker.Canceled, picker.Cleared:
			res.Outcome = e.Kind.String()
		}
	}
	if !s.Done() {
		res.Screen = s.Screen().String()
		if s.Screen() == picker.DateScreen {
			snap := s.DateEngine().Snapshot()
			res.Date = &snap
		} else {
			snap := s.TimeEngine().Snapshot()
			res.Time = &snap
		}
	}
	return res
}
