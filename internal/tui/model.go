package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"crownpick/internal/crown"
	"crownpick/internal/picker"
	"crownpick/internal/timeinput"
	"crownpick/internal/wheel"
)

// runMsg carries a debounced commit onto the event loop.
type runMsg func()

type crownMsg crown.Input

type crownErrMsg struct{ err error }

type model struct {
	session  *picker.Session
	keys     keyMap
	help     help.Model
	velocity *crown.Velocity
	crownCh  <-chan crown.Input

	width    int
	height   int
	showHelp bool
	status   string
}

func newModel(s *picker.Session, velocity *crown.Velocity, crownCh <-chan crown.Input) model {
	m := model{
		session:  s,
		keys:     newKeyMap(),
		help:     help.New(),
		velocity: velocity,
		crownCh:  crownCh,
	}
	m.syncKeys()
	return m
}

func (m model) Init() tea.Cmd { return waitCrown(m.crownCh) }

// waitCrown delivers the next crown input as a message. A closed channel
// ends the chain.
func waitCrown(ch <-chan crown.Input) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		in, ok := <-ch
		if !ok {
			return nil
		}
		return crownMsg(in)
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case runMsg:
		msg()
		return m, m.quitIfDone()

	case crownMsg:
		m.handleCrown(crown.Input(msg))
		if m.session.Done() {
			return m, tea.Quit
		}
		return m, waitCrown(m.crownCh)

	case crownErrMsg:
		m.status = "crown: " + msg.err.Error()
		return m, nil

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.turn(1)
		case tea.MouseButtonWheelDown:
			m.turn(-1)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		switch msg.String() {
		case "ctrl+c":
			m.session.Cancel()
			return m, tea.Quit
		case "?", "esc", "q":
			m.showHelp = false
		}
		return m, nil
	}

	s := m.session
	m.status = ""
	switch {
	case key.Matches(msg, m.keys.Up):
		s.Step(wheel.Increment)
	case key.Matches(msg, m.keys.Down):
		s.Step(wheel.Decrement)
	case key.Matches(msg, m.keys.PageUp):
		s.Rotate(5)
	case key.Matches(msg, m.keys.PageDn):
		s.Rotate(-5)
	case key.Matches(msg, m.keys.Next):
		s.CycleFocus(1)
	case key.Matches(msg, m.keys.Prev):
		s.CycleFocus(-1)
	case key.Matches(msg, m.keys.AM):
		s.TogglePeriod(timeinput.AM)
	case key.Matches(msg, m.keys.PM):
		s.TogglePeriod(timeinput.PM)
	case key.Matches(msg, m.keys.Confirm):
		s.Confirm()
	case key.Matches(msg, m.keys.Back):
		s.Back()
	case key.Matches(msg, m.keys.Clear):
		s.Clear()
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	case key.Matches(msg, m.keys.Cancel):
		s.Cancel()
	}
	m.syncKeys()
	return m, m.quitIfDone()
}

func (m *model) handleCrown(in crown.Input) {
	switch in.Kind {
	case crown.Turn:
		m.turn(in.Detents)
	case crown.Press:
		m.session.Confirm()
	case crown.Back:
		if !m.session.Back() {
			m.session.Cancel()
		}
	}
	m.syncKeys()
}

// turn feeds crown or scroll-wheel detents to the focused field, scaled by
// spin speed and the field's sensitivity.
func (m *model) turn(detents int) {
	delta := float64(detents)
	if m.velocity != nil {
		delta = m.velocity.Scale(detents)
	}
	delta *= float64(crown.FieldSensitivity(m.session.Focus()))
	m.session.Rotate(delta)
}

// syncKeys enables the bindings that apply to the current screen.
func (m *model) syncKeys() {
	s := m.session
	onTime := s.Screen() == picker.TimeScreen
	twelveHour := onTime && !s.TimeEngine().TwentyFourHour()
	m.keys.AM.SetEnabled(twelveHour)
	m.keys.PM.SetEnabled(twelveHour)
	m.keys.Back.SetEnabled(onTime && s.Components().Has(picker.Date))
	m.keys.Next.SetEnabled(len(s.Fields()) > 1)
	m.keys.Prev.SetEnabled(len(s.Fields()) > 1)
	m.keys.Confirm.SetHelp("enter", strings.ToLower(s.ConfirmLabel()))
}

func (m model) quitIfDone() tea.Cmd {
	if m.session.Done() {
		return tea.Quit
	}
	return nil
}
