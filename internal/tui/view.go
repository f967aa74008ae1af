package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"

	"crownpick/internal/dateinput"
	"crownpick/internal/docs"
	"crownpick/internal/picker"
	"crownpick/internal/timeinput"
)

const (
	wheelRadius = 2
	dialRadius  = 5
)

func (m model) View() string {
	if m.session.Done() {
		return ""
	}
	width := m.width
	if width <= 0 {
		width = 60
	}
	if m.showHelp {
		body, _ := docs.Get("keys")
		return renderMarkdown(body, width-2) + "\n\n" + styleMuted().Render(helpFooter())
	}

	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n\n")
	if m.session.Screen() == picker.DateScreen {
		b.WriteString(m.dateView())
	} else {
		b.WriteString(m.timeView())
	}
	b.WriteString("\n\n")
	b.WriteString(m.buttons())
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(colorError).Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(styleMuted().Render(strings.Repeat(glyphHRule(), min(width, 60))))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// helpFooter points at the guides the overlay does not show.
func helpFooter() string {
	var more []string
	for _, t := range docs.Index() {
		if t.Name != "keys" {
			more = append(more, fmt.Sprintf("%s (docs %s)", t.Title, t.Name))
		}
	}
	footer := "?/esc: close help"
	if len(more) > 0 {
		footer += "\nMore: " + strings.Join(more, ", ")
	}
	return footer
}

func (m model) header() string {
	s := m.session
	title := lipgloss.NewStyle().Bold(true).Render(s.WorkingTitle())
	if s.Components() != picker.DateAndTime {
		return title
	}
	steps := []picker.Screen{picker.DateScreen, picker.TimeScreen}
	parts := make([]string, len(steps))
	for i, sc := range steps {
		name := strings.ToUpper(sc.String()[:1]) + sc.String()[1:]
		if sc == s.Screen() {
			parts[i] = lipgloss.NewStyle().Bold(true).Render(name)
		} else {
			parts[i] = styleMuted().Render(name)
		}
	}
	return strings.Join(parts, " "+styleMuted().Render(glyphArrow())+" ") + "\n" + title
}

func (m model) dateView() string {
	e := m.session.DateEngine()
	var cols []string
	for i, f := range e.DisplayOrder() {
		if i > 0 {
			cols = append(cols, "  ")
		}
		cols = append(cols, wheelColumn(e, f))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

// wheelColumn renders one date wheel: the field name, then the selected
// value with its neighbours.
func wheelColumn(e *dateinput.Engine, f dateinput.Field) string {
	focused := f == e.Focus()
	rows := e.Wheel(f, wheelRadius)

	width := xansi.StringWidth(f.String()) + 2
	for _, r := range rows {
		if w := xansi.StringWidth(r.Text) + 4; w > width {
			width = w
		}
	}

	lines := make([]string, len(rows))
	for i, r := range rows {
		switch {
		case r.Selected && focused:
			lines[i] = styleFocused().Render(" " + r.Text + " ")
		case r.Selected:
			lines[i] = styleSelected().Render(" " + r.Text + " ")
		default:
			lines[i] = styleMuted().Render(r.Text)
		}
	}

	head := styleMuted().Render("  " + f.String())
	if focused {
		head = glyphCursor() + " " + f.String()
	}
	return normalizePane(head, width, 1) + "\n" +
		normalizePane(strings.Join(lines, "\n"), width, 2*wheelRadius+1)
}

func (m model) timeView() string {
	e := m.session.TimeEngine()
	snap := e.Snapshot()

	field := func(text string, focused bool) string {
		if focused {
			return styleFocused().Render(text)
		}
		return styleSelected().Render(text)
	}
	readout := field(snap.Hour, snap.Focus == timeinput.Hour.String()) + snap.Separator
	if snap.HourOnly {
		readout += styleMuted().Render(snap.Minute)
	} else {
		readout += field(snap.Minute, snap.Focus == timeinput.Minute.String())
	}

	right := []string{readout, ""}
	if snap.ShowPeriod {
		chip := func(sym, period string) string {
			if snap.Period == period {
				return styleSelected().Render(" " + sym + " ")
			}
			return styleMuted().Render(" " + sym + " ")
		}
		right = append(right, chip(snap.AMSymbol, timeinput.AM.String())+" "+chip(snap.PMSymbol, timeinput.PM.String()))
	}
	if snap.ShowIndicator {
		right = append(right, styleMuted().Render("24 hr"))
	}

	dial := strings.Join(renderDial(e.Dial(), dialRadius), "\n")
	return lipgloss.JoinHorizontal(lipgloss.Center, dial, "   ", strings.Join(right, "\n"))
}

func (m model) buttons() string {
	s := m.session
	btns := styleButton(true).Render(s.ConfirmLabel()) + " " + styleButton(false).Render("Cancel")
	return btns + "  " + styleMuted().Render("now: "+s.Title())
}
