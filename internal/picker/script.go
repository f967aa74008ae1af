package picker

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
	"time"

	"crownpick/internal/timeinput"
	"crownpick/internal/wheel"
)

// Action is one input event of a scripted session.
//
// Script syntax, one action per whitespace-separated token, '#' to end of line
// is a comment:
//
//	rotate:hour:-22   rotate:2.5      step:minute:+   step:-
//	focus:day         focus:next      toggle:pm       wait:200ms
//	confirm           back            cancel          clear
//	set:day:3
type Action struct {
	Op     string
	Field  string
	Delta  float64
	Value  int
	Dir    wheel.Direction
	Period timeinput.Period
	Wait   time.Duration
}

func (a Action) String() string {
	switch a.Op {
	case "rotate":
		if a.Field == "" {
			return fmt.Sprintf("rotate:%g", a.Delta)
		}
		return fmt.Sprintf("rotate:%s:%g", a.Field, a.Delta)
	case "step":
		sign := "+"
		if a.Dir == wheel.Decrement {
			sign = "-"
		}
		if a.Field == "" {
			return "step:" + sign
		}
		return fmt.Sprintf("step:%s:%s", a.Field, sign)
	case "focus":
		return "focus:" + a.Field
	case "set":
		return fmt.Sprintf("set:%s:%d", a.Field, a.Value)
	case "toggle":
		return "toggle:" + a.Period.String()
	case "wait":
		return "wait:" + a.Wait.String()
	default:
		return a.Op
	}
}

type scriptError struct {
	token string
	msg   string
}

func (e scriptError) Error() string {
	return fmt.Sprintf("bad script action %q: %s", e.token, e.msg)
}

// ParseScript parses a script into actions.
func ParseScript(src string) ([]Action, error) {
	var out []Action
	sc := bufio.NewScanner(strings.NewReader(src))
	for sc.Scan() {
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		for _, tok := range strings.FieldsFunc(line, func(r rune) bool { return r == ' ' || r == '\t' || r == ',' || r == ';' }) {
			a, err := parseAction(tok)
			if err != nil {
				return nil, err
			}
			out = append(out, a)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func parseAction(tok string) (Action, error) {
	parts := strings.Split(strings.ToLower(tok), ":")
	op := parts[0]
	args := parts[1:]
	bad := func(msg string) (Action, error) { return Action{}, scriptError{token: tok, msg: msg} }

	switch op {
	case "confirm", "done", "back", "cancel", "clear":
		if len(args) != 0 {
			return bad("takes no arguments")
		}
		if op == "done" {
			op = "confirm"
		}
		return Action{Op: op}, nil
	case "rotate":
		a := Action{Op: op}
		switch len(args) {
		case 1:
		case 2:
			a.Field = args[0]
		default:
			return bad("want rotate:[field:]delta")
		}
		d, err := strconv.ParseFloat(args[len(args)-1], 64)
		if err != nil {
			return bad("delta is not a number")
		}
		a.Delta = d
		return a, nil
	case "step":
		a := Action{Op: op}
		switch len(args) {
		case 1:
		case 2:
			a.Field = args[0]
		default:
			return bad("want step:[field:]+|-")
		}
		switch args[len(args)-1] {
		case "+", "up", "inc":
			a.Dir = wheel.Increment
		case "-", "down", "dec":
			a.Dir = wheel.Decrement
		default:
			return bad("direction must be + or -")
		}
		return a, nil
	case "set":
		if len(args) != 2 || args[0] == "" {
			return bad("want set:field:value")
		}
		v, err := strconv.Atoi(args[1])
		if err != nil {
			return bad("value is not a whole number")
		}
		return Action{Op: op, Field: args[0], Value: v}, nil
	case "focus":
		if len(args) != 1 || args[0] == "" {
			return bad("want focus:field")
		}
		return Action{Op: op, Field: args[0]}, nil
	case "toggle":
		if len(args) != 1 {
			return bad("want toggle:am|pm")
		}
		p, err := timeinput.ParsePeriod(args[0])
		if err != nil {
			return bad(err.Error())
		}
		return Action{Op: op, Period: p}, nil
	case "wait":
		if len(args) != 1 {
			return bad("want wait:duration")
		}
		d, err := time.ParseDuration(args[0])
		if err != nil || d < 0 {
			return bad("bad duration")
		}
		return Action{Op: op, Wait: d}, nil
	}
	return bad("unknown action")
}

// Run applies actions to s in order. Waits are handed to advance, which moves
// the session's clock; a nil advance sleeps. Actions after the session has
// finished are an error.
func Run(s *Session, actions []Action, advance func(time.Duration)) error {
	if advance == nil {
		advance = time.Sleep
	}
	for i, a := range actions {
		if s.Done() && a.Op != "wait" {
			return fmt.Errorf("action %d (%s): picker already dismissed", i+1, a)
		}
		if err := s.apply(a, advance); err != nil {
			return fmt.Errorf("action %d (%s): %w", i+1, a, err)
		}
	}
	return nil
}

func (s *Session) apply(a Action, advance func(time.Duration)) error {
	switch a.Op {
	case "rotate":
		if a.Field == "" {
			s.Rotate(a.Delta)
			return nil
		}
		_, err := s.RotateField(a.Field, a.Delta)
		return err
	case "step":
		if a.Field == "" {
			s.Step(a.Dir)
			return nil
		}
		_, err := s.StepField(a.Field, a.Dir)
		return err
	case "set":
		_, err := s.SetField(a.Field, a.Value)
		return err
	case "focus":
		switch a.Field {
		case "next":
			s.CycleFocus(1)
			return nil
		case "prev", "previous":
			s.CycleFocus(-1)
			return nil
		}
		return s.SetFocus(a.Field)
	case "toggle":
		if s.Screen() != TimeScreen {
			return fmt.Errorf("no AM/PM on the %s screen", s.Screen())
		}
		s.TogglePeriod(a.Period)
		return nil
	case "wait":
		advance(a.Wait)
		return nil
	case "confirm":
		s.Confirm()
		return nil
	case "back":
		if !s.Back() {
			return fmt.Errorf("nothing to go back to from the %s screen", s.Screen())
		}
		return nil
	case "cancel":
		s.Cancel()
		return nil
	case "clear":
		s.Clear()
		return nil
	}
	return fmt.Errorf("unknown action %q", a.Op)
}
