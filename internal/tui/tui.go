// Package tui hosts a picker session in the terminal. Keys, the mouse wheel
// and an optional evdev crown drive the session; debounced commits are
// delivered on the bubbletea event loop.
package tui

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"crownpick/internal/crown"
	"crownpick/internal/picker"
)

// CrownSource is a running crown device. *crown.Reader satisfies it.
type CrownSource interface {
	Run(ctx context.Context, out chan<- crown.Input) error
}

type Options struct {
	Picker    picker.Options
	Selection *time.Time

	Crown    CrownSource
	Velocity *crown.Velocity

	Glyphs string
	Theme  string

	// Input and Output default to the terminal.
	Input  io.Reader
	Output io.Writer
	// Inline keeps the picker in the normal screen buffer.
	Inline bool
}

// sender forwards callbacks from timer goroutines to the running program.
type sender struct {
	mu sync.Mutex
	p  *tea.Program
}

func (s *sender) set(p *tea.Program) {
	s.mu.Lock()
	s.p = p
	s.mu.Unlock()
}

func (s *sender) send(msg tea.Msg) {
	s.mu.Lock()
	p := s.p
	s.mu.Unlock()
	if p != nil {
		p.Send(msg)
	}
}

// Run shows the picker until the user confirms, cancels or clears, and
// returns the finished session. If the program exits any other way the
// session is canceled.
func Run(ctx context.Context, opts Options) (*picker.Session, error) {
	applyColorProfilePreference()
	applyThemePreference(opts.Theme)
	applyGlyphPreference(opts.Glyphs)

	snd := &sender{}
	popts := opts.Picker
	popts.Schedule = func(f func()) { snd.send(runMsg(f)) }
	s, err := picker.New(opts.Selection, popts)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var crownCh chan crown.Input
	if opts.Crown != nil {
		crownCh = make(chan crown.Input, 16)
		go func() {
			if err := opts.Crown.Run(ctx, crownCh); err != nil && !errors.Is(err, context.Canceled) {
				snd.send(crownErrMsg{err: err})
			}
		}()
	}

	progOpts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithMouseCellMotion()}
	if !opts.Inline {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	if opts.Input != nil {
		progOpts = append(progOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		progOpts = append(progOpts, tea.WithOutput(opts.Output))
	}

	p := tea.NewProgram(newModel(s, opts.Velocity, crownCh), progOpts...)
	snd.set(p)
	_, err = p.Run()
	snd.set(nil)

	if !s.Done() {
		s.Cancel()
	}
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return s, err
	}
	return s, nil
}
