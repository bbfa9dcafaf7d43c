package app

import (
	"context"
	"errors"
	"sync"

	"github.com/kk-editor/kk/internal/command"
	"github.com/kk-editor/kk/internal/input/key"
	"github.com/kk-editor/kk/internal/terminal"
)

// Run drives the editor until a command quits, the screen closes or ctx is
// cancelled. Quitting returns ErrQuit. Only one Run may be active at a time.
func (e *Editor) Run(ctx context.Context, screen Screen) error {
	if !e.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer e.running.Store(false)

	if err := screen.Init(); err != nil {
		return &InitError{Component: "terminal", Err: err}
	}
	var once sync.Once
	shutdown := func() { once.Do(screen.Shutdown) }
	defer shutdown()

	e.screen = screen
	e.quit = false
	defer func() { e.screen = nil }()

	stopWatch := e.startWatcher(ctx)
	defer stopWatch()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			shutdown()
		case <-done:
		}
	}()

	screen.SetCursorStyle(e.Mode().CursorStyle())
	e.render()
	e.log.Info().Stringer("mode", e.Mode()).Msg("event loop started")

	for {
		ev := screen.PollEvent()
		switch ev.Type {
		case terminal.EventClosed:
			e.log.Info().Msg("screen closed")
			return ctx.Err()
		case terminal.EventKey:
			if err := e.HandleKey(ev.Key); errors.Is(err, ErrQuit) {
				e.log.Info().Msg("quit")
				return ErrQuit
			}
		case terminal.EventResize:
			screen.Sync()
		case terminal.EventNotice:
			e.status.Message = ev.Message
			e.status.Error = false
		}
		e.render()
	}
}

// HandleKey feeds one key press to the keymap and runs the commands it
// resolves to. When a command fails the pending chord is dropped, the error
// is shown and the terminal beeps; the error is returned. A command that
// quits makes HandleKey return ErrQuit.
func (e *Editor) HandleKey(in key.Input) error {
	cmds := e.keymap.Dispatch(in)
	e.log.Debug().
		Stringer("key", in).
		Strs("commands", command.Names(cmds)).
		Bool("pending", e.keymap.IsPending()).
		Msg("key")
	if len(cmds) == 0 {
		return nil
	}

	if err := command.Run(e, cmds); err != nil {
		e.keymap.Reset()
		e.status.Message = err.Error()
		e.status.Error = true
		e.log.Warn().Err(err).Stringer("key", in).Msg("command failed")
		if e.screen != nil {
			e.screen.Beep()
		}
		return err
	}
	if e.quit {
		return ErrQuit
	}
	return nil
}

// Status returns what the status line currently shows.
func (e *Editor) Status() terminal.Status {
	st := e.status
	st.Mode = e.Mode()
	st.Pending = e.keymap.Pending().String()
	return st
}

func (e *Editor) render() {
	if e.screen == nil {
		return
	}
	e.screen.DrawStatus(e.Status())
}
