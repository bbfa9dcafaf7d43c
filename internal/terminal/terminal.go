// Package terminal drives the terminal through tcell: raw mode, key events
// translated to key.Input, the cursor shape and the status line.
package terminal

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/kk-editor/kk/internal/input/key"
	"github.com/kk-editor/kk/internal/input/mode"
)

// EventType identifies the kind of an Event.
type EventType uint8

const (
	// EventNone is an event the editor does not handle.
	EventNone EventType = iota

	// EventKey is a key press.
	EventKey

	// EventResize reports a new terminal size.
	EventResize

	// EventNotice carries a message posted from another goroutine.
	EventNotice

	// EventClosed reports that the screen was finalized.
	EventClosed
)

// Event is a terminal event.
type Event struct {
	Type EventType

	// Key is set for EventKey.
	Key key.Input

	// Width and Height are set for EventResize.
	Width, Height int

	// Message is set for EventNotice.
	Message string
}

// Terminal wraps a tcell screen.
type Terminal struct {
	screen tcell.Screen
	mu     sync.Mutex
}

// New creates a terminal on the controlling tty.
func New() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// NewWithScreen wraps an existing screen, such as a simulation screen.
func NewWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

// Init enters raw mode and takes over the display.
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.EnablePaste()
	t.screen.Clear()
	return nil
}

// Shutdown restores the terminal. Pending PollEvent calls return
// EventClosed.
func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Fini()
}

// Size returns the terminal size in cells.
func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Size()
}

// PollEvent blocks until the next event.
func (t *Terminal) PollEvent() Event {
	return convertEvent(t.screen.PollEvent())
}

// PostKey queues a key press as if it had been typed.
func (t *Terminal) PostKey(in key.Input) error {
	k, r, m := toTcell(in)
	return t.screen.PostEvent(tcell.NewEventKey(k, r, m))
}

// Notify wakes the event loop with a message. It is safe to call from any
// goroutine.
func (t *Terminal) Notify(msg string) error {
	return t.screen.PostEvent(tcell.NewEventInterrupt(msg))
}

// SetCursorStyle sets the cursor shape.
func (t *Terminal) SetCursorStyle(style mode.CursorStyle) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var cs tcell.CursorStyle
	switch style {
	case mode.CursorBar:
		cs = tcell.CursorStyleSteadyBar
	case mode.CursorUnderline:
		cs = tcell.CursorStyleSteadyUnderline
	default:
		cs = tcell.CursorStyleSteadyBlock
	}
	t.screen.SetCursorStyle(cs)
}

// Beep rings the terminal bell.
func (t *Terminal) Beep() {
	t.mu.Lock()
	defer t.mu.Unlock()

	_ = t.screen.Beep() // best-effort; terminal may not support beep
}

// Sync redraws the whole screen after a resize.
func (t *Terminal) Sync() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Sync()
}

// convertEvent converts tcell events to our Event type.
func convertEvent(ev tcell.Event) Event {
	switch e := ev.(type) {
	case nil:
		return Event{Type: EventClosed}

	case *tcell.EventKey:
		in, ok := convertKey(e.Key(), e.Rune(), e.Modifiers())
		if !ok {
			return Event{Type: EventNone}
		}
		return Event{Type: EventKey, Key: in}

	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Type: EventResize, Width: w, Height: h}

	case *tcell.EventInterrupt:
		msg, _ := e.Data().(string)
		return Event{Type: EventNotice, Message: msg}

	default:
		return Event{Type: EventNone}
	}
}
