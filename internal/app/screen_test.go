package app

import (
	"sync"

	"github.com/kk-editor/kk/internal/input/key"
	"github.com/kk-editor/kk/internal/input/mode"
	"github.com/kk-editor/kk/internal/terminal"
)

// fakeScreen is a Screen fed from a queue of events.
type fakeScreen struct {
	events chan terminal.Event
	closed chan struct{}
	once   sync.Once

	initErr error

	mu       sync.Mutex
	statuses []terminal.Status
	cursors  []mode.CursorStyle
	beeps    int
	syncs    int
	inited   bool
	shutdown int
}

func newFakeScreen(keys ...string) *fakeScreen {
	s := &fakeScreen{
		events: make(chan terminal.Event, 64),
		closed: make(chan struct{}),
	}
	for _, k := range keys {
		s.events <- terminal.Event{Type: terminal.EventKey, Key: key.MustParse(k)}
	}
	return s
}

func (s *fakeScreen) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inited = true
	return s.initErr
}

func (s *fakeScreen) Shutdown() {
	s.mu.Lock()
	s.shutdown++
	s.mu.Unlock()
	s.once.Do(func() { close(s.closed) })
}

func (s *fakeScreen) PollEvent() terminal.Event {
	select {
	case ev := <-s.events:
		return ev
	case <-s.closed:
		return terminal.Event{Type: terminal.EventClosed}
	}
}

func (s *fakeScreen) Notify(msg string) error {
	s.events <- terminal.Event{Type: terminal.EventNotice, Message: msg}
	return nil
}

func (s *fakeScreen) SetCursorStyle(style mode.CursorStyle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursors = append(s.cursors, style)
}

func (s *fakeScreen) DrawStatus(st terminal.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statuses = append(s.statuses, st)
}

func (s *fakeScreen) Beep() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.beeps++
}

func (s *fakeScreen) Sync() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.syncs++
}

func (s *fakeScreen) lastStatus() terminal.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.statuses) == 0 {
		return terminal.Status{}
	}
	return s.statuses[len(s.statuses)-1]
}

var _ Screen = (*fakeScreen)(nil)
