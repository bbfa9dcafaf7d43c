package app

import (
	"io"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/kk-editor/kk/internal/command"
	"github.com/kk-editor/kk/internal/config"
	"github.com/kk-editor/kk/internal/config/watcher"
	"github.com/kk-editor/kk/internal/input/keymap"
	"github.com/kk-editor/kk/internal/input/mode"
	"github.com/kk-editor/kk/internal/plugin/lua"
	"github.com/kk-editor/kk/internal/terminal"
)

// Screen is the terminal surface the editor loop drives.
type Screen interface {
	Init() error
	Shutdown()
	PollEvent() terminal.Event
	Notify(msg string) error
	SetCursorStyle(style mode.CursorStyle)
	DrawStatus(st terminal.Status)
	Beep()
	Sync()
}

// Options configures the application.
type Options struct {
	// ConfigPath is the configuration file. config.DefaultPath is used if
	// empty.
	ConfigPath string

	// LogLevel overrides the configured log level.
	LogLevel string

	// LogOutput overrides the configured log file.
	LogOutput io.Writer

	// NoWatch disables live reload of the configuration file.
	NoWatch bool

	// Loader reads the configuration. config.NewLoader is used if nil.
	Loader *config.Loader
}

// Editor owns the keymap, the command registry and the terminal, and
// implements command.Env for the commands it runs.
type Editor struct {
	opts Options

	cfg       *config.Config
	log       zerolog.Logger
	logCloser io.Closer

	registry *command.Registry
	scripts  *lua.Host
	keymap   *keymap.Keymap
	report   *keymap.Report

	screen  Screen
	watcher *watcher.Watcher

	running atomic.Bool
	quit    bool
	status  terminal.Status
}

// New loads the configuration, builds the command registry and the keymap.
// It fails if the configuration cannot be read or a mode ends up without
// bindings; individual bad bindings are only reported.
func New(opts Options) (*Editor, error) {
	e := &Editor{opts: opts}
	if err := newBootstrapper(e).bootstrap(); err != nil {
		return nil, err
	}
	return e, nil
}

// Config returns the loaded configuration.
func (e *Editor) Config() *config.Config {
	return e.cfg
}

// Keymap returns the editor's keymap.
func (e *Editor) Keymap() *keymap.Keymap {
	return e.keymap
}

// Registry returns the command registry.
func (e *Editor) Registry() *command.Registry {
	return e.registry
}

// Report returns the problems found while loading bindings.
func (e *Editor) Report() *keymap.Report {
	return e.report
}

// Logger returns the root logger.
func (e *Editor) Logger() zerolog.Logger {
	return e.log
}

// Close releases the script host and the log file.
func (e *Editor) Close() error {
	if e.scripts != nil {
		_ = e.scripts.Close()
	}
	if e.logCloser != nil {
		return e.logCloser.Close()
	}
	return nil
}

// Mode implements command.Env.
func (e *Editor) Mode() mode.Mode {
	return e.keymap.Mode()
}

// SetMode implements command.Env.
func (e *Editor) SetMode(m mode.Mode) error {
	if err := e.keymap.SetMode(m); err != nil {
		return err
	}
	if e.screen != nil {
		e.screen.SetCursorStyle(m.CursorStyle())
	}
	e.log.Debug().Stringer("mode", m).Msg("mode changed")
	return nil
}

// Quit implements command.Env.
func (e *Editor) Quit() {
	e.quit = true
}

// Notify implements command.Env.
func (e *Editor) Notify(msg string) {
	e.status.Message = msg
	e.status.Error = false
}

// Bindings implements command.Env.
func (e *Editor) Bindings(m mode.Mode) []string {
	return e.keymap.Bindings(m)
}

var (
	_ command.Env = (*Editor)(nil)
	_ Screen      = (*terminal.Terminal)(nil)
)
