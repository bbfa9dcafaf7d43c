package command

import (
	"fmt"

	"github.com/kk-editor/kk/internal/input/mode"
)

// Env is the editor surface commands act on.
type Env interface {
	// Mode returns the active mode.
	Mode() mode.Mode

	// SetMode switches the active mode.
	SetMode(m mode.Mode) error

	// Quit asks the editor to exit after the current key is handled.
	Quit()

	// Notify shows a message on the status line.
	Notify(msg string)

	// Bindings describes the bindings of a mode, one per line.
	Bindings(m mode.Mode) []string
}

// Func is the implementation of a command.
type Func func(env Env) error

// Command is a named, documented editor action.
// Commands are immutable once created.
type Command struct {
	// Name is the unique identifier used in keymap configuration.
	Name string

	// Doc is a one-line human-readable description.
	Doc string

	fn Func
}

// New creates a command.
func New(name, doc string, fn Func) *Command {
	return &Command{Name: name, Doc: doc, fn: fn}
}

// Exec runs the command. A panic inside the command is reported as ErrPanic.
func (c *Command) Exec(env Env) (err error) {
	if c.fn == nil {
		return fmt.Errorf("%w: %s has no function", ErrInvalid, c.Name)
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrPanic, r)
		}
	}()
	return c.fn(env)
}

// String returns the command name.
func (c *Command) String() string {
	return c.Name
}

// Run executes commands in order. Execution stops at the first failure,
// which is returned as *ExecError; commands that already ran are not undone.
func Run(env Env, cmds []*Command) error {
	for i, c := range cmds {
		if err := c.Exec(env); err != nil {
			return &ExecError{Command: c, Index: i, Err: err}
		}
	}
	return nil
}

// Names returns the names of cmds in order.
func Names(cmds []*Command) []string {
	names := make([]string, len(cmds))
	for i, c := range cmds {
		names[i] = c.Name
	}
	return names
}
