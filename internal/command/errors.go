package command

import (
	"errors"
	"fmt"
)

// Registry errors.
var (
	// ErrNotFound indicates no command is registered under a name.
	ErrNotFound = errors.New("command: not found")

	// ErrDuplicate indicates a command name is already registered.
	ErrDuplicate = errors.New("command: duplicate name")

	// ErrFrozen indicates the registry no longer accepts registrations.
	ErrFrozen = errors.New("command: registry is frozen")

	// ErrInvalid indicates a command without a name or function.
	ErrInvalid = errors.New("command: invalid command")

	// ErrPanic indicates the command panicked.
	ErrPanic = errors.New("command: panic")

	// ErrUnboundKey is the failure reported by the error command.
	ErrUnboundKey = errors.New("key is not bound")
)

// ExecError reports which command of a dispatch result failed.
type ExecError struct {
	// Command is the command that failed.
	Command *Command

	// Index is the position of the command in the executed list.
	Index int

	// Err is the failure reason returned by the command.
	Err error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("%s: %v", e.Command.Name, e.Err)
}

func (e *ExecError) Unwrap() error {
	return e.Err
}
