package mode

import (
	"errors"
	"fmt"
)

// ErrUnknown is returned when parsing an unrecognized mode name.
var ErrUnknown = errors.New("unknown mode")

// Mode is an editor-wide state selecting the active keymap tree.
type Mode uint8

const (
	// Normal is navigation and commands.
	Normal Mode = iota

	// Insert is text entry.
	Insert

	// Visual is selection.
	Visual

	// Command is the command line.
	Command
)

var names = [...]string{
	Normal:  "normal",
	Insert:  "insert",
	Visual:  "visual",
	Command: "command",
}

// All returns every mode in declaration order.
func All() []Mode {
	return []Mode{Normal, Insert, Visual, Command}
}

// Parse returns the mode with the given name.
func Parse(name string) (Mode, error) {
	for m, n := range names {
		if n == name {
			return Mode(m), nil
		}
	}
	return Normal, fmt.Errorf("%w %q", ErrUnknown, name)
}

// String returns the mode name used in configuration.
func (m Mode) String() string {
	if int(m) < len(names) {
		return names[m]
	}
	return fmt.Sprintf("Mode(%d)", m)
}

// DisplayName returns the status line label.
func (m Mode) DisplayName() string {
	switch m {
	case Normal:
		return "NOR"
	case Insert:
		return "INS"
	case Visual:
		return "SEL"
	case Command:
		return "CMD"
	default:
		return "???"
	}
}

// CursorStyle returns the cursor style shown while m is active.
func (m Mode) CursorStyle() CursorStyle {
	switch m {
	case Insert, Command:
		return CursorBar
	case Visual:
		return CursorUnderline
	default:
		return CursorBlock
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if int(m) >= len(names) {
		return nil, fmt.Errorf("%w %d", ErrUnknown, m)
	}
	return []byte(names[m]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// CursorStyle defines the visual appearance of the cursor.
type CursorStyle uint8

const (
	// CursorBlock is a full-cell block cursor (normal mode).
	CursorBlock CursorStyle = iota

	// CursorBar is a thin vertical bar cursor (insert mode).
	CursorBar

	// CursorUnderline is an underline cursor.
	CursorUnderline
)

// String returns a human-readable cursor style name.
func (c CursorStyle) String() string {
	switch c {
	case CursorBlock:
		return "block"
	case CursorBar:
		return "bar"
	case CursorUnderline:
		return "underline"
	default:
		return "unknown"
	}
}
