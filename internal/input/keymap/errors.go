package keymap

import (
	"errors"
	"fmt"
)

// Keymap errors.
var (
	// ErrEmptySequence indicates a chain with no keys.
	ErrEmptySequence = errors.New("keymap: empty key sequence")

	// ErrSealed indicates an attempt to modify a published tree.
	ErrSealed = errors.New("keymap: tree is sealed")

	// ErrNoTree indicates a mode without a loaded tree.
	ErrNoTree = errors.New("keymap: no tree loaded for mode")
)

// BindError describes a binding that could not be loaded.
type BindError struct {
	Binding Binding
	Err     error
}

func (e *BindError) Error() string {
	if e.Binding.Source != "" {
		return fmt.Sprintf("%s: %s %q: %v", e.Binding.Source, e.Binding.Mode, e.Binding.Keys, e.Err)
	}
	return fmt.Sprintf("%s %q: %v", e.Binding.Mode, e.Binding.Keys, e.Err)
}

func (e *BindError) Unwrap() error {
	return e.Err
}
