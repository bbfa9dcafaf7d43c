// Package mode defines the editor modes that select which keymap is active.
//
// The set of modes is closed: normal, insert, visual and command. Each mode
// carries the cursor style the terminal shows while it is active.
package mode
