// Package command provides the catalogue of named editor commands.
//
// Commands are zero-argument actions identified by a unique name. Keymaps
// refer to commands by pointer, so a single *Command is shared by every
// binding that names it. The process-wide catalogue returned by Default is
// populated once at startup and then frozen.
//
// A command acts on the editor through the narrow Env interface and reports
// failure by returning an error. Run executes an ordered list of commands
// and stops at the first failure.
package command
