package command

import (
	"strings"

	"github.com/kk-editor/kk/internal/input/mode"
)

// Builtins returns fresh instances of the builtin commands.
func Builtins() []*Command {
	return []*Command{
		New("nop", "Does nothing", func(Env) error { return nil }),
		New("escape", "Return to normal mode", setMode(mode.Normal)),
		New("error", "Report an unbound key", func(Env) error { return ErrUnboundKey }),
		New("normal_mode", "Enter normal mode", setMode(mode.Normal)),
		New("insert_mode", "Enter insert mode", setMode(mode.Insert)),
		New("visual_mode", "Enter visual mode", setMode(mode.Visual)),
		New("command_mode", "Enter command mode", setMode(mode.Command)),
		New("quit", "Exit the editor", func(env Env) error {
			env.Quit()
			return nil
		}),
		New("show_keys", "Show the bindings of the current mode", showKeys),
	}
}

func setMode(m mode.Mode) Func {
	return func(env Env) error {
		return env.SetMode(m)
	}
}

func showKeys(env Env) error {
	lines := env.Bindings(env.Mode())
	if len(lines) == 0 {
		env.Notify("no bindings in " + env.Mode().String() + " mode")
		return nil
	}
	env.Notify(strings.Join(lines, " | "))
	return nil
}
