package keymap

import "github.com/kk-editor/kk/internal/input/mode"

// DefaultBindings returns the builtin bindings loaded before user
// configuration.
func DefaultBindings() []Binding {
	def := func(m mode.Mode, keys string, cmds ...string) Binding {
		return Binding{Mode: m, Keys: keys, Commands: cmds, Source: "default"}
	}
	return []Binding{
		def(mode.Normal, "i", "insert_mode"),
		def(mode.Normal, "v", "visual_mode"),
		def(mode.Normal, ":", "command_mode"),
		def(mode.Normal, "q", "quit"),
		def(mode.Normal, "space ?", "show_keys"),
		def(mode.Normal, "space q", "quit"),
		def(mode.Normal, "esc", "nop"),
		def(mode.Normal, NoMatchToken, "error"),

		def(mode.Insert, "esc", "normal_mode"),
		def(mode.Insert, "C-c", "normal_mode"),

		def(mode.Visual, "esc", "normal_mode"),
		def(mode.Visual, "v", "normal_mode"),
		def(mode.Visual, "space ?", "show_keys"),

		def(mode.Command, "esc", "normal_mode"),
		def(mode.Command, "enter", "normal_mode"),
	}
}
