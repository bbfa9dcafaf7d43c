// Package config loads the user configuration of kk.
//
// The configuration is a single TOML or YAML file, chosen by extension. It
// sets up logging, lists Lua scripts that add commands, and binds key
// sequences to command names:
//
//	scripts = ["scripts/git.lua"]
//
//	[log]
//	level = "debug"
//
//	[[bind]]
//	mode = "normal"
//	keys = "space g s"
//	commands = ["git_status"]
//
//	[keys.insert]
//	"C-s" = ["normal_mode"]
//
// Sources are applied in order of increasing priority:
//
//  1. Built-in defaults
//  2. The config file (missing is fine)
//  3. KK_* environment variables
//
// Unknown keys in the file are errors. Bindings are only turned into
// keymap.Binding values here; command names and key syntax are checked when
// the keymap is built, so one bad binding never prevents the others from
// loading.
//
// The watcher subpackage reports changes to the file for live reload.
package config
