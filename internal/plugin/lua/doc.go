// Package lua runs user scripts that define editor commands.
//
// Scripts execute in a gopher-lua state with only the base, table, string
// and math libraries; functions that load code from disk are removed. Each
// call is bounded by an execution timeout.
//
// Scripts see a global kk table:
//
//	kk.command(name, doc, fn)  register fn as a command
//	kk.mode([name])            get or switch the active mode
//	kk.notify(msg)             show msg on the status line
//	kk.quit()                  exit the editor
//	kk.bindings([mode])        list bindings as "keys -> commands" strings
//
// Only kk.command may be called while a script loads; the others act on the
// editor while a script command runs. An error raised by a command function
// becomes the command's failure.
//
//	kk.command("greet", "Say hello", function()
//	    kk.notify("hello from " .. kk.mode())
//	end)
package lua
