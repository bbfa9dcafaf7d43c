package lua

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/kk-editor/kk/internal/command"
	"github.com/kk-editor/kk/internal/input/mode"
)

// ModuleName is the global table scripts use to talk to the editor.
const ModuleName = "kk"

// Host runs user scripts and turns the functions they register into
// commands.
type Host struct {
	state *State
	reg   *command.Registry

	// env is the editor surface of the command being executed, nil while
	// scripts are loading.
	env      command.Env
	commands []*command.Command
}

// NewHost creates a host that registers script commands in reg.
func NewHost(reg *command.Registry, opts ...StateOption) *Host {
	h := &Host{state: NewState(opts...), reg: reg}
	h.installModule()
	return h
}

// Load runs each script in order. Loading stops at the first failing
// script; commands registered by earlier scripts stay registered.
func (h *Host) Load(paths ...string) error {
	for _, p := range paths {
		if err := h.state.DoFile(p); err != nil {
			return &ScriptError{Path: p, Err: err}
		}
	}
	return nil
}

// LoadString runs a chunk of Lua code, for tests and the check command.
func (h *Host) LoadString(name, code string) error {
	if err := h.state.DoString(code); err != nil {
		return &ScriptError{Path: name, Err: err}
	}
	return nil
}

// Commands returns the commands registered by scripts, in registration
// order.
func (h *Host) Commands() []*command.Command {
	return append([]*command.Command(nil), h.commands...)
}

// Close releases the Lua state. Script commands fail with ErrStateClosed
// afterwards.
func (h *Host) Close() error {
	return h.state.Close()
}

func (h *Host) installModule() {
	L := h.state.L
	mod := L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"command":  h.luaCommand,
		"mode":     h.luaMode,
		"notify":   h.luaNotify,
		"quit":     h.luaQuit,
		"bindings": h.luaBindings,
	})
	L.SetGlobal(ModuleName, mod)
}

// kk.command(name, doc, fn)
func (h *Host) luaCommand(L *lua.LState) int {
	name := L.CheckString(1)
	doc := L.OptString(2, "")
	fn := L.CheckFunction(3)

	cmd := command.New(name, doc, func(env command.Env) error {
		return h.call(env, fn)
	})
	if err := h.reg.Register(cmd); err != nil {
		L.RaiseError("kk.command: %v", err)
		return 0
	}
	h.commands = append(h.commands, cmd)
	return 0
}

// call runs fn with env as the current editor surface.
func (h *Host) call(env command.Env, fn *lua.LFunction) error {
	prev := h.env
	h.env = env
	defer func() { h.env = prev }()
	return h.state.CallFunc(fn)
}

func (h *Host) currentEnv(L *lua.LState, fn string) command.Env {
	if h.env == nil {
		L.RaiseError("kk.%s: only available while a command runs", fn)
	}
	return h.env
}

// kk.mode() returns the active mode; kk.mode(name) switches to it.
func (h *Host) luaMode(L *lua.LState) int {
	env := h.currentEnv(L, "mode")
	if L.GetTop() == 0 {
		L.Push(lua.LString(env.Mode().String()))
		return 1
	}
	m, err := mode.Parse(L.CheckString(1))
	if err != nil {
		L.ArgError(1, err.Error())
		return 0
	}
	if err := env.SetMode(m); err != nil {
		L.RaiseError("kk.mode: %v", err)
	}
	return 0
}

// kk.notify(msg)
func (h *Host) luaNotify(L *lua.LState) int {
	env := h.currentEnv(L, "notify")
	env.Notify(L.CheckString(1))
	return 0
}

// kk.quit()
func (h *Host) luaQuit(L *lua.LState) int {
	h.currentEnv(L, "quit").Quit()
	return 0
}

// kk.bindings([mode]) returns a list of "keys -> commands" strings.
func (h *Host) luaBindings(L *lua.LState) int {
	env := h.currentEnv(L, "bindings")
	m := env.Mode()
	if L.GetTop() > 0 {
		var err error
		if m, err = mode.Parse(L.CheckString(1)); err != nil {
			L.ArgError(1, err.Error())
			return 0
		}
	}
	t := L.NewTable()
	for _, line := range env.Bindings(m) {
		t.Append(lua.LString(line))
	}
	L.Push(t)
	return 1
}
