package keymap

import (
	"errors"

	"github.com/kk-editor/kk/internal/command"
	"github.com/kk-editor/kk/internal/input/mode"
)

// Binding is one configured key sequence and the command names it runs.
type Binding struct {
	Mode     mode.Mode
	Keys     string
	Commands []string

	// Source names where the binding was declared, for diagnostics.
	Source string
}

// Override records a binding that replaced the commands of an earlier one.
type Override struct {
	Binding  Binding
	Previous []string
}

// Report collects the problems found while building trees.
type Report struct {
	// Errors holds a *BindError for every binding that was skipped.
	Errors []error

	// Overrides lists bindings that replaced an earlier binding.
	Overrides []Override
}

// Err joins the collected errors, or returns nil.
func (r *Report) Err() error {
	return errors.Join(r.Errors...)
}

// OK reports whether every binding was loaded.
func (r *Report) OK() bool {
	return len(r.Errors) == 0
}

// Build inserts bindings in order into one tree per mode, resolving command
// names against reg. Bindings with malformed keys or unknown commands are
// skipped and reported; the rest are loaded. The returned trees are open.
func Build(bindings []Binding, reg *command.Registry) (map[mode.Mode]*Tree, *Report) {
	trees := make(map[mode.Mode]*Tree)
	report := &Report{}

	for _, b := range bindings {
		chain, err := ParseChain(b.Keys)
		if err != nil {
			report.Errors = append(report.Errors, &BindError{Binding: b, Err: err})
			continue
		}
		cmds, err := reg.Resolve(b.Commands)
		if err != nil {
			report.Errors = append(report.Errors, &BindError{Binding: b, Err: err})
			continue
		}

		t, ok := trees[b.Mode]
		if !ok {
			t = NewTree()
			trees[b.Mode] = t
		}
		if prev, bound := t.bound(chain); bound {
			report.Overrides = append(report.Overrides, Override{Binding: b, Previous: command.Names(prev)})
		}
		if err := t.InsertChain(chain, cmds); err != nil {
			report.Errors = append(report.Errors, &BindError{Binding: b, Err: err})
		}
	}
	return trees, report
}

// bound reports whether chain already ends a binding: a leaf, or an internal
// edge carrying commands.
func (t *Tree) bound(chain []Match) ([]*command.Command, bool) {
	level := t
	for i, m := range chain {
		cmds, next, ok := level.GetFun(m)
		if !ok {
			return nil, false
		}
		if i == len(chain)-1 {
			return cmds, next == nil || len(cmds) > 0
		}
		if next == nil {
			return nil, false
		}
		level = next
	}
	return nil, false
}
