package keymap

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/kk-editor/kk/internal/command"
	"github.com/kk-editor/kk/internal/input/key"
	"github.com/kk-editor/kk/internal/input/mode"
)

type roots = map[mode.Mode]*Tree

// Keymap holds the bindings of every mode and the state of the chord in
// progress.
//
// The per-mode trees are published snapshots and may be read, replaced or
// extended from any goroutine. Dispatch, SetMode and the pending state are
// owned by the goroutine running the event loop.
type Keymap struct {
	trees   atomic.Pointer[roots]
	writeMu sync.Mutex

	active      mode.Mode
	pending     *Tree
	pendingKeys key.Sequence
}

// New creates a keymap with no trees, starting in Normal mode.
func New() *Keymap {
	km := &Keymap{active: mode.Normal}
	empty := make(roots)
	km.trees.Store(&empty)
	return km
}

// Load seals t and installs it as the root tree of m.
func (km *Keymap) Load(m mode.Mode, t *Tree) {
	t.Seal()
	km.writeMu.Lock()
	defer km.writeMu.Unlock()

	next := maps.Clone(*km.trees.Load())
	next[m] = t
	km.trees.Store(&next)
}

// Publish replaces all trees at once. Modes missing from trees are dropped.
func (km *Keymap) Publish(trees map[mode.Mode]*Tree) {
	next := make(roots, len(trees))
	for m, t := range trees {
		t.Seal()
		next[m] = t
	}
	km.writeMu.Lock()
	km.trees.Store(&next)
	km.writeMu.Unlock()
}

// Bind adds a binding to the tree of m. The tree in use is never modified; a
// new version is built and swapped in once the insertion is complete.
func (km *Keymap) Bind(m mode.Mode, chain []Match, cmds []*command.Command) error {
	km.writeMu.Lock()
	defer km.writeMu.Unlock()

	cur := *km.trees.Load()
	var t *Tree
	if old, ok := cur[m]; ok {
		t = old.Thaw()
	} else {
		t = NewTree()
	}
	if err := t.InsertChain(chain, cmds); err != nil {
		return err
	}
	t.Seal()

	next := maps.Clone(cur)
	next[m] = t
	km.trees.Store(&next)
	return nil
}

// Tree returns the published root of m.
func (km *Keymap) Tree(m mode.Mode) (*Tree, bool) {
	t, ok := (*km.trees.Load())[m]
	return t, ok
}

// Modes returns the modes that have a tree, in declaration order.
func (km *Keymap) Modes() []mode.Mode {
	cur := *km.trees.Load()
	out := make([]mode.Mode, 0, len(cur))
	for _, m := range mode.All() {
		if _, ok := cur[m]; ok {
			out = append(out, m)
		}
	}
	return out
}

// Validate checks that every given mode has a tree.
func (km *Keymap) Validate(modes ...mode.Mode) error {
	cur := *km.trees.Load()
	for _, m := range modes {
		if _, ok := cur[m]; !ok {
			return fmt.Errorf("%w: %s", ErrNoTree, m)
		}
	}
	return nil
}

// Mode returns the active mode.
func (km *Keymap) Mode() mode.Mode {
	return km.active
}

// SetMode switches the active mode and abandons any chord in progress.
func (km *Keymap) SetMode(m mode.Mode) error {
	if _, ok := km.Tree(m); !ok {
		return fmt.Errorf("%w: %s", ErrNoTree, m)
	}
	km.active = m
	km.Reset()
	return nil
}

// Reset abandons any chord in progress.
func (km *Keymap) Reset() {
	km.pending = nil
	km.pendingKeys = nil
}

// IsPending reports whether a chord is in progress.
func (km *Keymap) IsPending() bool {
	return km.pending != nil
}

// Pending returns the keys of the chord in progress.
func (km *Keymap) Pending() key.Sequence {
	return slices.Clone(km.pendingKeys)
}

// Dispatch resolves one key press and returns the commands to run now,
// possibly none. It never fails: a key without a binding yields an empty
// result and ends any chord in progress.
func (km *Keymap) Dispatch(in key.Input) []*command.Command {
	t := km.pending
	if t == nil {
		root, ok := km.Tree(km.active)
		if !ok {
			return nil
		}
		t = root
	}

	for _, m := range [...]Match{Exact(in), Wildcard(), NoMatch()} {
		cmds, next, ok := t.GetFun(m)
		if !ok {
			continue
		}
		if next != nil {
			km.pending = next
			km.pendingKeys = append(km.pendingKeys, in)
		} else {
			km.Reset()
		}
		return cmds
	}

	km.Reset()
	return nil
}

// Bindings describes every binding of m, one per line, in the form
// "keys -> command, command".
func (km *Keymap) Bindings(m mode.Mode) []string {
	t, ok := km.Tree(m)
	if !ok {
		return nil
	}
	var lines []string
	t.Walk(func(chain []Match, cmds []*command.Command) {
		lines = append(lines, ChainString(chain)+" -> "+strings.Join(command.Names(cmds), ", "))
	})
	return lines
}
