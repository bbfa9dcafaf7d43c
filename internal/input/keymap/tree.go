package keymap

import (
	"slices"
	"sync/atomic"

	"github.com/kk-editor/kk/internal/command"
)

// edit identifies one private editing session over a tree. Levels created or
// copied during an edit carry its pointer; once sealed, they are immutable.
type edit struct {
	sealed atomic.Bool
}

type entry struct {
	node Node
	// next is nil for a leaf; otherwise the sequence may continue.
	next *Tree
}

// Tree is one level of a keymap trie: what can come next.
//
// A Tree is either open (owned by a single writer, modified in place) or
// sealed (immutable and safe to share). Subtrees reachable from a sealed
// tree are sealed as well.
type Tree struct {
	edit  *edit
	edges map[Match]entry
}

// NewTree creates an empty, open tree.
func NewTree() *Tree {
	return newLevel(&edit{})
}

func newLevel(e *edit) *Tree {
	return &Tree{edit: e, edges: make(map[Match]entry)}
}

// Seal makes the tree and every level created by the same edit immutable.
func (t *Tree) Seal() {
	t.edit.sealed.Store(true)
}

// Sealed reports whether the tree can no longer be modified.
func (t *Tree) Sealed() bool {
	return t.edit.sealed.Load()
}

// Thaw returns an open copy of t under a new edit. Only the root level is
// copied; deeper levels are shared and copied lazily when an insertion
// reaches them. Thaw seals t, so it remains a stable snapshot.
func (t *Tree) Thaw() *Tree {
	t.Seal()
	return t.copyInto(&edit{})
}

func (t *Tree) copyInto(e *edit) *Tree {
	c := &Tree{edit: e, edges: make(map[Match]entry, len(t.edges))}
	for m, en := range t.edges {
		c.edges[m] = en
	}
	return c
}

// own returns a version of child that belongs to edit e, copying it if it
// was created by another edit.
func own(child *Tree, e *edit) *Tree {
	if child.edit == e {
		return child
	}
	return child.copyInto(e)
}

// Len returns the number of edges at this level.
func (t *Tree) Len() int {
	return len(t.edges)
}

// Has reports whether an edge for m exists at this level.
func (t *Tree) Has(m Match) bool {
	_, ok := t.edges[m]
	return ok
}

// Matches returns the edges at this level in canonical order.
func (t *Tree) Matches() []Match {
	ms := make([]Match, 0, len(t.edges))
	for m := range t.edges {
		ms = append(ms, m)
	}
	slices.SortFunc(ms, func(a, b Match) int {
		switch {
		case a.less(b):
			return -1
		case b.less(a):
			return 1
		}
		return 0
	})
	return ms
}

// InsertSingle binds node at this level as a leaf, replacing any existing
// edge with the same Match together with its continuation.
func (t *Tree) InsertSingle(node Node) error {
	if t.Sealed() {
		return ErrSealed
	}
	t.edges[node.Match] = entry{node: node.clone()}
	return nil
}

// InsertChain binds cmds to the end of chain, creating intermediate levels
// as needed. Existing prefixes are shared. If the final edge already exists
// its commands are replaced and its continuation, if any, is kept.
func (t *Tree) InsertChain(chain []Match, cmds []*command.Command) error {
	if len(chain) == 0 {
		return ErrEmptySequence
	}
	if t.Sealed() {
		return ErrSealed
	}

	level := t
	last := len(chain) - 1
	for i, m := range chain {
		en, exists := level.edges[m]
		if i == last {
			en.node = Node{Match: m, Commands: slices.Clone(cmds)}
			level.edges[m] = en
			return nil
		}

		if !exists {
			en = entry{node: Node{Match: m}}
		}
		if en.next == nil {
			en.next = newLevel(t.edit)
		} else {
			en.next = own(en.next, t.edit)
		}
		level.edges[m] = en
		level = en.next
	}
	return nil
}

// GetFun returns the commands bound at edge m and the subtree that follows
// it. next is nil when the edge is terminal. ok is false if there is no
// such edge.
func (t *Tree) GetFun(m Match) (cmds []*command.Command, next *Tree, ok bool) {
	en, ok := t.edges[m]
	if !ok {
		return nil, nil, false
	}
	return slices.Clone(en.node.Commands), en.next, true
}

// Lookup follows chain from this level and returns the commands bound at
// its final edge.
func (t *Tree) Lookup(chain []Match) ([]*command.Command, bool) {
	if len(chain) == 0 {
		return nil, false
	}
	level := t
	for i, m := range chain {
		cmds, next, ok := level.GetFun(m)
		if !ok {
			return nil, false
		}
		if i == len(chain)-1 {
			return cmds, true
		}
		if next == nil {
			return nil, false
		}
		level = next
	}
	return nil, false
}

// Walk calls fn for every edge that ends a binding: each leaf, and each
// internal edge carrying commands. Edges are visited depth first in
// canonical order.
func (t *Tree) Walk(fn func(chain []Match, cmds []*command.Command)) {
	t.walk(nil, fn)
}

func (t *Tree) walk(prefix []Match, fn func([]Match, []*command.Command)) {
	for _, m := range t.Matches() {
		en := t.edges[m]
		chain := append(slices.Clone(prefix), m)
		if en.next == nil || len(en.node.Commands) > 0 {
			fn(chain, slices.Clone(en.node.Commands))
		}
		if en.next != nil {
			en.next.walk(chain, fn)
		}
	}
}
