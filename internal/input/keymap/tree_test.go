package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kk-editor/kk/internal/command"
)

func TestInsertSingle(t *testing.T) {
	tr := NewTree()
	require.NoError(t, tr.InsertSingle(NewNode(Exact(press("c")), nop)))

	cmds, next, ok := tr.GetFun(Exact(press("c")))
	require.True(t, ok)
	assert.Nil(t, next)
	assert.Equal(t, []*command.Command{nop}, cmds)

	_, _, ok = tr.GetFun(Exact(press("d")))
	assert.False(t, ok)
}

func TestInsertSingleOverwrites(t *testing.T) {
	tr := NewTree()
	require.NoError(t, tr.InsertChain(MustParseChain("g g"), []*command.Command{nop}))
	require.NoError(t, tr.InsertSingle(NewNode(Exact(press("g")), escape)))

	cmds, next, ok := tr.GetFun(Exact(press("g")))
	require.True(t, ok)
	assert.Nil(t, next, "a single binding is a leaf")
	assert.Equal(t, []*command.Command{escape}, cmds)
	assert.Equal(t, 1, tr.Len())
}

func TestPrefixSharing(t *testing.T) {
	tr := NewTree()
	require.NoError(t, tr.InsertChain(MustParseChain("space a"), []*command.Command{escape}))
	require.NoError(t, tr.InsertChain(MustParseChain("space b"), []*command.Command{nop}))

	assert.Equal(t, 1, tr.Len())
	cmds, next, ok := tr.GetFun(Exact(press("space")))
	require.True(t, ok)
	assert.Empty(t, cmds)
	require.NotNil(t, next)
	assert.Equal(t, 2, next.Len())
	assert.True(t, next.Has(Exact(press("a"))))
	assert.True(t, next.Has(Exact(press("b"))))
}

func TestNodeIdentityIgnoresCommands(t *testing.T) {
	a := NewNode(Exact(press("a")), nop)
	b := NewNode(Exact(press("a")), escape, nop)
	assert.True(t, a.Same(b))
	assert.False(t, a.Same(NewNode(Wildcard(), nop)))
	assert.False(t, NewNode(Wildcard()).Same(NewNode(NoMatch())))
}

func TestInsertChainReplacesTerminal(t *testing.T) {
	tr := NewTree()
	chain := MustParseChain("space a")
	require.NoError(t, tr.InsertChain(chain, []*command.Command{escape}))
	require.NoError(t, tr.InsertChain(chain, []*command.Command{nop}))

	cmds, ok := tr.Lookup(chain)
	require.True(t, ok)
	assert.Equal(t, []*command.Command{nop}, cmds)
}

func TestInsertChainExtendsLeaf(t *testing.T) {
	tr := NewTree()
	require.NoError(t, tr.InsertChain(MustParseChain("d"), []*command.Command{nop}))
	require.NoError(t, tr.InsertChain(MustParseChain("d d"), []*command.Command{escape}))

	cmds, next, ok := tr.GetFun(Exact(press("d")))
	require.True(t, ok)
	assert.Equal(t, []*command.Command{nop}, cmds, "leaf commands are kept")
	require.NotNil(t, next)

	// Rebinding the prefix keeps its continuation.
	require.NoError(t, tr.InsertChain(MustParseChain("d"), []*command.Command{errCmd}))
	cmds, next, ok = tr.GetFun(Exact(press("d")))
	require.True(t, ok)
	assert.Equal(t, []*command.Command{errCmd}, cmds)
	assert.NotNil(t, next)
}

func TestInsertChainEmpty(t *testing.T) {
	require.ErrorIs(t, NewTree().InsertChain(nil, nil), ErrEmptySequence)
}

func TestInsertChainCopiesCommands(t *testing.T) {
	tr := NewTree()
	cmds := []*command.Command{nop}
	require.NoError(t, tr.InsertChain(MustParseChain("a"), cmds))
	cmds[0] = escape

	got, ok := tr.Lookup(MustParseChain("a"))
	require.True(t, ok)
	assert.Equal(t, []*command.Command{nop}, got)

	got[0] = escape
	got, _ = tr.Lookup(MustParseChain("a"))
	assert.Equal(t, []*command.Command{nop}, got)
}

func TestSealedTreeRejectsInsert(t *testing.T) {
	tr := NewTree()
	require.NoError(t, tr.InsertChain(MustParseChain("space a"), []*command.Command{escape}))
	tr.Seal()

	assert.True(t, tr.Sealed())
	require.ErrorIs(t, tr.InsertChain(MustParseChain("b"), nil), ErrSealed)
	require.ErrorIs(t, tr.InsertSingle(NewNode(Wildcard())), ErrSealed)

	_, sub, _ := tr.GetFun(Exact(press("space")))
	require.NotNil(t, sub)
	assert.True(t, sub.Sealed(), "levels of the same edit are sealed together")
}

func TestThawCopiesOnWrite(t *testing.T) {
	tr := NewTree()
	require.NoError(t, tr.InsertChain(MustParseChain("space a"), []*command.Command{escape}))
	require.NoError(t, tr.InsertChain(MustParseChain("x y"), []*command.Command{nop}))

	next := tr.Thaw()
	assert.True(t, tr.Sealed())
	assert.False(t, next.Sealed())

	require.NoError(t, next.InsertChain(MustParseChain("space b"), []*command.Command{nop}))

	_, oldSpace, _ := tr.GetFun(Exact(press("space")))
	_, newSpace, _ := next.GetFun(Exact(press("space")))
	assert.NotSame(t, oldSpace, newSpace, "edited path is copied")
	assert.Equal(t, 1, oldSpace.Len())
	assert.Equal(t, 2, newSpace.Len())

	_, oldX, _ := tr.GetFun(Exact(press("x")))
	_, newX, _ := next.GetFun(Exact(press("x")))
	assert.Same(t, oldX, newX, "untouched siblings are shared")
}

func TestLookup(t *testing.T) {
	tr := NewTree()
	require.NoError(t, tr.InsertChain(MustParseChain("space a"), []*command.Command{escape}))

	_, ok := tr.Lookup(MustParseChain("space a b"))
	assert.False(t, ok)
	_, ok = tr.Lookup(nil)
	assert.False(t, ok)
	cmds, ok := tr.Lookup(MustParseChain("space"))
	assert.True(t, ok)
	assert.Empty(t, cmds)
}

func TestParseChain(t *testing.T) {
	chain, err := ParseChain("C-x  <any> <nomatch>")
	require.NoError(t, err)
	assert.Equal(t, []Match{Exact(press("C-x")), Wildcard(), NoMatch()}, chain)
	assert.Equal(t, "C-x <any> <nomatch>", ChainString(chain))

	_, err = ParseChain("  ")
	require.ErrorIs(t, err, ErrEmptySequence)

	_, err = ParseChain("space Foo")
	require.Error(t, err)
}

func TestMatchesOrder(t *testing.T) {
	tr := NewTree()
	for _, n := range []Node{NewNode(NoMatch()), NewNode(Wildcard()), NewNode(Exact(press("b"))), NewNode(Exact(press("a")))} {
		require.NoError(t, tr.InsertSingle(n))
	}
	assert.Equal(t, []Match{Exact(press("a")), Exact(press("b")), Wildcard(), NoMatch()}, tr.Matches())
}
