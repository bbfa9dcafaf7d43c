// Package keymap resolves key presses to commands.
//
// Bindings are stored in one trie per editor mode. Each level of the trie is
// a Tree mapping a Match (an exact key, the wildcard, or the no-match
// sentinel) to the commands bound there and, for chord prefixes, to the
// Tree of keys that may follow.
//
// # Dispatch
//
// Keymap.Dispatch consumes one key.Input at a time. It searches the pending
// subtree when a chord is in progress, otherwise the root tree of the active
// mode, and tries the edges in strict precedence order:
//
//  1. the exact key
//  2. the wildcard "<any>"
//  3. the no-match sentinel "<nomatch>"
//
// The first edge found supplies the commands to run. If that edge continues
// the chord, its subtree becomes the pending state for the next key;
// otherwise the keymap returns to idle. When no edge matches, the result is
// empty and any chord in progress is abandoned.
//
// # Snapshots
//
// Trees are persistent. Every tree level remembers the edit that created it,
// and an insertion mutates only the levels owned by the tree's own edit,
// copying any other level on the path first. Loading a tree into a Keymap
// seals it; sealed trees never change, so dispatch and readers such as a help
// overlay share them without locks. Keymap.Bind and Keymap.Publish build new
// roots privately and swap them in atomically.
//
// # Configuration
//
//	bindings := []keymap.Binding{
//	    {Mode: mode.Normal, Keys: "space a", Commands: []string{"escape"}},
//	    {Mode: mode.Normal, Keys: "<any>", Commands: []string{"error"}},
//	}
//	trees, report := keymap.Build(bindings, command.Default())
//	km := keymap.New()
//	km.Publish(trees)
package keymap
