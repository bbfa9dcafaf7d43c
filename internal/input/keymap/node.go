package keymap

import (
	"slices"
	"strings"

	"github.com/kk-editor/kk/internal/command"
	"github.com/kk-editor/kk/internal/input/key"
)

// Kind discriminates the edges of a tree level.
type Kind uint8

const (
	// KindExact matches one specific key input.
	KindExact Kind = iota

	// KindWildcard matches any key without an exact edge at the same level.
	KindWildcard

	// KindNoMatch is used only when neither an exact nor a wildcard edge exists.
	KindNoMatch
)

// Tokens naming the wildcard and no-match edges in key sequences.
const (
	WildcardToken = "<any>"
	NoMatchToken  = "<nomatch>"
)

// Match is the identity of a trie edge. It is comparable and used as the map
// key of a tree level; the commands bound at an edge are not part of it.
type Match struct {
	Kind  Kind
	Input key.Input
}

// Exact returns the edge matching in exactly.
func Exact(in key.Input) Match {
	return Match{Kind: KindExact, Input: in}
}

// Wildcard returns the edge matching any key.
func Wildcard() Match {
	return Match{Kind: KindWildcard}
}

// NoMatch returns the no-match sentinel edge.
func NoMatch() Match {
	return Match{Kind: KindNoMatch}
}

// String returns the key token, WildcardToken or NoMatchToken.
func (m Match) String() string {
	switch m.Kind {
	case KindWildcard:
		return WildcardToken
	case KindNoMatch:
		return NoMatchToken
	default:
		return m.Input.String()
	}
}

// less orders exact edges by key text, followed by the wildcard and then
// the no-match sentinel.
func (m Match) less(other Match) bool {
	if m.Kind != other.Kind {
		return m.Kind < other.Kind
	}
	return m.Input.String() < other.Input.String()
}

// ParseMatch parses one token of a key sequence.
func ParseMatch(token string) (Match, error) {
	switch token {
	case WildcardToken:
		return Wildcard(), nil
	case NoMatchToken:
		return NoMatch(), nil
	}
	in, err := key.Parse(token)
	if err != nil {
		return Match{}, err
	}
	return Exact(in), nil
}

// ParseChain parses a whitespace separated key sequence that may contain
// wildcard and no-match tokens.
func ParseChain(spec string) ([]Match, error) {
	fields := strings.Fields(spec)
	if len(fields) == 0 {
		return nil, ErrEmptySequence
	}
	chain := make([]Match, 0, len(fields))
	for _, f := range fields {
		m, err := ParseMatch(f)
		if err != nil {
			return nil, err
		}
		chain = append(chain, m)
	}
	return chain, nil
}

// MustParseChain parses a chain and panics on error.
func MustParseChain(spec string) []Match {
	chain, err := ParseChain(spec)
	if err != nil {
		panic(err.Error())
	}
	return chain
}

// ChainString formats a chain in its canonical textual form.
func ChainString(chain []Match) string {
	parts := make([]string, len(chain))
	for i, m := range chain {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}

// Node is a trie edge together with the commands bound to it.
// Two nodes with the same Match denote the same edge.
type Node struct {
	Match    Match
	Commands []*command.Command
}

// NewNode creates a node binding cmds to m.
func NewNode(m Match, cmds ...*command.Command) Node {
	return Node{Match: m, Commands: cmds}
}

// Same reports whether both nodes denote the same edge.
func (n Node) Same(other Node) bool {
	return n.Match == other.Match
}

func (n Node) clone() Node {
	return Node{Match: n.Match, Commands: slices.Clone(n.Commands)}
}
