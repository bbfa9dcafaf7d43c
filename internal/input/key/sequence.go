package key

import "strings"

// Sequence is an ordered list of inputs forming a chord,
// e.g. "space a" or "C-x C-s".
type Sequence []Input

// ParseSequence parses whitespace separated key specifications.
func ParseSequence(spec string) (Sequence, error) {
	fields := strings.Fields(spec)
	if len(fields) == 0 {
		return nil, &ParseError{Spec: spec, Err: ErrEmpty}
	}

	seq := make(Sequence, 0, len(fields))
	for _, f := range fields {
		in, err := Parse(f)
		if err != nil {
			return nil, err
		}
		seq = append(seq, in)
	}
	return seq, nil
}

// MustParseSequence parses a sequence and panics on error.
func MustParseSequence(spec string) Sequence {
	seq, err := ParseSequence(spec)
	if err != nil {
		panic(err.Error())
	}
	return seq
}

// String returns the canonical form with inputs separated by single spaces.
func (s Sequence) String() string {
	parts := make([]string, len(s))
	for i, in := range s {
		parts[i] = in.String()
	}
	return strings.Join(parts, " ")
}

// Equal returns true if both sequences contain the same inputs in order.
func (s Sequence) Equal(other Sequence) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// HasPrefix returns true if prefix is a prefix of s.
func (s Sequence) HasPrefix(prefix Sequence) bool {
	if len(prefix) > len(s) {
		return false
	}
	return s[:len(prefix)].Equal(prefix)
}
