package key

import "unicode"

// Input is a single key press: a base key plus modifiers.
// The zero value is the empty input and never matches a real key press.
type Input struct {
	// Code identifies the base key.
	Code Code

	// Rune is the character for CodeRune inputs and zero otherwise.
	Rune rune

	// Mods contains the active modifier keys.
	Mods Modifier
}

// NewRune creates an input for a character key.
// The space character is normalized to the named space key.
func NewRune(r rune, mods Modifier) Input {
	if r == ' ' {
		return Input{Code: CodeSpace, Mods: mods}
	}
	return Input{Code: CodeRune, Rune: r, Mods: mods}
}

// NewNamed creates an input for a named key.
func NewNamed(c Code, mods Modifier) Input {
	return Input{Code: c, Mods: mods}
}

// IsZero returns true for the empty input.
func (in Input) IsZero() bool {
	return in == Input{}
}

// IsRune returns true if this is a character key.
func (in Input) IsRune() bool {
	return in.Code == CodeRune
}

// IsPrintable returns true for an unmodified (or shift-only) printable character.
func (in Input) IsPrintable() bool {
	return in.IsRune() && unicode.IsPrint(in.Rune) && in.Mods.Without(ModShift).IsEmpty()
}

// String returns the canonical textual form, e.g. "C-x", "A-S-f4", "space".
func (in Input) String() string {
	var base string
	switch {
	case in.Code == CodeRune:
		base = string(in.Rune)
	case in.Code.IsNamed():
		base = codeNames[in.Code]
	default:
		return "<none>"
	}
	return in.Mods.Prefix() + base
}
