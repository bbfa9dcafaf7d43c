// Package key provides the canonical representation of a single key press.
//
// An Input is a base key plus a set of modifiers. Inputs are comparable
// values: two inputs describing the same physical key and modifier
// combination are == and may be used directly as map keys.
//
// # Textual Form
//
// Key specifications use a compact grammar:
//
//	[modifier-prefix]* base-token
//
// Modifier prefixes are "C-" (Ctrl), "A-" (Alt) and "S-" (Shift), accepted in
// any order without repetition. The base token is either a single printable
// character ("a", "A", "1", "-") or a named key:
//
//	space esc enter tab backspace del ins home end pgup pgdn
//	up down left right f1 ... f12
//
// Input.String always produces the canonical form, with modifiers ordered
// C-, A-, S-. Parsing a canonical form and printing it again yields the same
// text.
//
// # Sequences
//
// A Sequence is an ordered list of inputs written as whitespace separated
// tokens, e.g. "space a" or "C-x C-s".
package key
