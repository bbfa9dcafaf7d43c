package key

import "fmt"

// Code identifies the base key of an Input.
// Character keys use CodeRune with the character stored in Input.Rune.
type Code uint8

const (
	// CodeNone represents no key.
	CodeNone Code = iota

	// CodeRune is a printable character key.
	CodeRune

	CodeSpace
	CodeEscape
	CodeEnter
	CodeTab
	CodeBackspace
	CodeDelete
	CodeInsert
	CodeHome
	CodeEnd
	CodePageUp
	CodePageDown

	// Arrow keys
	CodeUp
	CodeDown
	CodeLeft
	CodeRight

	// Function keys
	CodeF1
	CodeF2
	CodeF3
	CodeF4
	CodeF5
	CodeF6
	CodeF7
	CodeF8
	CodeF9
	CodeF10
	CodeF11
	CodeF12
)

// codeNames holds the canonical token of every named key.
var codeNames = map[Code]string{
	CodeSpace:     "space",
	CodeEscape:    "esc",
	CodeEnter:     "enter",
	CodeTab:       "tab",
	CodeBackspace: "backspace",
	CodeDelete:    "del",
	CodeInsert:    "ins",
	CodeHome:      "home",
	CodeEnd:       "end",
	CodePageUp:    "pgup",
	CodePageDown:  "pgdn",
	CodeUp:        "up",
	CodeDown:      "down",
	CodeLeft:      "left",
	CodeRight:     "right",
	CodeF1:        "f1",
	CodeF2:        "f2",
	CodeF3:        "f3",
	CodeF4:        "f4",
	CodeF5:        "f5",
	CodeF6:        "f6",
	CodeF7:        "f7",
	CodeF8:        "f8",
	CodeF9:        "f9",
	CodeF10:       "f10",
	CodeF11:       "f11",
	CodeF12:       "f12",
}

// namedCodes is the reverse of codeNames.
var namedCodes = func() map[string]Code {
	m := make(map[string]Code, len(codeNames))
	for c, name := range codeNames {
		m[name] = c
	}
	return m
}()

// String returns the canonical token for a named key.
func (c Code) String() string {
	switch c {
	case CodeNone:
		return "none"
	case CodeRune:
		return "rune"
	}
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Code(%d)", c)
}

// IsNamed returns true if this is a named (non-character) key.
func (c Code) IsNamed() bool {
	_, ok := codeNames[c]
	return ok
}

// IsFunctionKey returns true if this is a function key (F1-F12).
func (c Code) IsFunctionKey() bool {
	return c >= CodeF1 && c <= CodeF12
}

// IsArrowKey returns true if this is an arrow key.
func (c Code) IsArrowKey() bool {
	return c >= CodeUp && c <= CodeRight
}

// CodeFromName returns the Code for a canonical named token.
func CodeFromName(name string) (Code, bool) {
	c, ok := namedCodes[name]
	return c, ok
}

// Names returns the canonical tokens of all named keys.
func Names() []string {
	names := make([]string, 0, len(codeNames))
	for c := CodeSpace; c <= CodeF12; c++ {
		names = append(names, codeNames[c])
	}
	return names
}
