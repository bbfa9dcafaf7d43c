package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Parse errors
var (
	ErrEmpty   = errors.New("empty key specification")
	ErrInvalid = errors.New("invalid key specification")
)

// ParseError describes a key specification that could not be parsed.
type ParseError struct {
	// Spec is the offending text.
	Spec string

	// Reason explains what is wrong with it.
	Reason string

	// Err is ErrEmpty or ErrInvalid.
	Err error
}

func (e *ParseError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("key %q: %v", e.Spec, e.Err)
	}
	return fmt.Sprintf("key %q: %s", e.Spec, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func invalid(spec, format string, args ...any) error {
	return &ParseError{Spec: spec, Reason: fmt.Sprintf(format, args...), Err: ErrInvalid}
}

// Parse parses a key specification such as "a", "C-x", "A-S-f4" or "space".
func Parse(spec string) (Input, error) {
	if spec == "" {
		return Input{}, &ParseError{Spec: spec, Err: ErrEmpty}
	}

	var mods Modifier
	rest := spec
	for len(rest) >= 2 && rest[1] == '-' {
		mod, ok := modifierFromLetter(rest[0])
		if !ok {
			break
		}
		if len(rest) == 2 {
			return Input{}, invalid(spec, "modifier %q has no key", rest)
		}
		if mods.Has(mod) {
			return Input{}, invalid(spec, "duplicate modifier %q", rest[:2])
		}
		mods = mods.With(mod)
		rest = rest[2:]
	}

	return parseBase(spec, rest, mods)
}

// parseBase parses the base token once all modifier prefixes are consumed.
func parseBase(spec, token string, mods Modifier) (Input, error) {
	if code, ok := CodeFromName(token); ok {
		return NewNamed(code, mods), nil
	}

	r, size := utf8.DecodeRuneInString(token)
	if size != len(token) {
		if strings.ToLower(token) != token {
			if _, ok := CodeFromName(strings.ToLower(token)); ok {
				return Input{}, invalid(spec, "key names are lower case, use %q", strings.ToLower(token))
			}
		}
		return Input{}, invalid(spec, "unknown key %q", token)
	}
	if r == utf8.RuneError || r == ' ' || !unicode.IsPrint(r) {
		return Input{}, invalid(spec, "unprintable key %q", token)
	}
	return NewRune(r, mods), nil
}

// MustParse parses a key specification and panics on error.
// Use only for known-valid specs in initialization code and tests.
func MustParse(spec string) Input {
	in, err := Parse(spec)
	if err != nil {
		panic(err.Error())
	}
	return in
}

// Normalize parses and re-formats a key specification to its canonical form.
func Normalize(spec string) (string, error) {
	in, err := Parse(spec)
	if err != nil {
		return "", err
	}
	return in.String(), nil
}
