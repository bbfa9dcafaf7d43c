package key

// Modifier is a set of modifier keys.
type Modifier uint8

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModCtrl indicates the Control key.
	ModCtrl Modifier = 1 << iota

	// ModAlt indicates the Alt key (Option on macOS).
	ModAlt

	// ModShift indicates the Shift key.
	ModShift
)

// modifierOrder is the canonical printing order.
var modifierOrder = []Modifier{ModCtrl, ModAlt, ModShift}

// Has returns true if m contains the specified modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// With returns a new Modifier with the specified modifier added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// Without returns a new Modifier with the specified modifier removed.
func (m Modifier) Without(mod Modifier) Modifier {
	return m &^ mod
}

// IsEmpty returns true if no modifiers are set.
func (m Modifier) IsEmpty() bool {
	return m == ModNone
}

// Prefix returns the textual prefix for m, e.g. "C-A-".
func (m Modifier) Prefix() string {
	var b []byte
	for _, mod := range modifierOrder {
		if m.Has(mod) {
			b = append(b, mod.letter(), '-')
		}
	}
	return string(b)
}

// String returns a readable form like "Ctrl+Alt".
func (m Modifier) String() string {
	if m == ModNone {
		return ""
	}
	s := ""
	for _, mod := range modifierOrder {
		if !m.Has(mod) {
			continue
		}
		if s != "" {
			s += "+"
		}
		switch mod {
		case ModCtrl:
			s += "Ctrl"
		case ModAlt:
			s += "Alt"
		case ModShift:
			s += "Shift"
		}
	}
	return s
}

func (m Modifier) letter() byte {
	switch m {
	case ModCtrl:
		return 'C'
	case ModAlt:
		return 'A'
	case ModShift:
		return 'S'
	}
	return '?'
}

// modifierFromLetter maps a prefix letter to its modifier.
func modifierFromLetter(b byte) (Modifier, bool) {
	switch b {
	case 'C':
		return ModCtrl, true
	case 'A':
		return ModAlt, true
	case 'S':
		return ModShift, true
	}
	return ModNone, false
}
