package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/kk-editor/kk/internal/input/key"
)

var namedKeys = map[tcell.Key]key.Code{
	tcell.KeyEscape:     key.CodeEscape,
	tcell.KeyEnter:      key.CodeEnter,
	tcell.KeyTab:        key.CodeTab,
	tcell.KeyBackspace:  key.CodeBackspace,
	tcell.KeyBackspace2: key.CodeBackspace,
	tcell.KeyDelete:     key.CodeDelete,
	tcell.KeyInsert:     key.CodeInsert,
	tcell.KeyHome:       key.CodeHome,
	tcell.KeyEnd:        key.CodeEnd,
	tcell.KeyPgUp:       key.CodePageUp,
	tcell.KeyPgDn:       key.CodePageDown,
	tcell.KeyUp:         key.CodeUp,
	tcell.KeyDown:       key.CodeDown,
	tcell.KeyLeft:       key.CodeLeft,
	tcell.KeyRight:      key.CodeRight,
	tcell.KeyF1:         key.CodeF1,
	tcell.KeyF2:         key.CodeF2,
	tcell.KeyF3:         key.CodeF3,
	tcell.KeyF4:         key.CodeF4,
	tcell.KeyF5:         key.CodeF5,
	tcell.KeyF6:         key.CodeF6,
	tcell.KeyF7:         key.CodeF7,
	tcell.KeyF8:         key.CodeF8,
	tcell.KeyF9:         key.CodeF9,
	tcell.KeyF10:        key.CodeF10,
	tcell.KeyF11:        key.CodeF11,
	tcell.KeyF12:        key.CodeF12,
}

var tcellKeys = func() map[key.Code]tcell.Key {
	m := make(map[key.Code]tcell.Key, len(namedKeys))
	for k, c := range namedKeys {
		m[c] = k
	}
	m[key.CodeBackspace] = tcell.KeyBackspace2
	return m
}()

// convertKey translates a tcell key event. Control characters become
// C-<letter>; Shift is dropped from characters since the character already
// reflects it.
func convertKey(k tcell.Key, r rune, tm tcell.ModMask) (key.Input, bool) {
	mods := convertMod(tm)

	switch {
	case k == tcell.KeyRune:
		if mods.Has(key.ModCtrl) && r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		return key.NewRune(r, mods.Without(key.ModShift)), true

	case k == tcell.KeyBacktab:
		return key.NewNamed(key.CodeTab, mods.With(key.ModShift)), true

	case k == tcell.KeyCtrlSpace:
		return key.NewNamed(key.CodeSpace, mods.With(key.ModCtrl)), true
	}

	if code, ok := namedKeys[k]; ok {
		return key.NewNamed(code, mods), true
	}

	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		letter := 'a' + rune(k-tcell.KeyCtrlA)
		return key.NewRune(letter, mods.With(key.ModCtrl).Without(key.ModShift)), true
	}
	return key.Input{}, false
}

func convertMod(m tcell.ModMask) key.Modifier {
	var mods key.Modifier
	if m&tcell.ModCtrl != 0 {
		mods = mods.With(key.ModCtrl)
	}
	if m&(tcell.ModAlt|tcell.ModMeta) != 0 {
		mods = mods.With(key.ModAlt)
	}
	if m&tcell.ModShift != 0 {
		mods = mods.With(key.ModShift)
	}
	return mods
}

// toTcell is the inverse of convertKey.
func toTcell(in key.Input) (tcell.Key, rune, tcell.ModMask) {
	var tm tcell.ModMask
	if in.Mods.Has(key.ModCtrl) {
		tm |= tcell.ModCtrl
	}
	if in.Mods.Has(key.ModAlt) {
		tm |= tcell.ModAlt
	}
	if in.Mods.Has(key.ModShift) {
		tm |= tcell.ModShift
	}

	switch in.Code {
	case key.CodeRune:
		if in.Mods.Has(key.ModCtrl) && in.Rune >= 'a' && in.Rune <= 'z' {
			return tcell.KeyCtrlA + tcell.Key(in.Rune-'a'), 0, tm
		}
		return tcell.KeyRune, in.Rune, tm
	case key.CodeSpace:
		if in.Mods.Has(key.ModCtrl) {
			return tcell.KeyCtrlSpace, 0, tm
		}
		return tcell.KeyRune, ' ', tm
	case key.CodeTab:
		if in.Mods.Has(key.ModShift) {
			return tcell.KeyBacktab, 0, tm
		}
	}
	return tcellKeys[in.Code], 0, tm
}
