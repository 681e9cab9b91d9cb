package key

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// KeyPress represents one keystroke: a base key name plus modifier flags.
//
// The Key field holds either a single character (such as "a", "?", " ") or
// a lowercase key name (such as "enter", "arrowup", "f5"). Values are
// comparable; equality is structural.
type KeyPress struct {
	// Key is the case-normalized base key.
	Key string

	// Mods contains the active modifier flags.
	Mods Modifier
}

// New creates a normalized KeyPress. Keys longer than one character are
// lowercased; single characters keep their case since "a" and "A" are
// distinct keys. For shift-ignored keys the Shift flag is cleared.
func New(k string, mods Modifier) KeyPress {
	if utf8.RuneCountInString(k) > 1 {
		k = strings.ToLower(k)
	}
	if ShiftIgnored(k) {
		mods = mods.Without(ModShift)
	}
	return KeyPress{Key: k, Mods: mods}
}

// ShiftIgnored reports whether the Shift flag carries no information for
// the given base key. This holds for single printable characters other
// than space, because shifting those changes which character is reported.
func ShiftIgnored(k string) bool {
	return utf8.RuneCountInString(k) == 1 && k != " "
}

// Compare orders key presses for display. Named keys sort before single
// characters, then by key string, then by modifiers in priority order
// Ctrl, Shift, Alt, Meta with unset sorting first.
func Compare(a, b KeyPress) int {
	if ai, bi := ShiftIgnored(a.Key), ShiftIgnored(b.Key); ai != bi {
		if bi {
			return -1
		}
		return 1
	}
	if c := strings.Compare(a.Key, b.Key); c != 0 {
		return c
	}
	for _, mod := range order {
		if ah, bh := a.Mods.Has(mod), b.Mods.Has(mod); ah != bh {
			if bh {
				return -1
			}
			return 1
		}
	}
	return 0
}

// String returns a human-readable representation like "Ctrl+Enter".
func (kp KeyPress) String() string {
	name := displayName(kp.Key)
	if kp.Mods.IsEmpty() {
		return name
	}
	return kp.Mods.String() + "+" + name
}

// displayName renders a base key for humans: the space character and the
// arrow keys get friendly names, other named keys are title-cased.
func displayName(k string) string {
	switch k {
	case " ":
		return "Space"
	case "arrowup":
		return "Up"
	case "arrowdown":
		return "Down"
	case "arrowleft":
		return "Left"
	case "arrowright":
		return "Right"
	}
	if utf8.RuneCountInString(k) <= 1 {
		return k
	}
	r, size := utf8.DecodeRuneInString(k)
	return string(unicode.ToUpper(r)) + k[size:]
}
