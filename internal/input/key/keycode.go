package key

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Grammar errors. Invalid key codes are routine input (the user is still
// typing, or is editing a configuration document), so they are reported as
// values rather than panics; callers match with errors.Is.
var (
	// ErrInvalidKeyCode indicates a malformed key-code token.
	ErrInvalidKeyCode = errors.New("invalid key code")

	// ErrInvalidModifier indicates an unknown modifier letter.
	ErrInvalidModifier = errors.New("invalid modifier code")
)

// keyAliases maps accepted long names to canonical base keys.
// Applied after lowercasing.
var keyAliases = map[string]string{
	"space": " ",
	"spc":   " ",
	"up":    "arrowup",
	"down":  "arrowdown",
	"left":  "arrowleft",
	"right": "arrowright",
}

// codeNames maps canonical base keys back to their preferred short tokens.
var codeNames = map[string]string{
	" ":          "spc",
	"arrowup":    "up",
	"arrowdown":  "down",
	"arrowleft":  "left",
	"arrowright": "right",
}

var fkeyPattern = regexp.MustCompile(`^f([1-9]|1[0-2])$`)

// ParseKeyCode parses a key-code token such as "c-enter", "spc" or "?".
//
// A token is either the literal "-" (the dash key with no modifiers), or an
// optional modifier prefix followed by a base key. The prefix is a run of
// the letters c, s, a, m (case-insensitive, any order) and a "-" separator.
// The base key must be a single character, a run of letters, or f1-f12;
// the aliases in keyAliases are accepted.
func ParseKeyCode(code string) (KeyPress, error) {
	// The separator is also a legal key, so bare "-" is special-cased.
	if code == "-" {
		return KeyPress{Key: "-"}, nil
	}

	var mods Modifier
	base := code
	if i := strings.IndexByte(code, '-'); i >= 0 {
		modPart, keyPart := code[:i], code[i+1:]
		if modPart == "" || keyPart == "" {
			return KeyPress{}, fmt.Errorf("%w: %q", ErrInvalidKeyCode, code)
		}
		for _, r := range strings.ToLower(modPart) {
			switch r {
			case 'c':
				mods = mods.With(ModCtrl)
			case 's':
				mods = mods.With(ModShift)
			case 'a':
				mods = mods.With(ModAlt)
			case 'm':
				mods = mods.With(ModMeta)
			default:
				return KeyPress{}, fmt.Errorf("%w: %q", ErrInvalidModifier, string(r))
			}
		}
		base = keyPart
	}

	if utf8.RuneCountInString(base) > 1 {
		base = strings.ToLower(base)
	}
	if alias, ok := keyAliases[base]; ok {
		base = alias
	}
	if !validKeyName(base) {
		return KeyPress{}, fmt.Errorf("%w: %q", ErrInvalidKeyCode, code)
	}

	return New(base, mods), nil
}

// validKeyName reports whether name matches the accepted base-key grammar:
// exactly one character of any kind, a run of letters, or f1-f12.
func validKeyName(name string) bool {
	if name == "" {
		return false
	}
	if utf8.RuneCountInString(name) == 1 {
		return true
	}
	if fkeyPattern.MatchString(name) {
		return true
	}
	for _, r := range name {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// Code renders the key press as its canonical token, the inverse of
// ParseKeyCode. Modifier letters appear in the fixed order c, s, a, m.
func (kp KeyPress) Code() string {
	name := kp.Key
	if short, ok := codeNames[name]; ok {
		name = short
	}
	if kp.Mods.IsEmpty() {
		return name
	}

	var b strings.Builder
	if kp.Mods.Has(ModCtrl) {
		b.WriteByte('c')
	}
	if kp.Mods.Has(ModShift) {
		b.WriteByte('s')
	}
	if kp.Mods.Has(ModAlt) {
		b.WriteByte('a')
	}
	if kp.Mods.Has(ModMeta) {
		b.WriteByte('m')
	}
	b.WriteByte('-')
	b.WriteString(name)
	return b.String()
}

// MustParseKeyCode parses a key code and panics on error.
// Use only for known-valid codes in initialization code.
func MustParseKeyCode(code string) KeyPress {
	kp, err := ParseKeyCode(code)
	if err != nil {
		panic("invalid key code: " + code + ": " + err.Error())
	}
	return kp
}
