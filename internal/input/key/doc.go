// Package key provides the key press value type and the key-code grammar.
//
// This package defines the fundamental types for representing a single
// keystroke after the leader key:
//
//   - Modifier: modifier key flags (Ctrl, Shift, Alt, Meta)
//   - KeyPress: one keystroke (base key name plus modifiers)
//
// # Key Codes
//
// Configuration documents denote key presses with short textual tokens:
//
//   - Single characters: "a", "A", "?", "-"
//   - Named keys: "enter", "escape", "tab", "f5"
//   - Aliases: "spc"/"space" for the space character, "up"/"down"/
//     "left"/"right" for the arrow keys
//   - With modifiers: "c-enter", "csm-p", "a-f4"
//
// ParseKeyCode converts a token to a KeyPress and KeyPress.Code converts
// back; the two are inverses for every constructible KeyPress.
//
// # Shift Normalization
//
// For single printable characters other than space, the reported character
// already reflects the Shift state ("?" versus "/"), so the Shift flag is
// meaningless and is cleared at construction time. "s-/" and "?" therefore
// denote two distinct presses, not the same one.
package key
