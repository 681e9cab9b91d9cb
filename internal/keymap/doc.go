// Package keymap provides the keymap tree consumed at keystroke time.
//
// A keymap is a rooted tree of items keyed by key presses. There are three
// item variants:
//
//   - Group: an ordered set of child bindings (a prefix with continuations)
//   - Command: a binding to a host command id
//   - FileRef: a binding to a file to open
//
// The tree is built by the parser subpackage and replaced wholesale on
// reload; nothing mutates a tree that is in active use. Lookup walks the
// tree one key press at a time:
//
//	item := root.Find(sequence, false)
//	switch it := item.(type) {
//	case *keymap.Group:
//	    // valid prefix, keep collecting keys
//	case keymap.Command:
//	    // execute it.ID
//	case keymap.FileRef:
//	    // open it.Path
//	case nil:
//	    // unassigned sequence
//	}
package keymap
