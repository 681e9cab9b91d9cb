package parser

import "github.com/dshills/leaderkey/internal/keymap"

// defaultDocument is the builtin keymap compiled into the binary. User
// documents extend it unless they opt out with clear.
const defaultDocument = `
items:
  spc: "palette:open Open the command palette"
  /: "search:open Search everywhere"
  f:
    description: Files
    items:
      f: "files:explorer Show the file explorer"
      r: "files:recent Open a recent file"
      n: "files:new Create a new file"
  w:
    description: Windows
    items:
      s: "window:split Split the window"
      c: "window:close Close the window"
      o: "window:only Close other windows"
  h:
    description: Help
    items:
      k: "help:keybindings List keybindings"
      h: "help:open Open help"
`

// Default returns a fresh tree of the builtin keymap. Each call parses a
// new tree so callers may extend or mutate the result freely.
func Default() *keymap.Group {
	group, err := ParseYAML(defaultDocument, nil)
	if err != nil {
		panic("builtin keymap is invalid: " + err.Error())
	}
	return group
}
