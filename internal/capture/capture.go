// Package capture translates terminal key events into canonical key
// presses. It backs the keycode-capture utility: press a key, read off the
// token to paste into a keymap document.
package capture

import (
	"fmt"
	"io"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/leaderkey/internal/input/key"
)

// specialKeys maps tcell named keys to canonical base key names.
var specialKeys = map[tcell.Key]string{
	tcell.KeyEnter:      "enter",
	tcell.KeyEscape:     "escape",
	tcell.KeyTab:        "tab",
	tcell.KeyBacktab:    "tab",
	tcell.KeyBackspace:  "backspace",
	tcell.KeyBackspace2: "backspace",
	tcell.KeyDelete:     "delete",
	tcell.KeyInsert:     "insert",
	tcell.KeyHome:       "home",
	tcell.KeyEnd:        "end",
	tcell.KeyPgUp:       "pageup",
	tcell.KeyPgDn:       "pagedown",
	tcell.KeyUp:         "arrowup",
	tcell.KeyDown:       "arrowdown",
	tcell.KeyLeft:       "arrowleft",
	tcell.KeyRight:      "arrowright",
	tcell.KeyF1:         "f1",
	tcell.KeyF2:         "f2",
	tcell.KeyF3:         "f3",
	tcell.KeyF4:         "f4",
	tcell.KeyF5:         "f5",
	tcell.KeyF6:         "f6",
	tcell.KeyF7:         "f7",
	tcell.KeyF8:         "f8",
	tcell.KeyF9:         "f9",
	tcell.KeyF10:        "f10",
	tcell.KeyF11:        "f11",
	tcell.KeyF12:        "f12",
}

// FromEvent translates a tcell key event into a KeyPress. Returns false
// for events with no canonical representation.
func FromEvent(ev *tcell.EventKey) (key.KeyPress, bool) {
	var mods key.Modifier
	if ev.Modifiers()&tcell.ModCtrl != 0 {
		mods = mods.With(key.ModCtrl)
	}
	if ev.Modifiers()&tcell.ModShift != 0 {
		mods = mods.With(key.ModShift)
	}
	if ev.Modifiers()&tcell.ModAlt != 0 {
		mods = mods.With(key.ModAlt)
	}
	if ev.Modifiers()&tcell.ModMeta != 0 {
		mods = mods.With(key.ModMeta)
	}
	if ev.Key() == tcell.KeyBacktab {
		mods = mods.With(key.ModShift)
	}

	name, ok := specialKeys[ev.Key()]
	switch {
	case ok:
		// Named key.
	case ev.Key() == tcell.KeyRune:
		name = string(ev.Rune())
	case ev.Key() >= tcell.KeyCtrlA && ev.Key() <= tcell.KeyCtrlZ:
		// Terminals report Ctrl+letter as a control character.
		name = string(rune('a' + ev.Key() - tcell.KeyCtrlA))
		mods = mods.With(key.ModCtrl)
	default:
		return key.KeyPress{}, false
	}

	return key.New(name, mods), true
}

// Run polls key events from the screen and writes the canonical token of
// each press to w, one per line. A bare Escape ends the loop.
func Run(screen tcell.Screen, w io.Writer) error {
	for {
		ev := screen.PollEvent()
		switch e := ev.(type) {
		case *tcell.EventKey:
			kp, ok := FromEvent(e)
			if !ok {
				continue
			}
			if kp.Key == "escape" && kp.Mods.IsEmpty() {
				return nil
			}
			if _, err := fmt.Fprintf(w, "%s\t%s\n", kp.Code(), kp); err != nil {
				return err
			}
		case *tcell.EventResize:
			screen.Sync()
		case nil:
			return nil
		}
	}
}
