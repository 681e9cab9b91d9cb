package capture

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestFromEventRunes(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want string
	}{
		{"plain letter", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), "a"},
		{"uppercase letter", tcell.NewEventKey(tcell.KeyRune, 'A', tcell.ModShift), "A"},
		{"question mark drops shift", tcell.NewEventKey(tcell.KeyRune, '?', tcell.ModShift), "?"},
		{"space keeps shift", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModShift), "s-spc"},
		{"alt rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt), "a-x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kp, ok := FromEvent(tt.ev)
			if !ok {
				t.Fatal("FromEvent returned false")
			}
			if kp.Code() != tt.want {
				t.Errorf("Code = %q, want %q", kp.Code(), tt.want)
			}
		})
	}
}

func TestFromEventSpecialKeys(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want string
	}{
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), "enter"},
		{"ctrl enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModCtrl), "c-enter"},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), "escape"},
		{"arrow up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), "up"},
		{"shift arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModShift), "s-left"},
		{"function key", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), "f5"},
		{"backtab is shift tab", tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModNone), "s-tab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kp, ok := FromEvent(tt.ev)
			if !ok {
				t.Fatal("FromEvent returned false")
			}
			if kp.Code() != tt.want {
				t.Errorf("Code = %q, want %q", kp.Code(), tt.want)
			}
		})
	}
}

func TestFromEventCtrlLetters(t *testing.T) {
	// Ctrl+S arrives as the control character, not as a rune event.
	kp, ok := FromEvent(tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl))
	if !ok {
		t.Fatal("FromEvent returned false")
	}
	if kp.Code() != "c-s" {
		t.Errorf("Code = %q, want c-s", kp.Code())
	}
}
