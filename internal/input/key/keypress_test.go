package key

import (
	"sort"
	"testing"
)

func TestNewNormalizes(t *testing.T) {
	tests := []struct {
		key      string
		mods     Modifier
		wantKey  string
		wantMods Modifier
	}{
		{"Enter", ModNone, "enter", ModNone},
		{"ENTER", ModShift, "enter", ModShift},
		{"A", ModNone, "A", ModNone},
		{"a", ModShift, "a", ModNone},
		{"?", ModCtrl | ModShift, "?", ModCtrl},
		{" ", ModShift, " ", ModShift},
	}

	for _, tt := range tests {
		kp := New(tt.key, tt.mods)
		if kp.Key != tt.wantKey {
			t.Errorf("New(%q, %v) key = %q, want %q", tt.key, tt.mods, kp.Key, tt.wantKey)
		}
		if kp.Mods != tt.wantMods {
			t.Errorf("New(%q, %v) mods = %v, want %v", tt.key, tt.mods, kp.Mods, tt.wantMods)
		}
	}
}

func TestShiftIgnored(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"a", true},
		{"?", true},
		{"-", true},
		{" ", false},
		{"enter", false},
		{"f1", false},
	}

	for _, tt := range tests {
		if got := ShiftIgnored(tt.key); got != tt.want {
			t.Errorf("ShiftIgnored(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestEquality(t *testing.T) {
	if New("enter", ModCtrl) != New("ENTER", ModCtrl) {
		t.Error("equal presses should compare equal after normalization")
	}
	if New("a", ModNone) == New("A", ModNone) {
		t.Error("single characters are case-sensitive")
	}
	if New("enter", ModCtrl) == New("enter", ModMeta) {
		t.Error("different modifiers should not compare equal")
	}
}

func TestCompareOrdering(t *testing.T) {
	// Named keys before single characters, then key string, then
	// modifiers in priority order ctrl, shift, alt, meta.
	want := []KeyPress{
		New("enter", ModNone),
		New("enter", ModMeta),
		New("enter", ModShift),
		New("enter", ModCtrl),
		New("tab", ModNone),
		New("A", ModNone),
		New("a", ModNone),
		New("a", ModCtrl),
	}

	got := make([]KeyPress, len(want))
	copy(got, want)
	// Shuffle deterministically by reversing.
	for i, j := 0, len(got)-1; i < j; i, j = i+1, j-1 {
		got[i], got[j] = got[j], got[i]
	}
	sort.Slice(got, func(i, j int) bool { return Compare(got[i], got[j]) < 0 })

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sorted[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestCompareReflexive(t *testing.T) {
	kp := New("enter", ModCtrl|ModAlt)
	if Compare(kp, kp) != 0 {
		t.Error("Compare(kp, kp) should be 0")
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		kp   KeyPress
		want string
	}{
		{New("a", ModNone), "a"},
		{New("enter", ModNone), "Enter"},
		{New("enter", ModCtrl|ModShift), "Ctrl+Shift+Enter"},
		{New(" ", ModNone), "Space"},
		{New("arrowup", ModNone), "Up"},
		{New("?", ModMeta), "Meta+?"},
	}

	for _, tt := range tests {
		if got := tt.kp.String(); got != tt.want {
			t.Errorf("String(%+v) = %q, want %q", tt.kp, got, tt.want)
		}
	}
}
