package key

import "testing"

func TestModifierOperations(t *testing.T) {
	m := ModNone.With(ModCtrl).With(ModShift)

	if !m.Has(ModCtrl) || !m.Has(ModShift) {
		t.Error("With did not set the modifiers")
	}
	if m.Has(ModAlt) || m.Has(ModMeta) {
		t.Error("unset modifiers reported as set")
	}

	m = m.Without(ModShift)
	if m.Has(ModShift) {
		t.Error("Without did not clear the modifier")
	}
	if !m.Has(ModCtrl) {
		t.Error("Without cleared an unrelated modifier")
	}

	if !ModNone.IsEmpty() {
		t.Error("ModNone should be empty")
	}
	if m.IsEmpty() {
		t.Error("modifier with ctrl should not be empty")
	}
}

func TestModifierString(t *testing.T) {
	tests := []struct {
		mods Modifier
		want string
	}{
		{ModNone, ""},
		{ModCtrl, "Ctrl"},
		{ModCtrl | ModShift, "Ctrl+Shift"},
		{ModMeta | ModAlt | ModShift | ModCtrl, "Ctrl+Shift+Alt+Meta"},
	}

	for _, tt := range tests {
		if got := tt.mods.String(); got != tt.want {
			t.Errorf("String(%b) = %q, want %q", tt.mods, got, tt.want)
		}
	}
}
