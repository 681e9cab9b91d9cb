package keymap

import (
	"testing"

	"github.com/dshills/leaderkey/internal/input/key"
)

func kp(code string) key.KeyPress {
	return key.MustParseKeyCode(code)
}

// buildTree returns root -> [f -> group -> [f -> commandA], q -> commandB].
func buildTree() *Group {
	sub := NewGroup()
	sub.SetChild(kp("f"), Command{ID: "commandA"})

	root := NewGroup()
	root.SetChild(kp("f"), sub)
	root.SetChild(kp("q"), Command{ID: "commandB"})
	return root
}

func TestFind(t *testing.T) {
	root := buildTree()

	tests := []struct {
		name   string
		seq    []key.KeyPress
		strict bool
		wantID string
		group  bool
		isNil  bool
	}{
		{name: "empty sequence returns root", seq: nil, group: true},
		{name: "prefix returns subgroup", seq: []key.KeyPress{kp("f")}, group: true},
		{name: "full path resolves command", seq: []key.KeyPress{kp("f"), kp("f")}, wantID: "commandA"},
		{name: "top-level command", seq: []key.KeyPress{kp("q")}, wantID: "commandB"},
		{name: "unassigned key", seq: []key.KeyPress{kp("z")}, isNil: true},
		{name: "typing past a command lenient", seq: []key.KeyPress{kp("f"), kp("f"), kp("q")}, wantID: "commandA"},
		{name: "typing past a command strict", seq: []key.KeyPress{kp("f"), kp("f"), kp("q")}, strict: true, isNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := root.Find(tt.seq, tt.strict)
			switch {
			case tt.isNil:
				if got != nil {
					t.Errorf("Find = %v, want nil", got)
				}
			case tt.group:
				if _, ok := got.(*Group); !ok {
					t.Errorf("Find = %T, want *Group", got)
				}
			default:
				cmd, ok := got.(Command)
				if !ok {
					t.Fatalf("Find = %T, want Command", got)
				}
				if cmd.ID != tt.wantID {
					t.Errorf("Find id = %q, want %q", cmd.ID, tt.wantID)
				}
			}
		})
	}
}

func TestFindEmptySequenceOnRoot(t *testing.T) {
	root := buildTree()
	if got := root.Find(nil, true); got != root {
		t.Errorf("Find(nil) = %v, want the root group itself", got)
	}
}

func TestSetChildReplacesInPlace(t *testing.T) {
	g := NewGroup()
	g.SetChild(kp("a"), Command{ID: "one"})
	g.SetChild(kp("b"), Command{ID: "two"})
	g.SetChild(kp("c"), Command{ID: "three"})

	prev := g.SetChild(kp("b"), Command{ID: "replacement"})
	cmd, ok := prev.(Command)
	if !ok || cmd.ID != "two" {
		t.Errorf("SetChild previous = %v, want command two", prev)
	}
	if g.Len() != 3 {
		t.Errorf("Len = %d, want 3", g.Len())
	}

	children := g.Children()
	if children[1].Key != kp("b") {
		t.Errorf("replaced child moved; children[1].Key = %v", children[1].Key)
	}
	if got := children[1].Item.(Command).ID; got != "replacement" {
		t.Errorf("children[1] id = %q, want replacement", got)
	}
}

func TestSetChildAppendsNewKeys(t *testing.T) {
	g := NewGroup()
	if prev := g.SetChild(kp("a"), Command{ID: "one"}); prev != nil {
		t.Errorf("SetChild on empty group returned %v, want nil", prev)
	}
	g.SetChild(kp("b"), Command{ID: "two"})

	children := g.Children()
	if children[0].Key != kp("a") || children[1].Key != kp("b") {
		t.Error("insertion order not preserved")
	}
}

func TestRemoveChild(t *testing.T) {
	g := NewGroup()
	g.SetChild(kp("a"), Command{ID: "one"})
	g.SetChild(kp("b"), Command{ID: "two"})

	removed := g.RemoveChild(kp("a"))
	if cmd, ok := removed.(Command); !ok || cmd.ID != "one" {
		t.Errorf("RemoveChild = %v, want command one", removed)
	}
	if g.Len() != 1 {
		t.Errorf("Len = %d, want 1", g.Len())
	}
	if g.GetChild(kp("a")) != nil {
		t.Error("removed child still present")
	}

	if removed := g.RemoveChild(kp("z")); removed != nil {
		t.Errorf("RemoveChild(missing) = %v, want nil", removed)
	}
	if g.Len() != 1 {
		t.Errorf("Len after no-op removal = %d, want 1", g.Len())
	}
}

func TestCopyIsShallow(t *testing.T) {
	sub := NewGroup()
	sub.SetChild(kp("x"), Command{ID: "nested"})

	g := NewGroup()
	g.Desc = "original"
	g.SetChild(kp("a"), Command{ID: "one"})
	g.SetChild(kp("s"), sub)

	cp := g.Copy()
	if cp.Desc != "original" {
		t.Errorf("Copy desc = %q, want %q", cp.Desc, "original")
	}

	// Mutating the copy's child list must not affect the original.
	cp.SetChild(kp("b"), Command{ID: "two"})
	cp.RemoveChild(kp("a"))
	if g.Len() != 2 {
		t.Errorf("original Len = %d after copy mutation, want 2", g.Len())
	}

	// Child items are shared by reference.
	if cp.GetChild(kp("s")) != Item(sub) {
		t.Error("nested group should be shared, not cloned")
	}
}

func TestWalk(t *testing.T) {
	root := buildTree()

	type visit struct {
		path string
		kind string
	}
	var visits []visit
	root.Walk(func(item Item, path []key.KeyPress) {
		codes := ""
		for i, p := range path {
			if i > 0 {
				codes += " "
			}
			codes += p.Code()
		}
		kind := "command"
		if _, ok := item.(*Group); ok {
			kind = "group"
		}
		visits = append(visits, visit{path: codes, kind: kind})
	})

	want := []visit{
		{"", "group"},
		{"f", "group"},
		{"f f", "command"},
		{"q", "command"},
	}
	if len(visits) != len(want) {
		t.Fatalf("visits = %v, want %v", visits, want)
	}
	for i := range want {
		if visits[i] != want[i] {
			t.Errorf("visit[%d] = %v, want %v", i, visits[i], want[i])
		}
	}
}

func TestAssignedCommands(t *testing.T) {
	root := buildTree()
	// Bind commandA a second time at top level.
	root.SetChild(kp("x"), Command{ID: "commandA"})

	assigned := root.AssignedCommands()
	if len(assigned) != 2 {
		t.Fatalf("len = %d, want 2", len(assigned))
	}
	if paths := assigned["commandA"]; len(paths) != 2 {
		t.Errorf("commandA paths = %d, want 2", len(paths))
	}
	if paths := assigned["commandB"]; len(paths) != 1 || len(paths[0]) != 1 || paths[0][0] != kp("q") {
		t.Errorf("commandB paths = %v", paths)
	}
}

func TestSuggestionsOrdering(t *testing.T) {
	g := NewGroup()
	g.SetChild(kp("z"), Command{ID: "late"})
	g.SetChild(kp("a"), Command{ID: "early"})
	g.SetChild(kp("n"), FileRef{Path: "notes.md"})
	g.SetChild(kp("g"), NewGroup())
	g.SetChild(kp("enter"), Command{ID: "named"})

	got := g.Suggestions()
	var keys []string
	for _, c := range got {
		keys = append(keys, c.Key.Code())
	}

	// Groups, then files, then commands; named keys before single
	// characters within a class.
	want := []string{"g", "n", "enter", "a", "z"}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("suggestion order = %v, want %v", keys, want)
		}
	}
}
