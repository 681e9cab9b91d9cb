package keymap

import (
	"github.com/dshills/leaderkey/internal/input/key"
)

// Child is one (key press, item) binding inside a group.
type Child struct {
	Key  key.KeyPress
	Item Item
}

// Group is an ordered collection of child bindings. It is the only item
// variant with children; the root of every keymap tree is a Group.
//
// Each group owns its children exclusively. At most one child exists per
// distinct key press; insertion order is preserved for stable iteration.
type Group struct {
	// Desc is an optional human-readable description.
	Desc string

	children []Child
}

// NewGroup creates an empty group.
func NewGroup() *Group {
	return &Group{}
}

// Describe returns the group's description.
func (g *Group) Describe() string { return g.Desc }

func (*Group) isItem() {}

// Len returns the number of children.
func (g *Group) Len() int { return len(g.children) }

// Children returns a copy of the child list in insertion order.
func (g *Group) Children() []Child {
	out := make([]Child, len(g.children))
	copy(out, g.children)
	return out
}

// SetChild binds item at kp. An existing binding for the same key press is
// replaced in place, preserving its position; otherwise the binding is
// appended. Returns the replaced item, or nil.
func (g *Group) SetChild(kp key.KeyPress, item Item) Item {
	for i, c := range g.children {
		if c.Key == kp {
			prev := c.Item
			g.children[i].Item = item
			return prev
		}
	}
	g.children = append(g.children, Child{Key: kp, Item: item})
	return nil
}

// GetChild returns the item bound at kp, or nil.
func (g *Group) GetChild(kp key.KeyPress) Item {
	for _, c := range g.children {
		if c.Key == kp {
			return c.Item
		}
	}
	return nil
}

// RemoveChild removes the binding at kp and returns the removed item, or
// nil if no binding existed.
func (g *Group) RemoveChild(kp key.KeyPress) Item {
	for i, c := range g.children {
		if c.Key == kp {
			g.children = append(g.children[:i], g.children[i+1:]...)
			return c.Item
		}
	}
	return nil
}

// Find walks seq one key press at a time starting at the group itself and
// returns the item the sequence selects, or nil if the sequence is
// unassigned.
//
// If the walk reaches a non-group item with keys still left in seq, the
// user kept typing past a complete binding: lenient mode (strict=false)
// returns that item anyway, strict mode treats the sequence as invalid.
// A Group result means the sequence is a valid prefix expecting more keys.
func (g *Group) Find(seq []key.KeyPress, strict bool) Item {
	var cur Item = g
	for _, kp := range seq {
		grp, ok := cur.(*Group)
		if !ok {
			if strict {
				return nil
			}
			return cur
		}
		next := grp.GetChild(kp)
		if next == nil {
			return nil
		}
		cur = next
	}
	return cur
}

// Copy returns a new group with the same description and a duplicated
// child list. Child items are shared, not cloned; Command and FileRef are
// immutable values and nested groups are only mutated through the
// copy-before-merge discipline of the parser.
func (g *Group) Copy() *Group {
	out := &Group{Desc: g.Desc}
	if len(g.children) > 0 {
		out.children = make([]Child, len(g.children))
		copy(out.children, g.children)
	}
	return out
}

// Visitor receives an item and the key path leading to it from the root.
// The path slice must not be modified.
type Visitor func(item Item, path []key.KeyPress)

// Walk traverses the tree depth-first in child order, visiting the group
// itself first with an empty path.
func (g *Group) Walk(visit Visitor) {
	g.walk(nil, visit)
}

func (g *Group) walk(path []key.KeyPress, visit Visitor) {
	visit(g, path)
	for _, c := range g.children {
		// Full slice expression so appends never share backing arrays
		// between sibling paths.
		childPath := append(path[:len(path):len(path)], c.Key)
		if sub, ok := c.Item.(*Group); ok {
			sub.walk(childPath, visit)
		} else {
			visit(c.Item, childPath)
		}
	}
}

// AssignedCommands collects every key path bound to a command, grouped by
// command id. A command may legitimately be reachable by several paths.
func (g *Group) AssignedCommands() map[string][][]key.KeyPress {
	out := make(map[string][][]key.KeyPress)
	g.Walk(func(item Item, path []key.KeyPress) {
		if cmd, ok := item.(Command); ok {
			out[cmd.ID] = append(out[cmd.ID], path)
		}
	})
	return out
}
