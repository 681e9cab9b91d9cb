package keymap

import (
	"sort"

	"github.com/dshills/leaderkey/internal/input/key"
)

// Suggestions returns the group's children in display order: groups first,
// then file references, then commands, ordered by key press within each
// class.
func (g *Group) Suggestions() []Child {
	out := g.Children()
	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := classRank(out[i].Item), classRank(out[j].Item)
		if ri != rj {
			return ri < rj
		}
		return key.Compare(out[i].Key, out[j].Key) < 0
	})
	return out
}

func classRank(item Item) int {
	switch item.(type) {
	case *Group:
		return 0
	case FileRef:
		return 1
	default:
		return 2
	}
}
