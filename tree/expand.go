package tree

import (
	"strings"

	"github.com/sonnes/mkwiki/core"
)

// Expanded is the set of directories rendered open by default.
// A nil set expands nothing.
type Expanded map[*Dir]bool

// Open reports whether d is in the set.
func (e Expanded) Open(d *Dir) bool {
	return e[d]
}

// Expand returns the ancestor directories of the page at rel so that a page's
// own copy of the index shows where the page sits. Ancestors are matched by
// path, not by name. Unknown paths yield an empty set.
func (t *Tree) Expand(rel string) Expanded {
	segs := core.SplitPath(rel)
	out := make(Expanded, len(segs))
	for i := 1; i < len(segs); i++ {
		d, ok := t.dirs[strings.Join(segs[:i], "/")]
		if !ok {
			break
		}
		out[d] = true
	}
	return out
}
