// Package tree builds the document hierarchy shown in the wiki index from a
// flat list of output-relative paths.
package tree

import (
	"strings"

	"github.com/sonnes/mkwiki/core"
)

// RootName is the name of the sentinel directory that holds top-level entries.
const RootName = "root"

// Node is either a *Dir or a *Doc.
type Node interface {
	Name() string
	node()
}

// Dir is an interior node representing a source directory.
type Dir struct {
	name     string
	path     string // joined segments from the root, "" for the root itself
	Children []Node
}

// Doc is a leaf node representing one rendered page.
type Doc struct {
	name string
	Path string // output-relative path, e.g. "a/b.html"
	Href string // link target, Path prefixed with the base URL
}

func (d *Dir) Name() string { return d.name }
func (d *Doc) Name() string { return d.name }

func (*Dir) node() {}
func (*Doc) node() {}

// Path returns the directory's slash-joined path from the root.
func (d *Dir) Path() string { return d.path }

// IsRoot reports whether d is the tree's sentinel.
func (d *Dir) IsRoot() bool { return d.path == "" }

// child returns the direct child named name, or nil.
func (d *Dir) child(name string) Node {
	for _, c := range d.Children {
		if c.Name() == name {
			return c
		}
	}
	return nil
}

// Tree owns the node graph rooted at Root. Directories are indexed by their
// path from the root, so two directories with the same name at different
// places never merge.
type Tree struct {
	Root    *Dir
	baseURL string
	dirs    map[string]*Dir
}

// New returns an empty tree whose leaf hrefs are prefixed with baseURL.
func New(baseURL string) *Tree {
	root := &Dir{name: RootName}
	return &Tree{
		Root:    root,
		baseURL: baseURL,
		dirs:    map[string]*Dir{"": root},
	}
}

// Build inserts every path in order. Callers sort paths beforehand; sibling
// order in the tree follows the input order.
func Build(paths []string, baseURL string) *Tree {
	t := New(baseURL)
	for _, p := range paths {
		t.Insert(p)
	}
	return t
}

// Insert adds the page at the output-relative path rel, creating any missing
// ancestor directories. Inserting a path whose leaf name already exists under
// the same parent is a no-op. It returns the leaf, or nil when nothing was
// added.
func (t *Tree) Insert(rel string) *Doc {
	segs := core.SplitPath(rel)
	if len(segs) == 0 {
		return nil
	}

	parent := t.Root
	for i, name := range segs[:len(segs)-1] {
		key := strings.Join(segs[:i+1], "/")
		dir, ok := t.dirs[key]
		if !ok {
			if existing := parent.child(name); existing != nil {
				// A page already owns this name; a directory cannot shadow it.
				return nil
			}
			dir = &Dir{name: name, path: key}
			parent.Children = append(parent.Children, dir)
			t.dirs[key] = dir
		}
		parent = dir
	}

	name := segs[len(segs)-1]
	if parent.child(name) != nil {
		return nil
	}
	p := strings.Join(segs, "/")
	doc := &Doc{
		name: name,
		Path: p,
		Href: core.JoinURL(t.baseURL, p),
	}
	parent.Children = append(parent.Children, doc)
	return doc
}

// Dir returns the directory at the slash-joined path, or nil.
func (t *Tree) Dir(path string) *Dir {
	return t.dirs[strings.Join(core.SplitPath(path), "/")]
}

// Walk visits every node below the root depth-first in child order. depth is
// 1 for top-level entries. Returning false from fn on a *Dir skips its
// children.
func (t *Tree) Walk(fn func(n Node, depth int) bool) {
	walk(t.Root, 1, fn)
}

func walk(d *Dir, depth int, fn func(Node, int) bool) {
	for _, c := range d.Children {
		descend := fn(c, depth)
		if sub, ok := c.(*Dir); ok && descend {
			walk(sub, depth+1, fn)
		}
	}
}

// Leaves returns every page in render order.
func (t *Tree) Leaves() []*Doc {
	var out []*Doc
	t.Walk(func(n Node, _ int) bool {
		if d, ok := n.(*Doc); ok {
			out = append(out, d)
		}
		return true
	})
	return out
}
