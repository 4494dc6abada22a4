// Package json renders the document hierarchy as nested JSON objects.
package json

import (
	"encoding/json"
	"io"

	"github.com/sonnes/mkwiki/core"
	"github.com/sonnes/mkwiki/tree"
)

// Renderer renders a document tree to JSON.
type Renderer struct {
	// Indent controls pretty-printing. When true, output is indented.
	Indent bool
}

// New creates a JSON Renderer with indentation enabled.
func New() *Renderer {
	return &Renderer{Indent: true}
}

// Node is the JSON shape of one tree entry. Directories carry Children,
// pages carry Href and Path.
type Node struct {
	Name     string  `json:"name"`
	Label    string  `json:"label"`
	Path     string  `json:"path"`
	Href     string  `json:"href,omitempty"`
	Children []*Node `json:"children,omitempty"`
}

// RenderIndex writes the top-level entries of t as a JSON array.
func (r *Renderer) RenderIndex(w io.Writer, t *tree.Tree) error {
	enc := json.NewEncoder(w)
	if r.Indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(convert(t.Root).Children)
}

func convert(n tree.Node) *Node {
	switch n := n.(type) {
	case *tree.Doc:
		return &Node{
			Name:  n.Name(),
			Label: core.Label(n.Name()),
			Path:  n.Path,
			Href:  n.Href,
		}
	case *tree.Dir:
		out := &Node{
			Name:     n.Name(),
			Label:    n.Name(),
			Path:     n.Path(),
			Children: make([]*Node, 0, len(n.Children)),
		}
		for _, c := range n.Children {
			out.Children = append(out.Children, convert(c))
		}
		return out
	default:
		return nil
	}
}
