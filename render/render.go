// Package render defines the interface for rendering the document hierarchy
// into various output formats.
package render

import (
	"io"

	"github.com/sonnes/mkwiki/tree"
)

// IndexRenderer writes a document tree to the given writer in a specific format.
type IndexRenderer interface {
	RenderIndex(w io.Writer, t *tree.Tree) error
}
