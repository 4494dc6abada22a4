// Package terminal renders the document hierarchy as an ANSI-colored outline.
package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/term"
	"github.com/sonnes/mkwiki/core"
	"github.com/sonnes/mkwiki/tree"
)

const defaultWidth = 100

// Renderer pretty-prints a document tree to the terminal.
type Renderer struct {
	// Width overrides terminal width detection. Zero means auto-detect.
	Width int

	// Collapse hides the contents of directories not in Open.
	Collapse bool

	// Open marks directories to highlight (and to show when Collapse is set).
	Open tree.Expanded

	// ShowHrefs appends each page's link target.
	ShowHrefs bool
}

// New creates a terminal Renderer.
func New() *Renderer {
	return &Renderer{}
}

// RenderIndex writes the tree as an indented outline to w.
func (r *Renderer) RenderIndex(w io.Writer, t *tree.Tree) error {
	width := r.termWidth()

	var dirs, pages int
	t.Walk(func(n tree.Node, depth int) bool {
		indent := styleGuide.Render(strings.Repeat("│ ", depth-1))
		switch n := n.(type) {
		case *tree.Dir:
			dirs++
			open := r.Open.Open(n)
			marker, style := "▸ ", styleDir
			if open {
				marker, style = "▾ ", styleOpenDir
			}
			fmt.Fprintln(w, indent+style.Render(marker+n.Name()+"/"))
			return open || !r.Collapse
		case *tree.Doc:
			pages++
			line := stylePage.Render("• " + core.Label(n.Name()))
			if r.ShowHrefs {
				line += "  " + styleHref.Render(n.Href)
			}
			fmt.Fprintln(w, truncate(indent+line, width))
		}
		return true
	})

	fmt.Fprintln(w)
	fmt.Fprintln(w, styleSummary.Render(fmt.Sprintf("%d pages in %d directories", pages, dirs)))
	return nil
}

func (r *Renderer) termWidth() int {
	if r.Width > 0 {
		return r.Width
	}
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		return w
	}
	return defaultWidth
}

// truncate shortens a styled line to maxWidth cells, appending "...".
func truncate(s string, maxWidth int) string {
	if maxWidth < 4 {
		maxWidth = 4
	}
	if lipgloss.Width(s) <= maxWidth {
		return s
	}
	return ansi.Truncate(s, maxWidth, "...")
}
