package html

import (
	"html/template"
	"strconv"
	"strings"

	"github.com/sonnes/mkwiki/core"
	"github.com/sonnes/mkwiki/tree"
)

// indentStep is the left margin in pixels added per nesting level.
const indentStep = 10

// IndexFragment renders t as nested collapsible groups. Directories in open
// are marked expanded; a nil set leaves every group collapsed.
func IndexFragment(t *tree.Tree, open tree.Expanded) template.HTML {
	return indexFragment(t, open, "")
}

// indexFragment is IndexFragment with prefix prepended to every page link.
func indexFragment(t *tree.Tree, open tree.Expanded, prefix string) template.HTML {
	var b strings.Builder
	writeChildren(&b, t.Root, 1, open, prefix)
	return template.HTML(b.String())
}

func writeChildren(b *strings.Builder, d *tree.Dir, depth int, open tree.Expanded, prefix string) {
	for _, c := range d.Children {
		switch n := c.(type) {
		case *tree.Doc:
			writeLeaf(b, n, depth, prefix)
		case *tree.Dir:
			writeGroup(b, n, depth, open, prefix)
		}
	}
}

func writeLeaf(b *strings.Builder, n *tree.Doc, depth int, prefix string) {
	b.WriteString(`<a href="` + template.HTMLEscapeString(prefix+n.Href) + `" style="` + margin(depth) + `">`)
	b.WriteString(template.HTMLEscapeString(core.Label(n.Name())))
	b.WriteString("</a><br>\n")
}

func writeGroup(b *strings.Builder, n *tree.Dir, depth int, open tree.Expanded, prefix string) {
	b.WriteString("<details ")
	if open.Open(n) {
		b.WriteString("open ")
	}
	b.WriteString(`style="` + margin(depth) + `">` + "\n")
	b.WriteString("<summary>" + template.HTMLEscapeString(n.Name()) + "</summary>\n")
	writeChildren(b, n, depth+1, open, prefix)
	b.WriteString("</details>\n")
}

func margin(depth int) string {
	return "margin-left:" + strconv.Itoa(depth*indentStep) + "px"
}
