// Package html renders wiki pages and the wiki index as standalone HTML
// documents. Markdown is converted with goldmark and fenced code is
// highlighted with chroma.
package html

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/sonnes/mkwiki/core"
	"github.com/sonnes/mkwiki/tree"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
)

// DefaultStyle is the chroma style used when Options.HighlightStyle is empty.
const DefaultStyle = "github"

// Options configures links, labels and highlighting.
type Options struct {
	Title          string // site title, used on the index page and as fallback page title
	BaseURL        string // prefix for page links; empty keeps links root-relative
	EditBaseURL    string // prefix for edit links; empty omits the link
	BackLabel      string
	EditLabel      string
	IndexLabel     string
	HighlightStyle string
}

// Renderer converts Markdown and assembles pages around it.
type Renderer struct {
	// Open lists the groups RenderIndex emits expanded. Pages compute their
	// own set and ignore it.
	Open tree.Expanded

	md   goldmark.Markdown
	tmpl *template.Template
	opts Options
}

// New creates an HTML Renderer with goldmark configured for GFM and syntax
// highlighting. Empty labels fall back to English defaults.
func New(opts Options) *Renderer {
	if opts.Title == "" {
		opts.Title = "Wiki"
	}
	if opts.BackLabel == "" {
		opts.BackLabel = "Back to index"
	}
	if opts.EditLabel == "" {
		opts.EditLabel = "Edit this page"
	}
	if opts.IndexLabel == "" {
		opts.IndexLabel = "Index"
	}
	if opts.HighlightStyle == "" {
		opts.HighlightStyle = DefaultStyle
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Footnote,
			extension.Typographer,
			highlighting.NewHighlighting(
				highlighting.WithStyle(opts.HighlightStyle),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(false), // inline styles for standalone pages
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			gmhtml.WithUnsafe(), // allow raw HTML in markdown
		),
	)

	tmpl := template.Must(
		template.New("page.html").ParseFS(content, "templates/*.html"),
	)

	return &Renderer{md: md, tmpl: tmpl, opts: opts}
}

// Converted is the result of converting one Markdown document.
type Converted struct {
	HTML  template.HTML
	Title string // text of the first heading, empty when there is none
}

// Convert turns Markdown source into an HTML fragment.
func (r *Renderer) Convert(src []byte) (Converted, error) {
	doc := r.md.Parser().Parse(text.NewReader(src))

	var buf bytes.Buffer
	if err := r.md.Renderer().Render(&buf, src, doc); err != nil {
		return Converted{}, fmt.Errorf("goldmark render: %w", err)
	}
	return Converted{
		HTML:  template.HTML(buf.String()),
		Title: firstHeading(doc, src),
	}, nil
}

// pageData is the template data passed to page.html.
type pageData struct {
	PageTitle  string
	IndexHref  string
	EditHref   string
	BackLabel  string
	EditLabel  string
	IndexLabel string
	Nav        template.HTML // page-local index, ancestors expanded
	Content    template.HTML
}

// indexData is the template data passed to index.html.
type indexData struct {
	Title      string
	IndexLabel string
	Index      template.HTML
	Readme     template.HTML
}

// RenderPage writes a complete HTML page for doc to w. When t is non-nil the
// page carries its own copy of the index with doc's directories expanded.
// Without a base URL, links are made relative to doc's directory.
func (r *Renderer) RenderPage(w io.Writer, doc core.Document, body template.HTML, t *tree.Tree) error {
	title := doc.Title
	if title == "" {
		title = r.opts.Title
	}
	var up string
	if n := len(core.SplitPath(doc.Path)) - 1; r.opts.BaseURL == "" && n > 0 {
		up = strings.Repeat("../", n)
	}
	data := pageData{
		PageTitle:  title,
		IndexHref:  up + r.IndexHref(),
		EditHref:   r.EditHref(doc),
		BackLabel:  r.opts.BackLabel,
		EditLabel:  r.opts.EditLabel,
		IndexLabel: r.opts.IndexLabel,
		Content:    body,
	}
	if t != nil {
		data.Nav = indexFragment(t, t.Expand(doc.Path), up)
	}
	return r.tmpl.ExecuteTemplate(w, "page.html", data)
}

// RenderIndexPage writes the wiki's index page: the master index with nothing
// expanded, followed by readme (may be empty).
func (r *Renderer) RenderIndexPage(w io.Writer, t *tree.Tree, readme template.HTML) error {
	return r.tmpl.ExecuteTemplate(w, "index.html", indexData{
		Title:      r.opts.Title,
		IndexLabel: r.opts.IndexLabel,
		Index:      IndexFragment(t, nil),
		Readme:     readme,
	})
}

// RenderIndex writes only the master index fragment to w.
func (r *Renderer) RenderIndex(w io.Writer, t *tree.Tree) error {
	_, err := io.WriteString(w, string(IndexFragment(t, r.Open)))
	return err
}

// IndexHref is the link back to the generated index page.
func (r *Renderer) IndexHref() string {
	return core.JoinURL(r.opts.BaseURL, core.IndexFile)
}

// EditHref is the edit link for doc, or "" when no edit base URL is set.
func (r *Renderer) EditHref(doc core.Document) string {
	if r.opts.EditBaseURL == "" {
		return ""
	}
	return core.JoinURL(r.opts.EditBaseURL, doc.Source)
}
