// Package site drives a full wiki build: scan the source tree, convert every
// document, write one page per document and the index page.
package site

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/sonnes/mkwiki/config"
	"github.com/sonnes/mkwiki/core"
	"github.com/sonnes/mkwiki/manifest"
	htmlrender "github.com/sonnes/mkwiki/render/html"
	"github.com/sonnes/mkwiki/tree"
)

// Builder renders one wiki according to its config.
type Builder struct {
	cfg  config.Config
	html *htmlrender.Renderer
}

// Result summarizes a finished build.
type Result struct {
	Documents    []core.Document
	Readme       bool   // whether the readme preamble was found
	IndexPath    string // file path of the written index page
	ManifestPath string // empty unless the manifest was enabled
}

// New creates a Builder. cfg should already be validated.
func New(cfg config.Config) *Builder {
	return &Builder{
		cfg: cfg,
		html: htmlrender.New(htmlrender.Options{
			Title:          cfg.Title,
			BaseURL:        cfg.BaseURL,
			EditBaseURL:    cfg.EditBaseURL,
			BackLabel:      cfg.Labels.Back,
			EditLabel:      cfg.Labels.Edit,
			IndexLabel:     cfg.Labels.Index,
			HighlightStyle: cfg.HighlightStyle,
		}),
	}
}

// Build runs the whole pipeline once. Any filesystem error aborts it; a
// missing readme yields an empty preamble.
func (b *Builder) Build(ctx context.Context) (*Result, error) {
	docs, err := Scan(b.cfg.SourceRoot, b.cfg.Extension, b.cfg.OutputRoot)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", b.cfg.SourceRoot, err)
	}
	log.Debug("scanned source", "root", b.cfg.SourceRoot, "documents", len(docs))

	t := tree.Build(Paths(docs), b.cfg.BaseURL)

	readme, err := b.writePages(ctx, docs, t)
	if err != nil {
		return nil, err
	}
	if readme == "" {
		log.Debug("no readme found", "name", b.cfg.ReadmeFileName)
	}

	res := &Result{
		Documents: docs,
		Readme:    readme != "",
		IndexPath: filepath.Join(b.cfg.OutputRoot, core.IndexFile),
	}

	var buf bytes.Buffer
	if err := b.html.RenderIndexPage(&buf, t, readme); err != nil {
		return nil, fmt.Errorf("render index: %w", err)
	}
	if err := writeFile(res.IndexPath, buf.Bytes()); err != nil {
		return nil, err
	}
	log.Debug("wrote index", "path", res.IndexPath)

	if b.cfg.Manifest {
		res.ManifestPath = filepath.Join(b.cfg.OutputRoot, manifest.FileName)
		if err := b.writeManifest(res.ManifestPath, docs); err != nil {
			return nil, fmt.Errorf("write manifest: %w", err)
		}
	}

	return res, nil
}

// writePages converts and writes every document. It returns the converted
// readme content, or "" when the source root has none.
func (b *Builder) writePages(ctx context.Context, docs []core.Document, t *tree.Tree) (template.HTML, error) {
	var readme template.HTML
	for i := range docs {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		doc := &docs[i]

		src, err := os.ReadFile(filepath.Join(b.cfg.SourceRoot, filepath.FromSlash(doc.Source)))
		if err != nil {
			return "", fmt.Errorf("read %s: %w", doc.Source, err)
		}
		conv, err := b.html.Convert(src)
		if err != nil {
			return "", fmt.Errorf("convert %s: %w", doc.Source, err)
		}
		doc.Title = conv.Title
		if doc.Title == "" {
			doc.Title = strings.TrimSuffix(filepath.Base(doc.Source), b.cfg.Extension)
		}
		if strings.EqualFold(doc.Source, b.cfg.ReadmeFileName) {
			readme = conv.HTML
		}

		var buf bytes.Buffer
		if err := b.html.RenderPage(&buf, *doc, conv.HTML, t); err != nil {
			return "", fmt.Errorf("render %s: %w", doc.Source, err)
		}
		out := filepath.Join(b.cfg.OutputRoot, filepath.FromSlash(doc.Path))
		if err := writeFile(out, buf.Bytes()); err != nil {
			return "", err
		}
		log.Debug("wrote page", "source", doc.Source, "path", out)
	}
	return readme, nil
}

func (b *Builder) writeManifest(path string, docs []core.Document) error {
	m := &manifest.Manifest{}
	for _, d := range docs {
		m.Upsert(core.NewManifestEntry(d, core.JoinURL(b.cfg.BaseURL, d.Path), b.html.EditHref(d)))
	}
	return m.WriteFile(path)
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
