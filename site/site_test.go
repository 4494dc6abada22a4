package site

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sonnes/mkwiki/config"
	"github.com/sonnes/mkwiki/manifest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupSource creates a source tree from a map of relative path to content.
func setupSource(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "src")
	for rel, body := range files {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	}
	return dir
}

func testConfig(t *testing.T, src string) config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.SourceRoot = src
	cfg.OutputRoot = filepath.Join(t.TempDir(), "out")
	return cfg
}

func readOut(t *testing.T, cfg config.Config, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(cfg.OutputRoot, filepath.FromSlash(rel)))
	require.NoError(t, err)
	return string(data)
}

func TestScan(t *testing.T) {
	src := setupSource(t, map[string]string{
		"README.md":          "# Home",
		"beta.md":            "b",
		"Alpha.md":           "a",
		"guides/setup.md":    "s",
		"guides/notes.txt":   "ignored",
		".git/HEAD.md":       "ignored",
		"guides/.draft.md":   "ignored",
		".hidden/deep/x.md":  "ignored",
		"guides/.cache/y.md": "ignored",
		"Zeta/Deep/Thing.md": "z",
		"images/diagram.png": "ignored",
	})

	docs, err := Scan(src, ".md", "")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Alpha.html",
		"beta.html",
		"guides/setup.html",
		"README.html",
		"Zeta/Deep/Thing.html",
	}, Paths(docs))
	assert.Equal(t, "guides/setup.md", docs[2].Source)
}

func TestScanSkipsOutputInsideSource(t *testing.T) {
	src := setupSource(t, map[string]string{
		"a.md":          "a",
		"public/old.md": "stale copy",
	})

	docs, err := Scan(src, ".md", filepath.Join(src, "public"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a.html"}, Paths(docs))
}

func TestScanMissingRoot(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "missing"), ".md", "")
	assert.Error(t, err)
}

func TestBuild(t *testing.T) {
	src := setupSource(t, map[string]string{
		"README.md":  "# Welcome\n\nStart here.",
		"a/b.md":     "# Page B\n\nHello **b**.",
		"a/c.md":     "no heading",
		"d.md":       "# D",
		"a/skip.txt": "not a document",
	})
	cfg := testConfig(t, src)
	cfg.EditBaseURL = "https://git.example.com/edit/main"

	res, err := New(cfg).Build(context.Background())
	require.NoError(t, err)

	assert.Len(t, res.Documents, 4)
	assert.True(t, res.Readme)
	assert.Empty(t, res.ManifestPath)

	t.Run("pages mirror source tree", func(t *testing.T) {
		page := readOut(t, cfg, "a/b.html")
		assert.Contains(t, page, "<title>Page B</title>")
		assert.Contains(t, page, "<strong>b</strong>")
		assert.Contains(t, page, `href="https://git.example.com/edit/main/a/b.md"`)
		assert.Contains(t, page, `<a href="../index.html">Back to index</a>`)
		assert.Contains(t, page, `<a href="../d.html" style="margin-left:10px">d</a>`)

		_, err := os.Stat(filepath.Join(cfg.OutputRoot, "a", "skip.html"))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("title falls back to file name", func(t *testing.T) {
		assert.Contains(t, readOut(t, cfg, "a/c.html"), "<title>c</title>")
	})

	t.Run("page-local index expands own directory", func(t *testing.T) {
		page := readOut(t, cfg, "a/b.html")
		assert.Contains(t, page, "<nav class=\"wiki-index\">\n<details open>\n<summary>Index</summary>")
		assert.Contains(t, page, "<details open style=\"margin-left:10px\">\n<summary>a</summary>")

		top := readOut(t, cfg, "d.html")
		assert.Contains(t, top, "<nav class=\"wiki-index\">\n<details open>")
		assert.NotContains(t, top, "<details open style")
	})

	t.Run("index page", func(t *testing.T) {
		index := readOut(t, cfg, "index.html")
		assert.Contains(t, index, "<h2>Index</h2>")
		assert.Contains(t, index, "<summary>a</summary>")
		assert.Contains(t, index, `<a href="a/b.html" style="margin-left:20px">b</a>`)
		assert.Contains(t, index, `<a href="d.html" style="margin-left:10px">d</a>`)
		assert.Equal(t, 1, strings.Count(index, "Start here."))
		assert.NotContains(t, index, "<details open")
	})
}

func TestBuildWithoutReadme(t *testing.T) {
	src := setupSource(t, map[string]string{"a.md": "# A"})
	cfg := testConfig(t, src)

	res, err := New(cfg).Build(context.Background())
	require.NoError(t, err)
	assert.False(t, res.Readme)

	index := readOut(t, cfg, "index.html")
	assert.Contains(t, index, `<a href="a.html"`)
	assert.Contains(t, index, "</html>")
}

func TestBuildReadmeCaseInsensitive(t *testing.T) {
	src := setupSource(t, map[string]string{"readme.md": "Lower-case readme body"})
	cfg := testConfig(t, src)

	res, err := New(cfg).Build(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Readme)
	assert.Contains(t, readOut(t, cfg, "index.html"), "Lower-case readme body")
}

func TestBuildNestedReadmeIsNotPreamble(t *testing.T) {
	src := setupSource(t, map[string]string{"sub/README.md": "nested body"})
	cfg := testConfig(t, src)

	res, err := New(cfg).Build(context.Background())
	require.NoError(t, err)
	assert.False(t, res.Readme)
	assert.NotContains(t, readOut(t, cfg, "index.html"), "nested body")
}

func TestBuildBaseURL(t *testing.T) {
	src := setupSource(t, map[string]string{"a/b.md": "b"})
	cfg := testConfig(t, src)
	cfg.BaseURL = "https://wiki.example.com"

	_, err := New(cfg).Build(context.Background())
	require.NoError(t, err)

	assert.Contains(t, readOut(t, cfg, "index.html"), `href="https://wiki.example.com/a/b.html"`)
	assert.Contains(t, readOut(t, cfg, "a/b.html"), `href="https://wiki.example.com/index.html"`)
}

func TestBuildDeterministic(t *testing.T) {
	src := setupSource(t, map[string]string{
		"README.md": "# Home",
		"x/y.md":    "y",
		"z/y.md":    "y",
	})
	cfg := testConfig(t, src)

	_, err := New(cfg).Build(context.Background())
	require.NoError(t, err)
	first := readOut(t, cfg, "index.html")

	_, err = New(cfg).Build(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, readOut(t, cfg, "index.html"))
}

func TestBuildManifest(t *testing.T) {
	src := setupSource(t, map[string]string{
		"b.md":   "# Bee",
		"A/c.md": "c",
	})
	cfg := testConfig(t, src)
	cfg.Manifest = true

	res, err := New(cfg).Build(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, res.ManifestPath)

	m, err := manifest.ReadFile(res.ManifestPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"A/c.html", "b.html"}, m.Paths())
	assert.Equal(t, "Bee", m.Entries[1].Title)
}

func TestBuildMissingSource(t *testing.T) {
	cfg := testConfig(t, filepath.Join(t.TempDir(), "missing"))
	_, err := New(cfg).Build(context.Background())
	assert.Error(t, err)
}

func TestBuildCanceled(t *testing.T) {
	src := setupSource(t, map[string]string{"a.md": "a"})
	cfg := testConfig(t, src)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New(cfg).Build(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
