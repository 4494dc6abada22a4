package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitPath(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"single file", "a.html", []string{"a.html"}},
		{"nested", "a/b/c.html", []string{"a", "b", "c.html"}},
		{"leading slash", "/a/b.html", []string{"a", "b.html"}},
		{"double slash", "a//b.html", []string{"a", "b.html"}},
		{"dot segment", "./a/b.html", []string{"a", "b.html"}},
		{"empty", "", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitPath(tt.in))
		})
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"README.md", "README.html"},
		{"guides/setup.md", "guides/setup.html"},
		{"notes.v2.md", "notes.v2.html"},
		{"plain", "plain.html"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, OutputPath(tt.in), "OutputPath(%q)", tt.in)
	}
}

func TestJoinURL(t *testing.T) {
	tests := []struct {
		name string
		base string
		rel  string
		want string
	}{
		{"empty base", "", "a/b.html", "a/b.html"},
		{"absolute url", "https://wiki.example.com", "a/b.html", "https://wiki.example.com/a/b.html"},
		{"trailing slash", "https://wiki.example.com/", "a/b.html", "https://wiki.example.com/a/b.html"},
		{"local preview", "/home/user/out", "index.html", "/home/user/out/index.html"},
		{"leading slash rel", "/srv", "/a.html", "/srv/a.html"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, JoinURL(tt.base, tt.rel))
		})
	}
}

func TestNewDocument(t *testing.T) {
	d := NewDocument("a/b/c.md")
	assert.Equal(t, "a/b/c.md", d.Source)
	assert.Equal(t, "a/b/c.html", d.Path)
	assert.Equal(t, []string{"a", "b", "c.html"}, d.Segments())
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "setup", Label("setup.html"))
	assert.Equal(t, "notes.v2", Label("notes.v2.html"))
	assert.Equal(t, "raw", Label("raw"))
}
