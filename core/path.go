package core

import (
	"path"
	"strings"
)

// OutputExt is the extension given to every rendered page.
const OutputExt = ".html"

// IndexFile is the name of the generated index page at the output root.
const IndexFile = "index" + OutputExt

// SplitPath splits a slash-separated relative path into its segments.
// Empty segments (leading, trailing or doubled slashes) are dropped.
func SplitPath(rel string) []string {
	parts := strings.Split(rel, "/")
	out := parts[:0]
	for _, p := range parts {
		if p != "" && p != "." {
			out = append(out, p)
		}
	}
	return out
}

// OutputPath replaces the extension of a source-relative path with OutputExt.
// "notes/a.md" becomes "notes/a.html"; a path without extension gains one.
func OutputPath(src string) string {
	return strings.TrimSuffix(src, path.Ext(src)) + OutputExt
}

// JoinURL prefixes rel with base. An empty base yields rel unchanged, which
// keeps links root-relative. Unlike path.Join it leaves the scheme of an
// absolute URL ("https://host") intact.
func JoinURL(base, rel string) string {
	if base == "" {
		return rel
	}
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(rel, "/")
}

// Label is the visible name of a page: its file name without OutputExt.
func Label(name string) string {
	return strings.TrimSuffix(name, OutputExt)
}
