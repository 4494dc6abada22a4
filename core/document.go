// Package core defines the document model shared by the tree builder, the
// renderers and the site driver: one Markdown source file mapped to one HTML
// output file.
package core

// Document is a single source file discovered under the source root.
type Document struct {
	Source string `json:"source"`          // source-relative path, e.g. "guides/setup.md"
	Path   string `json:"path"`            // output-relative path, e.g. "guides/setup.html"
	Title  string `json:"title,omitempty"` // first heading, filled in after conversion
}

// NewDocument pairs a source-relative path with its output path. src uses
// forward slashes regardless of platform.
func NewDocument(src string) Document {
	return Document{
		Source: src,
		Path:   OutputPath(src),
	}
}

// Segments splits the output path into directory names followed by the
// output file name.
func (d Document) Segments() []string {
	return SplitPath(d.Path)
}
