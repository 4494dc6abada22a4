package core

// ManifestEntry holds lightweight metadata for a single built page, used by
// the manifest file and by the tree command when reading a previous build.
type ManifestEntry struct {
	Source string `json:"source"`
	Path   string `json:"path"`
	Title  string `json:"title,omitempty"`
	Href   string `json:"href"`
	Edit   string `json:"edit,omitempty"`
}

// NewManifestEntry extracts metadata from a Document and pairs it with its
// public href and edit link.
func NewManifestEntry(d Document, href, edit string) ManifestEntry {
	return ManifestEntry{
		Source: d.Source,
		Path:   d.Path,
		Title:  d.Title,
		Href:   href,
		Edit:   edit,
	}
}
