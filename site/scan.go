package site

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sonnes/mkwiki/core"
)

// Scan walks root and returns every document with extension ext, sorted
// case-insensitively by output path. Hidden files and directories (name
// starting with ".") are skipped, as is skip when it lies inside root.
func Scan(root, ext, skip string) ([]core.Document, error) {
	var skipAbs string
	if skip != "" {
		abs, err := filepath.Abs(skip)
		if err != nil {
			return nil, err
		}
		skipAbs = abs
	}

	var docs []core.Document
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if skipAbs != "" {
				if abs, err := filepath.Abs(path); err == nil && abs == skipAbs {
					return filepath.SkipDir
				}
			}
			return nil
		}
		if filepath.Ext(path) != ext {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		docs = append(docs, core.NewDocument(filepath.ToSlash(rel)))
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(docs, func(i, j int) bool {
		return strings.ToLower(docs[i].Path) < strings.ToLower(docs[j].Path)
	})
	return docs, nil
}

// Paths returns the output-relative path of every document in order.
func Paths(docs []core.Document) []string {
	out := make([]string, len(docs))
	for i, d := range docs {
		out[i] = d.Path
	}
	return out
}
