// Package fs finds resolution documents on the file system.
package fs

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/graphcache/internal/core/domain"
	"go.trai.ch/graphcache/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DocumentFinder = (*Finder)(nil)

var skipDirs = map[string]bool{
	".git":        true,
	".jj":         true,
	".graphcache": true,
}

// Finder implements ports.DocumentFinder.
// Files are returned as given, glob patterns expand to their sorted matches and
// directories are searched recursively for YAML documents.
type Finder struct{}

// NewFinder creates a new Finder.
func NewFinder() *Finder {
	return &Finder{}
}

// Find expands args in order. A path reached through several arguments is returned once.
func (f *Finder) Find(args []string) ([]string, error) {
	var docs []string
	seen := make(map[string]bool)
	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			docs = append(docs, path)
		}
	}

	for _, arg := range args {
		matches, err := f.expand(arg)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			add(m)
		}
	}
	return docs, nil
}

func (f *Finder) expand(arg string) ([]string, error) {
	matches := []string{arg}
	if hasMeta(arg) {
		var err error
		matches, err = filepath.Glob(arg)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to glob path"), "path", arg)
		}
		if len(matches) == 0 {
			return nil, zerr.With(zerr.Wrap(domain.ErrDocumentNotFound, "no match"), "path", arg)
		}
	}

	var out []string
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrDocumentNotFound, "stat document"), "path", m)
		}
		if !info.IsDir() {
			out = append(out, m)
			continue
		}
		found, err := walkDocuments(m)
		if err != nil {
			return nil, err
		}
		out = append(out, found...)
	}
	return out, nil
}

// walkDocuments returns the YAML files below root, sorted. The settings file is skipped.
func walkDocuments(root string) ([]string, error) {
	var docs []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if isDocument(d.Name()) {
			docs = append(docs, path)
		}
		return nil
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to walk directory"), "path", root)
	}
	slices.Sort(docs)
	return docs, nil
}

func isDocument(name string) bool {
	ext := filepath.Ext(name)
	if ext != ".yaml" && ext != ".yml" {
		return false
	}
	return strings.TrimSuffix(name, ext) != domain.SettingsFileName
}

func hasMeta(path string) bool {
	return strings.ContainsAny(path, `*?[\`)
}
