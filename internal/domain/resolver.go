// Package domain contains the import resolution and source rewriting logic.
package domain

import (
	"path/filepath"
	"strings"

	m "github.com/getcord/importfix/internal/model"
)

// FileChecker answers whether a regular file exists at a path. It is the only
// capability the resolver needs, so tests can back it with a map.
type FileChecker interface {
	FileExists(path m.Path) bool
}

// PathResolver maps an import specifier written in a file to a specifier that
// names an existing file on disk.
type PathResolver struct {
	root       string
	namespaces []m.Namespace
	extensions []string
	fs         FileChecker
}

// NewPathResolver creates a PathResolver from cfg backed by fs.
func NewPathResolver(cfg m.Config, fs FileChecker) *PathResolver {
	return &PathResolver{
		root:       string(cfg.Root),
		namespaces: cfg.Namespaces,
		extensions: cfg.Extensions,
		fs:         fs,
	}
}

// Resolve decides whether spec, imported from containingFile, needs a suffix
// appended to reach an existing file.
func (r *PathResolver) Resolve(containingFile m.Path, spec m.Specifier) m.Resolution {
	s := string(spec)

	ns, aliased := r.aliasFor(s)
	if aliased && !strings.Contains(strings.TrimPrefix(s, ns.Prefix), "/") {
		// A package root goes through the package system, never rewritten.
		return m.Resolution{Kind: m.Unchanged}
	}

	candidate := r.candidatePath(containingFile, s, ns, aliased)

	// A trailing slash names a directory: only index candidates apply, and
	// they are appended without repeating the slash.
	dirSpec := strings.HasSuffix(s, "/")

	if !dirSpec && r.fs.FileExists(m.Path(candidate)) {
		return m.Resolution{Kind: m.Unchanged}
	}

	for _, ext := range r.extensions {
		suffix := ext
		if dirSpec {
			if !strings.HasPrefix(ext, "/") {
				continue
			}

			suffix = strings.TrimPrefix(ext, "/")
		}

		if r.fs.FileExists(m.Path(candidate + filepath.FromSlash(ext))) {
			return m.Resolution{Kind: m.Resolved, Specifier: m.Specifier(s + suffix)}
		}
	}

	return m.Resolution{Kind: m.Unresolved}
}

func (r *PathResolver) aliasFor(spec string) (m.Namespace, bool) {
	for _, ns := range r.namespaces {
		if ns.Aliased && strings.HasPrefix(spec, ns.Prefix) {
			return ns, true
		}
	}

	return m.Namespace{}, false
}

// candidatePath computes the physical path a specifier points at before any
// extension is tried.
func (r *PathResolver) candidatePath(containingFile m.Path, spec string, ns m.Namespace, aliased bool) string {
	switch {
	case aliased:
		rest := strings.TrimPrefix(spec, ns.Prefix)
		return filepath.Join(r.root, filepath.FromSlash(ns.Dir), filepath.FromSlash(rest))
	case isRelative(spec):
		return filepath.Join(filepath.Dir(string(containingFile)), filepath.FromSlash(spec))
	default:
		return filepath.Join(r.root, filepath.FromSlash(spec))
	}
}

func isRelative(spec string) bool {
	return strings.HasPrefix(spec, "./") || strings.HasPrefix(spec, "../")
}
