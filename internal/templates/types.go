// Package templates discovers, validates and renders user-supplied component templates.
//
// Templates are plain source files containing {{Name}} placeholders. They are
// untrusted: Load always runs Validate before the text is handed out, and
// Validate rejects a fixed denylist of dangerous constructs. The denylist is
// pattern matching, not a sandbox; it blocks only the enumerated patterns.
// A member call such as cp.exec(...) is not caught, because it cannot be told
// apart from RegExp.prototype.exec; the child_process import it needs is.
package templates

import (
	"path/filepath"
	"strings"
)

// Extensions are the file suffixes recognized as component templates.
var Extensions = []string{".js", ".jsx", ".ts", ".tsx"}

// Descriptor identifies a discoverable template without holding its content.
type Descriptor struct {
	// Name is the file name without its extension.
	Name string `json:"name" yaml:"name"`

	// Path is the location the loader reads from.
	Path string `json:"path" yaml:"path"`
}

// Loaded is a validated template ready for substitution.
type Loaded struct {
	// Descriptor identifies where the template came from.
	Descriptor Descriptor

	// Raw is the unmodified template text.
	Raw string

	// Variables are the distinct placeholder names found in Raw, sorted.
	// Informational only: Substitute does not require a name to be listed.
	Variables []string

	// Advisories are non-fatal findings from validation.
	Advisories []Advisory
}

// Render substitutes vars into the template text.
func (l *Loaded) Render(vars map[string]string) string {
	return Substitute(l.Raw, vars)
}

// HasRecognizedExt reports whether name ends in one of Extensions.
func HasRecognizedExt(name string) bool {
	ext := filepath.Ext(name)
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// descriptorFor builds a descriptor named after the file with its extension stripped.
func descriptorFor(path string) Descriptor {
	base := filepath.Base(path)
	return Descriptor{
		Name: strings.TrimSuffix(base, filepath.Ext(base)),
		Path: path,
	}
}
